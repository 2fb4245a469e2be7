package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const HeaderRequestID = "X-Request-Id"

// RequestID preserva o id vindo do cliente ou gera um novo, e devolve
// no response para correlação de logs.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(HeaderRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}

		c.Set("requestID", rid)
		c.Writer.Header().Set(HeaderRequestID, rid)

		c.Next()
	}
}
