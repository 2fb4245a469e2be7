package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

// writeBusinessError mapeia o código de negócio para o status HTTP.
// Retorna false quando o erro não é de negócio (o handler trata como
// erro interno).
func writeBusinessError(c *gin.Context, err error) bool {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		return false
	}

	switch code {
	case httperr.CodeInvalidWindow:
		httperr.BadRequest(c, code, "Janela de horário inválida.")
	case httperr.CodeServiceInactive:
		httperr.BadRequest(c, code, "Serviço desativado.")
	case httperr.CodeInvalidBlockKind:
		httperr.BadRequest(c, code, "Tipo de bloqueio inválido.")
	case httperr.CodeReminderWindowInPast:
		httperr.BadRequest(c, code, "Janela do lembrete já passou.")
	case httperr.CodeServiceNotFound:
		httperr.NotFound(c, code, "Serviço não encontrado.")
	case httperr.CodeReservationNotFound:
		httperr.NotFound(c, code, "Reserva não encontrada.")
	case httperr.CodeBlockNotFound:
		httperr.NotFound(c, code, "Bloqueio não encontrado.")
	case httperr.CodeReminderNotFound:
		httperr.NotFound(c, code, "Lembrete não encontrado.")
	case httperr.CodeSlotUnavailable:
		httperr.Conflict(c, code, "Horário indisponível.")
	case httperr.CodeIllegalTransition:
		httperr.Conflict(c, code, "Mudança de status não permitida.")
	case httperr.CodeStorageUnavailable:
		httperr.Unavailable(c, code, "Armazenamento indisponível, tente novamente.")
	default:
		httperr.BadRequest(c, code, "Operação rejeitada.")
	}

	return true
}
