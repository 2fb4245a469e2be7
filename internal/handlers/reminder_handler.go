package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
	ucReminder "github.com/BruksfildServices01/salon-scheduler/internal/usecase/reminder"
)

type ReminderHandler struct {
	dueUC *ucReminder.DueReminders
	ackUC *ucReminder.AcknowledgeReminder
}

func NewReminderHandler(
	dueUC *ucReminder.DueReminders,
	ackUC *ucReminder.AcknowledgeReminder,
) *ReminderHandler {
	return &ReminderHandler{
		dueUC: dueUC,
		ackUC: ackUC,
	}
}

// Due lista lembretes prontos para envio. Quem consome é o worker de
// notificação, que confirma cada entrega via Acknowledge.
func (h *ReminderHandler) Due(c *gin.Context) {
	reminders, err := h.dueUC.Execute(c.Request.Context(), timezone.Now())
	if err != nil {
		httperr.Internal(c, "failed_to_list_reminders", "Erro ao listar lembretes.")
		return
	}

	httpresp.List(c, reminders)
}

func (h *ReminderHandler) Acknowledge(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := paramID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	rem, err := h.ackUC.Execute(c.Request.Context(), actorID, id)
	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_acknowledge", "Erro ao confirmar lembrete.")
		return
	}

	httpresp.OK(c, rem)
}
