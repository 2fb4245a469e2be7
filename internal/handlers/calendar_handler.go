package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	ucBlock "github.com/BruksfildServices01/salon-scheduler/internal/usecase/calendarblock"
)

type CalendarHandler struct {
	createUC *ucBlock.CreateManualBlock
	removeUC *ucBlock.RemoveManualBlock
	listUC   *ucBlock.ListBlocks
}

func NewCalendarHandler(
	createUC *ucBlock.CreateManualBlock,
	removeUC *ucBlock.RemoveManualBlock,
	listUC *ucBlock.ListBlocks,
) *CalendarHandler {
	return &CalendarHandler{
		createUC: createUC,
		removeUC: removeUC,
		listUC:   listUC,
	}
}

// --------- Requests ---------

type CreateBlockRequest struct {
	Title   string `json:"title" binding:"required"`
	Kind    string `json:"kind" binding:"required"` // manual | maintenance
	Date    string `json:"date" binding:"required"`
	Time    string `json:"time" binding:"required"`
	EndTime string `json:"end_time" binding:"required"`
}

// --------- Handlers ---------

// List retorna os bloqueios ativos do período: reservas e bloqueios
// manuais juntos, é o que a agenda exibe.
func (h *CalendarHandler) List(c *gin.Context) {
	fromStr := c.Query("from")
	toStr := c.Query("to")
	if fromStr == "" || toStr == "" {
		httperr.BadRequest(c, "missing_period", "Período obrigatório (from, to).")
		return
	}

	from, err := parseDate(fromStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	to, err := parseDate(toStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	// "to" é inclusivo na query, exclusivo na janela
	blocks, err := h.listUC.Execute(
		c.Request.Context(), from, to.AddDate(0, 0, 1),
	)
	if err != nil {
		httperr.Internal(c, "failed_to_list_blocks", "Erro ao listar bloqueios.")
		return
	}

	httpresp.List(c, blocks)
}

func (h *CalendarHandler) CreateBlock(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	start, err := parseDateTime(req.Date, req.Time)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		return
	}

	end, err := parseDateTime(req.Date, req.EndTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		return
	}

	block, err := h.createUC.Execute(c.Request.Context(), actorID, ucBlock.CreateManualBlockInput{
		Title: req.Title,
		Kind:  req.Kind,
		Start: start,
		End:   end,
	})
	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_create_block", "Erro ao criar bloqueio.")
		return
	}

	httpresp.Created(c, block)
}

func (h *CalendarHandler) RemoveBlock(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := paramID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	block, err := h.removeUC.Execute(c.Request.Context(), actorID, id)
	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_remove_block", "Erro ao remover bloqueio.")
		return
	}

	httpresp.OK(c, block)
}
