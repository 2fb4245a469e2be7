package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	ucReservation "github.com/BruksfildServices01/salon-scheduler/internal/usecase/reservation"
)

// ======================================================
// HANDLER
// ======================================================

type ReservationHandler struct {
	createUC       *ucReservation.CreateReservation
	confirmUC      *ucReservation.ConfirmReservation
	cancelUC       *ucReservation.CancelReservation
	completeUC     *ucReservation.CompleteReservation
	rescheduleUC   *ucReservation.RescheduleReservation
	deactivateUC   *ucReservation.DeactivateReservation
	listUC         *ucReservation.ListReservations
	availabilityUC *ucReservation.CheckAvailability
}

func NewReservationHandler(
	createUC *ucReservation.CreateReservation,
	confirmUC *ucReservation.ConfirmReservation,
	cancelUC *ucReservation.CancelReservation,
	completeUC *ucReservation.CompleteReservation,
	rescheduleUC *ucReservation.RescheduleReservation,
	deactivateUC *ucReservation.DeactivateReservation,
	listUC *ucReservation.ListReservations,
	availabilityUC *ucReservation.CheckAvailability,
) *ReservationHandler {
	return &ReservationHandler{
		createUC:       createUC,
		confirmUC:      confirmUC,
		cancelUC:       cancelUC,
		completeUC:     completeUC,
		rescheduleUC:   rescheduleUC,
		deactivateUC:   deactivateUC,
		listUC:         listUC,
		availabilityUC: availabilityUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateReservationRequest struct {
	ServiceID uint   `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
	// vazios = início + duração do serviço; end_date permite janela
	// cruzando a meia-noite
	EndDate       string `json:"end_date"`
	EndTime       string `json:"end_time"`
	PaymentMethod string `json:"payment_method" binding:"required"`
}

type RescheduleRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
	// vazio = mesma data de início
	EndDate string `json:"end_date"`
	EndTime string `json:"end_time" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *ReservationHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	start, err := parseDateTime(req.Date, req.Time)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		return
	}

	in := ucReservation.CreateReservationInput{
		UserID:        userID,
		ServiceID:     req.ServiceID,
		Start:         start,
		PaymentMethod: req.PaymentMethod,
	}

	if req.EndTime != "" {
		endDate := req.EndDate
		if endDate == "" {
			endDate = req.Date
		}
		end, err := parseDateTime(endDate, req.EndTime)
		if err != nil {
			httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
			return
		}
		in.End = end
	}

	res, err := h.createUC.Execute(c.Request.Context(), in)
	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_create_reservation", "Erro ao criar reserva.")
		return
	}

	c.JSON(201, res)
}

// ======================================================
// LIST
// ======================================================

func (h *ReservationHandler) Get(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := paramID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	res, err := h.listUC.Get(
		c.Request.Context(), id, userID, middleware.IsAdmin(c),
	)
	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_get_reservation", "Erro ao buscar reserva.")
		return
	}

	httpresp.OK(c, res)
}

func (h *ReservationHandler) MyReservations(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	out, err := h.listUC.ForUser(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_reservations", "Erro ao listar reservas.")
		return
	}

	httpresp.List(c, out)
}

func (h *ReservationHandler) ListByDate(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	date, err := parseDate(dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	out, err := h.listUC.ForDate(c.Request.Context(), date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_reservations", "Erro ao listar reservas.")
		return
	}

	httpresp.List(c, out)
}

// Availability é a pré-checagem pública de horário. O resultado não
// reserva nada; o Create revalida sob lock.
func (h *ReservationHandler) Availability(c *gin.Context) {
	dateStr := c.Query("date")
	timeStr := c.Query("time")
	endTimeStr := c.Query("end_time")
	if dateStr == "" || timeStr == "" || endTimeStr == "" {
		httperr.BadRequest(c, "missing_window", "Janela obrigatória (date, time, end_time).")
		return
	}

	start, err := parseDateTime(dateStr, timeStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		return
	}

	endDateStr := c.DefaultQuery("end_date", dateStr)
	end, err := parseDateTime(endDateStr, endTimeStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		return
	}

	available, err := h.availabilityUC.Execute(c.Request.Context(), start, end)
	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_check_availability", "Erro ao consultar disponibilidade.")
		return
	}

	c.JSON(200, gin.H{"available": available})
}

// ======================================================
// TRANSITIONS
// ======================================================

func (h *ReservationHandler) Confirm(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := paramID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	res, rem, err := h.confirmUC.Execute(c.Request.Context(), id, actorID)
	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_confirm", "Erro ao confirmar reserva.")
		return
	}

	body := gin.H{"reservation": res}
	if rem != nil {
		body["reminder"] = rem
	} else {
		// confirmação não bloqueada, mas sem lembrete agendado
		body["warning"] = httperr.CodeReminderWindowInPast
	}

	c.JSON(200, body)
}

func (h *ReservationHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := paramID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	res, err := h.cancelUC.Execute(
		c.Request.Context(), id, userID, middleware.IsAdmin(c),
	)
	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_cancel", "Erro ao cancelar reserva.")
		return
	}

	c.JSON(200, res)
}

func (h *ReservationHandler) Complete(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := paramID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	res, err := h.completeUC.Execute(c.Request.Context(), id, actorID)
	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_complete", "Erro ao concluir reserva.")
		return
	}

	c.JSON(200, res)
}

func (h *ReservationHandler) Reschedule(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := paramID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	newStart, err := parseDateTime(req.Date, req.Time)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		return
	}

	endDate := req.EndDate
	if endDate == "" {
		endDate = req.Date
	}
	newEnd, err := parseDateTime(endDate, req.EndTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		return
	}

	res, err := h.rescheduleUC.Execute(
		c.Request.Context(), id, userID, middleware.IsAdmin(c),
		newStart, newEnd,
	)
	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_reschedule", "Erro ao remarcar reserva.")
		return
	}

	c.JSON(200, res)
}

// Deactivate é a exclusão lógica (admin): a reserva some da API e o
// horário fica livre, mas a linha permanece como histórico.
func (h *ReservationHandler) Deactivate(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := paramID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	res, err := h.deactivateUC.Execute(c.Request.Context(), id, actorID)
	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_deactivate", "Erro ao excluir reserva.")
		return
	}

	c.JSON(200, gin.H{"deactivated": true, "reservation": res})
}

// --------------------------------------------------
// helpers
// --------------------------------------------------

func paramID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}
