package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/cache"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	ucService "github.com/BruksfildServices01/salon-scheduler/internal/usecase/service"
)

type ServiceHandler struct {
	db       *gorm.DB
	catalog  *cache.Catalog
	deleteUC *ucService.DeleteService
}

func NewServiceHandler(
	db *gorm.DB,
	catalog *cache.Catalog,
	deleteUC *ucService.DeleteService,
) *ServiceHandler {
	return &ServiceHandler{
		db:       db,
		catalog:  catalog,
		deleteUC: deleteUC,
	}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	DurationMin int     `json:"duration_min" binding:"required,min=1"`
	Price       float64 `json:"price" binding:"required,gte=0"`
	Category    string  `json:"category"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	DurationMin *int     `json:"duration_min,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Active      *bool    `json:"active,omitempty"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	category := strings.ToLower(strings.TrimSpace(c.Query("category")))
	activeStr := strings.TrimSpace(c.Query("active")) // "true", "false" ou vazio
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Model(&models.Service{})

	if category != "" {
		q = q.Where("LOWER(category) = ?", category)
	}

	if activeStr != "" {
		if activeStr == "true" {
			q = q.Where("active = ?", true)
		} else if activeStr == "false" {
			q = q.Where("active = ?", false)
		}
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var services []models.Service
	if err := q.
		Order("id ASC").
		Find(&services).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_services"})
		return
	}

	c.JSON(http.StatusOK, services)
}

// PublicList serve o catálogo sem autenticação, com cache Redis de
// curta duração na frente do banco.
func (h *ServiceHandler) PublicList(c *gin.Context) {
	ctx := c.Request.Context()

	if payload, ok := h.catalog.GetServices(ctx); ok {
		c.Data(http.StatusOK, "application/json", payload)
		return
	}

	var services []models.Service
	if err := h.db.
		Where("active = ?", true).
		Order("name ASC").
		Find(&services).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_services"})
		return
	}

	if payload, err := json.Marshal(services); err == nil {
		h.catalog.SetServices(ctx, payload)
		c.Data(http.StatusOK, "application/json", payload)
		return
	}

	c.JSON(http.StatusOK, services)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var service models.Service
	if err := h.db.
		Where("id = ?", id).
		First(&service).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "service_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_service"})
		return
	}

	c.JSON(http.StatusOK, service)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	service := models.Service{
		Name:        req.Name,
		Description: req.Description,
		DurationMin: req.DurationMin,
		Price:       req.Price,
		Active:      true,
		Category:    strings.ToLower(req.Category),
	}

	if err := h.db.Create(&service).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_service"})
		return
	}

	writeAudit(h.db, &actorID, "service_created", "service", &service.ID, nil)
	h.catalog.Invalidate(c.Request.Context())

	c.JSON(http.StatusCreated, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	id := c.Param("id")

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	// Campos opcionais não passam pelo binding, então a validação de
	// faixa é manual.
	if req.Price != nil && *req.Price < 0 {
		httperr.BadRequest(c, "invalid_price", "Preço não pode ser negativo.")
		return
	}
	if req.DurationMin != nil && *req.DurationMin < 1 {
		httperr.BadRequest(c, "invalid_duration", "Duração deve ser de pelo menos 1 minuto.")
		return
	}

	var service models.Service
	if err := h.db.
		Where("id = ?", id).
		First(&service).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "service_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_service"})
		return
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.DurationMin != nil {
		service.DurationMin = *req.DurationMin
	}
	if req.Price != nil {
		service.Price = *req.Price
	}
	if req.Active != nil {
		service.Active = *req.Active
	}

	if err := h.db.Save(&service).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_service"})
		return
	}

	writeAudit(h.db, &actorID, "service_updated", "service", &service.ID, nil)
	h.catalog.Invalidate(c.Request.Context())

	c.JSON(http.StatusOK, service)
}

// Delete remove o serviço registrando, na mesma transação, cada
// usuário que já passou por ele. Os registros permanecem mesmo depois
// da linha do serviço sumir.
func (h *ServiceHandler) Delete(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := paramID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	records, err := h.deleteUC.Execute(c.Request.Context(), actorID, id)
	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_delete_service", "Erro ao remover serviço.")
		return
	}

	h.catalog.Invalidate(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{
		"deleted":        true,
		"affected_users": len(records),
	})
}
