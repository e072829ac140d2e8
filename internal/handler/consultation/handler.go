package consultation

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vidaplus/sghss-api/internal/handler"
	"github.com/vidaplus/sghss-api/internal/middleware"
	"github.com/vidaplus/sghss-api/internal/model"
	"github.com/vidaplus/sghss-api/internal/service/consultation"
)

type Handler struct {
	service *consultation.Service
}

func NewHandler(service *consultation.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	group := r.Group("/consultas")
	{
		group.POST("", h.Create)
		group.GET("", h.List)
		group.GET("/:id", h.Get)
		group.PUT("/:id", h.Update)
		group.PATCH("/:id/status", h.UpdateStatus)
		group.GET("/pacientes/:id", h.ListByPatient)
		group.GET("/profissionais/:id", h.ListByProfessional)
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req model.CreateConsultationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req, c.GetInt64(middleware.ContextUserID))
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(created))
}

func (h *Handler) List(c *gin.Context) {
	consultations, err := h.service.List(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(consultations))
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := handler.PathID(c, "id")
	if !ok {
		return
	}

	found, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(found))
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := handler.PathID(c, "id")
	if !ok {
		return
	}

	var req model.UpdateConsultationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req, c.GetInt64(middleware.ContextUserID))
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(updated))
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, ok := handler.PathID(c, "id")
	if !ok {
		return
	}

	var req model.ConsultationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	updated, err := h.service.UpdateStatus(c.Request.Context(), id, req.Status, c.GetInt64(middleware.ContextUserID))
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(updated))
}

func (h *Handler) ListByPatient(c *gin.Context) {
	id, ok := handler.PathID(c, "id")
	if !ok {
		return
	}

	consultations, err := h.service.ListByPatient(c.Request.Context(), id)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(consultations))
}

func (h *Handler) ListByProfessional(c *gin.Context) {
	id, ok := handler.PathID(c, "id")
	if !ok {
		return
	}

	consultations, err := h.service.ListByProfessional(c.Request.Context(), id)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(consultations))
}
