package medicalrecord

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vidaplus/sghss-api/internal/handler"
	"github.com/vidaplus/sghss-api/internal/middleware"
	"github.com/vidaplus/sghss-api/internal/model"
	"github.com/vidaplus/sghss-api/internal/service/medicalrecord"
)

type Handler struct {
	service *medicalrecord.Service
}

func NewHandler(service *medicalrecord.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	group := r.Group("/prontuarios")
	{
		group.POST("", h.Create)
		group.GET("/:id", h.Get)
		group.GET("/paciente/:id", h.ListByPatient)
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req model.CreateMedicalRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	record, err := h.service.Create(c.Request.Context(), &req, c.GetInt64(middleware.ContextUserID))
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(record))
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := handler.PathID(c, "id")
	if !ok {
		return
	}

	record, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(record))
}

func (h *Handler) ListByPatient(c *gin.Context) {
	id, ok := handler.PathID(c, "id")
	if !ok {
		return
	}

	records, err := h.service.ListByPatient(c.Request.Context(), id)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(records))
}
