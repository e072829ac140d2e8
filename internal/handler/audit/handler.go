package audit

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vidaplus/sghss-api/internal/handler"
	"github.com/vidaplus/sghss-api/internal/service/audit"
)

const defaultListLimit = 100

type Handler struct {
	service *audit.Service
}

func NewHandler(service *audit.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/logs", h.List)
}

// List returns audit entries, newest first. The optional limit query
// parameter caps the page size.
func (h *Handler) List(c *gin.Context) {
	limit := defaultListLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, handler.NewErrorResponse("limite inválido"))
			return
		}
		limit = parsed
	}

	logs, err := h.service.List(c.Request.Context(), limit)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(logs))
}
