package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vidaplus/sghss-api/internal/handler"
	"github.com/vidaplus/sghss-api/internal/service/auth"
)

// Context keys set by Auth for downstream handlers.
const (
	ContextUserID   = "userID"
	ContextUserType = "userType"
)

// Auth requires a valid bearer token and exposes the principal on the
// request context.
func Auth(authSvc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				handler.NewErrorResponse("token de acesso ausente"))
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				handler.NewErrorResponse("cabeçalho de autorização inválido"))
			return
		}

		claims, err := authSvc.ValidateToken(c.Request.Context(), parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				handler.NewErrorResponse("credenciais inválidas"))
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserType, claims.Tipo)
		c.Next()
	}
}
