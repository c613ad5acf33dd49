package middleware

import (
	"net/http"
	"strings"

	"backend/internal/services"

	"github.com/gin-gonic/gin"
)

// RequireOperator checks the bearer token issued by the login endpoint.
// With auth unconfigured it passes everything through, keeping the API
// open like the original event-desk setup.
func RequireOperator(auth services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !auth.Enabled() {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		token = strings.TrimSpace(token)
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token do operador ausente"})
			return
		}
		if err := auth.Verify(token); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token inválido ou expirado"})
			return
		}
		c.Next()
	}
}
