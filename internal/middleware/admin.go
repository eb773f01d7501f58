package middleware

import (
	"net/http"

	"finanzas-api/internal/models"

	"github.com/gin-gonic/gin"
)

// RequireAdmin exige que el token de la sesión tenga perfil de administrador.
// Debe encadenarse después de AuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("perfil") != models.PerfilAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Acceso denegado. Solo administradores"})
			c.Abort()
			return
		}
		c.Next()
	}
}
