package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RefreshInvestments recalcula el valor actual de las inversiones
// automatizadas del usuario y reporta cuántas filas cambiaron
func RefreshInvestments(c *gin.Context) {
	userID := c.GetString("userId")

	summary, err := refreshService.RefreshAutomatedInvestments(userID)
	if err != nil {
		log.Printf("Error al actualizar inversiones del usuario %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Actualización completada",
		"updated":  summary.Updated,
		"outcomes": summary.Outcomes,
	})
}
