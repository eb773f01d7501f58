package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetDashboard(c *gin.Context) {
	userID := c.GetString("userId")

	summary, err := dashboardRepo.GetSummary(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener el resumen"})
		return
	}

	c.JSON(http.StatusOK, summary)
}
