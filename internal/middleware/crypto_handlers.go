package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CryptoIntegration expone la búsqueda de activos y la consulta de precios
// spot a través de un solo endpoint con el parámetro action
func CryptoIntegration(c *gin.Context) {
	action := c.Query("action")

	switch action {
	case "search":
		query := c.Query("query")
		if query == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "El parámetro query es obligatorio"})
			return
		}
		c.JSON(http.StatusOK, coinGeckoService.SearchCoins(query))

	case "price":
		ids := c.Query("ids")
		if ids == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "El parámetro ids es obligatorio"})
			return
		}
		c.JSON(http.StatusOK, coinGeckoService.GetPrices(strings.Split(ids, ",")))

	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Acción inválida"})
	}
}
