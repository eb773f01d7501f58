package middleware

import (
	"net/http"
	"strconv"
	"time"

	"finanzas-api/internal/models"
	"finanzas-api/internal/repository"

	"github.com/gin-gonic/gin"
)

func GetInvestments(c *gin.Context) {
	userID := c.GetString("userId")

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	filter := repository.InvestmentFilter{
		Type:   c.Query("type"),
		Limit:  limit,
		Offset: offset,
	}

	investments, err := investmentRepo.GetByUser(userID, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener las inversiones"})
		return
	}

	c.JSON(http.StatusOK, investments)
}

func CreateInvestment(c *gin.Context) {
	userID := c.GetString("userId")

	var request struct {
		Name         string   `json:"name" binding:"required"`
		Type         string   `json:"type" binding:"required"`
		Amount       float64  `json:"amount" binding:"required,gt=0"`
		CurrentValue *float64 `json:"current_value" binding:"required"`
		PurchaseDate string   `json:"purchase_date" binding:"required"`
		APIID        string   `json:"api_id"`
		YieldRate    float64  `json:"yield_rate"`
		IsAutomated  bool     `json:"is_automated"`
		Quantity     float64  `json:"quantity"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if *request.CurrentValue < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El valor actual debe ser un número no negativo"})
		return
	}

	if _, err := time.Parse("2006-01-02", request.PurchaseDate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Fecha de compra inválida"})
		return
	}

	investment := &models.Investment{
		UserID:       userID,
		Name:         request.Name,
		Type:         request.Type,
		Amount:       request.Amount,
		CurrentValue: *request.CurrentValue,
		PurchaseDate: request.PurchaseDate,
		APIID:        request.APIID,
		YieldRate:    request.YieldRate,
		IsAutomated:  request.IsAutomated,
		Quantity:     request.Quantity,
	}

	if err := investmentRepo.Create(investment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al crear la inversión"})
		return
	}

	c.JSON(http.StatusCreated, investment)
}

func UpdateInvestment(c *gin.Context) {
	userID := c.GetString("userId")

	var request struct {
		Name         *string  `json:"name"`
		Type         *string  `json:"type"`
		Amount       *float64 `json:"amount"`
		CurrentValue *float64 `json:"current_value"`
		PurchaseDate *string  `json:"purchase_date"`
		APIID        *string  `json:"api_id"`
		YieldRate    *float64 `json:"yield_rate"`
		IsAutomated  *bool    `json:"is_automated"`
		Quantity     *float64 `json:"quantity"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if request.Amount != nil && *request.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El monto debe ser un número positivo"})
		return
	}
	if request.CurrentValue != nil && *request.CurrentValue < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El valor actual debe ser un número no negativo"})
		return
	}
	if request.PurchaseDate != nil {
		if _, err := time.Parse("2006-01-02", *request.PurchaseDate); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Fecha de compra inválida"})
			return
		}
	}

	investment, err := investmentRepo.Update(c.Param("id"), userID, repository.InvestmentUpdate{
		Name:         request.Name,
		Type:         request.Type,
		Amount:       request.Amount,
		CurrentValue: request.CurrentValue,
		PurchaseDate: request.PurchaseDate,
		APIID:        request.APIID,
		YieldRate:    request.YieldRate,
		IsAutomated:  request.IsAutomated,
		Quantity:     request.Quantity,
	})

	switch err {
	case nil:
		c.JSON(http.StatusOK, investment)
	case repository.ErrInvestmentNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "Inversión no encontrada"})
	case repository.ErrNothingToUpdate:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ningún campo para actualizar"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al actualizar la inversión"})
	}
}

func DeleteInvestment(c *gin.Context) {
	userID := c.GetString("userId")

	err := investmentRepo.Delete(c.Param("id"), userID)
	switch err {
	case nil:
		c.JSON(http.StatusOK, gin.H{"message": "Inversión eliminada exitosamente"})
	case repository.ErrInvestmentNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "Inversión no encontrada"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al eliminar la inversión"})
	}
}
