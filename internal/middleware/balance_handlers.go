package middleware

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetBalance devuelve el saldo del usuario, creándolo en cero si no existe
func GetBalance(c *gin.Context) {
	userID := c.GetString("userId")

	balance, err := balanceRepo.GetLatest(userID)
	if err == sql.ErrNoRows {
		balance, err = balanceRepo.Create(userID, 0)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener el saldo"})
		return
	}

	c.JSON(http.StatusOK, balance)
}

func CreateBalance(c *gin.Context) {
	userID := c.GetString("userId")

	var request struct {
		Amount *float64 `json:"amount" binding:"required"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if *request.Amount < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El monto debe ser un número positivo"})
		return
	}

	balance, err := balanceRepo.Create(userID, *request.Amount)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al crear el saldo"})
		return
	}

	c.JSON(http.StatusCreated, balance)
}

func UpdateBalance(c *gin.Context) {
	userID := c.GetString("userId")

	var request struct {
		Amount *float64 `json:"amount" binding:"required"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	balance, err := balanceRepo.Update(userID, *request.Amount)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al actualizar el saldo"})
		return
	}

	c.JSON(http.StatusOK, balance)
}
