package middleware

import (
	"net/http"
	"strconv"
	"time"

	"finanzas-api/internal/models"
	"finanzas-api/internal/repository"

	"github.com/gin-gonic/gin"
)

func GetExpenses(c *gin.Context) {
	userID := c.GetString("userId")

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	filter := repository.ExpenseFilter{
		Category:  c.Query("category"),
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
		Limit:     limit,
		Offset:    offset,
	}

	expenses, err := expenseRepo.GetByUser(userID, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener los gastos"})
		return
	}

	c.JSON(http.StatusOK, expenses)
}

func CreateExpense(c *gin.Context) {
	userID := c.GetString("userId")

	var request struct {
		Description string  `json:"description" binding:"required"`
		Amount      float64 `json:"amount" binding:"required,gt=0"`
		Category    string  `json:"category" binding:"required"`
		Date        string  `json:"date" binding:"required"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := time.Parse("2006-01-02", request.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Fecha inválida"})
		return
	}

	expense := &models.Expense{
		UserID:      userID,
		Description: request.Description,
		Amount:      request.Amount,
		Category:    request.Category,
		Date:        request.Date,
	}

	if err := expenseRepo.Create(expense); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al crear el gasto"})
		return
	}

	c.JSON(http.StatusCreated, expense)
}

func UpdateExpense(c *gin.Context) {
	userID := c.GetString("userId")

	var request struct {
		Description *string  `json:"description"`
		Amount      *float64 `json:"amount"`
		Category    *string  `json:"category"`
		Date        *string  `json:"date"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if request.Amount != nil && *request.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El monto debe ser un número positivo"})
		return
	}
	if request.Date != nil {
		if _, err := time.Parse("2006-01-02", *request.Date); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Fecha inválida"})
			return
		}
	}

	expense, err := expenseRepo.Update(c.Param("id"), userID, repository.ExpenseUpdate{
		Description: request.Description,
		Amount:      request.Amount,
		Category:    request.Category,
		Date:        request.Date,
	})

	switch err {
	case nil:
		c.JSON(http.StatusOK, expense)
	case repository.ErrExpenseNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "Gasto no encontrado"})
	case repository.ErrNothingToUpdate:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ningún campo para actualizar"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al actualizar el gasto"})
	}
}

func DeleteExpense(c *gin.Context) {
	userID := c.GetString("userId")

	err := expenseRepo.Delete(c.Param("id"), userID)
	switch err {
	case nil:
		c.JSON(http.StatusOK, gin.H{"message": "Gasto eliminado exitosamente"})
	case repository.ErrExpenseNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "Gasto no encontrado"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al eliminar el gasto"})
	}
}
