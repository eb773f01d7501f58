package middleware

import (
	"net/http"

	"finanzas-api/internal/models"
	"finanzas-api/internal/repository"

	"github.com/gin-gonic/gin"
)

func GetInvestmentTypes(c *gin.Context) {
	types, err := typeRepo.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener los tipos de inversión"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"investment_types": types})
}

func CreateInvestmentType(c *gin.Context) {
	var request struct {
		Name                  string  `json:"name" binding:"required,min=2,max=255"`
		Description           string  `json:"description"`
		ExpectedReturnPercent float64 `json:"expected_return_percent"`
		RiskLevel             string  `json:"risk_level" binding:"required"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if request.ExpectedReturnPercent < 0 || request.ExpectedReturnPercent > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El retorno esperado debe estar entre 0% y 100%"})
		return
	}

	if !models.ValidRiskLevel(request.RiskLevel) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nivel de riesgo inválido"})
		return
	}

	exists, err := typeRepo.ExistsByName(request.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al verificar el tipo de inversión"})
		return
	}
	if exists {
		c.JSON(http.StatusConflict, gin.H{"error": "Ya existe un tipo de inversión con este nombre"})
		return
	}

	investmentType := &models.InvestmentType{
		Name:                  request.Name,
		Description:           request.Description,
		ExpectedReturnPercent: request.ExpectedReturnPercent,
		RiskLevel:             request.RiskLevel,
	}

	if err := typeRepo.Create(investmentType); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al crear el tipo de inversión"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":         "Tipo de inversión creado exitosamente",
		"investment_type": investmentType,
	})
}

func UpdateInvestmentType(c *gin.Context) {
	investmentType, err := typeRepo.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tipo de inversión no encontrado"})
		return
	}

	var request struct {
		Name                  *string  `json:"name"`
		Description           *string  `json:"description"`
		ExpectedReturnPercent *float64 `json:"expected_return_percent"`
		RiskLevel             *string  `json:"risk_level"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if request.Name != nil {
		if len(*request.Name) < 2 || len(*request.Name) > 255 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "El nombre debe tener entre 2 y 255 caracteres"})
			return
		}
		investmentType.Name = *request.Name
	}
	if request.Description != nil {
		investmentType.Description = *request.Description
	}
	if request.ExpectedReturnPercent != nil {
		if *request.ExpectedReturnPercent < 0 || *request.ExpectedReturnPercent > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "El retorno esperado debe estar entre 0% y 100%"})
			return
		}
		investmentType.ExpectedReturnPercent = *request.ExpectedReturnPercent
	}
	if request.RiskLevel != nil {
		if !models.ValidRiskLevel(*request.RiskLevel) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Nivel de riesgo inválido"})
			return
		}
		investmentType.RiskLevel = *request.RiskLevel
	}

	if err := typeRepo.Update(investmentType); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al actualizar el tipo de inversión"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "Tipo de inversión actualizado exitosamente",
		"investment_type": investmentType,
	})
}

func DeleteInvestmentType(c *gin.Context) {
	err := typeRepo.Delete(c.Param("id"))
	switch err {
	case nil:
		c.JSON(http.StatusOK, gin.H{"message": "Tipo de inversión eliminado exitosamente"})
	case repository.ErrInvestmentTypeNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "Tipo de inversión no encontrado"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al eliminar el tipo de inversión"})
	}
}
