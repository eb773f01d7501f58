package models

import "time"

// Niveles de riesgo admitidos para un tipo de inversión
const (
	RiesgoBajo  = "bajo"
	RiesgoMedio = "medio"
	RiesgoAlto  = "alto"
)

type InvestmentType struct {
	ID                    string    `json:"id"`
	Name                  string    `json:"name"`
	Description           string    `json:"description,omitempty"`
	ExpectedReturnPercent float64   `json:"expected_return_percent"`
	RiskLevel             string    `json:"risk_level"`
	CreatedAt             time.Time `json:"created_at"`
}

func ValidRiskLevel(level string) bool {
	switch level {
	case RiesgoBajo, RiesgoMedio, RiesgoAlto:
		return true
	}
	return false
}
