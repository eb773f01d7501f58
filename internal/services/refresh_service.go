package services

import (
	"log"

	"finanzas-api/internal/models"
)

// InvestmentStore define las operaciones que el refresh necesita del repositorio
type InvestmentStore interface {
	GetAutomatedInvestments(userID string) ([]models.Investment, error)
	UpdateCurrentValue(id string, value float64) error
}

// PriceSource resuelve precios spot por lote; degrada a un mapa vacío ante errores
type PriceSource interface {
	GetPrices(ids []string) models.CoinPriceMap
}

// RateCorrector aplica la corrección del CDI a un monto desde su fecha de compra
type RateCorrector interface {
	CalculateCorrection(amount float64, startDate string, percentage float64) (models.Correction, error)
}

// RefreshService recalcula el valor actual de las inversiones automatizadas
// de un usuario: cripto con precio spot, renta fija con la tasa del CDI
type RefreshService struct {
	investments InvestmentStore
	prices      PriceSource
	cdi         RateCorrector
}

func NewRefreshService(investments InvestmentStore, prices PriceSource, cdi RateCorrector) *RefreshService {
	return &RefreshService{
		investments: investments,
		prices:      prices,
		cdi:         cdi,
	}
}

// RefreshAutomatedInvestments recorre las inversiones automatizadas del
// usuario y persiste el valor recalculado solo cuando cambió. Devuelve un
// resumen con el conteo de filas actualizadas y el resultado por fila.
// Un usuario sin inversiones automatizadas es un éxito con conteo cero.
// Solo los fallos de almacenamiento se propagan como error.
func (s *RefreshService) RefreshAutomatedInvestments(userID string) (*models.RefreshSummary, error) {
	investments, err := s.investments.GetAutomatedInvestments(userID)
	if err != nil {
		return nil, err
	}

	summary := &models.RefreshSummary{Outcomes: []models.RefreshOutcome{}}
	if len(investments) == 0 {
		return summary, nil
	}

	// Un solo lote de precios para todas las cripto involucradas
	var cryptoIDs []string
	for _, inv := range investments {
		if inv.Kind() == models.KindPricedAsset {
			cryptoIDs = append(cryptoIDs, inv.APIID)
		}
	}

	var prices models.CoinPriceMap
	if len(cryptoIDs) > 0 {
		prices = s.prices.GetPrices(cryptoIDs)
	}

	for _, inv := range investments {
		switch inv.Kind() {
		case models.KindPricedAsset:
			price, ok := prices[inv.APIID]
			if !ok || price.BRL <= 0 || inv.Quantity <= 0 {
				// Sin cantidad registrada el valor no se puede reconstruir a
				// partir del monto sin asumir un precio histórico, así que la
				// fila se omite en lugar de estimarla
				s.skip(summary, inv)
				continue
			}
			if err := s.apply(summary, inv, inv.Quantity*price.BRL); err != nil {
				return nil, err
			}

		case models.KindRateIndexed:
			correction, err := s.cdi.CalculateCorrection(inv.Amount, inv.PurchaseDate, inv.Participation())
			if err != nil {
				log.Printf("No se pudo corregir la inversión %s: %v", inv.ID, err)
				s.skip(summary, inv)
				continue
			}
			if err := s.apply(summary, inv, correction.CurrentValue); err != nil {
				return nil, err
			}

		default:
			s.skip(summary, inv)
		}
	}

	return summary, nil
}

func (s *RefreshService) apply(summary *models.RefreshSummary, inv models.Investment, newValue float64) error {
	if newValue == inv.CurrentValue {
		summary.Outcomes = append(summary.Outcomes, models.RefreshOutcome{
			InvestmentID: inv.ID,
			Name:         inv.Name,
			Status:       models.RefreshUnchanged,
			CurrentValue: inv.CurrentValue,
		})
		return nil
	}

	if err := s.investments.UpdateCurrentValue(inv.ID, newValue); err != nil {
		return err
	}

	summary.Updated++
	summary.Outcomes = append(summary.Outcomes, models.RefreshOutcome{
		InvestmentID: inv.ID,
		Name:         inv.Name,
		Status:       models.RefreshUpdated,
		CurrentValue: newValue,
	})
	return nil
}

func (s *RefreshService) skip(summary *models.RefreshSummary, inv models.Investment) {
	summary.Outcomes = append(summary.Outcomes, models.RefreshOutcome{
		InvestmentID: inv.ID,
		Name:         inv.Name,
		Status:       models.RefreshSkipped,
		CurrentValue: inv.CurrentValue,
	})
}
