package services

import (
	"errors"
	"testing"

	"finanzas-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStore struct {
	investments []models.Investment
	listErr     error
	updateErr   error
	updates     map[string]float64
}

func (s *stubStore) GetAutomatedInvestments(userID string) ([]models.Investment, error) {
	return s.investments, s.listErr
}

func (s *stubStore) UpdateCurrentValue(id string, value float64) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	if s.updates == nil {
		s.updates = map[string]float64{}
	}
	s.updates[id] = value
	return nil
}

type stubPrices struct {
	prices models.CoinPriceMap
	calls  [][]string
}

func (s *stubPrices) GetPrices(ids []string) models.CoinPriceMap {
	s.calls = append(s.calls, ids)
	return s.prices
}

type stubCorrector struct {
	correction     models.Correction
	err            error
	calls          int
	lastPercentage float64
}

func (s *stubCorrector) CalculateCorrection(amount float64, startDate string, percentage float64) (models.Correction, error) {
	s.calls++
	s.lastPercentage = percentage
	return s.correction, s.err
}

func TestRefreshSinInversionesAutomatizadas(t *testing.T) {
	store := &stubStore{}
	prices := &stubPrices{}
	service := NewRefreshService(store, prices, &stubCorrector{})

	summary, err := service.RefreshAutomatedInvestments("user-1")
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Updated)
	assert.Empty(t, summary.Outcomes)
	assert.Empty(t, prices.calls, "sin cripto no hay consulta de precios")
}

func TestRefreshValoraCriptoPorCantidad(t *testing.T) {
	store := &stubStore{investments: []models.Investment{{
		ID:           "inv-1",
		Name:         "Bitcoin",
		Type:         models.TipoCripto,
		APIID:        "bitcoin",
		IsAutomated:  true,
		Quantity:     0.5,
		CurrentValue: 40,
	}}}
	prices := &stubPrices{prices: models.CoinPriceMap{"bitcoin": {BRL: 100}}}
	service := NewRefreshService(store, prices, &stubCorrector{})

	summary, err := service.RefreshAutomatedInvestments("user-1")
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Updated)
	assert.Equal(t, 50.0, store.updates["inv-1"])
	require.Len(t, summary.Outcomes, 1)
	assert.Equal(t, models.RefreshUpdated, summary.Outcomes[0].Status)
	assert.Equal(t, 50.0, summary.Outcomes[0].CurrentValue)
}

func TestRefreshAgrupaLosPreciosEnUnSoloLote(t *testing.T) {
	store := &stubStore{investments: []models.Investment{
		{ID: "inv-1", Type: models.TipoCripto, APIID: "bitcoin", IsAutomated: true, Quantity: 1},
		{ID: "inv-2", Type: models.TipoCripto, APIID: "ethereum", IsAutomated: true, Quantity: 2},
	}}
	prices := &stubPrices{prices: models.CoinPriceMap{
		"bitcoin":  {BRL: 10},
		"ethereum": {BRL: 20},
	}}
	service := NewRefreshService(store, prices, &stubCorrector{})

	_, err := service.RefreshAutomatedInvestments("user-1")
	require.NoError(t, err)
	require.Len(t, prices.calls, 1)
	assert.ElementsMatch(t, []string{"bitcoin", "ethereum"}, prices.calls[0])
}

func TestRefreshValorSinCambioNoPersiste(t *testing.T) {
	store := &stubStore{investments: []models.Investment{{
		ID:           "inv-1",
		Type:         models.TipoCripto,
		APIID:        "bitcoin",
		IsAutomated:  true,
		Quantity:     0.5,
		CurrentValue: 50,
	}}}
	prices := &stubPrices{prices: models.CoinPriceMap{"bitcoin": {BRL: 100}}}
	service := NewRefreshService(store, prices, &stubCorrector{})

	summary, err := service.RefreshAutomatedInvestments("user-1")
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Updated)
	assert.Empty(t, store.updates)
	require.Len(t, summary.Outcomes, 1)
	assert.Equal(t, models.RefreshUnchanged, summary.Outcomes[0].Status)
}

func TestRefreshOmiteCriptoSinCantidad(t *testing.T) {
	store := &stubStore{investments: []models.Investment{{
		ID:           "inv-1",
		Type:         models.TipoCripto,
		APIID:        "bitcoin",
		IsAutomated:  true,
		Quantity:     0,
		Amount:       1000,
		CurrentValue: 1000,
	}}}
	prices := &stubPrices{prices: models.CoinPriceMap{"bitcoin": {BRL: 100}}}
	service := NewRefreshService(store, prices, &stubCorrector{})

	summary, err := service.RefreshAutomatedInvestments("user-1")
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Updated)
	assert.Empty(t, store.updates)
	require.Len(t, summary.Outcomes, 1)
	assert.Equal(t, models.RefreshSkipped, summary.Outcomes[0].Status)
	assert.Equal(t, 1000.0, summary.Outcomes[0].CurrentValue, "el valor previo se conserva")
}

func TestRefreshOmiteCriptoSinPrecio(t *testing.T) {
	store := &stubStore{investments: []models.Investment{{
		ID:          "inv-1",
		Type:        models.TipoCripto,
		APIID:       "moneda-rara",
		IsAutomated: true,
		Quantity:    1,
	}}}
	prices := &stubPrices{prices: models.CoinPriceMap{}}
	service := NewRefreshService(store, prices, &stubCorrector{})

	summary, err := service.RefreshAutomatedInvestments("user-1")
	require.NoError(t, err)
	require.Len(t, summary.Outcomes, 1)
	assert.Equal(t, models.RefreshSkipped, summary.Outcomes[0].Status)
}

func TestRefreshCorrigeRentaFijaPorElCDI(t *testing.T) {
	store := &stubStore{investments: []models.Investment{{
		ID:           "inv-1",
		Name:         "CDB",
		Type:         models.TipoRentaFija,
		APIID:        models.APIIDCDI,
		IsAutomated:  true,
		Amount:       1000,
		PurchaseDate: "2024-07-01",
		CurrentValue: 1000,
	}}}
	corrector := &stubCorrector{correction: models.Correction{CurrentValue: 1000.40, GrossReturn: 0.40}}
	service := NewRefreshService(store, &stubPrices{}, corrector)

	summary, err := service.RefreshAutomatedInvestments("user-1")
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Updated)
	assert.Equal(t, 1000.40, store.updates["inv-1"])
	assert.Equal(t, 1, corrector.calls)
	assert.Equal(t, 100.0, corrector.lastPercentage, "sin tasa contratada se asume el 100% del CDI")
}

func TestRefreshRentaFijaUsaLaTasaContratada(t *testing.T) {
	store := &stubStore{investments: []models.Investment{{
		ID:           "inv-1",
		Type:         models.TipoRentaFija,
		APIID:        models.APIIDCDI,
		IsAutomated:  true,
		Amount:       1000,
		PurchaseDate: "2024-07-01",
		YieldRate:    110,
	}}}
	corrector := &stubCorrector{correction: models.Correction{CurrentValue: 1000.44}}
	service := NewRefreshService(store, &stubPrices{}, corrector)

	_, err := service.RefreshAutomatedInvestments("user-1")
	require.NoError(t, err)
	assert.Equal(t, 110.0, corrector.lastPercentage)
}

func TestRefreshErrorDelCorrectorOmiteLaFila(t *testing.T) {
	store := &stubStore{investments: []models.Investment{{
		ID:           "inv-1",
		Type:         models.TipoRentaFija,
		APIID:        models.APIIDCDI,
		IsAutomated:  true,
		Amount:       1000,
		PurchaseDate: "fecha-rota",
	}}}
	corrector := &stubCorrector{err: errors.New("formato de fecha no reconocido")}
	service := NewRefreshService(store, &stubPrices{}, corrector)

	summary, err := service.RefreshAutomatedInvestments("user-1")
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Updated)
	require.Len(t, summary.Outcomes, 1)
	assert.Equal(t, models.RefreshSkipped, summary.Outcomes[0].Status)
}

func TestRefreshOmiteAutomatizadasSinDatos(t *testing.T) {
	store := &stubStore{investments: []models.Investment{{
		ID:          "inv-1",
		Type:        models.TipoCripto,
		IsAutomated: true,
	}}}
	service := NewRefreshService(store, &stubPrices{}, &stubCorrector{})

	summary, err := service.RefreshAutomatedInvestments("user-1")
	require.NoError(t, err)
	require.Len(t, summary.Outcomes, 1)
	assert.Equal(t, models.RefreshSkipped, summary.Outcomes[0].Status)
}

func TestRefreshErrorDeListadoSePropaga(t *testing.T) {
	store := &stubStore{listErr: errors.New("conexión perdida")}
	service := NewRefreshService(store, &stubPrices{}, &stubCorrector{})

	_, err := service.RefreshAutomatedInvestments("user-1")
	assert.Error(t, err)
}

func TestRefreshErrorDePersistenciaSePropaga(t *testing.T) {
	store := &stubStore{
		investments: []models.Investment{{
			ID:          "inv-1",
			Type:        models.TipoCripto,
			APIID:       "bitcoin",
			IsAutomated: true,
			Quantity:    1,
		}},
		updateErr: errors.New("conexión perdida"),
	}
	prices := &stubPrices{prices: models.CoinPriceMap{"bitcoin": {BRL: 100}}}
	service := NewRefreshService(store, prices, &stubCorrector{})

	_, err := service.RefreshAutomatedInvestments("user-1")
	assert.Error(t, err)
}
