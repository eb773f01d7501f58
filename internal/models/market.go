package models

// CDIEntry es una entrada de la serie diaria del CDI publicada por el BCB.
// La fecha llega como DD/MM/YYYY y la tasa como texto, ej: "0.04" significa 0.04%.
type CDIEntry struct {
	Date  string `json:"data"`
	Value string `json:"valor"`
}

// Correction es el resultado de aplicar la corrección del CDI a un monto
type Correction struct {
	CurrentValue float64 `json:"current_value"`
	GrossReturn  float64 `json:"gross_return"`
}

type CoinSearchResult struct {
	ID     string `json:"id"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Thumb  string `json:"thumb"`
}

// CoinPrice es el precio spot de un activo en moneda local
type CoinPrice struct {
	BRL          float64 `json:"brl"`
	BRL24hChange float64 `json:"brl_24h_change"`
	LastUpdated  int64   `json:"last_updated_at"`
}

type CoinPriceMap map[string]CoinPrice
