package models

import "time"

// Tipos de activo que entiende el motor de actualización
const (
	TipoCripto    = "Criptomoedas"
	TipoRentaFija = "Renda Fixa"

	// APIIDCDI es el identificador fijo que marca un instrumento indexado al CDI
	APIIDCDI = "CDI"
)

// InvestmentKind clasifica una inversión de forma explícita en lugar de
// depender de la presencia/ausencia de campos opcionales en cada rama.
type InvestmentKind int

const (
	// KindManual: el valor actual lo mantiene el usuario, el refresh nunca lo toca
	KindManual InvestmentKind = iota
	// KindPricedAsset: cripto con api_id, se valora como cantidad × precio spot
	KindPricedAsset
	// KindRateIndexed: renta fija indexada al CDI, se valora componiendo la tasa diaria
	KindRateIndexed
	// KindUnpriced: automatizada pero sin datos suficientes para valorarla
	KindUnpriced
)

type Investment struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	Amount       float64   `json:"amount"`
	CurrentValue float64   `json:"current_value"`
	PurchaseDate string    `json:"purchase_date"`
	APIID        string    `json:"api_id,omitempty"`
	YieldRate    float64   `json:"yield_rate,omitempty"`
	IsAutomated  bool      `json:"is_automated"`
	Quantity     float64   `json:"quantity,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Kind devuelve la clasificación de la inversión para el refresh
func (i Investment) Kind() InvestmentKind {
	if !i.IsAutomated {
		return KindManual
	}
	if i.Type == TipoCripto && i.APIID != "" {
		return KindPricedAsset
	}
	if i.Type == TipoRentaFija && i.APIID == APIIDCDI {
		return KindRateIndexed
	}
	return KindUnpriced
}

// Participation devuelve el porcentaje del CDI contratado (100 si no se indicó)
func (i Investment) Participation() float64 {
	if i.YieldRate <= 0 {
		return 100
	}
	return i.YieldRate
}
