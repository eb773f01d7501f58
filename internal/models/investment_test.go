package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvestmentKind(t *testing.T) {
	tests := []struct {
		name string
		inv  Investment
		want InvestmentKind
	}{
		{
			name: "no automatizada es manual",
			inv:  Investment{Type: TipoCripto, APIID: "bitcoin"},
			want: KindManual,
		},
		{
			name: "cripto con api_id se valora por precio",
			inv:  Investment{Type: TipoCripto, APIID: "bitcoin", IsAutomated: true},
			want: KindPricedAsset,
		},
		{
			name: "renta fija marcada como CDI se indexa por tasa",
			inv:  Investment{Type: TipoRentaFija, APIID: APIIDCDI, IsAutomated: true},
			want: KindRateIndexed,
		},
		{
			name: "cripto sin api_id no se puede valorar",
			inv:  Investment{Type: TipoCripto, IsAutomated: true},
			want: KindUnpriced,
		},
		{
			name: "renta fija con otro identificador no se puede valorar",
			inv:  Investment{Type: TipoRentaFija, APIID: "SELIC", IsAutomated: true},
			want: KindUnpriced,
		},
		{
			name: "tipo desconocido automatizado no se puede valorar",
			inv:  Investment{Type: "Imóveis", IsAutomated: true},
			want: KindUnpriced,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.inv.Kind())
		})
	}
}

func TestInvestmentParticipation(t *testing.T) {
	assert.Equal(t, 100.0, Investment{}.Participation(), "sin tasa contratada se asume el 100%")
	assert.Equal(t, 100.0, Investment{YieldRate: -5}.Participation())
	assert.Equal(t, 110.0, Investment{YieldRate: 110}.Participation())
}
