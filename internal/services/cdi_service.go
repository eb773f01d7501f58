package services

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"finanzas-api/internal/cache"
	"finanzas-api/internal/models"
)

const (
	defaultBCBURL = "https://api.bcb.gov.br/dados/serie/bcdata.sgs.12/dados"

	// El CDI se publica una vez por día hábil, con 24 horas alcanza
	cdiCacheTTL = 24 * time.Hour
	cdiCacheKey = "cdi-history"
)

// CDIService obtiene la serie diaria del CDI desde la API del BCB y calcula
// la corrección compuesta de un monto desde su fecha de compra
type CDIService struct {
	baseURL string
	client  *http.Client
	history *cache.TTL[[]models.CDIEntry]
}

func NewCDIService(baseURL string, client *http.Client, clock cache.Clock) *CDIService {
	if baseURL == "" {
		baseURL = defaultBCBURL
	}
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &CDIService{
		baseURL: baseURL,
		client:  client,
		history: cache.New[[]models.CDIEntry](cdiCacheTTL, clock),
	}
}

// GetHistory devuelve la serie diaria del CDI desde startDate (inclusive).
// La serie completa se baja en una sola llamada y se filtra del lado del
// cliente. Cualquier error de red devuelve una lista vacía: el llamador debe
// tratar la serie vacía como "sin corrección disponible", no como error fatal.
func (s *CDIService) GetHistory(startDate string) []models.CDIEntry {
	if data, ok := s.history.Get(cdiCacheKey); ok {
		return filterCDIHistory(data, startDate)
	}

	resp, err := s.client.Get(s.baseURL + "?formato=json")
	if err != nil {
		log.Printf("Error al obtener la serie del CDI: %v", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("La API del BCB respondió con estado %d", resp.StatusCode)
		return nil
	}

	var data []models.CDIEntry
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		log.Printf("Error al parsear la serie del CDI: %v", err)
		return nil
	}

	s.history.Put(cdiCacheKey, data)
	return filterCDIHistory(data, startDate)
}

// CalculateCorrection aplica la tasa diaria del CDI al monto desde startDate.
// La fórmula es multiplicativa: factor = Π(1 + (tasa_diaria/100) × (porcentaje/100)),
// es decir interés compuesto diario, no interés simple. Una serie vacía
// devuelve el monto sin cambios. Una fecha de compra que no se puede parsear
// devuelve error en lugar de asumir una época arbitraria.
func (s *CDIService) CalculateCorrection(amount float64, startDate string, percentage float64) (models.Correction, error) {
	if _, err := ParseFecha(startDate); err != nil {
		return models.Correction{}, fmt.Errorf("fecha de compra inválida %q: %w", startDate, err)
	}

	history := s.GetHistory(startDate)
	if len(history) == 0 {
		return models.Correction{CurrentValue: amount, GrossReturn: 0}, nil
	}

	factor := 1.0
	for _, day := range history {
		// La API del BCB ya publica la tasa en percentual (ej: 0.04 = 0.04%)
		rate, err := strconv.ParseFloat(day.Value, 64)
		if err != nil {
			log.Printf("Tasa del CDI no numérica %q para %s, se ignora", day.Value, day.Date)
			continue
		}
		factor *= 1 + (rate/100)*(percentage/100)
	}

	currentValue := amount * factor
	return models.Correction{
		CurrentValue: round2(currentValue),
		GrossReturn:  round2(currentValue - amount),
	}, nil
}

func filterCDIHistory(data []models.CDIEntry, startDate string) []models.CDIEntry {
	if startDate == "" {
		return data
	}

	start, err := ParseFecha(startDate)
	if err != nil {
		log.Printf("Fecha de inicio inválida %q, se devuelve la serie completa", startDate)
		return data
	}

	filtered := []models.CDIEntry{}
	for _, entry := range data {
		date, err := ParseFecha(entry.Date)
		if err != nil {
			log.Printf("Fecha inválida %q en la serie del CDI, se ignora la entrada", entry.Date)
			continue
		}
		if !date.Before(start) {
			filtered = append(filtered, entry)
		}
	}

	return filtered
}

// ParseFecha acepta fechas ISO (YYYY-MM-DD) y el formato localizado de la
// API del BCB (DD/MM/YYYY)
func ParseFecha(s string) (time.Time, error) {
	if strings.Contains(s, "/") {
		return time.Parse("02/01/2006", s)
	}
	return time.Parse("2006-01-02", s)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
