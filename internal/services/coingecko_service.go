package services

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"finanzas-api/internal/cache"
	"finanzas-api/internal/models"
)

const (
	defaultCoinGeckoURL = "https://api.coingecko.com/api/v3"

	// Los precios spot se mueven rápido, la ventana es más corta que la del CDI
	coinGeckoCacheTTL = 5 * time.Minute

	maxSearchResults = 10
)

// CoinGeckoService resuelve búsquedas de activos y precios spot en BRL,
// con una caché independiente para cada operación
type CoinGeckoService struct {
	baseURL string
	client  *http.Client
	search  *cache.TTL[[]models.CoinSearchResult]
	prices  *cache.TTL[models.CoinPriceMap]
}

func NewCoinGeckoService(baseURL string, client *http.Client, clock cache.Clock) *CoinGeckoService {
	if baseURL == "" {
		baseURL = defaultCoinGeckoURL
	}
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &CoinGeckoService{
		baseURL: baseURL,
		client:  client,
		search:  cache.New[[]models.CoinSearchResult](coinGeckoCacheTTL, clock),
		prices:  cache.New[models.CoinPriceMap](coinGeckoCacheTTL, clock),
	}
}

// SearchCoins busca activos por texto libre. Consultas de menos de dos
// caracteres devuelven vacío sin tocar la red. Cualquier error de transporte
// degrada a una lista vacía.
func (s *CoinGeckoService) SearchCoins(query string) []models.CoinSearchResult {
	if len(query) < 2 {
		return []models.CoinSearchResult{}
	}

	cacheKey := strings.ToLower(query)
	if cached, ok := s.search.Get(cacheKey); ok {
		return cached
	}

	resp, err := s.client.Get(s.baseURL + "/search?query=" + url.QueryEscape(query))
	if err != nil {
		log.Printf("Error al buscar activos %q: %v", query, err)
		return []models.CoinSearchResult{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("CoinGecko respondió con estado %d para la búsqueda %q", resp.StatusCode, query)
		return []models.CoinSearchResult{}
	}

	var payload struct {
		Coins []models.CoinSearchResult `json:"coins"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Printf("Error al parsear la búsqueda %q: %v", query, err)
		return []models.CoinSearchResult{}
	}

	coins := payload.Coins
	if len(coins) > maxSearchResults {
		coins = coins[:maxSearchResults]
	}

	s.search.Put(cacheKey, coins)
	return coins
}

// GetPrices resuelve el precio spot en BRL para un lote de ids en una sola
// llamada. La clave de caché es el conjunto de ids ordenado y unido por comas.
// Un conjunto vacío devuelve un mapa vacío sin tocar la red.
func (s *CoinGeckoService) GetPrices(ids []string) models.CoinPriceMap {
	if len(ids) == 0 {
		return models.CoinPriceMap{}
	}

	sorted := append([]string(nil), ids...)
	sort.Strings(sorted)
	cacheKey := strings.Join(sorted, ",")

	if cached, ok := s.prices.Get(cacheKey); ok {
		return cached
	}

	reqURL := fmt.Sprintf(
		"%s/simple/price?ids=%s&vs_currencies=brl&include_24hr_change=true&include_last_updated_at=true",
		s.baseURL, url.QueryEscape(cacheKey),
	)

	resp, err := s.client.Get(reqURL)
	if err != nil {
		log.Printf("Error al obtener precios de %s: %v", cacheKey, err)
		return models.CoinPriceMap{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("CoinGecko respondió con estado %d para los precios de %s", resp.StatusCode, cacheKey)
		return models.CoinPriceMap{}
	}

	var data models.CoinPriceMap
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		log.Printf("Error al parsear los precios de %s: %v", cacheKey, err)
		return models.CoinPriceMap{}
	}

	s.prices.Put(cacheKey, data)
	return data
}
