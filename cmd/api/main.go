package main

import (
	"log"
	"os"
	"time"

	"finanzas-api/internal/cache"
	"finanzas-api/internal/database"
	"finanzas-api/internal/middleware"
	"finanzas-api/internal/repository"
	routes "finanzas-api/internal/server"
	"finanzas-api/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Cargar variables de entorno
	if err := godotenv.Load(); err != nil {
		log.Printf("No se pudo cargar el archivo .env: %v", err)
	}

	// Crear el router de Gin
	router := gin.Default()

	// Configurar CORS
	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"http://localhost:3000"}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	config.AllowCredentials = true
	config.ExposeHeaders = []string{"Content-Length"}
	router.Use(cors.New(config))

	// Inicializar base de datos
	if err := database.InitDB(); err != nil {
		log.Fatalf("Error al inicializar la base de datos: %v", err)
	}
	defer database.DB.Close()

	// Inicializar repositorios y servicios externos
	middleware.InitAuth()
	middleware.InitFinance()

	clock := cache.SystemClock()
	cdiService := services.NewCDIService(os.Getenv("BCB_API_URL"), nil, clock)
	coinGeckoService := services.NewCoinGeckoService(os.Getenv("COINGECKO_API_URL"), nil, clock)
	refreshService := services.NewRefreshService(repository.NewInvestmentRepository(), coinGeckoService, cdiService)

	middleware.SetCoinGeckoService(coinGeckoService)
	middleware.SetRefreshService(refreshService)

	// Refresh periódico opcional de todos los usuarios
	if raw := os.Getenv("REFRESH_INTERVAL"); raw != "" {
		interval, err := time.ParseDuration(raw)
		if err != nil {
			log.Printf("REFRESH_INTERVAL inválido %q: %v", raw, err)
		} else {
			scheduler := services.NewRefreshScheduler(interval, repository.NewUserRepository(), refreshService)
			scheduler.Start()
			defer scheduler.Stop()
		}
	}

	// Configurar las rutas
	routes.RegisterRoutes(router)

	// Iniciar el servidor
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Error al iniciar el servidor: %v", err)
	}
}
