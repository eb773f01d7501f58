package middleware

import (
	"finanzas-api/internal/repository"
	"finanzas-api/internal/services"
)

var (
	balanceRepo    *repository.BalanceRepository
	expenseRepo    *repository.ExpenseRepository
	investmentRepo *repository.InvestmentRepository
	typeRepo       *repository.InvestmentTypeRepository
	dashboardRepo  *repository.DashboardRepository

	coinGeckoService *services.CoinGeckoService
	refreshService   *services.RefreshService
)

func InitFinance() {
	balanceRepo = repository.NewBalanceRepository()
	expenseRepo = repository.NewExpenseRepository()
	investmentRepo = repository.NewInvestmentRepository()
	typeRepo = repository.NewInvestmentTypeRepository()
	dashboardRepo = repository.NewDashboardRepository()
}

// SetCoinGeckoService hace disponible el servicio de precios para los handlers
func SetCoinGeckoService(s *services.CoinGeckoService) {
	coinGeckoService = s
}

// SetRefreshService hace disponible el orquestador de refresh para los handlers
func SetRefreshService(s *services.RefreshService) {
	refreshService = s
}
