package repository

import (
	"database/sql"
	"time"

	"finanzas-api/internal/database"
	"finanzas-api/internal/models"
)

type DashboardRepository struct {
	db       *sql.DB
	balances *BalanceRepository
	expenses *ExpenseRepository
	invest   *InvestmentRepository
}

func NewDashboardRepository() *DashboardRepository {
	return &DashboardRepository{
		db:       database.DB,
		balances: NewBalanceRepository(),
		expenses: NewExpenseRepository(),
		invest:   NewInvestmentRepository(),
	}
}

// GetSummary arma el resumen de la página principal: saldo, gastos del mes
// en curso y totales de inversión
func (r *DashboardRepository) GetSummary(userID string) (*models.DashboardSummary, error) {
	summary := &models.DashboardSummary{}

	balance, err := r.balances.GetLatest(userID)
	if err == nil {
		summary.Balance = balance.Amount
	} else if err != sql.ErrNoRows {
		return nil, err
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	summary.MonthlyExpenses, err = r.expenses.SumSince(userID, monthStart)
	if err != nil {
		return nil, err
	}

	summary.TotalInvested, summary.TotalCurrentValue, err = r.invest.SumByUser(userID)
	if err != nil {
		return nil, err
	}

	summary.GrossReturn = summary.TotalCurrentValue - summary.TotalInvested
	if summary.TotalInvested > 0 {
		summary.ReturnPercentage = (summary.GrossReturn / summary.TotalInvested) * 100
	}

	return summary, nil
}
