package models

type DashboardSummary struct {
	Balance           float64 `json:"balance"`
	MonthlyExpenses   float64 `json:"monthly_expenses"`
	TotalInvested     float64 `json:"total_invested"`
	TotalCurrentValue float64 `json:"total_current_value"`
	GrossReturn       float64 `json:"gross_return"`
	ReturnPercentage  float64 `json:"return_percentage"`
}
