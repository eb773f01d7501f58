package models

// Estados posibles de cada inversión tras una pasada del refresh
const (
	RefreshUpdated   = "updated"
	RefreshSkipped   = "skipped"
	RefreshUnchanged = "unchanged"
)

type RefreshOutcome struct {
	InvestmentID string  `json:"investment_id"`
	Name         string  `json:"name"`
	Status       string  `json:"status"`
	CurrentValue float64 `json:"current_value"`
}

type RefreshSummary struct {
	Updated  int              `json:"updated"`
	Outcomes []RefreshOutcome `json:"outcomes"`
}
