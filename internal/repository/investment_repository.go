package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"finanzas-api/internal/database"
	"finanzas-api/internal/models"

	"github.com/google/uuid"
)

var ErrInvestmentNotFound = errors.New("inversión no encontrada")

type InvestmentFilter struct {
	Type   string
	Limit  int
	Offset int
}

type InvestmentUpdate struct {
	Name         *string
	Type         *string
	Amount       *float64
	CurrentValue *float64
	PurchaseDate *string
	APIID        *string
	YieldRate    *float64
	IsAutomated  *bool
	Quantity     *float64
}

type InvestmentRepository struct {
	db *sql.DB
}

func NewInvestmentRepository() *InvestmentRepository {
	return &InvestmentRepository{
		db: database.DB,
	}
}

const investmentColumns = `id, user_id, name, type, amount, current_value, purchase_date,
	api_id, yield_rate, is_automated, quantity, created_at, updated_at`

func (r *InvestmentRepository) Create(investment *models.Investment) error {
	investment.ID = uuid.NewString()
	query := `
		INSERT INTO investments (id, user_id, name, type, amount, current_value,
			purchase_date, api_id, yield_rate, is_automated, quantity)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at`

	return r.db.QueryRow(
		query,
		investment.ID,
		investment.UserID,
		investment.Name,
		investment.Type,
		investment.Amount,
		investment.CurrentValue,
		investment.PurchaseDate,
		nullString(investment.APIID),
		nullFloat(investment.YieldRate),
		investment.IsAutomated,
		nullFloat(investment.Quantity),
	).Scan(&investment.CreatedAt, &investment.UpdatedAt)
}

func (r *InvestmentRepository) GetByUser(userID string, filter InvestmentFilter) ([]models.Investment, error) {
	query := `SELECT ` + investmentColumns + ` FROM investments WHERE user_id = $1`
	args := []interface{}{userID}

	if filter.Type != "" {
		args = append(args, filter.Type)
		query += fmt.Sprintf(" AND type = $%d", len(args))
	}

	if filter.Limit <= 0 {
		filter.Limit = 10
	}
	args = append(args, filter.Limit)
	query += fmt.Sprintf(" ORDER BY purchase_date DESC, created_at DESC LIMIT $%d", len(args))
	args = append(args, filter.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	investments := []models.Investment{}
	for rows.Next() {
		investment, err := scanInvestment(rows)
		if err != nil {
			return nil, err
		}
		investments = append(investments, investment)
	}

	return investments, rows.Err()
}

func (r *InvestmentRepository) GetByID(id, userID string) (*models.Investment, error) {
	query := `SELECT ` + investmentColumns + ` FROM investments WHERE id = $1 AND user_id = $2`

	investment, err := scanInvestment(r.db.QueryRow(query, id, userID))
	if err == sql.ErrNoRows {
		return nil, ErrInvestmentNotFound
	}
	if err != nil {
		return nil, err
	}

	return &investment, nil
}

func (r *InvestmentRepository) Update(id, userID string, upd InvestmentUpdate) (*models.Investment, error) {
	if _, err := r.GetByID(id, userID); err != nil {
		return nil, err
	}

	sets := []string{}
	args := []interface{}{}

	appendSet := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.Name != nil {
		appendSet("name", *upd.Name)
	}
	if upd.Type != nil {
		appendSet("type", *upd.Type)
	}
	if upd.Amount != nil {
		appendSet("amount", *upd.Amount)
	}
	if upd.CurrentValue != nil {
		appendSet("current_value", *upd.CurrentValue)
	}
	if upd.PurchaseDate != nil {
		appendSet("purchase_date", *upd.PurchaseDate)
	}
	if upd.APIID != nil {
		appendSet("api_id", nullString(*upd.APIID))
	}
	if upd.YieldRate != nil {
		appendSet("yield_rate", nullFloat(*upd.YieldRate))
	}
	if upd.IsAutomated != nil {
		appendSet("is_automated", *upd.IsAutomated)
	}
	if upd.Quantity != nil {
		appendSet("quantity", nullFloat(*upd.Quantity))
	}

	if len(sets) == 0 {
		return nil, ErrNothingToUpdate
	}

	sets = append(sets, "updated_at = CURRENT_TIMESTAMP")
	args = append(args, id, userID)
	query := fmt.Sprintf(
		"UPDATE investments SET %s WHERE id = $%d AND user_id = $%d",
		strings.Join(sets, ", "), len(args)-1, len(args),
	)

	if _, err := r.db.Exec(query, args...); err != nil {
		return nil, err
	}

	return r.GetByID(id, userID)
}

func (r *InvestmentRepository) Delete(id, userID string) error {
	if _, err := r.GetByID(id, userID); err != nil {
		return err
	}

	query := `DELETE FROM investments WHERE id = $1 AND user_id = $2`
	_, err := r.db.Exec(query, id, userID)
	return err
}

// GetAutomatedInvestments devuelve las inversiones del usuario con la
// actualización automática habilitada
func (r *InvestmentRepository) GetAutomatedInvestments(userID string) ([]models.Investment, error) {
	query := `SELECT ` + investmentColumns + ` FROM investments WHERE user_id = $1 AND is_automated = TRUE`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	investments := []models.Investment{}
	for rows.Next() {
		investment, err := scanInvestment(rows)
		if err != nil {
			return nil, err
		}
		investments = append(investments, investment)
	}

	return investments, rows.Err()
}

// UpdateCurrentValue persiste el valor recalculado por el refresh en una
// sola fila, sin transacción compartida con el resto del lote
func (r *InvestmentRepository) UpdateCurrentValue(id string, value float64) error {
	query := `UPDATE investments SET current_value = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`

	_, err := r.db.Exec(query, value, id)
	return err
}

// SumByUser devuelve el total invertido y el valor actual total del usuario
func (r *InvestmentRepository) SumByUser(userID string) (invested, currentValue float64, err error) {
	query := `
		SELECT COALESCE(SUM(amount), 0), COALESCE(SUM(current_value), 0)
		FROM investments
		WHERE user_id = $1`

	err = r.db.QueryRow(query, userID).Scan(&invested, &currentValue)
	return invested, currentValue, err
}

func scanInvestment(row rowScanner) (models.Investment, error) {
	var investment models.Investment
	var purchaseDate time.Time
	var apiID sql.NullString
	var yieldRate, quantity sql.NullFloat64

	err := row.Scan(
		&investment.ID,
		&investment.UserID,
		&investment.Name,
		&investment.Type,
		&investment.Amount,
		&investment.CurrentValue,
		&purchaseDate,
		&apiID,
		&yieldRate,
		&investment.IsAutomated,
		&quantity,
		&investment.CreatedAt,
		&investment.UpdatedAt,
	)
	if err != nil {
		return investment, err
	}

	investment.PurchaseDate = purchaseDate.Format("2006-01-02")
	if apiID.Valid {
		investment.APIID = apiID.String
	}
	if yieldRate.Valid {
		investment.YieldRate = yieldRate.Float64
	}
	if quantity.Valid {
		investment.Quantity = quantity.Float64
	}

	return investment, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullFloat(f float64) sql.NullFloat64 {
	return sql.NullFloat64{Float64: f, Valid: f != 0}
}
