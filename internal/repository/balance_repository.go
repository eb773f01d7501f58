package repository

import (
	"database/sql"

	"finanzas-api/internal/database"
	"finanzas-api/internal/models"

	"github.com/google/uuid"
)

type BalanceRepository struct {
	db *sql.DB
}

func NewBalanceRepository() *BalanceRepository {
	return &BalanceRepository{
		db: database.DB,
	}
}

// GetLatest devuelve el saldo más reciente del usuario, o sql.ErrNoRows si no tiene
func (r *BalanceRepository) GetLatest(userID string) (*models.Balance, error) {
	balance := &models.Balance{}
	query := `
		SELECT id, user_id, amount, created_at, updated_at
		FROM balances
		WHERE user_id = $1
		ORDER BY updated_at DESC
		LIMIT 1`

	err := r.db.QueryRow(query, userID).Scan(
		&balance.ID,
		&balance.UserID,
		&balance.Amount,
		&balance.CreatedAt,
		&balance.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return balance, nil
}

func (r *BalanceRepository) Create(userID string, amount float64) (*models.Balance, error) {
	id := uuid.NewString()
	query := `
		INSERT INTO balances (id, user_id, amount)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, amount, created_at, updated_at`

	balance := &models.Balance{}
	err := r.db.QueryRow(query, id, userID, amount).Scan(
		&balance.ID,
		&balance.UserID,
		&balance.Amount,
		&balance.CreatedAt,
		&balance.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return balance, nil
}

// Update actualiza el saldo del usuario, creándolo si todavía no existe
func (r *BalanceRepository) Update(userID string, amount float64) (*models.Balance, error) {
	if _, err := r.GetLatest(userID); err == sql.ErrNoRows {
		return r.Create(userID, amount)
	} else if err != nil {
		return nil, err
	}

	query := `
		UPDATE balances
		SET amount = $1, updated_at = CURRENT_TIMESTAMP
		WHERE user_id = $2`

	if _, err := r.db.Exec(query, amount, userID); err != nil {
		return nil, err
	}

	return r.GetLatest(userID)
}
