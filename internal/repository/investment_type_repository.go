package repository

import (
	"database/sql"
	"errors"

	"finanzas-api/internal/database"
	"finanzas-api/internal/models"

	"github.com/google/uuid"
)

var ErrInvestmentTypeNotFound = errors.New("tipo de inversión no encontrado")

type InvestmentTypeRepository struct {
	db *sql.DB
}

func NewInvestmentTypeRepository() *InvestmentTypeRepository {
	return &InvestmentTypeRepository{
		db: database.DB,
	}
}

func (r *InvestmentTypeRepository) GetAll() ([]models.InvestmentType, error) {
	query := `
		SELECT id, name, COALESCE(description, ''), expected_return_percent, risk_level, created_at
		FROM investment_types
		ORDER BY name ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	types := []models.InvestmentType{}
	for rows.Next() {
		var t models.InvestmentType
		err := rows.Scan(
			&t.ID,
			&t.Name,
			&t.Description,
			&t.ExpectedReturnPercent,
			&t.RiskLevel,
			&t.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}

	return types, rows.Err()
}

func (r *InvestmentTypeRepository) GetByID(id string) (*models.InvestmentType, error) {
	t := &models.InvestmentType{}
	query := `
		SELECT id, name, COALESCE(description, ''), expected_return_percent, risk_level, created_at
		FROM investment_types
		WHERE id = $1`

	err := r.db.QueryRow(query, id).Scan(
		&t.ID,
		&t.Name,
		&t.Description,
		&t.ExpectedReturnPercent,
		&t.RiskLevel,
		&t.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrInvestmentTypeNotFound
	}

	return t, err
}

func (r *InvestmentTypeRepository) ExistsByName(name string) (bool, error) {
	var id string
	query := `SELECT id FROM investment_types WHERE name = $1 LIMIT 1`

	err := r.db.QueryRow(query, name).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

func (r *InvestmentTypeRepository) Create(t *models.InvestmentType) error {
	t.ID = uuid.NewString()
	query := `
		INSERT INTO investment_types (id, name, description, expected_return_percent, risk_level)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`

	return r.db.QueryRow(
		query,
		t.ID,
		t.Name,
		nullString(t.Description),
		t.ExpectedReturnPercent,
		t.RiskLevel,
	).Scan(&t.CreatedAt)
}

func (r *InvestmentTypeRepository) Update(t *models.InvestmentType) error {
	query := `
		UPDATE investment_types
		SET name = $1, description = $2, expected_return_percent = $3, risk_level = $4
		WHERE id = $5`

	_, err := r.db.Exec(query, t.Name, nullString(t.Description), t.ExpectedReturnPercent, t.RiskLevel, t.ID)
	return err
}

func (r *InvestmentTypeRepository) Delete(id string) error {
	if _, err := r.GetByID(id); err != nil {
		return err
	}

	query := `DELETE FROM investment_types WHERE id = $1`
	_, err := r.db.Exec(query, id)
	return err
}
