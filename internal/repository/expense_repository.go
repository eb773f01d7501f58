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

var (
	ErrExpenseNotFound = errors.New("gasto no encontrado")
	ErrNothingToUpdate = errors.New("ningún campo para actualizar")
)

type ExpenseFilter struct {
	Category  string
	StartDate string
	EndDate   string
	Limit     int
	Offset    int
}

type ExpenseUpdate struct {
	Description *string
	Amount      *float64
	Category    *string
	Date        *string
}

type ExpenseRepository struct {
	db *sql.DB
}

func NewExpenseRepository() *ExpenseRepository {
	return &ExpenseRepository{
		db: database.DB,
	}
}

func (r *ExpenseRepository) Create(expense *models.Expense) error {
	expense.ID = uuid.NewString()
	query := `
		INSERT INTO expenses (id, user_id, description, amount, category, date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`

	return r.db.QueryRow(
		query,
		expense.ID,
		expense.UserID,
		expense.Description,
		expense.Amount,
		expense.Category,
		expense.Date,
	).Scan(&expense.CreatedAt, &expense.UpdatedAt)
}

func (r *ExpenseRepository) GetByUser(userID string, filter ExpenseFilter) ([]models.Expense, error) {
	query := `
		SELECT id, user_id, description, amount, category, date, created_at, updated_at
		FROM expenses
		WHERE user_id = $1`
	args := []interface{}{userID}

	if filter.Category != "" {
		args = append(args, filter.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if filter.StartDate != "" {
		args = append(args, filter.StartDate)
		query += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if filter.EndDate != "" {
		args = append(args, filter.EndDate)
		query += fmt.Sprintf(" AND date <= $%d", len(args))
	}

	if filter.Limit <= 0 {
		filter.Limit = 10
	}
	args = append(args, filter.Limit)
	query += fmt.Sprintf(" ORDER BY date DESC, created_at DESC LIMIT $%d", len(args))
	args = append(args, filter.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenses := []models.Expense{}
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}

	return expenses, rows.Err()
}

func (r *ExpenseRepository) GetByID(id, userID string) (*models.Expense, error) {
	query := `
		SELECT id, user_id, description, amount, category, date, created_at, updated_at
		FROM expenses
		WHERE id = $1 AND user_id = $2`

	row := r.db.QueryRow(query, id, userID)
	expense, err := scanExpense(row)
	if err == sql.ErrNoRows {
		return nil, ErrExpenseNotFound
	}
	if err != nil {
		return nil, err
	}

	return &expense, nil
}

func (r *ExpenseRepository) Update(id, userID string, upd ExpenseUpdate) (*models.Expense, error) {
	if _, err := r.GetByID(id, userID); err != nil {
		return nil, err
	}

	sets := []string{}
	args := []interface{}{}

	appendSet := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.Description != nil {
		appendSet("description", *upd.Description)
	}
	if upd.Amount != nil {
		appendSet("amount", *upd.Amount)
	}
	if upd.Category != nil {
		appendSet("category", *upd.Category)
	}
	if upd.Date != nil {
		appendSet("date", *upd.Date)
	}

	if len(sets) == 0 {
		return nil, ErrNothingToUpdate
	}

	sets = append(sets, "updated_at = CURRENT_TIMESTAMP")
	args = append(args, id, userID)
	query := fmt.Sprintf(
		"UPDATE expenses SET %s WHERE id = $%d AND user_id = $%d",
		strings.Join(sets, ", "), len(args)-1, len(args),
	)

	if _, err := r.db.Exec(query, args...); err != nil {
		return nil, err
	}

	return r.GetByID(id, userID)
}

func (r *ExpenseRepository) Delete(id, userID string) error {
	if _, err := r.GetByID(id, userID); err != nil {
		return err
	}

	query := `DELETE FROM expenses WHERE id = $1 AND user_id = $2`
	_, err := r.db.Exec(query, id, userID)
	return err
}

// SumSince suma los gastos del usuario desde una fecha (inclusive)
func (r *ExpenseRepository) SumSince(userID string, since time.Time) (float64, error) {
	var total float64
	query := `SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE user_id = $1 AND date >= $2`

	err := r.db.QueryRow(query, userID, since.Format("2006-01-02")).Scan(&total)
	return total, err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanExpense(row rowScanner) (models.Expense, error) {
	var expense models.Expense
	var date time.Time

	err := row.Scan(
		&expense.ID,
		&expense.UserID,
		&expense.Description,
		&expense.Amount,
		&expense.Category,
		&date,
		&expense.CreatedAt,
		&expense.UpdatedAt,
	)
	if err != nil {
		return expense, err
	}

	expense.Date = date.Format("2006-01-02")
	return expense, nil
}
