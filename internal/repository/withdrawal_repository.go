package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/dhanrush/dhanrush-backend/internal/models"
)

var (
	// ErrWithdrawalNotFound возвращается, когда заявка не найдена.
	ErrWithdrawalNotFound = errors.New("withdrawal not found")

	// ErrBelowMinimum возвращается, если баланс меньше минимума вывода.
	ErrBelowMinimum = errors.New("balance below minimum withdrawal")
)

// WithdrawalRepository отвечает за таблицу withdrawals.
type WithdrawalRepository struct {
	db *sqlx.DB
}

// NewWithdrawalRepository создаёт экземпляр репозитория.
func NewWithdrawalRepository(db *sqlx.DB) *WithdrawalRepository {
	return &WithdrawalRepository{db: db}
}

// Create фиксирует заявку на вывод всего баланса пользователя и обнуляет
// баланс в одной транзакции. Баланс читается и проверяется внутри транзакции,
// поэтому две конкурентные заявки не могут потратить одни и те же монеты.
func (r *WithdrawalRepository) Create(ctx context.Context, userID int64, method, details string) (*models.Withdrawal, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("withdrawal repository: begin %w", err)
	}
	defer tx.Rollback()

	var coins int64
	if err := tx.GetContext(ctx, &coins, `SELECT coins FROM users WHERE user_id = ?`, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("withdrawal repository: read balance %w", err)
	}

	if coins < models.MinWithdrawCoins {
		return nil, ErrBelowMinimum
	}

	w := &models.Withdrawal{
		UserID:    userID,
		Coins:     coins,
		Rupees:    float64(coins) / models.CoinsPerRupee,
		Method:    method,
		Details:   details,
		Status:    models.WithdrawalStatusPending,
		CreatedAt: time.Now().UTC(),
	}

	result, err := tx.ExecContext(ctx, `
		INSERT INTO withdrawals (user_id, coins, rupees, method, details, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, w.UserID, w.Coins, w.Rupees, w.Method, w.Details, w.Status, w.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("withdrawal repository: insert %w", err)
	}

	if w.ID, err = result.LastInsertId(); err != nil {
		return nil, fmt.Errorf("withdrawal repository: last insert id %w", err)
	}

	if _, err := tx.ExecContext(ctx, `UPDATE users SET coins = 0 WHERE user_id = ?`, userID); err != nil {
		return nil, fmt.Errorf("withdrawal repository: zero balance %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("withdrawal repository: commit %w", err)
	}

	return w, nil
}

// GetByID возвращает заявку по идентификатору.
func (r *WithdrawalRepository) GetByID(ctx context.Context, id int64) (*models.Withdrawal, error) {
	var w models.Withdrawal
	err := r.db.GetContext(ctx, &w, `SELECT * FROM withdrawals WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrWithdrawalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("withdrawal repository: get by id %w", err)
	}
	return &w, nil
}

// ListByUser возвращает заявки пользователя, новые первыми.
func (r *WithdrawalRepository) ListByUser(ctx context.Context, userID int64) ([]models.Withdrawal, error) {
	var withdrawals []models.Withdrawal
	err := r.db.SelectContext(ctx, &withdrawals, `
		SELECT * FROM withdrawals WHERE user_id = ? ORDER BY created_at DESC, id DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("withdrawal repository: list by user %w", err)
	}
	return withdrawals, nil
}
