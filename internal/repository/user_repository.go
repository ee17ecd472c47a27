package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/dhanrush/dhanrush-backend/internal/models"
)

// ErrUserNotFound возвращается, когда запись пользователя не найдена.
var ErrUserNotFound = errors.New("user not found")

// ErrInvalidAmount возвращается при попытке начислить неположительную сумму.
var ErrInvalidAmount = errors.New("credit amount must be positive")

// UserRepository отвечает за работу с таблицей users.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository создаёт экземпляр репозитория.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure создаёт пользователя с нулевым балансом, если его ещё нет.
// Повторные вызовы безопасны.
func (r *UserRepository) Ensure(ctx context.Context, userID int64) error {
	if _, err := r.db.ExecContext(ctx, `INSERT OR IGNORE INTO users (user_id) VALUES (?)`, userID); err != nil {
		return fmt.Errorf("user repository: ensure %w", err)
	}
	return nil
}

// GetByID возвращает пользователя по Telegram ID.
func (r *UserRepository) GetByID(ctx context.Context, userID int64) (*models.User, error) {
	var user models.User
	query := `SELECT user_id, coins, referrals, last_bonus FROM users WHERE user_id = ?`
	if err := r.db.GetContext(ctx, &user, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("user repository: get by id %w", err)
	}

	return &user, nil
}

// AddCoins атомарно начисляет amount монет. Инкремент выполняется на стороне
// базы (coins = coins + ?), поэтому конкурентные начисления не теряются.
func (r *UserRepository) AddCoins(ctx context.Context, userID int64, amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	result, err := r.db.ExecContext(ctx, `UPDATE users SET coins = coins + ? WHERE user_id = ?`, amount, userID)
	if err != nil {
		return fmt.Errorf("user repository: add coins %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("user repository: add coins rows affected %w", err)
	}
	if rows == 0 {
		return ErrUserNotFound
	}

	return nil
}

// AddReferral увеличивает счётчик приглашённых на единицу.
func (r *UserRepository) AddReferral(ctx context.Context, userID int64) error {
	result, err := r.db.ExecContext(ctx, `UPDATE users SET referrals = referrals + 1 WHERE user_id = ?`, userID)
	if err != nil {
		return fmt.Errorf("user repository: add referral %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("user repository: add referral rows affected %w", err)
	}
	if rows == 0 {
		return ErrUserNotFound
	}

	return nil
}

// SetLastBonus перезаписывает дату последнего ежедневного бонуса (YYYY-MM-DD).
func (r *UserRepository) SetLastBonus(ctx context.Context, userID int64, date string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE users SET last_bonus = ? WHERE user_id = ?`, date, userID)
	if err != nil {
		return fmt.Errorf("user repository: set last bonus %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("user repository: set last bonus rows affected %w", err)
	}
	if rows == 0 {
		return ErrUserNotFound
	}

	return nil
}
