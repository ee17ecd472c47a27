package service

import (
	"context"

	"github.com/dhanrush/dhanrush-backend/internal/models"
)

// UserLedger описывает операции реестра над балансами пользователей.
// Реализация — repository.UserRepository; каждая операция выполняется
// одним атомарным запросом к хранилищу.
type UserLedger interface {
	Ensure(ctx context.Context, userID int64) error
	GetByID(ctx context.Context, userID int64) (*models.User, error)
	AddCoins(ctx context.Context, userID int64, amount int64) error
	AddReferral(ctx context.Context, userID int64) error
	SetLastBonus(ctx context.Context, userID int64, date string) error
}

// WithdrawalLedger описывает атомарное создание заявки на вывод.
type WithdrawalLedger interface {
	Create(ctx context.Context, userID int64, method, details string) (*models.Withdrawal, error)
}
