package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dhanrush/dhanrush-backend/internal/models"
)

// mockUserLedger — мок реестра пользователей для тестов сервисов.
type mockUserLedger struct {
	mock.Mock
}

func (m *mockUserLedger) Ensure(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *mockUserLedger) GetByID(ctx context.Context, userID int64) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserLedger) AddCoins(ctx context.Context, userID int64, amount int64) error {
	args := m.Called(ctx, userID, amount)
	return args.Error(0)
}

func (m *mockUserLedger) AddReferral(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *mockUserLedger) SetLastBonus(ctx context.Context, userID int64, date string) error {
	args := m.Called(ctx, userID, date)
	return args.Error(0)
}

// mockWithdrawalLedger — мок реестра заявок на вывод.
type mockWithdrawalLedger struct {
	mock.Mock
}

func (m *mockWithdrawalLedger) Create(ctx context.Context, userID int64, method, details string) (*models.Withdrawal, error) {
	args := m.Called(ctx, userID, method, details)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Withdrawal), args.Error(1)
}

// mockReferralNotifier фиксирует уведомления пригласившим.
type mockReferralNotifier struct {
	mock.Mock
}

func (m *mockReferralNotifier) NotifyReferralCredited(referrerID int64, reward int64) {
	m.Called(referrerID, reward)
}
