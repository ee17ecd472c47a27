package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dhanrush/dhanrush-backend/internal/db"
	"github.com/dhanrush/dhanrush-backend/internal/models"
	"github.com/dhanrush/dhanrush-backend/internal/repository"
)

func TestWithdrawalService_CheckEligible(t *testing.T) {
	users := new(mockUserLedger)
	users.On("Ensure", mock.Anything, int64(1)).Return(nil)
	users.On("GetByID", mock.Anything, int64(1)).
		Return(&models.User{UserID: 1, Coins: models.MinWithdrawCoins}, nil)

	svc := NewWithdrawalService(users, new(mockWithdrawalLedger))

	user, err := svc.CheckEligible(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(models.MinWithdrawCoins), user.Coins)
}

func TestWithdrawalService_CheckEligible_BelowMinimum(t *testing.T) {
	users := new(mockUserLedger)
	users.On("Ensure", mock.Anything, int64(1)).Return(nil)
	users.On("GetByID", mock.Anything, int64(1)).
		Return(&models.User{UserID: 1, Coins: models.MinWithdrawCoins - 1}, nil)

	svc := NewWithdrawalService(users, new(mockWithdrawalLedger))

	_, err := svc.CheckEligible(context.Background(), 1)
	assert.ErrorIs(t, err, ErrBelowMinimum)
}

func TestWithdrawalService_Submit_UnknownMethod(t *testing.T) {
	withdrawals := new(mockWithdrawalLedger)
	svc := NewWithdrawalService(new(mockUserLedger), withdrawals)

	_, err := svc.Submit(context.Background(), 1, "cash", "details")
	assert.ErrorIs(t, err, ErrUnknownMethod)
	withdrawals.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestWithdrawalService_Submit(t *testing.T) {
	withdrawals := new(mockWithdrawalLedger)
	withdrawals.On("Create", mock.Anything, int64(1), models.MethodUPI, "user@upi").
		Return(&models.Withdrawal{ID: 1, UserID: 1, Coins: 100, Rupees: 10}, nil)

	svc := NewWithdrawalService(new(mockUserLedger), withdrawals)

	w, err := svc.Submit(context.Background(), 1, models.MethodUPI, "user@upi")
	require.NoError(t, err)
	assert.Equal(t, int64(100), w.Coins)
	withdrawals.AssertExpectations(t)
}

// Полный сценарий на реальной базе: проверка порога, заявка, обнуление баланса.
func TestWithdrawalService_FullFlow(t *testing.T) {
	ctx := context.Background()

	conn, err := db.NewSQLite(ctx, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.NoError(t, db.InitSchema(ctx, conn))

	userRepo := repository.NewUserRepository(conn)
	withdrawalRepo := repository.NewWithdrawalRepository(conn)
	svc := NewWithdrawalService(userRepo, withdrawalRepo)

	require.NoError(t, userRepo.Ensure(ctx, 1))
	require.NoError(t, userRepo.AddCoins(ctx, 1, models.MinWithdrawCoins-1))

	// 99 монет — ещё рано.
	_, err = svc.CheckEligible(ctx, 1)
	require.ErrorIs(t, err, ErrBelowMinimum)

	require.NoError(t, userRepo.AddCoins(ctx, 1, 1))

	// Ровно 100 — порог включительный.
	_, err = svc.CheckEligible(ctx, 1)
	require.NoError(t, err)

	w, err := svc.Submit(ctx, 1, models.MethodPaytm, "9999999999")
	require.NoError(t, err)
	assert.Equal(t, int64(models.MinWithdrawCoins), w.Coins)
	assert.Equal(t, float64(models.MinWithdrawRupees), w.Rupees)
	assert.Equal(t, models.WithdrawalStatusPending, w.Status)

	user, err := userRepo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), user.Coins)
}
