package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dhanrush/dhanrush-backend/internal/models"
)

func TestBonusService_Claim_FirstTime(t *testing.T) {
	today := time.Now().Format(bonusDateLayout)

	users := new(mockUserLedger)
	users.On("Ensure", mock.Anything, int64(1)).Return(nil)
	users.On("GetByID", mock.Anything, int64(1)).
		Return(&models.User{UserID: 1, Coins: 0}, nil).Once()
	users.On("SetLastBonus", mock.Anything, int64(1), today).Return(nil)
	users.On("AddCoins", mock.Anything, int64(1), int64(models.DailyBonusCoins)).Return(nil)
	users.On("GetByID", mock.Anything, int64(1)).
		Return(&models.User{UserID: 1, Coins: models.DailyBonusCoins}, nil).Once()

	svc := NewBonusService(users)

	balance, err := svc.Claim(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(models.DailyBonusCoins), balance)
	users.AssertExpectations(t)
}

func TestBonusService_Claim_AlreadyClaimedToday(t *testing.T) {
	today := time.Now().Format(bonusDateLayout)

	users := new(mockUserLedger)
	users.On("Ensure", mock.Anything, int64(1)).Return(nil)
	users.On("GetByID", mock.Anything, int64(1)).
		Return(&models.User{
			UserID:    1,
			Coins:     20,
			LastBonus: sql.NullString{String: today, Valid: true},
		}, nil)

	svc := NewBonusService(users)

	_, err := svc.Claim(context.Background(), 1)
	assert.ErrorIs(t, err, ErrBonusAlreadyClaimed)
	users.AssertNotCalled(t, "AddCoins", mock.Anything, mock.Anything, mock.Anything)
	users.AssertNotCalled(t, "SetLastBonus", mock.Anything, mock.Anything, mock.Anything)
}

// Вчерашняя дата бонусу не мешает: сравнение идёт по календарному дню.
func TestBonusService_Claim_PreviousDay(t *testing.T) {
	today := time.Now().Format(bonusDateLayout)
	yesterday := time.Now().AddDate(0, 0, -1).Format(bonusDateLayout)

	users := new(mockUserLedger)
	users.On("Ensure", mock.Anything, int64(1)).Return(nil)
	users.On("GetByID", mock.Anything, int64(1)).
		Return(&models.User{
			UserID:    1,
			Coins:     20,
			LastBonus: sql.NullString{String: yesterday, Valid: true},
		}, nil).Once()
	users.On("SetLastBonus", mock.Anything, int64(1), today).Return(nil)
	users.On("AddCoins", mock.Anything, int64(1), int64(models.DailyBonusCoins)).Return(nil)
	users.On("GetByID", mock.Anything, int64(1)).
		Return(&models.User{
			UserID:    1,
			Coins:     20 + models.DailyBonusCoins,
			LastBonus: sql.NullString{String: today, Valid: true},
		}, nil).Once()

	svc := NewBonusService(users)

	balance, err := svc.Claim(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(20+models.DailyBonusCoins), balance)
	users.AssertExpectations(t)
}
