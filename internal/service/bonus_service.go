package service

import (
	"context"
	"errors"
	"time"

	"github.com/dhanrush/dhanrush-backend/internal/models"
)

// ErrBonusAlreadyClaimed возвращается при повторной попытке забрать бонус
// в тот же календарный день.
var ErrBonusAlreadyClaimed = errors.New("daily bonus already claimed today")

// bonusDateLayout — формат даты в колонке last_bonus.
const bonusDateLayout = "2006-01-02"

// BonusService выдаёт ежедневный бонус не чаще раза в календарный день.
type BonusService struct {
	users UserLedger
}

// NewBonusService создаёт сервис ежедневного бонуса.
func NewBonusService(users UserLedger) *BonusService {
	return &BonusService{users: users}
}

// Claim начисляет бонус и возвращает новый баланс. Сравнение идёт по локальной
// календарной дате, а не по прошедшим 24 часам: сразу после полуночи бонус
// снова доступен.
func (s *BonusService) Claim(ctx context.Context, userID int64) (int64, error) {
	if err := s.users.Ensure(ctx, userID); err != nil {
		return 0, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return 0, err
	}

	today := time.Now().Format(bonusDateLayout)
	if user.LastBonus.Valid && user.LastBonus.String == today {
		return 0, ErrBonusAlreadyClaimed
	}

	if err := s.users.SetLastBonus(ctx, userID, today); err != nil {
		return 0, err
	}
	if err := s.users.AddCoins(ctx, userID, models.DailyBonusCoins); err != nil {
		return 0, err
	}

	user, err = s.users.GetByID(ctx, userID)
	if err != nil {
		return 0, err
	}

	return user.Coins, nil
}
