package service

import (
	"context"

	"github.com/dhanrush/dhanrush-backend/internal/models"
)

// RewardService начисляет монеты за подтверждённые рекламной сетью просмотры.
type RewardService struct {
	users UserLedger
}

// NewRewardService создаёт сервис начисления наград.
func NewRewardService(users UserLedger) *RewardService {
	return &RewardService{users: users}
}

// Credit начисляет пользователю награду сети network и возвращает её размер.
// Неизвестная сеть получает награду по умолчанию — это fallback, не ошибка.
func (s *RewardService) Credit(ctx context.Context, userID int64, network string) (int64, error) {
	amount, ok := models.NetworkRewards[network]
	if !ok {
		amount = models.DefaultNetworkReward
	}

	if err := s.users.Ensure(ctx, userID); err != nil {
		return 0, err
	}
	if err := s.users.AddCoins(ctx, userID, amount); err != nil {
		return 0, err
	}

	return amount, nil
}
