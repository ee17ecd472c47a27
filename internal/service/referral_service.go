package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/dhanrush/dhanrush-backend/internal/models"
	"github.com/dhanrush/dhanrush-backend/internal/repository"
)

// ReferralNotifier уведомляет пригласившего о начисленной награде.
// Доставка best-effort: реализация не возвращает ошибку и не блокирует вызов.
type ReferralNotifier interface {
	NotifyReferralCredited(referrerID int64, reward int64)
}

// ReferralService атрибуцирует новых пользователей пригласившим.
type ReferralService struct {
	users    UserLedger
	notifier ReferralNotifier
}

// NewReferralService создаёт сервис рефералов.
func NewReferralService(users UserLedger, notifier ReferralNotifier) *ReferralService {
	return &ReferralService{users: users, notifier: notifier}
}

// Attribute обрабатывает реферальный код из /start. Нечитаемый код,
// самоприглашение и неизвестный пригласивший молча игнорируются — новый
// пользователь об этом не узнаёт. Ошибка возвращается только при сбое хранилища.
func (s *ReferralService) Attribute(ctx context.Context, newUserID int64, payload string) error {
	if payload == "" {
		return nil
	}

	referrerID, err := strconv.ParseInt(payload, 10, 64)
	if err != nil {
		return nil
	}
	if referrerID == newUserID {
		return nil
	}

	if _, err := s.users.GetByID(ctx, referrerID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil
		}
		return err
	}

	if err := s.users.AddReferral(ctx, referrerID); err != nil {
		return err
	}
	if err := s.users.AddCoins(ctx, referrerID, models.ReferralRewardCoins); err != nil {
		return err
	}

	if s.notifier != nil {
		s.notifier.NotifyReferralCredited(referrerID, models.ReferralRewardCoins)
	}

	return nil
}
