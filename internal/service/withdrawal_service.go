package service

import (
	"context"
	"errors"

	"github.com/dhanrush/dhanrush-backend/internal/models"
	"github.com/dhanrush/dhanrush-backend/internal/repository"
)

// ErrUnknownMethod возвращается при неизвестном способе выплаты.
var ErrUnknownMethod = errors.New("unknown withdrawal method")

// ErrBelowMinimum — баланс меньше минимума вывода. Репозиторий повторяет
// эту проверку внутри транзакции, здесь тот же sentinel для пред-проверки.
var ErrBelowMinimum = repository.ErrBelowMinimum

// WithdrawalService оформляет заявки на вывод средств.
type WithdrawalService struct {
	users       UserLedger
	withdrawals WithdrawalLedger
}

// NewWithdrawalService создаёт сервис вывода.
func NewWithdrawalService(users UserLedger, withdrawals WithdrawalLedger) *WithdrawalService {
	return &WithdrawalService{users: users, withdrawals: withdrawals}
}

// CheckEligible проверяет, хватает ли баланса для входа в сценарий вывода,
// и возвращает текущий снимок пользователя.
func (s *WithdrawalService) CheckEligible(ctx context.Context, userID int64) (*models.User, error) {
	if err := s.users.Ensure(ctx, userID); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.Coins < models.MinWithdrawCoins {
		return nil, ErrBelowMinimum
	}

	return user, nil
}

// Submit создаёт заявку на вывод всего баланса. Снятие баланса и запись заявки
// атомарны: к моменту возврата либо есть заявка и нулевой баланс, либо ничего.
// Баланс перепроверяется внутри транзакции — между выбором способа и отправкой
// реквизитов он мог измениться.
func (s *WithdrawalService) Submit(ctx context.Context, userID int64, method, details string) (*models.Withdrawal, error) {
	switch method {
	case models.MethodUPI, models.MethodPaytm, models.MethodBank, models.MethodOther:
	default:
		return nil, ErrUnknownMethod
	}

	return s.withdrawals.Create(ctx, userID, method, details)
}
