package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"github.com/dhanrush/dhanrush-backend/internal/goroutine"
	"github.com/dhanrush/dhanrush-backend/internal/models"
)

// Notifier отправляет best-effort уведомления: пригласившему о награде и
// администратору о новой заявке на вывод. Отправка идёт в отдельной горутине,
// ошибка доставки (например, пользователь заблокировал бота) логируется и
// никогда не влияет на исход вызвавшей операции.
type Notifier struct {
	api     *tgbotapi.BotAPI
	adminID int64
	rh      *goroutine.RecoveryHandler
	log     *logrus.Entry
}

// NewNotifier создаёт Notifier. adminID == 0 отключает уведомления администратору.
func NewNotifier(api *tgbotapi.BotAPI, adminID int64, log *logrus.Entry) *Notifier {
	return &Notifier{
		api:     api,
		adminID: adminID,
		rh:      goroutine.NewRecoveryHandler(log),
		log:     log,
	}
}

// NotifyReferralCredited сообщает пригласившему о начисленной награде.
func (n *Notifier) NotifyReferralCredited(referrerID int64, reward int64) {
	text := fmt.Sprintf("🎉 New user joined via your DhanRush link! +%d coins credited.", reward)
	n.send(referrerID, text)
}

// NotifyWithdrawalRequested отправляет администратору детали новой заявки.
func (n *Notifier) NotifyWithdrawalRequested(w *models.Withdrawal) {
	if n.adminID == 0 {
		return
	}

	text := fmt.Sprintf(
		"💳 New DhanRush withdraw request:\nUser: <code>%d</code>\nAmount: %.2f₹ (%d coins)\nMethod: %s\nDetails: %s",
		w.UserID, w.Rupees, w.Coins, w.Method, w.Details,
	)
	n.send(n.adminID, text)
}

func (n *Notifier) send(chatID int64, text string) {
	n.rh.SafeGo(func() {
		msg := tgbotapi.NewMessage(chatID, text)
		msg.ParseMode = tgbotapi.ModeHTML
		if _, err := n.api.Send(msg); err != nil {
			n.log.WithError(err).WithField("chat_id", chatID).Warn("notification not delivered")
		}
	})
}
