package bot

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"github.com/dhanrush/dhanrush-backend/internal/service"
)

// Bot связывает Telegram-транспорт с сервисами: рендерит меню, декодирует
// callback-и и ведёт многошаговый сценарий вывода через SessionService.
type Bot struct {
	api         *tgbotapi.BotAPI
	users       service.UserLedger
	referrals   *service.ReferralService
	bonus       *service.BonusService
	withdrawals *service.WithdrawalService
	sessions    *service.SessionService
	notifier    *Notifier
	webBaseURL  string
	log         *logrus.Entry
}

// New создаёт бота поверх уже авторизованного API-клиента.
func New(
	api *tgbotapi.BotAPI,
	users service.UserLedger,
	referrals *service.ReferralService,
	bonus *service.BonusService,
	withdrawals *service.WithdrawalService,
	sessions *service.SessionService,
	notifier *Notifier,
	webBaseURL string,
	log *logrus.Entry,
) *Bot {
	return &Bot{
		api:         api,
		users:       users,
		referrals:   referrals,
		bonus:       bonus,
		withdrawals: withdrawals,
		sessions:    sessions,
		notifier:    notifier,
		webBaseURL:  webBaseURL,
		log:         log,
	}
}

// Run запускает long-poll цикл и обрабатывает обновления до отмены контекста.
func (b *Bot) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	b.log.WithField("username", b.api.Self.UserName).Info("bot: long-poll started")

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		if update.Message.IsCommand() {
			b.handleCommand(ctx, update.Message)
			return
		}
		b.handleText(ctx, update.Message)
	}
}

// referralLink собирает персональную ссылку-приглашение пользователя.
func (b *Bot) referralLink(userID int64) string {
	return fmt.Sprintf("https://t.me/%s?start=%d", b.api.Self.UserName, userID)
}

// webAppURL собирает адрес веб-приложения с идентификатором пользователя,
// чтобы страница могла атрибуцировать награды через /reward.
func (b *Bot) webAppURL(userID int64) string {
	return fmt.Sprintf("%s/web/index.html?uid=%d", b.webBaseURL, userID)
}
