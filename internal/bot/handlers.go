package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/dhanrush/dhanrush-backend/internal/models"
	"github.com/dhanrush/dhanrush-backend/internal/service"
)

const genericFailureText = "Something went wrong. Please try again later."

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		b.handleStart(ctx, msg)
	default:
		b.reply(msg.Chat.ID, helpText(), mainMenu())
	}
}

// handleStart регистрирует пользователя, атрибуцирует реферальный код из
// аргумента команды и показывает главное меню с персональной ссылкой.
func (b *Bot) handleStart(ctx context.Context, msg *tgbotapi.Message) {
	userID := msg.From.ID

	if err := b.users.Ensure(ctx, userID); err != nil {
		b.log.WithError(err).WithField("user_id", userID).Error("start: ensure user")
		b.reply(msg.Chat.ID, genericFailureText, mainMenu())
		return
	}

	if err := b.referrals.Attribute(ctx, userID, msg.CommandArguments()); err != nil {
		b.log.WithError(err).WithField("user_id", userID).Error("start: referral attribution")
		b.reply(msg.Chat.ID, genericFailureText, mainMenu())
		return
	}

	b.reply(msg.Chat.ID, welcomeText(msg.From.FirstName, b.referralLink(userID)), mainMenu())
}

func (b *Bot) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	userID := cq.From.ID
	chatID := cq.Message.Chat.ID

	action, method := ParseAction(cq.Data)

	if err := b.users.Ensure(ctx, userID); err != nil {
		b.failCallback(cq, err, "callback: ensure user")
		return
	}

	switch action {
	case ActionWatch, ActionOpenWeb:
		b.answer(cq)
		b.edit(cq, "Tap below to open the DhanRush WebApp for watching ads & playing games:", webMenu(b.webAppURL(userID)))

	case ActionBonus:
		balance, err := b.bonus.Claim(ctx, userID)
		if errors.Is(err, service.ErrBonusAlreadyClaimed) {
			b.alert(cq, "You already claimed today's bonus.")
			return
		}
		if err != nil {
			b.failCallback(cq, err, "callback: claim bonus")
			return
		}
		b.answer(cq)
		b.edit(cq, bonusClaimedText(balance), mainMenu())

	case ActionInvite:
		link := b.referralLink(userID)
		b.answer(cq)
		b.edit(cq, inviteText(link), mainMenu())
		b.sendReferralQR(chatID, link)

	case ActionBalance:
		user, err := b.users.GetByID(ctx, userID)
		if err != nil {
			b.failCallback(cq, err, "callback: get balance")
			return
		}
		b.answer(cq)
		b.edit(cq, balanceText(user), mainMenu())

	case ActionWithdraw:
		user, err := b.withdrawals.CheckEligible(ctx, userID)
		if errors.Is(err, service.ErrBelowMinimum) {
			b.alert(cq, fmt.Sprintf("Min withdraw is %d₹ (need %d coins).",
				models.MinWithdrawRupees, models.MinWithdrawCoins))
			return
		}
		if err != nil {
			b.failCallback(cq, err, "callback: withdraw eligibility")
			return
		}
		b.answer(cq)
		b.edit(cq, withdrawIntroText(user), methodMenu())

	case ActionSelectMethod:
		b.sessions.Set(userID, service.Session{Step: service.StepWithdrawDetails, Method: method})
		b.answer(cq)
		b.edit(cq, methodPromptText(method), cancelMenu())

	case ActionBack:
		b.sessions.Clear(userID)
		b.answer(cq)
		b.edit(cq, "Main menu:", mainMenu())

	default:
		b.alert(cq, "Unknown action.")
	}
}

// handleText обрабатывает свободный текст: в шаге ввода реквизитов это
// реквизиты для вывода, во всех остальных случаях — подсказка по меню.
func (b *Bot) handleText(ctx context.Context, msg *tgbotapi.Message) {
	userID := msg.From.ID

	session, ok := b.sessions.Get(userID)
	if !ok || session.Step != service.StepWithdrawDetails {
		b.reply(msg.Chat.ID, helpText(), mainMenu())
		return
	}

	details := strings.TrimSpace(msg.Text)

	w, err := b.withdrawals.Submit(ctx, userID, session.Method, details)
	switch {
	case errors.Is(err, service.ErrBelowMinimum):
		// Баланс успел опуститься ниже минимума между выбором способа
		// и отправкой реквизитов.
		b.sessions.Clear(userID)
		b.reply(msg.Chat.ID, "Balance dropped below minimum withdraw. Try again later.", mainMenu())
	case err != nil:
		b.sessions.Clear(userID)
		b.log.WithError(err).WithField("user_id", userID).Error("text: submit withdrawal")
		b.reply(msg.Chat.ID, genericFailureText, mainMenu())
	default:
		b.sessions.Clear(userID)
		b.reply(msg.Chat.ID, withdrawDoneText(w), mainMenu())
		b.notifier.NotifyWithdrawalRequested(w)
	}
}

// sendReferralQR прикладывает QR-код ссылки-приглашения. Ошибки не критичны.
func (b *Bot) sendReferralQR(chatID int64, link string) {
	png, err := qrcode.Encode(link, qrcode.Medium, 256)
	if err != nil {
		b.log.WithError(err).Warn("invite: qr encode")
		return
	}

	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: "dhanrush-referral.png", Bytes: png})
	photo.Caption = "Scan to join DhanRush"
	if _, err := b.api.Send(photo); err != nil {
		b.log.WithError(err).Warn("invite: send qr")
	}
}

func (b *Bot) reply(chatID int64, text string, markup tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true
	msg.ReplyMarkup = markup
	if _, err := b.api.Send(msg); err != nil {
		b.log.WithError(err).WithField("chat_id", chatID).Warn("send message")
	}
}

func (b *Bot) edit(cq *tgbotapi.CallbackQuery, text string, markup tgbotapi.InlineKeyboardMarkup) {
	edit := tgbotapi.NewEditMessageTextAndMarkup(cq.Message.Chat.ID, cq.Message.MessageID, text, markup)
	edit.ParseMode = tgbotapi.ModeHTML
	edit.DisableWebPagePreview = true
	if _, err := b.api.Send(edit); err != nil {
		b.log.WithError(err).WithField("chat_id", cq.Message.Chat.ID).Warn("edit message")
	}
}

// answer закрывает "часики" на кнопке без текста.
func (b *Bot) answer(cq *tgbotapi.CallbackQuery) {
	if _, err := b.api.Request(tgbotapi.NewCallback(cq.ID, "")); err != nil {
		b.log.WithError(err).Warn("answer callback")
	}
}

// alert показывает всплывающее уведомление поверх чата, состояние не меняется.
func (b *Bot) alert(cq *tgbotapi.CallbackQuery, text string) {
	if _, err := b.api.Request(tgbotapi.NewCallbackWithAlert(cq.ID, text)); err != nil {
		b.log.WithError(err).Warn("alert callback")
	}
}

func (b *Bot) failCallback(cq *tgbotapi.CallbackQuery, err error, op string) {
	b.log.WithError(err).WithField("user_id", cq.From.ID).Error(op)
	b.alert(cq, genericFailureText)
}
