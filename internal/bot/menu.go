package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/dhanrush/dhanrush-backend/internal/models"
)

const tagline = "Turn Your Time Into Dhan — Only on DhanRush!"

// mainMenu — главное меню бота.
func mainMenu() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎥 Watch Ads", callbackWatch),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎁 Daily Bonus", callbackBonus),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("👥 Invite Friends", callbackInvite),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🏆 My Balance", callbackBalance),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💳 Withdraw", callbackWithdraw),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🌐 Open DhanRush WebApp", callbackOpenWeb),
		),
	)
}

// methodMenu — выбор способа выплаты.
func methodMenu() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("UPI", callbackMethodUPI),
			tgbotapi.NewInlineKeyboardButtonData("Paytm", callbackMethodPaytm),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Bank", callbackMethodBank),
			tgbotapi.NewInlineKeyboardButtonData("Other", callbackMethodOther),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⬅️ Back", callbackBack),
		),
	)
}

// cancelMenu — единственная кнопка отмены в шаге ввода реквизитов.
func cancelMenu() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("❌ Cancel", callbackBack),
		),
	)
}

// webMenu — кнопка-ссылка на веб-приложение и возврат в меню.
func webMenu(url string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("🌐 Open WebApp", url),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⬅️ Back", callbackBack),
		),
	)
}

func welcomeText(firstName, link string) string {
	return fmt.Sprintf(
		"Hey %s 👋\n<b>Welcome to DhanRush!</b> 💸\n\n%s\n\n"+
			"Watch ads, play games & collect coins.\n"+
			"10 coins = 1₹. Minimum withdrawal 10₹ (100 coins).\n\n"+
			"Your referral link:\n<code>%s</code>",
		firstName, tagline, link,
	)
}

func balanceText(user *models.User) string {
	return fmt.Sprintf(
		"💰 <b>Your DhanRush Balance</b>\n\nCoins: <b>%d</b>\nApprox: <b>%.2f₹</b> (10 coins = 1₹)",
		user.Coins, user.Rupees(),
	)
}

func inviteText(link string) string {
	return "👥 <b>Invite Friends</b>\n\n" +
		"Share this link with your friends so they can also join DhanRush:\n" +
		fmt.Sprintf("<code>%s</code>", link)
}

func bonusClaimedText(balance int64) string {
	return fmt.Sprintf(
		"🎁 Daily bonus claimed! +%d coins\nCurrent balance: %d coins",
		models.DailyBonusCoins, balance,
	)
}

func withdrawIntroText(user *models.User) string {
	return fmt.Sprintf(
		"💳 <b>DhanRush Withdraw</b>\n\nBalance: %d coins ≈ %.2f₹\nMin withdraw: %d₹\n\nChoose withdrawal method:",
		user.Coins, user.Rupees(), models.MinWithdrawRupees,
	)
}

var methodPrompts = map[string]string{
	models.MethodUPI:   "Send your UPI ID (example: name@upi):",
	models.MethodPaytm: "Send your Paytm number or ID:",
	models.MethodBank:  "Send bank details (Account No, IFSC, Name):",
	models.MethodOther: "Send details for your withdrawal method:",
}

func methodPromptText(method string) string {
	return fmt.Sprintf("💳 <b>%s Withdraw</b>\n\n%s", method, methodPrompts[method])
}

func withdrawDoneText(w *models.Withdrawal) string {
	return fmt.Sprintf(
		"✅ Withdraw request created!\nAmount: %.2f₹ (%d coins)\nMethod: %s\n"+
			"It will be processed manually by DhanRush admin.",
		w.Rupees, w.Coins, w.Method,
	)
}

func helpText() string {
	return "Use the menu buttons to watch ads, earn coins, and withdraw on DhanRush.\nCommands: /start"
}
