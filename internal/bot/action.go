package bot

import "github.com/dhanrush/dhanrush-backend/internal/models"

// Action — закрытое перечисление действий меню. Callback-данные
// декодируются один раз на границе, дальше диспетчеризация идёт по типу.
type Action int

const (
	ActionUnknown Action = iota
	ActionWatch
	ActionBonus
	ActionInvite
	ActionBalance
	ActionWithdraw
	ActionOpenWeb
	ActionSelectMethod
	ActionBack
)

// Callback-идентификаторы кнопок. Это wire-контракт с уже разосланными
// клавиатурами, менять значения нельзя.
const (
	callbackWatch    = "watch"
	callbackBonus    = "bonus"
	callbackInvite   = "invite"
	callbackBalance  = "bal"
	callbackWithdraw = "withdraw"
	callbackOpenWeb  = "open_web"
	callbackBack     = "back"

	callbackMethodUPI   = "w_m_upi"
	callbackMethodPaytm = "w_m_paytm"
	callbackMethodBank  = "w_m_bank"
	callbackMethodOther = "w_m_other"
)

var methodByCallback = map[string]string{
	callbackMethodUPI:   models.MethodUPI,
	callbackMethodPaytm: models.MethodPaytm,
	callbackMethodBank:  models.MethodBank,
	callbackMethodOther: models.MethodOther,
}

// ParseAction декодирует callback-данные в действие. Для ActionSelectMethod
// вторым значением возвращается выбранный способ выплаты.
func ParseAction(data string) (Action, string) {
	switch data {
	case callbackWatch:
		return ActionWatch, ""
	case callbackBonus:
		return ActionBonus, ""
	case callbackInvite:
		return ActionInvite, ""
	case callbackBalance:
		return ActionBalance, ""
	case callbackWithdraw:
		return ActionWithdraw, ""
	case callbackOpenWeb:
		return ActionOpenWeb, ""
	case callbackBack:
		return ActionBack, ""
	}

	if method, ok := methodByCallback[data]; ok {
		return ActionSelectMethod, method
	}

	return ActionUnknown, ""
}
