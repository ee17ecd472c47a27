package models

import "time"

// Статусы заявки. Система создаёт заявку в pending; дальнейшие переходы
// делает администратор вручную, вне этого сервиса.
const (
	WithdrawalStatusPending = "pending"
)

// Способы выплаты.
const (
	MethodUPI   = "UPI"
	MethodPaytm = "Paytm"
	MethodBank  = "Bank"
	MethodOther = "Other"
)

// Withdrawal — заявка на вывод средств. Создаётся один раз и после этого
// с точки зрения сервиса неизменна.
type Withdrawal struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	Coins     int64     `db:"coins" json:"coins"`
	Rupees    float64   `db:"rupees" json:"rupees"`
	Method    string    `db:"method" json:"method"`
	Details   string    `db:"details" json:"details"`
	Status    string    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
