package models

import "database/sql"

// User описывает участника DhanRush. Ключ — Telegram ID пользователя,
// запись создаётся лениво при первом контакте и никогда не удаляется.
type User struct {
	UserID    int64          `db:"user_id" json:"user_id"`
	Coins     int64          `db:"coins" json:"coins"`
	Referrals int64          `db:"referrals" json:"referrals"`
	LastBonus sql.NullString `db:"last_bonus" json:"last_bonus,omitempty"`
}

// Rupees возвращает эквивалент баланса в рупиях по фиксированному курсу.
func (u *User) Rupees() float64 {
	return float64(u.Coins) / CoinsPerRupee
}
