package models

// Экономика DhanRush: фиксированный курс и лимиты.
const (
	// CoinsPerRupee — курс конвертации: 10 монет = 1₹.
	CoinsPerRupee = 10

	// MinWithdrawRupees — минимальная сумма вывода в рупиях.
	MinWithdrawRupees = 10

	// MinWithdrawCoins — тот же минимум в монетах.
	MinWithdrawCoins = MinWithdrawRupees * CoinsPerRupee

	// DailyBonusCoins — размер ежедневного бонуса.
	DailyBonusCoins = 5

	// ReferralRewardCoins — награда пригласившему за нового пользователя.
	ReferralRewardCoins = 5
)

// Награды рекламных сетей за подтверждённый просмотр. Неизвестная сеть
// получает DefaultNetworkReward — это осознанный fallback, а не ошибка.
const DefaultNetworkReward = 1

var NetworkRewards = map[string]int64{
	"monetag":  3,
	"adsterra": 5,
	"unity":    7,
	"gamezop":  4,
}
