package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jmoiron/sqlx"

	"github.com/dhanrush/dhanrush-backend/internal/bot"
	"github.com/dhanrush/dhanrush-backend/internal/config"
	"github.com/dhanrush/dhanrush-backend/internal/db"
	httpHandlers "github.com/dhanrush/dhanrush-backend/internal/http/handlers"
	httpRouter "github.com/dhanrush/dhanrush-backend/internal/http/router"
	"github.com/dhanrush/dhanrush-backend/internal/logger"
	"github.com/dhanrush/dhanrush-backend/internal/repository"
	"github.com/dhanrush/dhanrush-backend/internal/service"
)

// sessionTTL — время жизни брошенного сценария вывода.
const sessionTTL = 30 * time.Minute

func main() {
	// Готовим контекст для graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: ошибка загрузки конфигурации: %v", err)
	}

	logger.Init(cfg.Env)

	// Подключение к базе и схема.
	dbConn, err := db.NewSQLite(ctx, cfg.DBPath)
	if err != nil {
		log.Fatalf("main: ошибка подключения к базе: %v", err)
	}
	defer safeClose(dbConn)

	if err := db.InitSchema(ctx, dbConn); err != nil {
		log.Fatalf("main: ошибка инициализации схемы: %v", err)
	}

	// Репозитории.
	userRepo := repository.NewUserRepository(dbConn)
	withdrawalRepo := repository.NewWithdrawalRepository(dbConn)

	// Telegram-клиент.
	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		log.Fatalf("main: не удалось авторизовать бота: %v", err)
	}

	notifier := bot.NewNotifier(api, cfg.AdminID, logger.WithComponent("notifier"))

	// Сервисы.
	rewardService := service.NewRewardService(userRepo)
	referralService := service.NewReferralService(userRepo, notifier)
	bonusService := service.NewBonusService(userRepo)
	withdrawalService := service.NewWithdrawalService(userRepo, withdrawalRepo)
	sessions := service.NewSessionService(sessionTTL)

	tgBot := bot.New(
		api,
		userRepo,
		referralService,
		bonusService,
		withdrawalService,
		sessions,
		notifier,
		cfg.WebBaseURL,
		logger.WithComponent("bot"),
	)

	// HTTP хэндлеры и роутер.
	healthHandler := httpHandlers.NewHealthHandler(dbConn)
	rewardHandler := httpHandlers.NewRewardHandler(rewardService, logger.WithComponent("reward"))

	engine := httpRouter.SetupRouter(cfg, healthHandler, rewardHandler)

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: engine,
	}

	// Бот крутит long-poll параллельно HTTP-серверу.
	go tgBot.Run(ctx)

	// Завершаем сервер при получении сигнала.
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("main: ошибка остановки http сервера: %v", err)
		}
	}()

	log.Printf("main: HTTP сервер запущен на порту %s", cfg.HTTPPort)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("main: сервер завершился с ошибкой: %v", err)
	}
}

// safeClose закрывает соединение с базой.
func safeClose(db *sqlx.DB) {
	if err := db.Close(); err != nil {
		log.Printf("main: ошибка закрытия базы: %v", err)
	}
}
