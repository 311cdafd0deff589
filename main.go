package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/alimp01/hural-bot/config"
	"github.com/alimp01/hural-bot/cron"
	signupRepo "github.com/alimp01/hural-bot/database/repository/signup"
	"github.com/alimp01/hural-bot/handlers"
	"github.com/alimp01/hural-bot/routes"
	"github.com/alimp01/hural-bot/services/calendar"
	"github.com/alimp01/hural-bot/services/digest"
	"github.com/alimp01/hural-bot/services/signup"
	"github.com/alimp01/hural-bot/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	loc, err := time.LoadLocation(config.AppConfig.Timezone)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid TIMEZONE %q: %v", config.AppConfig.Timezone, err)
	}

	ctx := context.Background()

	// Durable store: the signups spreadsheet.
	repo, err := signupRepo.NewSheetsSignupRepo(ctx,
		config.AppConfig.SheetsCredentialsPath,
		config.AppConfig.SheetID,
		config.AppConfig.SheetName,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize sheets repository: %v", err)
	}

	catalog := signup.NewCatalog(config.AppConfig.Slots)

	// Pending selections: in-process by default, redis when TTL eviction of
	// abandoned selections is wanted.
	var store signup.SelectionStore
	var redisClients []*redis.Client
	switch config.AppConfig.SelectionStore {
	case "redis":
		utils.InitSelectionCache()
		client := utils.GetSelectionCacheClient()
		redisClients = append(redisClients, client)
		ttl := time.Duration(config.AppConfig.SelectionTTLMin) * time.Minute
		store = signup.NewRedisStore(client, ttl)
	default:
		store = signup.NewMemoryStore()
	}

	bot, err := tgbotapi.NewBotAPI(config.AppConfig.BotToken)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to telegram: %v", err)
	}
	logger.Sugar().Infof("Authorized as @%s", bot.Self.UserName)

	gateway := handlers.NewTelegramGateway(bot)

	var mirror calendar.EventMirror
	if config.AppConfig.CalendarEnabled {
		m, err := calendar.NewGoogleCalendarService(ctx,
			config.AppConfig.SheetsCredentialsPath,
			config.AppConfig.CalendarID,
			loc,
			config.AppConfig.Slots,
			logger,
		)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize calendar mirror: %v", err)
		}
		mirror = m
	}

	signupService := &signup.DefaultSignupService{
		Catalog:      catalog,
		Store:        store,
		Repo:         repo,
		Gateway:      gateway,
		Mirror:       mirror,
		Location:     loc,
		EventWeekday: time.Weekday(config.AppConfig.EventWeekday),
		Logger:       logger,
	}

	digestService := &digest.DefaultDigestService{
		Repo:        repo,
		Gateway:     gateway,
		Destination: config.AppConfig.ChannelID,
		Location:    loc,
		Logger:      logger,
	}

	reminderWorker, err := cron.StartReminderWorker(digestService, cron.Schedule{
		Weekday: config.AppConfig.ReminderWeekday,
		Hour:    config.AppConfig.ReminderHour,
		Minute:  config.AppConfig.ReminderMinute,
	}, loc, logger)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to start reminder worker: %v", err)
	}
	defer reminderWorker.Stop()

	runCtx, cancelRun := context.WithCancel(context.Background())
	defer cancelRun()

	botHandler := handlers.NewBotHandler(runCtx, bot, signupService, logger)

	// Update source: webhook behind the HTTP server, or long polling.
	webhookEnabled := config.AppConfig.TelegramMode == "webhook"
	if webhookEnabled {
		// The public URL carries the literal token; the route itself matches
		// on a :token parameter and the handler verifies it.
		wh, err := tgbotapi.NewWebhook(config.AppConfig.WebhookURL + "/webhook/" + bot.Token)
		if err != nil {
			logger.Sugar().Fatalf("main: bad WEBHOOK_URL: %v", err)
		}
		if _, err := bot.Request(wh); err != nil {
			logger.Sugar().Fatalf("main: failed to register webhook: %v", err)
		}
	} else {
		if _, err := bot.Request(tgbotapi.DeleteWebhookConfig{}); err != nil {
			logger.Sugar().Warnf("main: failed to drop stale webhook: %v", err)
		}
		go botHandler.RunPolling(runCtx)
	}

	utils.StartHealthMonitor(redisClients)

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	routes.RegisterRoutes(router, botHandler, webhookEnabled)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: bot is shutting down...")
	cancelRun()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: bot stopped gracefully")
}
