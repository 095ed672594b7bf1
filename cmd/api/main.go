package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/laundrahub/admin-service/internal/api/http"
	"github.com/laundrahub/admin-service/internal/api/http/handlers"
	"github.com/laundrahub/admin-service/internal/auth"
	"github.com/laundrahub/admin-service/internal/config"
	"github.com/laundrahub/admin-service/internal/events"
	"github.com/laundrahub/admin-service/internal/guard"
	"github.com/laundrahub/admin-service/internal/notify"
	"github.com/laundrahub/admin-service/internal/observability"
	"github.com/laundrahub/admin-service/internal/payments"
	"github.com/laundrahub/admin-service/internal/persistence"
	"github.com/laundrahub/admin-service/internal/repository"
	"github.com/laundrahub/admin-service/internal/service"
	"github.com/laundrahub/admin-service/internal/session"
	"github.com/laundrahub/admin-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis, err := persistence.NewRedis(ctx, cfg.Redis, logger)
	if err != nil {
		logger.Fatal("failed to connect redis", zap.Error(err))
	}
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	customerRepo := repository.NewCustomerRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)
	expenseRepo := repository.NewExpenseRepository(pool)
	paymentRepo := repository.NewPaymentRepository(pool)
	foodRepo := repository.NewFoodRepository(pool)
	hotelOrderRepo := repository.NewHotelOrderRepository(pool)
	hotelExpenseRepo := repository.NewHotelExpenseRepository(pool)
	resetRepo := repository.NewPasswordResetRepository(pool)
	reportRepo := repository.NewReportRepository(pool)

	// Browser session store, one Redis hash per session cookie.
	sessionKV := session.NewRedisKV(redis.Client, cfg.Session.SessionTTL(), logger)
	resolver := guard.NewResolver(sessionKV, cfg.Session.CookieName)

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes, cfg.Auth.RefreshTokenTTLHours)
	authMiddleware := auth.NewMiddleware(tokens, userRepo)

	var mailer notify.Mailer
	if m := notify.NewSMTPMailer(cfg.Email); m != nil {
		mailer = m
	}
	var smsSender notify.SMSSender
	if t := notify.NewTwilioSender(cfg.SMS); t != nil {
		smsSender = t
	}
	mpesa := payments.NewMpesaClient(cfg.Mpesa)

	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		UserRepo:          userRepo,
		PasswordResetRepo: resetRepo,
		Tokens:            tokens,
		Redis:             redis.Client,
		Mailer:            mailer,
		Logger:            logger,
	})
	laundryService := service.NewLaundryService(customerRepo, orderRepo, expenseRepo, paymentRepo, dispatcher, logger)
	hotelService := service.NewHotelService(foodRepo, hotelOrderRepo, hotelExpenseRepo, logger)
	reportService := service.NewReportService(reportRepo, logger)
	userService := service.NewUserService(userRepo, cfg.Auth.BcryptCost, logger)
	notificationService := service.NewNotificationService(smsSender, logger)

	worker.StartNotificationWorker(notificationService, dispatcher)

	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis, metrics),
		Auth:           handlers.NewAuthHandler(authService, resolver),
		Pages:          handlers.NewPagesHandler(),
		Customers:      handlers.NewCustomersHandler(laundryService),
		Orders:         handlers.NewOrdersHandler(laundryService),
		Expenses:       handlers.NewExpensesHandler(laundryService),
		Hotel:          handlers.NewHotelHandler(hotelService),
		Reports:        handlers.NewReportsHandler(reportService),
		Users:          handlers.NewUsersHandler(userService),
		Payments:       handlers.NewPaymentsHandler(mpesa),
		Resolver:       resolver,
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
