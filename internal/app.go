// internal/app.go
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"

	router "peertrade/internal/api"
	"peertrade/internal/api/handler"
	"peertrade/internal/config"
	"peertrade/internal/gateway"
	"peertrade/internal/repository"
	"peertrade/internal/repository/postgres"
	"peertrade/internal/service"
	"peertrade/internal/util"
	"peertrade/pkg/db"
)

// Application holds all the initialized components of the application.
type Application struct {
	Config *config.AppConfig
	Logger *slog.Logger
	DB     *sqlx.DB

	// Repositories
	UserRepository        repository.UserRepository
	WalletRepository      repository.WalletRepository
	TradeRepository       repository.TradeRepository
	BuyTradeRepository    repository.BuyTradeRepository
	BeneficiaryRepository repository.BeneficiaryRepository
	TransactionRepository repository.UserTransactionRepository
	NotificationRepo      repository.NotificationRepository

	// Gateways
	OpenBanking   *gateway.OpenBankingClient
	CardProcessor *gateway.CardProcessorClient
	AssetLedger   *gateway.AssetLedgerClient
	AccountLink   *gateway.AccountLinkClient

	// Services
	UserService         service.UserService
	WalletService       service.WalletService
	TradeService        service.TradeService
	TransactionService  service.UserTransactionService
	NotificationService service.NotificationService

	// HTTP API
	HTTPHandler http.Handler
}

// NewApplication creates a new Application instance.
func NewApplication() *Application {
	return &Application{}
}

// Initialize initializes all application components.
func (app *Application) Initialize(ctx context.Context) error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.Config = cfg

	// 2. Initialize Logger
	util.InitLogger(cfg.Env)
	app.Logger = util.GetLogger()
	app.Logger.Info("Application configuration loaded successfully.")

	// 3. Connect to Database and apply schema
	database, err := db.NewPostgresDB(app.Config.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = database
	if err := db.Migrate(ctx, app.DB); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	app.Logger.Info("Database connection established.")

	// 4. Initialize Repositories
	app.UserRepository = postgres.NewUserRepository()
	app.WalletRepository = postgres.NewWalletRepository()
	app.TradeRepository = postgres.NewTradeRepository()
	app.BuyTradeRepository = postgres.NewBuyTradeRepository()
	app.BeneficiaryRepository = postgres.NewBeneficiaryRepository()
	app.TransactionRepository = postgres.NewUserTransactionRepository()
	app.NotificationRepo = postgres.NewNotificationRepository()
	app.Logger.Info("Repositories initialized.")

	// 5. Initialize Gateways
	app.OpenBanking = gateway.NewOpenBankingClient(cfg.OpenBanking)
	app.CardProcessor = gateway.NewCardProcessorClient(cfg.CardProcessor)
	app.AssetLedger = gateway.NewAssetLedgerClient(cfg.AssetLedger)
	app.AccountLink = gateway.NewAccountLinkClient(cfg.AccountLink)
	app.Logger.Info("Payment gateways initialized.")

	// 6. Initialize Services
	app.UserService = service.NewUserService(app.DB, app.UserRepository)
	app.NotificationService = service.NewNotificationService(app.DB, app.NotificationRepo)
	app.TransactionService = service.NewUserTransactionService(app.DB, app.TransactionRepository)
	app.WalletService = service.NewWalletService(
		app.DB, // DBTxBeginner
		app.DB, // DBExecutor
		app.WalletRepository,
		app.TransactionRepository,
		db.BeginTx,
		db.CommitTx,
		db.RollbackTx,
		cfg.DefaultCurrencies,
		app.Logger,
	)
	app.TradeService = service.NewTradeService(service.TradeServiceDeps{
		DBBeginner:      app.DB,
		DBExecutor:      app.DB,
		TradeRepo:       app.TradeRepository,
		BuyTradeRepo:    app.BuyTradeRepository,
		BeneficiaryRepo: app.BeneficiaryRepository,
		TransactionRepo: app.TransactionRepository,
		Wallets:         app.WalletService,
		Notifier:        app.NotificationService,
		Payouts:         app.OpenBanking,
		BeginTx:         db.BeginTx,
		CommitTx:        db.CommitTx,
		RollbackTx:      db.RollbackTx,
		Logger:          app.Logger,
	})
	app.Logger.Info("Services initialized.")

	// 7. Initialize HTTP Handlers and Router
	handlers := router.Handlers{
		Trade:        handler.NewTradeHandler(app.TradeService, app.Logger),
		Wallet:       handler.NewWalletHandler(app.WalletService, app.Logger),
		Transaction:  handler.NewTransactionHandler(app.TransactionService, app.Logger),
		Notification: handler.NewNotificationHandler(app.NotificationService, app.Logger),
		User: handler.NewUserHandler(app.UserService, app.Logger),
		Payments: handler.NewPaymentsHandler(
			app.CardProcessor,
			app.OpenBanking,
			app.AssetLedger,
			app.AccountLink,
			app.Logger,
		),
	}
	app.HTTPHandler = router.NewRouter(handlers, cfg.JWTSecret)
	app.Logger.Info("HTTP router and handlers initialized.")

	return nil
}

// Shutdown gracefully shuts down application resources.
func (app *Application) Shutdown(ctx context.Context) error {
	app.Logger.Info("Shutting down application...")
	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			app.Logger.Error("Failed to close database connection", "error", err)
			return fmt.Errorf("failed to close database connection: %w", err)
		}
		app.Logger.Info("Database connection closed.")
	}
	app.Logger.Info("Application shut down gracefully.")
	return nil
}
