package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fekuna/omnipos-ledger/config"
	"github.com/fekuna/omnipos-ledger/internal/database/sqlite"
	"github.com/fekuna/omnipos-ledger/internal/ipc"
	"github.com/fekuna/omnipos-ledger/internal/logger"

	billH "github.com/fekuna/omnipos-ledger/internal/billing/handler"
	billRepoPkg "github.com/fekuna/omnipos-ledger/internal/billing/repository"
	billUCPkg "github.com/fekuna/omnipos-ledger/internal/billing/usecase"

	custH "github.com/fekuna/omnipos-ledger/internal/customer/handler"
	custRepoPkg "github.com/fekuna/omnipos-ledger/internal/customer/repository"
	custUCPkg "github.com/fekuna/omnipos-ledger/internal/customer/usecase"

	discH "github.com/fekuna/omnipos-ledger/internal/discount/handler"
	discRepoPkg "github.com/fekuna/omnipos-ledger/internal/discount/repository"
	discUCPkg "github.com/fekuna/omnipos-ledger/internal/discount/usecase"

	invH "github.com/fekuna/omnipos-ledger/internal/inventory/handler"
	invRepoPkg "github.com/fekuna/omnipos-ledger/internal/inventory/repository"
	invUCPkg "github.com/fekuna/omnipos-ledger/internal/inventory/usecase"

	itemH "github.com/fekuna/omnipos-ledger/internal/item/handler"
	itemRepoPkg "github.com/fekuna/omnipos-ledger/internal/item/repository"
	itemUCPkg "github.com/fekuna/omnipos-ledger/internal/item/usecase"

	purH "github.com/fekuna/omnipos-ledger/internal/purchase/handler"
	purRepoPkg "github.com/fekuna/omnipos-ledger/internal/purchase/repository"
	purUCPkg "github.com/fekuna/omnipos-ledger/internal/purchase/usecase"

	repH "github.com/fekuna/omnipos-ledger/internal/report/handler"
	repRepoPkg "github.com/fekuna/omnipos-ledger/internal/report/repository"
	repUCPkg "github.com/fekuna/omnipos-ledger/internal/report/usecase"

	setH "github.com/fekuna/omnipos-ledger/internal/settings/handler"
	setRepoPkg "github.com/fekuna/omnipos-ledger/internal/settings/repository"
	setUCPkg "github.com/fekuna/omnipos-ledger/internal/settings/usecase"

	sizeH "github.com/fekuna/omnipos-ledger/internal/size/handler"
	sizeRepoPkg "github.com/fekuna/omnipos-ledger/internal/size/repository"
	sizeUCPkg "github.com/fekuna/omnipos-ledger/internal/size/usecase"

	vendH "github.com/fekuna/omnipos-ledger/internal/vendors/handler"
	vendRepoPkg "github.com/fekuna/omnipos-ledger/internal/vendors/repository"
	vendUCPkg "github.com/fekuna/omnipos-ledger/internal/vendors/usecase"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// Money goes over the wire as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}

	if cfg.Server.AppEnv == "development" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = "console"
		logConfig.Level = "debug"
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Open and initialize the store
	initializer := sqlite.NewInitializer(&sqlite.Config{
		Path:          cfg.SQLite.Path,
		JournalMode:   cfg.SQLite.JournalMode,
		BusyTimeoutMS: cfg.SQLite.BusyTimeoutMS,
		MaxOpenConns:  cfg.SQLite.MaxOpenConns,
	}, &sqlite.SeedConfig{
		AdminUsername: cfg.Admin.Username,
		AdminPassword: cfg.Admin.DefaultPassword,
	})
	db, err := initializer.Initialize(ctx)
	if err != nil {
		appLogger.Fatal("Could not initialize store", zap.String("path", cfg.SQLite.Path), zap.Error(err))
	}
	defer initializer.Close()
	appLogger.Info("Store ready", zap.String("path", cfg.SQLite.Path), zap.Int("schema_version", sqlite.SchemaVersion))

	// 4. Initialize Repositories
	vendRepo := vendRepoPkg.NewSQLiteRepository(db)
	itemRepo := itemRepoPkg.NewSQLiteRepository(db)
	invRepo := invRepoPkg.NewSQLiteRepository(db)
	sizeRepo := sizeRepoPkg.NewSQLiteRepository(db)
	discRepo := discRepoPkg.NewSQLiteRepository(db)
	custRepo := custRepoPkg.NewSQLiteRepository(db)
	setRepo := setRepoPkg.NewSQLiteRepository(db)
	purRepo := purRepoPkg.NewSQLiteRepository(db)
	billRepo := billRepoPkg.NewSQLiteRepository(db)
	repRepo := repRepoPkg.NewSQLiteRepository(db)

	// 5. Initialize UseCases
	vendUC := vendUCPkg.NewVendorUseCase(vendRepo, appLogger)
	itemUC := itemUCPkg.NewItemUseCase(itemRepo, vendRepo, appLogger)
	invUC := invUCPkg.NewInventoryUseCase(invRepo, appLogger)
	sizeUC := sizeUCPkg.NewSizeUseCase(sizeRepo, appLogger)
	discUC := discUCPkg.NewDiscountUseCase(discRepo, appLogger)
	custUC := custUCPkg.NewCustomerUseCase(custRepo, discRepo, appLogger)
	setUC := setUCPkg.NewSettingsUseCase(setRepo, appLogger)
	purUC := purUCPkg.NewPurchaseUseCase(purRepo, vendRepo, appLogger)
	billUC := billUCPkg.NewBillingUseCase(billRepo, custRepo, appLogger)
	repUC := repUCPkg.NewReportUseCase(repRepo, cfg.Report.LowStockThreshold, appLogger)

	// 6. Register Handlers
	router := ipc.NewRouter(appLogger)
	vendH.NewVendorHandler(vendUC, appLogger).Register(router)
	itemH.NewItemHandler(itemUC, appLogger).Register(router)
	invH.NewInventoryHandler(invUC, appLogger).Register(router)
	sizeH.NewSizeHandler(sizeUC, appLogger).Register(router)
	discH.NewDiscountHandler(discUC, appLogger).Register(router)
	custH.NewCustomerHandler(custUC, appLogger).Register(router)
	setH.NewSettingsHandler(setUC, appLogger).Register(router)
	purH.NewPurchaseHandler(purUC, appLogger).Register(router)
	billH.NewBillingHandler(billUC, appLogger).Register(router)
	repH.NewReportHandler(repUC, appLogger).Register(router)

	// 7. Serve requests on stdin/stdout
	appLogger.Info("Serving ledger requests on stdio", zap.Int("operations", len(router.Ops())))

	done := make(chan error, 1)
	go func() {
		done <- router.Serve(ctx, os.Stdin, os.Stdout)
	}()

	select {
	case err := <-done:
		if err != nil {
			appLogger.Error("Request stream failed", zap.Error(err))
		}
	case <-ctx.Done():
		appLogger.Info("Shutting down ledger...")
	}
	appLogger.Info("Ledger stopped")
}
