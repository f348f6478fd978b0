package main

import (
	"context"
	"os"
	"time"

	_ "sales_engine/docs"
	"sales_engine/internal/adapter/http/routes"
	"sales_engine/internal/adapter/persistence/repository"
	"sales_engine/internal/clock"
	"sales_engine/internal/config"
	"sales_engine/internal/infrastructure/database"
	"sales_engine/internal/infrastructure/datasource"
	"sales_engine/internal/infrastructure/metrics"
	"sales_engine/internal/logger"
	"sales_engine/internal/usecase"
	"sales_engine/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Sales Engine API
// @version         1.0
// @description     Analytics over an in-memory snapshot of merchants, items, customers, invoices and transactions.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New(nil)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	src, err := newRowSource(ctx, cfg)
	if err != nil {
		cancel()
		log.Fatal("failed to configure data source", zap.String("source", cfg.DataSource), zap.Error(err))
	}
	ds, err := datasource.LoadDataset(ctx, src, log, m)
	cancel()
	if err != nil {
		log.Fatal("failed to load dataset", zap.Error(err))
	}

	repos, err := repository.NewRepositories(ds, clock.SystemClock{})
	if err != nil {
		log.Fatal("failed to build repositories", zap.Error(err))
	}

	deps := routes.Dependencies{
		Analyst: usecase.NewSalesAnalyst(repos),
		Catalog: usecase.NewCatalogUseCase(repos.Merchants, repos.Items),
		Log:     log,
		Metrics: m,
	}
	if err := routes.Run(cfg.Port, deps); err != nil {
		log.Error("failed to startup the application", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
}

func newRowSource(ctx context.Context, cfg config.Config) (interfaces.IRowSource, error) {
	switch cfg.DataSource {
	case config.DataSourceDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
		if err != nil {
			return nil, err
		}
		return datasource.NewDynamoDBSource(ddb, cfg.TablePrefix), nil
	default:
		return datasource.NewCSVSource(cfg.DataDir), nil
	}
}
