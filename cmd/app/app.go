package app

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/depotbar/stock-api/internal/api"
	"github.com/depotbar/stock-api/internal/config"
	"github.com/depotbar/stock-api/internal/db"
	"github.com/depotbar/stock-api/internal/logger"
	"github.com/depotbar/stock-api/internal/repository"
	"github.com/depotbar/stock-api/internal/repository/dao"
	"github.com/depotbar/stock-api/internal/service"
	"github.com/depotbar/stock-api/internal/store"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	productRepo, transactionRepo, err := openStorage(conf)
	if err != nil {
		return fmt.Errorf("failed to initialize storage -> %w", err)
	}

	s := api.NewServer(conf, productRepo, transactionRepo)

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}

func openStorage(conf *config.AppConfig) (service.ProductRepository, service.TransactionRepository, error) {
	if conf.API.Storage == config.StorageMemory {
		zap.L().Info("using in-memory storage with demo catalog")
		st := store.New()
		st.Seed(store.DemoCatalog()...)

		return st, st, nil
	}

	dbURL := os.Getenv("DATABASE_URL")
	var postgresDB *gorm.DB
	var err error
	if dbURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(dbURL)
	} else {
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return nil, nil, err
	}

	productRepo := repository.NewProductRepository(dao.NewProductDAO(postgresDB))
	transactionRepo := repository.NewTransactionRepository(dao.NewTransactionDAO(postgresDB))

	return productRepo, transactionRepo, nil
}
