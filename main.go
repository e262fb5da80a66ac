package main

import (
	"context"
	"log"

	"bistro-boss/cmd"
	"bistro-boss/internal/data/repository"
	"bistro-boss/internal/usecase"
	"bistro-boss/internal/wire"
	"bistro-boss/pkg/broker"
	"bistro-boss/pkg/database"
	"bistro-boss/pkg/payment"
	"bistro-boss/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	ctx := context.Background()

	db, err := database.InitDB(ctx, config.Database, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.Migrate(ctx, db); err != nil {
		logger.Fatal("Failed to apply schema", zap.Error(err))
	}

	repos := repository.NewRepository(db, logger)

	ext := usecase.External{
		Payments: payment.NewStripeGateway(config.Payment.SecretKey, config.Payment.Currency, logger),
		Events:   broker.Nop{},
	}

	if config.Broker.URL != "" {
		publisher, err := broker.Dial(config.Broker.URL, config.Broker.Exchange, logger)
		if err != nil {
			logger.Warn("Order events disabled, broker unreachable", zap.Error(err))
		} else {
			defer publisher.Close()
			ext.Events = publisher
		}
	}

	app := wire.Wiring(repos, config, ext, logger)

	if err := cmd.APIServer(app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server stopped", zap.Error(err))
	}
}
