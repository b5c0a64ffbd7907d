package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"fulfillment/cmd"
	adapter "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/httpclient/agentsvc"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/restaurantrepo"
	"fulfillment/internal/jobs"
)

func main() {
	config, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := gorm.Open(gorm_postgres.Open(config.PostgresDSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&restaurantrepo.RestaurantDTO{},
		&restaurantrepo.MenuItemDTO{},
	); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	reservation, err := agentsvc.NewClient(config.AgentServiceURL)
	if err != nil {
		log.Fatalf("Failed to create agent service client: %v", err)
	}

	root := cmd.NewCompositionRoot(config, db)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With("service", "order-service")

	jobManager := jobs.NewJobManager(
		root.CreateGetStuckOrdersQueryHandler(),
		root.CreateGetAcceptanceFailureCountsQueryHandler(),
		config.StuckOrderThreshold,
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	server := adapter.NewOrderServer(
		root.CreateCreateOrderCommandHandler(),
		root.CreateUpdateOrderStatusCommandHandler(reservation),
		root.CreateRateOrderCommandHandler(),
		root.CreateCreateRestaurantCommandHandler(),
		root.CreateUpdateRestaurantCommandHandler(),
		root.CreateAddMenuItemCommandHandler(),
		root.CreateUpdateMenuItemCommandHandler(),
		root.CreateGetOrderQueryHandler(),
		root.CreateGetRestaurantQueryHandler(),
		root.CreateGetAvailableRestaurantsQueryHandler(),
		root.CreateGetMenuQueryHandler(),
	)

	e := echo.New()
	e.Validator = adapter.NewRequestValidator()

	if config.OpenAPISpecPath != "" {
		middleware, mwErr := adapter.NewOpenAPIValidationMiddleware(config.OpenAPISpecPath)
		if mwErr != nil {
			log.Fatalf("Failed to load OpenAPI document: %v", mwErr)
		}
		e.Use(middleware)
	}

	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)))
}
