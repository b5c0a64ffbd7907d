package main

import (
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"fulfillment/cmd"
	adapter "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/httpclient/ordersvc"
	"fulfillment/internal/adapters/out/postgres/agentrepo"
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

	if err = db.AutoMigrate(&agentrepo.AgentDTO{}); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	orders, err := ordersvc.NewClient(config.OrderServiceURL)
	if err != nil {
		log.Fatalf("Failed to create order service client: %v", err)
	}

	root := cmd.NewCompositionRoot(config, db)

	server := adapter.NewAgentServer(
		root.CreateCreateAgentCommandHandler(),
		root.CreateReserveAgentCommandHandler(),
		root.CreateCompleteDeliveryCommandHandler(orders),
		root.CreateGetAgentQueryHandler(),
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
