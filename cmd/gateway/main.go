package main

import (
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"fulfillment/cmd"
	adapter "fulfillment/internal/adapters/in/http"
)

func main() {
	config, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if config.OrderServiceURL == "" || config.AgentServiceURL == "" {
		log.Fatalf("ORDER_SERVICE_URL and AGENT_SERVICE_URL are required")
	}

	server := adapter.NewGatewayServer(config.OrderServiceURL, config.AgentServiceURL, nil)

	e := echo.New()
	e.Validator = adapter.NewRequestValidator()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)))
}
