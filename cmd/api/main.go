package main

import (
	_ "paulocell_pdv/docs"
	"paulocell_pdv/internal/adapter/http/routes"
	"paulocell_pdv/internal/infrastructure/config"
	"paulocell_pdv/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Paulo Cell PDV API
// @version         1.0
// @description     Repair shop and point-of-sale backend: customers, devices, service orders, inventory, fiscal documents and payments.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg := config.Load()
	logger.SetLevel(cfg.LogLevel)

	if err := routes.Run(cfg); err != nil {
		logger.Get().Fatalf("Failed to startup the application: %v", err)
	}
}
