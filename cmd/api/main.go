package main

import (
	"log"

	_ "solar_quote/docs"
	"solar_quote/internal/adapter/http/routes"
	"solar_quote/internal/infrastructure/config"
	"solar_quote/internal/infrastructure/logging"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Solar Quote API
// @version         1.0
// @description     Assembles solar installation quotes from the equipment catalog and prices them.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey AgentID
// @in header
// @name X-Agent-ID
// @description Numeric id of the sales agent preparing the quote.

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	logging.Set(logger)

	if err := routes.Run(cfg); err != nil {
		logger.Fatal("[api] server stopped", zap.Error(err))
	}
}
