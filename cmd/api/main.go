package main

import (
	"os"

	"github.com/rs/zerolog/log"

	_ "pix_checkout/docs"
	"pix_checkout/internal/adapter/http/routes"
	"pix_checkout/internal/infrastructure/config"
	"pix_checkout/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           PIX Checkout API
// @version         1.0
// @description     Creates PIX charges and checks their payment status through a configurable PIX provider.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Setup("info", "json")
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	logger.Setup(cfg.LogLevel, cfg.LogFormat)

	if err := routes.Run(cfg); err != nil {
		os.Exit(1)
	}
}
