package routes

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "pix_checkout/docs"
	"pix_checkout/internal/adapter/http/handlers"
	"pix_checkout/internal/infrastructure/config"
	"pix_checkout/internal/infrastructure/logger"
	"pix_checkout/internal/infrastructure/payments"
	"pix_checkout/internal/usecase"
	"pix_checkout/internal/usecase/interfaces"
	"pix_checkout/pkg"
)

// Run will start the server
func Run(cfg config.Config) error {
	log := logger.Component("http")

	router := NewRouter(cfg)
	log.Info().Int("port", cfg.Port).Str("provider", cfg.Provider).Msg("starting server")
	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		log.Error().Err(err).Msg("failed to startup the application")
		return err
	}
	return nil
}

// NewRouter wires handlers to the gateway selected by cfg. A gateway that
// cannot be built leaves the PIX routes answering INTERNAL_ERROR instead of
// aborting startup.
func NewRouter(cfg config.Config) *gin.Engine {
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(router, cfg)
	return router
}

func getRoutes(router *gin.Engine, cfg config.Config) {
	log := logger.Component("http")

	var gateway interfaces.IPixGateway
	gw, err := payments.NewPixGateway(cfg)
	if err != nil {
		log.Error().Err(err).Str("provider", cfg.Provider).Msg("pix gateway not configured")
	} else {
		gateway = gw
	}

	pixUseCase := usecase.NewPixChargeUseCase(gateway)
	pixHandler := handlers.NewPixChargeHandler(pixUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPixRoutes(v1, pixHandler)
}

func setMiddlewares(router *gin.Engine) {
	log := logger.Component("http")

	router.Use(handlers.RequestID())
	router.Use(requestLogger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error().Interface("panic", recovered).Str("request_id", c.GetString(handlers.RequestIDKey)).Msg("recovered from panic")
		appErr := pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)
		c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
	}))
}
