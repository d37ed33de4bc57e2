package routes

import (
	"github.com/gin-gonic/gin"

	"pix_checkout/internal/adapter/http/handlers"
)

const (
	PathPixCharges = "/pix/charges"
)

func addPixRoutes(rg *gin.RouterGroup, pixHandler *handlers.PixChargeHandler) {
	charges := rg.Group(PathPixCharges)
	{
		charges.POST("", pixHandler.CreateCharge)
		// Single lookup; clients poll until terminal.
		charges.GET("/:id/status", pixHandler.GetChargeStatus)
	}
}
