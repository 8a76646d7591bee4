package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Genocadio/nitifier/controllers"
	"github.com/Genocadio/nitifier/middleware"
)

func RegisterRoutes(router *gin.Engine, controller *controllers.DispatchController, apiKey string) {
	// Public
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK", "service": "nitifier"})
	})

	api := router.Group("/", middleware.APIKeyAuth(apiKey))
	{
		dispatch := api.Group("/dispatch")
		{
			dispatch.POST("/email", controller.DispatchEmail)
			dispatch.POST("/sms", controller.DispatchSMS)
			dispatch.POST("/email/bulk", controller.DispatchBulkEmail)
			dispatch.POST("/sms/bulk", controller.DispatchBulkSMS)
			dispatch.POST("/trip", controller.DispatchTrip)
		}

		api.POST("/validate/email", controller.ValidateEmail)
		api.POST("/validate/sms", controller.ValidateSMS)
		api.POST("/validate/trip", controller.ValidateTrip)
		api.GET("/event-types", controller.ListEventTypes)
		api.GET("/languages", controller.ListLanguages)
		api.GET("/templates/:event/:lang", controller.GetTemplate)
	}
}
