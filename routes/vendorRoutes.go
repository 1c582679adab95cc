package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/madhyam/madhyam-api/controllers"
)

func VendorRoutes(server *gin.Engine) {
	vendors := server.Group("/api/vendors")
	{
		vendors.GET("", controllers.GetVendors)
		vendors.POST("", controllers.CreateVendor)
	}
}
