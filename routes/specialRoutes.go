package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/madhyam/madhyam-api/controllers"
)

func SpecialRoutes(server *gin.Engine) {
	specials := server.Group("/api/specials")
	{
		specials.POST("", controllers.CreateSpecial)
		specials.GET("", controllers.GetSpecials)
		specials.GET("/featured", controllers.GetFeaturedSpecials)
		specials.GET("/categories", controllers.GetSpecialCategories)
		specials.GET("/category/:category", controllers.GetSpecialsByCategory)
		specials.GET("/:id", controllers.GetSpecialByID)
		specials.PUT("/:id", controllers.UpdateSpecial)
		specials.DELETE("/:id", controllers.DeleteSpecial)
	}
}
