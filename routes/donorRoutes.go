package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/madhyam/madhyam-api/controllers"
)

func DonorRoutes(server *gin.Engine) {
	donors := server.Group("/api/donors")
	{
		donors.POST("", controllers.CreateDonor)
		donors.GET("", controllers.GetDonors)
		donors.GET("/nearest", controllers.FindNearestDonors)
		donors.GET("/stats/summary", controllers.GetSummaryStats)

		donors.POST("/donations", controllers.CreateDonation)
		donors.GET("/donations", controllers.GetDonations)
		donors.GET("/donations/user/:userId", controllers.GetUserDonations)
		donors.PUT("/donations/:id", controllers.UpdateDonation)
		donors.DELETE("/donations/:id", controllers.DeleteDonation)

		donors.GET("/:id", controllers.GetDonorByID)
		donors.PUT("/:id", controllers.UpdateDonor)
		donors.DELETE("/:id", controllers.DeleteDonor)
	}
}
