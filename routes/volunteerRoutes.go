package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/madhyam/madhyam-api/controllers"
)

func VolunteerRoutes(server *gin.Engine) {
	volunteers := server.Group("/api/volunteers")
	{
		volunteers.POST("/register", controllers.RegisterVolunteer)
		volunteers.POST("/login", controllers.LoginVolunteer)
		volunteers.GET("", controllers.GetVolunteers)
	}
}
