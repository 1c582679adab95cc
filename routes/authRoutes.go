package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/madhyam/madhyam-api/controllers"
	"github.com/madhyam/madhyam-api/middlewares"
)

func AuthRoutes(server *gin.Engine) {
	auth := server.Group("/api/auth")
	{
		auth.POST("/signup", controllers.Signup)
		auth.POST("/login", controllers.Login)
		auth.POST("/google", controllers.GoogleSignIn)
		auth.GET("/users", middlewares.RequireAuth(), middlewares.RequireAdmin(), controllers.GetUsers)
	}
}
