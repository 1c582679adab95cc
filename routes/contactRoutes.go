package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/madhyam/madhyam-api/controllers"
)

func ContactRoutes(server *gin.Engine) {
	server.POST("/api/contact", controllers.ContactUs)
}
