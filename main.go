package main

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/madhyam/madhyam-api/initializers"
	"github.com/madhyam/madhyam-api/routes"
)

func init() {
	initializers.LoadEnv()
	initializers.ConnectToDB()
	initializers.SyncDatabase()
}

func main() {
	server := gin.Default()

	allowOrigins := []string{"http://localhost:5173"}
	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowOrigins = append(allowOrigins, frontendURL)
	}
	server.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	server.Static("/uploads", "./uploads")

	routes.DefaultRoutes(server)
	routes.AuthRoutes(server)
	routes.DonorRoutes(server)
	routes.BlogRoutes(server)
	routes.SpecialRoutes(server)
	routes.VolunteerRoutes(server)
	routes.VendorRoutes(server)
	routes.ContactRoutes(server)

	server.Run()
}
