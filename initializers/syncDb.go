package initializers

import (
	"log"

	"github.com/madhyam/madhyam-api/models"
)

func SyncDatabase() {
	DB.AutoMigrate(
		&models.User{},
		&models.Donor{},
		&models.Donation{},
		&models.Blog{},
		&models.Special{},
		&models.Vendor{},
		&models.Volunteer{},
		&models.Contact{},
	)
	log.Println("Database synced successfully.")
}
