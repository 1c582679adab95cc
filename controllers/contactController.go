package controllers

import (
	"log"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/madhyam/madhyam-api/initializers"
	"github.com/madhyam/madhyam-api/models"
	"github.com/madhyam/madhyam-api/utils"
)

type contactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

// ContactUs stores a contact-form message and sends an acknowledgement email.
func ContactUs(ctx *gin.Context) {
	var contactData contactRequest
	if err := ctx.ShouldBindJSON(&contactData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "All fields required")
		return
	}

	contact := models.Contact{
		Name:    contactData.Name,
		Email:   contactData.Email,
		Message: contactData.Message,
	}
	if result := initializers.DB.Create(&contact); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to send message", result.Error)
		return
	}

	emailData := utils.EmailData{
		Name:    contact.Name,
		Message: "Thanks for reaching out to Madhyam. We have received your message.",
	}
	templatePath := filepath.Join("templates", "contact_ack.html")
	if err := utils.SendEmail(contact.Email, "We received your message", emailData, templatePath); err != nil {
		log.Println("Error sending contact acknowledgement email:", err)
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Message received, thank you!"})
}
