package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/madhyam/madhyam-api/initializers"
	"github.com/madhyam/madhyam-api/models"
)

type registerVolunteerRequest struct {
	FirstName    string `json:"firstName" binding:"required"`
	LastName     string `json:"lastName" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=8"`
	Role         string `json:"role" binding:"required,oneof=coordinator driver packer distributor"`
	Organization string `json:"organization"`
}

// RegisterVolunteer creates a volunteer account.
func RegisterVolunteer(ctx *gin.Context) {
	var registerData registerVolunteerRequest
	if err := ctx.ShouldBindJSON(&registerData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "All required fields must be filled.")
		return
	}

	var existing models.Volunteer
	result := initializers.DB.Where("email = ?", registerData.Email).Find(&existing)
	if result.Error != nil {
		log.Println("Database error during volunteer check:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if result.RowsAffected > 0 {
		sendErrorResponse(ctx, http.StatusConflict, "Volunteer with this email already exists.")
		return
	}

	hashedPassword, err := hashPassword(registerData.Password)
	if err != nil {
		log.Println("Password hashing error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToHashPassword)
		return
	}

	volunteer := models.Volunteer{
		FirstName:    registerData.FirstName,
		LastName:     registerData.LastName,
		Email:        registerData.Email,
		Password:     hashedPassword,
		Role:         registerData.Role,
		Organization: registerData.Organization,
	}
	if result := initializers.DB.Create(&volunteer); result.Error != nil {
		log.Println("Volunteer creation error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message":   "Volunteer registered successfully!",
		"volunteer": gin.H{"id": volunteer.ID, "email": volunteer.Email},
	})
}

// LoginVolunteer authenticates a volunteer and issues a bearer token.
func LoginVolunteer(ctx *gin.Context) {
	var loginData models.LoginData
	if err := ctx.ShouldBindJSON(&loginData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Email and password required")
		return
	}

	var volunteer models.Volunteer
	if err := initializers.DB.Where("email = ?", loginData.Email).First(&volunteer).Error; err != nil {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgInvalidCredentials)
		return
	}

	if err := comparePasswords(volunteer.Password, loginData.Password); err != nil {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgInvalidCredentials)
		return
	}

	tokenString, err := signToken(volunteer.ID, volunteer.Email, volunteer.Role)
	if err != nil {
		log.Println("JWT generation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToGenerateToken)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message":   "Login successful",
		"volunteer": volunteer,
		"token":     tokenString,
	})
}

// GetVolunteers lists all volunteers.
func GetVolunteers(ctx *gin.Context) {
	var volunteers []models.Volunteer
	if result := initializers.DB.Find(&volunteers); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to fetch volunteers", result.Error)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "data": volunteers})
}
