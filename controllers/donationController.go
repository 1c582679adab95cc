package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/madhyam/madhyam-api/initializers"
	"github.com/madhyam/madhyam-api/models"
	"github.com/madhyam/madhyam-api/utils"
	"gorm.io/gorm"
)

type createDonationRequest struct {
	UserID      int    `json:"userId" binding:"required"`
	Item        string `json:"item" binding:"required"`
	Type        string `json:"type" binding:"required,oneof=food clothes books money other"`
	Status      string `json:"status" binding:"omitempty,oneof=active completed"`
	Quantity    string `json:"quantity"`
	Description string `json:"description"`
}

// CreateDonation records a pledged item for a user.
func CreateDonation(ctx *gin.Context) {
	var donationData createDonationRequest
	if err := ctx.ShouldBindJSON(&donationData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Missing required fields")
		return
	}

	var user models.User
	if err := initializers.DB.First(&user, donationData.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "User not found")
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to validate user", err)
		}
		return
	}

	status := donationData.Status
	if status == "" {
		status = "active"
	}

	donation := models.Donation{
		UserID:      donationData.UserID,
		Item:        donationData.Item,
		Type:        donationData.Type,
		Status:      status,
		Quantity:    donationData.Quantity,
		Description: donationData.Description,
	}
	if err := initializers.DB.Create(&donation).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Error creating donation", err)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"success": true, "data": donation})
}

// GetDonations lists all donations with pagination and optional status/type
// filters.
func GetDonations(ctx *gin.Context) {
	page, limit, offset := utils.PageParams(ctx, 10)

	applyFilters := func(db *gorm.DB) *gorm.DB {
		if status := ctx.Query("status"); status != "" {
			db = db.Where("status = ?", status)
		}
		if donationType := ctx.Query("type"); donationType != "" {
			db = db.Where("type = ?", donationType)
		}
		return db
	}

	var donations []models.Donation
	result := applyFilters(initializers.DB).
		Preload("User").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&donations)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Error getting donations", result.Error)
		return
	}

	var count int64
	if err := applyFilters(initializers.DB.Model(&models.Donation{})).Count(&count).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Error getting donations", err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success":    true,
		"data":       donations,
		"pagination": utils.Paginate(page, limit, count),
	})
}

// GetUserDonations lists a user's donations, newest first.
func GetUserDonations(ctx *gin.Context) {
	userId, err := strconv.Atoi(ctx.Param("userId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse userId")
		return
	}

	var donations []models.Donation
	result := initializers.DB.
		Where("user_id = ?", userId).
		Order("created_at DESC").
		Find(&donations)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Error getting user donations", result.Error)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success": true,
		"data":    donations,
		"count":   len(donations),
	})
}

type updateDonationRequest struct {
	Item        *string `json:"item"`
	Type        *string `json:"type" binding:"omitempty,oneof=food clothes books money other"`
	Status      *string `json:"status" binding:"omitempty,oneof=active completed"`
	Quantity    *string `json:"quantity"`
	Description *string `json:"description"`
}

// UpdateDonation applies a partial update, typically a status transition.
func UpdateDonation(ctx *gin.Context) {
	donationId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid donation ID")
		return
	}

	var updateData updateDonationRequest
	if err := ctx.ShouldBindJSON(&updateData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	var donation models.Donation
	if err := initializers.DB.First(&donation, donationId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Donation not found")
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Error updating donation", err)
		}
		return
	}

	updates := map[string]any{}
	if updateData.Item != nil {
		updates["item"] = *updateData.Item
	}
	if updateData.Type != nil {
		updates["type"] = *updateData.Type
	}
	if updateData.Status != nil {
		updates["status"] = *updateData.Status
	}
	if updateData.Quantity != nil {
		updates["quantity"] = *updateData.Quantity
	}
	if updateData.Description != nil {
		updates["description"] = *updateData.Description
	}
	if len(updates) > 0 {
		if err := initializers.DB.Model(&donation).Updates(updates).Error; err != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Error updating donation", err)
			return
		}
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "data": donation})
}

// DeleteDonation removes a donation record.
func DeleteDonation(ctx *gin.Context) {
	donationId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid donation ID")
		return
	}

	var donation models.Donation
	if err := initializers.DB.First(&donation, donationId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Donation not found")
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Error deleting donation", err)
		}
		return
	}

	if err := initializers.DB.Delete(&donation).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Error deleting donation", err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "message": "Donation deleted successfully"})
}
