package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/madhyam/madhyam-api/initializers"
	"github.com/madhyam/madhyam-api/models"
)

// GetVendors lists all vendors.
func GetVendors(ctx *gin.Context) {
	var vendors []models.Vendor
	if result := initializers.DB.Find(&vendors); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to fetch vendors", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, vendors)
}

type createVendorRequest struct {
	Name        string `json:"name" binding:"required"`
	Address     string `json:"address" binding:"required"`
	Contact     string `json:"contact" binding:"required"`
	Type        string `json:"type" binding:"omitempty,oneof=vendor donor"`
	Description string `json:"description"`
}

// CreateVendor adds a vendor or partner donor organisation.
func CreateVendor(ctx *gin.Context) {
	var vendorData createVendorRequest
	if err := ctx.ShouldBindJSON(&vendorData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Fields missing")
		return
	}

	vendorType := vendorData.Type
	if vendorType == "" {
		vendorType = "donor"
	}

	vendor := models.Vendor{
		Name:        vendorData.Name,
		Address:     vendorData.Address,
		Contact:     vendorData.Contact,
		Type:        vendorType,
		Description: vendorData.Description,
	}
	if result := initializers.DB.Create(&vendor); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to add vendor", result.Error)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"message": "Vendor/Donor added", "vendor": vendor})
}
