package controllers

import (
	"errors"
	"log"
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/madhyam/madhyam-api/initializers"
	"github.com/madhyam/madhyam-api/models"
	"github.com/madhyam/madhyam-api/utils"
	"gorm.io/gorm"
)

// Donors qualify for discovery only while their user has at least one active
// donation on offer.
const hasActiveDonation = "EXISTS (SELECT 1 FROM donations WHERE donations.user_id = donors.user_id AND donations.status = 'active' AND donations.deleted_at IS NULL)"

type createDonorRequest struct {
	UserID       int      `json:"userId" binding:"required"`
	Latitude     *float64 `json:"latitude" binding:"required,gte=-90,lte=90"`
	Longitude    *float64 `json:"longitude" binding:"required,gte=-180,lte=180"`
	Address      string   `json:"address"`
	City         string   `json:"city"`
	State        string   `json:"state"`
	ZipCode      string   `json:"zipCode"`
	DonationType string   `json:"donationType" binding:"required,oneof=food clothing books electronics furniture other"`
	Availability string   `json:"availability" binding:"omitempty,oneof=immediate scheduled on-demand"`
	Description  string   `json:"description"`
}

// CreateDonor registers a user as a donor and promotes their role in the
// same transaction.
func CreateDonor(ctx *gin.Context) {
	var donorData createDonorRequest
	if err := ctx.ShouldBindJSON(&donorData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Latitude and longitude are required and must be valid numbers.")
		return
	}

	tx := initializers.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var user models.User
	if err := tx.First(&user, donorData.UserID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "User not found")
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to validate user", err)
		}
		return
	}

	availability := donorData.Availability
	if availability == "" {
		availability = "immediate"
	}

	donor := models.Donor{
		UserID:       donorData.UserID,
		Latitude:     *donorData.Latitude,
		Longitude:    *donorData.Longitude,
		Address:      donorData.Address,
		City:         donorData.City,
		State:        donorData.State,
		ZipCode:      donorData.ZipCode,
		DonationType: donorData.DonationType,
		Availability: availability,
		Description:  donorData.Description,
		IsAvailable:  true,
	}
	if err := tx.Create(&donor).Error; err != nil {
		tx.Rollback()
		respondWithError(ctx, http.StatusInternalServerError, "Error creating donor", err)
		return
	}

	if user.Role != "donor" {
		if err := tx.Model(&user).Update("role", "donor").Error; err != nil {
			tx.Rollback()
			respondWithError(ctx, http.StatusInternalServerError, "Error updating user role", err)
			return
		}
		user.Role = "donor"
	}

	if err := tx.Commit().Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Error creating donor", err)
		return
	}

	donor.User = user
	sendJSONResponse(ctx, http.StatusCreated, gin.H{"success": true, "data": donor, "user": user})
}

type donorWithDistance struct {
	models.Donor
	Distance float64 `json:"distance"`
}

// rankDonorsByDistance computes the distance from the search center to each
// donor, drops those outside the radius, and returns the rest nearest first,
// truncated to limit. Ties keep their fetch order.
func rankDonorsByDistance(donors []models.Donor, lat, lon, radius float64, limit int) []donorWithDistance {
	ranked := make([]donorWithDistance, 0, len(donors))
	for _, donor := range donors {
		distance := utils.RoundDistance(utils.Haversine(lat, lon, donor.Latitude, donor.Longitude))
		if distance > radius {
			continue
		}
		ranked = append(ranked, donorWithDistance{Donor: donor, Distance: distance})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Distance < ranked[j].Distance
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// FindNearestDonors returns available donors within the requested radius,
// nearest first.
func FindNearestDonors(ctx *gin.Context) {
	latitude, latErr := strconv.ParseFloat(ctx.Query("latitude"), 64)
	longitude, lonErr := strconv.ParseFloat(ctx.Query("longitude"), 64)
	if latErr != nil || lonErr != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Latitude and longitude are required")
		return
	}

	radius, err := strconv.ParseFloat(ctx.DefaultQuery("radius", "10"), 64)
	if err != nil || radius <= 0 {
		radius = 10
	}
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	query := initializers.DB.
		Where("is_available = ?", true).
		Where(hasActiveDonation)
	if donationType := ctx.Query("donationType"); donationType != "" {
		query = query.Where("donation_type = ?", donationType)
	}

	var donors []models.Donor
	if result := query.Preload("User").Order("created_at").Find(&donors); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Error finding nearest donors", result.Error)
		return
	}

	nearest := rankDonorsByDistance(donors, latitude, longitude, radius, limit)

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success":      true,
		"data":         nearest,
		"count":        len(nearest),
		"searchRadius": radius,
		"userLocation": gin.H{"latitude": latitude, "longitude": longitude},
	})
}

// GetDonors lists donors with pagination and optional type/city filters.
func GetDonors(ctx *gin.Context) {
	page, limit, offset := utils.PageParams(ctx, 10)

	applyFilters := func(db *gorm.DB) *gorm.DB {
		db = db.Where(hasActiveDonation)
		if donationType := ctx.Query("donationType"); donationType != "" {
			db = db.Where("donation_type = ?", donationType)
		}
		if city := ctx.Query("city"); city != "" {
			db = db.Where("city LIKE ?", "%"+city+"%")
		}
		return db
	}

	var donors []models.Donor
	result := applyFilters(initializers.DB).
		Preload("User").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&donors)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Error getting donors", result.Error)
		return
	}

	var count int64
	if err := applyFilters(initializers.DB.Model(&models.Donor{})).Count(&count).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Error getting donors", err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success":    true,
		"data":       donors,
		"pagination": utils.Paginate(page, limit, count),
	})
}

// GetDonorByID returns a single donor with its user.
func GetDonorByID(ctx *gin.Context) {
	donorId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid donor ID")
		return
	}

	var donor models.Donor
	result := initializers.DB.Preload("User").First(&donor, donorId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Donor not found")
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Error getting donor", result.Error)
		}
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "data": donor})
}

type updateDonorRequest struct {
	Latitude     *float64 `json:"latitude" binding:"omitempty,gte=-90,lte=90"`
	Longitude    *float64 `json:"longitude" binding:"omitempty,gte=-180,lte=180"`
	Address      *string  `json:"address"`
	City         *string  `json:"city"`
	State        *string  `json:"state"`
	ZipCode      *string  `json:"zipCode"`
	DonationType *string  `json:"donationType" binding:"omitempty,oneof=food clothing books electronics furniture other"`
	Availability *string  `json:"availability" binding:"omitempty,oneof=immediate scheduled on-demand"`
	Description  *string  `json:"description"`
	IsAvailable  *bool    `json:"isAvailable"`
	Rating       *float64 `json:"rating" binding:"omitempty,gte=0,lte=5"`
}

func (r updateDonorRequest) changes() map[string]any {
	updates := map[string]any{}
	if r.Latitude != nil {
		updates["latitude"] = *r.Latitude
	}
	if r.Longitude != nil {
		updates["longitude"] = *r.Longitude
	}
	if r.Address != nil {
		updates["address"] = *r.Address
	}
	if r.City != nil {
		updates["city"] = *r.City
	}
	if r.State != nil {
		updates["state"] = *r.State
	}
	if r.ZipCode != nil {
		updates["zip_code"] = *r.ZipCode
	}
	if r.DonationType != nil {
		updates["donation_type"] = *r.DonationType
	}
	if r.Availability != nil {
		updates["availability"] = *r.Availability
	}
	if r.Description != nil {
		updates["description"] = *r.Description
	}
	if r.IsAvailable != nil {
		updates["is_available"] = *r.IsAvailable
	}
	if r.Rating != nil {
		updates["rating"] = *r.Rating
	}
	return updates
}

// UpdateDonor applies a partial update to a donor profile.
func UpdateDonor(ctx *gin.Context) {
	donorId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid donor ID")
		return
	}

	var updateData updateDonorRequest
	if err := ctx.ShouldBindJSON(&updateData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	var donor models.Donor
	if err := initializers.DB.First(&donor, donorId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Donor not found")
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Error updating donor", err)
		}
		return
	}

	if updates := updateData.changes(); len(updates) > 0 {
		if err := initializers.DB.Model(&donor).Updates(updates).Error; err != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Error updating donor", err)
			return
		}
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "data": donor})
}

// DeleteDonor removes a donor profile.
func DeleteDonor(ctx *gin.Context) {
	donorId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid donor ID")
		return
	}

	var donor models.Donor
	if err := initializers.DB.First(&donor, donorId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Donor not found")
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Error deleting donor", err)
		}
		return
	}

	if err := initializers.DB.Delete(&donor).Error; err != nil {
		log.Println("Donor delete error:", err)
		respondWithError(ctx, http.StatusInternalServerError, "Error deleting donor", err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "message": "Donor deleted successfully"})
}
