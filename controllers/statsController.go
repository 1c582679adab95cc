package controllers

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/madhyam/madhyam-api/initializers"
	"github.com/madhyam/madhyam-api/models"
)

// successRate is the share of completed donations out of all donations,
// as a whole percentage.
func successRate(completed, total int64) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// GetSummaryStats aggregates the dashboard counters.
func GetSummaryStats(ctx *gin.Context) {
	var donorsCount int64
	if err := initializers.DB.Model(&models.Donor{}).
		Where("is_available = ?", true).
		Distinct("user_id").
		Count(&donorsCount).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Error fetching summary stats", err)
		return
	}

	var donationsCount, completedDonations, activeDonations int64
	if err := initializers.DB.Model(&models.Donation{}).Count(&donationsCount).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Error fetching summary stats", err)
		return
	}
	if err := initializers.DB.Model(&models.Donation{}).
		Where("status = ?", "completed").
		Count(&completedDonations).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Error fetching summary stats", err)
		return
	}
	if err := initializers.DB.Model(&models.Donation{}).
		Where("status = ?", "active").
		Count(&activeDonations).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Error fetching summary stats", err)
		return
	}

	var citiesCount int64
	if err := initializers.DB.Model(&models.Donor{}).
		Where("is_available = ? AND city <> ''", true).
		Distinct("city").
		Count(&citiesCount).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Error fetching summary stats", err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"donors":             donorsCount,
			"donations":          donationsCount,
			"completedDonations": completedDonations,
			"activeDonations":    activeDonations,
			"cities":             citiesCount,
			"successRate":        successRate(completedDonations, donationsCount),
		},
	})
}
