package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/madhyam/madhyam-api/initializers"
	"github.com/madhyam/madhyam-api/models"
	"github.com/madhyam/madhyam-api/utils"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Sortable columns for the specials listing. Anything else falls back to
// name to keep user input out of the ORDER BY clause.
var specialSortColumns = map[string]string{
	"name":            "name",
	"price":           "price",
	"category":        "category",
	"createdAt":       "created_at",
	"preparationTime": "preparation_time",
}

func specialSortClause(sortBy, sortOrder string) string {
	column, ok := specialSortColumns[sortBy]
	if !ok {
		column = "name"
	}
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "asc"
	}
	return column + " " + sortOrder
}

// parseJSONObject keeps a free-form JSON payload if it parses, otherwise
// returns nil.
func parseJSONObject(value string) datatypes.JSON {
	if value == "" {
		return nil
	}
	var probe any
	if err := json.Unmarshal([]byte(value), &probe); err != nil {
		return nil
	}
	return datatypes.JSON(value)
}

type specialRequest struct {
	Name            string   `json:"name" form:"name" binding:"required"`
	Description     string   `json:"description" form:"description"`
	Price           *float64 `json:"price" form:"price" binding:"required,gte=0"`
	Image           string   `json:"image" form:"image"`
	Category        string   `json:"category" form:"category" binding:"required,oneof=food beverage dessert snack"`
	IsAvailable     *bool    `json:"isAvailable" form:"isAvailable"`
	IsSpecial       *bool    `json:"isSpecial" form:"isSpecial"`
	Ingredients     string   `json:"ingredients" form:"ingredients"`
	Allergens       string   `json:"allergens" form:"allergens"`
	NutritionalInfo string   `json:"nutritionalInfo" form:"nutritionalInfo"`
	PreparationTime int      `json:"preparationTime" form:"preparationTime"`
}

// CreateSpecial adds a menu item, storing an uploaded image when attached.
func CreateSpecial(ctx *gin.Context) {
	var specialData specialRequest
	if err := ctx.ShouldBind(&specialData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Name, price and category are required")
		return
	}

	image, err := resolveUploadedImage(ctx, "specials", specialData.Image)
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to store image", err)
		return
	}

	isAvailable := true
	if specialData.IsAvailable != nil {
		isAvailable = *specialData.IsAvailable
	}
	isSpecial := false
	if specialData.IsSpecial != nil {
		isSpecial = *specialData.IsSpecial
	}

	special := models.Special{
		Name:            specialData.Name,
		Description:     specialData.Description,
		Price:           *specialData.Price,
		Image:           image,
		Category:        specialData.Category,
		IsAvailable:     isAvailable,
		IsSpecial:       isSpecial,
		Ingredients:     toJSONList(parseList(specialData.Ingredients)),
		Allergens:       toJSONList(parseList(specialData.Allergens)),
		NutritionalInfo: parseJSONObject(specialData.NutritionalInfo),
		PreparationTime: specialData.PreparationTime,
	}
	if result := initializers.DB.Create(&special); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Error creating special", result.Error)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"success": true, "data": special})
}

// GetSpecials lists menu items with filters, sorting and pagination.
func GetSpecials(ctx *gin.Context) {
	page, limit, offset := utils.PageParams(ctx, 20)

	applyFilters := func(db *gorm.DB) *gorm.DB {
		if category := ctx.Query("category"); category != "" {
			db = db.Where("category = ?", category)
		}
		if isSpecial := ctx.Query("isSpecial"); isSpecial != "" {
			db = db.Where("is_special = ?", isSpecial == "true")
		}
		if isAvailable := ctx.Query("isAvailable"); isAvailable != "" {
			db = db.Where("is_available = ?", isAvailable == "true")
		}
		if search := ctx.Query("search"); search != "" {
			db = db.Where("name LIKE ? OR description LIKE ?", "%"+search+"%", "%"+search+"%")
		}
		if minPrice := ctx.Query("minPrice"); minPrice != "" {
			if price, err := strconv.ParseFloat(minPrice, 64); err == nil {
				db = db.Where("price >= ?", price)
			}
		}
		if maxPrice := ctx.Query("maxPrice"); maxPrice != "" {
			if price, err := strconv.ParseFloat(maxPrice, 64); err == nil {
				db = db.Where("price <= ?", price)
			}
		}
		return db
	}

	var specials []models.Special
	result := applyFilters(initializers.DB).
		Order(specialSortClause(ctx.DefaultQuery("sortBy", "name"), ctx.DefaultQuery("sortOrder", "asc"))).
		Limit(limit).Offset(offset).
		Find(&specials)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Error getting specials", result.Error)
		return
	}

	var count int64
	if err := applyFilters(initializers.DB.Model(&models.Special{})).Count(&count).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Error getting specials", err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success":    true,
		"data":       specials,
		"pagination": utils.Paginate(page, limit, count),
	})
}

// GetFeaturedSpecials returns the latest featured, available items.
func GetFeaturedSpecials(ctx *gin.Context) {
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "6"))
	if err != nil || limit < 1 {
		limit = 6
	}

	var specials []models.Special
	result := initializers.DB.
		Where("is_special = ? AND is_available = ?", true, true).
		Order("created_at DESC").
		Limit(limit).
		Find(&specials)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Error getting featured specials", result.Error)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "data": specials})
}

// GetSpecialCategories returns the distinct categories of available items.
func GetSpecialCategories(ctx *gin.Context) {
	var categories []string
	result := initializers.DB.Model(&models.Special{}).
		Where("is_available = ?", true).
		Distinct().
		Pluck("category", &categories)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Error getting categories", result.Error)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "data": categories})
}

// GetSpecialsByCategory lists available items in one category.
func GetSpecialsByCategory(ctx *gin.Context) {
	category := ctx.Param("category")
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}

	var specials []models.Special
	result := initializers.DB.
		Where("category = ? AND is_available = ?", category, true).
		Order("name ASC").
		Limit(limit).
		Find(&specials)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Error getting specials by category", result.Error)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "data": specials, "category": category})
}

// GetSpecialByID returns a single menu item.
func GetSpecialByID(ctx *gin.Context) {
	specialId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid special ID")
		return
	}

	var special models.Special
	result := initializers.DB.First(&special, specialId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Special not found")
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Error getting special", result.Error)
		}
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "data": special})
}

type specialUpdateRequest struct {
	Name            *string  `json:"name" form:"name"`
	Description     *string  `json:"description" form:"description"`
	Price           *float64 `json:"price" form:"price" binding:"omitempty,gte=0"`
	Image           *string  `json:"image" form:"image"`
	Category        *string  `json:"category" form:"category" binding:"omitempty,oneof=food beverage dessert snack"`
	IsAvailable     *bool    `json:"isAvailable" form:"isAvailable"`
	IsSpecial       *bool    `json:"isSpecial" form:"isSpecial"`
	Ingredients     *string  `json:"ingredients" form:"ingredients"`
	Allergens       *string  `json:"allergens" form:"allergens"`
	NutritionalInfo *string  `json:"nutritionalInfo" form:"nutritionalInfo"`
	PreparationTime *int     `json:"preparationTime" form:"preparationTime"`
}

// UpdateSpecial applies a partial update to a menu item.
func UpdateSpecial(ctx *gin.Context) {
	specialId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid special ID")
		return
	}

	var updateData specialUpdateRequest
	if err := ctx.ShouldBind(&updateData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	var special models.Special
	if err := initializers.DB.First(&special, specialId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Special not found")
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Error updating special", err)
		}
		return
	}

	updates := map[string]any{}
	if updateData.Name != nil {
		updates["name"] = *updateData.Name
	}
	if updateData.Description != nil {
		updates["description"] = *updateData.Description
	}
	if updateData.Price != nil {
		updates["price"] = *updateData.Price
	}
	if updateData.Category != nil {
		updates["category"] = *updateData.Category
	}
	if updateData.IsAvailable != nil {
		updates["is_available"] = *updateData.IsAvailable
	}
	if updateData.IsSpecial != nil {
		updates["is_special"] = *updateData.IsSpecial
	}
	if updateData.Ingredients != nil {
		updates["ingredients"] = toJSONList(parseList(*updateData.Ingredients))
	}
	if updateData.Allergens != nil {
		updates["allergens"] = toJSONList(parseList(*updateData.Allergens))
	}
	if updateData.NutritionalInfo != nil {
		updates["nutritional_info"] = parseJSONObject(*updateData.NutritionalInfo)
	}
	if updateData.PreparationTime != nil {
		updates["preparation_time"] = *updateData.PreparationTime
	}

	bodyImage := ""
	if updateData.Image != nil {
		bodyImage = *updateData.Image
	}
	image, err := resolveUploadedImage(ctx, "specials", bodyImage)
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to store image", err)
		return
	}
	if image != "" {
		updates["image"] = image
	}

	if len(updates) > 0 {
		if err := initializers.DB.Model(&special).Updates(updates).Error; err != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Error updating special", err)
			return
		}
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "data": special})
}

// DeleteSpecial removes a menu item.
func DeleteSpecial(ctx *gin.Context) {
	specialId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid special ID")
		return
	}

	var special models.Special
	if err := initializers.DB.First(&special, specialId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Special not found")
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Error deleting special", err)
		}
		return
	}

	if err := initializers.DB.Delete(&special).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Error deleting special", err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "message": "Special deleted successfully"})
}
