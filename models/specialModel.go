package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Special struct {
	gorm.Model
	Name            string         `json:"name"`
	Description     string         `json:"description"`
	Price           float64        `json:"price"`
	Image           string         `json:"image"`
	Category        string         `json:"category" gorm:"size:32;index"`
	IsAvailable     bool           `json:"isAvailable" gorm:"default:true"`
	IsSpecial       bool           `json:"isSpecial" gorm:"default:false"`
	Ingredients     datatypes.JSON `json:"ingredients"`
	Allergens       datatypes.JSON `json:"allergens"`
	NutritionalInfo datatypes.JSON `json:"nutritionalInfo"`
	PreparationTime int            `json:"preparationTime"`
}
