package models

import "gorm.io/gorm"

type Vendor struct {
	gorm.Model
	Name        string `json:"name"`
	Address     string `json:"address"`
	Contact     string `json:"contact"`
	Type        string `json:"type" gorm:"size:16;default:donor"`
	Description string `json:"description"`
}
