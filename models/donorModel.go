package models

import "gorm.io/gorm"

type Donor struct {
	gorm.Model
	UserID         int     `json:"userId" gorm:"index"`
	Latitude       float64 `json:"latitude" gorm:"index:idx_donor_location"`
	Longitude      float64 `json:"longitude" gorm:"index:idx_donor_location"`
	Address        string  `json:"address"`
	City           string  `json:"city" gorm:"size:128"`
	State          string  `json:"state"`
	ZipCode        string  `json:"zipCode"`
	DonationType   string  `json:"donationType" gorm:"size:32;index"`
	Availability   string  `json:"availability" gorm:"size:16;default:immediate"`
	Description    string  `json:"description"`
	IsAvailable    bool    `json:"isAvailable" gorm:"default:true;index"`
	Rating         float64 `json:"rating" gorm:"default:0"`
	TotalDonations int     `json:"totalDonations" gorm:"default:0"`
	User           User    `json:"user" gorm:"foreignKey:UserID"`
}

type Donation struct {
	gorm.Model
	UserID      int    `json:"userId" gorm:"index"`
	Item        string `json:"item"`
	Type        string `json:"type" gorm:"size:32"`
	Status      string `json:"status" gorm:"size:16;default:active;index"`
	Quantity    string `json:"quantity"`
	Description string `json:"description"`
	User        *User  `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
