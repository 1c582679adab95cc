package models

import "gorm.io/gorm"

type Volunteer struct {
	gorm.Model
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email" gorm:"uniqueIndex;size:255"`
	Password     string `json:"-"`
	Role         string `json:"role" gorm:"size:16"`
	Organization string `json:"organization"`
}
