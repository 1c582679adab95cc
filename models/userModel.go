package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Username     string `json:"username" gorm:"uniqueIndex;size:64"`
	Email        string `json:"email" gorm:"uniqueIndex;size:255"`
	Password     string `json:"-"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Phone        string `json:"phone"`
	Role         string `json:"role" gorm:"size:16;default:user"`
	IsActive     bool   `json:"isActive" gorm:"default:true"`
	ProfileImage string `json:"profileImage"`
}

type LoginData struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
