package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Blog struct {
	gorm.Model
	Title     string         `json:"title"`
	Content   string         `json:"content"`
	AuthorID  int            `json:"authorId" gorm:"index"`
	Image     string         `json:"image"`
	Tags      datatypes.JSON `json:"tags"`
	Status    string         `json:"status" gorm:"size:16;default:published;index"`
	ViewCount int            `json:"viewCount" gorm:"default:0"`
	Slug      string         `json:"slug" gorm:"uniqueIndex;size:255"`
	Author    User           `json:"author" gorm:"foreignKey:AuthorID"`
}
