package models

import "gorm.io/gorm"

// Category groups workshops and retreats (e.g. Hatha, Vinyasa, Meditation)
type Category struct {
	gorm.Model
	Name        string `json:"name" gorm:"unique;not null"`
	Description string `json:"description"`
	IsDeleted   bool   `json:"-" gorm:"default:false"`
}
