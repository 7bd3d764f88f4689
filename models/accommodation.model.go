package models

import "gorm.io/gorm"

// Accommodation is retreat lodging managed from the admin back office
type Accommodation struct {
	gorm.Model
	Name        string `json:"name" gorm:"not null"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Rooms       []Room `json:"rooms,omitempty" gorm:"foreignKey:AccommodationID"`
	IsDeleted   bool   `json:"-" gorm:"default:false"`
}

// Room belongs to an accommodation
type Room struct {
	gorm.Model
	AccommodationID uint    `json:"accommodation_id" gorm:"index;not null"`
	Name            string  `json:"name" gorm:"not null"`
	Capacity        int     `json:"capacity" gorm:"default:1"`
	PricePerNight   float64 `json:"price_per_night" gorm:"default:0"`
	IsDeleted       bool    `json:"-" gorm:"default:false"`
}
