package models

import "gorm.io/gorm"

// Workshop difficulty levels
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// Workshop represents a purchasable offering (workshop or retreat)
type Workshop struct {
	gorm.Model
	Title         string           `json:"title" gorm:"not null"`
	Description   string           `json:"description"`
	Level         string           `json:"level" gorm:"default:'beginner'"` // beginner, intermediate, advanced
	Price         float64          `json:"price" gorm:"default:0"`
	DiscountPrice *float64         `json:"discount_price"`
	InstructorID  uint             `json:"instructor_id" gorm:"index"`
	CategoryID    uint             `json:"category_id" gorm:"index"`
	Instructor    *User            `json:"instructor,omitempty" gorm:"foreignKey:InstructorID"`
	Category      *Category        `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Modules       []WorkshopModule `json:"modules,omitempty" gorm:"foreignKey:WorkshopID"`
	IsDeleted     bool             `json:"-" gorm:"default:false"`
}

// EffectivePrice returns the discount price when one is set
func (w *Workshop) EffectivePrice() float64 {
	if w.DiscountPrice != nil && *w.DiscountPrice > 0 {
		return *w.DiscountPrice
	}
	return w.Price
}

// WorkshopModule is an ordered section within a workshop
type WorkshopModule struct {
	gorm.Model
	WorkshopID      uint   `json:"workshop_id" gorm:"index;not null"`
	Name            string `json:"name" gorm:"not null"`
	DurationMinutes int    `json:"duration_minutes" gorm:"not null"` // must be > 0
	OrderIndex      int    `json:"order_index" gorm:"default:0"`
	IsDeleted       bool   `json:"-" gorm:"default:false"`
}
