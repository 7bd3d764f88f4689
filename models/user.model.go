package models

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// User roles
const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
)

type User struct {
	gorm.Model
	Name         string `json:"name" gorm:"default:''"`
	Email        string `json:"email" gorm:"unique;not null"`
	Password     string `json:"-" gorm:"not null"`
	Role         string `json:"role" gorm:"default:'student'"` // student, instructor, admin
	ProfileImage string `json:"profile_image" gorm:"default:''"`
	Bio          string `json:"bio" gorm:"default:''"`
	// EnrolledWorkshops is a JSON array of workshop ids the user is enrolled in.
	EnrolledWorkshops datatypes.JSON `json:"enrolled_workshops"`
	IsDeleted         bool           `json:"-" gorm:"default:false"`
}

// EnrolledWorkshopIDs decodes the enrolled-workshops column into a slice
func (u *User) EnrolledWorkshopIDs() []uint {
	var ids []uint
	if len(u.EnrolledWorkshops) == 0 {
		return ids
	}
	if err := json.Unmarshal(u.EnrolledWorkshops, &ids); err != nil {
		return nil
	}
	return ids
}

// AddEnrolledWorkshop appends a workshop id if not already present
func (u *User) AddEnrolledWorkshop(workshopID uint) error {
	ids := u.EnrolledWorkshopIDs()
	for _, id := range ids {
		if id == workshopID {
			return nil
		}
	}
	ids = append(ids, workshopID)
	raw, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	u.EnrolledWorkshops = raw
	return nil
}

// RemoveEnrolledWorkshop drops a workshop id from the enrolled list
func (u *User) RemoveEnrolledWorkshop(workshopID uint) error {
	ids := u.EnrolledWorkshopIDs()
	filtered := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id != workshopID {
			filtered = append(filtered, id)
		}
	}
	raw, err := json.Marshal(filtered)
	if err != nil {
		return err
	}
	u.EnrolledWorkshops = raw
	return nil
}
