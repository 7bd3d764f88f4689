package models

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Schedule statuses
const (
	ScheduleActive   = "active"
	SchedulePaused   = "paused"
	ScheduleCanceled = "canceled"
)

// Schedule is a recurring weekly time window for a workshop.
// At least one schedule must exist before a user can enroll in the workshop.
type Schedule struct {
	gorm.Model
	WorkshopID uint           `json:"workshop_id" gorm:"index;not null"`
	Workshop   *Workshop      `json:"workshop,omitempty" gorm:"foreignKey:WorkshopID"`
	Weekdays   datatypes.JSON `json:"weekdays"`                       // e.g. ["monday","wednesday"]
	StartTime  string         `json:"start_time" gorm:"not null"`     // HH:MM, 24h
	EndTime    string         `json:"end_time" gorm:"not null"`       // HH:MM, 24h
	Status     string         `json:"status" gorm:"default:'active'"` // active, paused, canceled
	IsDeleted  bool           `json:"-" gorm:"default:false"`
}

// WeekdayList decodes the weekdays column
func (s *Schedule) WeekdayList() []string {
	var days []string
	if len(s.Weekdays) == 0 {
		return days
	}
	if err := json.Unmarshal(s.Weekdays, &days); err != nil {
		return nil
	}
	return days
}
