package models

import (
	"time"

	"gorm.io/gorm"
)

// Completion statuses
const (
	CompletionPending   = "pending"
	CompletionEnrolled  = "enrolled"
	CompletionCompleted = "completed"
	CompletionCanceled  = "canceled"
)

// Payment statuses
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
)

// Enrollment ties a user to a workshop with payment and completion state.
// The composite unique index makes the one-enrollment-per-pair rule atomic
// at insert time instead of relying on a check-then-act lookup.
type Enrollment struct {
	gorm.Model
	UserID            uint       `json:"user_id" gorm:"not null;uniqueIndex:idx_user_workshop"`
	WorkshopID        uint       `json:"workshop_id" gorm:"not null;uniqueIndex:idx_user_workshop"`
	User              *User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Workshop          *Workshop  `json:"workshop,omitempty" gorm:"foreignKey:WorkshopID"`
	CompletionStatus  string     `json:"completion_status" gorm:"default:'pending'"` // pending, enrolled, completed, canceled
	PaymentStatus     string     `json:"payment_status" gorm:"default:'pending'"`    // pending, completed, failed
	PaymentReference  string     `json:"payment_reference" gorm:"default:''"`
	TotalPrice        float64    `json:"total_price" gorm:"default:0"`
	EnrolledAt        time.Time  `json:"enrolled_at"`
	CompletedAt       *time.Time `json:"completed_at"`
	CertificateSentAt *time.Time `json:"certificate_sent_at"`
	IsDeleted         bool       `json:"-" gorm:"default:false"`
}

// CanTransitionTo reports whether the completion state machine allows moving
// from the current status to the target one. canceled is reachable from any
// non-terminal state; completed and canceled are terminal.
func (e *Enrollment) CanTransitionTo(target string) bool {
	if e.CompletionStatus == target {
		return true
	}
	switch e.CompletionStatus {
	case CompletionPending:
		return target == CompletionEnrolled || target == CompletionCompleted || target == CompletionCanceled
	case CompletionEnrolled:
		return target == CompletionCompleted || target == CompletionCanceled
	}
	return false
}
