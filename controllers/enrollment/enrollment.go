package controllers

import (
	"strings"
	"time"
	"yogveda/database"
	"yogveda/middleware"
	"yogveda/models"
	"yogveda/utils"
	enrollmentValidator "yogveda/validators/enrollment"

	"github.com/gofiber/fiber/v2"
)

// isUniqueViolation reports whether a database error came from the composite
// unique index on (user_id, workshop_id)
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint failed")
}

// CreateEnrollment enrolls a user in a workshop. Guards run in order: user
// exists, workshop exists, a schedule exists for the workshop, no enrollment
// for the pair yet. The unique index backs the last check up at insert time.
func CreateEnrollment(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedEnrollment").(*enrollmentValidator.CreatePayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", reqData.UserID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	var workshop models.Workshop
	if err := db.Where("id = ? AND is_deleted = ?", reqData.WorkshopID, false).First(&workshop).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Workshop not found!", nil)
	}

	// A workshop without a schedule cannot be enrolled in
	var scheduleCount int64
	if err := db.Model(&models.Schedule{}).
		Where("workshop_id = ? AND is_deleted = ?", workshop.ID, false).
		Count(&scheduleCount).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to check workshop schedule!", nil)
	}
	if scheduleCount == 0 {
		return middleware.JsonResponse(c, fiber.StatusPreconditionFailed, false, "No schedule available for this workshop!", nil)
	}

	var existingEnrollment models.Enrollment
	if err := db.Where("user_id = ? AND workshop_id = ? AND is_deleted = ?", user.ID, workshop.ID, false).
		First(&existingEnrollment).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "User already enrolled in this workshop!", nil)
	}

	enrollment := models.Enrollment{
		UserID:           user.ID,
		WorkshopID:       workshop.ID,
		CompletionStatus: models.CompletionPending,
		PaymentStatus:    models.PaymentPending,
		TotalPrice:       workshop.EffectivePrice(),
		EnrolledAt:       time.Now(),
	}

	tx := db.Begin()
	if err := tx.Create(&enrollment).Error; err != nil {
		tx.Rollback()
		if isUniqueViolation(err) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "User already enrolled in this workshop!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in workshop!", nil)
	}

	if err := user.AddEnrolledWorkshop(workshop.ID); err == nil {
		if err := tx.Model(&models.User{}).Where("id = ?", user.ID).
			Update("enrolled_workshops", user.EnrolledWorkshops).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in workshop!", nil)
		}
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrolled in workshop successfully!", enrollment)
}

// GetEnrollmentByID fetches one enrollment with its user and workshop expanded
func GetEnrollmentByID(c *fiber.Ctx) error {
	enrollmentID := c.Locals("enrollmentID").(int)

	var enrollment models.Enrollment
	if err := database.Database.Db.
		Where("id = ? AND is_deleted = ?", enrollmentID, false).
		Preload("User").
		Preload("Workshop").
		Preload("Workshop.Modules", "is_deleted = ?", false).
		First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment fetched successfully!", enrollment)
}

// GetEnrollmentsByUser lists a user's enrollments. A user with no enrollments
// gets an empty list, not an error; 404 is reserved for a missing user.
func GetEnrollmentsByUser(c *fiber.Ctx) error {
	targetUserID := c.Locals("targetUserID").(int)

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", targetUserID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	enrollments := make([]models.Enrollment, 0)
	if err := db.
		Where("user_id = ? AND is_deleted = ?", targetUserID, false).
		Preload("User").
		Preload("Workshop").
		Order("created_at desc").
		Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": enrollments,
		"total":       len(enrollments),
	})
}

// CheckEnrollmentStatus reports whether an enrollment exists for the pair.
// It never answers 404: absence is a normal false.
func CheckEnrollmentStatus(c *fiber.Ctx) error {
	userID := c.Locals("targetUserID").(int)
	workshopID := c.Locals("targetWorkshopID").(int)

	var count int64
	if err := database.Database.Db.Model(&models.Enrollment{}).
		Where("user_id = ? AND workshop_id = ? AND is_deleted = ?", userID, workshopID, false).
		Count(&count).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to check enrollment status!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment status fetched successfully!", fiber.Map{
		"enrolled": count > 0,
	})
}

// UpdateEnrollment applies a full or partial update. Referenced entities are
// re-validated when they change, the pair uniqueness is re-checked excluding
// this record, and CompletedAt is stamped exactly on the transition to
// completed.
func UpdateEnrollment(c *fiber.Ctx) error {
	enrollmentID := c.Locals("enrollmentID").(int)

	patch, ok := c.Locals("validatedEnrollmentPatch").(*enrollmentValidator.UpdatePayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var enrollment models.Enrollment
	if err := db.Where("id = ? AND is_deleted = ?", enrollmentID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	targetUserID := enrollment.UserID
	targetWorkshopID := enrollment.WorkshopID

	if patch.UserID != nil && *patch.UserID != enrollment.UserID {
		var user models.User
		if err := db.Where("id = ? AND is_deleted = ?", *patch.UserID, false).First(&user).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
		}
		targetUserID = *patch.UserID
	}

	if patch.WorkshopID != nil && *patch.WorkshopID != enrollment.WorkshopID {
		var workshop models.Workshop
		if err := db.Where("id = ? AND is_deleted = ?", *patch.WorkshopID, false).First(&workshop).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Workshop not found!", nil)
		}
		targetWorkshopID = *patch.WorkshopID
	}

	// Re-check uniqueness excluding this record
	if targetUserID != enrollment.UserID || targetWorkshopID != enrollment.WorkshopID {
		var duplicate models.Enrollment
		if err := db.Where("user_id = ? AND workshop_id = ? AND id <> ? AND is_deleted = ?",
			targetUserID, targetWorkshopID, enrollment.ID, false).First(&duplicate).Error; err == nil {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "User already enrolled in this workshop!", nil)
		}
	}

	if patch.CompletionStatus != nil && *patch.CompletionStatus != enrollment.CompletionStatus {
		if !enrollment.CanTransitionTo(*patch.CompletionStatus) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Invalid completion status transition!", nil)
		}
		if *patch.CompletionStatus == models.CompletionCompleted {
			now := time.Now()
			enrollment.CompletedAt = &now
		}
		enrollment.CompletionStatus = *patch.CompletionStatus
	}

	if patch.PaymentReference != nil {
		enrollment.PaymentReference = *patch.PaymentReference
	}

	if patch.PaymentStatus != nil && *patch.PaymentStatus != enrollment.PaymentStatus {
		// A payment flips to completed only after the provider confirms the
		// reference, when one is on record.
		if *patch.PaymentStatus == models.PaymentCompleted && enrollment.PaymentReference != "" {
			verified, err := utils.VerifyPayment(enrollment.PaymentReference)
			if err != nil {
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to verify payment!", nil)
			}
			if !verified {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Payment could not be verified!", nil)
			}
		}
		enrollment.PaymentStatus = *patch.PaymentStatus
	}

	enrollment.UserID = targetUserID
	enrollment.WorkshopID = targetWorkshopID
	if patch.TotalPrice != nil {
		enrollment.TotalPrice = *patch.TotalPrice
	}

	if err := db.Save(&enrollment).Error; err != nil {
		if isUniqueViolation(err) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "User already enrolled in this workshop!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update enrollment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment updated successfully!", enrollment)
}

// DeleteEnrollment removes an enrollment and, best-effort, removes the
// workshop from the owning user's enrolled list. A missing user record does
// not fail the delete.
func DeleteEnrollment(c *fiber.Ctx) error {
	enrollmentID := c.Locals("enrollmentID").(int)

	db := database.Database.Db

	var enrollment models.Enrollment
	if err := db.Where("id = ? AND is_deleted = ?", enrollmentID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	// Hard delete: the composite unique index must free the (user, workshop)
	// pair so the user can enroll again later.
	if err := db.Unscoped().Delete(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete enrollment!", nil)
	}

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", enrollment.UserID, false).First(&user).Error; err == nil {
		if err := user.RemoveEnrolledWorkshop(enrollment.WorkshopID); err == nil {
			db.Model(&models.User{}).Where("id = ?", user.ID).
				Update("enrolled_workshops", user.EnrolledWorkshops)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment deleted successfully!", nil)
}
