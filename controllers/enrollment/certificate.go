package controllers

import (
	"log"
	"time"
	"yogveda/database"
	"yogveda/middleware"
	"yogveda/models"
	"yogveda/utils"

	"github.com/gofiber/fiber/v2"
)

// Seams for tests; production wiring goes straight to utils.
var (
	renderCertificate    = utils.GenerateCertificate
	sendCertificateEmail = utils.SendCertificateEmail
)

// BatchItem is the outcome for one enrollment in a batch issuance run
type BatchItem struct {
	EnrollmentID    uint   `json:"enrollment_id"`
	Status          string `json:"status"` // issued, failed
	CertificatePath string `json:"certificate_path,omitempty"`
	Error           string `json:"error,omitempty"`
}

// BatchReport summarizes a batch issuance run
type BatchReport struct {
	Processed int         `json:"processed"`
	Succeeded int         `json:"succeeded"`
	Failed    int         `json:"failed"`
	Items     []BatchItem `json:"items"`
}

// IssueCertificates renders and emails a certificate for every completed
// enrollment. Each item is processed independently: one failed render or send
// is reported and never aborts the rest of the batch.
func IssueCertificates(c *fiber.Ctx) error {
	db := database.Database.Db

	var enrollments []models.Enrollment
	if err := db.
		Where("completion_status = ? AND is_deleted = ?", models.CompletionCompleted, false).
		Preload("User").
		Preload("Workshop").
		Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch completed enrollments!", nil)
	}

	if len(enrollments) == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No completed enrollments found!", nil)
	}

	report := BatchReport{Items: make([]BatchItem, 0, len(enrollments))}

	for _, enrollment := range enrollments {
		report.Processed++
		item := BatchItem{EnrollmentID: enrollment.ID}

		if enrollment.User == nil || enrollment.Workshop == nil {
			item.Status = "failed"
			item.Error = "user or workshop reference missing"
			report.Failed++
			report.Items = append(report.Items, item)
			continue
		}

		certPath, err := renderCertificate(enrollment.User.Name, enrollment.Workshop.Title, enrollment.ID, utils.NewCertificateSerial(), utils.LayoutDesktop)
		if err != nil {
			log.Printf("Error rendering certificate for enrollment %d: %v", enrollment.ID, err)
			item.Status = "failed"
			item.Error = err.Error()
			report.Failed++
			report.Items = append(report.Items, item)
			continue
		}

		if err := sendCertificateEmail(enrollment.User.Email, enrollment.User.Name, enrollment.Workshop.Title, certPath); err != nil {
			log.Printf("Error emailing certificate for enrollment %d: %v", enrollment.ID, err)
			item.Status = "failed"
			item.Error = err.Error()
			report.Failed++
			report.Items = append(report.Items, item)
			continue
		}

		now := time.Now()
		db.Model(&models.Enrollment{}).Where("id = ?", enrollment.ID).
			Update("certificate_sent_at", &now)

		item.Status = "issued"
		item.CertificatePath = certPath
		report.Succeeded++
		report.Items = append(report.Items, item)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate batch processed!", report)
}

// IssueCertificate renders and emails the certificate for one completed
// (user, workshop) enrollment and returns the document path. Render and
// delivery failures propagate to the caller here, unlike the batch path.
func IssueCertificate(c *fiber.Ctx) error {
	userID := c.Locals("targetUserID").(int)
	workshopID := c.Locals("targetWorkshopID").(int)
	layout := c.Locals("certificateLayout").(string)

	db := database.Database.Db

	var enrollment models.Enrollment
	if err := db.
		Where("user_id = ? AND workshop_id = ? AND completion_status = ? AND is_deleted = ?",
			userID, workshopID, models.CompletionCompleted, false).
		Preload("User").
		Preload("Workshop").
		First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No completed enrollment found for this user and workshop!", nil)
	}

	if enrollment.User == nil || enrollment.Workshop == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User or workshop no longer exists!", nil)
	}

	serial := utils.NewCertificateSerial()
	certPath, err := renderCertificate(enrollment.User.Name, enrollment.Workshop.Title, enrollment.ID, serial, layout)
	if err != nil {
		log.Printf("Error rendering certificate for enrollment %d: %v", enrollment.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to render certificate!", nil)
	}

	if err := sendCertificateEmail(enrollment.User.Email, enrollment.User.Name, enrollment.Workshop.Title, certPath); err != nil {
		log.Printf("Error emailing certificate for enrollment %d: %v", enrollment.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to deliver certificate email!", nil)
	}

	now := time.Now()
	db.Model(&models.Enrollment{}).Where("id = ?", enrollment.ID).
		Update("certificate_sent_at", &now)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate issued successfully!", fiber.Map{
		"certificate_path": certPath,
		"serial":           serial,
	})
}
