package utils

import (
	"fmt"
	"log"
	"time"
	"yogveda/database"
	"yogveda/models"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[CERT-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// InitializeCertificateScheduler sets up the daily certificate issuance job
func InitializeCertificateScheduler() {
	log.Println("[CERT-SCHEDULER] Initializing certificate scheduler...")

	c := cron.New()

	// Run daily at 7 AM to issue certificates for newly completed enrollments
	c.AddFunc("0 7 * * *", func() {
		logScheduler("Running daily certificate issuance...")
		IssuePendingCertificates()
	})

	c.Start()
	log.Println("[CERT-SCHEDULER] Certificate scheduler started - runs daily at 7 AM")
}

// IssuePendingCertificates renders and emails certificates for completed
// enrollments that have not received one yet. Each enrollment is handled
// independently: a failed render or send is logged and skipped.
func IssuePendingCertificates() {
	db := database.Database.Db

	var enrollments []models.Enrollment
	if err := db.
		Where("completion_status = ? AND certificate_sent_at IS NULL AND is_deleted = ?", models.CompletionCompleted, false).
		Preload("User").
		Preload("Workshop").
		Find(&enrollments).Error; err != nil {
		logScheduler("Error fetching completed enrollments: " + err.Error())
		return
	}

	logScheduler(fmt.Sprintf("%d enrollments pending certificates", len(enrollments)))
	if len(enrollments) == 0 {
		return
	}

	for _, enrollment := range enrollments {
		if enrollment.User == nil || enrollment.Workshop == nil {
			logScheduler("Skipping enrollment with missing user or workshop reference")
			continue
		}

		certPath, err := GenerateCertificate(enrollment.User.Name, enrollment.Workshop.Title, enrollment.ID, NewCertificateSerial(), LayoutDesktop)
		if err != nil {
			logScheduler("Error rendering certificate for enrollment: " + err.Error())
			continue
		}

		if err := SendCertificateEmail(enrollment.User.Email, enrollment.User.Name, enrollment.Workshop.Title, certPath); err != nil {
			logScheduler("Error emailing certificate for enrollment: " + err.Error())
			continue
		}

		now := time.Now()
		if err := db.Model(&models.Enrollment{}).Where("id = ?", enrollment.ID).
			Update("certificate_sent_at", &now).Error; err != nil {
			logScheduler("Error marking certificate sent: " + err.Error())
		}
	}

	logScheduler("Daily certificate issuance finished")
}
