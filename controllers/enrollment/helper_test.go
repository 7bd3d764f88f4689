package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"yogveda/config"
	"yogveda/database"
	"yogveda/models"
	validators "yogveda/validators/enrollment"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestApp wires an isolated in-memory database into the global handle
// and registers the enrollment routes without auth middleware.
func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:              "test-secret",
		SaltRound:           4,
		CertificateDir:      t.TempDir(),
		CertTemplateDesktop: "testdata/missing-desktop.png",
		CertTemplateMobile:  "testdata/missing-mobile.png",
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Workshop{},
		&models.WorkshopModule{},
		&models.Schedule{},
		&models.Enrollment{},
	))

	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	app.Post("/enrollment", validators.CreateEnrollment(), CreateEnrollment)
	app.Get("/enrollment/status", validators.StatusQuery(), CheckEnrollmentStatus)
	app.Get("/enrollment/user/:user_id", validators.UserIDParam(), GetEnrollmentsByUser)
	app.Get("/enrollment/:id", validators.EnrollmentID(), GetEnrollmentByID)
	app.Patch("/enrollment/:id", validators.EnrollmentID(), validators.UpdateEnrollment(), UpdateEnrollment)
	app.Delete("/enrollment/:id", validators.EnrollmentID(), DeleteEnrollment)
	app.Get("/certificate", validators.CertificateQuery(), IssueCertificate)
	app.Post("/admin/certificates/issue", IssueCertificates)

	return app
}

func seedUser(t *testing.T, name, email string) models.User {
	t.Helper()
	user := models.User{Name: name, Email: email, Password: "x", Role: models.RoleStudent}
	require.NoError(t, database.Database.Db.Create(&user).Error)
	return user
}

func seedWorkshop(t *testing.T, title string) models.Workshop {
	t.Helper()
	category := models.Category{Name: title + " category"}
	require.NoError(t, database.Database.Db.Create(&category).Error)
	workshop := models.Workshop{Title: title, Level: models.LevelBeginner, Price: 120, CategoryID: category.ID}
	require.NoError(t, database.Database.Db.Create(&workshop).Error)
	return workshop
}

func seedSchedule(t *testing.T, workshopID uint) models.Schedule {
	t.Helper()
	weekdays, _ := json.Marshal([]string{"monday"})
	schedule := models.Schedule{
		WorkshopID: workshopID,
		Weekdays:   weekdays,
		StartTime:  "06:00",
		EndTime:    "07:30",
		Status:     models.ScheduleActive,
	}
	require.NoError(t, database.Database.Db.Create(&schedule).Error)
	return schedule
}

func seedEnrollment(t *testing.T, userID, workshopID uint, completion string) models.Enrollment {
	t.Helper()
	enrollment := models.Enrollment{
		UserID:           userID,
		WorkshopID:       workshopID,
		CompletionStatus: completion,
		PaymentStatus:    models.PaymentPending,
		EnrolledAt:       time.Now(),
	}
	if completion == models.CompletionCompleted {
		now := time.Now()
		enrollment.CompletedAt = &now
	}
	require.NoError(t, database.Database.Db.Create(&enrollment).Error)
	return enrollment
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doRequest(t *testing.T, app *fiber.App, method, target string, body interface{}) (*http.Response, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &env))

	return resp, env
}
