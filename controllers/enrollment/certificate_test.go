package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"yogveda/database"
	"yogveda/models"
	"yogveda/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubCertificatePipeline(t *testing.T, sendErr func(email string) error) (renders *[]string, sends *[]string) {
	t.Helper()

	origRender := renderCertificate
	origSend := sendCertificateEmail
	t.Cleanup(func() {
		renderCertificate = origRender
		sendCertificateEmail = origSend
	})

	rendered := &[]string{}
	sent := &[]string{}

	renderCertificate = func(name, workshopTitle string, enrollmentID uint, serial, layout string) (string, error) {
		path := filepath.Join(t.TempDir(), utils.CertificateFileName(name, enrollmentID, layout))
		*rendered = append(*rendered, path)
		return path, nil
	}
	sendCertificateEmail = func(email, name, workshopTitle, certificatePath string) error {
		if sendErr != nil {
			if err := sendErr(email); err != nil {
				return err
			}
		}
		*sent = append(*sent, email)
		return nil
	}

	return rendered, sent
}

func TestIssueCertificatesEmptySet(t *testing.T) {
	app := setupTestApp(t)
	stubCertificatePipeline(t, nil)

	resp, _ := doRequest(t, app, "POST", "/admin/certificates/issue", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestIssueCertificatesProcessesAllCompleted(t *testing.T) {
	app := setupTestApp(t)
	_, sent := stubCertificatePipeline(t, nil)

	workshop := seedWorkshop(t, "Morning Vinyasa")
	for i := 0; i < 3; i++ {
		user := seedUser(t, fmt.Sprintf("Student %d", i), fmt.Sprintf("student%d@example.com", i))
		seedEnrollment(t, user.ID, workshop.ID, models.CompletionCompleted)
	}
	// A non-completed enrollment must not be picked up
	bystander := seedUser(t, "Bystander", "bystander@example.com")
	seedEnrollment(t, bystander.ID, workshop.ID, models.CompletionEnrolled)

	resp, env := doRequest(t, app, "POST", "/admin/certificates/issue", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var report BatchReport
	require.NoError(t, json.Unmarshal(env.Data, &report))
	assert.Equal(t, 3, report.Processed)
	assert.Equal(t, 3, report.Succeeded)
	assert.Zero(t, report.Failed)
	assert.Len(t, *sent, 3)
}

func TestIssueCertificatesIsolatesFailures(t *testing.T) {
	app := setupTestApp(t)
	_, sent := stubCertificatePipeline(t, func(email string) error {
		if strings.HasPrefix(email, "broken") {
			return errors.New("mail gateway down")
		}
		return nil
	})

	workshop := seedWorkshop(t, "Morning Vinyasa")
	good1 := seedUser(t, "Good One", "good1@example.com")
	broken := seedUser(t, "Broken Mailbox", "broken@example.com")
	good2 := seedUser(t, "Good Two", "good2@example.com")
	seedEnrollment(t, good1.ID, workshop.ID, models.CompletionCompleted)
	seedEnrollment(t, broken.ID, workshop.ID, models.CompletionCompleted)
	seedEnrollment(t, good2.ID, workshop.ID, models.CompletionCompleted)

	resp, env := doRequest(t, app, "POST", "/admin/certificates/issue", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var report BatchReport
	require.NoError(t, json.Unmarshal(env.Data, &report))

	// One failed send never aborts the rest
	assert.Equal(t, 3, report.Processed)
	assert.Equal(t, 2, report.Succeeded)
	assert.Equal(t, 1, report.Failed)
	assert.Len(t, *sent, 2)

	failed := 0
	for _, item := range report.Items {
		if item.Status == "failed" {
			failed++
			assert.NotEmpty(t, item.Error)
		}
	}
	assert.Equal(t, 1, failed)
}

func TestIssueCertificateSingle(t *testing.T) {
	app := setupTestApp(t)
	rendered, sent := stubCertificatePipeline(t, nil)

	user := seedUser(t, "Asha Rao", "asha@example.com")
	workshop := seedWorkshop(t, "Morning Vinyasa")
	enrollment := seedEnrollment(t, user.ID, workshop.ID, models.CompletionCompleted)

	target := fmt.Sprintf("/certificate?user_id=%d&workshop_id=%d", user.ID, workshop.ID)

	resp, env := doRequest(t, app, "GET", target, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var data struct {
		CertificatePath string `json:"certificate_path"`
		Serial          string `json:"serial"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))

	// Path carries the recipient name and the enrollment id
	assert.Contains(t, filepath.Base(data.CertificatePath), "Asha_Rao")
	assert.Contains(t, filepath.Base(data.CertificatePath), fmt.Sprintf("_%d_", enrollment.ID))
	assert.True(t, strings.HasPrefix(data.Serial, "YV-"))

	require.Len(t, *rendered, 1)
	require.Len(t, *sent, 1)
	assert.Equal(t, "asha@example.com", (*sent)[0])

	// Issuance is recorded on the enrollment
	var updated models.Enrollment
	require.NoError(t, database.Database.Db.First(&updated, enrollment.ID).Error)
	assert.NotNil(t, updated.CertificateSentAt)
}

func TestIssueCertificateRequiresCompletion(t *testing.T) {
	app := setupTestApp(t)
	stubCertificatePipeline(t, nil)

	user := seedUser(t, "Asha Rao", "asha@example.com")
	workshop := seedWorkshop(t, "Morning Vinyasa")
	seedEnrollment(t, user.ID, workshop.ID, models.CompletionEnrolled)

	resp, _ := doRequest(t, app, "GET",
		fmt.Sprintf("/certificate?user_id=%d&workshop_id=%d", user.ID, workshop.ID), nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestIssueCertificateMissingParams(t *testing.T) {
	app := setupTestApp(t)
	stubCertificatePipeline(t, nil)

	resp, _ := doRequest(t, app, "GET", "/certificate?user_id=1", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestIssueCertificateDeliveryFailurePropagates(t *testing.T) {
	app := setupTestApp(t)
	stubCertificatePipeline(t, func(string) error { return errors.New("mail gateway down") })

	user := seedUser(t, "Asha Rao", "asha@example.com")
	workshop := seedWorkshop(t, "Morning Vinyasa")
	seedEnrollment(t, user.ID, workshop.ID, models.CompletionCompleted)

	resp, _ := doRequest(t, app, "GET",
		fmt.Sprintf("/certificate?user_id=%d&workshop_id=%d", user.ID, workshop.ID), nil)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
