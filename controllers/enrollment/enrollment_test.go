package controllers

import (
	"encoding/json"
	"fmt"
	"testing"
	"yogveda/database"
	"yogveda/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEnrollment(t *testing.T) {
	app := setupTestApp(t)

	user := seedUser(t, "Asha Rao", "asha@example.com")
	workshop := seedWorkshop(t, "Morning Vinyasa")
	seedSchedule(t, workshop.ID)

	body := fiber.Map{"user_id": user.ID, "workshop_id": workshop.ID}

	resp, env := doRequest(t, app, "POST", "/enrollment", body)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	require.True(t, env.Status)

	var enrollment models.Enrollment
	require.NoError(t, json.Unmarshal(env.Data, &enrollment))
	assert.Equal(t, models.PaymentPending, enrollment.PaymentStatus)
	assert.Equal(t, models.CompletionPending, enrollment.CompletionStatus)
	assert.Nil(t, enrollment.CompletedAt)

	// Enrollment shows up in the user's enrolled list
	var owner models.User
	require.NoError(t, database.Database.Db.First(&owner, user.ID).Error)
	assert.Contains(t, owner.EnrolledWorkshopIDs(), workshop.ID)

	// Second call for the same pair conflicts
	resp, _ = doRequest(t, app, "POST", "/enrollment", body)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestCreateEnrollmentMissingIDs(t *testing.T) {
	app := setupTestApp(t)

	resp, _ := doRequest(t, app, "POST", "/enrollment", fiber.Map{"user_id": 0, "workshop_id": 0})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateEnrollmentUserNotFound(t *testing.T) {
	app := setupTestApp(t)

	workshop := seedWorkshop(t, "Yin Deep Stretch")
	seedSchedule(t, workshop.ID)

	resp, _ := doRequest(t, app, "POST", "/enrollment", fiber.Map{"user_id": 999, "workshop_id": workshop.ID})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestCreateEnrollmentWorkshopNotFound(t *testing.T) {
	app := setupTestApp(t)

	user := seedUser(t, "Asha Rao", "asha@example.com")

	resp, _ := doRequest(t, app, "POST", "/enrollment", fiber.Map{"user_id": user.ID, "workshop_id": 999})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestCreateEnrollmentWithoutSchedule(t *testing.T) {
	app := setupTestApp(t)

	user := seedUser(t, "Asha Rao", "asha@example.com")
	workshop := seedWorkshop(t, "Unscheduled Retreat")

	resp, _ := doRequest(t, app, "POST", "/enrollment", fiber.Map{"user_id": user.ID, "workshop_id": workshop.ID})
	assert.Equal(t, fiber.StatusPreconditionFailed, resp.StatusCode)
}

func TestCheckEnrollmentStatus(t *testing.T) {
	app := setupTestApp(t)

	user := seedUser(t, "Asha Rao", "asha@example.com")
	workshop := seedWorkshop(t, "Morning Vinyasa")
	seedSchedule(t, workshop.ID)

	target := fmt.Sprintf("/enrollment/status?user_id=%d&workshop_id=%d", user.ID, workshop.ID)

	resp, env := doRequest(t, app, "GET", target, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var status struct {
		Enrolled bool `json:"enrolled"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &status))
	assert.False(t, status.Enrolled)

	doRequest(t, app, "POST", "/enrollment", fiber.Map{"user_id": user.ID, "workshop_id": workshop.ID})

	resp, env = doRequest(t, app, "GET", target, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(env.Data, &status))
	assert.True(t, status.Enrolled)
}

func TestGetEnrollmentByIDExpandsReferences(t *testing.T) {
	app := setupTestApp(t)

	user := seedUser(t, "Asha Rao", "asha@example.com")
	workshop := seedWorkshop(t, "Morning Vinyasa")
	enrollment := seedEnrollment(t, user.ID, workshop.ID, models.CompletionEnrolled)

	resp, env := doRequest(t, app, "GET", fmt.Sprintf("/enrollment/%d", enrollment.ID), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var fetched models.Enrollment
	require.NoError(t, json.Unmarshal(env.Data, &fetched))
	require.NotNil(t, fetched.User)
	require.NotNil(t, fetched.Workshop)
	assert.Equal(t, user.Email, fetched.User.Email)
	assert.Equal(t, workshop.Title, fetched.Workshop.Title)
}

func TestGetEnrollmentByIDNotFound(t *testing.T) {
	app := setupTestApp(t)

	resp, _ := doRequest(t, app, "GET", "/enrollment/424242", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGetEnrollmentsByUserEmptyList(t *testing.T) {
	app := setupTestApp(t)

	user := seedUser(t, "Asha Rao", "asha@example.com")

	// No enrollments is a normal empty result, not an error
	resp, env := doRequest(t, app, "GET", fmt.Sprintf("/enrollment/user/%d", user.ID), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var data struct {
		Enrollments []models.Enrollment `json:"enrollments"`
		Total       int                 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Empty(t, data.Enrollments)
	assert.Zero(t, data.Total)
}

func TestGetEnrollmentsByUserMissingUser(t *testing.T) {
	app := setupTestApp(t)

	resp, _ := doRequest(t, app, "GET", "/enrollment/user/999", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestUpdateEnrollmentMarkCompleted(t *testing.T) {
	app := setupTestApp(t)

	user := seedUser(t, "Asha Rao", "asha@example.com")
	workshop := seedWorkshop(t, "Morning Vinyasa")
	enrollment := seedEnrollment(t, user.ID, workshop.ID, models.CompletionEnrolled)

	resp, env := doRequest(t, app, "PATCH", fmt.Sprintf("/enrollment/%d", enrollment.ID),
		fiber.Map{"completion_status": models.CompletionCompleted})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated models.Enrollment
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, models.CompletionCompleted, updated.CompletionStatus)
	require.NotNil(t, updated.CompletedAt)
}

func TestUpdateEnrollmentRejectsInvalidStatus(t *testing.T) {
	app := setupTestApp(t)

	user := seedUser(t, "Asha Rao", "asha@example.com")
	workshop := seedWorkshop(t, "Morning Vinyasa")
	enrollment := seedEnrollment(t, user.ID, workshop.ID, models.CompletionEnrolled)

	resp, _ := doRequest(t, app, "PATCH", fmt.Sprintf("/enrollment/%d", enrollment.ID),
		fiber.Map{"completion_status": "graduated"})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestUpdateEnrollmentRejectsBackwardTransition(t *testing.T) {
	app := setupTestApp(t)

	user := seedUser(t, "Asha Rao", "asha@example.com")
	workshop := seedWorkshop(t, "Morning Vinyasa")
	enrollment := seedEnrollment(t, user.ID, workshop.ID, models.CompletionCompleted)

	// completed is terminal
	resp, _ := doRequest(t, app, "PATCH", fmt.Sprintf("/enrollment/%d", enrollment.ID),
		fiber.Map{"completion_status": models.CompletionPending})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestUpdateEnrollmentUniquenessConflict(t *testing.T) {
	app := setupTestApp(t)

	user := seedUser(t, "Asha Rao", "asha@example.com")
	first := seedWorkshop(t, "Morning Vinyasa")
	second := seedWorkshop(t, "Yin Deep Stretch")
	seedEnrollment(t, user.ID, first.ID, models.CompletionEnrolled)
	moved := seedEnrollment(t, user.ID, second.ID, models.CompletionEnrolled)

	// Retargeting the second enrollment onto the first pair must conflict
	resp, _ := doRequest(t, app, "PATCH", fmt.Sprintf("/enrollment/%d", moved.ID),
		fiber.Map{"workshop_id": first.ID})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestUpdateEnrollmentNotFound(t *testing.T) {
	app := setupTestApp(t)

	resp, _ := doRequest(t, app, "PATCH", "/enrollment/999",
		fiber.Map{"completion_status": models.CompletionEnrolled})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDeleteEnrollment(t *testing.T) {
	app := setupTestApp(t)

	user := seedUser(t, "Asha Rao", "asha@example.com")
	workshop := seedWorkshop(t, "Morning Vinyasa")
	seedSchedule(t, workshop.ID)

	_, env := doRequest(t, app, "POST", "/enrollment", fiber.Map{"user_id": user.ID, "workshop_id": workshop.ID})
	var enrollment models.Enrollment
	require.NoError(t, json.Unmarshal(env.Data, &enrollment))

	resp, _ := doRequest(t, app, "DELETE", fmt.Sprintf("/enrollment/%d", enrollment.ID), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Gone for good
	resp, _ = doRequest(t, app, "GET", fmt.Sprintf("/enrollment/%d", enrollment.ID), nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	// Compensating update removed the workshop from the user's list
	var owner models.User
	require.NoError(t, database.Database.Db.First(&owner, user.ID).Error)
	assert.NotContains(t, owner.EnrolledWorkshopIDs(), workshop.ID)

	// The pair is free again
	resp, _ = doRequest(t, app, "POST", "/enrollment", fiber.Map{"user_id": user.ID, "workshop_id": workshop.ID})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestDeleteEnrollmentNotFound(t *testing.T) {
	app := setupTestApp(t)

	resp, _ := doRequest(t, app, "DELETE", "/enrollment/999", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
