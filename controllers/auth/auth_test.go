package authController

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"yogveda/config"
	"yogveda/database"
	"yogveda/models"
	"yogveda/utils"
	authValidator "yogveda/validators/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupAuthApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{JWTKey: "test-secret", SaltRound: 4}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	database.Database = database.DbInstance{Db: db}

	// Keep the welcome email off the wire
	origSend := utils.SendEmail
	t.Cleanup(func() { utils.SendEmail = origSend })
	utils.SendEmail = func(toEmail, toName, subject, htmlBody, attachmentPath string) error {
		return nil
	}

	app := fiber.New()
	app.Post("/auth/signup", authValidator.Signup(), Signup)
	app.Post("/auth/login", authValidator.Login(), Login)

	return app
}

func postJSON(t *testing.T, app *fiber.App, target string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", target, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var env map[string]interface{}
	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(payload, &env))

	return resp, env
}

func TestSignup(t *testing.T) {
	app := setupAuthApp(t)

	resp, env := postJSON(t, app, "/auth/signup", fiber.Map{
		"name":     "Asha Rao",
		"email":    "asha@example.com",
		"password": "strongpass1",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	data := env["data"].(map[string]interface{})
	assert.Equal(t, "asha@example.com", data["email"])
	assert.Equal(t, models.RoleStudent, data["role"])

	// Password never leaves the server
	var user models.User
	require.NoError(t, database.Database.Db.Where("email = ?", "asha@example.com").First(&user).Error)
	assert.NotEqual(t, "strongpass1", user.Password)
}

func TestSignupDuplicateEmail(t *testing.T) {
	app := setupAuthApp(t)

	body := fiber.Map{"name": "Asha Rao", "email": "asha@example.com", "password": "strongpass1"}

	resp, _ := postJSON(t, app, "/auth/signup", body)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, _ = postJSON(t, app, "/auth/signup", body)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestSignupValidation(t *testing.T) {
	app := setupAuthApp(t)

	resp, _ := postJSON(t, app, "/auth/signup", fiber.Map{"name": "A", "email": "not-an-email", "password": "short"})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestLogin(t *testing.T) {
	app := setupAuthApp(t)

	postJSON(t, app, "/auth/signup", fiber.Map{
		"name":     "Asha Rao",
		"email":    "asha@example.com",
		"password": "strongpass1",
	})

	resp, env := postJSON(t, app, "/auth/login", fiber.Map{
		"email":    "asha@example.com",
		"password": "strongpass1",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := env["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])
}

func TestLoginWrongPassword(t *testing.T) {
	app := setupAuthApp(t)

	postJSON(t, app, "/auth/signup", fiber.Map{
		"name":     "Asha Rao",
		"email":    "asha@example.com",
		"password": "strongpass1",
	})

	resp, _ := postJSON(t, app, "/auth/login", fiber.Map{
		"email":    "asha@example.com",
		"password": "wrongpass99",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
