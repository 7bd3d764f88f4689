package userRoutes

import (
	userControllers "yogveda/controllers/userControllers"
	"yogveda/middleware"
	userValidator "yogveda/validators/user"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes sets up profile routes
func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user")

	userGroup.Get("/profile", middleware.JWTMiddleware, userControllers.GetProfile)
	userGroup.Put("/profile", middleware.JWTMiddleware, userValidator.UpdateProfile(), userControllers.UpdateProfile)
	userGroup.Delete("/profile", middleware.JWTMiddleware, userControllers.DeleteProfile)
}
