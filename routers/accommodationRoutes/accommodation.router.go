package accommodationRoutes

import (
	controllers "yogveda/controllers/accommodation"
	"yogveda/middleware"
	"yogveda/models"
	accommodationValidator "yogveda/validators/accommodation"
	workshopValidator "yogveda/validators/workshop"

	"github.com/gofiber/fiber/v2"
)

// SetupAccommodationRoutes sets up retreat lodging routes
func SetupAccommodationRoutes(app *fiber.App) {
	admin := middleware.RequireRole(models.RoleAdmin)

	app.Get("/accommodation/list", controllers.GetAccommodations)

	adminGroup := app.Group("/admin/accommodation")
	adminGroup.Post("/create", middleware.JWTMiddleware, admin, accommodationValidator.Accommodation(), controllers.AdminCreateAccommodation)
	adminGroup.Put("/:id", middleware.JWTMiddleware, admin, workshopValidator.IDParam("accommodationID"), accommodationValidator.Accommodation(), controllers.AdminUpdateAccommodation)
	adminGroup.Delete("/:id", middleware.JWTMiddleware, admin, workshopValidator.IDParam("accommodationID"), controllers.AdminDeleteAccommodation)
	adminGroup.Post("/:id/room", middleware.JWTMiddleware, admin, workshopValidator.IDParam("accommodationID"), accommodationValidator.Room(), controllers.AdminAddRoom)

	adminRoom := app.Group("/admin/room")
	adminRoom.Delete("/:id", middleware.JWTMiddleware, admin, workshopValidator.IDParam("roomID"), controllers.AdminDeleteRoom)
}
