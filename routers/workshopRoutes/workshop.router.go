package workshopRoutes

import (
	scheduleControllers "yogveda/controllers/schedule"
	controllers "yogveda/controllers/workshop"
	"yogveda/middleware"
	"yogveda/models"
	scheduleValidator "yogveda/validators/schedule"
	validators "yogveda/validators/workshop"

	"github.com/gofiber/fiber/v2"
)

// SetupWorkshopRoutes sets up the public workshop and category routes
func SetupWorkshopRoutes(app *fiber.App) {
	workshopGroup := app.Group("/workshop")

	workshopGroup.Get("/list", controllers.GetAllWorkshops)
	workshopGroup.Get("/:id", validators.IDParam("workshopID"), controllers.GetWorkshopDetails)
	workshopGroup.Get("/:id/schedules", validators.IDParam("workshopID"), scheduleControllers.GetWorkshopSchedules)

	app.Get("/category/list", controllers.GetCategories)
}

// SetupAdminWorkshopRoutes sets up the admin back office workshop routes
func SetupAdminWorkshopRoutes(app *fiber.App) {
	admin := middleware.RequireRole(models.RoleAdmin)

	adminWorkshop := app.Group("/admin/workshop")
	adminWorkshop.Post("/create", middleware.JWTMiddleware, admin, validators.CreateWorkshop(), controllers.AdminCreateWorkshop)
	adminWorkshop.Put("/:id", middleware.JWTMiddleware, admin, validators.IDParam("workshopID"), validators.UpdateWorkshop(), controllers.AdminUpdateWorkshop)
	adminWorkshop.Delete("/:id", middleware.JWTMiddleware, admin, validators.IDParam("workshopID"), controllers.AdminDeleteWorkshop)
	adminWorkshop.Post("/:id/module", middleware.JWTMiddleware, admin, validators.IDParam("workshopID"), validators.CreateModule(), controllers.AdminAddModule)

	adminModule := app.Group("/admin/module")
	adminModule.Delete("/:id", middleware.JWTMiddleware, admin, validators.IDParam("moduleID"), controllers.AdminDeleteModule)

	adminCategory := app.Group("/admin/category")
	adminCategory.Post("/create", middleware.JWTMiddleware, admin, validators.Category(), controllers.AdminCreateCategory)
	adminCategory.Put("/:id", middleware.JWTMiddleware, admin, validators.IDParam("categoryID"), validators.Category(), controllers.AdminUpdateCategory)
	adminCategory.Delete("/:id", middleware.JWTMiddleware, admin, validators.IDParam("categoryID"), controllers.AdminDeleteCategory)

	adminSchedule := app.Group("/admin/schedule")
	adminSchedule.Post("/create", middleware.JWTMiddleware, admin, scheduleValidator.CreateSchedule(), scheduleControllers.CreateSchedule)
	adminSchedule.Put("/:id", middleware.JWTMiddleware, admin, validators.IDParam("scheduleID"), scheduleValidator.UpdateSchedule(), scheduleControllers.UpdateSchedule)
	adminSchedule.Delete("/:id", middleware.JWTMiddleware, admin, validators.IDParam("scheduleID"), scheduleControllers.DeleteSchedule)
}
