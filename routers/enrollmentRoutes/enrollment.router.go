package enrollmentRoutes

import (
	controllers "yogveda/controllers/enrollment"
	"yogveda/middleware"
	"yogveda/models"
	validators "yogveda/validators/enrollment"

	"github.com/gofiber/fiber/v2"
)

// SetupEnrollmentRoutes sets up the enrollment lifecycle and certificate
// issuance routes
func SetupEnrollmentRoutes(app *fiber.App) {
	admin := middleware.RequireRole(models.RoleAdmin)

	enrollGroup := app.Group("/enrollment")

	enrollGroup.Post("/", middleware.JWTMiddleware, validators.CreateEnrollment(), controllers.CreateEnrollment)
	enrollGroup.Get("/status", middleware.JWTMiddleware, validators.StatusQuery(), controllers.CheckEnrollmentStatus)
	enrollGroup.Get("/user/:user_id", middleware.JWTMiddleware, validators.UserIDParam(), controllers.GetEnrollmentsByUser)
	enrollGroup.Get("/:id", middleware.JWTMiddleware, validators.EnrollmentID(), controllers.GetEnrollmentByID)
	enrollGroup.Put("/:id", middleware.JWTMiddleware, admin, validators.EnrollmentID(), validators.UpdateEnrollment(), controllers.UpdateEnrollment)
	enrollGroup.Patch("/:id", middleware.JWTMiddleware, admin, validators.EnrollmentID(), validators.UpdateEnrollment(), controllers.UpdateEnrollment)
	enrollGroup.Delete("/:id", middleware.JWTMiddleware, admin, validators.EnrollmentID(), controllers.DeleteEnrollment)

	// Certificate issuance
	app.Get("/certificate", middleware.JWTMiddleware, validators.CertificateQuery(), controllers.IssueCertificate)
	app.Post("/admin/certificates/issue", middleware.JWTMiddleware, admin, controllers.IssueCertificates)
}
