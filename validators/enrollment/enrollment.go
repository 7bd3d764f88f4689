package enrollmentValidator

import (
	"strconv"
	"strings"
	"yogveda/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CreatePayload is the request body for creating an enrollment
type CreatePayload struct {
	UserID     uint `json:"user_id" validate:"required"`
	WorkshopID uint `json:"workshop_id" validate:"required"`
}

// UpdatePayload is the partial-update body for an enrollment. Every field is
// optional; enum membership is enforced here so controllers only see valid
// status values.
type UpdatePayload struct {
	UserID           *uint    `json:"user_id" validate:"omitempty,gt=0"`
	WorkshopID       *uint    `json:"workshop_id" validate:"omitempty,gt=0"`
	CompletionStatus *string  `json:"completion_status" validate:"omitempty,oneof=pending enrolled completed canceled"`
	PaymentStatus    *string  `json:"payment_status" validate:"omitempty,oneof=pending completed failed"`
	PaymentReference *string  `json:"payment_reference"`
	TotalPrice       *float64 `json:"total_price" validate:"omitempty,gte=0"`
}

func validationErrors(err error) map[string]string {
	errors := make(map[string]string)
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			errors[strings.ToLower(fe.Field())] = "failed on rule: " + fe.Tag()
		}
	}
	return errors
}

// CreateEnrollment validates the enrollment creation body
func CreateEnrollment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreatePayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.UserID == 0 || reqData.WorkshopID == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User ID and Workshop ID are required!", nil)
		}

		c.Locals("validatedEnrollment", reqData)
		return c.Next()
	}
}

// EnrollmentID validates the :id route parameter
func EnrollmentID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Enrollment ID is required!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Enrollment ID!", nil)
		}

		c.Locals("enrollmentID", id)
		return c.Next()
	}
}

// UserIDParam validates the :user_id route parameter
func UserIDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("user_id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User ID is required!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid User ID!", nil)
		}

		c.Locals("targetUserID", id)
		return c.Next()
	}
}

// UpdateEnrollment validates full and partial enrollment updates
func UpdateEnrollment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdatePayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}

		c.Locals("validatedEnrollmentPatch", reqData)
		return c.Next()
	}
}

// StatusQuery validates the user_id/workshop_id query pair for the
// enrollment existence check
func StatusQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err1 := strconv.Atoi(c.Query("user_id"))
		workshopID, err2 := strconv.Atoi(c.Query("workshop_id"))
		if err1 != nil || err2 != nil || userID <= 0 || workshopID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "user_id and workshop_id are required!", nil)
		}

		c.Locals("targetUserID", userID)
		c.Locals("targetWorkshopID", workshopID)
		return c.Next()
	}
}

// CertificateQuery validates the single-certificate issuance query
func CertificateQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err1 := strconv.Atoi(c.Query("user_id"))
		workshopID, err2 := strconv.Atoi(c.Query("workshop_id"))
		if err1 != nil || err2 != nil || userID <= 0 || workshopID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "user_id and workshop_id are required!", nil)
		}

		layout := c.Query("layout", "desktop")
		if layout != "desktop" && layout != "mobile" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "layout must be desktop or mobile!", nil)
		}

		c.Locals("targetUserID", userID)
		c.Locals("targetWorkshopID", workshopID)
		c.Locals("certificateLayout", layout)
		return c.Next()
	}
}
