package workshopValidator

import (
	"strconv"
	"strings"
	"yogveda/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ModulePayload is one ordered module inside a workshop body
type ModulePayload struct {
	Name            string `json:"name" validate:"required"`
	DurationMinutes int    `json:"duration_minutes" validate:"required,gt=0"`
}

// CreateWorkshopPayload is the admin workshop creation body
type CreateWorkshopPayload struct {
	Title         string          `json:"title" validate:"required,min=3"`
	Description   string          `json:"description"`
	Level         string          `json:"level" validate:"omitempty,oneof=beginner intermediate advanced"`
	Price         float64         `json:"price" validate:"gte=0"`
	DiscountPrice *float64        `json:"discount_price" validate:"omitempty,gte=0"`
	InstructorID  uint            `json:"instructor_id" validate:"required,gt=0"`
	CategoryID    uint            `json:"category_id" validate:"required,gt=0"`
	Modules       []ModulePayload `json:"modules" validate:"omitempty,dive"`
}

// UpdateWorkshopPayload is the admin partial workshop update body
type UpdateWorkshopPayload struct {
	Title         *string  `json:"title" validate:"omitempty,min=3"`
	Description   *string  `json:"description"`
	Level         *string  `json:"level" validate:"omitempty,oneof=beginner intermediate advanced"`
	Price         *float64 `json:"price" validate:"omitempty,gte=0"`
	DiscountPrice *float64 `json:"discount_price" validate:"omitempty,gte=0"`
	InstructorID  *uint    `json:"instructor_id" validate:"omitempty,gt=0"`
	CategoryID    *uint    `json:"category_id" validate:"omitempty,gt=0"`
}

// CategoryPayload is the admin category create/update body
type CategoryPayload struct {
	Name        string `json:"name" validate:"required,min=2"`
	Description string `json:"description"`
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

// IDParam validates a positive-integer :id route parameter into the given
// locals key
func IDParam(localKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "ID is required!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid ID!", nil)
		}

		c.Locals(localKey, id)
		return c.Next()
	}
}

// CreateWorkshop validates the workshop creation body
func CreateWorkshop() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateWorkshopPayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}

		c.Locals("validatedWorkshop", reqData)
		return c.Next()
	}
}

// UpdateWorkshop validates the workshop update body
func UpdateWorkshop() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateWorkshopPayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}

		c.Locals("validatedWorkshopUpdate", reqData)
		return c.Next()
	}
}

// CreateModule validates a single workshop module body
func CreateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ModulePayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}

		c.Locals("validatedModule", reqData)
		return c.Next()
	}
}

// Category validates the category create/update body
func Category() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CategoryPayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}

		c.Locals("validatedCategory", reqData)
		return c.Next()
	}
}
