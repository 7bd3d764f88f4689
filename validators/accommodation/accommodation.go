package accommodationValidator

import (
	"strings"
	"yogveda/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// AccommodationPayload is the admin accommodation create/update body
type AccommodationPayload struct {
	Name        string `json:"name" validate:"required,min=2"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

// RoomPayload is the admin room creation body
type RoomPayload struct {
	Name          string  `json:"name" validate:"required"`
	Capacity      int     `json:"capacity" validate:"required,gt=0"`
	PricePerNight float64 `json:"price_per_night" validate:"gte=0"`
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

// Accommodation validates the accommodation create/update body
func Accommodation() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AccommodationPayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}

		c.Locals("validatedAccommodation", reqData)
		return c.Next()
	}
}

// Room validates the room creation body
func Room() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RoomPayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}

		c.Locals("validatedRoom", reqData)
		return c.Next()
	}
}
