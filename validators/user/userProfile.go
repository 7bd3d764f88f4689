package userValidator

import (
	"strings"
	"yogveda/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// UpdateProfilePayload is the partial profile update body
type UpdateProfilePayload struct {
	Name         *string `json:"name" validate:"omitempty,min=2"`
	Bio          *string `json:"bio"`
	ProfileImage *string `json:"profile_image" validate:"omitempty,url"`
}

// UpdateProfile validates the profile update body
func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateProfilePayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			if verrs, ok := err.(validator.ValidationErrors); ok {
				for _, fe := range verrs {
					errors[strings.ToLower(fe.Field())] = "failed on rule: " + fe.Tag()
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProfile", reqData)
		return c.Next()
	}
}
