package scheduleValidator

import (
	"strings"
	"yogveda/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CreateSchedulePayload is the admin schedule creation body
type CreateSchedulePayload struct {
	WorkshopID uint     `json:"workshop_id" validate:"required,gt=0"`
	Weekdays   []string `json:"weekdays" validate:"required,min=1,dive,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	StartTime  string   `json:"start_time" validate:"required,datetime=15:04"`
	EndTime    string   `json:"end_time" validate:"required,datetime=15:04"`
	Status     string   `json:"status" validate:"omitempty,oneof=active paused canceled"`
}

// UpdateSchedulePayload is the admin partial schedule update body
type UpdateSchedulePayload struct {
	Weekdays  []string `json:"weekdays" validate:"omitempty,min=1,dive,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	StartTime *string  `json:"start_time" validate:"omitempty,datetime=15:04"`
	EndTime   *string  `json:"end_time" validate:"omitempty,datetime=15:04"`
	Status    *string  `json:"status" validate:"omitempty,oneof=active paused canceled"`
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

// CreateSchedule validates the schedule creation body
func CreateSchedule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateSchedulePayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}

		if reqData.EndTime <= reqData.StartTime {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "End time must be after start time!", nil)
		}

		c.Locals("validatedSchedule", reqData)
		return c.Next()
	}
}

// UpdateSchedule validates the schedule update body
func UpdateSchedule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateSchedulePayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}

		c.Locals("validatedScheduleUpdate", reqData)
		return c.Next()
	}
}
