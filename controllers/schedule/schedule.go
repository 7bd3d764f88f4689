package controllers

import (
	"encoding/json"
	"time"
	"yogveda/database"
	"yogveda/middleware"
	"yogveda/models"
	"yogveda/utils"
	scheduleValidator "yogveda/validators/schedule"

	"github.com/gofiber/fiber/v2"
)

// CreateSchedule creates a recurring weekly time window for a workshop
func CreateSchedule(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSchedule").(*scheduleValidator.CreateSchedulePayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var workshop models.Workshop
	if err := db.Where("id = ? AND is_deleted = ?", reqData.WorkshopID, false).First(&workshop).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Workshop not found!", nil)
	}

	weekdays, err := json.Marshal(reqData.Weekdays)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid weekdays!", nil)
	}

	status := reqData.Status
	if status == "" {
		status = models.ScheduleActive
	}

	schedule := models.Schedule{
		WorkshopID: workshop.ID,
		Weekdays:   weekdays,
		StartTime:  reqData.StartTime,
		EndTime:    reqData.EndTime,
		Status:     status,
	}

	if err := db.Create(&schedule).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create schedule!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Schedule created successfully!", schedule)
}

// GetWorkshopSchedules lists a workshop's schedules; active ones carry the
// next upcoming session start
func GetWorkshopSchedules(c *fiber.Ctx) error {
	workshopID := c.Locals("workshopID").(int)

	db := database.Database.Db

	var workshop models.Workshop
	if err := db.Where("id = ? AND is_deleted = ?", workshopID, false).First(&workshop).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Workshop not found!", nil)
	}

	var schedules []models.Schedule
	if err := db.Where("workshop_id = ? AND is_deleted = ?", workshop.ID, false).Find(&schedules).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch schedules!", nil)
	}

	type scheduleWithNext struct {
		models.Schedule
		NextSession *time.Time `json:"next_session,omitempty"`
	}

	result := make([]scheduleWithNext, len(schedules))
	for i, s := range schedules {
		result[i] = scheduleWithNext{Schedule: s}
		if s.Status == models.ScheduleActive {
			result[i].NextSession = utils.NextOccurrence(s.WeekdayList(), s.StartTime, time.Now())
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Schedules fetched successfully!", fiber.Map{
		"schedules": result,
		"total":     len(result),
	})
}

// UpdateSchedule applies a partial update to a schedule
func UpdateSchedule(c *fiber.Ctx) error {
	scheduleID := c.Locals("scheduleID").(int)

	db := database.Database.Db

	var schedule models.Schedule
	if err := db.Where("id = ? AND is_deleted = ?", scheduleID, false).First(&schedule).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Schedule not found!", nil)
	}

	reqData, ok := c.Locals("validatedScheduleUpdate").(*scheduleValidator.UpdateSchedulePayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if len(reqData.Weekdays) > 0 {
		weekdays, err := json.Marshal(reqData.Weekdays)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid weekdays!", nil)
		}
		schedule.Weekdays = weekdays
	}
	if reqData.StartTime != nil {
		schedule.StartTime = *reqData.StartTime
	}
	if reqData.EndTime != nil {
		schedule.EndTime = *reqData.EndTime
	}
	if schedule.EndTime <= schedule.StartTime {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "End time must be after start time!", nil)
	}
	if reqData.Status != nil {
		schedule.Status = *reqData.Status
	}

	if err := db.Save(&schedule).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update schedule!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Schedule updated successfully!", schedule)
}

// DeleteSchedule soft deletes a schedule
func DeleteSchedule(c *fiber.Ctx) error {
	scheduleID := c.Locals("scheduleID").(int)

	db := database.Database.Db

	var schedule models.Schedule
	if err := db.Where("id = ? AND is_deleted = ?", scheduleID, false).First(&schedule).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Schedule not found!", nil)
	}

	if err := db.Model(&schedule).Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete schedule!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Schedule deleted successfully!", nil)
}
