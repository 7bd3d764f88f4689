package controllers

import (
	"yogveda/database"
	"yogveda/middleware"
	"yogveda/models"
	accommodationValidator "yogveda/validators/accommodation"

	"github.com/gofiber/fiber/v2"
)

// AdminCreateAccommodation creates retreat lodging
func AdminCreateAccommodation(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAccommodation").(*accommodationValidator.AccommodationPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	accommodation := models.Accommodation{
		Name:        reqData.Name,
		Location:    reqData.Location,
		Description: reqData.Description,
	}

	if err := database.Database.Db.Create(&accommodation).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create accommodation!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Accommodation created successfully!", accommodation)
}

// GetAccommodations lists accommodations with their rooms
func GetAccommodations(c *fiber.Ctx) error {
	var accommodations []models.Accommodation
	if err := database.Database.Db.
		Where("is_deleted = ?", false).
		Preload("Rooms", "is_deleted = ?", false).
		Order("name asc").
		Find(&accommodations).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch accommodations!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Accommodations fetched successfully!", accommodations)
}

// AdminUpdateAccommodation updates retreat lodging
func AdminUpdateAccommodation(c *fiber.Ctx) error {
	accommodationID := c.Locals("accommodationID").(int)

	db := database.Database.Db

	var accommodation models.Accommodation
	if err := db.Where("id = ? AND is_deleted = ?", accommodationID, false).First(&accommodation).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Accommodation not found!", nil)
	}

	reqData, ok := c.Locals("validatedAccommodation").(*accommodationValidator.AccommodationPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	accommodation.Name = reqData.Name
	accommodation.Location = reqData.Location
	accommodation.Description = reqData.Description

	if err := db.Save(&accommodation).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update accommodation!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Accommodation updated successfully!", accommodation)
}

// AdminDeleteAccommodation soft deletes an accommodation
func AdminDeleteAccommodation(c *fiber.Ctx) error {
	accommodationID := c.Locals("accommodationID").(int)

	db := database.Database.Db

	var accommodation models.Accommodation
	if err := db.Where("id = ? AND is_deleted = ?", accommodationID, false).First(&accommodation).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Accommodation not found!", nil)
	}

	if err := db.Model(&accommodation).Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete accommodation!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Accommodation deleted successfully!", nil)
}

// AdminAddRoom adds a room to an accommodation
func AdminAddRoom(c *fiber.Ctx) error {
	accommodationID := c.Locals("accommodationID").(int)

	db := database.Database.Db

	var accommodation models.Accommodation
	if err := db.Where("id = ? AND is_deleted = ?", accommodationID, false).First(&accommodation).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Accommodation not found!", nil)
	}

	reqData, ok := c.Locals("validatedRoom").(*accommodationValidator.RoomPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	room := models.Room{
		AccommodationID: accommodation.ID,
		Name:            reqData.Name,
		Capacity:        reqData.Capacity,
		PricePerNight:   reqData.PricePerNight,
	}

	if err := db.Create(&room).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add room!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Room added successfully!", room)
}

// AdminDeleteRoom soft deletes a room
func AdminDeleteRoom(c *fiber.Ctx) error {
	roomID := c.Locals("roomID").(int)

	db := database.Database.Db

	var room models.Room
	if err := db.Where("id = ? AND is_deleted = ?", roomID, false).First(&room).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Room not found!", nil)
	}

	if err := db.Model(&room).Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete room!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Room deleted successfully!", nil)
}
