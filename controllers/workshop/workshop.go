package controllers

import (
	"yogveda/database"
	"yogveda/middleware"
	"yogveda/models"

	"github.com/gofiber/fiber/v2"
)

// GetAllWorkshops lists workshops for the public site, optionally filtered by
// level or category
func GetAllWorkshops(c *fiber.Ctx) error {
	db := database.Database.Db.Model(&models.Workshop{}).Where("is_deleted = ?", false)

	if level := c.Query("level"); level != "" {
		db = db.Where("level = ?", level)
	}
	if categoryID := c.QueryInt("category_id"); categoryID > 0 {
		db = db.Where("category_id = ?", categoryID)
	}

	var workshops []models.Workshop
	if err := db.
		Preload("Instructor").
		Preload("Category").
		Order("created_at desc").
		Find(&workshops).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch workshops!", nil)
	}

	for i := range workshops {
		if workshops[i].Instructor != nil {
			workshops[i].Instructor.Password = ""
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Workshops fetched successfully!", fiber.Map{
		"workshops": workshops,
		"total":     len(workshops),
	})
}

// GetWorkshopDetails returns one workshop with instructor, category and
// ordered modules expanded
func GetWorkshopDetails(c *fiber.Ctx) error {
	workshopID := c.Locals("workshopID").(int)

	var workshop models.Workshop
	if err := database.Database.Db.
		Where("id = ? AND is_deleted = ?", workshopID, false).
		Preload("Instructor").
		Preload("Category").
		Preload("Modules", "is_deleted = ?", false).
		First(&workshop).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Workshop not found!", nil)
	}

	if workshop.Instructor != nil {
		workshop.Instructor.Password = ""
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Workshop fetched successfully!", workshop)
}
