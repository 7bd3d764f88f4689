package controllers

import (
	"yogveda/database"
	"yogveda/middleware"
	"yogveda/models"
	workshopValidator "yogveda/validators/workshop"

	"github.com/gofiber/fiber/v2"
)

// AdminCreateWorkshop creates a workshop with its ordered modules
func AdminCreateWorkshop(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedWorkshop").(*workshopValidator.CreateWorkshopPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var instructor models.User
	if err := db.Where("id = ? AND role = ? AND is_deleted = ?", reqData.InstructorID, models.RoleInstructor, false).
		First(&instructor).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Instructor not found!", nil)
	}

	var category models.Category
	if err := db.Where("id = ? AND is_deleted = ?", reqData.CategoryID, false).First(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
	}

	level := reqData.Level
	if level == "" {
		level = models.LevelBeginner
	}

	workshop := models.Workshop{
		Title:         reqData.Title,
		Description:   reqData.Description,
		Level:         level,
		Price:         reqData.Price,
		DiscountPrice: reqData.DiscountPrice,
		InstructorID:  instructor.ID,
		CategoryID:    category.ID,
	}

	tx := db.Begin()
	if err := tx.Create(&workshop).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create workshop!", nil)
	}

	for i, m := range reqData.Modules {
		module := models.WorkshopModule{
			WorkshopID:      workshop.ID,
			Name:            m.Name,
			DurationMinutes: m.DurationMinutes,
			OrderIndex:      i,
		}
		if err := tx.Create(&module).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create workshop modules!", nil)
		}
		workshop.Modules = append(workshop.Modules, module)
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Workshop created successfully!", workshop)
}

// AdminUpdateWorkshop applies a partial update to a workshop
func AdminUpdateWorkshop(c *fiber.Ctx) error {
	workshopID := c.Locals("workshopID").(int)

	db := database.Database.Db

	var workshop models.Workshop
	if err := db.Where("id = ? AND is_deleted = ?", workshopID, false).First(&workshop).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Workshop not found!", nil)
	}

	reqData, ok := c.Locals("validatedWorkshopUpdate").(*workshopValidator.UpdateWorkshopPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.InstructorID != nil {
		var instructor models.User
		if err := db.Where("id = ? AND role = ? AND is_deleted = ?", *reqData.InstructorID, models.RoleInstructor, false).
			First(&instructor).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Instructor not found!", nil)
		}
		workshop.InstructorID = *reqData.InstructorID
	}
	if reqData.CategoryID != nil {
		var category models.Category
		if err := db.Where("id = ? AND is_deleted = ?", *reqData.CategoryID, false).First(&category).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
		}
		workshop.CategoryID = *reqData.CategoryID
	}
	if reqData.Title != nil {
		workshop.Title = *reqData.Title
	}
	if reqData.Description != nil {
		workshop.Description = *reqData.Description
	}
	if reqData.Level != nil {
		workshop.Level = *reqData.Level
	}
	if reqData.Price != nil {
		workshop.Price = *reqData.Price
	}
	if reqData.DiscountPrice != nil {
		workshop.DiscountPrice = reqData.DiscountPrice
	}

	if err := db.Save(&workshop).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update workshop!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Workshop updated successfully!", workshop)
}

// AdminDeleteWorkshop soft deletes a workshop
func AdminDeleteWorkshop(c *fiber.Ctx) error {
	workshopID := c.Locals("workshopID").(int)

	db := database.Database.Db

	var workshop models.Workshop
	if err := db.Where("id = ? AND is_deleted = ?", workshopID, false).First(&workshop).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Workshop not found!", nil)
	}

	if err := db.Model(&workshop).Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete workshop!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Workshop deleted successfully!", nil)
}

// AdminAddModule appends a module to a workshop
func AdminAddModule(c *fiber.Ctx) error {
	workshopID := c.Locals("workshopID").(int)

	db := database.Database.Db

	var workshop models.Workshop
	if err := db.Where("id = ? AND is_deleted = ?", workshopID, false).First(&workshop).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Workshop not found!", nil)
	}

	reqData, ok := c.Locals("validatedModule").(*workshopValidator.ModulePayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var count int64
	db.Model(&models.WorkshopModule{}).Where("workshop_id = ? AND is_deleted = ?", workshop.ID, false).Count(&count)

	module := models.WorkshopModule{
		WorkshopID:      workshop.ID,
		Name:            reqData.Name,
		DurationMinutes: reqData.DurationMinutes,
		OrderIndex:      int(count),
	}

	if err := db.Create(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Module added successfully!", module)
}

// AdminDeleteModule soft deletes a workshop module
func AdminDeleteModule(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(int)

	db := database.Database.Db

	var module models.WorkshopModule
	if err := db.Where("id = ? AND is_deleted = ?", moduleID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	if err := db.Model(&module).Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module deleted successfully!", nil)
}
