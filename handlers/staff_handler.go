package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wambuidev/learning_center/database"
	"github.com/wambuidev/learning_center/models"
)

type StaffRequest struct {
	FullName string  `json:"full_name" validate:"required,min=2"`
	Title    string  `json:"title" validate:"required"`
	Phone    *string `json:"phone"`
	Salary   float64 `json:"salary" validate:"gte=0"`
}

func CreateStaff(c *fiber.Ctx) error {
	var req StaffRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	staff := models.Staff{
		FullName: req.FullName,
		Title:    req.Title,
		Phone:    req.Phone,
		Salary:   req.Salary,
	}
	if err := database.DB.Create(&staff).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create staff member"})
	}
	return c.Status(fiber.StatusCreated).JSON(staff)
}

func ListStaff(c *fiber.Ctx) error {
	var staff []models.Staff
	if err := database.DB.Order("full_name asc").Find(&staff).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(staff)
}

func UpdateStaff(c *fiber.Ctx) error {
	var staff models.Staff
	if err := database.DB.Where("id = ?", c.Params("staffId")).First(&staff).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Staff member not found"})
	}

	var req StaffRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	staff.FullName = req.FullName
	staff.Title = req.Title
	staff.Phone = req.Phone
	staff.Salary = req.Salary

	if err := database.DB.Save(&staff).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update staff member"})
	}
	return c.JSON(staff)
}

func DeleteStaff(c *fiber.Ctx) error {
	if err := database.DB.Where("id = ?", c.Params("staffId")).Delete(&models.Staff{}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete staff member"})
	}
	return c.JSON(fiber.Map{"message": "Staff member deleted"})
}
