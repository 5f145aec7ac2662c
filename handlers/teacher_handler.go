package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wambuidev/learning_center/database"
	"github.com/wambuidev/learning_center/models"
)

type TeacherRequest struct {
	FullName string  `json:"full_name" validate:"required,min=2"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Subject  *string `json:"subject"`
	Salary   float64 `json:"salary" validate:"gte=0"`
	PhotoURL *string `json:"photo_url"`
}

func CreateTeacher(c *fiber.Ctx) error {
	var req TeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	teacher := models.Teacher{
		FullName: req.FullName,
		Phone:    req.Phone,
		Email:    req.Email,
		Subject:  req.Subject,
		Salary:   req.Salary,
		PhotoURL: req.PhotoURL,
	}
	if err := database.DB.Create(&teacher).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create teacher"})
	}
	return c.Status(fiber.StatusCreated).JSON(teacher)
}

func ListTeachers(c *fiber.Ctx) error {
	var teachers []models.Teacher
	if err := database.DB.Order("full_name asc").Find(&teachers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(teachers)
}

func GetTeacher(c *fiber.Ctx) error {
	var teacher models.Teacher
	if err := database.DB.Where("id = ?", c.Params("teacherId")).First(&teacher).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Teacher not found"})
	}
	return c.JSON(teacher)
}

func UpdateTeacher(c *fiber.Ctx) error {
	var teacher models.Teacher
	if err := database.DB.Where("id = ?", c.Params("teacherId")).First(&teacher).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Teacher not found"})
	}

	var req TeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	teacher.FullName = req.FullName
	teacher.Phone = req.Phone
	teacher.Email = req.Email
	teacher.Subject = req.Subject
	teacher.Salary = req.Salary
	teacher.PhotoURL = req.PhotoURL

	if err := database.DB.Save(&teacher).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update teacher"})
	}
	return c.JSON(teacher)
}

func DeleteTeacher(c *fiber.Ctx) error {
	if err := database.DB.Where("id = ?", c.Params("teacherId")).Delete(&models.Teacher{}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete teacher"})
	}
	return c.JSON(fiber.Map{"message": "Teacher deleted"})
}
