package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wambuidev/learning_center/database"
	"github.com/wambuidev/learning_center/models"
)

type StudentRequest struct {
	FullName           string  `json:"full_name" validate:"required,min=2"`
	Phone              *string `json:"phone"`
	Email              *string `json:"email" validate:"omitempty,email"`
	GuardianName       *string `json:"guardian_name"`
	GuardianPhone      *string `json:"guardian_phone"`
	HasDiscount        bool    `json:"has_discount"`
	DiscountPercentage float64 `json:"discount_percentage" validate:"gte=0,lte=100"`
	PhotoURL           *string `json:"photo_url"`
}

func CreateStudent(c *fiber.Ctx) error {
	var req StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	student := models.Student{
		FullName:           req.FullName,
		Phone:              req.Phone,
		Email:              req.Email,
		GuardianName:       req.GuardianName,
		GuardianPhone:      req.GuardianPhone,
		HasDiscount:        req.HasDiscount,
		DiscountPercentage: req.DiscountPercentage,
		PhotoURL:           req.PhotoURL,
	}
	if err := database.DB.Create(&student).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create student"})
	}

	return c.Status(fiber.StatusCreated).JSON(student)
}

func ListStudents(c *fiber.Ctx) error {
	query := database.DB.Order("full_name asc")
	if search := c.Query("search"); search != "" {
		query = query.Where("full_name ILIKE ?", "%"+search+"%")
	}

	var students []models.Student
	if err := query.Find(&students).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(students)
}

func GetStudent(c *fiber.Ctx) error {
	var student models.Student
	if err := database.DB.Where("id = ?", c.Params("studentId")).First(&student).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
	}
	return c.JSON(student)
}

func UpdateStudent(c *fiber.Ctx) error {
	var student models.Student
	if err := database.DB.Where("id = ?", c.Params("studentId")).First(&student).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
	}

	var req StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	student.FullName = req.FullName
	student.Phone = req.Phone
	student.Email = req.Email
	student.GuardianName = req.GuardianName
	student.GuardianPhone = req.GuardianPhone
	student.HasDiscount = req.HasDiscount
	student.DiscountPercentage = req.DiscountPercentage
	student.PhotoURL = req.PhotoURL

	if err := database.DB.Save(&student).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update student"})
	}
	return c.JSON(student)
}

func DeleteStudent(c *fiber.Ctx) error {
	if err := database.DB.Where("id = ?", c.Params("studentId")).Delete(&models.Student{}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete student"})
	}
	return c.JSON(fiber.Map{"message": "Student deleted"})
}
