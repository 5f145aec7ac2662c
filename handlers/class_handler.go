package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/wambuidev/learning_center/database"
	"github.com/wambuidev/learning_center/models"
	"github.com/wambuidev/learning_center/services"
	"gorm.io/datatypes"
)

type ClassRequest struct {
	Name              string  `json:"name" validate:"required,min=2"`
	RoomID            *string `json:"room_id" validate:"omitempty,uuid"`
	Fees              float64 `json:"fees" validate:"gte=0"`
	Weekdays          []int   `json:"weekdays" validate:"dive,gte=0,lte=6"`
	StartTime         *string `json:"start_time"`
	IsSpecial         bool    `json:"is_special"`
	TeacherPercentage float64 `json:"teacher_percentage" validate:"gte=0,lte=100"`
	CenterPercentage  float64 `json:"center_percentage" validate:"gte=0,lte=100"`
}

// applyClassRequest copies a validated request onto the model. It writes the
// 400 response itself and reports ok=false when the schedule fields are
// inconsistent or the room is unknown.
func applyClassRequest(class *models.Class, req ClassRequest, c *fiber.Ctx) bool {
	// A recurring pattern needs both a weekday set and a valid time. Either
	// may be omitted entirely; the class then runs on one-off sessions only.
	if len(req.Weekdays) > 0 && req.StartTime == nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "start_time is required when weekdays are set"})
		return false
	}
	if req.StartTime != nil {
		normalized, ok := services.NormalizeClock(*req.StartTime)
		if !ok {
			_ = c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "start_time must be HH:MM"})
			return false
		}
		class.StartTime = &normalized
	} else {
		class.StartTime = nil
	}

	if req.RoomID != nil {
		var room models.Room
		if err := database.DB.Where("id = ?", *req.RoomID).First(&room).Error; err != nil {
			_ = c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Room not found"})
			return false
		}
		class.RoomID = &room.ID
	} else {
		class.RoomID = nil
	}

	class.Name = req.Name
	class.Fees = req.Fees
	class.Weekdays = datatypes.JSONSlice[int](req.Weekdays)
	class.IsSpecial = req.IsSpecial
	class.TeacherPercentage = req.TeacherPercentage
	class.CenterPercentage = req.CenterPercentage
	return true
}

func CreateClass(c *fiber.Ctx) error {
	var req ClassRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var class models.Class
	if !applyClassRequest(&class, req, c) {
		return nil
	}
	if class.StudentIDs == nil {
		class.StudentIDs = datatypes.JSONSlice[string]{}
	}
	if class.TeacherIDs == nil {
		class.TeacherIDs = datatypes.JSONSlice[string]{}
	}

	if err := database.DB.Create(&class).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create class"})
	}
	return c.Status(fiber.StatusCreated).JSON(class)
}

func ListClasses(c *fiber.Ctx) error {
	query := database.DB.Preload("Sessions").Preload("Room").Order("name asc")
	if roomID := c.Query("room_id"); roomID != "" {
		query = query.Where("room_id = ?", roomID)
	}
	if c.Query("special") == "true" {
		query = query.Where("is_special = ?", true)
	}

	var classes []models.Class
	if err := query.Find(&classes).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(classes)
}

func GetClass(c *fiber.Ctx) error {
	var class models.Class
	if err := database.DB.Preload("Sessions").Preload("Room").
		Where("id = ?", c.Params("classId")).First(&class).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Class not found"})
	}
	return c.JSON(class)
}

func UpdateClass(c *fiber.Ctx) error {
	var class models.Class
	if err := database.DB.Where("id = ?", c.Params("classId")).First(&class).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Class not found"})
	}

	var req ClassRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if !applyClassRequest(&class, req, c) {
		return nil
	}
	if err := database.DB.Save(&class).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update class"})
	}
	return c.JSON(class)
}

func DeleteClass(c *fiber.Ctx) error {
	classID := c.Params("classId")
	if err := database.DB.Where("class_id = ?", classID).Delete(&models.ClassSession{}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete class sessions"})
	}
	if err := database.DB.Where("id = ?", classID).Delete(&models.Class{}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete class"})
	}
	return c.JSON(fiber.Map{"message": "Class deleted"})
}

type SessionRequest struct {
	Date      string `json:"date" validate:"required"`
	StartTime string `json:"start_time" validate:"required"`
}

// AddClassSession records a one-off occurrence. Sessions live independently
// of the recurring pattern and are never inferred from it.
func AddClassSession(c *fiber.Ctx) error {
	var class models.Class
	if err := database.DB.Where("id = ?", c.Params("classId")).First(&class).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Class not found"})
	}

	var req SessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "date must be YYYY-MM-DD"})
	}
	clock, ok := services.NormalizeClock(req.StartTime)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "start_time must be HH:MM"})
	}

	session := models.ClassSession{
		ClassID:   class.ID,
		Date:      date,
		StartTime: clock,
	}
	if err := database.DB.Create(&session).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create session"})
	}
	return c.Status(fiber.StatusCreated).JSON(session)
}

func DeleteClassSession(c *fiber.Ctx) error {
	result := database.DB.
		Where("id = ? AND class_id = ?", c.Params("sessionId"), c.Params("classId")).
		Delete(&models.ClassSession{})
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete session"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Session not found"})
	}
	return c.JSON(fiber.Map{"message": "Session deleted"})
}

type AssignTeacherRequest struct {
	TeacherID string `json:"teacher_id" validate:"required,uuid"`
}

func AssignTeacher(c *fiber.Ctx) error {
	var class models.Class
	if err := database.DB.Where("id = ?", c.Params("classId")).First(&class).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Class not found"})
	}

	var req AssignTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var teacher models.Teacher
	if err := database.DB.Where("id = ?", req.TeacherID).First(&teacher).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Teacher not found"})
	}

	if containsID(class.TeacherIDs, req.TeacherID) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Teacher already assigned"})
	}
	class.TeacherIDs = append(class.TeacherIDs, req.TeacherID)
	if err := database.DB.Save(&class).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to assign teacher"})
	}
	return c.JSON(class)
}

func UnassignTeacher(c *fiber.Ctx) error {
	var class models.Class
	if err := database.DB.Where("id = ?", c.Params("classId")).First(&class).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Class not found"})
	}

	teacherID := c.Params("teacherId")
	if !containsID(class.TeacherIDs, teacherID) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Teacher not assigned to this class"})
	}
	class.TeacherIDs = removeID(class.TeacherIDs, teacherID)
	if err := database.DB.Save(&class).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to unassign teacher"})
	}
	return c.JSON(class)
}
