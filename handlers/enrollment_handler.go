package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wambuidev/learning_center/database"
	"github.com/wambuidev/learning_center/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func containsID(list datatypes.JSONSlice[string], id string) bool {
	for _, item := range list {
		if item == id {
			return true
		}
	}
	return false
}

func removeID(list datatypes.JSONSlice[string], id string) datatypes.JSONSlice[string] {
	out := make(datatypes.JSONSlice[string], 0, len(list))
	for _, item := range list {
		if item != id {
			out = append(out, item)
		}
	}
	return out
}

type EnrollmentRequest struct {
	StudentID string `json:"student_id" validate:"required,uuid"`
}

// EnrollStudent adds the student to the class roster. Enrollment is stored on
// both sides (class.student_ids and student.class_ids); the two lists are
// mutated together in one transaction so they can never drift apart here.
func EnrollStudent(c *fiber.Ctx) error {
	var req EnrollmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var class models.Class
	if err := database.DB.Where("id = ?", c.Params("classId")).First(&class).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Class not found"})
	}
	var student models.Student
	if err := database.DB.Where("id = ?", req.StudentID).First(&student).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
	}

	if containsID(class.StudentIDs, req.StudentID) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Student already enrolled"})
	}

	class.StudentIDs = append(class.StudentIDs, student.ID.String())
	student.ClassIDs = append(student.ClassIDs, class.ID.String())

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&class).Error; err != nil {
			return err
		}
		return tx.Save(&student).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to enroll student"})
	}

	return c.JSON(fiber.Map{"message": "Student enrolled", "class": class})
}

func WithdrawStudent(c *fiber.Ctx) error {
	var class models.Class
	if err := database.DB.Where("id = ?", c.Params("classId")).First(&class).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Class not found"})
	}

	studentID := c.Params("studentId")
	if !containsID(class.StudentIDs, studentID) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not enrolled in this class"})
	}

	class.StudentIDs = removeID(class.StudentIDs, studentID)

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&class).Error; err != nil {
			return err
		}

		// The student record may already be gone; withdrawal still succeeds
		// and the class side is cleaned up either way.
		var student models.Student
		if err := tx.Where("id = ?", studentID).First(&student).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil
			}
			return err
		}
		student.ClassIDs = removeID(student.ClassIDs, class.ID.String())
		return tx.Save(&student).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to withdraw student"})
	}

	return c.JSON(fiber.Map{"message": "Student withdrawn", "class": class})
}
