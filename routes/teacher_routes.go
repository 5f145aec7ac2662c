package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wambuidev/learning_center/handlers"
	"github.com/wambuidev/learning_center/middleware"
)

func TeacherRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	teachers := api.Group("/teachers", middleware.Protected(), middleware.StaffRequired())
	teachers.Post("", handlers.CreateTeacher)
	teachers.Get("", handlers.ListTeachers)
	teachers.Get("/:teacherId", handlers.GetTeacher)
	teachers.Put("/:teacherId", handlers.UpdateTeacher)
	teachers.Delete("/:teacherId", handlers.DeleteTeacher)
}
