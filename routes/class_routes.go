package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wambuidev/learning_center/handlers"
	"github.com/wambuidev/learning_center/middleware"
)

func ClassRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	classes := api.Group("/classes", middleware.Protected(), middleware.StaffRequired())
	classes.Post("", handlers.CreateClass)
	classes.Get("", handlers.ListClasses)
	classes.Get("/:classId", handlers.GetClass)
	classes.Put("/:classId", handlers.UpdateClass)
	classes.Delete("/:classId", handlers.DeleteClass)

	classes.Post("/:classId/sessions", handlers.AddClassSession)
	classes.Delete("/:classId/sessions/:sessionId", handlers.DeleteClassSession)

	classes.Post("/:classId/teachers", handlers.AssignTeacher)
	classes.Delete("/:classId/teachers/:teacherId", handlers.UnassignTeacher)

	classes.Post("/:classId/students", handlers.EnrollStudent)
	classes.Delete("/:classId/students/:studentId", handlers.WithdrawStudent)
}
