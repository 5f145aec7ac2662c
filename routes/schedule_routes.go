package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wambuidev/learning_center/handlers"
	"github.com/wambuidev/learning_center/middleware"
)

func ScheduleRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	schedule := api.Group("/schedule", middleware.Protected(), middleware.StaffRequired())
	schedule.Get("/week", handlers.GetWeekSchedule)
}
