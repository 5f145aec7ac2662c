package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wambuidev/learning_center/handlers"
	"github.com/wambuidev/learning_center/middleware"
)

func StaffRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	staff := api.Group("/staff", middleware.Protected(), middleware.AdminRequired())
	staff.Post("", handlers.CreateStaff)
	staff.Get("", handlers.ListStaff)
	staff.Put("/:staffId", handlers.UpdateStaff)
	staff.Delete("/:staffId", handlers.DeleteStaff)

	rooms := api.Group("/rooms", middleware.Protected(), middleware.StaffRequired())
	rooms.Post("", handlers.CreateRoom)
	rooms.Get("", handlers.ListRooms)
	rooms.Put("/:roomId", handlers.UpdateRoom)
	rooms.Delete("/:roomId", handlers.DeleteRoom)
}
