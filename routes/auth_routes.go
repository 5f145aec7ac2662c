package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wambuidev/learning_center/handlers"
	"github.com/wambuidev/learning_center/middleware"
)

func AuthRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Post("/login", handlers.LoginUser)

	accounts := api.Group("/accounts", middleware.Protected(), middleware.AdminRequired())
	accounts.Post("", handlers.CreateAccount)
	accounts.Put("/:userId/status", handlers.ToggleUserStatus)
}
