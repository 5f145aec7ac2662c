package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wambuidev/learning_center/handlers"
	"github.com/wambuidev/learning_center/middleware"
)

func ReportRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	reports := api.Group("/reports", middleware.Protected(), middleware.AdminRequired())
	reports.Get("/financial-summary", handlers.GetFinancialSummary)
	reports.Get("/special-classes", handlers.GetSpecialClassReport)
}
