package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wambuidev/learning_center/handlers"
	"github.com/wambuidev/learning_center/middleware"
)

func ExpenseRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	expenses := api.Group("/expenses", middleware.Protected(), middleware.AdminRequired())
	expenses.Post("", handlers.CreateExpense)
	expenses.Get("", handlers.ListExpenses)
	expenses.Delete("/:expenseId", handlers.DeleteExpense)
}
