package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/wambuidev/learning_center/database"
	"github.com/wambuidev/learning_center/models"
	"github.com/wambuidev/learning_center/websocket"
)

type ExpenseRequest struct {
	Title    string  `json:"title" validate:"required,min=2"`
	Category string  `json:"category" validate:"required"`
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	Kind     string  `json:"kind" validate:"required,oneof=recurring one-time"`
	Date     string  `json:"date" validate:"required"`
	Notes    *string `json:"notes"`
}

func CreateExpense(c *fiber.Ctx) error {
	var req ExpenseRequest
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

	expense := models.Expense{
		Title:    req.Title,
		Category: req.Category,
		Amount:   req.Amount,
		Kind:     req.Kind,
		Date:     date,
		Notes:    req.Notes,
	}
	if err := database.DB.Create(&expense).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create expense"})
	}

	websocket.Notify("expense.recorded", fiber.Map{
		"expense_id": expense.ID,
		"title":      expense.Title,
		"amount":     expense.Amount,
		"kind":       expense.Kind,
	})

	return c.Status(fiber.StatusCreated).JSON(expense)
}

func ListExpenses(c *fiber.Ctx) error {
	query := database.DB.Order("date desc")
	if kind := c.Query("kind"); kind != "" {
		query = query.Where("kind = ?", kind)
	}
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var expenses []models.Expense
	if err := query.Find(&expenses).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(expenses)
}

// Expense records are immutable history except for deletion.
func DeleteExpense(c *fiber.Ctx) error {
	result := database.DB.Where("id = ?", c.Params("expenseId")).Delete(&models.Expense{})
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete expense"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Expense not found"})
	}
	return c.JSON(fiber.Map{"message": "Expense deleted"})
}
