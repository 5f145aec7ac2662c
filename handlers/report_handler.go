package handlers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/wambuidev/learning_center/database"
	"github.com/wambuidev/learning_center/models"
	"github.com/wambuidev/learning_center/services"
)

func loadStudentsByID() (map[string]models.Student, error) {
	var students []models.Student
	if err := database.DB.Find(&students).Error; err != nil {
		return nil, err
	}
	studentsByID := make(map[string]models.Student, len(students))
	for _, s := range students {
		studentsByID[s.ID.String()] = s
	}
	return studentsByID, nil
}

func salaryBill() (float64, error) {
	var teachers []models.Teacher
	if err := database.DB.Find(&teachers).Error; err != nil {
		return 0, err
	}
	var staff []models.Staff
	if err := database.DB.Find(&staff).Error; err != nil {
		return 0, err
	}

	var total float64
	for _, t := range teachers {
		total += t.Salary
	}
	for _, s := range staff {
		total += s.Salary
	}
	return total, nil
}

// expenseWindow builds the inclusion predicate from query params:
// window=all (default), window=last&days=N, or window=range&from=&to=.
func expenseWindow(c *fiber.Ctx) (func(time.Time) bool, bool) {
	switch c.Query("window", "all") {
	case "all":
		return services.IncludeAll(), true
	case "last":
		days, err := strconv.Atoi(c.Query("days", "30"))
		if err != nil || days <= 0 {
			return nil, false
		}
		return services.IncludeLastDays(days, time.Now()), true
	case "range":
		from, err := time.Parse("2006-01-02", c.Query("from"))
		if err != nil {
			return nil, false
		}
		to, err := time.Parse("2006-01-02", c.Query("to"))
		if err != nil {
			return nil, false
		}
		return services.IncludeRange(from, to), true
	}
	return nil, false
}

// GetFinancialSummary reports expected revenue, the expense aggregate for the
// requested window, and the resulting net profit. Revenue is a projection
// from enrollment — it deliberately ignores whether payments actually landed.
func GetFinancialSummary(c *fiber.Ctx) error {
	include, ok := expenseWindow(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid window parameters"})
	}

	studentsByID, err := loadStudentsByID()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	var classes []models.Class
	if err := database.DB.Find(&classes).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	salaries, err := salaryBill()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	var expenses []models.Expense
	if err := database.DB.Find(&expenses).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	expectedRevenue := services.TotalRevenue(classes, studentsByID)
	expenseSummary := services.AggregateExpenses(salaries, expenses, include)

	return c.JSON(fiber.Map{
		"expected_revenue": expectedRevenue,
		"expenses":         expenseSummary,
		"net_profit":       expectedRevenue - expenseSummary.Total,
	})
}

type SpecialClassReport struct {
	Class   models.Class         `json:"class"`
	FeePool float64              `json:"fee_pool"`
	Split   services.ProfitSplit `json:"split"`
}

// GetSpecialClassReport breaks down each revenue-sharing class: the expected
// fee pool from its enrollment and the center/teacher division of it.
func GetSpecialClassReport(c *fiber.Ctx) error {
	studentsByID, err := loadStudentsByID()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	var specials []models.Class
	if err := database.DB.Where("is_special = ?", true).Order("name asc").Find(&specials).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	reports := make([]SpecialClassReport, 0, len(specials))
	for _, class := range specials {
		feePool := services.ClassRevenue(class, studentsByID)
		split := services.SplitProfit(feePool, services.RevenueSplit{
			TeacherPercentage: class.TeacherPercentage,
			CenterPercentage:  class.CenterPercentage,
		}, class.TeacherIDs)
		reports = append(reports, SpecialClassReport{Class: class, FeePool: feePool, Split: split})
	}

	return c.JSON(reports)
}
