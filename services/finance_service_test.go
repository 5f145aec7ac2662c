package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wambuidev/learning_center/models"
	"gorm.io/datatypes"
)

func TestDiscountedFee(t *testing.T) {
	plain := models.Student{FullName: "Amina"}
	discounted := models.Student{FullName: "Brian", HasDiscount: true, DiscountPercentage: 10}
	flagOnly := models.Student{FullName: "Carol", HasDiscount: true}

	assert.Equal(t, 500.0, DiscountedFee(500, plain))
	assert.Equal(t, 450.0, DiscountedFee(500, discounted))
	assert.Equal(t, 500.0, DiscountedFee(500, flagOnly))
}

func TestClassRevenue(t *testing.T) {
	s1 := models.Student{ID: uuid.New(), FullName: "Amina"}
	s2 := models.Student{ID: uuid.New(), FullName: "Brian", HasDiscount: true, DiscountPercentage: 10}
	studentsByID := map[string]models.Student{
		s1.ID.String(): s1,
		s2.ID.String(): s2,
	}

	class := models.Class{
		Name: "Math",
		Fees: 500,
		StudentIDs: datatypes.JSONSlice[string]{
			s1.ID.String(),
			s2.ID.String(),
			uuid.New().String(), // dangling reference, contributes zero
		},
	}

	assert.Equal(t, 950.0, ClassRevenue(class, studentsByID))
}

func TestClassRevenueNoStudents(t *testing.T) {
	class := models.Class{Name: "Empty", Fees: 500}
	assert.Equal(t, 0.0, ClassRevenue(class, map[string]models.Student{}))
}

func TestClassRevenueSingleStudentEqualsBaseFee(t *testing.T) {
	s := models.Student{ID: uuid.New(), FullName: "Amina"}
	class := models.Class{
		Name:       "Solo",
		Fees:       750,
		StudentIDs: datatypes.JSONSlice[string]{s.ID.String()},
	}
	revenue := ClassRevenue(class, map[string]models.Student{s.ID.String(): s})
	assert.Equal(t, 750.0, revenue)
}

func TestTotalRevenue(t *testing.T) {
	s := models.Student{ID: uuid.New(), FullName: "Amina"}
	studentsByID := map[string]models.Student{s.ID.String(): s}
	classes := []models.Class{
		{Name: "A", Fees: 500, StudentIDs: datatypes.JSONSlice[string]{s.ID.String()}},
		{Name: "B", Fees: 300, StudentIDs: datatypes.JSONSlice[string]{s.ID.String()}},
	}
	assert.Equal(t, 800.0, TotalRevenue(classes, studentsByID))
}

func TestSplitProfitEqualDivision(t *testing.T) {
	split := SplitProfit(1000, RevenueSplit{TeacherPercentage: 60, CenterPercentage: 40}, []string{"t1", "t2"})

	assert.Equal(t, 400.0, split.CenterAmount)
	assert.Equal(t, 600.0, split.TeacherPool)
	assert.Equal(t, 300.0, split.PerTeacherAmount)
	assert.Equal(t, map[string]float64{"t1": 300, "t2": 300}, split.TeacherAmounts)
}

func TestSplitProfitNoTeachers(t *testing.T) {
	split := SplitProfit(1000, RevenueSplit{TeacherPercentage: 60, CenterPercentage: 40}, nil)

	assert.Equal(t, 600.0, split.TeacherPool)
	assert.Equal(t, 0.0, split.PerTeacherAmount)
	assert.Empty(t, split.TeacherAmounts)
}

func TestSplitProfitPercentagesAreIndependent(t *testing.T) {
	// percentages that do not sum to 100 are applied as stored
	split := SplitProfit(1000, RevenueSplit{TeacherPercentage: 70, CenterPercentage: 40}, []string{"t1"})

	assert.Equal(t, 400.0, split.CenterAmount)
	assert.Equal(t, 700.0, split.TeacherPool)
	assert.Equal(t, 700.0, split.TeacherAmounts["t1"])
}

func TestAggregateExpenses(t *testing.T) {
	jan := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	expenses := []models.Expense{
		{Title: "Rent", Amount: 2000, Kind: models.ExpenseKindRecurring, Date: jan},
		{Title: "Internet", Amount: 100, Kind: models.ExpenseKindRecurring, Date: jan},
		{Title: "Projector", Amount: 350, Kind: models.ExpenseKindOneTime, Date: jan},
	}

	summary := AggregateExpenses(5000, expenses, IncludeAll())

	assert.Equal(t, 5000.0, summary.Salaries)
	assert.Equal(t, 2100.0, summary.RecurringExpenses)
	assert.Equal(t, 350.0, summary.OneTimeExpenses)
	assert.Equal(t, 7450.0, summary.Total)
}

func TestAggregateExpensesWindowed(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	expenses := []models.Expense{
		{Title: "Old", Amount: 100, Kind: models.ExpenseKindOneTime, Date: now.AddDate(0, 0, -60)},
		{Title: "Recent", Amount: 200, Kind: models.ExpenseKindOneTime, Date: now.AddDate(0, 0, -5)},
	}

	summary := AggregateExpenses(0, expenses, IncludeLastDays(30, now))
	assert.Equal(t, 200.0, summary.OneTimeExpenses)
	assert.Equal(t, 200.0, summary.Total)

	ranged := AggregateExpenses(0, expenses, IncludeRange(now.AddDate(0, 0, -90), now))
	assert.Equal(t, 300.0, ranged.OneTimeExpenses)
}

func TestAggregateExpensesIsPure(t *testing.T) {
	jan := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	expenses := []models.Expense{
		{Title: "Rent", Amount: 2000, Kind: models.ExpenseKindRecurring, Date: jan},
	}
	include := IncludeLastDays(365, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))

	first := AggregateExpenses(1000, expenses, include)
	second := AggregateExpenses(1000, expenses, include)
	assert.Equal(t, first, second)
}
