package services

import (
	"time"

	"github.com/wambuidev/learning_center/models"
)

// DiscountedFee applies the student's percentage discount to a base fee.
// Students without an active discount pay the base fee unchanged.
func DiscountedFee(baseFee float64, student models.Student) float64 {
	if !student.HasDiscount || student.DiscountPercentage == 0 {
		return baseFee
	}
	return baseFee * (1 - student.DiscountPercentage/100)
}

// ClassRevenue computes the expected monthly income of one class: the
// discounted fee summed over every enrolled student. A student ID with no
// matching record contributes zero — deletions elsewhere must not break the
// projection. Actual payment status is deliberately ignored.
func ClassRevenue(class models.Class, studentsByID map[string]models.Student) float64 {
	var total float64
	for _, id := range class.StudentIDs {
		student, ok := studentsByID[id]
		if !ok {
			continue
		}
		total += DiscountedFee(class.Fees, student)
	}
	return total
}

func TotalRevenue(classes []models.Class, studentsByID map[string]models.Student) float64 {
	var total float64
	for _, class := range classes {
		total += ClassRevenue(class, studentsByID)
	}
	return total
}

// RevenueSplit holds the two percentage fields as stored. They are applied
// independently; the calculator never assumes they sum to 100.
type RevenueSplit struct {
	TeacherPercentage float64 `json:"teacher_percentage"`
	CenterPercentage  float64 `json:"center_percentage"`
}

type ProfitSplit struct {
	CenterAmount     float64            `json:"center_amount"`
	TeacherPool      float64            `json:"teacher_pool"`
	PerTeacherAmount float64            `json:"per_teacher_amount"`
	TeacherAmounts   map[string]float64 `json:"teacher_amounts"`
}

// SplitProfit divides a fee pool between the center and the assigned
// teachers. Co-teachers share the teacher pool equally. With no teachers
// assigned the pool is reported but left unattributed. No rounding is done
// here; that is a display concern.
func SplitProfit(feePool float64, split RevenueSplit, teacherIDs []string) ProfitSplit {
	result := ProfitSplit{
		CenterAmount:   feePool * split.CenterPercentage / 100,
		TeacherPool:    feePool * split.TeacherPercentage / 100,
		TeacherAmounts: make(map[string]float64),
	}
	if len(teacherIDs) == 0 {
		return result
	}
	result.PerTeacherAmount = result.TeacherPool / float64(len(teacherIDs))
	for _, id := range teacherIDs {
		result.TeacherAmounts[id] = result.PerTeacherAmount
	}
	return result
}

type ExpenseSummary struct {
	Salaries          float64 `json:"salaries"`
	RecurringExpenses float64 `json:"recurring_expenses"`
	OneTimeExpenses   float64 `json:"one_time_expenses"`
	Total             float64 `json:"total"`
}

// AggregateExpenses combines the standing salary bill with custom expense
// records. Salaries are never date-filtered; expense records pass through
// the supplied inclusion predicate before being partitioned by kind.
func AggregateExpenses(fixedSalaries float64, expenses []models.Expense, include func(time.Time) bool) ExpenseSummary {
	summary := ExpenseSummary{Salaries: fixedSalaries}
	for _, expense := range expenses {
		if include != nil && !include(expense.Date) {
			continue
		}
		switch expense.Kind {
		case models.ExpenseKindRecurring:
			summary.RecurringExpenses += expense.Amount
		default:
			summary.OneTimeExpenses += expense.Amount
		}
	}
	summary.Total = summary.Salaries + summary.RecurringExpenses + summary.OneTimeExpenses
	return summary
}

func IncludeAll() func(time.Time) bool {
	return func(time.Time) bool { return true }
}

func IncludeLastDays(days int, now time.Time) func(time.Time) bool {
	cutoff := now.AddDate(0, 0, -days)
	return func(t time.Time) bool { return !t.Before(cutoff) }
}

func IncludeRange(start, end time.Time) func(time.Time) bool {
	return func(t time.Time) bool { return !t.Before(start) && !t.After(end) }
}
