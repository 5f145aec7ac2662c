package jobs

import (
	"log"
	"time"

	"github.com/wambuidev/learning_center/database"
	"github.com/wambuidev/learning_center/models"
)

// MarkOverduePayments flags pending fee payments for months that have
// already passed. Month strings are "YYYY-MM", so lexicographic comparison
// matches chronological order.
func MarkOverduePayments() {
	log.Println("Running job: MarkOverduePayments...")

	currentMonth := time.Now().Format("2006-01")

	var stale []models.Payment
	err := database.DB.
		Where("status = ? AND month < ?", "pending", currentMonth).
		Find(&stale).Error
	if err != nil {
		log.Printf("Error checking for overdue payments: %v", err)
		return
	}

	if len(stale) == 0 {
		log.Println("No overdue payments found.")
		return
	}

	for _, payment := range stale {
		payment.Status = "overdue"
		database.DB.Save(&payment)
	}

	log.Printf("Marked %d payment(s) as overdue.", len(stale))
}
