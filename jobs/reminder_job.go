package jobs

import (
	"fmt"
	"log"

	"github.com/wambuidev/learning_center/database"
	"github.com/wambuidev/learning_center/models"
	"github.com/wambuidev/learning_center/notifications"
)

// SendPaymentReminders emails every student with an unpaid fee payment.
func SendPaymentReminders() {
	log.Println("Running job: SendPaymentReminders...")

	var unpaid []models.Payment
	err := database.DB.
		Preload("Student").Preload("Class").
		Where("status IN ?", []string{"pending", "overdue"}).
		Find(&unpaid).Error
	if err != nil {
		log.Printf("Error fetching unpaid payments: %v", err)
		return
	}

	sent := 0
	for _, payment := range unpaid {
		if payment.Student.Email == nil {
			continue
		}
		go notifications.SendEmail(
			payment.Student.FullName,
			*payment.Student.Email,
			"Fee Payment Reminder",
			fmt.Sprintf("<h1>Payment Reminder</h1><p>Your fee of %.2f for %s (%s) is still %s. Please settle it at the front desk or via M-Pesa.</p>",
				payment.Amount, payment.Class.Name, payment.Month, payment.Status),
		)
		sent++
	}

	log.Printf("Queued %d payment reminder(s).", sent)
}
