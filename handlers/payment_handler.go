package handlers

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/wambuidev/learning_center/database"
	"github.com/wambuidev/learning_center/models"
	"github.com/wambuidev/learning_center/notifications"
	"github.com/wambuidev/learning_center/payments"
	"github.com/wambuidev/learning_center/services"
	"github.com/wambuidev/learning_center/utils"
	"github.com/wambuidev/learning_center/websocket"
	"gorm.io/gorm"
)

type RecordPaymentRequest struct {
	StudentID string  `json:"student_id" validate:"required,uuid"`
	ClassID   string  `json:"class_id" validate:"required,uuid"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	Month     string  `json:"month" validate:"required,len=7"` // "2006-01"
	Method    string  `json:"method" validate:"required,oneof=cash bank mpesa"`
}

// loadPaymentParties resolves the student and class, writing a 404 itself
// when either is missing (ok=false in that case).
func loadPaymentParties(studentID, classID string, c *fiber.Ctx) (*models.Student, *models.Class, bool) {
	var student models.Student
	if err := database.DB.Where("id = ?", studentID).First(&student).Error; err != nil {
		_ = c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
		return nil, nil, false
	}
	var class models.Class
	if err := database.DB.Where("id = ?", classID).First(&class).Error; err != nil {
		_ = c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Class not found"})
		return nil, nil, false
	}
	return &student, &class, true
}

// RecordPayment books a fee payment collected in person (cash or bank slip).
// M-Pesa payments go through InitiateMpesaPayment + the webhook instead.
func RecordPayment(c *fiber.Ctx) error {
	var req RecordPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if _, err := time.Parse("2006-01", req.Month); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "month must be YYYY-MM"})
	}

	student, class, ok := loadPaymentParties(req.StudentID, req.ClassID, c)
	if !ok {
		return nil
	}

	var payment models.Payment
	txErr := database.DB.Transaction(func(tx *gorm.DB) error {
		receiptNumber, err := utils.GenerateUniqueReceiptNumber(tx)
		if err != nil {
			return err
		}
		now := time.Now()
		payment = models.Payment{
			StudentID:     student.ID,
			ClassID:       class.ID,
			Amount:        req.Amount,
			Month:         req.Month,
			Method:        req.Method,
			Status:        "paid",
			ReceiptNumber: &receiptNumber,
			PaidAt:        &now,
		}
		return tx.Create(&payment).Error
	})
	if txErr != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record payment"})
	}

	payment.Student = *student
	payment.Class = *class
	go services.GenerateReceipt(payment)
	if student.Email != nil {
		go notifications.SendEmail(
			student.FullName,
			*student.Email,
			"Payment Received",
			fmt.Sprintf("<h1>Thank you!</h1><p>We received your payment of %.2f for %s (%s). Receipt number: %s.</p>",
				payment.Amount, class.Name, payment.Month, *payment.ReceiptNumber),
		)
	}
	websocket.Notify("payment.recorded", fiber.Map{
		"payment_id": payment.ID,
		"student":    student.FullName,
		"class":      class.Name,
		"amount":     payment.Amount,
		"month":      payment.Month,
	})

	return c.Status(fiber.StatusCreated).JSON(payment)
}

func ListPayments(c *fiber.Ctx) error {
	query := database.DB.Preload("Student").Preload("Class").Order("created_at desc")
	if studentID := c.Query("student_id"); studentID != "" {
		query = query.Where("student_id = ?", studentID)
	}
	if classID := c.Query("class_id"); classID != "" {
		query = query.Where("class_id = ?", classID)
	}
	if month := c.Query("month"); month != "" {
		query = query.Where("month = ?", month)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var list []models.Payment
	if err := query.Find(&list).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(list)
}

func GetPaymentReceipt(c *fiber.Ctx) error {
	var payment models.Payment
	if err := database.DB.Where("id = ?", c.Params("paymentId")).First(&payment).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payment not found"})
	}
	if payment.ReceiptURL == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Receipt not generated yet"})
	}
	return c.JSON(fiber.Map{"receipt_url": *payment.ReceiptURL})
}

type MpesaPaymentRequest struct {
	StudentID   string  `json:"student_id" validate:"required,uuid"`
	ClassID     string  `json:"class_id" validate:"required,uuid"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Month       string  `json:"month" validate:"required,len=7"`
	PhoneNumber string  `json:"phone_number" validate:"required"`
}

// InitiateMpesaPayment creates a pending payment and pushes an STK prompt to
// the payer's phone. The webhook finalizes it.
func InitiateMpesaPayment(c *fiber.Ctx) error {
	var req MpesaPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if _, err := time.Parse("2006-01", req.Month); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "month must be YYYY-MM"})
	}

	student, class, ok := loadPaymentParties(req.StudentID, req.ClassID, c)
	if !ok {
		return nil
	}

	payment := models.Payment{
		StudentID: student.ID,
		ClassID:   class.ID,
		Amount:    req.Amount,
		Month:     req.Month,
		Method:    "mpesa",
		Status:    "pending",
	}
	if err := database.DB.Create(&payment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create payment record"})
	}

	stkResp, err := payments.InitiateFeeSTKPush(req.Amount, req.PhoneNumber, payment.ID.String())
	if err != nil {
		log.Printf("🔥 STK push failed for payment %s: %v", payment.ID, err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}

	payment.MerchantRequestID = &stkResp.Response.MerchantRequestID
	if err := database.DB.Save(&payment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update payment record"})
	}

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"payment_id": payment.ID,
		"message":    stkResp.Response.CustomerMessage,
	})
}

type KcbWebhookPayload struct {
	Body struct {
		StkCallback struct {
			MerchantRequestID string `json:"MerchantRequestID"`
			CheckoutRequestID string `json:"CheckoutRequestID"`
			ResultCode        int    `json:"ResultCode"`
			ResultDesc        string `json:"ResultDesc"`
			CallbackMetadata  struct {
				Item []struct {
					Name  string      `json:"Name"`
					Value interface{} `json:"Value"`
				} `json:"Item"`
			} `json:"CallbackMetadata"`
			Reference string `json:"Reference"`
		} `json:"stkCallback"`
	} `json:"Body"`
}

func HandlePaymentWebhook(c *fiber.Ctx) error {
	var payload KcbWebhookPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse webhook payload"})
	}

	stk := payload.Body.StkCallback

	var paymentRefID string
	parts := strings.Split(stk.Reference, "-")
	if len(parts) == 2 {
		paymentRefID = parts[1]
	} else {
		paymentRefID = stk.Reference
	}

	log.Printf("Received webhook for MerchantRequestID: %s, PaymentRefID: %s, ResultCode: %d",
		stk.MerchantRequestID, paymentRefID, stk.ResultCode)

	var payment models.Payment
	if err := database.DB.Preload("Student").Preload("Class").
		Where("id = ?", paymentRefID).First(&payment).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payment record not found"})
	}

	if payment.Status == "paid" {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Webhook already processed"})
	}

	if stk.ResultCode != 0 {
		payment.Status = "failed"
		database.DB.Save(&payment)
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Acknowledged failed payment"})
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var mpesaReceipt string
		for _, item := range stk.CallbackMetadata.Item {
			if item.Name == "MpesaReceiptNumber" {
				if val, ok := item.Value.(string); ok {
					mpesaReceipt = val
					break
				}
			}
		}

		receiptNumber, err := utils.GenerateUniqueReceiptNumber(tx)
		if err != nil {
			return err
		}
		now := time.Now()
		payment.Status = "paid"
		payment.PaidAt = &now
		payment.ReceiptNumber = &receiptNumber
		payment.ProviderTxnID = &mpesaReceipt
		payment.MerchantRequestID = &stk.MerchantRequestID
		return tx.Save(&payment).Error
	})
	if err != nil {
		log.Printf("🔥 CRITICAL: Error processing successful webhook for PaymentRefID %s: %v", paymentRefID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process webhook"})
	}

	go services.GenerateReceipt(payment)
	if payment.Student.Email != nil {
		go notifications.SendEmail(
			payment.Student.FullName,
			*payment.Student.Email,
			"Payment Received",
			fmt.Sprintf("<h1>Thank you!</h1><p>Your M-Pesa payment of %.2f for %s (%s) was received.</p>",
				payment.Amount, payment.Class.Name, payment.Month),
		)
	}
	websocket.Notify("payment.recorded", fiber.Map{
		"payment_id": payment.ID,
		"student":    payment.Student.FullName,
		"class":      payment.Class.Name,
		"amount":     payment.Amount,
		"month":      payment.Month,
	})

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Webhook processed successfully"})
}
