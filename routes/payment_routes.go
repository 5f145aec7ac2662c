package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wambuidev/learning_center/handlers"
	"github.com/wambuidev/learning_center/middleware"
)

func PaymentRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	pay := api.Group("/payments", middleware.Protected(), middleware.StaffRequired())
	pay.Post("", handlers.RecordPayment)
	pay.Get("", handlers.ListPayments)
	pay.Get("/:paymentId/receipt", handlers.GetPaymentReceipt)
	pay.Post("/mpesa", handlers.InitiateMpesaPayment)

	// provider callback, no auth
	api.Post("/payments/webhook", handlers.HandlePaymentWebhook)
}
