package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"
	config "github.com/wambuidev/learning_center/configs"
	"github.com/wambuidev/learning_center/database"
	"github.com/wambuidev/learning_center/jobs"
	"github.com/wambuidev/learning_center/notifications"
	"github.com/wambuidev/learning_center/routes"
	"github.com/wambuidev/learning_center/websocket"
)

func main() {
	database.ConnectDB()
	database.Migrate()
	database.SeedAdmin()
	if config.Config("SEED_DEMO_DATA") == "true" {
		database.SeedDemoData(database.DefaultDemoDataset())
	}
	notifications.InitEmailService()

	c := cron.New()
	c.AddFunc("0 6 * * *", jobs.MarkOverduePayments)
	c.AddFunc("0 9 * * *", jobs.SendPaymentReminders)
	go c.Start()
	log.Println("✅ Cron jobs scheduled successfully.")

	app := fiber.New(fiber.Config{
		Prefork:           false,
		AppName:           "Learning Center Admin",
		CaseSensitive:     true,
		StrictRouting:     true,
		EnablePrintRoutes: true,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"status":  "error",
				"code":    code,
				"message": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization, Sec-WebSocket-Key, Sec-WebSocket-Version",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Authorization",
		MaxAge:        86400,
	}))

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Africa/Nairobi",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "success",
			"message": "Welcome to Learning Center Admin API",
		})
	})

	routes.AuthRoutes(app)
	routes.StudentRoutes(app)
	routes.TeacherRoutes(app)
	routes.StaffRoutes(app)
	routes.ClassRoutes(app)
	routes.ScheduleRoutes(app)
	routes.PaymentRoutes(app)
	routes.ExpenseRoutes(app)
	routes.ReportRoutes(app)
	routes.UploadRoutes(app)
	routes.DashboardRoutes(app)

	go websocket.RunHub()

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})

	log.Println("✅ Server is running on port 8080")
	err := app.Listen(":8080")
	if err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
