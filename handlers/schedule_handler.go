package handlers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/wambuidev/learning_center/database"
	"github.com/wambuidev/learning_center/models"
	"github.com/wambuidev/learning_center/services"
)

// GetWeekSchedule renders the weekly grid for one room. The handler scopes
// classes to the room and hands the rest to the schedule service.
func GetWeekSchedule(c *fiber.Ctx) error {
	roomID := c.Query("room_id")
	if roomID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "room_id is required"})
	}

	var room models.Room
	if err := database.DB.Where("id = ?", roomID).First(&room).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Room not found"})
	}

	anchor := time.Now()
	if raw := c.Query("anchor"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "anchor must be YYYY-MM-DD"})
		}
		anchor = parsed
	}

	slots := services.DefaultTimeSlots
	if raw := c.Query("slots"); raw != "" {
		var custom []string
		for _, part := range strings.Split(raw, ",") {
			clock, ok := services.NormalizeClock(part)
			if !ok {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "slots must be comma-separated HH:MM values"})
			}
			custom = append(custom, clock)
		}
		slots = custom
	}

	var classes []models.Class
	if err := database.DB.Preload("Sessions").
		Where("room_id = ?", room.ID).Order("created_at asc").
		Find(&classes).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	grid := services.BuildWeekGrid(classes, anchor, slots)
	return c.JSON(fiber.Map{"room": room, "grid": grid})
}
