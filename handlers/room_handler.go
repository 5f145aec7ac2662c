package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wambuidev/learning_center/database"
	"github.com/wambuidev/learning_center/models"
)

type RoomRequest struct {
	Name     string `json:"name" validate:"required,min=1"`
	Capacity int    `json:"capacity" validate:"gte=0"`
}

func CreateRoom(c *fiber.Ctx) error {
	var req RoomRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	room := models.Room{Name: req.Name, Capacity: req.Capacity}
	if err := database.DB.Create(&room).Error; err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Room name already in use"})
	}
	return c.Status(fiber.StatusCreated).JSON(room)
}

func ListRooms(c *fiber.Ctx) error {
	var rooms []models.Room
	if err := database.DB.Order("name asc").Find(&rooms).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(rooms)
}

func UpdateRoom(c *fiber.Ctx) error {
	var room models.Room
	if err := database.DB.Where("id = ?", c.Params("roomId")).First(&room).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Room not found"})
	}

	var req RoomRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	room.Name = req.Name
	room.Capacity = req.Capacity
	if err := database.DB.Save(&room).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update room"})
	}
	return c.JSON(room)
}

func DeleteRoom(c *fiber.Ctx) error {
	if err := database.DB.Where("id = ?", c.Params("roomId")).Delete(&models.Room{}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete room"})
	}
	return c.JSON(fiber.Map{"message": "Room deleted"})
}
