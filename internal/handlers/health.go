package handlers

import (
	"github.com/gofiber/fiber/v2"
)

func UpCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "service is up"})
}

func ReadyCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "service is ready"})
}
