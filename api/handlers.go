package api

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/habistat/habistat/internal/platform"
)

// Bridge endpoint: dispatches a named, zero-argument command invocation from
// the front end to its registered handler. Commands take no arguments; any
// request body or query string is rejected.
func (s *Shell) invokeCommand(c *fiber.Ctx) error {
	name := c.Params("command")

	handler, ok := s.commands.Lookup(name)
	if !ok {
		return c.Status(404).JSON(fiber.Map{"error": fmt.Sprintf("unknown command: %s", name)})
	}

	if len(c.Body()) > 0 || len(c.Request().URI().QueryString()) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": fmt.Sprintf("command %s takes no arguments", name)})
	}

	return c.JSON(fiber.Map{
		"command": name,
		"result":  handler(),
	})
}

// Command enumeration endpoint
func (s *Shell) listCommands(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"commands": s.commands.Names()})
}

// Health check endpoint
func (s *Shell) healthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"platform":  platform.GetOS(),
		"timestamp": time.Now().Unix(),
	})
}
