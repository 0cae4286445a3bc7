// Package opener is the link-opening capability plugin: it delegates
// external-link navigation requests from the front end to the host OS's
// default handler.
package opener

import (
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/habistat/habistat/api"
)

// Plugin opens external links via the host's default browser
type Plugin struct {
	launch func(target string) error
}

// New creates the link-opener plugin for the current platform
func New() *Plugin {
	return &Plugin{launch: launchURL}
}

// Name returns the plugin name
func (p *Plugin) Name() string {
	return "opener"
}

// Register mounts the plugin's routes on the shell
func (p *Plugin) Register(s *api.Shell) error {
	r := s.PluginRouter(p.Name())
	r.Post("/open", p.handleOpen)
	return nil
}

type openRequest struct {
	URL string `json:"url"`
}

func (p *Plugin) handleOpen(c *fiber.Ctx) error {
	var req openRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}

	if err := validateURL(req.URL); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := p.launch(req.URL); err != nil {
		return c.Status(502).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"status": "success"})
}

// validateURL accepts only absolute http/https links. Everything else is
// refused before it reaches the host handler.
func validateURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("url required")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url: %v", err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported url scheme: %q", u.Scheme)
	}

	if u.Host == "" {
		return fmt.Errorf("url host required")
	}

	return nil
}
