// Package osinfo is the OS-info capability plugin: it provides the platform
// identifier facility and exposes its own platform-query commands to the
// front end.
package osinfo

import (
	"context"
	"runtime"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shirou/gopsutil/v3/host"

	"github.com/habistat/habistat/api"
)

// Plugin reports platform information to the front end
type Plugin struct{}

// New creates the OS-info plugin
func New() *Plugin {
	return &Plugin{}
}

// Name returns the plugin name
func (p *Plugin) Name() string {
	return "os-info"
}

// Register adds the plugin's bridge commands and routes to the shell
func (p *Plugin) Register(s *api.Shell) error {
	if err := s.RegisterCommand("get_arch", func() string { return runtime.GOARCH }); err != nil {
		return err
	}
	if err := s.RegisterCommand("get_family", family); err != nil {
		return err
	}

	r := s.PluginRouter(p.Name())
	r.Get("/host", p.getHost)
	return nil
}

// family groups the platform into its OS family
func family() string {
	if runtime.GOOS == "windows" {
		return "windows"
	}
	return "unix"
}

// Host represents extended host information
type Host struct {
	Hostname        string `json:"hostname"`
	OS              string `json:"os"`
	Platform        string `json:"platform"`
	PlatformVersion string `json:"platform_version"`
	KernelVersion   string `json:"kernel_version"`
	KernelArch      string `json:"kernel_arch"`
	Uptime          uint64 `json:"uptime_seconds"`
}

// Host information endpoint
func (p *Plugin) getHost(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	h := &Host{
		Hostname:        info.Hostname,
		OS:              info.OS,
		Platform:        info.Platform,
		PlatformVersion: info.PlatformVersion,
		KernelVersion:   info.KernelVersion,
		KernelArch:      info.KernelArch,
		Uptime:          info.Uptime,
	}

	// Prefer the vendor's product name where the platform exposes one
	if caption, err := osCaption(); err == nil && caption != "" {
		h.Platform = caption
	}

	return c.JSON(h)
}
