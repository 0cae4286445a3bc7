package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/habistat/habistat/internal/command"
	"github.com/habistat/habistat/web"
)

// Plugin is a capability attached to the shell at bootstrap. Plugins may
// register bridge commands and mount routes under /plugin/<name>/.
type Plugin interface {
	Name() string
	Register(s *Shell) error
}

// Shell is the native process hosting the bundled front end and bridging it
// to host capabilities. Commands become reachable only through a built Shell.
type Shell struct {
	app      *fiber.App
	commands *command.Registry
}

type namedCommand struct {
	name    string
	handler command.Handler
}

// Builder assembles a Shell. Plugins and commands are applied in the order
// they were added.
type Builder struct {
	plugins  []Plugin
	commands []namedCommand
}

// NewBuilder creates a default shell configuration
func NewBuilder() *Builder {
	return &Builder{}
}

// Plugin attaches a capability plugin to the shell under construction
func (b *Builder) Plugin(p Plugin) *Builder {
	b.plugins = append(b.plugins, p)
	return b
}

// Command registers a named bridge command on the shell under construction
func (b *Builder) Command(name string, h command.Handler) *Builder {
	b.commands = append(b.commands, namedCommand{name: name, handler: h})
	return b
}

// Build constructs the shell: plugins first, then builder commands, then the
// bridge and front-end routes
func (b *Builder) Build() (*Shell, error) {
	app := fiber.New(fiber.Config{
		ReadTimeout:      30 * time.Second,
		WriteTimeout:     30 * time.Second,
		IdleTimeout:      120 * time.Second,
		DisableKeepalive: false,
		ServerHeader:     "habistat",
		AppName:          "habistat v1.0",
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "*",
		AllowCredentials: false,
		ExposeHeaders:    "Content-Length,Content-Type,Access-Control-Allow-Origin",
		MaxAge:           86400, // 24 hours
	}))

	shell := &Shell{
		app:      app,
		commands: command.NewRegistry(),
	}

	for _, p := range b.plugins {
		if err := p.Register(shell); err != nil {
			return nil, fmt.Errorf("registering plugin %q: %w", p.Name(), err)
		}
	}

	for _, c := range b.commands {
		if err := shell.RegisterCommand(c.name, c.handler); err != nil {
			return nil, err
		}
	}

	shell.setupRoutes()
	return shell, nil
}

// RegisterCommand makes a named command invokable from the front end
func (s *Shell) RegisterCommand(name string, h command.Handler) error {
	return s.commands.Register(name, h)
}

// PluginRouter returns the route group a plugin mounts its endpoints under
func (s *Shell) PluginRouter(name string) fiber.Router {
	return s.app.Group("/plugin/" + name)
}

// App exposes the underlying fiber app, primarily for in-process testing
func (s *Shell) App() *fiber.App {
	return s.app
}

// setupRoutes configures the bridge, health and front-end routes
func (s *Shell) setupRoutes() {
	bridge := s.app.Group("/bridge")
	bridge.Post("/invoke/:command", s.invokeCommand)
	bridge.Get("/commands", s.listCommands)

	api := s.app.Group("/api")
	api.Get("/health", s.healthCheck)

	// Bundled front end
	s.app.Use("/", filesystem.New(filesystem.Config{
		Root:  http.FS(web.Files),
		Index: "index.html",
	}))
}

// Run starts the shell's run loop; it blocks until the application exits
func (s *Shell) Run(addr string) error {
	return s.app.Listen(addr)
}

// Shutdown gracefully stops the shell
func (s *Shell) Shutdown() error {
	return s.app.Shutdown()
}
