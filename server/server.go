package server

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	bustime "github.com/lamarjs/route-tracker"
)

// Server wires a Bustime client into a fiber application.
type Server struct {
	app    *fiber.App
	client *bustime.Client
}

// New builds the application and registers its routes.
func New(client *bustime.Client) *Server {
	s := &Server{
		app:    fiber.New(fiber.Config{DisableStartupMessage: true}),
		client: client,
	}

	api := s.app.Group("/api")
	api.Get("/health", s.handleHealth)
	api.Get("/routes", s.handleRoutes)
	api.Get("/routes/:rt/directions", s.handleDirections)
	api.Get("/routes/:rt/directions/:dir/stops", s.handleStops)
	api.Get("/predictions", s.handlePredictions)

	return s
}

// App exposes the fiber application, mainly for tests.
func (s *Server) App() *fiber.App { return s.app }

// Run listens on the given port and blocks until SIGINT or SIGTERM, then
// shuts the server down with a grace period.
func (s *Server) Run(port int) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.app.Listen(fmt.Sprintf(":%d", port))
	}()
	log.Info().Int("port", port).Msg("server listening")

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-sigs:
		log.Info().Msg("shutdown signal received")
		if err := s.app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Error().Err(err).Msg("server shutdown error")
			return err
		}
		log.Info().Msg("server shut down successfully")
		return nil
	}
}

// writeError maps a client failure onto an HTTP status. Everything coming
// back from the upstream API (its error envelope, transport trouble, an
// undecodable body) is a bad gateway from this service's point of view.
func writeError(c *fiber.Ctx, err error) error {
	var apiErr *bustime.APIError
	if errors.As(err, &apiErr) {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": apiErr.Msg})
	}
	log.Error().Err(err).Msg("bustime fetch failed")
	return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "upstream request failed"})
}
