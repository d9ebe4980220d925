package server

import (
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type healthResponse struct {
	Status string `json:"status"`
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(healthResponse{Status: "ok"})
}

func (s *Server) handleRoutes(c *fiber.Ctx) error {
	routes, err := s.client.Routes()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(routes)
}

func (s *Server) handleDirections(c *fiber.Ctx) error {
	rt := c.Params("rt")
	directions, err := s.client.Directions(rt)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(directions)
}

func (s *Server) handleStops(c *fiber.Ctx) error {
	rt := c.Params("rt")
	// Direction names contain spaces ("Northbound" is safe, "North Bound"
	// agencies are not), so the path segment arrives escaped.
	dir, err := url.PathUnescape(c.Params("dir"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad direction"})
	}
	stops, err := s.client.Stops(rt, dir)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(stops)
}

func (s *Server) handlePredictions(c *fiber.Ctx) error {
	stpid := c.Query("stpid")
	if stpid == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "stpid is required"})
	}
	rt := c.Query("rt")
	top := 10
	if v := c.Query("top"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "top must be a positive integer"})
		}
		top = n
	}
	predictions, err := s.client.Predictions(stpid, rt, top)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(predictions)
}
