package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
)

// setupRoutes configures all HTTP routes.
func (m *APIModule) setupRoutes() {
	m.app.Post("/bfhl", m.handleBFHL)
	m.app.Get("/health", m.handleHealth)
	m.app.Get("/metrics", adaptor.HTTPHandler(m.metrics.Handler()))

	// Must stay last.
	m.app.Use(m.handleNotFound)
}

// handleBFHL handles POST /bfhl.
func (m *APIModule) handleBFHL(c *fiber.Ctx) error {
	start := time.Now()

	req, err := Validate(c.Body())
	if err != nil {
		return m.fail(c, "", start, err)
	}

	data, err := m.dispatcher.Dispatch(c.UserContext(), req)
	if err != nil {
		return m.fail(c, string(req.Operation), start, err)
	}

	m.metrics.ObserveRequest(string(req.Operation), fiber.StatusOK, time.Since(start))
	return c.JSON(Success(m.cfg.OfficialEmail, data))
}

// handleHealth handles GET /health.
func (m *APIModule) handleHealth(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		IsSuccess:     true,
		OfficialEmail: m.cfg.OfficialEmail,
	})
}

func (m *APIModule) handleNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(Failure(msgRouteNotFound))
}

// fail writes the error envelope for err. Only client errors are echoed;
// internal detail goes to the log.
func (m *APIModule) fail(c *fiber.Ctx, op string, start time.Time, err error) error {
	status, message := ErrorStatus(err)
	if status >= fiber.StatusInternalServerError {
		m.logger.Error("Request failed", "operation", op, "status", status, "error", err)
	} else {
		m.logger.Debug("Request rejected", "operation", op, "status", status, "error", err)
	}

	m.metrics.ObserveRequest(op, status, time.Since(start))
	return c.Status(status).JSON(Failure(message))
}

// errorHandler renders errors that escape handlers and middleware,
// recovered panics included.
func (m *APIModule) errorHandler(c *fiber.Ctx, err error) error {
	status, message := ErrorStatus(err)
	if status >= fiber.StatusInternalServerError {
		m.logger.Error("Unhandled error", "method", c.Method(), "path", c.Path(), "error", err)
	}
	return c.Status(status).JSON(Failure(message))
}
