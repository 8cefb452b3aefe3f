// Package http exposes the courier assignment use cases over a JSON HTTP API built on echo.
package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Server adapts HTTP requests to application commands and queries.
type Server struct {
	handlers Handlers
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes mounts the API on e.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	e.POST("/couriers", s.CreateCouriers)
	e.GET("/couriers", s.ListCouriers)
	e.GET("/couriers/:courier_id", s.GetCourier)
	e.PATCH("/couriers/:courier_id", s.UpdateCourier)

	e.POST("/orders", s.CreateOrders)
	e.GET("/orders/active", s.GetActiveOrders)
	e.GET("/orders/:order_id", s.GetOrder)
	e.POST("/orders/assign", s.AssignOrders)
	e.POST("/orders/complete", s.CompleteOrder)
}

// Health godoc
//
//	@Summary	Liveness probe
//	@Tags		service
//	@Produce	plain
//	@Success	200	{string}	string	"Healthy"
//	@Router		/health [get]
func (s *Server) Health(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}
