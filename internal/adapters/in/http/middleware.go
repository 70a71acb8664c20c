package http

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

// observe counts requests and their latency per route.
func (s *Server) observe(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		s.metrics.Requests.WithLabelValues(route, strconv.Itoa(c.Response().Status)).Inc()
		s.metrics.LatencyMS.WithLabelValues(route).Observe(float64(time.Since(start).Milliseconds()))

		return nil
	}
}
