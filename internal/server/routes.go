package server

import (
	"net/http"
	"time"

	"NutriViet_V1.0/internal/auth"
	"NutriViet_V1.0/internal/utility"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
)

func (s *Server) RegisterRoutes() http.Handler {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"https://*", "http://*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	e.Use(LoggerMiddleware)

	e.GET("/health", s.healthHandler)

	// Protected routes
	protected := e.Group("/mealplan")
	protected.Use(auth.JwtAuthMiddleware(s.jwtSecret))

	protected.POST("/week", s.generateWeekHandler)
	protected.GET("/latest", s.latestPlanHandler)
	protected.POST("/day/replace", s.replaceDayHandler)
	protected.POST("/meal/replace", s.replaceMealHandler)

	// Websocket for week generation progress
	protected.GET("/ws", s.progressSocketHandler)

	return e
}

func (s *Server) healthHandler(c echo.Context) error {
	if s.db == nil {
		return c.JSON(http.StatusOK, map[string]string{"status": "up", "store": "none"})
	}
	return c.JSON(http.StatusOK, s.db.Health())
}

// LoggerMiddleware attaches a request-scoped logger carrying the request id
// and logs one line per request.
func LoggerMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Response().Header().Set("X-Request-ID", requestID)

		logger := log.With().Str("request_id", requestID).Logger()
		c.Set("logger", &logger)

		start := time.Now()
		err := next(c)
		if err != nil {
			c.Error(err)
		}

		logger.Info().
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Str("ip", utility.GetRealIP(c)).
			Int("status", c.Response().Status).
			Dur("latency", time.Since(start)).
			Msg("request")
		return nil
	}
}
