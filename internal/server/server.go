/*
Package server implements the application's network transport layer.
It initializes the HTTP server, configures timeouts, and exposes the
meal-plan engine over Echo routes.
*/
package server

import (
	"fmt"
	"net/http"
	"time"

	"NutriViet_V1.0/internal/database"
	"NutriViet_V1.0/internal/mealplan"
	"NutriViet_V1.0/internal/utility"
)

// Server defines the configuration and dependencies for the HTTP service.
type Server struct {
	// port specifies the TCP port the server will listen on.
	port int

	// db reports store health; it is also the planner's PlanStore.
	db database.Service

	planner *mealplan.Planner

	// hub pushes generation progress to websocket clients.
	hub *utility.Hub

	jwtSecret []byte
}

// New returns a Server over its collaborators.
func New(port int, db database.Service, planner *mealplan.Planner, jwtSecret []byte) *Server {
	return &Server{
		port:      port,
		db:        db,
		planner:   planner,
		hub:       utility.NewHub(),
		jwtSecret: jwtSecret,
	}
}

// HTTPServer returns a configured *http.Server with production network
// timeouts. Week generation with the model can take a while, hence the
// long write timeout.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 5 * time.Minute,
	}
}
