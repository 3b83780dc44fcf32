package handlers

import (
	"turfadmin/middleware"
)

// HandlerBundle groups the handlers and guard dependencies the router needs.
type HandlerBundle struct {
	AdminHandler  *AdminHandler
	HealthHandler *HealthHandler

	// Admin guard
	TokenVerifier middleware.TokenVerifier
	AdminSubject  string
}
