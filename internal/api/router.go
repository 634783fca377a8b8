package api

import (
	"net/http"

	"parcel-tracking-service/internal/api/handlers"
	"parcel-tracking-service/internal/ports"
	"parcel-tracking-service/internal/services"
)

// Deps bundles everything the HTTP surface needs. Handlers stay unaware
// of concrete adapters; swapping the fixture store for SQLite or the
// upstream backend happens in the composition root.
type Deps struct {
	Shipments *services.ShipmentService
	Tracking  *services.TrackingService
	Contacts  *services.ContactService
	Auth      *services.AuthService
	Prefs     ports.PreferenceStore
	Verifier  ports.TokenVerifier
}

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root.
func NewRouter(deps Deps) http.Handler {
	mux := http.NewServeMux()

	authHandler := &handlers.AuthHandler{Auth: deps.Auth}
	trackingHandler := &handlers.TrackingHandler{Tracking: deps.Tracking}
	contactHandler := &handlers.ContactHandler{Contacts: deps.Contacts}
	shipmentHandler := &handlers.ShipmentHandler{Shipments: deps.Shipments}
	prefHandler := &handlers.PreferenceHandler{Prefs: deps.Prefs}

	// public surface
	mux.HandleFunc("GET /health", handlers.Health)
	mux.HandleFunc("POST /auth/login", authHandler.Login)
	mux.HandleFunc("POST /auth/forgot", authHandler.Forgot)
	mux.HandleFunc("POST /contact", contactHandler.Submit)
	mux.HandleFunc("GET /api/tracking/{code}", trackingHandler.Resolve)

	// logged-in surface
	mux.HandleFunc("GET /api/my-trackings", trackingHandler.Mine)
	mux.HandleFunc("GET /api/preferences", prefHandler.Get)
	mux.HandleFunc("PUT /api/preferences", prefHandler.Put)

	// admin panel
	mux.HandleFunc("GET /admin/contacts", requireAdmin(contactHandler.List))
	mux.HandleFunc("GET /admin/contacts/{id}", requireAdmin(contactHandler.View))
	mux.HandleFunc("GET /admin/users", requireAdmin(shipmentHandler.ListUsers))
	mux.HandleFunc("GET /admin/users/{email}/shipments", requireAdmin(shipmentHandler.GetUser))
	mux.HandleFunc("POST /admin/users/{email}/shipments", requireAdmin(shipmentHandler.Add))
	mux.HandleFunc("PUT /admin/users/{email}/shipments/{id}", requireAdmin(shipmentHandler.Update))
	mux.HandleFunc("DELETE /admin/users/{email}/shipments/{id}", requireAdmin(shipmentHandler.Remove))

	return loggingMiddleware(identityMiddleware(deps.Verifier, mux))
}
