package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Michael3682/track-n-find-sub000/internal/transport/middleware"
)

// Handlers bundles everything the router mounts. AuthLimit, when set, rate
// limits the credential endpoints only.
type Handlers struct {
	Auth      *AuthHandler
	Items     *ItemHandler
	Chat      *ChatHandler
	Report    *ReportHandler
	Health    *HealthHandler
	WS        *WSHandler
	AuthLimit middleware.Middleware
}

// NewRouter builds the HTTP routing table. Middlewares apply to every route
// in the order given.
func NewRouter(h Handlers, mws ...middleware.Middleware) http.Handler {
	r := chi.NewRouter()
	for _, mw := range mws {
		r.Use(mw)
	}

	r.Get("/health", h.Health.Health)
	r.Get("/health/live", h.Health.Live)
	r.Get("/health/ready", h.Health.Ready)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			if h.AuthLimit != nil {
				r.Use(h.AuthLimit)
			}
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Patch("/users/{id}/role", h.Auth.SetRole)
		})

		r.Route("/items", func(r chi.Router) {
			r.Get("/", h.Items.List)
			r.Post("/", h.Items.Report)
			r.Get("/{id}", h.Items.Get)
			r.Patch("/{id}/archive", h.Items.Archive)
			r.Patch("/{id}/restore", h.Items.Restore)
			r.Delete("/{id}", h.Items.Delete)
		})

		r.Route("/chat", func(r chi.Router) {
			r.Post("/conversation", h.Chat.FindOrCreate)
			r.Get("/conversation/{id}", h.Chat.Get)
			r.Get("/conversations", h.Chat.List)
			r.Post("/conversation/{id}/messages", h.Chat.SendMessage)
			r.Patch("/messages/{id}", h.Chat.EditMessage)
			r.Delete("/messages/{id}", h.Chat.DeleteMessage)
		})

		r.Route("/report", func(r chi.Router) {
			r.Post("/claim", h.Report.Claim)
			r.Get("/claim/{itemId}", h.Report.LatestClaim)
			r.Post("/return", h.Report.Return)
			r.Post("/turnover", h.Report.RequestTurnover)
			r.Get("/turnover/{itemId}", h.Report.LatestTurnover)
			r.Patch("/turnover/{itemId}/confirm", h.Report.ConfirmTurnover)
			r.Patch("/turnover/{itemId}/reject", h.Report.RejectTurnover)
		})
	})

	r.Get("/ws/chat", h.WS.Serve)

	return r
}
