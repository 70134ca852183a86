package http

import (
	"net/http"

	"github.com/go-api-whatsapp/internal/application/messaging"
	"github.com/go-api-whatsapp/internal/application/verification"
	"github.com/go-api-whatsapp/internal/config"
	"github.com/go-api-whatsapp/internal/transport/http/handler"
	appmiddleware "github.com/go-api-whatsapp/internal/transport/http/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	var authMw func(http.Handler) http.Handler
	if deps.JWTProvider != nil {
		authMw = appmiddleware.Auth(deps.JWTProvider)
	} else {
		// No signing secret configured: the gated route stays closed rather
		// than silently open.
		authMw = appmiddleware.DenyAll("token verification not configured")
	}

	// 5 requests/second, burst of 10 — keeps the public code issuer from
	// being used as an SMS cannon.
	sendCodeRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	verificationSvc := verification.NewService(deps.Codes, deps.Messenger)
	messagingSvc := messaging.NewService(deps.Messenger)

	healthH := handler.NewHealthHandler()
	verificationH := handler.NewVerificationHandler(verificationSvc)
	whatsappH := handler.NewWhatsAppHandler(messagingSvc)

	r.Get("/health", healthH.Check)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.With(sendCodeRL.Limit).Post("/send-code", verificationH.SendCode)
			r.Post("/verify-code", verificationH.VerifyCode)
		})
		r.Route("/whatsapp", func(r chi.Router) {
			r.With(authMw).Post("/send", whatsappH.Send)
			r.Post("/send-message", whatsappH.Send)
		})
	})

	return r
}
