package server

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"podosite/internal/assets"
	"podosite/internal/auth"
	"podosite/internal/cache"
	"podosite/internal/config"
)

type Server struct {
	Admins   AdminStore
	Services ServiceStore
	Site     SiteConfigStore
	Cases    SuccessCaseStore
	Cards    AboutCardStore
	Contacts ContactStore
	Mailer   Mailer
	Tokens   *auth.TokenService
	Hasher   auth.PasswordHasher
	Cache    *cache.Cache
	Assets   assets.Storage
	Config   config.Config
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	formatter := &middleware.DefaultLogFormatter{
		Logger:  log.New(log.Writer(), "", log.Flags()),
		NoColor: true,
	}
	r.Use(middleware.RequestLogger(formatter))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "Accept-Language"},
	}))
	r.Use(secureHeaders)

	// Public surface.
	r.Post("/api/login", s.handleLogin)
	r.Get("/api/services", s.handleListServices)
	r.Get("/api/services/version", s.handleServicesVersion)
	r.Get("/api/config", s.handleGetSiteConfig)
	r.Get("/api/success-cases", s.handleListSuccessCases)
	r.Get("/api/about-cards", s.handleListAboutCards)
	r.Post("/api/quote", s.handleQuote)

	// Setup flow: only reachable with the short-lived setup token.
	r.Group(func(pr chi.Router) {
		pr.Use(s.authenticate, s.requireScope(auth.ScopeSetup))
		pr.Post("/api/auth/send-code", s.handleSendSetupCode)
		pr.Post("/api/auth/setup", s.handleCompleteSetup)
	})

	// 2FA verification: only reachable with the short-lived 2fa token.
	r.Group(func(pr chi.Router) {
		pr.Use(s.authenticate, s.requireScope(auth.ScopeTwoFactor))
		pr.Post("/api/auth/verify-2fa", s.handleVerifyTwoFactor)
	})

	// Admin resource layer: full-scope tokens only.
	r.Group(func(pr chi.Router) {
		pr.Use(s.authenticate, s.requireScope(auth.ScopeFull))

		pr.Post("/api/services", s.handleCreateService)
		pr.Put("/api/services/{id}", s.handleUpdateService)
		pr.Delete("/api/services/{id}", s.handleDeleteService)

		pr.Put("/api/config", s.handleUpdateSiteConfig)

		pr.Post("/api/success-cases", s.handleCreateSuccessCase)
		pr.Put("/api/success-cases/{id}", s.handleUpdateSuccessCase)
		pr.Delete("/api/success-cases/{id}", s.handleDeleteSuccessCase)

		pr.Post("/api/about-cards", s.handleCreateAboutCard)
		pr.Put("/api/about-cards/{id}", s.handleUpdateAboutCard)
		pr.Delete("/api/about-cards/{id}", s.handleDeleteAboutCard)

		pr.Put("/api/admin/profile/password", s.handleChangePassword)
		pr.Post("/api/admin/profile/email-request", s.handleEmailChangeRequest)
		pr.Post("/api/admin/profile/email-confirm", s.handleEmailChangeConfirm)

		pr.Post("/api/upload", s.handleUpload)
		pr.Post("/api/upload/delete", s.handleUploadDelete)
	})

	return r
}
