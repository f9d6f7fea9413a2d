// Package server assembles the gin engine: sessions, the admin gate and
// every API route.
// File: server/router.go
package server

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"go-clan-admin/config"
	"go-clan-admin/controllers"
	"go-clan-admin/logger"
	"go-clan-admin/middleware"
	"go-clan-admin/models"
	"go-clan-admin/services"
	"go-clan-admin/store"
)

// Deps are the collaborators the router wires into handlers.
type Deps struct {
	Stores    *store.Stores
	Authority *services.SessionAuthority
	Metrics   services.MetricsPublisher
	// QREncoder overrides the QR code encoder; nil uses go-qrcode.
	QREncoder services.QREncoder
}

// NewAuthority builds the session authority from configuration. A bcrypt
// hash, when configured, replaces the plaintext password.
func NewAuthority(cfg *config.Config) *services.SessionAuthority {
	var verifier services.CredentialVerifier = services.StaticVerifier{
		Email:    cfg.AdminEmail,
		Password: cfg.AdminPassword,
	}
	if cfg.AdminPasswordHash != "" {
		verifier = services.BcryptVerifier{Email: cfg.AdminEmail, Hash: cfg.AdminPasswordHash}
	}
	admin := models.AdminIdentity{
		ID:       cfg.AdminID,
		Username: cfg.AdminName,
		Email:    cfg.AdminEmail,
		Roles:    []string{models.RoleAdmin},
		IsAdmin:  true,
	}
	return services.NewSessionAuthority(verifier, admin, cfg.SessionTTL, cfg.IsProduction())
}

// NewGate builds the identity chain: trusted headers first when enabled,
// then the session cookie.
func NewGate(cfg *config.Config, authority *services.SessionAuthority, metrics services.MetricsPublisher) *middleware.Gate {
	var resolvers []middleware.IdentityResolver
	if cfg.TrustedHeadersEnabled {
		logger.Warn.Printf("Trusted identity headers enabled (prefix %q); only run behind a proxy that sets them", cfg.TrustedHeaderPrefix)
		resolvers = append(resolvers, middleware.TrustedHeaderResolver{
			Prefix:     cfg.TrustedHeaderPrefix,
			AdminNames: cfg.AdminDisplayNames,
		})
	}
	resolvers = append(resolvers, middleware.SessionResolver{Authority: authority})
	return middleware.NewGate(metrics, resolvers...)
}

// NewRouter returns the engine serving /health and the /api surface.
func NewRouter(cfg *config.Config, deps Deps) *gin.Engine {
	metrics := deps.Metrics
	if metrics == nil {
		metrics = services.NoopPublisher{}
	}
	if deps.Authority == nil {
		deps.Authority = NewAuthority(cfg)
	}

	router := gin.Default()
	router.HandleMethodNotAllowed = true
	router.Use(middleware.RequestID())

	cookieStore := cookie.NewStore([]byte(cfg.SessionSecret))
	cookieStore.Options(deps.Authority.SessionOptions())
	router.Use(sessions.Sessions(services.SessionCookieName, cookieStore))

	gate := NewGate(cfg, deps.Authority, metrics)
	adminOnly := middleware.AdminRequired(gate)
	s := deps.Stores

	router.GET("/health", controllers.Health)

	api := router.Group("/api")

	// ---------------- public ----------------
	auth := controllers.NewAuthController(deps.Authority, gate, metrics)
	api.GET("/auth", auth.Status)
	api.POST("/auth", auth.Login)
	api.DELETE("/auth", auth.Logout)

	players := &controllers.PlayersController{Members: s.Members, Metrics: metrics}
	api.GET("/players", players.List)

	requests := controllers.NewRequestController(
		controllers.NewResourceController(s.Requests, "joinRequests", "request", "Join request not found", metrics),
		services.NewRecruitmentService(s.Requests, s.Members, metrics),
	)
	api.POST("/requests", requests.Submit)

	// ---------------- admin only ----------------
	admin := api.Group("", adminOnly)

	controllers.NewResourceController(s.Members, "teamMembers", "member", "Team member not found", metrics).Register(admin, "/members")
	news := controllers.NewResourceController(s.News, "newsArticles", "article", "News article not found", metrics)
	news.Defaults = NewsAuthor(cfg.AdminName)
	news.Register(admin, "/news")
	controllers.NewResourceController(s.Matches, "matches", "match", "Match not found", metrics).Register(admin, "/matches")
	controllers.NewResourceController(s.Achievements, "achievements", "achievement", "Achievement not found", metrics).Register(admin, "/achievements")
	controllers.NewResourceController(s.Tournaments, "tournaments", "tournament", "Tournament not found", metrics).Register(admin, "/tournaments")
	controllers.NewResourceController(s.Training, "trainingSessions", "session", "Training session not found", metrics).Register(admin, "/training")

	admin.GET("/requests", requests.List)
	admin.PUT("/requests", requests.Update)
	admin.DELETE("/requests", requests.Delete)

	settings := controllers.NewSettingsController(s.Settings, metrics)
	admin.GET("/settings", settings.Get)
	admin.PUT("/settings", settings.Update)

	qr := &controllers.PageController{PublicBaseURL: cfg.PublicBaseURL, Encode: deps.QREncoder}
	admin.GET("/join/qrcode", qr.JoinQRCode)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})
	return router
}

// NewsAuthor signs articles posted without an author with the admin's name.
func NewsAuthor(name string) func(*models.NewsArticle) {
	return func(a *models.NewsArticle) {
		if a.Author == "" {
			a.Author = name
		}
	}
}
