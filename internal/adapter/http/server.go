package adapthttp

import (
	"net/http"

	"fitplan/internal/app"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/rs/cors"
	"golang.org/x/oauth2"
)

// OIDCConfig holds the discovered provider and client settings for SSO.
type OIDCConfig struct {
	Enabled      bool
	Provider     *oidc.Provider
	OAuth2Config oauth2.Config
}

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	quiz      *app.QuizService
	profile   *app.ProfileService
	progress  *app.ProgressService
	dashboard *app.DashboardService
	authSvc   *app.AuthService

	oidcConfig  OIDCConfig
	corsOrigins []string
	disableAuth bool
	trustProxy  bool
	webDir      string
}

// New creates a Server wired to the given application services.
func New(qs *app.QuizService, ps *app.ProfileService, pr *app.ProgressService, ds *app.DashboardService, as *app.AuthService, webDir string) *Server {
	return &Server{
		quiz:      qs,
		profile:   ps,
		progress:  pr,
		dashboard: ds,
		authSvc:   as,
		webDir:    webDir,
	}
}

// WithoutAuth disables authentication. Every request runs as the dev user.
func (s *Server) WithoutAuth() *Server {
	s.disableAuth = true
	return s
}

// WithForwardAuth trusts the Remote-User header set by an auth proxy and
// provisions unknown users on first sight.
func (s *Server) WithForwardAuth() *Server {
	s.trustProxy = true
	return s
}

// WithOIDC enables the SSO login routes.
func (s *Server) WithOIDC(cfg OIDCConfig) *Server {
	s.oidcConfig = cfg
	return s
}

// WithCORS allows cross-origin requests from the given origins.
func (s *Server) WithCORS(origins []string) *Server {
	s.corsOrigins = origins
	return s
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})
	api.HandleFunc("/config", s.handleConfig)

	api.HandleFunc("/auth/register", s.handleRegister)
	api.HandleFunc("/auth/login", s.handleLogin)
	api.HandleFunc("/auth/logout", s.handleLogout)
	api.HandleFunc("/auth/setup", s.handleSetupUser)
	api.HandleFunc("/auth/sso/login", s.handleSSOLogin)
	api.HandleFunc("/auth/sso/callback", s.handleSSOCallback)

	api.Handle("/quiz", s.authMiddleware(http.HandlerFunc(s.handleQuizSubmit)))
	api.Handle("/quiz/preview", s.authMiddleware(http.HandlerFunc(s.handleQuizPreview)))
	api.Handle("/plan/latest", s.authMiddleware(http.HandlerFunc(s.handlePlanLatest)))
	api.Handle("/plan/history", s.authMiddleware(http.HandlerFunc(s.handlePlanHistory)))

	api.Handle("/profile", s.authMiddleware(http.HandlerFunc(s.handleProfile)))

	api.Handle("/progress", s.authMiddleware(http.HandlerFunc(s.handleProgressRecord)))
	api.Handle("/progress/recent", s.authMiddleware(http.HandlerFunc(s.handleProgressRecent)))
	api.Handle("/progress/undo-last", s.authMiddleware(http.HandlerFunc(s.handleProgressUndoLast)))

	api.Handle("/dashboard", s.authMiddleware(http.HandlerFunc(s.handleDashboard)))

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", api))
	root.Handle("/", spaFromDisk(s.webDir))

	var h http.Handler = withNoCache(s.loggingMiddleware(root))
	if len(s.corsOrigins) > 0 {
		h = cors.New(cors.Options{
			AllowedOrigins:   s.corsOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch},
			AllowedHeaders:   []string{"Content-Type"},
			AllowCredentials: true,
		}).Handler(h)
	}
	return h
}
