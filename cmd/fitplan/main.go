package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	adapthttp "fitplan/internal/adapter/http"
	"fitplan/internal/adapter/memory"
	"fitplan/internal/adapter/mongo"
	"fitplan/internal/adapter/postgres"
	"fitplan/internal/app"
	"fitplan/internal/config"
	"fitplan/internal/domain"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

// stores groups the repository ports the services need.
type stores struct {
	users    domain.UserRepository
	sessions domain.SessionRepository
	profiles domain.ProfileRepository
	results  domain.QuizResultRepository
	progress domain.ProgressRepository
	close    []func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := openStores(ctx, cfg)
	if err != nil {
		log.Fatalf("storage: %v", err)
	}
	defer func() {
		for _, c := range st.close {
			c()
		}
	}()

	authSvc := app.NewAuthService(st.users, st.sessions, st.profiles).WithSessionTTL(cfg.SessionTTL)
	quizSvc := app.NewQuizService(st.results, st.profiles)
	profileSvc := app.NewProfileService(st.profiles)
	progressSvc := app.NewProgressService(st.progress)
	dashboardSvc := app.NewDashboardService(st.profiles, st.results, st.progress)

	srv := adapthttp.New(quizSvc, profileSvc, progressSvc, dashboardSvc, authSvc, cfg.WebDir).
		WithCORS(cfg.CORSOrigins)
	if cfg.DisableAuth {
		log.Println("WARNING: authentication disabled")
		srv = srv.WithoutAuth()
	}
	if cfg.TrustForwardAuth {
		log.Println("trusting Remote-User from auth proxy")
		srv = srv.WithForwardAuth()
	}
	if cfg.SSOEnabled() {
		oidcCfg, err := discoverOIDC(ctx, cfg)
		if err != nil {
			log.Fatalf("oidc: %v", err)
		}
		srv = srv.WithOIDC(oidcCfg)
		log.Printf("sso enabled via %s", cfg.OIDCIssuer)
	}

	go purgeSessions(ctx, authSvc, time.Hour)

	httpSrv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Printf("listening on %s", cfg.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}

func openStores(ctx context.Context, cfg *config.Config) (*stores, error) {
	st := &stores{}
	if cfg.DatabaseURL == "" {
		log.Println("DATABASE_URL not set, using in-memory store")
		db := memory.New()
		st.users, st.sessions, st.profiles, st.results, st.progress = db, db.NewSessionRepo(), db, db, db
	} else {
		db, err := postgres.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		st.users, st.sessions, st.profiles, st.results, st.progress = db, postgres.NewSessionRepo(db), db, db, db
		st.close = append(st.close, func() { _ = db.Close() })
	}

	if cfg.MongoURI != "" {
		m, err := mongo.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			for _, c := range st.close {
				c()
			}
			return nil, err
		}
		log.Printf("quiz results stored in mongodb database %q", cfg.MongoDB)
		st.results = m
		st.close = append(st.close, func() { _ = m.Close(context.Background()) })
	}
	return st, nil
}

func discoverOIDC(ctx context.Context, cfg *config.Config) (adapthttp.OIDCConfig, error) {
	provider, err := oidc.NewProvider(ctx, cfg.OIDCIssuer)
	if err != nil {
		return adapthttp.OIDCConfig{}, err
	}
	return adapthttp.OIDCConfig{
		Enabled:  true,
		Provider: provider,
		OAuth2Config: oauth2.Config{
			ClientID:     cfg.OIDCClientID,
			ClientSecret: cfg.OIDCClientSecret,
			RedirectURL:  cfg.OIDCRedirectURL,
			Endpoint:     provider.Endpoint(),
			Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
		},
	}, nil
}

func purgeSessions(ctx context.Context, authSvc *app.AuthService, every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if err := authSvc.PurgeExpiredSessions(ctx); err != nil {
				log.Printf("purge sessions: %v", err)
			}
		}
	}
}
