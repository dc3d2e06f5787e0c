// Package server exposes the meditation service over HTTP: a small JSON API
// for the notification scheduler, the daily pick and image generation, plus
// an offline-first pass-through serving the app shell from the versioned
// cache when the upstream origin is unreachable.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/meditations/pkg/cache"
	"github.com/umputun/meditations/pkg/domain"
	"github.com/umputun/meditations/pkg/notify"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/scheduler.go -pkg mocks -skip-ensure -fmt goimports . Scheduler
//go:generate moq -out mocks/fetcher.go -pkg mocks -skip-ensure -fmt goimports . Fetcher
//go:generate moq -out mocks/content_source.go -pkg mocks -skip-ensure -fmt goimports . ContentSource
//go:generate moq -out mocks/click_handler.go -pkg mocks -skip-ensure -fmt goimports . ClickHandler
//go:generate moq -out mocks/image_generator.go -pkg mocks -skip-ensure -fmt goimports . ImageGenerator

// Server represents HTTP server instance
type Server struct {
	config    ConfigProvider
	scheduler Scheduler
	fetcher   Fetcher
	content   ContentSource
	clicks    ClickHandler
	images    ImageGenerator
	sessions  *Sessions
	version   string
	debug     bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Scheduler interface for notification operations
type Scheduler interface {
	Settings() domain.NotificationSettings
	Permission() domain.Permission
	NextFire() (time.Time, bool)
	UpdateSettings(ctx context.Context, patch notify.SettingsPatch) error
	ReportPermission(ctx context.Context, state domain.Permission) error
	SendTest(ctx context.Context) error
}

// Fetcher interface for offline-first fetches through the versioned cache
type Fetcher interface {
	Fetch(ctx context.Context, requestKey string) (*cache.Response, error)
	Version() string
	Ready() bool
}

// ContentSource interface for loading the meditation collection
type ContentSource interface {
	Load(ctx context.Context) (*domain.Collection, error)
}

// ClickHandler interface for the notification-click protocol
type ClickHandler interface {
	HandleClick(ctx context.Context, action string, data domain.NotificationData) error
}

// ImageGenerator interface for the optional decorative image collaborator
type ImageGenerator interface {
	Generate(ctx context.Context, text string) (string, error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// Params collects all server dependencies; Images may be nil (feature off)
type Params struct {
	Config    ConfigProvider
	Scheduler Scheduler
	Fetcher   Fetcher
	Content   ContentSource
	Clicks    ClickHandler
	Images    ImageGenerator
	Sessions  *Sessions
	Version   string
	Debug     bool
}

// New initializes a new server instance
func New(p Params) *Server {
	s := &Server{
		config:    p.Config,
		scheduler: p.Scheduler,
		fetcher:   p.Fetcher,
		content:   p.Content,
		clicks:    p.Clicks,
		images:    p.Images,
		sessions:  p.Sessions,
		version:   p.Version,
		debug:     p.Debug,
		router:    routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("meditations", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	// API routes
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /daily", s.dailyHandler)
		r.HandleFunc("GET /notifications", s.getNotificationsHandler)
		r.HandleFunc("PUT /notifications", s.updateNotificationsHandler)
		r.HandleFunc("POST /notifications/test", s.testNotificationHandler)
		r.HandleFunc("POST /notifications/permission", s.permissionHandler)
		r.HandleFunc("POST /notifications/click", s.notificationClickHandler)
		r.HandleFunc("POST /images", s.generateImageHandler)
		r.HandleFunc("POST /sessions", s.registerSessionHandler)
		r.HandleFunc("DELETE /sessions/{id}", s.unregisterSessionHandler)
	})

	// everything else is served through the offline-first cache; Handle keeps
	// the "/" pattern as a subtree match so every asset path goes through it
	s.router.Handle("/", http.HandlerFunc(s.appHandler))
}
