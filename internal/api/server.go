package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/lmk2k5/itinerary-backend-email-services/internal/service"
)

const (
	defaultRequestTimeout = 10 * time.Second
	maxBodyBytes          = 1 << 20
)

type Server struct {
	mx             *chi.Mux
	userService    service.UserServiceI
	tripsService   service.TripsServiceI
	jwtService     JWTServiceI
	authLimiter    *RateLimiter
	corsOrigins    []string
	requestTimeout time.Duration
}

type ServicesList struct {
	UserService  service.UserServiceI
	TripsService service.TripsServiceI
	JwtService   JWTServiceI
}

type Option func(*Server)

// WithCORSOrigins restricts cross-origin access. Empty list allows any origin.
func WithCORSOrigins(origins []string) Option {
	return func(s *Server) {
		s.corsOrigins = origins
	}
}

// WithAuthRateLimit limits /auth requests per client IP.
func WithAuthRateLimit(l *RateLimiter) Option {
	return func(s *Server) {
		s.authLimiter = l
	}
}

func WithRequestTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.requestTimeout = d
		}
	}
}

func New(servicesOptions *ServicesList, opts ...Option) *Server {
	s := &Server{
		mx:             chi.NewMux(),
		userService:    servicesOptions.UserService,
		tripsService:   servicesOptions.TripsService,
		jwtService:     servicesOptions.JwtService,
		requestTimeout: defaultRequestTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(chimiddleware.RealIP)
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)
	s.mx.Use(s.AccessLogMiddleware)
	s.mx.Use(chimiddleware.Recoverer)
	s.mx.Use(NewCORSHandler(s.corsOrigins))
	s.mx.Use(chimiddleware.RequestSize(maxBodyBytes))

	s.mx.Get("/health", s.Health)

	s.mx.Route("/auth", func(r chi.Router) {
		r.Use(s.authLimiter.Middleware)
		r.Post("/signup", s.Register)
		r.Post("/login", s.Login)
	})

	s.mx.Route("/api", func(r chi.Router) {
		r.Use(s.AuthMiddleware)
		r.Use(s.LoggerExtensionMiddleware)

		r.Get("/dashboard", s.Dashboard)
		r.Post("/trips", s.CreateTrip)
		r.Route("/trips/{tripId}", func(r chi.Router) {
			r.Get("/", s.GetTrip)
			r.Put("/", s.UpdateTrip)
			r.Delete("/", s.DeleteTrip)

			r.Post("/days", s.AddDay)
			r.Route("/days/{dayNumber}", func(r chi.Router) {
				r.Put("/", s.UpdateDay)
				r.Delete("/", s.DeleteDay)
				r.Put("/reorder", s.ReorderActivities)
				r.Post("/activities", s.AddActivity)
				r.Put("/activities/{activityName}", s.UpdateActivity)
				r.Delete("/activities/{activityName}", s.DeleteActivity)
			})
		})
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

func (s *Server) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), s.requestTimeout)
}
