package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/lmk2k5/itinerary-backend-email-services/internal/api"
	"github.com/lmk2k5/itinerary-backend-email-services/internal/repository"
	"github.com/lmk2k5/itinerary-backend-email-services/internal/service"
	"github.com/lmk2k5/itinerary-backend-email-services/migrations"
	"github.com/lmk2k5/itinerary-backend-email-services/pkg/cleanup"
	"github.com/lmk2k5/itinerary-backend-email-services/pkg/config"
	"github.com/lmk2k5/itinerary-backend-email-services/pkg/hasher"
	jwtservice "github.com/lmk2k5/itinerary-backend-email-services/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func setupLogger(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: lvl,
	})))
}

func tripsRepository(cfg *config.Config) repository.TripsRepositoryI {
	if strings.EqualFold(cfg.GetString("TRIPS_STORE"), "memory") {
		slog.Warn("trips are kept in memory and will be lost on restart")
		return repository.NewMemoryTripsRepo()
	}
	return repository.NewTripsRepo(&repository.MongoCfg{
		URI: cfg.GetStringOr("MONGO_URI", "mongodb://localhost:27017"),
		DB:  cfg.GetStringOr("MONGO_DB", "itinerary_app"),
	})
}

func main() {
	cfg := config.New()
	setupLogger(cfg.GetStringOr("LOG_LEVEL", "info"))
	if missing := cfg.Missing("JWT_SECRET"); len(missing) > 0 {
		log.Fatalf("required settings are missing: %s", strings.Join(missing, ", "))
	}

	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	pool := repository.NewPGPool(&dbCfg)
	migrateCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	err := migrations.Up(migrateCtx, stdlib.OpenDBFromPool(pool))
	cancel()
	if err != nil {
		log.Fatal("applying migrations error: " + err.Error())
	}

	userService := service.NewUserService(repository.NewUsersRepoWithConn(pool), hasher.New(0))
	tripsService := service.NewTripsService(tripsRepository(cfg))
	serv := api.New(&api.ServicesList{
		UserService:  userService,
		TripsService: tripsService,
		JwtService:   jwtservice.New(cfg.GetString("JWT_SECRET")),
	},
		api.WithCORSOrigins(cfg.GetList("CORS_ORIGINS", nil)),
		api.WithAuthRateLimit(api.NewRateLimiter(cfg.GetInt("AUTH_RATE_LIMIT", 5), 5)),
		api.WithRequestTimeout(cfg.GetDuration("REQUEST_TIMEOUT", 10*time.Second)),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	err = serv.Run(ctx, cfg.GetStringOr("API_ADDRESS", ":8888"), cfg.GetDuration("SHUTDOWN_TIMEOUT", 15*time.Second))
	if err != nil {
		slog.Error("server error", slog.String("error", err.Error()))
	}
	if err := cleanup.CleanUp(); err != nil {
		slog.Error("cleanup finished with errors", slog.String("error", err.Error()))
	}
	slog.Info("server stopped")
}
