package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/liftlogapp/liftlog/internal/config"
	"github.com/liftlogapp/liftlog/internal/db"
	"github.com/liftlogapp/liftlog/internal/middleware"
	"github.com/liftlogapp/liftlog/internal/telemetry/metrics"
	"github.com/liftlogapp/liftlog/internal/workouts/days"
	"github.com/liftlogapp/liftlog/internal/workouts/logs"
	"github.com/liftlogapp/liftlog/internal/workouts/profiles"
	"github.com/liftlogapp/liftlog/internal/workouts/sessions"
	"github.com/liftlogapp/liftlog/internal/workouts/stats"
	"github.com/liftlogapp/liftlog/pkg"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/coocood/freecache"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/multierr"
)

const statsCacheSizeBytes = 10 * 1024 * 1024

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	apiTokenHash      string
	versionInfo       string

	config      *config.Config
	dbPool      *pgxpool.Pool
	redisClient *redis.Client
	statsCache  *freecache.Cache

	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
}

type NewServerParams struct {
	Config           *config.Config
	ApiTokenHash     string
	PostgresPassword string
	RedisPassword    string
	VersionInfo      string
	TracingEnabled   bool
}

func NewServer(ctx context.Context, params NewServerParams) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		DBUser:         params.Config.PostgresUser,
		DBPassword:     params.PostgresPassword,
		TracingEnabled: params.TracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	if err := db.Migrate(ctx, dbPool); err != nil {
		return nil, fmt.Errorf("migrate db: %w", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("liftlog", "backend", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0,
	})
	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	return &Server{
		config:         params.Config,
		apiTokenHash:   params.ApiTokenHash,
		versionInfo:    params.VersionInfo,
		dbPool:         dbPool,
		redisClient:    rdb,
		statsCache:     freecache.NewCache(statsCacheSizeBytes),
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("liftlog-router"))

	daysRepo := days.NewRepo(s.dbPool)
	sessionsRepo := sessions.NewRepo(s.dbPool)
	logsRepo := logs.NewRepo(s.dbPool)
	profilesRepo := profiles.NewRepo(s.dbPool)

	daysHandler := days.NewHandler(daysRepo)
	r.HandleFunc("/workouts/days", daysHandler.HandleListDays).Methods("GET", "OPTIONS").Name("list-days")
	r.HandleFunc("/workouts/days", daysHandler.HandleCreateDay).Methods("POST", "OPTIONS").Name("new-day")
	r.HandleFunc("/workouts/days/{id}", daysHandler.HandleRenameDay).Methods("PUT", "OPTIONS").Name("rename-day")
	r.HandleFunc("/workouts/days/{id}/exercises", daysHandler.HandleListExercises).Methods("GET", "OPTIONS").Name("list-exercises")
	r.HandleFunc("/workouts/days/{id}/exercises", daysHandler.HandleAddExercise).Methods("POST", "OPTIONS").Name("new-exercise")
	r.HandleFunc("/workouts/exercises/{id}", daysHandler.HandleUpdateExercise).Methods("PUT", "OPTIONS").Name("update-exercise")
	r.HandleFunc("/workouts/exercises/{id}", daysHandler.HandleDeleteExercise).Methods("DELETE", "OPTIONS").Name("delete-exercise")

	sessionsHandler := sessions.NewHandler(
		sessions.NewResolver(sessionsRepo, daysRepo),
		sessionsRepo,
		s.metricsManager,
	)
	r.HandleFunc("/workouts/days/{id}/session", sessionsHandler.HandleResolveDaySession).Methods("GET", "OPTIONS").Name("resolve-session")
	r.HandleFunc("/workouts/sessions/{id}", sessionsHandler.HandleGetSession).Methods("GET", "OPTIONS").Name("get-session")
	r.HandleFunc("/workouts/sessions/{id}/complete", sessionsHandler.HandleCompleteSession).Methods("POST", "OPTIONS").Name("complete-session")
	r.HandleFunc("/workouts/sessions/{id}/notes", sessionsHandler.HandleSetNotes).Methods("PUT", "OPTIONS").Name("session-notes")

	logsHandler := logs.NewHandler(logsRepo, daysRepo, s.metricsManager)
	r.HandleFunc("/workouts/sessions/{id}/logs", logsHandler.HandleListSessionLogs).Methods("GET", "OPTIONS").Name("list-logs")
	r.HandleFunc("/workouts/sessions/{id}/logs", logsHandler.HandleAddSetLog).Methods("POST", "OPTIONS").Name("new-log")
	r.HandleFunc("/workouts/logs/{id}", logsHandler.HandleUpdateSetLog).Methods("PUT", "OPTIONS").Name("update-log")
	r.HandleFunc("/workouts/logs/{id}", logsHandler.HandleDeleteSetLog).Methods("DELETE", "OPTIONS").Name("delete-log")

	statsHandler := stats.NewHandler(
		logsRepo,
		sessionsRepo,
		profilesRepo,
		daysRepo,
		s.statsCache,
		time.Duration(s.config.StatsCacheExpireSeconds)*time.Second,
		s.metricsManager,
	)
	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	r.Handle(
		"/workouts/stats",
		middleware.RateLimit(
			reqRateLimiter, "workouts-stats",
			s.config.RateLimitAllowedPerMin, s.metricsManager,
		)(http.HandlerFunc(statsHandler.HandleGetStats)),
	).Methods("GET", "OPTIONS").Name("get-stats")
	r.HandleFunc("/workouts/exercises/{id}/baseline", statsHandler.HandleGetBaseline).Methods("GET", "OPTIONS").Name("get-baseline")

	profilesHandler := profiles.NewHandler(profilesRepo)
	r.HandleFunc("/workouts/profile", profilesHandler.HandleGetProfile).Methods("GET", "OPTIONS").Name("get-profile")
	r.HandleFunc("/workouts/profile", profilesHandler.HandleUpdateProfile).Methods("PUT", "OPTIONS").Name("update-profile")

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteResponse(w, pkg.ContentType.Text, "ok", http.StatusOK)
	}).Methods("GET").Name("health")
	r.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteResponse(w, pkg.ContentType.Text, s.versionInfo, http.StatusOK)
	}).Methods("GET").Name("version")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.apiTokenHash)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())

	return r
}

func (s *Server) Serve(_ context.Context, host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      otelhttp.NewHandler(router, "liftlog-http"),
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(host, strconv.Itoa(s.config.MetricsPort))
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("liftlog service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() (err error) {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	if s.redisClient != nil {
		if closeErr := s.redisClient.Close(); closeErr != nil {
			err = multierr.Append(err, fmt.Errorf("close redis client: %w", closeErr))
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close()
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	ctx, timeoutCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer timeoutCancel()

	if s.httpServer != nil {
		if shutdownErr := s.httpServer.Shutdown(ctx); shutdownErr != nil {
			err = multierr.Append(err, fmt.Errorf("shutdown http server: %w", shutdownErr))
		}
	}
	if s.metricsHttpServer != nil {
		if shutdownErr := s.metricsHttpServer.Shutdown(ctx); shutdownErr != nil {
			err = multierr.Append(err, fmt.Errorf("shutdown metrics http server: %w", shutdownErr))
		}
	}

	log.Warnln("server shut down")
	return err
}
