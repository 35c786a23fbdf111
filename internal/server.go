package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/2beens/eragrok/internal/bodycalc"
	"github.com/2beens/eragrok/internal/config"
	"github.com/2beens/eragrok/internal/history"
	"github.com/2beens/eragrok/internal/logbook"
	"github.com/2beens/eragrok/internal/middleware"
	"github.com/2beens/eragrok/internal/program"
	"github.com/2beens/eragrok/internal/schedule"
	"github.com/2beens/eragrok/internal/techniques"
	"github.com/2beens/eragrok/internal/telemetry/metrics"
	"github.com/2beens/eragrok/internal/telemetry/tracing"
	"github.com/2beens/eragrok/internal/userdir"
	"github.com/2beens/eragrok/pkg"
)

const UsersDirName = "users"

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config   *config.Config
	resolver *userdir.Resolver
	catalog  *techniques.Catalog
	drafts   *program.DraftCache

	// nil when program generation is not rate limited
	redisClient *redis.Client

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config

	resolver, err := userdir.NewResolver(filepath.Join(cfg.DataDir, UsersDirName))
	if err != nil {
		return nil, fmt.Errorf("users dir: %w", err)
	}

	drafts := program.NewDraftCache(cfg.DraftCacheSizeMB, cfg.DraftTTL())
	draftsGauge := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "eragrok",
		Subsystem: "programs",
		Name:      "drafts_cached",
		Help:      "The number of program drafts in the cache.",
	}, func() float64 {
		return float64(drafts.Count())
	})

	promRegistry := metrics.SetupPrometheus(draftsGauge)
	metricsManager := metrics.NewManager("eragrok", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	var rdb *redis.Client
	if cfg.RateLimitEnabled() {
		rdb = redis.NewClient(&redis.Options{
			Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
			Password: params.RedisPassword,
			DB:       0, // use default DB
		})
		rdbStatus := rdb.Ping(ctx)
		if err := rdbStatus.Err(); err != nil {
			log.Errorf("--> failed to ping redis: %s", err)
		} else {
			log.Debugf("redis ping: %s", rdbStatus.Val())
		}
	} else {
		log.Debugln("redis not configured, program generation is not rate limited")
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "eragrok", rdb)
	if err != nil {
		return nil, err
	}

	return &Server{
		versionInfo: params.VersionInfo,
		config:      cfg,
		resolver:    resolver,
		catalog:     techniques.Default(),
		drafts:      drafts,
		redisClient: rdb,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteTextResponseOK(w, "I'm OK, thanks ;)")
	}).Methods("GET", "OPTIONS").Name("root")
	r.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteTextResponseOK(w, s.versionInfo)
	}).Methods("GET", "OPTIONS").Name("version")

	techniques.NewHandler(s.catalog).SetupRoutes(r)

	var generateMiddleware []mux.MiddlewareFunc
	if s.redisClient != nil {
		generateMiddleware = append(generateMiddleware, middleware.RateLimit(
			redis_rate.NewLimiter(s.redisClient),
			"programs",
			s.config.ProgramsRateLimitPerMinute,
			s.metricsManager,
		))
	}
	programHandler := program.NewHandler(
		program.NewGenerator(s.catalog),
		program.NewXLSXExporter(s.catalog),
		s.drafts,
		s.metricsManager,
	)
	programHandler.SetupRoutes(r, generateMiddleware...)

	historyStore := history.NewStore(s.resolver, s.metricsManager)
	history.NewHandler(historyStore).SetupRoutes(r)

	scheduleStore := schedule.NewStore(s.resolver, historyStore, s.metricsManager)
	schedule.NewHandler(scheduleStore, s.drafts, s.catalog).SetupRoutes(r)

	logbookStore := logbook.NewStore(s.resolver)
	logbook.NewHandler(logbookStore).SetupRoutes(r)
	bodycalc.NewHandler(logbookStore).SetupRoutes(r)

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "DELETE", "OPTIONS").Name("unknown")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) metricsRouterSetup() *mux.Router {
	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", otelhttp.NewHandler(
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
		"metrics",
	))
	return metricsRouter
}

func (s *Server) Serve(host string, port int) {
	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      s.routerSetup(),
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
	}

	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: s.metricsRouterSetup(),
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
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

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}
}
