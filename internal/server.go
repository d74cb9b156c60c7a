package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/2beens/gymcoach/internal/config"
	"github.com/2beens/gymcoach/internal/db"
	"github.com/2beens/gymcoach/internal/gymstats/events"
	"github.com/2beens/gymcoach/internal/gymstats/exercises"
	coachmcp "github.com/2beens/gymcoach/internal/mcp"
	"github.com/2beens/gymcoach/internal/middleware"
	"github.com/2beens/gymcoach/internal/nutrition"
	"github.com/2beens/gymcoach/internal/programs"
	"github.com/2beens/gymcoach/internal/telemetry/metrics"
	"github.com/2beens/gymcoach/internal/telemetry/tracing"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config      *config.Config
	dbPool      *pgxpool.Pool
	redisClient *redis.Client
	mongoClient *mongo.Client
	rateLimiter middleware.RequestRateLimiter

	eventsService    *events.Service
	analyzer         *exercises.Analyzer
	nutritionManager *nutrition.Manager
	profileRepo      *nutrition.ProfileRepo
	programsRepo     *programs.Repo
	mcpServer        *mcp.Server

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	RedisPassword           string
	MongoURI                string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config

	loc, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("load location: %w", err)
	}
	cacheTTL, err := cfg.CacheTTL()
	if err != nil {
		return nil, fmt.Errorf("analyzer cache ttl: %w", err)
	}

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	} else if err := db.ApplySchema(ctx, dbPool); err != nil {
		return nil, err
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": cfg.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("gymcoach", "service", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})
	if params.HoneycombTracingEnabled {
		rdb.AddHook(redisotel.NewTracingHook())
	}

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "gymcoach-service")
	if err != nil {
		return nil, err
	}

	s := &Server{
		config:      cfg,
		dbPool:      dbPool,
		redisClient: rdb,
		rateLimiter: redis_rate.NewLimiter(rdb),
		versionInfo: params.VersionInfo,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	remoteStore, err := s.remotePlanStore(ctx, params.MongoURI)
	if err != nil {
		return nil, err
	}

	s.nutritionManager = nutrition.NewManager(nutrition.ManagerParams{
		LocalStore:     nutrition.NewRedisPlanStore(rdb),
		RemoteStore:    remoteStore,
		MetricsManager: metricsManager,
	})
	if err := s.nutritionManager.Init(ctx); err != nil {
		// the service still works, the first created plan becomes current
		log.Errorf("init nutrition manager: %s", err)
	}

	s.profileRepo = nutrition.NewProfileRepo(dbPool)
	s.programsRepo = programs.NewRepo(dbPool)
	s.eventsService = events.NewService(events.NewRepo(dbPool), loc, metricsManager)
	s.analyzer = exercises.NewAnalyzer(exercises.AnalyzerParams{
		Repo:           exercises.NewRepo(dbPool),
		Location:       loc,
		CacheSizeMB:    cfg.AnalyzerCacheSizeMB,
		CacheTTL:       cacheTTL,
		MetricsManager: metricsManager,
	})
	s.mcpServer = coachmcp.NewServer(coachmcp.NewContextService(coachmcp.ContextServiceParams{
		Schema:      coachmcp.NewPoolSchemaRepo(dbPool),
		Weight:      s.eventsService,
		Analyzer:    s.analyzer,
		Nutrition:   s.nutritionManager,
		ProgramRepo: s.programsRepo,
	}))

	return s, nil
}

func (s *Server) remotePlanStore(ctx context.Context, mongoURI string) (nutrition.RemotePlanStore, error) {
	if s.config.RemoteStore != config.RemoteStoreMongo {
		log.Debugln("using postgres as remote diet plan store")
		return nutrition.NewPsqlPlanStore(s.dbPool), nil
	}

	if mongoURI == "" {
		return nil, errors.New("remote store is mongo, but mongo uri is not set")
	}
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}
	s.mongoClient = client

	store := nutrition.NewMongoPlanStore(client.Database(s.config.MongoDBName))
	if err := store.EnsureIndexes(ctx); err != nil {
		log.Warnf("mongo diet plan store: %s", err)
	}
	log.Debugf("using mongo db [%s] as remote diet plan store", s.config.MongoDBName)
	return store, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("gymcoach-router"))

	writeRateLimit := middleware.RateLimit(
		s.rateLimiter,
		"write",
		s.config.WriteRateLimitAllowedPerMin,
		s.metricsManager,
	)
	limited := func(h http.HandlerFunc) http.Handler {
		return writeRateLimit(h)
	}

	nutritionHandler := nutrition.NewHandler(s.nutritionManager, s.profileRepo)
	r.HandleFunc("/nutrition/tdee", nutritionHandler.HandleEstimateTDEE).Methods("POST", "OPTIONS").Name("estimate-tdee")
	r.Handle("/nutrition/plan", limited(nutritionHandler.HandleCreatePlan)).Methods("POST", "OPTIONS").Name("create-plan")
	r.HandleFunc("/nutrition/plan", nutritionHandler.HandleGetPlan).Methods("GET", "OPTIONS").Name("get-plan")
	r.HandleFunc("/nutrition/target", nutritionHandler.HandleDailyTarget).Methods("GET", "OPTIONS").Name("daily-target")
	r.Handle("/nutrition/profile", limited(nutritionHandler.HandleUpsertProfile)).Methods("POST", "OPTIONS").Name("upsert-profile")

	eventsHandler := events.NewHandler(s.eventsService)
	r.Handle("/gymstats/events/report/weight", limited(eventsHandler.HandleAddWeightReport)).Methods("POST", "OPTIONS").Name("weight-report")
	r.HandleFunc("/gymstats/weight/trend", eventsHandler.HandleGetWeightTrend).Methods("GET", "OPTIONS").Name("weight-trend")
	r.HandleFunc("/gymstats/weight/trend", eventsHandler.HandlePostWeightTrend).Methods("POST", "OPTIONS").Name("weight-trend-calc")

	exercisesHandler := exercises.NewHandler(s.analyzer)
	r.Handle("/gymstats/sessions", limited(exercisesHandler.HandleAddSession)).Methods("POST", "OPTIONS").Name("add-session")
	r.Handle("/gymstats/exercises/templates", limited(exercisesHandler.HandleUpsertTemplate)).Methods("POST", "OPTIONS").Name("upsert-exercise-template")
	r.HandleFunc("/gymstats/exercises/templates/{templateId}", exercisesHandler.HandleGetTemplate).Methods("GET", "OPTIONS").Name("get-exercise-template")
	r.HandleFunc("/gymstats/exercises/{templateId}/onerm", exercisesHandler.HandleOneRM).Methods("GET", "OPTIONS").Name("onerm")
	r.HandleFunc("/gymstats/muscles/sets", exercisesHandler.HandleMuscleSets).Methods("GET", "OPTIONS").Name("muscle-sets")

	programsHandler := programs.NewHandler(s.programsRepo, s.metricsManager)
	r.HandleFunc("/programs/recommend", programsHandler.HandleRecommend).Methods("POST", "OPTIONS").Name("recommend-program")
	r.Handle("/programs/templates", limited(programsHandler.HandleUpsertTemplate)).Methods("POST", "OPTIONS").Name("upsert-program")
	r.HandleFunc("/programs/templates", programsHandler.HandleListTemplates).Methods("GET", "OPTIONS").Name("list-programs")
	r.HandleFunc("/programs/templates/{id}", programsHandler.HandleGetTemplate).Methods("GET", "OPTIONS").Name("get-program")

	r.HandleFunc("/version", s.handleVersion).Methods("GET", "OPTIONS").Name("version")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(middleware.LimitAndDrainBody(middleware.DefaultMaxBodyBytes))

	return r
}

func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	version := s.versionInfo
	if version == "" {
		version = "unknown"
	}
	_, _ = w.Write([]byte(version))
}

func (s *Server) Serve(host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", otelhttp.NewHandler(
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
		"metrics",
	))
	// internal port only, MCP clients are not browser origins
	if s.mcpServer != nil {
		metricsRouter.Handle("/mcp", coachmcp.NewHTTPHandler(s.mcpServer))
	}
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:              metricsAddr,
		Handler:           metricsRouter,
		ReadHeaderTimeout: 10 * time.Second,
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

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.mongoClient != nil {
		if err := s.mongoClient.Disconnect(ctx); err != nil {
			log.Errorf("failed to disconnect mongo client: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
