package internal

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/2beens/sportai/internal/auth"
	"github.com/2beens/sportai/internal/chat"
	"github.com/2beens/sportai/internal/config"
	"github.com/2beens/sportai/internal/db"
	"github.com/2beens/sportai/internal/health"
	sportaimcp "github.com/2beens/sportai/internal/mcp"
	"github.com/2beens/sportai/internal/middleware"
	"github.com/2beens/sportai/internal/misc"
	"github.com/2beens/sportai/internal/notify"
	"github.com/2beens/sportai/internal/posture"
	"github.com/2beens/sportai/internal/posture/history"
	"github.com/2beens/sportai/internal/posture/render"
	"github.com/2beens/sportai/internal/posture/sensor"
	"github.com/2beens/sportai/internal/telemetry/metrics"
	"github.com/2beens/sportai/internal/telemetry/tracing"
	"github.com/2beens/sportai/internal/users"
	"github.com/2beens/sportai/pkg"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config        *config.Config
	secrets       *config.Secrets
	dbPool        *pgxpool.Pool
	quotesManager *misc.QuotesManager

	redisClient  *redis.Client
	loginChecker *auth.LoginChecker
	authService  *auth.Service

	usersRepo      *users.Repo
	healthRepo     *health.Repo
	notifier       *notify.Notifier
	weeklyReporter *notify.WeeklyReporter

	// posture form monitor
	monitor         *posture.Monitor
	alarmDispatcher *posture.AlarmDispatcher
	overlay         *render.Overlay
	alarmsRepo      *history.Repo

	// nil when no gemini api key is set
	chatService *chat.Service

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config      *config.Config
	Secrets     *config.Secrets
	VersionInfo string
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config
	secrets := params.Secrets
	if secrets == nil {
		secrets = &config.Secrets{}
	}

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         cfg.PostgresUser,
		DBPassword:     secrets.PostgresPassword,
		TracingEnabled: secrets.HoneycombEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": cfg.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("sportai", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: secrets.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(secrets.HoneycombEnabled, secrets.OtelServiceName, rdb)
	if err != nil {
		return nil, err
	}

	mailer := notify.NewMailer(
		cfg.Notify.SMTPHost,
		cfg.Notify.SMTPPort,
		secrets.SMTPUsername,
		secrets.SMTPPassword,
		cfg.Notify.From,
	)
	notifier := notify.NewNotifier(mailer, metricsManager)

	usersRepo := users.NewRepo(dbPool)
	healthRepo := health.NewRepo(dbPool)

	s := &Server{
		config:      cfg,
		secrets:     secrets,
		dbPool:      dbPool,
		versionInfo: params.VersionInfo,

		redisClient:  rdb,
		authService:  auth.NewAuthService(cfg.SessionTTL, rdb),
		loginChecker: auth.NewLoginChecker(cfg.SessionTTL, rdb),

		usersRepo:  usersRepo,
		healthRepo: healthRepo,
		notifier:   notifier,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	if cfg.Notify.WeeklyReportEnabled {
		s.weeklyReporter = notify.NewWeeklyReporter(usersRepo, healthRepo, notifier, cfg.Notify.WeeklyReportInterval)
	}

	if err := s.setupPostureMonitor(); err != nil {
		return nil, fmt.Errorf("setup posture monitor: %w", err)
	}

	if err := s.setupChat(ctx); err != nil {
		return nil, fmt.Errorf("setup chat: %w", err)
	}

	if cfg.QuotesCsvPath != "" {
		s.quotesManager, err = loadQuotes(cfg.QuotesCsvPath)
		if err != nil {
			log.Errorf("failed to load quotes: %s", err)
		}
	}

	return s, nil
}

func loadQuotes(path string) (*misc.QuotesManager, error) {
	quotesCsvFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open quotes file: %w", err)
	}
	defer func() {
		if err := quotesCsvFile.Close(); err != nil {
			log.Warnf("close quotes csv file: %s", err)
		}
	}()

	return misc.NewQuotesManager(csv.NewReader(quotesCsvFile))
}

func newSensor(cfg config.PostureConfig) (posture.Sensor, error) {
	switch cfg.SensorType {
	case "file":
		if cfg.SensorFile == "" {
			return nil, errors.New("sensor file not set")
		}
		return sensor.NewFileSensor(cfg.SensorFile, cfg.SensorFPS), nil
	case "websocket":
		if cfg.SensorURL == "" {
			return nil, errors.New("sensor url not set")
		}
		return sensor.NewWebsocketSensor(cfg.SensorURL, nil), nil
	default:
		return nil, fmt.Errorf("unknown sensor type: %s", cfg.SensorType)
	}
}

func newAlarmPlayer(cfg config.PostureConfig) (posture.Player, error) {
	if len(cfg.AlarmCommand) == 0 {
		log.Warnln("alarm command not set, alarms will only be logged")
		return posture.LogPlayer{}, nil
	}
	return posture.NewCommandPlayer(cfg.AlarmCommand, cfg.AlarmSoundPath, cfg.AlarmTimeout)
}

func (s *Server) setupPostureMonitor() error {
	postureCfg := s.config.Posture

	mode, err := posture.ParseMode(postureCfg.DefaultMode)
	if err != nil {
		return err
	}

	frameSensor, err := newSensor(postureCfg)
	if err != nil {
		return err
	}

	player, err := newAlarmPlayer(postureCfg)
	if err != nil {
		return err
	}

	s.alarmsRepo = history.NewRepo(s.dbPool)
	s.alarmDispatcher = posture.NewAlarmDispatcher(
		player,
		history.NewRecorder(s.alarmsRepo),
		postureCfg.AlarmQueueSize,
		s.metricsManager,
	)
	s.overlay = render.NewOverlay(0)
	s.monitor = posture.NewMonitor(frameSensor, s.alarmDispatcher, mode, s.metricsManager, s.overlay)

	return nil
}

func (s *Server) setupChat(ctx context.Context) error {
	chatCfg := s.config.Chat
	if s.secrets.GeminiAPIKey == "" {
		log.Warnln("gemini api key not set, athlete chat disabled")
		return nil
	}

	gemini, err := chat.NewGeminiClient(ctx, chat.GeminiConfig{
		APIKey:            s.secrets.GeminiAPIKey,
		GenerationModel:   chatCfg.GenerationModel,
		EmbeddingModel:    chatCfg.EmbeddingModel,
		RequestsPerMinute: chatCfg.RequestsPerMinute,
	}, s.metricsManager)
	if err != nil {
		return err
	}

	s.chatService, err = chat.NewService(
		gemini,
		chat.NewSessionStore(s.redisClient, chatCfg.SessionTTL),
		chat.NewEmbeddingCache(chatCfg.EmbeddingCacheSizeMB, int(chatCfg.SessionTTL.Seconds())),
		chat.ServiceOptions{
			ChunkSize:    chatCfg.ChunkSize,
			ChunkOverlap: chatCfg.ChunkOverlap,
			TopK:         chatCfg.RetrievedChunksLimit,
		},
		s.metricsManager,
	)
	if err != nil {
		return fmt.Errorf("create chat service: %w", err)
	}
	return nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	miscHandler := misc.NewHandler(s.quotesManager, s.versionInfo)
	miscHandler.SetupRoutes(r)

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	usersHandler := users.NewHandler(
		users.NewService(s.usersRepo, s.authService, s.notifier),
		s.loginChecker,
	)
	usersHandler.SetupRoutes(r, middleware.RateLimit(
		reqRateLimiter,
		"login",
		s.config.LoginRateLimitAllowedPerMin,
		s.metricsManager,
	))

	healthHandler := health.NewHandler(s.healthRepo)
	healthHandler.SetupRoutes(r)

	postureHandler := posture.NewHandler(s.monitor, s.overlay)
	postureHandler.SetupRoutes(r)

	alarmsHandler := history.NewHandler(s.alarmsRepo)
	alarmsHandler.SetupRoutes(r)

	if s.chatService != nil {
		chatHandler := chat.NewHandler(s.chatService)
		chatHandler.SetupRoutes(r)
	}

	mcpService := sportaimcp.NewContextService(
		sportaimcp.NewPoolSchemaRepo(s.dbPool),
		s.healthRepo,
		s.alarmsRepo,
		s.monitor,
	)
	r.Handle("/mcp", sportaimcp.NewHTTPHandler(mcpService)).
		Methods("GET", "POST", "DELETE", "OPTIONS").Name("mcp")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.loginChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.LimitAndDrainRequest(middleware.DefaultMaxRequestBodySize))

	return r, nil
}

func (s *Server) Serve(ctx context.Context, host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.InstrumentMetricHandler(
		s.promRegistry,
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{Registry: s.promRegistry}),
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
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

	go s.runSessionsCleanup(ctx)

	if s.weeklyReporter != nil {
		go s.weeklyReporter.Run(ctx)
	}

	if s.chatService != nil {
		go s.indexAthleteData(ctx)
	}

	if s.config.Posture.AutoStart {
		if err := s.monitor.Start(ctx); err != nil {
			log.Errorf("failed to auto start posture monitor: %s", err)
		}
	}

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) runSessionsCleanup(ctx context.Context) {
	ticker := time.NewTicker(s.config.SessionsCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.authService.ScanAndClean(ctx)
		}
	}
}

func (s *Server) indexAthleteData(ctx context.Context) {
	path := s.config.Chat.AthleteDataPath
	if path == "" {
		log.Warnln("athlete data path not set, chat will answer without context")
		return
	}

	exists, err := pkg.PathExists(path, false)
	if err != nil || !exists {
		log.Warnf("athlete data file [%s] not available, chat will answer without context: %v", path, err)
		return
	}

	chunks, err := s.chatService.LoadAthleteData(ctx, path)
	if err != nil {
		log.Errorf("failed to index athlete data: %s", err)
		return
	}
	log.Infof("athlete data indexed, chunks: %d", chunks)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	if s.monitor != nil {
		s.monitor.Stop()
		log.Debugln("posture monitor stopped")
	}
	if s.alarmDispatcher != nil {
		s.alarmDispatcher.Close()
		log.Debugln("alarm dispatcher closed")
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

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

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
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
