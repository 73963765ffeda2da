package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/devdocs/internal/catalog"
	"github.com/MrSnakeDoc/devdocs/internal/config"
	"github.com/MrSnakeDoc/devdocs/internal/content"
	"github.com/MrSnakeDoc/devdocs/internal/httpserver"
	"github.com/MrSnakeDoc/devdocs/internal/httpserver/deps"
	"github.com/MrSnakeDoc/devdocs/internal/logger"
	"github.com/MrSnakeDoc/devdocs/internal/metrics"
	"github.com/MrSnakeDoc/devdocs/internal/redis"
	"github.com/MrSnakeDoc/devdocs/internal/routing"
	"github.com/MrSnakeDoc/devdocs/internal/scheduler"
	"github.com/MrSnakeDoc/devdocs/internal/session"
	redisstore "github.com/MrSnakeDoc/devdocs/internal/store/redis"
	"github.com/MrSnakeDoc/devdocs/internal/usage"
	"github.com/MrSnakeDoc/devdocs/internal/utils"
	"github.com/MrSnakeDoc/devdocs/internal/version"
	"github.com/MrSnakeDoc/devdocs/internal/web"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	gc          *scheduler.GarbageCollector
}

// New loads configuration and content, connects the session store and
// builds the server. Nothing is served until Run.
func New(ctx context.Context) (*App, error) {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)
	loggerClient.Debugf("config: %+v", cfg.Redacted())

	lib, err := content.LoadEmbedded()
	if err != nil {
		return nil, fmt.Errorf("load articles: %w", err)
	}
	if err := Check(routing.Site, catalog.Default, lib); err != nil {
		return nil, fmt.Errorf("site check: %w", err)
	}
	loggerClient.Info("articles loaded", logger.Int("count", lib.Len()))

	renderer, err := web.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	var (
		store       session.Store
		sweeper     session.Sweeper
		counter     usage.Counter
		redisClient *goredis.Client
	)
	if cfg.RedisEnabled() {
		loggerClient.Info("connecting to Redis", logger.String("addr", cfg.RedisAddr))
		redisClient, err = redis.New(ctx, redis.ConnectOptions{
			Addr:           cfg.RedisAddr,
			User:           cfg.RedisUser,
			Password:       cfg.RedisPassword,
			DB:             cfg.RedisDB,
			DialTimeout:    cfg.RedisDT,
			ReadTimeout:    cfg.RedisRT,
			WriteTimeout:   cfg.RedisWT,
			PoolSize:       cfg.RedisPoolSize,
			ConnectTimeout: cfg.RedisConnectTimeout,
			RetryInterval:  cfg.RedisRetryInterval,
			MaxWait:        cfg.RedisMaxWait,
			PingTimeout:    cfg.RedisPingTimeout,
			WarnThreshold:  cfg.RedisWarnThreshold,
		}, loggerClient)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		rs := redisstore.NewStore(redisClient)
		store, sweeper, counter = rs, rs, rs
	} else {
		loggerClient.Info("DEVDOCS_REDIS_ADDR not set, sessions are kept in memory")
		ms := session.NewMemoryStore(nil)
		store, sweeper, counter = ms, ms, usage.NewMemoryCounter()
	}

	hashKey := []byte(cfg.SessionHashKey)
	if len(hashKey) == 0 {
		loggerClient.Warn("dev mode: using an ephemeral session key, sessions end on restart")
		hashKey = session.GenerateKey()
	}
	sessions, err := session.NewManager(session.Config{
		CookieName:   cfg.SessionCookieName,
		HashKey:      hashKey,
		BlockKey:     []byte(cfg.SessionBlockKey),
		CookieSecure: cfg.SessionSecure,
		TTL:          cfg.SessionTTL,
	}, store)
	if err != nil {
		closeRedis(redisClient, loggerClient)
		return nil, fmt.Errorf("session manager: %w", err)
	}

	m := metrics.New(version.Version, version.GoVersion)
	gc := scheduler.NewGarbageCollector(sweeper, loggerClient, cfg.SessionGCInterval, m.ObserveSweep)

	d := deps.Deps{
		Logger:            loggerClient,
		StartTime:         time.Now(),
		Version:           version.Version,
		Commit:            version.Commit,
		BuildDate:         version.BuildDate,
		GoVersion:         version.GoVersion,
		TimeNow:           time.Now,
		SiteTitle:         cfg.SiteTitle,
		AllowedHosts:      cfg.AllowedHosts,
		AllowedCIDRS:      cfg.AllowedCIDRS,
		TrustProxy:        cfg.TrustProxy,
		LoginBurst:        cfg.LoginBurst,
		LoginRefillPerMin: cfg.LoginRefillPerMin,
		Routes:            routing.Site,
		Catalog:           catalog.Default,
		Library:           lib,
		Renderer:          renderer,
		Sessions:          sessions,
		Usage:             counter,
		Metrics:           m,
	}

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      httpserver.New(cfg, loggerClient, d),
		redisClient: redisClient,
		gc:          gc,
	}, nil
}

// Run serves until SIGINT/SIGTERM, then shuts down within
// DEVDOCS_SHUTDOWN_TIMEOUT.
func (a *App) Run() error {
	defer func() { _ = a.logger.Sync() }()

	a.logger.Infof("🚀 Starting %s on %s", version.String(), a.cfg.ListenPort)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.gc.Start(ctx); err != nil {
		return fmt.Errorf("failed to start session sweeper: %w", err)
	}
	a.logger.Info("session sweeper started",
		logger.Duration("interval", a.cfg.SessionGCInterval))

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case runErr = <-errCh:
	}

	a.gc.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil && runErr == nil {
		runErr = fmt.Errorf("failed to stop server: %w", err)
	}

	closeRedis(a.redisClient, a.logger)

	if runErr == nil {
		a.logger.Info("✅ devdocs stopped cleanly")
	}
	return runErr
}

func closeRedis(c *goredis.Client, log logger.Logger) {
	if c != nil {
		utils.CloseLogged(c, "redis", log)
	}
}
