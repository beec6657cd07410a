// launching the server, bot, compositor, cache and cleanup worker
package appServer

import (
	"context"
	"crypto/tls"
	"log"

	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"menubot/config"
	"menubot/internal/bot"
	"menubot/internal/database"
	"menubot/internal/parser"
	"menubot/internal/pkg/cache"
	"menubot/internal/pkg/compositor"
	"menubot/internal/pkg/kafka"
	"menubot/internal/pkg/storage"
	"menubot/internal/service"
	"menubot/internal/transport"
	"menubot/internal/worker"
)

type Server struct {
	httpServer *http.Server
}

func (s *Server) Run(cfg *config.Config, handler http.Handler) error {
	s.httpServer = &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		MaxHeaderBytes:    1 << 20,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       cfg.Server.Idle_timeout,
		ReadHeaderTimeout: 3 * time.Second,
		TLSConfig:         &tls.Config{MinVersion: tls.VersionTLS12},           // ban on outdate TLS certificate
		ErrorLog:          log.New(os.Stderr, "SERVER ERROR: ", log.LstdFlags), // os.Stderr can be replaced with ElsasticSearch in the feature
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func NewServer(cfg *config.Config) {

	logrus.SetFormatter(new(logrus.JSONFormatter))

	// Шаблон, зоны и шрифты загружаются один раз, ошибки фатальны
	tpl, err := compositor.LoadTemplate(cfg.Template.Image, cfg.Template.Width, cfg.Template.Height)
	if err != nil {
		logrus.Fatalf("template load failed: %s", err.Error())
	}

	zoneConfigs, err := config.LoadZones()
	if err != nil {
		logrus.Fatalf("zones load failed: %s", err.Error())
	}

	zones, err := compositor.ZonesFromConfig(zoneConfigs)
	if err != nil {
		logrus.Fatalf("zones config invalid: %s", err.Error())
	}

	faces, err := compositor.LoadFaces(cfg.Fonts)
	if err != nil {
		logrus.Fatalf("fonts load failed: %s", err.Error())
	}

	comp := compositor.New(tpl, zones, faces, cfg.Layout.LineSpacing)
	if err := comp.Validate(); err != nil {
		logrus.Fatalf("zone validation failed: %s", err.Error())
	}

	fileStorage := storage.NewFileStorage(cfg.App.StoragePath)
	renderRepo := database.NewRenderRepository(fileStorage)

	renderCache := cache.NewNoopRenderCache()
	if cfg.Redis.Enabled {
		redisCache, err := cache.NewRenderCache(cache.NewRedisClient(&cfg.Redis), cfg.App.CacheTTL)
		if err != nil {
			logrus.Warnf("Redis unavailable, render cache disabled: %s", err.Error())
		} else {
			renderCache = redisCache
			logrus.Info("Successfully connected to Redis")
		}
	}

	producer := kafka.NewMockProducer()
	if cfg.Kafka.Enabled {
		producer = kafka.NewProducer(config.GetEnv("KAFKA_BROKERS", cfg.Kafka.Brokers), cfg.Kafka.Topic)
	}
	defer producer.Close()

	menuParser := parser.NewMenuParser(cfg.Menu.Days, cfg.Menu.MaxDishesPerDay)
	renderService := service.NewRenderService(cfg, menuParser, comp, renderRepo, renderCache, producer)
	renderHandler := transport.NewRenderHandler(renderService)

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := new(Server)
	go func() {
		if err := srv.Run(cfg, transport.InitRoutes(renderHandler, int(cfg.Server.Timeout.Seconds()))); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("error occured while running http server: %s", err.Error())
		}
	}()

	if cfg.Telegram.Enabled {
		token := cfg.GetBotToken()
		if token == "" {
			logrus.Fatalf("bot token is not set in environment variable %s", cfg.Telegram.TokenEnv)
		}
		tgBot, err := bot.NewBot(token, renderService)
		if err != nil {
			logrus.Fatalf("telegram bot init failed: %s", err.Error())
		}
		go tgBot.Run(ctx)
	}

	cleanupWorker := worker.NewRenderCleanupWorker(renderService, cfg.Worker.CleanupInterval, cfg.Worker.Retention)
	go cleanupWorker.Start(ctx)

	logrus.Print("App Started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logrus.Print("App Shutting Down")
	cancel()

	if err := srv.Shutdown(context.Background()); err != nil {
		logrus.Errorf("error occured on server shutting down: %s", err.Error())
	}
}
