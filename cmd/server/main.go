package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/kdduha/pdf-converter/internal/cache"
	"github.com/kdduha/pdf-converter/internal/client"
	"github.com/kdduha/pdf-converter/internal/config"
	"github.com/kdduha/pdf-converter/internal/handler"
	"github.com/kdduha/pdf-converter/internal/metrics"
	"github.com/kdduha/pdf-converter/internal/preflight"
	"github.com/kdduha/pdf-converter/internal/service"
	"github.com/kdduha/pdf-converter/internal/web"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	_ "github.com/kdduha/pdf-converter/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

const maxPreflightPages = 2000

// @title PDF Converter API
// @version 1.0
// @description Gateway in front of the PDF conversion service.
// @BasePath /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := log.Default()

	upstream, err := client.New(cfg.Upstream.URL, &http.Client{Timeout: cfg.Upstream.Timeout})
	if err != nil {
		log.Fatalf("upstream error: %v", err)
	}
	convertService := service.NewConvertService(logger, upstream, preflight.New(maxPreflightPages))

	if cfg.CacheEnable {
		redisCache := cache.NewRedisCache(
			cfg.RedisConfig.Addr,
			cfg.RedisConfig.Password,
			cfg.RedisConfig.DB,
			cfg.RedisConfig.TTL,
		)
		defer redisCache.Close()

		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		if err := redisCache.Ping(pingCtx); err != nil {
			logger.Printf("redis ping failed, cache stays enabled: %v\n", err)
		}
		cancel()

		convertService.SetCacheClient(redisCache)
		logger.Println("set redis as cache")
	}

	artifacts, err := handler.NewArtifactProxy(cfg.Upstream.URL, logger)
	if err != nil {
		log.Fatalf("proxy error: %v", err)
	}
	c := handler.NewConvertHandler(convertService, cfg.Server.MaxUploadSize)

	r := chi.NewRouter()
	r.Use([]func(http.Handler) http.Handler{
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.Throttle(cfg.Server.ThrottleLimit),
		middleware.Timeout(cfg.Server.Timeout),
		metrics.Middleware,
	}...)

	r.Get("/", web.Index)
	r.Handle("/static/*", web.Static(cfg.Web.StaticDir))
	r.Post("/convert", c.Convert)
	r.Handle("/download/*", artifacts)
	r.Handle("/preview_output/*", artifacts)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.Web.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Origin", "Content-Type", "Accept", client.RequestIDHeader},
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: corsHandler.Handler(r),
	}

	go func() {
		logger.Printf("server started :%s, upstream %s\n", cfg.Server.Port, cfg.Upstream.URL)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("listen error: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("server forced to shutdown: %v", err)
	}
	logger.Println("server stopped")
}
