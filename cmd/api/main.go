package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"docgrid/internal/config"
	handlers "docgrid/internal/http/handler"
	"docgrid/internal/http/middleware"
	"docgrid/internal/notify"
	"docgrid/internal/otel"
	"docgrid/internal/service"
	"docgrid/internal/session"
	"docgrid/internal/web"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		log.Fatalf("invalid timezone %q: %v", cfg.TimeZone, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Tracing; exporter configuration comes from the OTEL_* environment
	shutdownTracing, err := otel.Init(ctx, loc)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer shutdownTracing(context.Background())

	// Session-scoped catalogs, swept for idleness in the background
	sessions := session.NewManager(session.Config{
		TTL:           time.Duration(cfg.Catalog.SessionTTLSec) * time.Second,
		SweepInterval: time.Duration(cfg.Catalog.SweepIntervalSec) * time.Second,
		MaxSessions:   cfg.Catalog.MaxSessions,
	}, loc)
	go sessions.RunJanitor(ctx)

	// Announcement fan-out; when disabled, toasts simply never arrive
	var hub *notify.Hub
	notifier := notify.Discard
	if cfg.Notify.Enabled {
		hub = notify.NewHub(notify.WithSendBuffer(cfg.Notify.SendBuffer))
		go hub.Run(ctx)
		notifier = hub
	}

	reg := prometheus.NewRegistry()
	promMW, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatalf("failed to initialize metrics: %v", err)
	}
	metrics, err := service.NewMetrics(reg, func() float64 {
		return float64(sessions.Active())
	})
	if err != nil {
		log.Fatalf("failed to initialize metrics: %v", err)
	}

	catSvc := service.NewCatalogService(sessions, notifier, metrics)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		BodyLimit:    cfg.BodyLimitMB * 1024 * 1024,
	})

	// Register global middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.CORSOrigins}))
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// Session cookie resolves each caller to its own catalog
	app.Use(middleware.CatalogSession())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.LoggerWithWriter(os.Stdout, loc))
	app.Use(otelfiber.Middleware())
	app.Use(promMW.Handler())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// Register HTTP routes with injected services
	handlers.RegisterRoutes(app, sessions, catSvc, hub)

	// Embedded demo UI
	app.Get("/", handlers.DemoPage())
	app.Use("/assets", filesystem.New(filesystem.Config{
		Root:       http.FS(web.Static),
		PathPrefix: "static",
	}))

	go func() {
		<-ctx.Done()
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
