// Package router provides HTTP routing, middleware configuration, and server setup for the booking API
package router

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/compress"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/helmet"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/stagedoor/stagedoor/app/dto"
	"github.com/stagedoor/stagedoor/app/handlers"
	"github.com/stagedoor/stagedoor/app/middleware"
	"github.com/stagedoor/stagedoor/utils"
)

// Router interface for HTTP routing
type Router interface {
	SetupRoutes()
	Start(address string) error
	GetApp() *fiber.App
}

// FiberRouter implements Router using Fiber v3
type FiberRouter struct {
	app           *fiber.App
	db            *gorm.DB
	venueHandler  *handlers.VenueHandler
	artistHandler *handlers.ArtistHandler
	showHandler   *handlers.ShowHandler
}

// NewFiberRouter creates a new Fiber router
func NewFiberRouter(db *gorm.DB, venueHandler *handlers.VenueHandler, artistHandler *handlers.ArtistHandler, showHandler *handlers.ShowHandler) Router {
	app := fiber.New(fiber.Config{
		AppName:      "Stagedoor API",
		ServerHeader: "Stagedoor",
		ErrorHandler: errorHandler,
		BodyLimit:    4 * 1024 * 1024,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
	})

	return &FiberRouter{
		app:           app,
		db:            db,
		venueHandler:  venueHandler,
		artistHandler: artistHandler,
		showHandler:   showHandler,
	}
}

// SetupRoutes configures all application routes
func (r *FiberRouter) SetupRoutes() {
	r.setupMiddleware()

	r.app.Get("/health", r.healthCheck)
	r.app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Home page doubles as the venue index; the venue delete redirect
	// lands here
	r.app.Get("/", r.venueHandler.List)

	venues := r.app.Group("/venues")
	venues.Get("/", r.venueHandler.List)
	venues.Get("/create", r.venueHandler.CreateForm)
	venues.Post("/create", r.venueHandler.Create)
	venues.Post("/search", r.venueHandler.Search)
	venues.Get("/:id", r.venueHandler.Get)
	venues.Delete("/:id", r.venueHandler.Delete)
	venues.Get("/:id/edit", r.venueHandler.EditForm)
	venues.Post("/:id/edit", r.venueHandler.Edit)

	artists := r.app.Group("/artists")
	artists.Get("/", r.artistHandler.List)
	artists.Get("/create", r.artistHandler.CreateForm)
	artists.Post("/create", r.artistHandler.Create)
	artists.Post("/search", r.artistHandler.Search)
	artists.Get("/:id", r.artistHandler.Get)
	artists.Get("/:id/edit", r.artistHandler.EditForm)
	artists.Post("/:id/edit", r.artistHandler.Edit)

	shows := r.app.Group("/shows")
	shows.Get("/", r.showHandler.List)
	shows.Get("/create", r.showHandler.CreateForm)
	shows.Post("/create", r.showHandler.Create)
	shows.Get("/:id", r.showHandler.Get)

	r.app.Use(r.notFoundHandler)
}

// setupMiddleware configures global middleware
func (r *FiberRouter) setupMiddleware() {
	// Request ID middleware comes first so every later stage can tag
	// its output
	r.app.Use(requestid.New(requestid.Config{
		Header: "X-Request-ID",
		Generator: func() string {
			return uuid.New().String()
		},
	}))

	r.app.Use(helmet.New(helmet.Config{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}))

	r.app.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"X-Requested-With",
			"X-Request-ID",
		},
		ExposeHeaders: []string{"X-Request-ID"},
	}))

	r.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	r.app.Use(limiter.New(limiter.Config{
		Max:        2000,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.APIResponse{
				Success: false,
				Message: "Too many requests. Please try again later.",
				Error: &dto.ErrorDetail{
					Code: "RATE_LIMIT_EXCEEDED",
				},
			})
		},
		Next: func(c fiber.Ctx) bool {
			return c.Path() == "/health" || c.Path() == "/metrics"
		},
	}))

	r.app.Use(logger.New(logger.Config{
		Format:     `{"time":"${time}","pid":"${pid}","request_id":"${locals:requestid}","level":"info","method":"${method}","path":"${path}","ip":"${ip}","user_agent":"${ua}","status":${status},"latency":"${latency}","bytes_in":${bytesReceived},"bytes_out":${bytesSent}}` + "\n",
		TimeFormat: time.RFC3339,
		TimeZone:   "UTC",
		Next: func(c fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))

	r.app.Use(middleware.Metrics())

	r.app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c fiber.Ctx, e interface{}) {
			log.Printf(`{"time":"%s","level":"error","request_id":"%s","event":"panic","error":"%v","path":"%s","method":"%s","ip":"%s"}`,
				utils.UTCNow().Format(time.RFC3339),
				c.Locals("requestid"),
				e,
				c.Path(),
				c.Method(),
				c.IP(),
			)
		},
	}))
}

// Start starts the HTTP server
func (r *FiberRouter) Start(address string) error {
	log.Printf("Starting server on %s", address)
	return r.app.Listen(address)
}

// GetApp returns the Fiber app instance
func (r *FiberRouter) GetApp() *fiber.App {
	return r.app
}

// Health check endpoint; reports database reachability
func (r *FiberRouter) healthCheck(c fiber.Ctx) error {
	dbStatus := "ok"
	if r.db != nil {
		if sqlDB, err := r.db.DB(); err != nil {
			dbStatus = "error"
		} else if err := sqlDB.Ping(); err != nil {
			dbStatus = "error"
		}
	}

	status := fiber.StatusOK
	if dbStatus != "ok" {
		status = fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(dto.APIResponse{
		Success: dbStatus == "ok",
		Message: "Service is healthy",
		Data: fiber.Map{
			"status":    dbStatus,
			"timestamp": utils.UTCNow().Unix(),
			"service":   "stagedoor-api",
		},
	})
}

// Not found handler
func (r *FiberRouter) notFoundHandler(c fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.APIResponse{
		Success: false,
		Message: "The requested resource was not found",
		Error: &dto.ErrorDetail{
			Code: "NOT_FOUND",
			Details: fiber.Map{
				"path":       c.Path(),
				"method":     c.Method(),
				"request_id": c.Locals("requestid"),
			},
		},
	})
}

// Global error handler
func errorHandler(c fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	log.Printf("Error %d: %v", code, err)

	return c.Status(code).JSON(dto.APIResponse{
		Success: false,
		Message: "An internal server error occurred",
		Error: &dto.ErrorDetail{
			Code: "INTERNAL_ERROR",
			Details: fiber.Map{
				"timestamp":  utils.UTCNow().Unix(),
				"request_id": c.Locals("requestid"),
			},
		},
	})
}
