package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"resumelens/web/internal/analyzer"
	"resumelens/web/internal/config"
	"resumelens/web/internal/handlers"
	"resumelens/web/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize the analyzer backend client
	client := analyzer.NewClient(cfg.Analyzer.BaseURL, cfg.Analyzer.RequestTimeout)
	log.Printf("✅ Analyzer client initialized (%s)\n", cfg.Analyzer.BaseURL)

	// Initialize session store
	sessionStore := services.NewSessionStore(cfg.Session.TTL, cfg.Session.SweepInterval)
	sessionStore.Start()

	// Initialize services
	intakeService := services.NewIntakeService(cfg.Intake.MaxFileSize)
	analysisService := services.NewAnalysisService(client)
	matcherService := services.NewMatcherService(client, cfg.Matcher.TopN)
	detectorService := services.NewDetectorService(client)
	log.Println("✅ Services initialized successfully")

	// Initialize handlers
	uploadHandler := handlers.NewUploadHandler(client, intakeService, cfg.Analyzer.DefaultModel)
	libraryHandler := handlers.NewLibraryHandler(client, analysisService)
	analysisHandler := handlers.NewAnalysisHandler(analysisService)
	matcherHandler := handlers.NewMatcherHandler(matcherService, intakeService)
	detectorHandler := handlers.NewDetectorHandler(detectorService, intakeService)
	sessionHandler := handlers.NewSessionHandler()
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Resume Lens Web",
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		BodyLimit:    int(cfg.Intake.MaxFileSize) + 1<<20,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:3001",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: true,
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Use(handlers.SessionMiddleware(sessionStore))

	// Session / view switcher
	api.Get("/session", sessionHandler.HandleGet)
	api.Put("/session/view", sessionHandler.HandleSwitchView)

	// Upload screen
	api.Post("/resumes/upload", uploadHandler.HandleUpload)

	// Manage screen
	api.Get("/resumes", libraryHandler.HandleList)
	api.Post("/resumes/search", libraryHandler.HandleSearch)
	api.Post("/resumes/compare", libraryHandler.HandleCompare)
	api.Post("/resumes/:id/select", libraryHandler.HandleToggleSelect)
	api.Post("/resumes/:id/expand", libraryHandler.HandleToggleExpand)
	api.Get("/resumes/:id/questions", libraryHandler.HandleQuestions)
	api.Post("/feedback", libraryHandler.HandleFeedback)
	api.Get("/feedback/stats", libraryHandler.HandleFeedbackStats)

	// Job description screen
	api.Post("/analysis", analysisHandler.HandleAnalyze)

	// Job matcher screen
	api.Post("/matcher/upload", matcherHandler.HandleMatchUpload)
	api.Post("/matcher/text", matcherHandler.HandleMatchText)

	// Fake detector screen
	api.Post("/detector", detectorHandler.HandleDetect)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Resume Lens Web",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/resumes/upload",
				"GET /api/v1/resumes",
				"POST /api/v1/resumes/compare",
				"POST /api/v1/analysis",
				"POST /api/v1/matcher/upload",
				"POST /api/v1/matcher/text",
				"POST /api/v1/detector",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		sessionStore.Stop()
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)
	log.Printf("🔗 Analyzer backend: %s\n", cfg.Analyzer.BaseURL)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
