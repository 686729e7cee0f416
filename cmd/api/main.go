package main

import (
	"context"
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

	"github.com/VeerendraInfoshare/JobFit-AI-Resume-Matching-Tool/internal/config"
	"github.com/VeerendraInfoshare/JobFit-AI-Resume-Matching-Tool/internal/handlers"
	"github.com/VeerendraInfoshare/JobFit-AI-Resume-Matching-Tool/internal/repositories"
	"github.com/VeerendraInfoshare/JobFit-AI-Resume-Matching-Tool/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	docRepo := repositories.NewDocumentRepository(db)
	submissionRepo := repositories.NewSubmissionRepository(db)
	screeningRepo := repositories.NewScreeningRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	docParser := services.NewDocumentParserService()
	log.Println("✅ Services initialized successfully")

	// Initialize Gemini AI
	geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Println("✅ Gemini AI initialized successfully")

	// Initialize candidate index
	candidateIndex, err := services.NewCandidateIndexService(
		cfg.Qdrant.URL,
		cfg.Qdrant.APIKey,
		cfg.Qdrant.Collection,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant: %v", err)
	}

	if err := candidateIndex.InitCollection(); err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant collection: %v", err)
	}
	log.Println("✅ Qdrant initialized successfully")

	// Initialize extraction pipeline
	generator := services.NewRetryingGenerator(geminiService, cfg.Worker.RetryMaxAttempts)
	extractor := services.NewFieldExtractor(generator)
	fresherRule := services.NewFresherRule(cfg.Screening.GraduationYears...)
	assembler := services.NewCandidateAssembler(extractor, fresherRule)

	// Initialize screener
	screenerService := services.NewScreenerService(
		screeningRepo,
		docRepo,
		submissionRepo,
		docParser,
		assembler,
		geminiService,
		candidateIndex,
	)
	log.Println("✅ Screener service initialized")

	// Initialize worker
	worker := services.NewWorker(
		screeningRepo,
		screenerService,
		cfg.Worker.Concurrency,
	)
	log.Println("✅ Worker initialized successfully")

	// Start worker
	ctx := context.Background()
	worker.Start(ctx)
	log.Println("✅ Worker started successfully")

	// Initialize Handlers
	uploadHandler := handlers.NewUploadHandler(
		docRepo,
		storageService,
		cfg.Storage.MaxFileSize,
	)
	submissionHandler := handlers.NewSubmissionHandler(
		submissionRepo,
		docRepo,
		storageService,
	)
	screeningHandler := handlers.NewScreeningHandler(
		screeningRepo,
		docRepo,
		submissionRepo,
		worker,
	)
	resultHandler := handlers.NewResultHandler(screeningRepo)
	searchHandler := handlers.NewSearchHandler(geminiService, candidateIndex)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "JobFit Resume Screening API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
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

	// API endpoints
	api.Post("/upload", uploadHandler.HandleUpload)
	api.Post("/submissions", submissionHandler.HandleSubmit)
	api.Get("/submissions", submissionHandler.HandleList)
	api.Post("/screenings", screeningHandler.HandleScreen)
	api.Get("/screenings/export", resultHandler.HandleExportBatch)
	api.Get("/screenings/:id", resultHandler.HandleGetResult)
	api.Get("/screenings", resultHandler.HandleGetBatch)
	api.Get("/candidates/search", searchHandler.HandleSearch)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "JobFit Resume Screening API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/upload",
				"POST /api/v1/submissions",
				"GET /api/v1/submissions",
				"POST /api/v1/screenings",
				"GET /api/v1/screenings/:id",
				"GET /api/v1/screenings?batch_id=",
				"GET /api/v1/screenings/export?batch_id=",
				"GET /api/v1/candidates/search?q=",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		worker.Stop()
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)
	log.Printf("📖 API Documentation: http://localhost%s\n", addr)

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
