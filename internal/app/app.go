package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lechemin_backend/internal/config"
	"lechemin_backend/internal/controller"
	"lechemin_backend/internal/repository"
	"lechemin_backend/internal/service"
	"lechemin_backend/pkg/database"
	"lechemin_backend/pkg/logger"
	"lechemin_backend/pkg/monitoring"
	"lechemin_backend/pkg/security"
	"lechemin_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client

	tracerProvider *sdktrace.TracerProvider
}

type repositories struct {
	user       *repository.UserRepository
	progress   *repository.ProgressRepository
	roadmap    *repository.RoadmapRepository
	waitlist   *repository.WaitlistRepository
	pathModule *repository.PathModuleRepository
}

type services struct {
	auth       *service.AuthService
	generation *service.GenerationService
	roadmap    *service.RoadmapService
	progress   *service.ProgressService
	waitlist   *service.WaitlistService
	content    *service.ContentService
	library    *service.RoadmapLibraryService
}

type controllers struct {
	auth     *controller.AuthController
	ai       *controller.AIController
	quiz     *controller.QuizController
	progress *controller.ProgressController
	roadmap  *controller.RoadmapController
	waitlist *controller.WaitlistController
	path     *controller.PathController
	health   *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(db),
		progress:   repository.NewProgressRepository(db),
		roadmap:    repository.NewRoadmapRepository(db),
		waitlist:   repository.NewWaitlistRepository(db),
		pathModule: repository.NewPathModuleRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.auth = service.NewAuthService(repos.user, cfg)
	s.generation = service.NewGenerationService(cfg.AI, logger.Log)
	s.roadmap = service.NewRoadmapService(s.generation, service.NewQuizEngine(), logger.Log)
	s.progress = service.NewProgressService(repos.progress, logger.Log)
	s.waitlist = service.NewWaitlistService(repos.waitlist, logger.Log)
	s.content = service.NewContentService(repos.pathModule, rdb)
	s.library = service.NewRoadmapLibraryService(repos.roadmap)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:     controller.NewAuthController(s.auth),
		ai:       controller.NewAIController(s.generation, a.Config),
		quiz:     controller.NewQuizController(s.roadmap),
		progress: controller.NewProgressController(s.progress),
		roadmap:  controller.NewRoadmapController(s.library),
		waitlist: controller.NewWaitlistController(s.waitlist),
		path:     controller.NewPathController(s.content),
		health:   controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 600
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Redis is a best-effort cache; the app runs without it.
	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Warn("Redis unavailable, path cache disabled", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("lechemin-backend", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
	}

	app.registerRoutes(router, controllers, cfg)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	log.Println("Server exiting")
}
