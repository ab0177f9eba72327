package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DmytroRudikov/Meduzzen-internship/internal/config"
	"github.com/DmytroRudikov/Meduzzen-internship/internal/controller"
	"github.com/DmytroRudikov/Meduzzen-internship/internal/repository"
	"github.com/DmytroRudikov/Meduzzen-internship/internal/service"
	"github.com/DmytroRudikov/Meduzzen-internship/pkg/configwatcher"
	"github.com/DmytroRudikov/Meduzzen-internship/pkg/database"
	"github.com/DmytroRudikov/Meduzzen-internship/pkg/logger"
	"github.com/DmytroRudikov/Meduzzen-internship/pkg/monitoring"
	"github.com/DmytroRudikov/Meduzzen-internship/pkg/security"
	"github.com/DmytroRudikov/Meduzzen-internship/pkg/tracing"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
}

type repositories struct {
	user         *repository.UserRepository
	company      *repository.CompanyRepository
	member       *repository.MemberRepository
	invite       *repository.InviteRepository
	request      *repository.RequestRepository
	quiz         *repository.QuizRepository
	results      *repository.ResultsRepository
	notification *repository.NotificationRepository
}

type services struct {
	attemptCache *service.AttemptCache
	auth         *service.AuthService
	user         *service.UserService
	company      *service.CompanyService
	member       *service.MemberService
	invite       *service.InviteService
	request      *service.RequestService
	quiz         *service.QuizService
	results      *service.ResultsService
	export       *service.ExportService
	analytics    *service.AnalyticsService
	notification *service.NotificationService
}

type controllers struct {
	auth         *controller.AuthController
	user         *controller.UserController
	company      *controller.CompanyController
	member       *controller.MemberController
	invite       *controller.InviteController
	request      *controller.RequestController
	quiz         *controller.QuizController
	results      *controller.ResultsController
	export       *controller.ExportController
	analytics    *controller.AnalyticsController
	notification *controller.NotificationController
	health       *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:         repository.NewUserRepository(db),
		company:      repository.NewCompanyRepository(db),
		member:       repository.NewMemberRepository(db),
		invite:       repository.NewInviteRepository(db),
		request:      repository.NewRequestRepository(db),
		quiz:         repository.NewQuizRepository(db),
		results:      repository.NewResultsRepository(db),
		notification: repository.NewNotificationRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user)
	s.company = service.NewCompanyService(repos.company, repos.member)
	s.member = service.NewMemberService(repos.member)
	s.invite = service.NewInviteService(repos.invite, repos.user, s.member)
	s.request = service.NewRequestService(repos.request, repos.company, s.member)
	s.quiz = service.NewQuizService(repos.quiz, s.member, repos.member, repos.notification)

	s.attemptCache = service.NewAttemptCache(rdb, cfg)
	s.results = service.NewResultsService(repos.quiz, repos.results, s.attemptCache)
	s.export = service.NewExportService(s.attemptCache)
	s.analytics = service.NewAnalyticsService(repos.results, repos.quiz, repos.member)
	s.notification = service.NewNotificationService(repos.notification)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:         controller.NewAuthController(s.auth),
		user:         controller.NewUserController(s.user),
		company:      controller.NewCompanyController(s.company),
		member:       controller.NewMemberController(s.member),
		invite:       controller.NewInviteController(s.invite),
		request:      controller.NewRequestController(s.request),
		quiz:         controller.NewQuizController(s.quiz),
		results:      controller.NewResultsController(s.results, s.member),
		export:       controller.NewExportController(s.export, s.member),
		analytics:    controller.NewAnalyticsController(s.analytics, s.member),
		notification: controller.NewNotificationController(s.notification),
		health:       controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db, rdb)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("meduzzen-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	// Hot-reload settings that can change without a restart.
	go configwatcher.WatchConfig("configs/config.yaml", func(newCfg *config.Config) {
		app.Config = newCfg
		services.attemptCache.SetTTL(newCfg.Audit.ExpireTime)
		logger.Log.Info("Config reloaded", zap.Duration("audit_ttl", newCfg.Audit.ExpireTime))
	})

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

	log.Println("Server exiting")
}
