package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"turfadmin/config"
	"turfadmin/database"
	appointmentRepo "turfadmin/database/repository/appointment"
	doctorRepo "turfadmin/database/repository/doctor"
	userRepo "turfadmin/database/repository/user"
	"turfadmin/handlers"
	"turfadmin/middleware"
	"turfadmin/routes"
	"turfadmin/services/admin"
	"turfadmin/services/storage"
	"turfadmin/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: failed to load config: %v", err)
	}

	logger, err := utils.NewLogger(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		log.Fatalf("main: failed to build logger: %v", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if err := cfg.Validate(); err != nil {
		logger.Fatal("main: invalid configuration", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mongoClient, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("main: failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			logger.Error("main: failed to disconnect MongoDB", zap.Error(err))
		}
	}()
	db := mongoClient.Database(cfg.DatabaseName)
	logger.Info("Connected to MongoDB", zap.String("database", cfg.DatabaseName))

	redisClient, err := utils.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		logger.Fatal("main: failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// repositories.
	appointments := appointmentRepo.NewMongoAppointmentRepo(db)
	doctors := doctorRepo.NewMongoDoctorRepo(db)
	users := userRepo.NewMongoUserRepo(db)
	if err := doctors.EnsureIndexes(ctx); err != nil {
		logger.Fatal("main: failed to ensure doctor indexes", zap.Error(err))
	}
	if err := users.EnsureIndexes(ctx); err != nil {
		logger.Fatal("main: failed to ensure user indexes", zap.Error(err))
	}

	// media.
	uploader, err := storage.NewCloudinaryUploader(
		cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, cfg.CloudinaryFolder)
	if err != nil {
		logger.Fatal("main: failed to initialize cloudinary", zap.Error(err))
	}
	ledger := storage.NewRedisOrphanLedger(redisClient)
	if orphans, err := ledger.Orphans(ctx); err != nil {
		logger.Warn("main: failed to read orphaned media ledger", zap.Error(err))
	} else if len(orphans) > 0 {
		logger.Warn("Orphaned media assets pending cleanup", zap.Int("count", len(orphans)))
	}

	// services.
	tokens := utils.NewTokenSigner(cfg.JWTSecret)
	credentials := admin.Credentials{Email: cfg.AdminEmail, Password: cfg.AdminPassword}
	adminService := &admin.DefaultAdminService{
		Credentials:  credentials,
		Tokens:       tokens,
		Appointments: appointments,
		Doctors:      doctors,
		Users:        users,
		Uploader:     uploader,
		Orphans:      ledger,
		Logger:       logger,
	}

	monitor := utils.NewHealthMonitor(
		func(ctx context.Context) error { return mongoClient.Ping(ctx, nil) },
		func(ctx context.Context) error { return redisClient.Ping(ctx).Err() },
		utils.HealthCheckInterval, logger)
	monitor.Start(ctx)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler(logger))
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))

	routes.RegisterRoutes(router, &handlers.HandlerBundle{
		AdminHandler:  handlers.NewAdminHandler(adminService, logger),
		HealthHandler: handlers.NewHealthHandler(monitor),
		TokenVerifier: tokens,
		AdminSubject:  credentials.Subject(),
	})

	srv := &http.Server{
		Addr:    "0.0.0.0:" + cfg.AppPort,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), utils.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
		return
	}
	logger.Info("main: server stopped gracefully")
}
