package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/sheikh-mohammad-rakib/employee-management-backend/config"
	"github.com/sheikh-mohammad-rakib/employee-management-backend/delivery"
	"github.com/sheikh-mohammad-rakib/employee-management-backend/repository"
	"github.com/sheikh-mohammad-rakib/employee-management-backend/service"
	"github.com/sheikh-mohammad-rakib/employee-management-backend/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	utils.InitLogger(cfg.Env)

	db, err := config.BootDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	// Redis backs the auth rate limiter only; without it the API still
	// serves, just unthrottled.
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient, err = config.InitRedisDB(cfg.RedisAddr, cfg.RedisPassword, 0)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
	} else {
		log.Warn().Msg("REDIS_ADDR not set, auth rate limiting disabled")
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	otpRepo := repository.NewOTPRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	leaveRepo := repository.NewLeaveRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	// Services
	jwtManager := utils.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, otpRepo, jwtManager, cfg.OTPExpireMinutes)
	userService := service.NewUserService(userRepo)
	attendanceService := service.NewAttendanceService(attendanceRepo)
	leaveService := service.NewLeaveService(leaveRepo)
	taskService := service.NewTaskService(taskRepo, userRepo)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	app := gin.New()
	config.InitMiddleware(app, cfg)

	// Handlers
	delivery.NewAuthHandler(app, authService, redisClient, cfg.IsDevelopment())
	delivery.NewUserHandler(app, userService, jwtManager, cfg.IsDevelopment())
	delivery.NewAttendanceHandler(app, attendanceService, jwtManager, cfg.IsDevelopment())
	delivery.NewLeaveHandler(app, leaveService, jwtManager, cfg.IsDevelopment())
	delivery.NewTaskHandler(app, taskService, jwtManager, cfg.IsDevelopment())

	srv := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        app,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("env", cfg.Env).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Warn().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited gracefully")
}
