package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/attendly/attendly-backend/internal/config"
	appHTTP "github.com/attendly/attendly-backend/internal/handler/http"
	"github.com/attendly/attendly-backend/internal/pkg/cache"
	"github.com/attendly/attendly-backend/internal/pkg/cron"
	"github.com/attendly/attendly-backend/internal/pkg/database"
	"github.com/attendly/attendly-backend/internal/pkg/jwt"
	"github.com/attendly/attendly-backend/internal/repository/postgresql"
	attendanceService "github.com/attendly/attendly-backend/internal/service/attendance"
	authService "github.com/attendly/attendly-backend/internal/service/auth"
	chatService "github.com/attendly/attendly-backend/internal/service/chat"
	dashboardService "github.com/attendly/attendly-backend/internal/service/dashboard"
	reportService "github.com/attendly/attendly-backend/internal/service/report"
	userService "github.com/attendly/attendly-backend/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		os.Exit(1)
	}
	defer db.Close()

	// Redis is optional; the dashboard cache degrades to direct reads.
	var dashboardCache *cache.Cache
	if cfg.Redis.Addr != "" {
		redisClient, err := cache.New(context.Background(), cfg.Redis.Addr)
		if err != nil {
			fmt.Println("Error connecting to redis:", err)
			os.Exit(1)
		}
		defer redisClient.Close()
		dashboardCache = cache.NewCache(redisClient, cfg.Redis.CacheTTL)
	}

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	userRepo := postgresql.NewUserRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, userRepo)
	authSvc := authService.NewAuthService(db, userRepo, refreshTokenRepo, jwtService)
	userSvc := userService.NewUserService(userRepo, refreshTokenRepo)
	reportSvc := reportService.NewReportService(attendanceRepo)
	dashboardSvc := dashboardService.NewDashboardService(attendanceRepo, userRepo, dashboardCache)
	chatSvc := chatService.NewChatService(attendanceSvc, attendanceRepo, userRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc, jwtService)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	chatHandler := appHTTP.NewChatHandler(chatSvc)
	userHandler := appHTTP.NewUserHandler(userSvc)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceRepo, userRepo).RegisterJobs(scheduler)
	cron.NewAuthJobs(refreshTokenRepo).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			AllowedOrigins: cfg.App.AllowedOrigins,
			Env:            cfg.App.Env,
		},
		jwtService,
		db,
		authHandler,
		attendanceHandler,
		dashboardHandler,
		reportHandler,
		chatHandler,
		userHandler,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.App.ReadTimeout,
		WriteTimeout: cfg.App.WriteTimeout,
	}

	go func() {
		slog.Info("Server starting", "addr", server.Addr, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	slog.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Shutdown error", "error", err)
	}
}
