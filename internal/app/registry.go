package app

import (
	"database/sql"

	"github.com/Ishani018/alms-ishani/internal/auth"
	"github.com/Ishani018/alms-ishani/internal/leave"
	"github.com/Ishani018/alms-ishani/internal/leavebalance"
	"github.com/Ishani018/alms-ishani/internal/messaging/kafka"
	"github.com/Ishani018/alms-ishani/internal/middleware"
	"github.com/Ishani018/alms-ishani/internal/report"
	"github.com/Ishani018/alms-ishani/internal/shared/counter"
	"github.com/Ishani018/alms-ishani/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Global Middleware ---
	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))
	router.Use(middleware.RateLimitByIP(rate.Limit(20), 40))

	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	balanceRepo := leavebalance.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	reportRepo := report.NewRepository(gormDB)
	userRepo := user.NewRepository(gormDB)

	// --- Services ---
	authService := auth.NewServiceWithOutbox(db, authRepo, counterRepo, outboxRepo)
	balanceService := leavebalance.NewService(balanceRepo)
	leaveService := leave.NewServiceWithOutbox(db, leaveRepo, balanceRepo, outboxRepo)
	reportService := report.NewService(reportRepo)
	userService := user.NewService(db, userRepo, rdb)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	balanceHandler := leavebalance.NewHandler(balanceService)
	leaveHandler := leave.NewHandlerWithRedis(leaveService, rdb)
	reportHandler := report.NewHandler(reportService)
	userHandler := user.NewHandler(userService)

	// authService doubles as the token-to-user resolver for the auth middleware.
	var resolver middleware.UserResolver = authService

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, resolver)
		leave.RegisterRoutes(api, leaveHandler, resolver, rdb)
		leavebalance.RegisterRoutes(api, balanceHandler, resolver)
		report.RegisterRoutes(api, reportHandler, resolver)
		user.RegisterRoutes(api, userHandler, resolver)
	}

	return nil
}
