package app

import (
	"database/sql"

	"emp-portal/internal/auth"
	"emp-portal/internal/employee"
	"emp-portal/internal/leave"
	"emp-portal/internal/manager"
	"emp-portal/internal/messaging/kafka"
	"emp-portal/internal/middleware"
	"emp-portal/internal/payscale"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	pagesDir string,
) error {
	// --- Repositories ---
	managerRepo := manager.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	payscaleRepo := payscale.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	authService := auth.NewService(managerRepo, employeeRepo)
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, managerRepo, outboxRepo)
	leaveService := leave.NewService(db, leaveRepo, managerRepo)
	payscaleService := payscale.NewService(payscaleRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, pagesDir)
	employeeHandler := employee.NewHandler(employeeService)
	leaveHandler := leave.NewHandler(leaveService)
	payscaleHandler := payscale.NewHandler(payscaleService)

	var postMiddleware []gin.HandlerFunc
	if rdb != nil {
		postMiddleware = append(postMiddleware, middleware.Idempotency(rdb))
	}

	// The legacy frontend calls these paths at the root; there is no
	// version prefix to move them under without breaking it.
	root := router.Group("/")
	{
		auth.RegisterRoutes(root, authHandler)
		employee.RegisterRoutes(root, employeeHandler, postMiddleware...)
		leave.RegisterRoutes(root, leaveHandler, postMiddleware...)
		payscale.RegisterRoutes(root, payscaleHandler)
	}

	return nil
}
