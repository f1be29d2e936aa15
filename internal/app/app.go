package app

import (
	"os"
	"strings"
	"time"

	"emp-portal/internal/middleware"
	"emp-portal/internal/shared/connection"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// BuildApp connects the infrastructure and registers every module's routes.
// Redis is optional: without REDIS_ADDR the idempotency middleware simply
// is not mounted.
func BuildApp(router *gin.Engine) error {
	router.Use(corsMiddleware())
	router.Use(middleware.Identity())
	router.Use(middleware.ContextLogger(zap.L()))

	gormDB, err := connection.ConnectGORMWithRetry(
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "3306"),
		getEnv("DB_USER", "root"),
		os.Getenv("DB_PASSWORD"),
		getEnv("DB_NAME", "emp"),
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	var rdb *redis.Client
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb, err = connection.ConnectRedisWithRetry(addr, 5)
		if err != nil {
			return err
		}
	}

	pagesDir := getEnv("PAGES_DIR", "public")

	return registerModules(router, sqlDB, gormDB, rdb, pagesDir)
}

func corsMiddleware() gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "Idempotency-Key", "X-Request-ID"}

	origins := []string{}
	for _, origin := range strings.Split(os.Getenv("ALLOWED_ORIGINS"), ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}

	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
		cfg.AllowCredentials = true
		cfg.MaxAge = 12 * time.Hour
	}

	return cors.New(cfg)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
