package handler

import (
	"context"
	"net/http"
	"time"

	"clinica-ginecologica/pkg/response"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const healthCheckTimeout = 2 * time.Second

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Redis    string `json:"redis"`
}

type HealthHandler struct {
	db          *gorm.DB
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewHealthHandler(db *gorm.DB, redisClient *redis.Client, log *logrus.Logger) *HealthHandler {
	return &HealthHandler{db: db, redisClient: redisClient, log: log}
}

// Health pings PostgreSQL and Redis; either failing turns the answer into a 503.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	result := HealthResponse{Status: "ok", Database: "ok", Redis: "ok"}

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		h.log.Warnf("Health check database ping failed: %+v", err)
		result.Status, result.Database = "degraded", "unavailable"
	}

	if err := h.redisClient.Ping(ctx).Err(); err != nil {
		h.log.Warnf("Health check redis ping failed: %+v", err)
		result.Status, result.Redis = "degraded", "unavailable"
	}

	status := http.StatusOK
	if result.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	response.JSON(w, status, result)
}
