package public

import (
	"net/http"

	"github.com/techmarket-api/internal/cache"
	"github.com/techmarket-api/internal/http/handlers/shared"
	"github.com/techmarket-api/internal/http/response"
	"github.com/techmarket-api/internal/models"

	"github.com/gin-gonic/gin"
)

// Healthz 健康检查：数据库必需，Redis 启用时一并检查
func (h *Handler) Healthz(c *gin.Context) {
	status := gin.H{"database": "ok"}
	healthy := true

	if db := models.DB; db != nil {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			status["database"] = "down"
			healthy = false
			shared.RequestLog(c).Warnw("healthz_database_ping_failed", "error", err)
		}
	}
	if cache.Enabled() {
		status["redis"] = "ok"
		if err := cache.Ping(c.Request.Context()); err != nil {
			status["redis"] = "down"
			healthy = false
			shared.RequestLog(c).Warnw("healthz_redis_ping_failed", "error", err)
		}
	}

	if !healthy {
		c.JSON(http.StatusServiceUnavailable, response.Response{
			StatusCode: http.StatusServiceUnavailable,
			Msg:        "unhealthy",
			Data:       status,
		})
		return
	}
	response.Success(c, status)
}
