package public

import (
	"github.com/techmarket-api/internal/http/handlers/shared"
	"github.com/techmarket-api/internal/provider"

	"github.com/gin-gonic/gin"
)

// Handler 公开接口处理器入口
type Handler struct {
	*provider.Container
}

// New 创建处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}

func respondServiceError(c *gin.Context, err error) {
	shared.RespondServiceError(c, err)
}
