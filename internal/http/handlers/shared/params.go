package shared

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/techmarket-api/internal/service"

	"github.com/gin-gonic/gin"
)

// ParamID 解析路径中的 ID 参数，失败时直接写入 400 响应。
func ParamID(c *gin.Context, name string) (uint, bool) {
	id, err := service.ParseID(c.Param(name))
	if err != nil {
		RespondServiceError(c, fmt.Errorf("%s: %w", name, err))
		return 0, false
	}
	return id, true
}

// QueryBool 解析可选布尔查询参数，仅接受 true/false。
func QueryBool(c *gin.Context, name string) (*bool, error) {
	raw := strings.ToLower(strings.TrimSpace(c.Query(name)))
	switch raw {
	case "":
		return nil, nil
	case "true", "1":
		value := true
		return &value, nil
	case "false", "0":
		value := false
		return &value, nil
	default:
		return nil, fmt.Errorf("%w: %s must be true or false", service.ErrInvalidInput, name)
	}
}

// QueryID 解析可选 ID 查询参数。
func QueryID(c *gin.Context, name string) (*uint, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	id, err := service.ParseID(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return &id, nil
}

// NumberString 将 JSON 数字字段转为字符串交给校验函数，缺失时返回空串。
func NumberString(n json.Number) string {
	return strings.TrimSpace(n.String())
}

// RequiredField 缺失字段错误。
func RequiredField(name string) error {
	return fmt.Errorf("%w: %s is required", service.ErrInvalidInput, name)
}
