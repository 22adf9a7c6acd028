package shared

import (
	"errors"

	"github.com/techmarket-api/internal/http/response"
	"github.com/techmarket-api/internal/service"

	"github.com/gin-gonic/gin"
)

// MappedError 定义业务错误到接口错误响应的映射关系。
type MappedError struct {
	Target error
	Code   int
}

// ServiceErrorRules 按错误类型映射状态码，顺序即优先级。
var ServiceErrorRules = []MappedError{
	{Target: service.ErrNotFound, Code: response.CodeNotFound},
	{Target: service.ErrInvalidInput, Code: response.CodeBadRequest},
	{Target: service.ErrUnavailable, Code: response.CodeBadRequest},
	{Target: service.ErrInsufficientStock, Code: response.CodeBadRequest},
	{Target: service.ErrInvalidCredentials, Code: response.CodeUnauthorized},
	{Target: service.ErrConflict, Code: response.CodeConflict},
}

const internalErrorMessage = "internal server error"

// RespondServiceError 将业务错误映射为响应；未识别的错误记录日志并返回 500。
func RespondServiceError(c *gin.Context, err error) {
	RespondWithMappedError(c, err, ServiceErrorRules)
}

// RespondWithMappedError 按规则映射错误。
func RespondWithMappedError(c *gin.Context, err error, rules []MappedError) {
	if code, ok := MatchError(err, rules); ok {
		response.Error(c, code, err.Error())
		return
	}
	RespondError(c, response.CodeInternal, internalErrorMessage, err)
}

// MatchError 返回第一个匹配规则的状态码。
func MatchError(err error, rules []MappedError) (int, bool) {
	if err == nil {
		return 0, false
	}
	for _, rule := range rules {
		if errors.Is(err, rule.Target) {
			return rule.Code, true
		}
	}
	return 0, false
}
