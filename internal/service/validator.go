package service

import (
	"strconv"
	"strings"
)

const (
	minRating = 1
	maxRating = 5
)

// ParseID 解析实体 ID：十进制整数，拒绝非数字与负数；0 合法但不会匹配任何记录
func ParseID(raw string) (uint, error) {
	value, ok := parseInteger(raw)
	if !ok {
		return 0, ErrInvalidID
	}
	if value < 0 {
		return 0, ErrNegativeID
	}
	return uint(value), nil
}

// ParseQuantity 解析数量：整数且 >= 0，0 由调用方解释为删除
func ParseQuantity(raw string) (int, error) {
	value, ok := parseInteger(raw)
	if !ok {
		return 0, ErrInvalidQuantity
	}
	if value < 0 {
		return 0, ErrNegativeQuantity
	}
	return int(value), nil
}

// ParseRating 解析评分：1-5 的整数
func ParseRating(raw string) (int, error) {
	value, ok := parseInteger(raw)
	if !ok || value < minRating || value > maxRating {
		return 0, ErrInvalidRating
	}
	return int(value), nil
}

func parseInteger(raw string) (int64, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, false
	}
	value, err := strconv.ParseInt(trimmed, 10, 32)
	if err != nil {
		return 0, false
	}
	return value, true
}
