package service

import (
	"errors"
	"fmt"
)

// 错误类型，处理层通过 errors.Is 映射状态码
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("not found")
	ErrUnavailable        = errors.New("unavailable")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrConflict           = errors.New("conflict")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

var (
	ErrProductNotFound  = fmt.Errorf("product %w", ErrNotFound)
	ErrUserNotFound     = fmt.Errorf("user %w", ErrNotFound)
	ErrCategoryNotFound = fmt.Errorf("category %w", ErrNotFound)
	ErrReviewNotFound   = fmt.Errorf("review %w", ErrNotFound)
	ErrCartItemNotFound = fmt.Errorf("cart item %w", ErrNotFound)

	ErrProductUnavailable = fmt.Errorf("product is %w", ErrUnavailable)

	ErrInvalidID            = fmt.Errorf("%w: id must be a valid integer", ErrInvalidInput)
	ErrNegativeID           = fmt.Errorf("%w: id can not be negative", ErrInvalidInput)
	ErrInvalidQuantity      = fmt.Errorf("%w: quantity must be a valid integer", ErrInvalidInput)
	ErrNegativeQuantity     = fmt.Errorf("%w: quantity cannot be negative", ErrInvalidInput)
	ErrQuantityBelowMinimum = fmt.Errorf("%w: quantity must be at least 1", ErrInvalidInput)
	ErrInvalidRating        = fmt.Errorf("%w: rating must be an integer between 1 and 5", ErrInvalidInput)
	ErrNegativePrice        = fmt.Errorf("%w: price can not be negative", ErrInvalidInput)
	ErrEmptyUpdate          = fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	ErrInvalidSort          = fmt.Errorf("%w: sort must be price or price_desc", ErrInvalidInput)

	ErrProductNameRequired     = fmt.Errorf("%w: name is required", ErrInvalidInput)
	ErrProductCategoryRequired = fmt.Errorf("%w: category is required", ErrInvalidInput)
	ErrCategoryNameRequired    = fmt.Errorf("%w: category name is required", ErrInvalidInput)
	ErrLoginRequired           = fmt.Errorf("%w: username or email and password are required", ErrInvalidInput)

	ErrCategoryExists = fmt.Errorf("%w: category name already exists", ErrConflict)
	ErrUserExists     = fmt.Errorf("%w: username or email already registered", ErrConflict)
)

// stockError 库存不足错误，携带当前库存
type stockError struct {
	available int
}

func (e stockError) Error() string {
	return fmt.Sprintf("not enough stock available, current stock: %d", e.available)
}

func (e stockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

// Available 当前库存
func (e stockError) Available() int {
	return e.available
}

func newStockError(available int) error {
	return stockError{available: available}
}
