// Package apperrors содержит базовые виды ошибок приложения.
// Обработчики HTTP сопоставляют их с кодами ответа через errors.Is.
package apperrors

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrStoreFailure = errors.New("store failure")
)
