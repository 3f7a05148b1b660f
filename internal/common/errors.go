package common

import (
	"errors"
	"fmt"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Common application errors. The pipeline branches on these with errors.Is,
// so every failure mode of a stage is one of them.
var (
	// ErrUnsupportedFormat: the upload's extension maps to no extraction strategy.
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrNoTextExtracted: acquired text is below the minimum usable length.
	ErrNoTextExtracted = errors.New("no meaningful text extracted")
	// ErrExtractionFailed: the underlying text engine (pdf reader / OCR) failed.
	ErrExtractionFailed = errors.New("text extraction failed")
	// ErrServiceUnavailable: no generation backend is configured or the breaker is open.
	ErrServiceUnavailable = errors.New("generation service unavailable")
	// ErrGenerationFailed: a configured generation backend failed at call time.
	ErrGenerationFailed = errors.New("generation failed")
	// ErrParse: generated output was not recoverable as JSON.
	ErrParse = errors.New("response parse failed")
	// ErrValidation: assembled record does not satisfy the profile schema.
	ErrValidation = errors.New("validation failed")

	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)

// NewAppError builds an AppError wrapping one of the sentinels above.
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
