package domain

import (
	"errors"

	"woodshop/internal/core/apperror"
)

// ErrorCode classifies the outcome of a write command.
type ErrorCode int

const (
	CodeOK ErrorCode = iota
	CodeStoreError
	CodeValidation
	CodeNotFound
)

func (c ErrorCode) String() string {
	switch c {
	case CodeOK:
		return "ok"
	case CodeStoreError:
		return "store_error"
	case CodeValidation:
		return "validation"
	case CodeNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// OperationResult is the outcome of an Update or Delete command.
// Success is true exactly when ErrorCode is CodeOK.
type OperationResult struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	ErrorCode ErrorCode `json:"errorCode"`
}

// Succeeded builds a successful outcome.
func Succeeded(message string) OperationResult {
	return OperationResult{Success: true, Message: message, ErrorCode: CodeOK}
}

// StoreFailure builds an outcome for a failed store interaction.
func StoreFailure(message string) OperationResult {
	return OperationResult{Message: message, ErrorCode: CodeStoreError}
}

// ValidationFailure builds an outcome for rejected input.
func ValidationFailure(message string) OperationResult {
	return OperationResult{Message: message, ErrorCode: CodeValidation}
}

// NotFoundFailure builds an outcome for a missing target row.
func NotFoundFailure(message string) OperationResult {
	return OperationResult{Message: message, ErrorCode: CodeNotFound}
}

// Rejected converts a validation error into a CodeValidation outcome.
func Rejected(err error) OperationResult {
	return ValidationFailure(apperror.MessageOf(err))
}

// Err maps a failed outcome onto an AppError; nil on success.
// Store failures become internal errors so their text stays server-side.
func (r OperationResult) Err() error {
	switch r.ErrorCode {
	case CodeOK:
		return nil
	case CodeValidation:
		return apperror.NewValidation(r.Message)
	case CodeNotFound:
		return apperror.NewNotFoundMessage(r.Message)
	default:
		return apperror.NewInternal(errors.New(r.Message))
	}
}

// CreateResult is the outcome of a Create command.
// GeneratedID is set only on success.
type CreateResult struct {
	OperationResult
	GeneratedID int `json:"generatedId,omitempty"`
}

// Created builds a successful create outcome.
func Created(id int, message string) CreateResult {
	return CreateResult{OperationResult: Succeeded(message), GeneratedID: id}
}

// CreateFailed lifts a failed outcome into a CreateResult.
func CreateFailed(r OperationResult) CreateResult {
	return CreateResult{OperationResult: r}
}
