package domain

import (
	"fmt"
)

// Action discriminates the three write commands at the store boundary.
type Action byte

const (
	ActionCreate Action = 'C'
	ActionUpdate Action = 'U'
	ActionDelete Action = 'D'
)

// String returns the single-letter code the stored procedures expect.
func (a Action) String() string {
	return string(rune(a))
}

func (a Action) pastTense() string {
	switch a {
	case ActionCreate:
		return "created"
	case ActionUpdate:
		return "updated"
	case ActionDelete:
		return "deleted"
	default:
		return "processed"
	}
}

// Return codes written by the stored procedures.
const (
	ReturnOK         = 0
	ReturnValidation = 2
	ReturnNotFound   = 3
)

// RawOutcome is what a stored procedure hands back through its output parameters.
type RawOutcome struct {
	ReturnCode  int
	Message     string
	GeneratedID *int
}

// DecodeOutcome turns a raw procedure outcome into a typed result.
// Not-found is only meaningful for commands that target an existing row;
// on Create it is treated like any other unexpected code.
func DecodeOutcome(entity string, action Action, raw RawOutcome) CreateResult {
	switch raw.ReturnCode {
	case ReturnOK:
		msg := fmt.Sprintf("%s %s successfully", entity, action.pastTense())
		if action != ActionCreate {
			return CreateResult{OperationResult: Succeeded(msg)}
		}
		if raw.GeneratedID == nil || *raw.GeneratedID <= 0 {
			return CreateFailed(StoreFailure(fmt.Sprintf("%s created but no id was returned", entity)))
		}
		return Created(*raw.GeneratedID, msg)

	case ReturnValidation:
		return CreateFailed(ValidationFailure(orDefault(raw.Message, fmt.Sprintf("invalid %s", entity))))

	case ReturnNotFound:
		if action != ActionCreate {
			return CreateFailed(NotFoundFailure(orDefault(raw.Message, fmt.Sprintf("%s not found", entity))))
		}
	}

	return CreateFailed(StoreFailure(orDefault(raw.Message,
		fmt.Sprintf("%s %s failed with return code %d", entity, action.String(), raw.ReturnCode))))
}

// StoreFailed converts an invocation error into a CodeStoreError result.
func StoreFailed(err error) CreateResult {
	return CreateFailed(StoreFailure(err.Error()))
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
