package forge

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes builder errors.
type ErrorCode string

const (
	// ErrCodeFieldNotDefined indicates a condition referenced a field that is
	// not part of the rule's request or response schema.
	ErrCodeFieldNotDefined ErrorCode = "FIELD_NOT_DEFINED"

	// ErrCodeInvalidArgument indicates an operator argument failed its
	// declared validator (reversed between bounds, empty required list, etc).
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"

	// ErrCodeTypeMismatch indicates an argument's type is incompatible with
	// the operator's declared argument type.
	ErrCodeTypeMismatch ErrorCode = "TYPE_MISMATCH"

	// ErrCodeDynamicValueNotFound indicates a named dynamic value does not
	// exist in the workspace.
	ErrCodeDynamicValueNotFound ErrorCode = "DYNAMIC_VALUE_NOT_FOUND"

	// ErrCodeConfiguration indicates a remote operation was attempted without
	// a workspace client attached, or with invalid client configuration.
	ErrCodeConfiguration ErrorCode = "CONFIGURATION"

	// ErrCodeSerialization indicates malformed wire data during import.
	ErrCodeSerialization ErrorCode = "SERIALIZATION"
)

// Error is the builder's error type. All validation failures raised by the
// package carry one of the ErrCode constants so callers can branch on the
// category without string matching.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Field names the schema field or operator argument involved, when known.
	Field string

	// Details contains additional context.
	Details map[string]string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s (field=%s)", e.Code, e.Message, e.Field)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsFieldNotDefined reports whether err is a FIELD_NOT_DEFINED error.
// Uses errors.As to handle wrapped errors.
func IsFieldNotDefined(err error) bool {
	return hasCode(err, ErrCodeFieldNotDefined)
}

// IsInvalidArgument reports whether err is an INVALID_ARGUMENT error.
func IsInvalidArgument(err error) bool {
	return hasCode(err, ErrCodeInvalidArgument)
}

// IsTypeMismatch reports whether err is a TYPE_MISMATCH error.
func IsTypeMismatch(err error) bool {
	return hasCode(err, ErrCodeTypeMismatch)
}

// IsDynamicValueNotFound reports whether err is a DYNAMIC_VALUE_NOT_FOUND error.
func IsDynamicValueNotFound(err error) bool {
	return hasCode(err, ErrCodeDynamicValueNotFound)
}

// IsConfiguration reports whether err is a CONFIGURATION error.
func IsConfiguration(err error) bool {
	return hasCode(err, ErrCodeConfiguration)
}

// IsSerialization reports whether err is a SERIALIZATION error.
func IsSerialization(err error) bool {
	return hasCode(err, ErrCodeSerialization)
}

func hasCode(err error, code ErrorCode) bool {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Code == code
	}
	return false
}

// NewFieldNotDefinedError creates an Error for a reference to an unknown field.
func NewFieldNotDefinedError(field, schema string) *Error {
	return &Error{
		Code:    ErrCodeFieldNotDefined,
		Message: fmt.Sprintf("field %q is not defined in the %s schema", field, schema),
		Field:   field,
	}
}

// NewInvalidArgumentError creates an Error for a rejected operator argument.
func NewInvalidArgumentError(message string) *Error {
	return &Error{Code: ErrCodeInvalidArgument, Message: message}
}

// NewTypeMismatchError creates an Error for an argument of the wrong type.
func NewTypeMismatchError(message string) *Error {
	return &Error{Code: ErrCodeTypeMismatch, Message: message}
}

// NewConfigurationError creates an Error for a missing or invalid workspace setup.
func NewConfigurationError(message string) *Error {
	return &Error{Code: ErrCodeConfiguration, Message: message}
}

// NewSerializationError creates an Error for malformed wire data.
func NewSerializationError(message string) *Error {
	return &Error{Code: ErrCodeSerialization, Message: message}
}

// NewDynamicValueNotFoundError creates an Error for an unknown dynamic value name.
func NewDynamicValueNotFoundError(name string) *Error {
	return &Error{
		Code:    ErrCodeDynamicValueNotFound,
		Message: fmt.Sprintf("dynamic value %q not found in workspace", name),
		Field:   name,
	}
}
