package errors

import (
	"errors"
)

// As is a wrapper around errors.As that works with our Error type
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode extracts the error code from an error
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Code
	}

	return CodeInternal
}

// GetMeta extracts metadata from an error
func GetMeta(err error) map[string]interface{} {
	if err == nil {
		return nil
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Meta
	}

	return nil
}

// GetMessage extracts the user-friendly message from an error
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Message
	}

	return err.Error()
}

// Type checking helpers

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

// IsConfiguration checks if an error is a taxonomy configuration error
func IsConfiguration(err error) bool {
	return GetCode(err).IsConfiguration()
}

// IsGeneration checks if an error is a generation-time error
func IsGeneration(err error) bool {
	return GetCode(err).IsGeneration()
}

// IsEmptyDistribution checks for a weighted set with no selectable mass
func IsEmptyDistribution(err error) bool {
	return GetCode(err) == CodeEmptyDistribution
}

// IsInvalidRange checks for a min > max range violation
func IsInvalidRange(err error) bool {
	return GetCode(err) == CodeInvalidRange
}
