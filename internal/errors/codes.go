package errors

// Code represents an error code
type Code string

// Generic error codes
const (
	CodeOK                 Code = "OK"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
)

// Configuration error codes, reported by the taxonomy builder
const (
	CodeDuplicateKey  Code = "DUPLICATE_KEY"
	CodeUnknownParent Code = "UNKNOWN_PARENT"
	CodeInvalidRange  Code = "INVALID_RANGE"
	CodeEmptyValue    Code = "EMPTY_VALUE"
)

// Generation error codes, reported by the loot engine
const (
	CodeNoQualities       Code = "NO_QUALITIES"
	CodeNoItemTypes       Code = "NO_ITEM_TYPES"
	CodeNoSubtypes        Code = "NO_SUBTYPES"
	CodeNoNames           Code = "NO_NAMES"
	CodeEmptyDistribution Code = "EMPTY_DISTRIBUTION"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// IsConfiguration reports whether the code describes a taxonomy
// configuration failure.
func (c Code) IsConfiguration() bool {
	switch c {
	case CodeDuplicateKey, CodeUnknownParent, CodeInvalidRange, CodeEmptyValue:
		return true
	default:
		return false
	}
}

// IsGeneration reports whether the code describes a generation-time failure.
// InvalidRange appears in both families: the builder rejects bad ranges up
// front and the attribute synthesizer surfaces them if one slips through.
func (c Code) IsGeneration() bool {
	switch c {
	case CodeNoQualities, CodeNoItemTypes, CodeNoSubtypes, CodeNoNames,
		CodeEmptyDistribution, CodeInvalidRange:
		return true
	default:
		return false
	}
}
