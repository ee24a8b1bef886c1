package rpnerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrStructural matches every StructuralError regardless of its kind.
	ErrStructural = errors.New("structural error")

	// ErrEmptyResult indicates an expression or group produced no output.
	ErrEmptyResult = errors.New("empty result")

	// ErrMissingClosingParenthesis indicates input ended inside an open group.
	ErrMissingClosingParenthesis = errors.New("missing closing parenthesis")

	// ErrMissingRightSideValueUnary indicates trailing unary operators with no operand.
	ErrMissingRightSideValueUnary = errors.New("missing right side value for unary operator")

	// ErrMissingRightSideValueBinary indicates a trailing binary operator with no right operand.
	ErrMissingRightSideValueBinary = errors.New("missing right side value for binary operator")

	// ErrMissingLeftSideValueBinary indicates a binary operator with no left operand.
	ErrMissingLeftSideValueBinary = errors.New("missing left side value for binary operator")

	// ErrUnexpectedClosingParenthesis indicates a closing parenthesis with no matching open.
	ErrUnexpectedClosingParenthesis = errors.New("unexpected closing parenthesis")

	// ErrSuccessiveTwoBinaryOperands indicates two binary operators in a row.
	ErrSuccessiveTwoBinaryOperands = errors.New("successive binary operators")

	// ErrSuccessiveTwoValues indicates two operands with no binary operator between them.
	ErrSuccessiveTwoValues = errors.New("successive values")

	// ErrResourceLimit indicates a resource limit was exceeded.
	ErrResourceLimit = errors.New("resource limit exceeded")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// Kind names one malformed-input condition.
type Kind int

const (
	// KindEmptyResult: nothing was produced.
	KindEmptyResult Kind = iota + 1
	// KindMissingClosingParenthesis: input ended inside a group.
	KindMissingClosingParenthesis
	// KindMissingRightSideValueUnary: unary operator(s) with no operand.
	KindMissingRightSideValueUnary
	// KindMissingRightSideValueBinary: binary operator with no right operand.
	KindMissingRightSideValueBinary
	// KindMissingLeftSideValueBinary: binary operator with no left operand.
	KindMissingLeftSideValueBinary
	// KindUnexpectedClosingParenthesis: unmatched closing parenthesis.
	KindUnexpectedClosingParenthesis
	// KindSuccessiveTwoBinaryOperands: two binary operators in a row.
	KindSuccessiveTwoBinaryOperands
	// KindSuccessiveTwoValues: two operands with nothing joining them.
	KindSuccessiveTwoValues
)

var kindNames = map[Kind]string{
	KindEmptyResult:                  "empty_result",
	KindMissingClosingParenthesis:    "missing_closing_parenthesis",
	KindMissingRightSideValueUnary:   "missing_right_side_value_unary",
	KindMissingRightSideValueBinary:  "missing_right_side_value_binary",
	KindMissingLeftSideValueBinary:   "missing_left_side_value_binary",
	KindUnexpectedClosingParenthesis: "unexpected_closing_parenthesis",
	KindSuccessiveTwoBinaryOperands:  "successive_two_binary_operands",
	KindSuccessiveTwoValues:          "successive_two_values",
}

var kindSentinels = map[Kind]error{
	KindEmptyResult:                  ErrEmptyResult,
	KindMissingClosingParenthesis:    ErrMissingClosingParenthesis,
	KindMissingRightSideValueUnary:   ErrMissingRightSideValueUnary,
	KindMissingRightSideValueBinary:  ErrMissingRightSideValueBinary,
	KindMissingLeftSideValueBinary:   ErrMissingLeftSideValueBinary,
	KindUnexpectedClosingParenthesis: ErrUnexpectedClosingParenthesis,
	KindSuccessiveTwoBinaryOperands:  ErrSuccessiveTwoBinaryOperands,
	KindSuccessiveTwoValues:          ErrSuccessiveTwoValues,
}

// String returns the stable snake_case name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Sentinel returns the sentinel error matched by structural errors of this kind,
// or nil for an unknown kind.
func (k Kind) Sentinel() error {
	return kindSentinels[k]
}

// Kinds returns every structural error kind in declaration order.
func Kinds() []Kind {
	return []Kind{
		KindEmptyResult,
		KindMissingClosingParenthesis,
		KindMissingRightSideValueUnary,
		KindMissingRightSideValueBinary,
		KindMissingLeftSideValueBinary,
		KindUnexpectedClosingParenthesis,
		KindSuccessiveTwoBinaryOperands,
		KindSuccessiveTwoValues,
	}
}

// ParseKind returns the kind with the given String() name.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

// StructuralError reports malformed input detected from the shape and order of
// its symbols alone. It never wraps another error.
type StructuralError struct {
	// Kind is the violated condition
	Kind Kind
	// Position is the zero-based index of the last token read when the
	// violation was detected, or -1 if no token was read
	Position int
	// Depth is the parenthesis nesting depth of the failing level (0 = top level)
	Depth int
}

// Error returns a human-readable error message.
func (e *StructuralError) Error() string {
	msg := "structural error"
	if sentinel := e.Kind.Sentinel(); sentinel != nil {
		msg += ": " + sentinel.Error()
	}
	if e.Position >= 0 {
		msg += fmt.Sprintf(" at token %d", e.Position)
	}
	if e.Depth > 0 {
		msg += fmt.Sprintf(" (depth %d)", e.Depth)
	}
	return msg
}

// Is reports whether target matches this error type.
// Matches ErrStructural and the sentinel of the error's kind.
func (e *StructuralError) Is(target error) bool {
	if target == ErrStructural {
		return true
	}
	sentinel := e.Kind.Sentinel()
	return sentinel != nil && target == sentinel
}

// ResourceLimitError represents a resource exhaustion condition.
type ResourceLimitError struct {
	// ResourceType identifies what limit was exceeded
	// Common values: "nesting_depth", "token_count"
	ResourceType string
	// Limit is the configured maximum value
	Limit int64
	// Actual is the value that exceeded the limit (may be 0 if unknown)
	Actual int64
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *ResourceLimitError) Error() string {
	msg := "resource limit exceeded"
	if e.ResourceType != "" {
		msg += ": " + e.ResourceType
	}
	if e.Limit > 0 {
		msg += fmt.Sprintf(" (limit: %d", e.Limit)
		if e.Actual > 0 {
			msg += fmt.Sprintf(", actual: %d", e.Actual)
		}
		msg += ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *ResourceLimitError) Is(target error) bool {
	return target == ErrResourceLimit
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, malformed symbol tables, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
