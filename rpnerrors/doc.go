// Package rpnerrors provides structured error types for rpntools.
//
// Import path: github.com/erraggy/rpntools/rpnerrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to tell exactly which malformed-input condition stopped a
// conversion.
//
// # Error Types
//
//   - [StructuralError]: malformed infix input, one [Kind] per condition
//   - [ResourceLimitError]: nesting depth or token count limits
//   - [ConfigError]: invalid options or symbol tables
//
// # Sentinel Errors
//
// [ErrStructural] matches every [StructuralError]. Each [Kind] also has its own
// sentinel:
//
//   - [ErrEmptyResult]
//   - [ErrMissingClosingParenthesis]
//   - [ErrMissingRightSideValueUnary]
//   - [ErrMissingRightSideValueBinary]
//   - [ErrMissingLeftSideValueBinary]
//   - [ErrUnexpectedClosingParenthesis]
//   - [ErrSuccessiveTwoBinaryOperands]
//   - [ErrSuccessiveTwoValues]
//
// # Usage Examples
//
//	postfix, err := c.Convert(tokens)
//	if errors.Is(err, rpnerrors.ErrUnexpectedClosingParenthesis) {
//	    // Handle unbalanced input
//	}
//
//	var structErr *rpnerrors.StructuralError
//	if errors.As(err, &structErr) {
//	    fmt.Printf("%s at token %d\n", structErr.Kind, structErr.Position)
//	}
//
// Structural errors are never wrapped while they propagate out of nested
// groups: the first violation found is the one returned.
package rpnerrors
