// Package options provides shared utilities for option validation across packages.
package options

import "github.com/erraggy/rpntools/rpnerrors"

// ValidateSingleInputSource ensures exactly one input source is specified.
// option names the input in the returned *rpnerrors.ConfigError.
// sources is a variadic list of booleans indicating whether each source is set.
func ValidateSingleInputSource(option, noSourceMsg, multiSourceMsg string, sources ...bool) error {
	sourceCount := 0
	for _, hasSource := range sources {
		if hasSource {
			sourceCount++
		}
	}

	switch {
	case sourceCount == 0:
		return &rpnerrors.ConfigError{Option: option, Message: noSourceMsg}
	case sourceCount > 1:
		return &rpnerrors.ConfigError{Option: option, Message: multiSourceMsg}
	}
	return nil
}
