// Error types and handling
package llm

import "errors"

// Error represents a standardized error for this library
type Error struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Type       string `json:"type"`
	StatusCode int    `json:"status_code,omitempty"`
}

func (e *Error) Error() string {
	return e.Message
}

// TypeConfigurationError classifies fatal load-time failures: an
// unrecognized login strategy or missing credential fields for the
// selected strategy. These abort initialization and are never retried.
const TypeConfigurationError = "configuration_error"

// IsConfigurationError reports whether err is a fatal configuration error
func IsConfigurationError(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Type == TypeConfigurationError
	}
	return false
}
