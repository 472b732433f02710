package webspaced

import (
	"errors"
	"fmt"
)

// ErrImageNotFound is wrapped by the error ResolveImage returns when no
// image alias or fingerprint matches.
var ErrImageNotFound = errors.New("image not found")

// Error is the single error kind returned by the client. It is produced from
// structured server errors, bare HTTP failure statuses, transport failures
// and local validation.
type Error struct {
	// StatusCode is the HTTP status of the response, or 0 when the error did
	// not come from a response.
	StatusCode int
	// Message is the text shown to the user.
	Message string
	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Errorf creates a local Error with a formatted message.
func Errorf(format string, args ...any) error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var wsErr *Error
	if errors.As(err, &wsErr) {
		return wsErr.StatusCode
	}
	return 0
}
