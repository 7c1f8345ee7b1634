package api

import (
	"errors"
	"fmt"
)

// Error is a failure the server reported deliberately, with a message that
// is safe to show to the user. Anything else (transport failures, bad
// payloads) stays an opaque error and callers fall back to a generic message.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// UserMessage returns the server's message for a known API error and the
// fallback for everything else.
func UserMessage(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
