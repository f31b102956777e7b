package schedule

import (
	"errors"
	"fmt"
	"net/http"
)

// UpstreamError reports a non-success HTTP status from the scheduling
// service. Reason carries the status text shown to the user.
type UpstreamError struct {
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("scheduling service returned %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// Reason returns the human-readable status text for user-facing messages.
func (e *UpstreamError) Reason() string {
	return http.StatusText(e.StatusCode)
}

// FailureReason extracts the user-facing reason from a client error.
func FailureReason(err error) string {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue.Reason()
	}
	return err.Error()
}
