package dialog

import (
	"errors"
	"strings"
	"time"
)

const meetingDateLayout = "02/01/2006"

var (
	// ErrInvalidDateFormat means the text is not a DD/MM/YYYY date.
	ErrInvalidDateFormat = errors.New("invalid date format")
	// ErrDateInPast means the date parsed but lies strictly before today.
	ErrDateInPast = errors.New("meeting date is in the past")
)

// ParseMeetingDate parses a DD/MM/YYYY date and rejects dates strictly
// before today. Both failures are retryable: the caller re-prompts rather
// than ending the dialog. The result carries no time-of-day component.
func ParseMeetingDate(text string, today time.Time) (time.Time, error) {
	parsed, err := time.Parse(meetingDateLayout, strings.TrimSpace(text))
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	date := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
	if date.Before(today) {
		return time.Time{}, ErrDateInPast
	}
	return date, nil
}
