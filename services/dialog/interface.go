package dialog

import (
	"context"
	"time"

	dialogRepo "roombot/database/repository/dialog"
	"roombot/services/schedule"
)

// Reply is one outgoing chat message produced by the dialog. HTML marks
// replies that carry preformatted blocks (the room selection table).
type Reply struct {
	Text string
	HTML bool
}

// Service drives the room booking dialog. Start begins a new dialog for
// the chat, Cancel tears one down from any stage, and HandleReply feeds
// one user reply into the current stage. HandleReply's second result is
// false when no dialog is in progress for the chat.
type Service interface {
	Start(ctx context.Context, chatID int64) ([]Reply, error)
	Cancel(ctx context.Context, chatID int64) ([]Reply, error)
	HandleReply(ctx context.Context, chatID int64, sender, text string) ([]Reply, bool, error)
}

// DefaultDialogService implements Service.
type DefaultDialogService struct {
	Repo        dialogRepo.Repository
	ScheduleSvc schedule.Client
	// Now supplies the current time for past-date checks; defaults to
	// time.Now when nil.
	Now func() time.Time
}

func (s *DefaultDialogService) today() time.Time {
	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
