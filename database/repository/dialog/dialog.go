package dialog

import (
	"context"

	"roombot/models"
)

// Repository persists in-progress dialog state between webhook deliveries.
// Get returns (nil, nil) when no dialog exists for the chat.
type Repository interface {
	Get(ctx context.Context, chatID int64) (*models.DialogState, error)
	Save(ctx context.Context, state *models.DialogState) error
	Delete(ctx context.Context, chatID int64) error
}
