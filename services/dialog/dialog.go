// File: services/dialog/dialog.go
package dialog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"roombot/models"
	"roombot/services/schedule"
	"roombot/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Start creates a fresh dialog for the chat and asks for the meeting
// title. Any previous dialog for the same chat is replaced.
func (s *DefaultDialogService) Start(ctx context.Context, chatID int64) ([]Reply, error) {
	state := &models.DialogState{
		DialogID: uuid.New().String(),
		ChatID:   chatID,
		Stage:    models.StageAwaitingTitle,
	}
	if err := s.Repo.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to start dialog: %w", err)
	}

	utils.GetLogger().Info("Dialog started",
		zap.String("dialogId", state.DialogID),
		zap.Int64("chatId", chatID))
	return []Reply{{Text: msgPromptTitle}}, nil
}

// Cancel discards any in-progress dialog for the chat. It succeeds even
// when no dialog exists.
func (s *DefaultDialogService) Cancel(ctx context.Context, chatID int64) ([]Reply, error) {
	if err := s.Repo.Delete(ctx, chatID); err != nil {
		return nil, fmt.Errorf("failed to cancel dialog: %w", err)
	}
	utils.GetLogger().Info("Dialog cancelled", zap.Int64("chatId", chatID))
	return []Reply{{Text: msgLeaving}}, nil
}

// HandleReply feeds one user reply into the chat's current dialog. The
// second result is false when the chat has no dialog in progress, in
// which case the caller falls back to the help reply.
func (s *DefaultDialogService) HandleReply(ctx context.Context, chatID int64, sender, text string) ([]Reply, bool, error) {
	state, err := s.Repo.Get(ctx, chatID)
	if err != nil {
		return nil, false, err
	}
	if state == nil {
		return nil, false, nil
	}

	replies, done, err := s.Advance(ctx, state, sender, text)
	if err != nil {
		return nil, true, err
	}

	if done {
		if err := s.Repo.Delete(ctx, chatID); err != nil {
			return nil, true, fmt.Errorf("failed to finish dialog: %w", err)
		}
	} else {
		if err := s.Repo.Save(ctx, state); err != nil {
			return nil, true, fmt.Errorf("failed to save dialog state: %w", err)
		}
	}
	return replies, true, nil
}

// Advance is the stage transition function: it consumes exactly one user
// reply, mutates the accumulated dialog state, and returns the outgoing
// replies. done reports that the dialog is over (booked, aborted, or
// failed) and its state should be discarded. The stages are linear; only
// the date and room selection stages loop on invalid input.
func (s *DefaultDialogService) Advance(ctx context.Context, state *models.DialogState, sender, text string) ([]Reply, bool, error) {
	switch state.Stage {
	case models.StageAwaitingTitle:
		state.Title = strings.TrimSpace(text)
		state.Stage = models.StageAwaitingDate
		return []Reply{{Text: msgPromptDate}}, false, nil

	case models.StageAwaitingDate:
		date, err := ParseMeetingDate(text, s.today())
		if errors.Is(err, ErrInvalidDateFormat) {
			return []Reply{{Text: msgInvalidDateFormat}, {Text: msgPromptDate}}, false, nil
		}
		if errors.Is(err, ErrDateInPast) {
			return []Reply{{Text: msgDateInPast}, {Text: msgPromptDate}}, false, nil
		}
		state.Date = date.Format("2006-01-02")
		state.Stage = models.StageAwaitingStartTime
		return []Reply{{Text: msgPromptStartTime}}, false, nil

	case models.StageAwaitingStartTime:
		state.StartTime = strings.TrimSpace(text)
		state.Stage = models.StageAwaitingEndTime
		return []Reply{{Text: msgPromptEndTime}}, false, nil

	case models.StageAwaitingEndTime:
		state.EndTime = strings.TrimSpace(text)
		state.Stage = models.StageAwaitingParticipants
		return []Reply{{Text: msgPromptParticipants}}, false, nil

	case models.StageAwaitingParticipants:
		state.Participants = splitParticipants(text)
		if len(state.Participants) == 0 {
			state.Participants = []string{sender}
		}
		return s.queryRooms(ctx, state)

	case models.StageAwaitingRoomSelection:
		roomID, ok := ResolveRoomSelection(state.RoomOptions, text)
		if !ok {
			return []Reply{{Text: msgInvalidRoomChoice}}, false, nil
		}
		state.SelectedRoomID = roomID
		return s.book(ctx, state)
	}

	return nil, true, fmt.Errorf("unknown dialog stage: %q", state.Stage)
}

func (s *DefaultDialogService) queryRooms(ctx context.Context, state *models.DialogState) ([]Reply, bool, error) {
	rooms, err := s.ScheduleSvc.QueryRooms(ctx, len(state.Participants), state.Date, state.StartTime, state.EndTime)
	if err != nil {
		utils.GetLogger().Warn("Room query failed, ending dialog",
			zap.String("dialogId", state.DialogID),
			zap.Error(err))
		msg := fmt.Sprintf("Error when getting available rooms: %s", schedule.FailureReason(err))
		return []Reply{{Text: msg}}, true, nil
	}
	if len(rooms) == 0 {
		return []Reply{{Text: msgNoRoomAvailable}}, true, nil
	}

	state.RoomOptions = rooms
	state.Stage = models.StageAwaitingRoomSelection
	return []Reply{{Text: RenderRoomTable(rooms), HTML: true}}, false, nil
}

func (s *DefaultDialogService) book(ctx context.Context, state *models.DialogState) ([]Reply, bool, error) {
	booking := models.BookingRequest{
		Title:    state.Title,
		Date:     state.Date,
		TimeFrom: state.StartTime,
		TimeTo:   state.EndTime,
		Guests:   state.Participants,
		RoomID:   state.SelectedRoomID,
	}

	message, err := s.ScheduleSvc.CreateBooking(ctx, booking)
	if err != nil {
		utils.GetLogger().Warn("Booking submission failed, ending dialog",
			zap.String("dialogId", state.DialogID),
			zap.Error(err))
		msg := fmt.Sprintf("Error when creating event: %s", schedule.FailureReason(err))
		return []Reply{{Text: msg}}, true, nil
	}

	utils.GetLogger().Info("Dialog completed",
		zap.String("dialogId", state.DialogID),
		zap.String("roomId", state.SelectedRoomID))
	return []Reply{{Text: message}}, true, nil
}

// splitParticipants keeps the non-empty trimmed lines of the participant
// block, one participant per line.
func splitParticipants(text string) []string {
	var participants []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			participants = append(participants, line)
		}
	}
	return participants
}
