package signup

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/alimp01/hural-bot/models"
)

// StartSignup posts the slot keyboard with nothing selected. It deliberately
// does not create a store entry; the entry appears on the first toggle.
func (s *DefaultSignupService) StartSignup(ctx context.Context, sess Session) error {
	text := fmt.Sprintf(
		"📅 Presentation signup\n🗓 %s %s\n\nPick one or more slots, then hit Confirm.",
		s.EventWeekday, eventWindowLabel(s.Catalog.Slots()),
	)
	if err := s.Gateway.SendKeyboard(ctx, sess.ChatID, text, s.Catalog.Slots(), nil); err != nil {
		return fmt.Errorf("failed to render signup keyboard: %w", err)
	}
	return nil
}

// ToggleSlot flips one slot in the user's pending selection and re-renders
// the keyboard. Labels outside the catalog are rejected without touching any
// state: a stale or forged callback must not corrupt the rendering.
func (s *DefaultSignupService) ToggleSlot(ctx context.Context, sess Session, label string) error {
	if !s.Catalog.Contains(label) {
		s.logger().Warn("toggle for unknown slot label",
			zap.Int64("user", sess.UserID), zap.String("label", label))
		if err := s.Gateway.Notify(ctx, sess.CallbackID, "That slot is no longer offered.", false); err != nil {
			return fmt.Errorf("failed to acknowledge toggle: %w", err)
		}
		return ErrUnknownSlot
	}

	set, selected, err := s.Store.Toggle(ctx, sess.UserID, label)
	if err != nil {
		return fmt.Errorf("failed to toggle slot %q for user %d: %w", label, sess.UserID, err)
	}

	ack := fmt.Sprintf("✅ Added slot %s", label)
	if !selected {
		ack = fmt.Sprintf("❌ Removed slot %s", label)
	}
	// Alert, not a toast: the popup names the slot that changed, which
	// matters when buttons are tapped in quick succession.
	if err := s.Gateway.Notify(ctx, sess.CallbackID, ack, true); err != nil {
		return fmt.Errorf("failed to acknowledge toggle: %w", err)
	}
	if err := s.Gateway.UpdateKeyboard(ctx, sess.ChatID, sess.MessageID, s.Catalog.Slots(), toSet(set)); err != nil {
		return fmt.Errorf("failed to re-render keyboard: %w", err)
	}
	return nil
}

// ConfirmSignup commits the pending selection. On repository failure the
// selection is left intact so the user can simply press Confirm again.
func (s *DefaultSignupService) ConfirmSignup(ctx context.Context, sess Session) error {
	set, err := s.Store.Get(ctx, sess.UserID)
	if err != nil {
		return fmt.Errorf("failed to read selection for user %d: %w", sess.UserID, err)
	}
	if len(set) == 0 {
		if err := s.Gateway.Notify(ctx, sess.CallbackID, "Pick at least one slot first!", true); err != nil {
			return fmt.Errorf("failed to send empty-selection alert: %w", err)
		}
		return ErrEmptySelection
	}

	handle := sess.Handle
	if handle == "" {
		handle = models.HandlePlaceholder
	}
	record := models.Signup{
		Date:   NextOccurrenceDate(s.now(), s.EventWeekday),
		Name:   sess.Name,
		Handle: handle,
		Slots:  set, // already sorted by the store
		Status: models.StatusScheduled,
	}

	if err := s.Repo.Append(ctx, record); err != nil {
		s.logger().Error("failed to save signup",
			zap.Int64("user", sess.UserID), zap.String("date", record.Date), zap.Error(err))
		if nerr := s.Gateway.Notify(ctx, sess.CallbackID,
			"Could not save your signup. Your selection is kept, try Confirm again.", true); nerr != nil {
			return fmt.Errorf("failed to send save-failure alert: %w", nerr)
		}
		return fmt.Errorf("failed to save signup: %w", err)
	}

	if err := s.Store.Clear(ctx, sess.UserID); err != nil {
		// The row is committed; a stale pending entry is the lesser problem.
		s.logger().Warn("failed to clear selection after commit",
			zap.Int64("user", sess.UserID), zap.Error(err))
	}

	summary := fmt.Sprintf(
		"🎉 Signup confirmed!\n\n📅 %s\n👤 %s (@%s)\n⏰ Slots: %s\n\nThe reminder digest goes out the evening before.",
		record.Date, record.Name, record.Handle, strings.Join(record.Slots, ", "),
	)
	if err := s.Gateway.EditText(ctx, sess.ChatID, sess.MessageID, summary); err != nil {
		return fmt.Errorf("failed to render confirmation: %w", err)
	}
	if err := s.Gateway.Notify(ctx, sess.CallbackID, "Signup saved!", false); err != nil {
		return fmt.Errorf("failed to acknowledge confirmation: %w", err)
	}

	if s.Mirror != nil {
		speaker := models.SpeakerLine{Name: record.Name, Handle: record.Handle, Slots: record.Slots}
		if err := s.Mirror.CreateEvent(ctx, record.Date, []models.SpeakerLine{speaker}); err != nil {
			s.logger().Warn("calendar mirror failed",
				zap.String("date", record.Date), zap.Error(err))
		}
	}

	s.logger().Info("signup committed",
		zap.Int64("user", sess.UserID),
		zap.String("date", record.Date),
		zap.Strings("slots", record.Slots))
	return nil
}

func toSet(slots []string) map[string]bool {
	if len(slots) == 0 {
		return nil
	}
	set := make(map[string]bool, len(slots))
	for _, s := range slots {
		set[s] = true
	}
	return set
}

// eventWindowLabel renders "15:00-16:00" from the catalog's first and last
// slot labels, falling back to an empty string for odd catalogs.
func eventWindowLabel(slots []string) string {
	if len(slots) == 0 {
		return ""
	}
	first := strings.SplitN(slots[0], "-", 2)
	last := strings.SplitN(slots[len(slots)-1], "-", 2)
	if len(first) != 2 || len(last) != 2 {
		return ""
	}
	return first[0] + "-" + last[1]
}
