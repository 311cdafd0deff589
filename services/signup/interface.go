package signup

import (
	"context"
	"time"

	"go.uber.org/zap"

	signupRepo "github.com/alimp01/hural-bot/database/repository/signup"
	"github.com/alimp01/hural-bot/services/calendar"
)

// SignupService drives one user's interaction: present the slot keyboard,
// toggle choices, then commit the selection to the durable store on confirm.
type SignupService interface {
	StartSignup(ctx context.Context, sess Session) error
	ToggleSlot(ctx context.Context, sess Session, label string) error
	ConfirmSignup(ctx context.Context, sess Session) error
}

// DefaultSignupService implements SignupService.
type DefaultSignupService struct {
	Catalog *Catalog
	Store   SelectionStore
	Repo    signupRepo.SignupRepository
	Gateway ChatGateway

	// Mirror is optional; when nil no calendar events are created.
	Mirror calendar.EventMirror

	Location     *time.Location
	EventWeekday time.Weekday

	// Now is the clock used for occurrence-date computation. Tests inject a
	// fixed clock; main leaves it nil for time.Now.
	Now func() time.Time

	Logger *zap.Logger
}

func (s *DefaultSignupService) now() time.Time {
	if s.Now != nil {
		return s.Now().In(s.Location)
	}
	return time.Now().In(s.Location)
}

func (s *DefaultSignupService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.L()
}
