package digest

import (
	"context"
	"time"

	"go.uber.org/zap"

	signupRepo "github.com/alimp01/hural-bot/database/repository/signup"
	"github.com/alimp01/hural-bot/services/signup"
)

// DigestService composes and publishes the weekly reminder digest: every
// signup whose occurrence date is tomorrow, broadcast to the company channel.
type DigestService interface {
	Run(ctx context.Context) error
}

// DefaultDigestService implements DigestService.
type DefaultDigestService struct {
	Repo        signupRepo.SignupRepository
	Gateway     signup.ChatGateway
	Destination string
	Location    *time.Location

	// Now is injectable for tests; nil means time.Now.
	Now func() time.Time

	Logger *zap.Logger
}

func (s *DefaultDigestService) now() time.Time {
	if s.Now != nil {
		return s.Now().In(s.Location)
	}
	return time.Now().In(s.Location)
}

func (s *DefaultDigestService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.L()
}
