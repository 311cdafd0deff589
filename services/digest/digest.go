package digest

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/alimp01/hural-bot/models"
	"github.com/alimp01/hural-bot/services/signup"
)

const slotJoiner = " | "

// Run queries tomorrow's signups and publishes one digest message. Zero
// matching signups means zero messages: an empty digest is noise, not
// information. Errors are returned for logging but the job is always safe
// to re-run on the next trigger.
func (s *DefaultDigestService) Run(ctx context.Context) error {
	tomorrow := s.now().AddDate(0, 0, 1).Format(signup.DateLayout)

	signups, err := s.Repo.QueryByDate(ctx, tomorrow)
	if err != nil {
		return fmt.Errorf("failed to query signups for %s: %w", tomorrow, err)
	}
	if len(signups) == 0 {
		s.logger().Info("no signups for tomorrow, skipping digest",
			zap.String("date", tomorrow))
		return nil
	}

	if err := s.Gateway.Publish(ctx, s.Destination, Compose(tomorrow, signups)); err != nil {
		return fmt.Errorf("failed to publish digest: %w", err)
	}

	s.logger().Info("published digest",
		zap.String("date", tomorrow), zap.Int("signups", len(signups)))
	return nil
}

// Compose renders the digest body for one occurrence date.
func Compose(date string, signups []models.Signup) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📢 Presentation schedule for tomorrow (%s)\n\n", date)
	for _, s := range signups {
		fmt.Fprintf(&b, "👤 %s (@%s)\n⏰ %s\n\n", s.Name, s.Handle, strings.Join(s.Slots, slotJoiner))
	}
	return strings.TrimRight(b.String(), "\n")
}
