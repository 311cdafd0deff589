package calendar

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/alimp01/hural-bot/models"
)

// EventMirror mirrors a confirmed occurrence into an external calendar.
// Mirroring is best effort; a failure never invalidates the signup itself.
type EventMirror interface {
	CreateEvent(ctx context.Context, date string, speakers []models.SpeakerLine) error
}

// GoogleCalendarService implements EventMirror with the Google Calendar API.
type GoogleCalendarService struct {
	svc        *gcal.Service
	calendarID string
	location   *time.Location
	start      ClockTime
	end        ClockTime
	logger     *zap.Logger
}

func NewGoogleCalendarService(ctx context.Context, credentialsPath, calendarID string, loc *time.Location, slots []string, logger *zap.Logger) (*GoogleCalendarService, error) {
	svc, err := gcal.NewService(ctx,
		option.WithCredentialsFile(credentialsPath),
		option.WithScopes(gcal.CalendarScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build calendar client: %w", err)
	}
	start, end, err := EventWindow(slots)
	if err != nil {
		return nil, fmt.Errorf("failed to derive event window: %w", err)
	}
	return &GoogleCalendarService{
		svc:        svc,
		calendarID: calendarID,
		location:   loc,
		start:      start,
		end:        end,
		logger:     logger,
	}, nil
}

// CreateEvent inserts one event spanning the whole presentation window on the
// given occurrence date, listing the speakers in the description.
func (s *GoogleCalendarService) CreateEvent(ctx context.Context, date string, speakers []models.SpeakerLine) error {
	day, err := time.ParseInLocation("2006-01-02", date, s.location)
	if err != nil {
		return fmt.Errorf("bad occurrence date %q: %w", date, err)
	}

	at := func(t ClockTime) string {
		return time.Date(day.Year(), day.Month(), day.Day(), t.Hour, t.Minute, 0, 0, s.location).Format(time.RFC3339)
	}

	lines := make([]string, 0, len(speakers))
	for _, sp := range speakers {
		lines = append(lines, fmt.Sprintf("Speaker: %s (@%s): %s", sp.Name, sp.Handle, strings.Join(sp.Slots, ", ")))
	}

	event := &gcal.Event{
		Summary:     fmt.Sprintf("Employee presentations (%s)", date),
		Description: strings.Join(lines, "\n"),
		Start:       &gcal.EventDateTime{DateTime: at(s.start), TimeZone: s.location.String()},
		End:         &gcal.EventDateTime{DateTime: at(s.end), TimeZone: s.location.String()},
	}

	if _, err := s.svc.Events.Insert(s.calendarID, event).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to insert calendar event: %w", err)
	}
	s.logger.Info("mirrored occurrence to calendar",
		zap.String("date", date), zap.Int("speakers", len(speakers)))
	return nil
}
