package signupRepo

import (
	"context"

	"github.com/alimp01/hural-bot/models"
)

// SignupRepository is the durable, append-only store of committed signups.
// The backing spreadsheet is owned and also edited by the event organizers,
// so this service only ever appends rows and reads them back by date.
type SignupRepository interface {
	// Append durably records one signup row.
	Append(ctx context.Context, s models.Signup) error
	// QueryByDate returns all signups whose occurrence date equals date
	// (YYYY-MM-DD). Row order is not significant.
	QueryByDate(ctx context.Context, date string) ([]models.Signup, error)
}
