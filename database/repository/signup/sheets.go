package signupRepo

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/alimp01/hural-bot/models"
)

// SheetsSignupRepo implements SignupRepository against the Google Sheets API.
type SheetsSignupRepo struct {
	svc           *sheets.Service
	spreadsheetID string
	sheetName     string
}

// NewSheetsSignupRepo builds a repository bound to one sheet of one
// spreadsheet, authenticating with a service-account credentials file.
func NewSheetsSignupRepo(ctx context.Context, credentialsPath, spreadsheetID, sheetName string) (*SheetsSignupRepo, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsPath),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build sheets client: %w", err)
	}
	return &SheetsSignupRepo{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
	}, nil
}

func (r *SheetsSignupRepo) valueRange() string {
	return fmt.Sprintf("%s!A:F", r.sheetName)
}

func (r *SheetsSignupRepo) Append(ctx context.Context, s models.Signup) error {
	body := &sheets.ValueRange{
		Values: [][]interface{}{signupToRow(s)},
	}
	_, err := r.svc.Spreadsheets.Values.
		Append(r.spreadsheetID, r.valueRange(), body).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to append signup row: %w", err)
	}
	return nil
}

func (r *SheetsSignupRepo) QueryByDate(ctx context.Context, date string) ([]models.Signup, error) {
	resp, err := r.svc.Spreadsheets.Values.
		Get(r.spreadsheetID, r.valueRange()).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read signup rows: %w", err)
	}

	var out []models.Signup
	for i, row := range resp.Values {
		if i == 0 {
			continue // header row
		}
		s, ok := parseRow(row)
		if !ok || s.Date != date {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}
