package signupRepo

import (
	"strings"

	"github.com/alimp01/hural-bot/models"
)

// The sheet uses six columns, A through F:
// date | name | handle | slots | notes | status
// Column E is free-form notes kept for the organizers; the bot always writes
// it empty and never reads it.
const (
	colDate = iota
	colName
	colHandle
	colSlots
	colNotes
	colStatus
	rowWidth
)

const slotSeparator = ", "

// signupToRow encodes a signup as one spreadsheet row.
func signupToRow(s models.Signup) []interface{} {
	return []interface{}{
		s.Date,
		s.Name,
		s.Handle,
		strings.Join(s.Slots, slotSeparator),
		"",
		string(s.Status),
	}
}

// parseRow decodes one spreadsheet row. Rows too short to carry a slot list
// are skipped (the organizers sometimes leave partial rows behind).
func parseRow(row []interface{}) (models.Signup, bool) {
	if len(row) <= colSlots {
		return models.Signup{}, false
	}

	s := models.Signup{
		Date:   cell(row, colDate),
		Name:   cell(row, colName),
		Handle: cell(row, colHandle),
		Status: models.SignupStatus(cell(row, colStatus)),
	}
	if raw := cell(row, colSlots); raw != "" {
		s.Slots = strings.Split(raw, slotSeparator)
	}
	if s.Date == "" {
		return models.Signup{}, false
	}
	return s, true
}

func cell(row []interface{}, idx int) string {
	if idx >= len(row) {
		return ""
	}
	v, ok := row[idx].(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(v)
}
