package signupRepo

import (
	"reflect"
	"testing"

	"github.com/alimp01/hural-bot/models"
)

func TestSignupToRow(t *testing.T) {
	s := models.Signup{
		Date:   "2024-10-02",
		Name:   "Ada Lovelace",
		Handle: "ada",
		Slots:  []string{"15:00-15:10", "15:10-15:20"},
		Status: models.StatusScheduled,
	}

	row := signupToRow(s)
	want := []interface{}{"2024-10-02", "Ada Lovelace", "ada", "15:00-15:10, 15:10-15:20", "", "scheduled"}
	if !reflect.DeepEqual(row, want) {
		t.Fatalf("row = %v, want %v", row, want)
	}
	if len(row) != rowWidth {
		t.Fatalf("row width = %d, want %d", len(row), rowWidth)
	}
}

func TestParseRow(t *testing.T) {
	tests := []struct {
		name string
		row  []interface{}
		want models.Signup
		ok   bool
	}{
		{
			name: "full row",
			row:  []interface{}{"2024-10-02", "Ada", "ada", "A, B", "", "scheduled"},
			want: models.Signup{Date: "2024-10-02", Name: "Ada", Handle: "ada", Slots: []string{"A", "B"}, Status: models.StatusScheduled},
			ok:   true,
		},
		{
			name: "row without notes and status",
			row:  []interface{}{"2024-10-02", "Ada", "ada", "A"},
			want: models.Signup{Date: "2024-10-02", Name: "Ada", Handle: "ada", Slots: []string{"A"}},
			ok:   true,
		},
		{
			name: "short row is skipped",
			row:  []interface{}{"2024-10-02", "Ada"},
			ok:   false,
		},
		{
			name: "row without date is skipped",
			row:  []interface{}{"", "Ada", "ada", "A"},
			ok:   false,
		},
		{
			name: "whitespace is trimmed",
			row:  []interface{}{" 2024-10-02 ", " Ada ", "ada", "A", "", "scheduled"},
			want: models.Signup{Date: "2024-10-02", Name: "Ada", Handle: "ada", Slots: []string{"A"}, Status: models.StatusScheduled},
			ok:   true,
		},
		{
			name: "non-string cell is tolerated",
			row:  []interface{}{"2024-10-02", 42, "ada", "A"},
			want: models.Signup{Date: "2024-10-02", Handle: "ada", Slots: []string{"A"}},
			ok:   true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := parseRow(tc.row)
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v", ok, tc.ok)
			}
			if !ok {
				return
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("parseRow = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestRowRoundTrip(t *testing.T) {
	s := models.Signup{
		Date:   "2024-10-02",
		Name:   "Grace",
		Handle: "hopper",
		Slots:  []string{"15:40-15:50", "15:50-16:00"},
		Status: models.StatusScheduled,
	}
	got, ok := parseRow(signupToRow(s))
	if !ok {
		t.Fatal("round trip rejected row")
	}
	if !reflect.DeepEqual(got, s) {
		t.Fatalf("round trip = %+v, want %+v", got, s)
	}
}
