package models

// SignupStatus tracks the lifecycle of a committed signup row. Only
// StatusScheduled is written by this service; the remaining values are set by
// hand in the spreadsheet when the event owner reshuffles the agenda.
type SignupStatus string

const (
	StatusScheduled SignupStatus = "scheduled"
	StatusDone      SignupStatus = "done"
	StatusCancelled SignupStatus = "cancelled"
)

// HandlePlaceholder is written in place of a handle for accounts that have
// no public username.
const HandlePlaceholder = "no handle"

// Signup is one committed reservation: a speaker holding one or more slots on
// a specific occurrence of the weekly event. Immutable once appended.
type Signup struct {
	// Date is the occurrence date in YYYY-MM-DD form, in the event timezone.
	Date   string       `json:"date"`
	Name   string       `json:"name"`
	Handle string       `json:"handle"`
	Slots  []string     `json:"slots"`
	Status SignupStatus `json:"status"`
}

// SpeakerLine is the display form used in digests and calendar descriptions.
type SpeakerLine struct {
	Name   string
	Handle string
	Slots  []string
}
