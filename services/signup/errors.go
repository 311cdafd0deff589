package signup

import "errors"

var (
	// ErrUnknownSlot is returned when a toggle carries a label that is not in
	// the catalog. Stray callback payloads (stale keyboards, hand-crafted
	// requests) must not corrupt a user's pending selection.
	ErrUnknownSlot = errors.New("unknown slot label")

	// ErrEmptySelection is returned when a confirm arrives with no slots
	// chosen.
	ErrEmptySelection = errors.New("no slots chosen")
)
