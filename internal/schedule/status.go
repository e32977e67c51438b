package schedule

import (
	"time"

	"orfeo-timesheet/internal/orfeo"
)

// Status is the client-derived display category. Never persisted; recomputed
// against the clock on every snapshot.
type Status string

const (
	StatusUpcoming  Status = "UPCOMING"
	StatusToDeclare Status = "TO_DECLARE"
	StatusInReview  Status = "IN_REVIEW"
	StatusApproved  Status = "APPROVED"
)

func (s Status) Label() string {
	switch s {
	case StatusToDeclare:
		return "To declare"
	case StatusInReview:
		return "In review"
	case StatusApproved:
		return "Approved"
	default:
		return "Upcoming"
	}
}

// Classify maps a record's server validation state and its start time to a
// display status. Order matters: validated and pending win regardless of
// timing, then a started shift becomes declarable purely by clock passage.
func Classify(rec orfeo.WorkingHours, now time.Time) Status {
	switch rec.ValidationStatus {
	case orfeo.ValidationValidated:
		return StatusApproved
	case orfeo.ValidationPending:
		return StatusInReview
	}
	if rec.StartDatetime != nil && !now.Before(*rec.StartDatetime) {
		return StatusToDeclare
	}
	return StatusUpcoming
}
