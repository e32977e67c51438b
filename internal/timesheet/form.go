package timesheet

import (
	"fmt"
	"strings"
	"time"

	"orfeo-timesheet/internal/orfeo"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// Form holds the four text fields plus the note, exactly as the user typed
// them. It only exists for the duration of one submission attempt.
type Form struct {
	StartDate string
	StartTime string
	EndDate   string
	EndTime   string
	Note      string
}

// FieldErrors is keyed by form section ("start", "end", "note").
type FieldErrors map[string]string

// ValidationError blocks submission; it never reaches the network.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return "invalid declaration: " + strings.Join(parts, "; ")
}

// NewForm prefills from the shift's existing timestamps and note, in the
// given location.
func NewForm(rec orfeo.WorkingHours, loc *time.Location) Form {
	f := Form{}
	if rec.StartDatetime != nil {
		local := rec.StartDatetime.In(loc)
		f.StartDate = local.Format(dateLayout)
		f.StartTime = local.Format(timeLayout)
	}
	if rec.EndDatetime != nil {
		local := rec.EndDatetime.In(loc)
		f.EndDate = local.Format(dateLayout)
		f.EndTime = local.Format(timeLayout)
	}
	if rec.Notes != nil {
		f.Note = *rec.Notes
	}
	return f
}

// Validate runs every rule independently and accumulates the failures; no
// rule short-circuits another.
func (f Form) Validate(loc *time.Location) FieldErrors {
	errs := FieldErrors{}

	if f.StartDate == "" || f.StartTime == "" {
		errs["start"] = "start date and time are required"
	}
	if f.EndDate == "" || f.EndTime == "" {
		errs["end"] = "end date and time are required"
	}

	if len(f.Note) > orfeo.MaxNoteLen {
		errs["note"] = fmt.Sprintf("note must be at most %d characters", orfeo.MaxNoteLen)
	}

	if errs["start"] == "" && errs["end"] == "" {
		start, startErr := combine(f.StartDate, f.StartTime, loc)
		end, endErr := combine(f.EndDate, f.EndTime, loc)
		if startErr != nil {
			errs["start"] = "start date or time is not valid"
		}
		if endErr != nil {
			errs["end"] = "end date or time is not valid"
		}
		if startErr == nil && endErr == nil && !start.Before(end) {
			errs["end"] = "end must be after start"
		}
	}

	return errs
}

// Payload builds the declaration payload. Callers must have validated first.
func (f Form) Payload(loc *time.Location) (orfeo.DeclarePayload, error) {
	start, err := combine(f.StartDate, f.StartTime, loc)
	if err != nil {
		return orfeo.DeclarePayload{}, err
	}
	end, err := combine(f.EndDate, f.EndTime, loc)
	if err != nil {
		return orfeo.DeclarePayload{}, err
	}
	return orfeo.DeclarePayload{
		StartDatetime: start,
		EndDatetime:   end,
		Note:          strings.TrimSpace(f.Note),
	}, nil
}

func combine(date, clock string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(dateLayout+" "+timeLayout, date+" "+clock, loc)
}
