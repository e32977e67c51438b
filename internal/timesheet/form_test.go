package timesheet

import (
	"strings"
	"testing"
	"time"

	"orfeo-timesheet/internal/orfeo"

	"github.com/stretchr/testify/assert"
)

func TestFormValidate_StartRequired(t *testing.T) {
	f := Form{EndDate: "2026-03-04", EndTime: "12:30"}
	errs := f.Validate(time.UTC)

	assert.Contains(t, errs, "start")
	assert.NotContains(t, errs, "end")
}

func TestFormValidate_EndRequired(t *testing.T) {
	f := Form{StartDate: "2026-03-04", StartTime: "08:30"}
	errs := f.Validate(time.UTC)

	assert.Contains(t, errs, "end")
	assert.NotContains(t, errs, "start")
}

func TestFormValidate_MissingTimeCountsAsMissing(t *testing.T) {
	// date alone is not enough, both halves are required
	f := Form{StartDate: "2026-03-04", EndDate: "2026-03-04", EndTime: "12:30"}
	errs := f.Validate(time.UTC)
	assert.Contains(t, errs, "start")
}

func TestFormValidate_ErrorsAccumulate(t *testing.T) {
	f := Form{Note: strings.Repeat("a", orfeo.MaxNoteLen+1)}
	errs := f.Validate(time.UTC)

	assert.Contains(t, errs, "start")
	assert.Contains(t, errs, "end")
	assert.Contains(t, errs, "note")
	assert.Len(t, errs, 3)
}

func TestFormValidate_Ordering(t *testing.T) {
	base := Form{StartDate: "2026-03-04", StartTime: "12:30", EndDate: "2026-03-04"}

	equal := base
	equal.EndTime = "12:30"
	errs := equal.Validate(time.UTC)
	assert.Equal(t, "end must be after start", errs["end"])

	inverted := base
	inverted.EndTime = "08:30"
	errs = inverted.Validate(time.UTC)
	assert.Equal(t, "end must be after start", errs["end"])

	ordered := Form{StartDate: "2026-03-04", StartTime: "08:30", EndDate: "2026-03-04", EndTime: "12:30"}
	assert.Empty(t, ordered.Validate(time.UTC))
}

func TestFormValidate_UnparseableDates(t *testing.T) {
	f := Form{StartDate: "04/03/2026", StartTime: "08:30", EndDate: "2026-03-04", EndTime: "25:99"}
	errs := f.Validate(time.UTC)

	assert.Contains(t, errs, "start")
	assert.Contains(t, errs, "end")
}

func TestFormPayload_TrimsNote(t *testing.T) {
	f := Form{
		StartDate: "2026-03-04", StartTime: "08:30",
		EndDate: "2026-03-04", EndTime: "12:30",
		Note: "  stayed for handover  ",
	}
	p, err := f.Payload(time.UTC)

	assert.NoError(t, err)
	assert.Equal(t, "stayed for handover", p.Note)
	assert.True(t, p.StartDatetime.Equal(time.Date(2026, 3, 4, 8, 30, 0, 0, time.UTC)))
	assert.True(t, p.EndDatetime.Equal(time.Date(2026, 3, 4, 12, 30, 0, 0, time.UTC)))
}

func TestNewForm_PrefillsFromShift(t *testing.T) {
	start := time.Date(2026, 3, 4, 8, 30, 0, 0, time.UTC)
	end := time.Date(2026, 3, 4, 12, 30, 0, 0, time.UTC)
	note := "planned note"
	rec := orfeo.WorkingHours{
		PK:               3,
		ValidationStatus: orfeo.ValidationPlanified,
		StartDatetime:    &start,
		EndDatetime:      &end,
		Notes:            &note,
	}

	f := NewForm(rec, time.UTC)
	assert.Equal(t, "2026-03-04", f.StartDate)
	assert.Equal(t, "08:30", f.StartTime)
	assert.Equal(t, "2026-03-04", f.EndDate)
	assert.Equal(t, "12:30", f.EndTime)
	assert.Equal(t, "planned note", f.Note)
}

func TestNewForm_EmptyWhenNoTimestamps(t *testing.T) {
	f := NewForm(orfeo.WorkingHours{PK: 1, ValidationStatus: orfeo.ValidationPlanified}, time.UTC)
	assert.Equal(t, Form{}, f)
}
