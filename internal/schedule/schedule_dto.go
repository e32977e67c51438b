package schedule

import (
	"time"

	"orfeo-timesheet/internal/orfeo"
)

type ShiftResponse struct {
	PK           int     `json:"pk"`
	Status       string  `json:"status"`
	StatusLabel  string  `json:"status_label"`
	Start        *string `json:"start_datetime"`
	End          *string `json:"end_datetime"`
	Profession   *int    `json:"profession,omitempty"`
	Service      *int    `json:"service,omitempty"`
	Place        *int    `json:"place,omitempty"`
	Notes        *string `json:"notes,omitempty"`
	PlannedStart *string `json:"planned_start_datetime,omitempty"`
	PlannedEnd   *string `json:"planned_end_datetime,omitempty"`
}

type ScheduleResponse struct {
	Phase       string          `json:"phase"`
	WeekStart   string          `json:"week_start"`
	WeekEnd     string          `json:"week_end"`
	WeekDisplay string          `json:"week_display"`
	Shifts      []ShiftResponse `json:"shifts"`
	Error       string          `json:"error,omitempty"`
}

func mapToResponse(rec orfeo.WorkingHours, now time.Time) ShiftResponse {
	status := Classify(rec, now)
	return ShiftResponse{
		PK:           rec.PK,
		Status:       string(status),
		StatusLabel:  status.Label(),
		Start:        formatDatetime(rec.StartDatetime),
		End:          formatDatetime(rec.EndDatetime),
		Profession:   rec.Profession,
		Service:      rec.Service,
		Place:        rec.Place,
		Notes:        rec.Notes,
		PlannedStart: formatDatetime(rec.PlannedStart),
		PlannedEnd:   formatDatetime(rec.PlannedEnd),
	}
}

func mapSnapshot(snap Snapshot, now time.Time) ScheduleResponse {
	shifts := make([]ShiftResponse, len(snap.Shifts))
	for i, rec := range snap.Shifts {
		shifts[i] = mapToResponse(rec, now)
	}
	resp := ScheduleResponse{
		Phase:       string(snap.Phase),
		WeekStart:   snap.WeekStart.Format(time.RFC3339),
		WeekEnd:     snap.WeekEnd.Format(time.RFC3339),
		WeekDisplay: snap.WeekStart.Format("02 Jan") + " - " + snap.WeekEnd.Format("02 Jan 2006"),
		Shifts:      shifts,
	}
	if snap.Err != nil {
		resp.Error = "could not load shifts, check the connection and retry"
	}
	return resp
}

func formatDatetime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
