package orfeo

import (
	"context"
	"time"
)

// Validation states as the Orfeo API emits them. The server owns this field
// and advances it planified -> pending -> validated; the client never writes
// it directly.
const (
	ValidationPlanified = "planified"
	ValidationPending   = "pending"
	ValidationValidated = "validated"
)

// MaxNoteLen is the server-side cap on the free-text note.
const MaxNoteLen = 2000

// WorkingHours is one employeeworkinghours record as served by Orfeo.
type WorkingHours struct {
	PK               int        `json:"pk"`
	Employee         *int       `json:"employee"`
	StartDatetime    *time.Time `json:"start_datetime"`
	EndDatetime      *time.Time `json:"end_datetime"`
	ValidationStatus string     `json:"validation_status"`
	Profession       *int       `json:"profession"`
	Service          *int       `json:"service"`
	Place            *int       `json:"place"`
	Notes            *string    `json:"notes,omitempty"`
	PlannedStart     *time.Time `json:"planned_start_datetime,omitempty"`
	PlannedEnd       *time.Time `json:"planned_end_datetime,omitempty"`
}

// ListParams filter the working-hours listing. The overlap window is
// interpreted server-side: records whose own interval intersects
// [OverlapAfter, OverlapBefore] are returned.
type ListParams struct {
	EmployeeID    int
	OverlapAfter  *time.Time
	OverlapBefore *time.Time
}

// DeclarePayload carries the actually-worked interval plus an optional note.
type DeclarePayload struct {
	StartDatetime time.Time
	EndDatetime   time.Time
	Note          string // omitted from the wire when empty
}

type Client interface {
	// ListWorkingHours returns the employee's shifts overlapping the window.
	// Any record failing schema validation fails the whole call.
	ListWorkingHours(ctx context.Context, p ListParams) ([]WorkingHours, error)
	// DeclareHours performs two sequential writes: the effective-hours PATCH
	// (which moves validation_status toward pending) and, when a note is
	// present, a second PATCH attaching it. The two writes are not atomic; a
	// note failure is reported as *NotePatchError while the hours write
	// stands. Retrying the whole operation is safe: the hours write is a
	// full overwrite.
	DeclareHours(ctx context.Context, shiftID int, p DeclarePayload) (WorkingHours, error)
}
