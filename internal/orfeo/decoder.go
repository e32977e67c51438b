package orfeo

import (
	"encoding/json"
	"fmt"
	"time"
)

// Decoder validates one raw record against the WorkingHours contract.
// Implementations must return *SchemaError for contract violations.
type Decoder interface {
	Decode(raw json.RawMessage) (WorkingHours, error)
}

// strictDecoder is the default: every field checked, any violation fails the
// record (and therefore the whole list call).
type strictDecoder struct{}

func NewStrictDecoder() Decoder {
	return strictDecoder{}
}

type workingHoursWire struct {
	PK               *int    `json:"pk"`
	Employee         *int    `json:"employee"`
	StartDatetime    *string `json:"start_datetime"`
	EndDatetime      *string `json:"end_datetime"`
	ValidationStatus *string `json:"validation_status"`
	Profession       *int    `json:"profession"`
	Service          *int    `json:"service"`
	Place            *int    `json:"place"`
	Notes            *string `json:"notes"`
	PlannedStart     *string `json:"planned_start_datetime"`
	PlannedEnd       *string `json:"planned_end_datetime"`
}

// requiredKeys must be present on every record. Most of them accept null as a
// value; an absent key is a violation either way.
var requiredKeys = []string{
	"pk", "employee", "start_datetime", "end_datetime",
	"validation_status", "profession", "service", "place",
}

func (strictDecoder) Decode(raw json.RawMessage) (WorkingHours, error) {
	var present map[string]json.RawMessage
	if err := json.Unmarshal(raw, &present); err != nil {
		return WorkingHours{}, &SchemaError{Field: "record", Reason: err.Error()}
	}
	for _, key := range requiredKeys {
		if _, ok := present[key]; !ok {
			return WorkingHours{}, &SchemaError{Field: key, Reason: "key is absent"}
		}
	}

	var w workingHoursWire
	if err := json.Unmarshal(raw, &w); err != nil {
		return WorkingHours{}, &SchemaError{Field: "record", Reason: err.Error()}
	}

	if w.PK == nil {
		return WorkingHours{}, &SchemaError{Field: "pk", Reason: "null is not a valid pk"}
	}
	if w.ValidationStatus == nil {
		return WorkingHours{}, &SchemaError{Field: "validation_status", Reason: "null is not a valid status"}
	}
	switch *w.ValidationStatus {
	case ValidationPlanified, ValidationPending, ValidationValidated:
	default:
		return WorkingHours{}, &SchemaError{
			Field:  "validation_status",
			Reason: fmt.Sprintf("unknown value %q", *w.ValidationStatus),
		}
	}

	rec := WorkingHours{
		PK:               *w.PK,
		Employee:         w.Employee,
		ValidationStatus: *w.ValidationStatus,
		Profession:       w.Profession,
		Service:          w.Service,
		Place:            w.Place,
		Notes:            w.Notes,
	}

	var err error
	if rec.StartDatetime, err = parseDatetime("start_datetime", w.StartDatetime); err != nil {
		return WorkingHours{}, err
	}
	if rec.EndDatetime, err = parseDatetime("end_datetime", w.EndDatetime); err != nil {
		return WorkingHours{}, err
	}
	if rec.PlannedStart, err = parseDatetime("planned_start_datetime", w.PlannedStart); err != nil {
		return WorkingHours{}, err
	}
	if rec.PlannedEnd, err = parseDatetime("planned_end_datetime", w.PlannedEnd); err != nil {
		return WorkingHours{}, err
	}

	return rec, nil
}

func parseDatetime(field string, s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil, &SchemaError{Field: field, Reason: fmt.Sprintf("not an ISO-8601 datetime: %q", *s)}
	}
	return &t, nil
}
