package orfeo

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// DemoClient serves a fixture week without touching the network, for running
// the app against no Orfeo instance. Declarations mutate the fixtures in
// memory so the status flow can be exercised end to end.
type DemoClient struct {
	mu   sync.Mutex
	rows []WorkingHours
}

func NewDemoClient(employeeID int, now time.Time) *DemoClient {
	return &DemoClient{rows: demoWeek(employeeID, now)}
}

func (c *DemoClient) ListWorkingHours(ctx context.Context, p ListParams) ([]WorkingHours, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]WorkingHours, 0, len(c.rows))
	for _, r := range c.rows {
		if overlaps(r, p) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (c *DemoClient) DeclareHours(ctx context.Context, shiftID int, p DeclarePayload) (WorkingHours, error) {
	if len(p.Note) > MaxNoteLen {
		return WorkingHours{}, &SchemaError{Field: "note", Reason: fmt.Sprintf("longer than %d characters", MaxNoteLen)}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.rows {
		if c.rows[i].PK != shiftID {
			continue
		}
		start, end := p.StartDatetime, p.EndDatetime
		c.rows[i].StartDatetime = &start
		c.rows[i].EndDatetime = &end
		c.rows[i].ValidationStatus = ValidationPending
		if p.Note != "" {
			note := p.Note
			c.rows[i].Notes = &note
		}
		return c.rows[i], nil
	}
	return WorkingHours{}, &TransportError{Status: 404, Body: fmt.Sprintf("no shift %d", shiftID)}
}

func overlaps(r WorkingHours, p ListParams) bool {
	if r.StartDatetime == nil || r.EndDatetime == nil {
		return true
	}
	if p.OverlapAfter != nil && r.EndDatetime.Before(*p.OverlapAfter) {
		return false
	}
	if p.OverlapBefore != nil && r.StartDatetime.After(*p.OverlapBefore) {
		return false
	}
	return true
}

// demoWeek mirrors the fixture set the product demo ships: one approved shift
// last Monday, one under review yesterday, one declarable this morning and
// two upcoming ones.
func demoWeek(employeeID int, now time.Time) []WorkingHours {
	at := func(base time.Time, hour, min int) time.Time {
		return time.Date(base.Year(), base.Month(), base.Day(), hour, min, 0, 0, base.Location())
	}
	lastMonday := now.AddDate(0, 0, -((int(now.Weekday())+6)%7)-7)
	yesterday := now.AddDate(0, 0, -1)
	tomorrow := now.AddDate(0, 0, 1)
	friday := now.AddDate(0, 0, (5-int(now.Weekday())+7)%7)

	return []WorkingHours{
		fixture(1, employeeID, at(lastMonday, 9, 0), at(lastMonday, 17, 0), ValidationValidated, 1, 2, 1, strPtr("Full training day")),
		fixture(2, employeeID, at(yesterday, 14, 0), at(yesterday, 18, 0), ValidationPending, 2, 1, 2, strPtr("Client meeting ran long")),
		fixture(3, employeeID, at(now, 8, 30), at(now, 12, 30), ValidationPlanified, 1, 1, 1, nil),
		fixture(4, employeeID, at(tomorrow, 9, 0), at(tomorrow, 17, 0), ValidationPlanified, 3, 2, 3, nil),
		fixture(5, employeeID, at(friday, 13, 0), at(friday, 16, 0), ValidationPlanified, 2, 3, 1, nil),
	}
}

func fixture(pk, employee int, start, end time.Time, status string, profession, service, place int, notes *string) WorkingHours {
	return WorkingHours{
		PK:               pk,
		Employee:         &employee,
		StartDatetime:    &start,
		EndDatetime:      &end,
		ValidationStatus: status,
		Profession:       &profession,
		Service:          &service,
		Place:            &place,
		Notes:            notes,
		PlannedStart:     &start,
		PlannedEnd:       &end,
	}
}

func strPtr(s string) *string { return &s }
