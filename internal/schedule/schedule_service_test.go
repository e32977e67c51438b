package schedule

import (
	"context"
	"testing"
	"time"

	"orfeo-timesheet/internal/orfeo"

	"github.com/stretchr/testify/assert"
)

type fakeClient struct {
	listFn    func(ctx context.Context, p orfeo.ListParams) ([]orfeo.WorkingHours, error)
	declareFn func(ctx context.Context, shiftID int, p orfeo.DeclarePayload) (orfeo.WorkingHours, error)
}

func (f *fakeClient) ListWorkingHours(ctx context.Context, p orfeo.ListParams) ([]orfeo.WorkingHours, error) {
	return f.listFn(ctx, p)
}

func (f *fakeClient) DeclareHours(ctx context.Context, shiftID int, p orfeo.DeclarePayload) (orfeo.WorkingHours, error) {
	return f.declareFn(ctx, shiftID, p)
}

func shiftFixture(pk int, status string) orfeo.WorkingHours {
	return orfeo.WorkingHours{PK: pk, ValidationStatus: status}
}

func TestService_SnapshotLoadsOnce(t *testing.T) {
	calls := 0
	client := &fakeClient{
		listFn: func(ctx context.Context, p orfeo.ListParams) ([]orfeo.WorkingHours, error) {
			calls++
			return []orfeo.WorkingHours{shiftFixture(1, orfeo.ValidationPlanified)}, nil
		},
	}
	svc := NewService(client, 1)

	snap := svc.Snapshot(context.Background())
	assert.Equal(t, PhaseLoaded, snap.Phase)
	assert.Len(t, snap.Shifts, 1)
	assert.Equal(t, 1, calls)

	// already loaded, no second remote call
	snap = svc.Snapshot(context.Background())
	assert.Equal(t, PhaseLoaded, snap.Phase)
	assert.Equal(t, 1, calls)
}

func TestService_LoadRequestsAnchoredWeek(t *testing.T) {
	var got orfeo.ListParams
	client := &fakeClient{
		listFn: func(ctx context.Context, p orfeo.ListParams) ([]orfeo.WorkingHours, error) {
			got = p
			return nil, nil
		},
	}
	svc := NewService(client, 42)
	svc.Snapshot(context.Background())

	wantStart, wantEnd := WeekRange(time.Now())
	assert.Equal(t, 42, got.EmployeeID)
	assert.True(t, got.OverlapAfter.Equal(wantStart))
	assert.True(t, got.OverlapBefore.Equal(wantEnd))
}

func TestService_ErrorPhaseThenRetry(t *testing.T) {
	failing := true
	client := &fakeClient{
		listFn: func(ctx context.Context, p orfeo.ListParams) ([]orfeo.WorkingHours, error) {
			if failing {
				return nil, &orfeo.TransportError{Status: 503, Body: "down"}
			}
			return []orfeo.WorkingHours{shiftFixture(1, orfeo.ValidationPending)}, nil
		},
	}
	svc := NewService(client, 1)

	snap := svc.Snapshot(context.Background())
	assert.Equal(t, PhaseError, snap.Phase)
	assert.Error(t, snap.Err)
	assert.Empty(t, snap.Shifts)

	failing = false
	snap = svc.Reload(context.Background())
	assert.Equal(t, PhaseLoaded, snap.Phase)
	assert.NoError(t, snap.Err)
	assert.Len(t, snap.Shifts, 1)
}

func TestService_WeekNavigationMovesAnchor(t *testing.T) {
	var windows []time.Time
	client := &fakeClient{
		listFn: func(ctx context.Context, p orfeo.ListParams) ([]orfeo.WorkingHours, error) {
			windows = append(windows, *p.OverlapAfter)
			return nil, nil
		},
	}
	svc := NewService(client, 1)

	thisMonday, _ := WeekRange(time.Now())
	svc.Snapshot(context.Background())
	svc.NextWeek(context.Background())
	svc.PreviousWeek(context.Background())
	svc.CurrentWeek(context.Background())

	assert.Len(t, windows, 4)
	assert.True(t, windows[0].Equal(thisMonday))
	assert.True(t, windows[1].Equal(thisMonday.AddDate(0, 0, 7)))
	assert.True(t, windows[2].Equal(thisMonday))
	assert.True(t, windows[3].Equal(thisMonday))
}

func TestService_StaleResponseDiscarded(t *testing.T) {
	var svc Service
	first := true
	client := &fakeClient{}
	client.listFn = func(ctx context.Context, p orfeo.ListParams) ([]orfeo.WorkingHours, error) {
		if first {
			first = false
			// the user navigates while this request is still in flight
			svc.NextWeek(context.Background())
			return []orfeo.WorkingHours{shiftFixture(99, orfeo.ValidationPlanified)}, nil
		}
		return []orfeo.WorkingHours{shiftFixture(7, orfeo.ValidationPlanified)}, nil
	}
	svc = NewService(client, 1)

	snap := svc.Snapshot(context.Background())

	// the stale first response never overwrites the navigated-to week
	assert.Len(t, snap.Shifts, 1)
	assert.Equal(t, 7, snap.Shifts[0].PK)

	nextMonday, _ := WeekRange(time.Now().AddDate(0, 0, 7))
	assert.True(t, snap.WeekStart.Equal(nextMonday))
}

func TestService_ApplyUpdateReplacesByPK(t *testing.T) {
	client := &fakeClient{
		listFn: func(ctx context.Context, p orfeo.ListParams) ([]orfeo.WorkingHours, error) {
			return []orfeo.WorkingHours{
				shiftFixture(1, orfeo.ValidationPlanified),
				shiftFixture(2, orfeo.ValidationPlanified),
			}, nil
		},
	}
	svc := NewService(client, 1)
	svc.Snapshot(context.Background())

	svc.ApplyUpdate(shiftFixture(2, orfeo.ValidationPending))

	rec, ok := svc.Shift(2)
	assert.True(t, ok)
	assert.Equal(t, orfeo.ValidationPending, rec.ValidationStatus)

	rec, ok = svc.Shift(1)
	assert.True(t, ok)
	assert.Equal(t, orfeo.ValidationPlanified, rec.ValidationStatus)

	// unknown pk is a no-op
	svc.ApplyUpdate(shiftFixture(3, orfeo.ValidationValidated))
	_, ok = svc.Shift(3)
	assert.False(t, ok)
}
