package schedule_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"orfeo-timesheet/internal/orfeo"
	"orfeo-timesheet/internal/schedule"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	snapshotFn func(ctx context.Context) schedule.Snapshot
	reloadFn   func(ctx context.Context) schedule.Snapshot
	nextFn     func(ctx context.Context) schedule.Snapshot
	prevFn     func(ctx context.Context) schedule.Snapshot
	currentFn  func(ctx context.Context) schedule.Snapshot
	now        time.Time
}

func (f *fakeService) Snapshot(ctx context.Context) schedule.Snapshot     { return f.snapshotFn(ctx) }
func (f *fakeService) Reload(ctx context.Context) schedule.Snapshot       { return f.reloadFn(ctx) }
func (f *fakeService) NextWeek(ctx context.Context) schedule.Snapshot     { return f.nextFn(ctx) }
func (f *fakeService) PreviousWeek(ctx context.Context) schedule.Snapshot { return f.prevFn(ctx) }
func (f *fakeService) CurrentWeek(ctx context.Context) schedule.Snapshot  { return f.currentFn(ctx) }
func (f *fakeService) ApplyUpdate(rec orfeo.WorkingHours)                 {}
func (f *fakeService) Shift(pk int) (orfeo.WorkingHours, bool)            { return orfeo.WorkingHours{}, false }
func (f *fakeService) Now() time.Time                                     { return f.now }

func loadedSnapshot(now time.Time) schedule.Snapshot {
	start, end := schedule.WeekRange(now)
	started := now.Add(-time.Hour)
	return schedule.Snapshot{
		Phase:     schedule.PhaseLoaded,
		Anchor:    now,
		WeekStart: start,
		WeekEnd:   end,
		Shifts: []orfeo.WorkingHours{
			{PK: 3, ValidationStatus: orfeo.ValidationPlanified, StartDatetime: &started},
		},
	}
}

func TestHandler_GetRendersDerivedStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	now := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)
	svc := &fakeService{
		now: now,
		snapshotFn: func(ctx context.Context) schedule.Snapshot {
			return loadedSnapshot(now)
		},
	}
	h := schedule.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/schedule", nil)
	h.Get(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ok":true`)
	assert.Contains(t, w.Body.String(), `"TO_DECLARE"`)
	assert.Contains(t, w.Body.String(), `"phase":"loaded"`)
	assert.Contains(t, w.Body.String(), `"week_display"`)
}

func TestHandler_ErrorPhaseIsBadGateway(t *testing.T) {
	gin.SetMode(gin.TestMode)
	now := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)
	start, end := schedule.WeekRange(now)
	svc := &fakeService{
		now: now,
		snapshotFn: func(ctx context.Context) schedule.Snapshot {
			return schedule.Snapshot{
				Phase:     schedule.PhaseError,
				Anchor:    now,
				WeekStart: start,
				WeekEnd:   end,
				Err:       &orfeo.TransportError{Status: 503, Body: "down"},
			}
		},
	}
	h := schedule.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/schedule", nil)
	h.Get(c)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), `"ok":false`)
	assert.Contains(t, w.Body.String(), "UPSTREAM_ERROR")
	assert.Contains(t, w.Body.String(), `"phase":"error"`)
}

func TestHandler_NavigationDelegates(t *testing.T) {
	gin.SetMode(gin.TestMode)
	now := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)
	var called string
	mk := func(name string) func(ctx context.Context) schedule.Snapshot {
		return func(ctx context.Context) schedule.Snapshot {
			called = name
			return loadedSnapshot(now)
		}
	}
	svc := &fakeService{
		now:       now,
		reloadFn:  mk("reload"),
		nextFn:    mk("next"),
		prevFn:    mk("previous"),
		currentFn: mk("today"),
	}
	h := schedule.NewHandler(svc)

	cases := []struct {
		handler func(*gin.Context)
		want    string
	}{
		{h.Reload, "reload"},
		{h.NextWeek, "next"},
		{h.PreviousWeek, "previous"},
		{h.CurrentWeek, "today"},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/schedule/"+tc.want, nil)
		tc.handler(c)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, tc.want, called)
	}
}
