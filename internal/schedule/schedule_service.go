package schedule

import (
	"context"
	"sync"
	"time"

	"orfeo-timesheet/internal/orfeo"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Phase is the list state machine: Loading -> {Error | Loaded}. Error and
// Loaded are mutually exclusive and Error always offers a retry via Reload.
type Phase string

const (
	PhaseLoading Phase = "loading"
	PhaseError   Phase = "error"
	PhaseLoaded  Phase = "loaded"
)

// Snapshot is a point-in-time copy of the week view.
type Snapshot struct {
	Phase     Phase
	Anchor    time.Time
	WeekStart time.Time
	WeekEnd   time.Time
	Shifts    []orfeo.WorkingHours
	Err       error
}

type Service interface {
	// Snapshot returns the current view, loading the week on first use.
	Snapshot(ctx context.Context) Snapshot
	// Reload re-fetches the anchored week; this is the Error phase retry.
	Reload(ctx context.Context) Snapshot
	NextWeek(ctx context.Context) Snapshot
	PreviousWeek(ctx context.Context) Snapshot
	// CurrentWeek resets the anchor to today and reloads.
	CurrentWeek(ctx context.Context) Snapshot
	// ApplyUpdate replaces the shift matching the record's pk, if present.
	ApplyUpdate(rec orfeo.WorkingHours)
	// Shift returns the in-memory record by pk.
	Shift(pk int) (orfeo.WorkingHours, bool)
	Now() time.Time
}

type service struct {
	client     orfeo.Client
	employeeID int
	now        func() time.Time
	logger     *zap.Logger
	sf         singleflight.Group

	mu     sync.Mutex
	anchor time.Time
	phase  Phase
	shifts []orfeo.WorkingHours
	err    error
	gen    uint64
	loaded bool
}

func NewService(client orfeo.Client, employeeID int, logger ...*zap.Logger) Service {
	l := zap.L().Named("schedule.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("schedule.service")
	}
	s := &service{
		client:     client,
		employeeID: employeeID,
		now:        time.Now,
		logger:     l,
	}
	s.anchor = s.now()
	s.phase = PhaseLoading
	return s
}

func (s *service) Now() time.Time {
	return s.now()
}

func (s *service) Snapshot(ctx context.Context) Snapshot {
	s.mu.Lock()
	if s.loaded {
		defer s.mu.Unlock()
		return s.snapshotLocked()
	}
	s.mu.Unlock()
	return s.load(ctx)
}

func (s *service) Reload(ctx context.Context) Snapshot {
	s.bump(func() {})
	return s.load(ctx)
}

func (s *service) NextWeek(ctx context.Context) Snapshot {
	s.bump(func() { s.anchor = s.anchor.AddDate(0, 0, 7) })
	return s.load(ctx)
}

func (s *service) PreviousWeek(ctx context.Context) Snapshot {
	s.bump(func() { s.anchor = s.anchor.AddDate(0, 0, -7) })
	return s.load(ctx)
}

func (s *service) CurrentWeek(ctx context.Context) Snapshot {
	s.bump(func() { s.anchor = s.now() })
	return s.load(ctx)
}

// bump moves the anchor and invalidates any in-flight load: a response
// carrying an older generation is discarded instead of overwriting the list
// of a week the view has navigated away from.
func (s *service) bump(move func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	move()
	s.gen++
}

func (s *service) load(ctx context.Context) Snapshot {
	s.mu.Lock()
	s.phase = PhaseLoading
	s.err = nil
	gen := s.gen
	anchor := s.anchor
	s.mu.Unlock()

	start, end := WeekRange(anchor)

	// Concurrent loads of the same week share one remote call. The flight is
	// detached from the caller's context: navigating away never aborts an
	// in-flight request.
	flightCtx := context.WithoutCancel(ctx)
	v, err, _ := s.sf.Do(start.Format("2006-01-02"), func() (any, error) {
		return s.client.ListWorkingHours(flightCtx, orfeo.ListParams{
			EmployeeID:    s.employeeID,
			OverlapAfter:  &start,
			OverlapBefore: &end,
		})
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		s.logger.Debug("discarding stale load",
			zap.Uint64("response_gen", gen),
			zap.Uint64("current_gen", s.gen),
		)
		return s.snapshotLocked()
	}

	s.loaded = true
	if err != nil {
		s.logger.Warn("week load failed",
			zap.Time("week_start", start),
			zap.Error(err),
		)
		s.phase = PhaseError
		s.err = err
		s.shifts = nil
		return s.snapshotLocked()
	}

	rows := v.([]orfeo.WorkingHours)
	s.logger.Debug("week loaded",
		zap.Time("week_start", start),
		zap.Int("shifts", len(rows)),
	)
	// full replacement, no incremental merge
	s.phase = PhaseLoaded
	s.shifts = rows
	return s.snapshotLocked()
}

func (s *service) ApplyUpdate(rec orfeo.WorkingHours) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.shifts {
		if s.shifts[i].PK == rec.PK {
			s.shifts[i] = rec
			return
		}
	}
}

func (s *service) Shift(pk int) (orfeo.WorkingHours, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range s.shifts {
		if rec.PK == pk {
			return rec, true
		}
	}
	return orfeo.WorkingHours{}, false
}

func (s *service) snapshotLocked() Snapshot {
	start, end := WeekRange(s.anchor)
	shifts := make([]orfeo.WorkingHours, len(s.shifts))
	copy(shifts, s.shifts)
	return Snapshot{
		Phase:     s.phase,
		Anchor:    s.anchor,
		WeekStart: start,
		WeekEnd:   end,
		Shifts:    shifts,
		Err:       s.err,
	}
}
