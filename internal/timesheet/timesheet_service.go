package timesheet

import (
	"context"
	"errors"
	"sync"
	"time"

	"orfeo-timesheet/internal/orfeo"
	"orfeo-timesheet/internal/schedule"
	"orfeo-timesheet/internal/shared/contextutil"
	timesheeterrors "orfeo-timesheet/internal/timesheet/errors"

	"go.uber.org/zap"
)

type Service interface {
	// Form returns the prefilled editing state for a declarable shift.
	Form(ctx context.Context, shiftID int) (FormResponse, error)
	// Declare validates the entered fields, submits the declaration and, on
	// success, pushes the updated record into the week view. A
	// *ValidationError never reaches the network.
	Declare(ctx context.Context, shiftID int, req DeclareRequest) (orfeo.WorkingHours, error)
}

type service struct {
	client orfeo.Client
	view   schedule.Service
	loc    *time.Location
	logger *zap.Logger

	mu         sync.Mutex
	submitting bool
}

func NewService(client orfeo.Client, view schedule.Service, logger ...*zap.Logger) Service {
	l := zap.L().Named("timesheet.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("timesheet.service")
	}
	return &service{
		client: client,
		view:   view,
		loc:    time.Local,
		logger: l,
	}
}

// declarable resolves the shift and enforces the entry condition: only a
// TO_DECLARE shift exposes the declaration workflow. Approved shifts are
// read-only, the rest are not actionable yet.
func (s *service) declarable(shiftID int) (orfeo.WorkingHours, error) {
	rec, ok := s.view.Shift(shiftID)
	if !ok {
		return orfeo.WorkingHours{}, timesheeterrors.ErrShiftNotFound
	}
	if status := schedule.Classify(rec, s.view.Now()); status != schedule.StatusToDeclare {
		s.logger.Warn("declaration refused",
			zap.Int("shift_id", shiftID),
			zap.String("status", string(status)),
		)
		return orfeo.WorkingHours{}, timesheeterrors.ErrNotDeclarable
	}
	return rec, nil
}

func (s *service) Form(ctx context.Context, shiftID int) (FormResponse, error) {
	rec, err := s.declarable(shiftID)
	if err != nil {
		return FormResponse{}, err
	}
	f := NewForm(rec, s.loc)
	return FormResponse{
		ShiftID:    rec.PK,
		StartDate:  f.StartDate,
		StartTime:  f.StartTime,
		EndDate:    f.EndDate,
		EndTime:    f.EndTime,
		Note:       f.Note,
		MaxNoteLen: orfeo.MaxNoteLen,
	}, nil
}

func (s *service) Declare(ctx context.Context, shiftID int, req DeclareRequest) (orfeo.WorkingHours, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("declare requested",
		zap.String("request_id", rid),
		zap.Int("shift_id", shiftID),
	)

	if _, err := s.declarable(shiftID); err != nil {
		return orfeo.WorkingHours{}, err
	}

	form := Form{
		StartDate: req.StartDate,
		StartTime: req.StartTime,
		EndDate:   req.EndDate,
		EndTime:   req.EndTime,
		Note:      req.Note,
	}
	if fieldErrs := form.Validate(s.loc); len(fieldErrs) > 0 {
		return orfeo.WorkingHours{}, &ValidationError{Fields: fieldErrs}
	}

	payload, err := form.Payload(s.loc)
	if err != nil {
		return orfeo.WorkingHours{}, timesheeterrors.ErrDeclareFailed
	}

	// one submission in flight at a time
	s.mu.Lock()
	if s.submitting {
		s.mu.Unlock()
		return orfeo.WorkingHours{}, timesheeterrors.ErrDeclareInFlight
	}
	s.submitting = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.submitting = false
		s.mu.Unlock()
	}()

	updated, err := s.client.DeclareHours(ctx, shiftID, payload)
	if err != nil {
		return orfeo.WorkingHours{}, s.mapDeclareError(shiftID, err)
	}

	s.logger.Info("hours declared",
		zap.Int("shift_id", shiftID),
		zap.String("validation_status", updated.ValidationStatus),
	)
	s.view.ApplyUpdate(updated)
	return updated, nil
}

// mapDeclareError keeps the workflow retryable: whatever the failure, the
// displayed list is untouched and the caller gets a non-fatal error. A note
// failure is reported distinctly because the hours write already stands.
func (s *service) mapDeclareError(shiftID int, err error) error {
	var noteErr *orfeo.NotePatchError
	if errors.As(err, &noteErr) {
		s.logger.Warn("note patch failed after hours were saved",
			zap.Int("shift_id", shiftID),
			zap.Error(noteErr.Err),
		)
		return timesheeterrors.ErrNoteNotSaved
	}

	var schemaErr *orfeo.SchemaError
	if errors.As(err, &schemaErr) {
		s.logger.Error("declare response failed schema validation",
			zap.Int("shift_id", shiftID),
			zap.Error(err),
		)
		return timesheeterrors.ErrBadUpstreamRecord
	}

	s.logger.Error("declare failed",
		zap.Int("shift_id", shiftID),
		zap.Error(err),
	)
	return timesheeterrors.ErrDeclareFailed
}
