package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/chartpull/portal-extractor/constants"
	"github.com/chartpull/portal-extractor/gen/ent"
	"github.com/chartpull/portal-extractor/internal/common"
	"github.com/chartpull/portal-extractor/internal/registry"
	"github.com/chartpull/portal-extractor/internal/repository"
)

// CreateRequest describes a new extraction job.
type CreateRequest struct {
	JobName           string
	TargetURL         string
	AdapterName       string
	Mode              constants.ExtractionMode
	PatientIdentifier string
	DoctorName        string
	Medication        string
	StartDate         *time.Time
	EndDate           *time.Time
}

// Service is the extraction job state machine. It is the sole writer of job
// status, error message and result payload.
type Service struct {
	jobs     repository.ExtractionJobRepository
	registry *registry.Registry
	logger   *slog.Logger
}

func NewService(jobs repository.ExtractionJobRepository, reg *registry.Registry, logger *slog.Logger) *Service {
	return &Service{jobs: jobs, registry: reg, logger: logger}
}

// Create validates the request and persists a job in PENDING_LOGIN. Nothing
// is written when validation fails.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*ent.ExtractionJob, error) {
	v := common.NewValidator()
	v.Field("target_url", req.TargetURL, common.Required)
	v.Field("adapter_name", req.AdapterName, common.Required)
	v.Field("extraction_mode", string(req.Mode), common.Required, common.OneOf(constants.ExtractionModes...))
	if req.Mode == constants.ModeSinglePatient {
		v.Field("patient_identifier", req.PatientIdentifier, common.Required)
	}
	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		v.Field("end_date", req.EndDate, func(field string, value interface{}) *common.ValidationError {
			return &common.ValidationError{Field: field, Value: value, Message: "must not be before start_date"}
		})
	}
	if err := v.Error(); err != nil {
		return nil, err
	}

	handle, err := s.registry.Resolve(ctx, req.AdapterName)
	if err != nil {
		return nil, err
	}

	return s.jobs.Create(ctx, repository.CreateJobParams{
		JobName:           req.JobName,
		TargetURL:         req.TargetURL,
		AdapterID:         handle.ID,
		Mode:              req.Mode,
		PatientIdentifier: req.PatientIdentifier,
		DoctorName:        req.DoctorName,
		Medication:        req.Medication,
		StartDate:         req.StartDate,
		EndDate:           req.EndDate,
	})
}

// Get returns the current job snapshot.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*ent.ExtractionJob, error) {
	job, err := s.jobs.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: job %s", common.ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: loading job %s: %v", common.ErrInfrastructure, id, err)
	}
	return job, nil
}

// Advance applies one lifecycle event. The underlying write is conditional on
// the expected current status, so a race between two events on the same job
// resolves to one winner; the loser gets ErrIllegalTransition or
// ErrTerminalState, and the row is never partially written.
func (s *Service) Advance(ctx context.Context, id uuid.UUID, ev Event) (*ent.ExtractionJob, error) {
	t, ok := transitions[ev.Name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown event %q", common.ErrValidation, ev.Name)
	}

	applied, err := s.apply(ctx, id, t, ev)
	if err != nil {
		return nil, err
	}
	if !applied {
		return nil, s.rejectionError(ctx, id, ev)
	}
	return s.Get(ctx, id)
}

func (s *Service) apply(ctx context.Context, id uuid.UUID, t transition, ev Event) (bool, error) {
	switch t.to {
	case constants.JobStatusCompleted:
		// A completed job always carries its result payload; completion
		// without one would leave a row the rest of the system treats as
		// invalid.
		if len(ev.Payload) == 0 {
			return false, fmt.Errorf("%w: extraction_completed requires a result payload", common.ErrValidation)
		}
		if err := ValidateResultPayload(ev.Payload); err != nil {
			return false, fmt.Errorf("%w: result payload: %v", common.ErrValidation, err)
		}
		return s.jobs.Complete(ctx, id, t.from[0], ev.Payload)
	case constants.JobStatusFailed:
		msg := ev.Message
		if msg == "" {
			msg = "extraction failed"
		}
		return s.jobs.Terminate(ctx, id, t.from, constants.JobStatusFailed, msg)
	case constants.JobStatusCancelled:
		msg := ev.Message
		if msg == "" {
			msg = "cancelled by caller"
		}
		return s.jobs.Terminate(ctx, id, t.from, constants.JobStatusCancelled, msg)
	default:
		return s.jobs.Transition(ctx, id, t.from, t.to)
	}
}

// rejectionError inspects the job after a lost conditional update to decide
// which error the caller gets.
func (s *Service) rejectionError(ctx context.Context, id uuid.UUID, ev Event) error {
	job, err := s.jobs.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: job %s", common.ErrNotFound, id)
		}
		return fmt.Errorf("%w: loading job %s: %v", common.ErrInfrastructure, id, err)
	}
	status := constants.JobStatus(job.Status)
	if status.IsTerminal() {
		return fmt.Errorf("%w: job %s is %s", common.ErrTerminalState, id, status)
	}
	return fmt.Errorf("%w: event %q from status %s", common.ErrIllegalTransition, ev.Name, status)
}
