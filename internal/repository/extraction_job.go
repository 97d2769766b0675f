package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/chartpull/portal-extractor/constants"
	"github.com/chartpull/portal-extractor/gen/ent"
	"github.com/chartpull/portal-extractor/gen/ent/extractionjob"
)

// CreateJobParams carries the validated fields of a new extraction job.
type CreateJobParams struct {
	JobName           string
	TargetURL         string
	AdapterID         uuid.UUID
	Mode              constants.ExtractionMode
	PatientIdentifier string
	DoctorName        string
	Medication        string
	StartDate         *time.Time
	EndDate           *time.Time
}

// ExtractionJobRepository persists jobs and applies status transitions as
// conditional updates keyed on the expected current status, so concurrent
// transition attempts on one job serialize in the store: the first writer
// wins and the loser sees zero rows affected.
type ExtractionJobRepository interface {
	Create(ctx context.Context, p CreateJobParams) (*ent.ExtractionJob, error)
	Get(ctx context.Context, id uuid.UUID) (*ent.ExtractionJob, error)
	// Transition moves the job to a non-terminal status. Returns false when
	// the job was not in any of the expected from statuses.
	Transition(ctx context.Context, id uuid.UUID, from []constants.JobStatus, to constants.JobStatus) (bool, error)
	// Complete moves the job to COMPLETED and persists the result payload.
	Complete(ctx context.Context, id uuid.UUID, from constants.JobStatus, payload json.RawMessage) (bool, error)
	// Terminate moves the job to FAILED or CANCELLED, records the message and
	// clears any result payload.
	Terminate(ctx context.Context, id uuid.UUID, from []constants.JobStatus, to constants.JobStatus, message string) (bool, error)
	SetResultsFilePath(ctx context.Context, id uuid.UUID, path string) error
}

type extractionJobRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewExtractionJobRepository(client *ent.Client, logger *slog.Logger) ExtractionJobRepository {
	return &extractionJobRepository{client: client, logger: logger}
}

func (r *extractionJobRepository) Create(ctx context.Context, p CreateJobParams) (*ent.ExtractionJob, error) {
	create := r.client.ExtractionJob.
		Create().
		SetTargetURL(p.TargetURL).
		SetAdapterID(p.AdapterID).
		SetExtractionMode(string(p.Mode)).
		SetStatus(string(constants.JobStatusPendingLogin))
	if p.JobName != "" {
		create = create.SetJobName(p.JobName)
	}
	if p.PatientIdentifier != "" {
		create = create.SetPatientIdentifier(p.PatientIdentifier)
	}
	if p.DoctorName != "" {
		create = create.SetDoctorName(p.DoctorName)
	}
	if p.Medication != "" {
		create = create.SetMedication(p.Medication)
	}
	if p.StartDate != nil {
		create = create.SetStartDate(*p.StartDate)
	}
	if p.EndDate != nil {
		create = create.SetEndDate(*p.EndDate)
	}

	job, err := create.Save(ctx)
	if err != nil {
		r.logger.Error("extraction_job create failed", "adapter_id", p.AdapterID, "err", err)
		return nil, err
	}
	r.logger.Info("extraction_job created", "job_id", job.ID, "adapter_id", p.AdapterID, "mode", p.Mode)
	return job, nil
}

func (r *extractionJobRepository) Get(ctx context.Context, id uuid.UUID) (*ent.ExtractionJob, error) {
	return r.client.ExtractionJob.
		Query().
		Where(extractionjob.ID(id)).
		WithAdapter().
		Only(ctx)
}

func (r *extractionJobRepository) Transition(ctx context.Context, id uuid.UUID, from []constants.JobStatus, to constants.JobStatus) (bool, error) {
	n, err := r.client.ExtractionJob.
		Update().
		Where(extractionjob.ID(id), extractionjob.StatusIn(statusStrings(from)...)).
		SetStatus(string(to)).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.logger.Error("extraction_job transition failed", "job_id", id, "to", to, "err", err)
		return false, err
	}
	if n == 0 {
		return false, nil
	}
	r.logger.Info("extraction_job transitioned", "job_id", id, "to", to)
	return true, nil
}

func (r *extractionJobRepository) Complete(ctx context.Context, id uuid.UUID, from constants.JobStatus, payload json.RawMessage) (bool, error) {
	n, err := r.client.ExtractionJob.
		Update().
		Where(extractionjob.ID(id), extractionjob.Status(string(from))).
		SetStatus(string(constants.JobStatusCompleted)).
		SetRawExtractedData(payload).
		ClearErrorMessage().
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.logger.Error("extraction_job complete failed", "job_id", id, "err", err)
		return false, err
	}
	if n == 0 {
		return false, nil
	}
	r.logger.Info("extraction_job completed", "job_id", id, "payload_bytes", len(payload))
	return true, nil
}

func (r *extractionJobRepository) Terminate(ctx context.Context, id uuid.UUID, from []constants.JobStatus, to constants.JobStatus, message string) (bool, error) {
	n, err := r.client.ExtractionJob.
		Update().
		Where(extractionjob.ID(id), extractionjob.StatusIn(statusStrings(from)...)).
		SetStatus(string(to)).
		SetErrorMessage(message).
		ClearRawExtractedData().
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.logger.Error("extraction_job terminate failed", "job_id", id, "to", to, "err", err)
		return false, err
	}
	if n == 0 {
		return false, nil
	}
	r.logger.Warn("extraction_job terminated", "job_id", id, "to", to, "error", message)
	return true, nil
}

func (r *extractionJobRepository) SetResultsFilePath(ctx context.Context, id uuid.UUID, path string) error {
	_, err := r.client.ExtractionJob.
		UpdateOneID(id).
		SetResultsFilePath(path).
		Save(ctx)
	if err != nil {
		r.logger.Error("extraction_job set results path failed", "job_id", id, "err", err)
		return err
	}
	return nil
}

func statusStrings(in []constants.JobStatus) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, string(s))
	}
	return out
}
