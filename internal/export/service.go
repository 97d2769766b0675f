package export

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/chartpull/portal-extractor/constants"
	"github.com/chartpull/portal-extractor/internal/common"
	"github.com/chartpull/portal-extractor/internal/jobs"
	"github.com/chartpull/portal-extractor/internal/repository"
)

// Service is a tiny façade over the jobs repository that produces XLSX bytes
// for a completed job's extracted patients.
type Service struct {
	jobsRepo   repository.ExtractionJobRepository
	resultsDir string
	logger     *slog.Logger
}

func NewService(jobsRepo repository.ExtractionJobRepository, resultsDir string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{jobsRepo: jobsRepo, resultsDir: resultsDir, logger: logger}
}

// ExportJobXLSX returns an XLSX workbook (as bytes) for a completed job.
func (s *Service) ExportJobXLSX(ctx context.Context, jobID uuid.UUID) ([]byte, error) {
	start := time.Now()

	job, err := s.jobsRepo.Get(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("%w: job %s", common.ErrNotFound, jobID)
	}
	if constants.JobStatus(job.Status) != constants.JobStatusCompleted {
		return nil, fmt.Errorf("%w: job %s is %s, only COMPLETED jobs export", common.ErrValidation, jobID, job.Status)
	}
	payload := jobs.ParseResultPayload(job.RawExtractedData)
	if payload == nil {
		return nil, fmt.Errorf("%w: job %s has no usable result payload", common.ErrValidation, jobID)
	}

	f := excelize.NewFile()
	const sheet = "Patients"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Patient ID", "Patient Name", "Medications", "Diagnoses", "Allergies"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for row, p := range payload.Patients {
		values := []any{
			p.PatientID,
			p.PatientName,
			strings.Join(p.Medications, "; "),
			strings.Join(p.Diagnoses, "; "),
			strings.Join(p.Allergies, "; "),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	s.logger.Info("exported job results", "job_id", jobID, "patients", len(payload.Patients), "duration", time.Since(start))
	return buf.Bytes(), nil
}

// SaveJobResults writes the workbook under the results directory and records
// the path on the job row.
func (s *Service) SaveJobResults(ctx context.Context, jobID uuid.UUID) (string, error) {
	data, err := s.ExportJobXLSX(ctx, jobID)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.resultsDir, 0o755); err != nil {
		return "", fmt.Errorf("create results dir: %w", err)
	}
	path := filepath.Join(s.resultsDir, jobID.String()+".xlsx")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write results file: %w", err)
	}
	if err := s.jobsRepo.SetResultsFilePath(ctx, jobID, path); err != nil {
		return "", err
	}
	return path, nil
}
