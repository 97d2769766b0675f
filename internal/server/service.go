// Package server adapts the domain services to the gRPC surface. All
// request validation beyond basic shape checks lives in the domain packages;
// this layer only parses, delegates and maps errors to status codes.
package server

import (
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/chartpull/portal-extractor/gen/ent"
	v1 "github.com/chartpull/portal-extractor/gen/proto/extraction/v1"
	"github.com/chartpull/portal-extractor/internal/common"
)

// toStatusErr maps domain errors onto gRPC status codes. Anything not in the
// taxonomy is an internal error and stays opaque to the caller.
func toStatusErr(err error) error {
	switch {
	case errors.Is(err, common.ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, common.ErrInactiveAdapter),
		errors.Is(err, common.ErrIllegalTransition),
		errors.Is(err, common.ErrTerminalState):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return &t, nil
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func jobToProto(job *ent.ExtractionJob) *v1.ExtractionJob {
	out := &v1.ExtractionJob{
		Id:                   job.ID.String(),
		JobName:              job.JobName,
		TargetUrl:            job.TargetURL,
		ExtractionMode:       job.ExtractionMode,
		PatientIdentifier:    job.PatientIdentifier,
		DoctorName:           job.DoctorName,
		Medication:           job.Medication,
		StartDate:            formatDate(job.StartDate),
		EndDate:              formatDate(job.EndDate),
		ResultsFilePath:      job.ResultsFilePath,
		Status:               job.Status,
		ErrorMessage:         job.ErrorMessage,
		RawExtractedDataJson: string(job.RawExtractedData),
		CreatedAt:            job.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:            job.UpdatedAt.Format(time.RFC3339Nano),
	}
	if job.Edges.Adapter != nil {
		out.AdapterName = job.Edges.Adapter.Name
	}
	return out
}
