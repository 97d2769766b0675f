package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/chartpull/portal-extractor/constants"
	v1 "github.com/chartpull/portal-extractor/gen/proto/extraction/v1"
	"github.com/chartpull/portal-extractor/internal/export"
	"github.com/chartpull/portal-extractor/internal/jobs"
	"github.com/chartpull/portal-extractor/internal/orchestrator"
)

type ExtractionJobsService struct {
	v1.UnimplementedExtractionJobsServiceServer
	orch     *orchestrator.Service
	jobs     *jobs.Service
	exporter *export.Service
	logger   *slog.Logger
}

func NewExtractionJobsService(orch *orchestrator.Service, jobSvc *jobs.Service, exporter *export.Service, logger *slog.Logger) *ExtractionJobsService {
	return &ExtractionJobsService{orch: orch, jobs: jobSvc, exporter: exporter, logger: logger}
}

func (s *ExtractionJobsService) SubmitJob(ctx context.Context, req *v1.SubmitJobRequest) (*v1.SubmitJobResponse, error) {
	startDate, err := parseDate(req.GetStartDate())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	endDate, err := parseDate(req.GetEndDate())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	result, err := s.orch.Submit(ctx, orchestrator.SubmitRequest{
		Provider: strings.TrimSpace(req.GetProvider()),
		CreateRequest: jobs.CreateRequest{
			JobName:           strings.TrimSpace(req.GetJobName()),
			TargetURL:         strings.TrimSpace(req.GetTargetUrl()),
			AdapterName:       strings.TrimSpace(req.GetAdapterName()),
			Mode:              constants.ExtractionMode(req.GetExtractionMode()),
			PatientIdentifier: strings.TrimSpace(req.GetPatientIdentifier()),
			DoctorName:        strings.TrimSpace(req.GetDoctorName()),
			Medication:        strings.TrimSpace(req.GetMedication()),
			StartDate:         startDate,
			EndDate:           endDate,
		},
	})
	if err != nil {
		s.logger.Warn("submit job failed", "adapter", req.GetAdapterName(), "error", err)
		return nil, toStatusErr(err)
	}

	resp := &v1.SubmitJobResponse{Decision: decisionToProto(result.Decision)}
	if result.Job != nil {
		job := jobToProto(result.Job)
		if job.AdapterName == "" {
			job.AdapterName = strings.TrimSpace(req.GetAdapterName())
		}
		resp.Job = job
	}
	return resp, nil
}

func (s *ExtractionJobsService) GetJob(ctx context.Context, req *v1.GetJobRequest) (*v1.GetJobResponse, error) {
	id, err := parseJobID(req.GetJobId())
	if err != nil {
		return nil, err
	}
	job, err := s.jobs.Get(ctx, id)
	if err != nil {
		return nil, toStatusErr(err)
	}
	return &v1.GetJobResponse{Job: jobToProto(job)}, nil
}

func (s *ExtractionJobsService) AdvanceJob(ctx context.Context, req *v1.AdvanceJobRequest) (*v1.AdvanceJobResponse, error) {
	id, err := parseJobID(req.GetJobId())
	if err != nil {
		return nil, err
	}

	var ev jobs.Event
	switch constants.JobEvent(req.GetEvent()) {
	case constants.EventBrowserLaunched:
		ev = jobs.BrowserLaunched()
	case constants.EventLoginPromptDetected:
		ev = jobs.LoginPromptDetected()
	case constants.EventUserConfirmed:
		ev = jobs.UserConfirmed()
	case constants.EventExtractionStarted:
		ev = jobs.ExtractionStarted()
	case constants.EventExtractionCompleted:
		var payload json.RawMessage
		if req.GetPayloadJson() != "" {
			payload = json.RawMessage(req.GetPayloadJson())
		}
		ev = jobs.ExtractionCompleted(payload)
	case constants.EventExtractionFailed:
		ev = jobs.ExtractionFailed(req.GetErrorMessage())
	case constants.EventCancelled:
		return nil, status.Error(codes.InvalidArgument, "use CancelJob to cancel")
	default:
		return nil, status.Errorf(codes.InvalidArgument, "unknown event %q", req.GetEvent())
	}

	job, err := s.jobs.Advance(ctx, id, ev)
	if err != nil {
		s.logger.Warn("advance job rejected", "job_id", id, "event", req.GetEvent(), "error", err)
		return nil, toStatusErr(err)
	}
	return &v1.AdvanceJobResponse{Job: jobToProto(job)}, nil
}

func (s *ExtractionJobsService) CancelJob(ctx context.Context, req *v1.CancelJobRequest) (*v1.CancelJobResponse, error) {
	id, err := parseJobID(req.GetJobId())
	if err != nil {
		return nil, err
	}
	job, err := s.jobs.Advance(ctx, id, jobs.Cancelled(strings.TrimSpace(req.GetReason())))
	if err != nil {
		return nil, toStatusErr(err)
	}
	return &v1.CancelJobResponse{Job: jobToProto(job)}, nil
}

func (s *ExtractionJobsService) ExportJobResults(ctx context.Context, req *v1.ExportJobResultsRequest) (*v1.ExportJobResultsResponse, error) {
	id, err := parseJobID(req.GetJobId())
	if err != nil {
		return nil, err
	}
	path, err := s.exporter.SaveJobResults(ctx, id)
	if err != nil {
		return nil, toStatusErr(err)
	}
	return &v1.ExportJobResultsResponse{ResultsFilePath: path}, nil
}

func parseJobID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, status.Error(codes.InvalidArgument, "job_id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Error(codes.InvalidArgument, "job_id must be a UUID")
	}
	return id, nil
}
