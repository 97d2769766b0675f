package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/chartpull/portal-extractor/gen/proto/extraction/v1"
	"github.com/chartpull/portal-extractor/internal/coverage"
	"github.com/chartpull/portal-extractor/internal/reuse"
)

type ReuseService struct {
	v1.UnimplementedReuseServiceServer
	engine *reuse.Engine
	logger *slog.Logger
}

func NewReuseService(engine *reuse.Engine, logger *slog.Logger) *ReuseService {
	return &ReuseService{engine: engine, logger: logger}
}

func (s *ReuseService) DecideReuse(ctx context.Context, req *v1.DecideReuseRequest) (*v1.DecideReuseResponse, error) {
	provider := strings.TrimSpace(req.GetProvider())
	if provider == "" {
		return nil, status.Error(codes.InvalidArgument, "provider is required")
	}
	startDate, err := parseDate(req.GetStartDate())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	endDate, err := parseDate(req.GetEndDate())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	dr := reuse.Request{
		Provider:   provider,
		Medication: strings.TrimSpace(req.GetMedication()),
	}
	if startDate != nil {
		dr.StartDate = *startDate
	}
	if endDate != nil {
		dr.EndDate = *endDate
	}

	decision := s.engine.Decide(ctx, dr)
	s.logger.Info("reuse decision", "provider", provider, "action", decision.Action, "should_reuse", decision.ShouldReuse)
	return &v1.DecideReuseResponse{Decision: decisionToProto(decision)}, nil
}

func decisionToProto(d reuse.Decision) *v1.ReuseDecision {
	out := &v1.ReuseDecision{
		ShouldReuse:        d.ShouldReuse,
		Action:             string(d.Action),
		Reason:             d.Reason,
		CoveragePercentage: d.CoveragePercentage,
	}
	if d.BestSession != nil {
		out.BestSession = sessionToProto(*d.BestSession)
	}
	for _, s := range d.Sessions {
		out.Sessions = append(out.Sessions, sessionToProto(s))
	}
	for _, p := range d.SampleEvidence {
		out.SampleEvidence = append(out.SampleEvidence, &v1.PatientEvidence{
			PatientId:       p.PatientID,
			PatientName:     p.PatientName,
			MedicationCount: int32(p.MedicationCount),
			DiagnosisCount:  int32(p.DiagnosisCount),
		})
	}
	return out
}

func sessionToProto(s coverage.SessionSummary) *v1.SessionSummary {
	return &v1.SessionSummary{
		Id:                s.ID,
		Medication:        s.Medication,
		StartDate:         s.StartDate.Format("2006-01-02"),
		EndDate:           s.EndDate.Format("2006-01-02"),
		CreatedAt:         s.CreatedAt.Format(time.RFC3339Nano),
		ProcessedPatients: int32(s.ProcessedPatients),
	}
}
