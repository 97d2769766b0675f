package server

import (
	"context"
	"log/slog"

	v1 "github.com/chartpull/portal-extractor/gen/proto/extraction/v1"
	"github.com/chartpull/portal-extractor/internal/registry"
)

type AdaptersService struct {
	v1.UnimplementedAdaptersServiceServer
	registry *registry.Registry
	logger   *slog.Logger
}

func NewAdaptersService(reg *registry.Registry, logger *slog.Logger) *AdaptersService {
	return &AdaptersService{registry: reg, logger: logger}
}

func (s *AdaptersService) ListAdapters(ctx context.Context, req *v1.ListAdaptersRequest) (*v1.ListAdaptersResponse, error) {
	handles, err := s.registry.List(ctx, req.GetActiveOnly())
	if err != nil {
		s.logger.Warn("list adapters failed", "error", err)
		return nil, toStatusErr(err)
	}
	out := make([]*v1.PortalAdapter, 0, len(handles))
	for _, h := range handles {
		out = append(out, &v1.PortalAdapter{
			Id:               h.ID.String(),
			Name:             h.Name,
			ScriptIdentifier: h.ScriptIdentifier,
			Description:      h.Description,
			IsActive:         h.IsActive,
		})
	}
	return &v1.ListAdaptersResponse{Adapters: out}, nil
}
