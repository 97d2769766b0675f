package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/chartpull/portal-extractor/gen/ent"
	"github.com/chartpull/portal-extractor/gen/ent/portaladapter"
)

type AdapterRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.PortalAdapter, error)
	GetByName(ctx context.Context, name string) (*ent.PortalAdapter, error)
	List(ctx context.Context, activeOnly bool) ([]*ent.PortalAdapter, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type adapterRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewAdapterRepository(client *ent.Client, logger *slog.Logger) AdapterRepository {
	return &adapterRepository{
		client: client,
		logger: logger,
	}
}

func (r *adapterRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.PortalAdapter, error) {
	return r.client.PortalAdapter.
		Query().
		Where(portaladapter.ID(id)).
		Only(ctx)
}

func (r *adapterRepository) GetByName(ctx context.Context, name string) (*ent.PortalAdapter, error) {
	return r.client.PortalAdapter.
		Query().
		Where(portaladapter.Name(name)).
		Only(ctx)
}

func (r *adapterRepository) List(ctx context.Context, activeOnly bool) ([]*ent.PortalAdapter, error) {
	q := r.client.PortalAdapter.Query()
	if activeOnly {
		q = q.Where(portaladapter.IsActive(true))
	}
	adapters, err := q.Order(portaladapter.ByName()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list adapters", "active_only", activeOnly, "error", err)
		return nil, err
	}
	return adapters, nil
}

func (r *adapterRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	exists, err := r.client.PortalAdapter.Query().Where(portaladapter.ID(id)).Exist(ctx)
	if err != nil {
		r.logger.Error("failed to check adapter existence", "adapter_id", id, "error", err)
		return false, err
	}
	return exists, nil
}
