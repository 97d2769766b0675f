// Package registry resolves named portal integrations to the automation
// scripts that drive them.
package registry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/chartpull/portal-extractor/gen/ent"
	"github.com/chartpull/portal-extractor/internal/common"
	"github.com/chartpull/portal-extractor/internal/repository"
)

// AdapterHandle is the read-only view of a portal adapter handed to callers.
type AdapterHandle struct {
	ID               uuid.UUID
	Name             string
	ScriptIdentifier string
	Description      string
	IsActive         bool
}

// HandleFromEnt converts a stored adapter row into a handle.
func HandleFromEnt(a *ent.PortalAdapter) AdapterHandle {
	return AdapterHandle{
		ID:               a.ID,
		Name:             a.Name,
		ScriptIdentifier: a.ScriptIdentifier,
		Description:      a.Description,
		IsActive:         a.IsActive,
	}
}

type Registry struct {
	adapters repository.AdapterRepository
	logger   *slog.Logger
}

func NewRegistry(adapters repository.AdapterRepository, logger *slog.Logger) *Registry {
	return &Registry{adapters: adapters, logger: logger}
}

// Resolve looks up an adapter by name. Inactive adapters resolve to
// ErrInactiveAdapter so they can never be bound to new jobs.
func (r *Registry) Resolve(ctx context.Context, name string) (AdapterHandle, error) {
	a, err := r.adapters.GetByName(ctx, name)
	if err != nil {
		if ent.IsNotFound(err) {
			return AdapterHandle{}, fmt.Errorf("%w: adapter %q", common.ErrNotFound, name)
		}
		r.logger.Error("adapter lookup failed", "name", name, "error", err)
		return AdapterHandle{}, fmt.Errorf("%w: resolving adapter %q: %v", common.ErrInfrastructure, name, err)
	}
	if !a.IsActive {
		return AdapterHandle{}, fmt.Errorf("%w: %q", common.ErrInactiveAdapter, name)
	}
	return HandleFromEnt(a), nil
}

// List returns adapters ordered by name.
func (r *Registry) List(ctx context.Context, activeOnly bool) ([]AdapterHandle, error) {
	rows, err := r.adapters.List(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("%w: listing adapters: %v", common.ErrInfrastructure, err)
	}
	handles := make([]AdapterHandle, 0, len(rows))
	for _, a := range rows {
		handles = append(handles, HandleFromEnt(a))
	}
	return handles, nil
}
