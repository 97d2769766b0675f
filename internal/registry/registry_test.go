package registry

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chartpull/portal-extractor/gen/ent"
	"github.com/chartpull/portal-extractor/internal/common"
)

type mockAdapterRepo struct {
	adapters map[string]*ent.PortalAdapter
	listErr  error
	getErr   error
}

func newMockAdapterRepo() *mockAdapterRepo {
	return &mockAdapterRepo{adapters: make(map[string]*ent.PortalAdapter)}
}

func (m *mockAdapterRepo) add(name, script string, active bool) {
	m.adapters[name] = &ent.PortalAdapter{
		ID:               uuid.New(),
		Name:             name,
		ScriptIdentifier: script,
		IsActive:         active,
	}
}

func (m *mockAdapterRepo) GetByID(_ context.Context, id uuid.UUID) (*ent.PortalAdapter, error) {
	for _, a := range m.adapters {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, &ent.NotFoundError{}
}

func (m *mockAdapterRepo) GetByName(_ context.Context, name string) (*ent.PortalAdapter, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if a, ok := m.adapters[name]; ok {
		return a, nil
	}
	return nil, &ent.NotFoundError{}
}

func (m *mockAdapterRepo) List(_ context.Context, activeOnly bool) ([]*ent.PortalAdapter, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []*ent.PortalAdapter
	for _, a := range m.adapters {
		if !activeOnly || a.IsActive {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *mockAdapterRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, err := m.GetByID(context.Background(), id)
	return err == nil, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestResolve(t *testing.T) {
	repo := newMockAdapterRepo()
	repo.add("examplehealth", "examplehealth_extractor.py", true)
	repo.add("retiredportal", "retired_extractor.py", false)
	reg := NewRegistry(repo, testLogger())
	ctx := context.Background()

	handle, err := reg.Resolve(ctx, "examplehealth")
	require.NoError(t, err)
	assert.Equal(t, "examplehealth", handle.Name)
	assert.Equal(t, "examplehealth_extractor.py", handle.ScriptIdentifier)
	assert.True(t, handle.IsActive)

	_, err = reg.Resolve(ctx, "nosuchportal")
	assert.ErrorIs(t, err, common.ErrNotFound)

	_, err = reg.Resolve(ctx, "retiredportal")
	assert.ErrorIs(t, err, common.ErrInactiveAdapter)
}

func TestResolveStoreFailure(t *testing.T) {
	repo := newMockAdapterRepo()
	repo.getErr = errors.New("connection refused")
	reg := NewRegistry(repo, testLogger())

	_, err := reg.Resolve(context.Background(), "examplehealth")
	assert.ErrorIs(t, err, common.ErrInfrastructure)
}

func TestListOrdersByName(t *testing.T) {
	repo := newMockAdapterRepo()
	repo.add("zportal", "z.py", true)
	repo.add("aportal", "a.py", true)
	repo.add("mportal", "m.py", false)
	reg := NewRegistry(repo, testLogger())

	all, err := reg.List(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"aportal", "mportal", "zportal"}, []string{all[0].Name, all[1].Name, all[2].Name})

	active, err := reg.List(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, active, 2)
	for _, h := range active {
		assert.True(t, h.IsActive)
	}
}
