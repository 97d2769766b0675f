package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chartpull/portal-extractor/gen/ent"
)

func TestAdapterRepositoryQueries(t *testing.T) {
	client := openTestClient(t)
	ctx := context.Background()

	active, err := client.PortalAdapter.Create().
		SetName("evergreen_health").
		SetScriptIdentifier("evergreen_health_extractor.py").
		Save(ctx)
	require.NoError(t, err)
	_, err = client.PortalAdapter.Create().
		SetName("cascade_medical").
		SetScriptIdentifier("cascade_medical_extractor.py").
		SetIsActive(false).
		Save(ctx)
	require.NoError(t, err)

	repo := NewAdapterRepository(client, testLogger())

	got, err := repo.GetByName(ctx, "evergreen_health")
	require.NoError(t, err)
	assert.Equal(t, active.ID, got.ID)

	_, err = repo.GetByName(ctx, "missing")
	assert.True(t, ent.IsNotFound(err))

	all, err := repo.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "cascade_medical", all[0].Name, "ordered by name")

	activeOnly, err := repo.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, activeOnly, 1)
	assert.Equal(t, "evergreen_health", activeOnly[0].Name)

	exists, err := repo.Exists(ctx, active.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists(ctx, uuid.New())
	require.NoError(t, err)
	assert.False(t, exists)
}
