package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chartpull/portal-extractor/internal/common"
)

func TestStoreNameResolvesCaseInsensitively(t *testing.T) {
	cfg := common.ProvidersConfig{
		DSNTemplate: "postgres://localhost:5432/{store}",
		// Keys arrive lowercased from config parsing regardless of how the
		// operator wrote them.
		Stores: map[string]string{"evergreen": "evergreen_store"},
	}
	p := NewProviderStores(cfg, testLogger())

	name, err := p.StoreName("Evergreen")
	require.NoError(t, err)
	assert.Equal(t, "evergreen_store", name)

	name, err = p.StoreName("  evergreen  ")
	require.NoError(t, err)
	assert.Equal(t, "evergreen_store", name)

	_, err = p.StoreName("unknown")
	assert.ErrorIs(t, err, common.ErrNotFound)
}
