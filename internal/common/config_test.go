package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Database: DatabaseConfig{DSN: "postgres://localhost:5432/extractor"},
		Server:   ServerConfig{GRPCAddr: ":8080"},
		Providers: ProvidersConfig{
			DSNTemplate: "postgres://localhost:5432/{store}",
			Stores:      map[string]string{"evergreen": "evergreen_store"},
		},
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost:5432/extractor")

	cfg := LoadConfig()

	assert.Equal(t, ":8080", cfg.Server.GRPCAddr)
	assert.Equal(t, int32(20), cfg.Database.MaxConns)
	assert.Equal(t, 4, cfg.Runner.Workers)
	assert.Equal(t, 256, cfg.Runner.QueueSize)
	assert.Equal(t, 30*time.Minute, cfg.Runner.RunTimeout)
	assert.Equal(t, "./results", cfg.Export.ResultsDir)
	assert.Empty(t, cfg.Providers.Stores)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("DB_URL", "postgres://db:5432/extractor")
	t.Setenv("GRPC_ADDR", ":9090")
	t.Setenv("RUNNER_WORKERS", "8")
	t.Setenv("RUNNER_TIMEOUT", "10m")
	t.Setenv("PROVIDER_DB_URL", "postgres://db:5432/{store}")
	t.Setenv("PROVIDER_STORES", "evergreen=evergreen_store, lakeside = lakeside_store")

	cfg := LoadConfig()

	assert.Equal(t, ":9090", cfg.Server.GRPCAddr)
	assert.Equal(t, 8, cfg.Runner.Workers)
	assert.Equal(t, 10*time.Minute, cfg.Runner.RunTimeout)
	assert.Equal(t, map[string]string{
		"evergreen": "evergreen_store",
		"lakeside":  "lakeside_store",
	}, cfg.Providers.Stores)
}

func TestParseStoreMap(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want map[string]string
	}{
		{"empty", "", map[string]string{}},
		{"single pair", "a=b", map[string]string{"a": "b"}},
		{"trims whitespace", " a = b , c = d ", map[string]string{"a": "b", "c": "d"}},
		{"lowercases provider keys", "Evergreen=evergreen_store", map[string]string{"evergreen": "evergreen_store"}},
		{"skips malformed pairs", "a=b,broken,=x,y=", map[string]string{"a": "b"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, parseStoreMap(tc.raw))
		})
	}
}

func TestValidateConfig(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		require.NoError(t, validConfig().Validate())
	})

	t.Run("missing DSN", func(t *testing.T) {
		cfg := validConfig()
		cfg.Database.DSN = ""
		assert.ErrorIs(t, cfg.Validate(), ErrValidation)
	})

	t.Run("missing gRPC address", func(t *testing.T) {
		cfg := validConfig()
		cfg.Server.GRPCAddr = ""
		assert.ErrorIs(t, cfg.Validate(), ErrValidation)
	})

	t.Run("provider template without placeholder", func(t *testing.T) {
		cfg := validConfig()
		cfg.Providers.DSNTemplate = "postgres://localhost:5432/static"
		assert.ErrorIs(t, cfg.Validate(), ErrValidation)
	})

	t.Run("unsafe store name", func(t *testing.T) {
		cfg := validConfig()
		cfg.Providers.Stores["evil"] = "store'; DROP TABLE sessions"
		assert.ErrorIs(t, cfg.Validate(), ErrValidation)
	})

	t.Run("no provider stores configured", func(t *testing.T) {
		cfg := validConfig()
		cfg.Providers = ProvidersConfig{}
		require.NoError(t, cfg.Validate())
	})
}
