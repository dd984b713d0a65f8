package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs yields only
// the documented defaults.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultTokenIssuer, cfg.App.TokenIssuer)
	assert.Equal(t, DefaultTokenDuration, cfg.App.TokenDuration)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Empty(t, cfg.App.TokenSignKey, "secrets must not be defaulted")
	assert.Empty(t, cfg.Storage.DB.DSN, "DSN must not be defaulted")
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result, first non-zero value winning.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{TokenSignKey: "first-key"}},
		&StructuredConfig{App: App{TokenSignKey: "second-key", TokenIssuer: "issuer"}},
		&StructuredConfig{Storage: Storage{DB: DB{DSN: "postgres://localhost/tasks"}}},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "first-key", cfg.App.TokenSignKey)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "postgres://localhost/tasks", cfg.Storage.DB.DSN)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_TOKEN_SIGN_KEY", "env-sign-key")
	t.Setenv("SERVER_ADDRESS", "127.0.0.1:9000")

	b := newConfigBuilder().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)

	assert.Equal(t, "env-sign-key", b.configs[0].App.TokenSignKey)
	assert.Equal(t, "127.0.0.1:9000", b.configs[0].Server.HTTPAddress)
}

func TestWithEnv_NoErrorOnEmptyEnv(t *testing.T) {
	b := newConfigBuilder().withEnv()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"token_duration": "2h"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	b.withJSON()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, 2*time.Hour, b.configs[1].App.TokenDuration)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})

	b.withJSON()
	assert.Error(t, b.err)
}

// ── validation ────────────────────────────────────────────────────────────────

func TestValidate_MissingSignKey(t *testing.T) {
	cfg := &StructuredConfig{Storage: Storage{DB: DB{DSN: "postgres://localhost/tasks"}}}
	assert.ErrorIs(t, cfg.validate(), ErrNoTokenSignKey)
}

func TestValidate_MissingDSN(t *testing.T) {
	cfg := &StructuredConfig{App: App{TokenSignKey: "key"}}
	assert.ErrorIs(t, cfg.validate(), ErrNoDatabaseDSN)
}

func TestValidate_OK(t *testing.T) {
	cfg := &StructuredConfig{
		App:     App{TokenSignKey: "key"},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/tasks"}},
	}
	assert.NoError(t, cfg.validate())
}

func TestClientValidate(t *testing.T) {
	valid := &ClientConfig{
		Adapter: ClientAdapter{ServerURL: "http://localhost:3000", RequestTimeout: time.Second},
		Storage: ClientStorage{DB: ClientDB{Path: "cache.db"}},
	}
	assert.NoError(t, valid.validate())

	noURL := &ClientConfig{
		Adapter: ClientAdapter{RequestTimeout: time.Second},
		Storage: ClientStorage{DB: ClientDB{Path: "cache.db"}},
	}
	assert.ErrorIs(t, noURL.validate(), ErrInvalidAdapterConfigs)

	noPath := &ClientConfig{
		Adapter: ClientAdapter{ServerURL: "http://localhost:3000", RequestTimeout: time.Second},
	}
	assert.ErrorIs(t, noPath.validate(), ErrInvalidStorageConfigs)
}
