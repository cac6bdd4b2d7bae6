package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_EarlierSourceWins verifies that a field set by an earlier source
// is not overwritten by a later one, while gaps are filled.
func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "http://env:8000"}},
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "http://flag:8000", RequestTimeout: time.Second}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "http://env:8000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, time.Second, cfg.Adapter.RequestTimeout)
}

func TestBuild_InvalidFilePath(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{FilePath: " client.json"})

	_, err := b.build()
	assert.Error(t, err)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

func TestWithDefaults_FillsGaps(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Storage: Storage{Kind: StorageMemory}})

	cfg, err := b.withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, StorageMemory, cfg.Storage.Kind)
	assert.Equal(t, DefaultStorageDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultHTTPAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultAPIPrefix, cfg.Adapter.APIPrefix)
	assert.Equal(t, DefaultProbePath, cfg.App.ProbePath)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
}

// ── withFile ──────────────────────────────────────────────────────────────────

func TestWithFile_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withFile()

	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithFile_LoadsReferencedFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "client.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"adapter": {"api_prefix": "/api/v3"}}`), 0o600))

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{FilePath: p})

	cfg, err := b.withFile().build()
	require.NoError(t, err)
	assert.Equal(t, "/api/v3", cfg.Adapter.APIPrefix)
	assert.Equal(t, p, cfg.FilePath)
}

func TestWithFile_MissingFileRecordsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{FilePath: filepath.Join(t.TempDir(), "nope.json")})

	_, err := b.withFile().build()
	assert.Error(t, err)
}

// ── GetClientConfig ───────────────────────────────────────────────────────────

func TestGetClientConfig_FromEnvAndDefaults(t *testing.T) {
	withArgs(t)
	setEnvVars(t, map[string]string{
		"ADAPTER_ADDRESS": "http://erp.local:8000",
		"STORAGE_KIND":    "memory",
	})

	cfg, err := GetClientConfig()

	require.NoError(t, err)
	assert.Equal(t, "http://erp.local:8000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultAPIPrefix, cfg.Adapter.APIPrefix)
	assert.Equal(t, StorageMemory, cfg.Storage.Kind)
	assert.Equal(t, DefaultProbePath, cfg.App.ProbePath)
}

func TestGetClientConfig_EnvBeatsFlags(t *testing.T) {
	withArgs(t, "-storage", "file", "-d", "/tmp/flag.json")
	setEnvVars(t, map[string]string{"STORAGE_KIND": "memory"})

	cfg, err := GetClientConfig()

	require.NoError(t, err)
	assert.Equal(t, StorageMemory, cfg.Storage.Kind)
	assert.Equal(t, "/tmp/flag.json", cfg.Storage.DB.DSN)
}

func TestGetClientConfig_InvalidStorageKind(t *testing.T) {
	withArgs(t, "-storage", "redis")
	clearEnvVars(t)

	_, err := GetClientConfig()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}
