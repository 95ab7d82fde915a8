package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()

	t.Setenv("NOTION_API_KEY", "secret_test")
	t.Setenv("NOTION_DATABASE_ID", "db-0001")
	t.Setenv("MINIO_ROOT_USER", "")
	t.Setenv("MINIO_ROOT_PASSWORD", "")
	t.Setenv("BROKER_URI", "")
	t.Setenv("HOST", "")
	t.Setenv("PORT", "")
}

func TestLoadfromFile(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load("./config.yml")
	require.NoError(t, err, "error must be nil.")

	assert.Equal(t, "0.0.0.0:3001", cfg.HTTPServer.Address)
	assert.Equal(t, "db-0001", cfg.Notion.DatabaseID)
	assert.Equal(t, int64(5*1024*1024), cfg.Uploader.EmbedLimit)
	assert.Equal(t, 8, cfg.Listing.FanOutLimit)
	assert.False(t, cfg.ArchiveEnabled())
	assert.False(t, cfg.BrokerEnabled())

	assert.Equal(t, "info", cfg.Logger.LogLevel)
	assert.Equal(t, []string{"console"}, cfg.Logger.Targets)
	assert.Equal(t, 10, cfg.Logger.MaxSize)
	assert.Equal(t, 5, cfg.Logger.MaxBackups)
}

func TestLoadRequiresNotionCredentials(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("NOTION_API_KEY", "")

	_, err := Load("./config.yml")
	require.Error(t, err)
	assert.IsType(t, Error{}, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestLoadAddressOverride(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "8080")

	cfg, err := Load("./config.yml")
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTPServer.Address)
}

func TestLoadArchiveNeedsCredentials(t *testing.T) {
	setRequiredEnv(t)

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
environment: "prod"
http_server:
  address: ":3001"
minio_client:
  endpoint: "localhost:9000"
minio_uploader:
  bucket: "archive"
`), 0o600))

	_, err := Load(path)
	require.Error(t, err)

	t.Setenv("MINIO_ROOT_USER", "user")
	t.Setenv("MINIO_ROOT_PASSWORD", "password")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.ArchiveEnabled())
}

func TestOverrideAddress(t *testing.T) {
	tests := []struct {
		address, host, port, want string
	}{
		{address: "0.0.0.0:3001", want: "0.0.0.0:3001"},
		{address: "0.0.0.0:3001", host: "127.0.0.1", want: "127.0.0.1:3001"},
		{address: ":3001", port: "9000", want: ":9000"},
		{address: "", host: "localhost", port: "80", want: "localhost:80"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, overrideAddress(tt.address, tt.host, tt.port))
	}
}
