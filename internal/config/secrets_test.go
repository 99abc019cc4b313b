package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BilalArshad6074/Smart-Parking/internal/config"
)

func TestResolveDBCredentials_FileFallback(t *testing.T) {
	dir := t.TempDir()
	credsFile := filepath.Join(dir, "dbCredentials.json")
	require.NoError(t, os.WriteFile(credsFile, []byte(`{
		"host": "db.internal",
		"port": 5433,
		"user": "spms_prod",
		"password": "s3cret",
		"dbname": "parking_db",
		"sslmode": "require"
	}`), 0o600))

	cfg := &config.Config{
		DBCredentialsFile: credsFile,
		DB:                config.DBCredentials{Host: "localhost", Port: 5432},
	}
	require.NoError(t, config.ResolveDBCredentials(context.Background(), cfg))

	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, 5433, cfg.DB.Port)
	assert.Equal(t, "spms_prod", cfg.DB.User)
	assert.Equal(t, "s3cret", cfg.DB.Password)
	assert.Equal(t, "require", cfg.DB.SSLMode)
}

func TestResolveDBCredentials_PartialBlobKeepsEnvValues(t *testing.T) {
	dir := t.TempDir()
	credsFile := filepath.Join(dir, "dbCredentials.json")
	require.NoError(t, os.WriteFile(credsFile, []byte(`{"user": "spms", "password": "pw"}`), 0o600))

	cfg := &config.Config{
		DBCredentialsFile: credsFile,
		DB:                config.DBCredentials{Host: "localhost", Port: 5432, DBName: "parking_db", SSLMode: "disable"},
	}
	require.NoError(t, config.ResolveDBCredentials(context.Background(), cfg))

	assert.Equal(t, "localhost", cfg.DB.Host, "fields missing from the blob stay env-derived")
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, "spms", cfg.DB.User)
}

func TestResolveDBCredentials_NoSourcesIsNoop(t *testing.T) {
	cfg := &config.Config{
		DBCredentialsFile: filepath.Join(t.TempDir(), "missing.json"),
		DB:                config.DBCredentials{Host: "localhost"},
	}
	require.NoError(t, config.ResolveDBCredentials(context.Background(), cfg))
	assert.Equal(t, "localhost", cfg.DB.Host)
}

func TestResolveDBCredentials_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	credsFile := filepath.Join(dir, "dbCredentials.json")
	require.NoError(t, os.WriteFile(credsFile, []byte(`not json`), 0o600))

	cfg := &config.Config{DBCredentialsFile: credsFile}
	assert.Error(t, config.ResolveDBCredentials(context.Background(), cfg))
}
