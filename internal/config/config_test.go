package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"APP_ENV", "LOG_LEVEL", "HTTP_ADDR", "CORS_ALLOWED_ORIGINS",
	"DATABASE_URL", "DB_HOST", "DB_USER", "DB_PASS", "DB_NAME", "DB_PORT", "DB_SSLMODE",
	"JWT_SECRET", "AUTH_ISSUER", "AUTH_AUDIENCE", "AUTH_PUBLIC_KEY_FILE", "TOKEN_TTL",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.App.Env)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_USER", "club")
	t.Setenv("DB_PASS", "secret")
	t.Setenv("DB_NAME", "clubs")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("TOKEN_TTL", "2h")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test,")

	cfg, err := Load("")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.HTTP.CORSAllowedOrigins)
	assert.Equal(t, "host=db user=club password=secret dbname=clubs port=5432 sslmode=disable TimeZone=UTC", cfg.DSN())
}

func TestLoadFileThenEnvOverride(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "clubhub.yaml")
	content := `
app:
  env: prod
http:
  addr: ":9000"
database:
  url: postgres://file/clubs
auth:
  jwt_secret: from-file
  token_ttl: 30m
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("HTTP_ADDR", ":7000")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "prod", cfg.App.Env)
	assert.Equal(t, ":7000", cfg.HTTP.Addr)
	assert.Equal(t, "postgres://file/clubs", cfg.DSN())
	assert.Equal(t, 30*time.Minute, cfg.Auth.TokenTTL)
}

func TestLoadInvalidTTL(t *testing.T) {
	clearEnv(t)
	t.Setenv("TOKEN_TTL", "forever")

	_, err := Load("")
	assert.Error(t, err)
}

func TestValidateReportsMissing(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_HOST", "db")

	cfg, err := Load("")
	require.NoError(t, err)

	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_NAME, DB_PASS, DB_PORT, DB_USER")
	assert.Contains(t, err.Error(), "JWT_SECRET")
}
