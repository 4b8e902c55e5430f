package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "stripe-payments", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "store", cfg.Database.DBName)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	// Outside production the gateway always runs in test mode
	assert.True(t, cfg.Stripe.IsTestMode)
	assert.Equal(t, "http://localhost:8080/success/", cfg.Stripe.SuccessURL)
	assert.Equal(t, "http://localhost:8080/bad_request/", cfg.Stripe.CancelURL)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	configContent := `
[app]
name = "storefront"
port = "9090"

[database]
host = "db.internal"
dbname = "shop"

[stripe]
secret_key = "sk_test_file"
publishable_key = "pk_test_file"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(configContent), 0o644))

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "storefront", cfg.App.Name)
	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "shop", cfg.Database.DBName)
	assert.Equal(t, "sk_test_file", cfg.Stripe.SecretKey)
	assert.Equal(t, "pk_test_file", cfg.Stripe.PublishableKey)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	configContent := `
[app]
port = "9090"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(configContent), 0o644))
	t.Setenv("STORE_APP_PORT", "7070")
	t.Setenv("STORE_STRIPE_SECRET_KEY", "sk_test_env")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.App.Port)
	assert.Equal(t, "sk_test_env", cfg.Stripe.SecretKey)
}

func TestLoad_ProductionValidation(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("STORE_APP_ENV", "production")

	cfg, err := Load()

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database.password is required in production")
}

func TestLoad_ProductionRejectsTestMode(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("STORE_APP_ENV", "production")
	t.Setenv("STORE_DATABASE_PASSWORD", "secret")
	t.Setenv("STORE_DATABASE_SSLMODE", "require")
	t.Setenv("STORE_STRIPE_SECRET_KEY", "sk_live_123")
	t.Setenv("STORE_STRIPE_IS_TEST_MODE", "true")

	cfg, err := Load()

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stripe.is_test_mode must be false in production")
}

func TestConfig_Validate_PoolSettings(t *testing.T) {
	cfg := &Config{
		App: AppConfig{Env: "development"},
		Database: DatabaseConfig{
			MaxOpenConns: 5,
			MaxIdleConns: 10,
		},
	}

	err := cfg.validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot exceed")
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "p@ss/word",
		DBName:   "store",
		SSLMode:  "disable",
	}

	dsn := d.DSN()

	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "localhost:5432")
	assert.Contains(t, dsn, "sslmode=disable")
	// Special characters in the password must be escaped
	assert.NotContains(t, dsn, "p@ss/word")
}
