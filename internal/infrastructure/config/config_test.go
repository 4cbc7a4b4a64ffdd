package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvKeys = []string{
	"CLIENTES_APP_NAME",
	"CLIENTES_APP_ENV",
	"CLIENTES_APP_PORT",
	"CLIENTES_DATABASE_DRIVER",
	"CLIENTES_DATABASE_HOST",
	"CLIENTES_DATABASE_PORT",
	"CLIENTES_DATABASE_PASSWORD",
	"CLIENTES_DATABASE_SSLMODE",
	"CLIENTES_DATABASE_PATH",
	"CLIENTES_DATABASE_MAX_OPEN_CONNS",
	"CLIENTES_DATABASE_MAX_IDLE_CONNS",
	"CLIENTES_CPF_MODE",
	"CLIENTES_CPF_REJECTED_SUFFIXES",
	"CLIENTES_CPF_REMOTE_URL",
	"CLIENTES_CPF_TIMEOUT",
	"CLIENTES_TELEMETRY_SAMPLING_RATIO",
}

// clearEnv blanks every key for the duration of the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configEnvKeys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoad(t *testing.T) {
	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv(t)

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "clientes-api", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, DriverPostgres, cfg.Database.Driver)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "clientes", cfg.Database.DBName)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.Equal(t, 5, cfg.Database.MaxIdleConns)
		assert.Equal(t, CPFModeStub, cfg.CPF.Mode)
		assert.Equal(t, []string{"00"}, cfg.CPF.RejectedSuffixes)
		assert.Equal(t, 5*time.Second, cfg.CPF.Timeout)
		assert.Equal(t, 60*time.Second, cfg.Telemetry.MetricsInterval)
		assert.Equal(t, "clientes-api", cfg.Telemetry.ServiceName)
	})

	t.Run("loads values from environment variables", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("CLIENTES_APP_PORT", "9090")
		t.Setenv("CLIENTES_DATABASE_DRIVER", "sqlite")
		t.Setenv("CLIENTES_DATABASE_PATH", ":memory:")
		t.Setenv("CLIENTES_CPF_MODE", "checksum")
		t.Setenv("CLIENTES_CPF_TIMEOUT", "2s")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "9090", cfg.App.Port)
		assert.Equal(t, DriverSQLite, cfg.Database.Driver)
		assert.Equal(t, ":memory:", cfg.Database.DSN())
		assert.Equal(t, CPFModeChecksum, cfg.CPF.Mode)
		assert.Equal(t, 2*time.Second, cfg.CPF.Timeout)
	})

	t.Run("rejects unknown database driver", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("CLIENTES_DATABASE_DRIVER", "mysql")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.driver")
	})

	t.Run("rejects unknown cpf mode", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("CLIENTES_CPF_MODE", "oracle")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cpf.mode")
	})

	t.Run("rejects idle connections above max", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("CLIENTES_DATABASE_MAX_OPEN_CONNS", "5")
		t.Setenv("CLIENTES_DATABASE_MAX_IDLE_CONNS", "10")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot exceed")
	})

	t.Run("rejects sampling ratio out of range", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("CLIENTES_TELEMETRY_SAMPLING_RATIO", "1.5")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sampling_ratio")
	})
}

func TestLoad_ProductionValidation(t *testing.T) {
	setValidProductionBase := func(t *testing.T) {
		clearEnv(t)
		t.Setenv("CLIENTES_APP_ENV", "production")
		t.Setenv("CLIENTES_DATABASE_PASSWORD", "secure-password")
		t.Setenv("CLIENTES_DATABASE_SSLMODE", "require")
		t.Setenv("CLIENTES_CPF_MODE", "remote")
	}

	t.Run("passes validation with valid production config", func(t *testing.T) {
		setValidProductionBase(t)

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "production", cfg.App.Env)
	})

	t.Run("requires database.password in production", func(t *testing.T) {
		setValidProductionBase(t)
		os.Unsetenv("CLIENTES_DATABASE_PASSWORD")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.password is required in production")
	})

	t.Run("requires SSL enabled in production", func(t *testing.T) {
		setValidProductionBase(t)
		t.Setenv("CLIENTES_DATABASE_SSLMODE", "disable")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.sslmode cannot be 'disable' in production")
	})

	t.Run("forbids the stub cpf validator in production", func(t *testing.T) {
		setValidProductionBase(t)
		t.Setenv("CLIENTES_CPF_MODE", "stub")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not allowed in production")
	})

	t.Run("rejects malformed remote url", func(t *testing.T) {
		setValidProductionBase(t)
		t.Setenv("CLIENTES_CPF_REMOTE_URL", "not a url")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cpf.remote_url")
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Run("generates valid postgres DSN", func(t *testing.T) {
		cfg := DatabaseConfig{
			Driver:   DriverPostgres,
			Host:     "localhost",
			Port:     5432,
			User:     "testuser",
			Password: "testpass",
			DBName:   "testdb",
			SSLMode:  "disable",
		}

		dsn := cfg.DSN()
		assert.Contains(t, dsn, "localhost:5432")
		assert.Contains(t, dsn, "testuser")
		assert.Contains(t, dsn, "testdb")
		assert.Contains(t, dsn, "sslmode=disable")
	})

	t.Run("escapes special characters in password", func(t *testing.T) {
		cfg := DatabaseConfig{
			Driver:   DriverPostgres,
			Host:     "localhost",
			Port:     5432,
			User:     "user",
			Password: "pass@word#123",
			DBName:   "db",
			SSLMode:  "disable",
		}

		assert.Contains(t, cfg.DSN(), "pass%40word%23123")
	})

	t.Run("uses the file path for sqlite", func(t *testing.T) {
		cfg := DatabaseConfig{Driver: DriverSQLite, Path: "/tmp/clientes.db"}

		assert.Equal(t, "/tmp/clientes.db", cfg.DSN())
	})
}
