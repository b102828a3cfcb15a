package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("server port = %q, want default 8080", cfg.Server.Port)
	}
	if cfg.Database.DBName != "jobport" {
		t.Errorf("db name = %q, want jobport", cfg.Database.DBName)
	}
	if cfg.RateLimit.AuthBurst != 5 {
		t.Errorf("auth burst = %d, want 5", cfg.RateLimit.AuthBurst)
	}
}

func TestLoadConfig_FileValues(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	path := writeConfigFile(t, `
server:
  port: "9999"
database:
  host: "db.internal"
jwt:
  access_token_expiration: "30m"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Server.Port != "9999" {
		t.Errorf("server port = %q, want 9999", cfg.Server.Port)
	}
	if cfg.Database.Host != "db.internal" {
		t.Errorf("db host = %q, want db.internal", cfg.Database.Host)
	}
	if cfg.JWT.AccessTokenExpiration != "30m" {
		t.Errorf("access token expiration = %q, want 30m", cfg.JWT.AccessTokenExpiration)
	}
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("SERVER_PORT", "7777")

	path := writeConfigFile(t, `
server:
  port: "9999"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Server.Port != "7777" {
		t.Errorf("server port = %q, want env override 7777", cfg.Server.Port)
	}
}

func TestLoadConfig_MissingJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadConfig() accepted a configuration without a JWT secret")
	}
}

func TestLoadConfig_InvalidDuration(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_ACCESS_TOKEN_EXPIRATION", "sometime")

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadConfig() accepted a malformed token expiration")
	}
}

func TestGetPostgresConnectionString(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)
	cfg.Database.User = "app"
	cfg.Database.Password = "pw"
	cfg.Database.Host = "db"
	cfg.Database.Port = "5433"
	cfg.Database.DBName = "jobs"

	want := "postgres://app:pw@db:5433/jobs?sslmode=disable"
	if got := cfg.GetPostgresConnectionString(); got != want {
		t.Errorf("GetPostgresConnectionString() = %q, want %q", got, want)
	}
}
