package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Errorf("Driver = %q, want sqlite", cfg.Database.Driver)
	}
	if cfg.JWT.ExpireHour != 24 {
		t.Errorf("ExpireHour = %d, want 24", cfg.JWT.ExpireHour)
	}
	if cfg.Redis.Enabled {
		t.Error("Redis should default to disabled")
	}
	if !cfg.Reconcile.Enabled || cfg.Reconcile.Cron != "*/5 * * * *" {
		t.Errorf("Reconcile defaults = %+v", cfg.Reconcile)
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
server:
  host: 127.0.0.1
  port: "9000"
  mode: release
database:
  driver: postgres
  dsn: host=db user=app dbname=teamswap
jwt:
  secret: file-secret
  expire_hour: 12
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Host != "127.0.0.1" || cfg.Server.Port != "9000" || cfg.Server.Mode != "release" {
		t.Errorf("server = %+v", cfg.Server)
	}
	if cfg.Database.Driver != "postgres" {
		t.Errorf("Driver = %q", cfg.Database.Driver)
	}
	if cfg.JWT.Secret != "file-secret" || cfg.JWT.ExpireHour != 12 {
		t.Errorf("jwt = %+v", cfg.JWT)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "3000")
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("JWT_EXPIRE_HOUR", "48")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("RECONCILE_CRON", "0 * * * *")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != "3000" {
		t.Errorf("Port = %q, want 3000", cfg.Server.Port)
	}
	if cfg.Database.Driver != "mysql" {
		t.Errorf("Driver = %q, want mysql", cfg.Database.Driver)
	}
	if cfg.JWT.Secret != "env-secret" || cfg.JWT.ExpireHour != 48 {
		t.Errorf("jwt = %+v", cfg.JWT)
	}
	if !cfg.Redis.Enabled || cfg.Redis.Addr != "redis:6379" {
		t.Errorf("setting REDIS_ADDR should enable Redis: %+v", cfg.Redis)
	}
	if cfg.Reconcile.Cron != "0 * * * *" {
		t.Errorf("Cron = %q", cfg.Reconcile.Cron)
	}
}

func TestLoad_BadEnvNumberIgnored(t *testing.T) {
	t.Setenv("JWT_EXPIRE_HOUR", "not-a-number")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.JWT.ExpireHour != 24 {
		t.Errorf("ExpireHour = %d, want 24", cfg.JWT.ExpireHour)
	}
}
