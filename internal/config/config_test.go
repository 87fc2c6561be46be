package config

import (
	"strings"
	"testing"
)

func withEnv(t *testing.T, kv map[string]string) {
	t.Helper()
	for k, v := range kv {
		t.Setenv(k, v)
	}
}

func TestLoad_Defaults(t *testing.T) {
	c := Load()
	if c.AppPort != "8080" {
		t.Fatalf("AppPort = %q, want 8080", c.AppPort)
	}
	if c.MySQLPort != "3306" || c.MySQLDB != "cmcs" {
		t.Fatalf("unexpected mysql defaults: %+v", c)
	}
	if c.UploadDir != "uploads" {
		t.Fatalf("UploadDir = %q", c.UploadDir)
	}
	if c.IdempTTLSecs != 300 {
		t.Fatalf("IdempTTLSecs = %d, want 300", c.IdempTTLSecs)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	withEnv(t, map[string]string{
		"APP_PORT":   "9090",
		"MYSQL_HOST": "db.internal",
		"REDIS_DB":   "3",
		"JWT_SECRET": "s3cret",
	})
	c := Load()
	if c.AppPort != "9090" || c.MySQLHost != "db.internal" || c.RedisDB != 3 || c.JWTSecret != "s3cret" {
		t.Fatalf("env overrides not applied: %+v", c)
	}
}

func TestValidate_RequiresJWTSecret(t *testing.T) {
	c := Load()
	c.JWTSecret = ""
	err := c.Validate()
	if err == nil || !strings.Contains(err.Error(), "JWT_SECRET") {
		t.Fatalf("expected JWT_SECRET error, got %v", err)
	}
}

func TestValidate_BadPort(t *testing.T) {
	withEnv(t, map[string]string{"MYSQL_PORT": "not-a-port", "JWT_SECRET": "x"})
	c := Load()
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for invalid MYSQL_PORT")
	}
}

func TestMySQLDSN(t *testing.T) {
	withEnv(t, map[string]string{
		"MYSQL_HOST": "h", "MYSQL_PORT": "3307",
		"MYSQL_DB": "d", "MYSQL_USER": "u", "MYSQL_PASS": "p",
	})
	c := Load()
	dsn := c.MySQLDSN()
	if !strings.HasPrefix(dsn, "u:p@tcp(h:3307)/d?") {
		t.Fatalf("dsn = %q", dsn)
	}
	if !strings.Contains(dsn, "parseTime=true") {
		t.Fatalf("dsn missing parseTime: %q", dsn)
	}
}
