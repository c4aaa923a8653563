package configs

import (
	"testing"
	"time"

	gormLogger "gorm.io/gorm/logger"
)

func TestLoad(t *testing.T) {
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("PORT", "8080")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("REQUEST_TIMEOUT", "2s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBDriver != "sqlite" {
		t.Errorf("DBDriver = %q", cfg.DBDriver)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if len(cfg.CorsAllowOrigins) != 2 || cfg.CorsAllowOrigins[1] != "http://b.test" {
		t.Errorf("CorsAllowOrigins = %v", cfg.CorsAllowOrigins)
	}
	if cfg.RequestTimeout != 2*time.Second {
		t.Errorf("RequestTimeout = %v", cfg.RequestTimeout)
	}
	if cfg.EvidenceMaxBytes != 5*1024*1024 {
		t.Errorf("EvidenceMaxBytes = %d", cfg.EvidenceMaxBytes)
	}
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

func TestParseGormLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want gormLogger.LogLevel
	}{
		{"silent", gormLogger.Silent},
		{"ERROR", gormLogger.Error},
		{" info ", gormLogger.Info},
		{"", gormLogger.Warn},
		{"verbose", gormLogger.Warn},
	}
	for _, tt := range tests {
		if got := ParseGormLogLevel(tt.in); got != tt.want {
			t.Errorf("ParseGormLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
