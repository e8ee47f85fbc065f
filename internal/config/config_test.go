package config

import (
	"testing"
	"time"
)

func TestLoadFromDefaults(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{})
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:8077" || cfg.DBPath != "lotus-sim.db" {
		t.Errorf("addr = %s, db = %s", cfg.HTTPAddr, cfg.DBPath)
	}
	if cfg.RequestTimeout != 60*time.Second || cfg.ShutdownTimeout != 10*time.Second || cfg.NotifyWriteTimeout != 5*time.Second {
		t.Errorf("timeouts = %s %s %s", cfg.RequestTimeout, cfg.ShutdownTimeout, cfg.NotifyWriteTimeout)
	}
	if cfg.InfiniteCredits {
		t.Error("InfiniteCredits should default to false")
	}
}

func TestLoadFromOverrides(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"SIM_HTTP_ADDR":        ":9000",
		"SIM_LOG_LEVEL":        "debug",
		"SIM_LOG_FORMAT":       "json",
		"SIM_INFINITE_CREDITS": "true",
		"SIM_REQUEST_TIMEOUT":  "5s",
	})
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.HTTPAddr != ":9000" || cfg.LogLevel != "debug" || cfg.LogFormat != "json" {
		t.Errorf("cfg = %+v", cfg)
	}
	if !cfg.InfiniteCredits || cfg.RequestTimeout != 5*time.Second {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadFromRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"level", map[string]string{"SIM_LOG_LEVEL": "loud"}},
		{"format", map[string]string{"SIM_LOG_FORMAT": "xml"}},
		{"timeout", map[string]string{"SIM_SHUTDOWN_TIMEOUT": "0s"}},
		{"duration syntax", map[string]string{"SIM_REQUEST_TIMEOUT": "soon"}},
		{"bool syntax", map[string]string{"SIM_INFINITE_CREDITS": "maybe"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadFrom(tt.env); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
