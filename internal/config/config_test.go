package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTP.Addr != ":5000" {
		t.Errorf("http.addr = %q", cfg.HTTP.Addr)
	}
	if cfg.Session.Backend != "memory" || cfg.Session.TTL != 30*time.Minute || cfg.Session.Cookie != "mftnb_session" {
		t.Errorf("session = %+v", cfg.Session)
	}
	if cfg.Kafka.Topic != "mftnb.booking.submitted" || len(cfg.Kafka.Brokers) != 0 {
		t.Errorf("kafka = %+v", cfg.Kafka)
	}
	if cfg.Rate.PerMinute != 120 {
		t.Errorf("rate.per_minute = %d", cfg.Rate.PerMinute)
	}
	if cfg.IsProduction() {
		t.Error("default env should not be production")
	}
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("MFTNB_ENV", "production")
	t.Setenv("MFTNB_HTTP_ADDR", ":9000")
	t.Setenv("MFTNB_SESSION_BACKEND", "redis")
	t.Setenv("MFTNB_SESSION_TTL", "2h")
	t.Setenv("MFTNB_REDIS_DB", "3")
	t.Setenv("MFTNB_KAFKA_BROKERS", "k1:9092, k2:9092,")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.IsProduction() || cfg.HTTP.Addr != ":9000" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Session.Backend != "redis" || cfg.Session.TTL != 2*time.Hour {
		t.Errorf("session = %+v", cfg.Session)
	}
	if cfg.Redis.DB != 3 {
		t.Errorf("redis.db = %d", cfg.Redis.DB)
	}
	if got := strings.Join(cfg.Kafka.Brokers, "|"); got != "k1:9092|k2:9092" {
		t.Errorf("kafka.brokers = %q", got)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"MFTNB_SESSION_BACKEND", "disk"},
		{"MFTNB_SESSION_TTL", "0s"},
		{"MFTNB_SESSION_TTL", "soon"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Error("expected error")
			}
		})
	}
}
