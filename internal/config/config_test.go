package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Port != "8080" || cfg.Server.MaxUploadSize != 16<<20 {
		t.Fatalf("server = %+v", cfg.Server)
	}
	if cfg.Upstream.URL != "http://localhost:5000" || cfg.Upstream.Timeout != 90*time.Second {
		t.Fatalf("upstream = %+v", cfg.Upstream)
	}
	if cfg.RedisConfig.TTL != 10*time.Minute {
		t.Fatalf("redis ttl = %v", cfg.RedisConfig.TTL)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("UPSTREAM_URL", "http://convert:5000")
	t.Setenv("CACHE_ENABLE", "true")
	t.Setenv("CORS_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("SERVER_THROTTLE_LIMIT", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Upstream.URL != "http://convert:5000" || !cfg.CacheEnable || cfg.Server.ThrottleLimit != 5 {
		t.Fatalf("cfg = %+v", cfg)
	}
	if len(cfg.Web.CORSOrigins) != 2 || cfg.Web.CORSOrigins[1] != "http://b.test" {
		t.Fatalf("origins = %v", cfg.Web.CORSOrigins)
	}
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("CONVERTER_TIMEOUT", "soon")
	if _, err := LoadClient(); err == nil {
		t.Fatal("expected error")
	}
}
