package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaultsInDebugMode(t *testing.T) {
	t.Setenv("SERVER_MODE", "debug")

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Practice.MinAnswerWords != 20 {
		t.Errorf("expected min answer words 20, got %d", cfg.Practice.MinAnswerWords)
	}
	if cfg.AI.Timeout != 30*time.Second {
		t.Errorf("expected ai timeout 30s, got %v", cfg.AI.Timeout)
	}
	if cfg.AI.IsEnabled() {
		t.Error("expected ai proxy disabled without base url")
	}
	if cfg.Auth.JWTSecret != devJWTSecret {
		t.Errorf("expected dev secret in debug mode, got %q", cfg.Auth.JWTSecret)
	}
}

func TestLoadRejectsShortSecretInRelease(t *testing.T) {
	t.Setenv("SERVER_MODE", "release")
	t.Setenv("JWT_SECRET", "short")

	if _, err := Load(t.TempDir()); err == nil {
		t.Fatal("expected error for short jwt secret in release mode")
	}
}

func TestLoadFromFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := `
server:
  port: 9090
  mode: debug
ai:
  base_url: http://proxy.local/
  max_retries: 4
  retry_backoff: 250ms
practice:
  min_answer_words: 10
`
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("REDIS_URI", "redis://cache:6379")
	t.Setenv("COACH_AI_MODEL", "gemini-test")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.AI.ProxyEndpoint() != "http://proxy.local/gemini-proxy" {
		t.Errorf("unexpected proxy endpoint %q", cfg.AI.ProxyEndpoint())
	}
	if cfg.AI.MaxRetries != 4 || cfg.AI.RetryBackoff != 250*time.Millisecond {
		t.Errorf("unexpected retry settings: %d %v", cfg.AI.MaxRetries, cfg.AI.RetryBackoff)
	}
	if cfg.AI.Model != "gemini-test" {
		t.Errorf("expected env model override, got %q", cfg.AI.Model)
	}
	if cfg.Redis.Addr != "cache:6379" {
		t.Errorf("expected redis:// prefix stripped, got %q", cfg.Redis.Addr)
	}
	if cfg.Practice.MinAnswerWords != 10 {
		t.Errorf("expected min answer words 10, got %d", cfg.Practice.MinAnswerWords)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad port", func(c *Config) { c.Server.Port = 0 }},
		{"empty mongo", func(c *Config) { c.Mongo.URI = "" }},
		{"negative retries", func(c *Config) { c.AI.MaxRetries = -1 }},
		{"temperature", func(c *Config) { c.AI.Temperature = 3 }},
		{"min words", func(c *Config) { c.Practice.MinAnswerWords = 0 }},
		{"default count", func(c *Config) { c.Practice.DefaultQuestionCount = 100 }},
		{"rate limit", func(c *Config) { c.RateLimit.Requests = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func validConfig() *Config {
	return &Config{
		Server:    ServerConfig{Port: 8080, Mode: "debug"},
		Mongo:     MongoConfig{URI: "mongodb://localhost:27017"},
		AI:        defaultAI(),
		Practice:  PracticeConfig{MinAnswerWords: 20, DefaultQuestionCount: 5, MaxQuestionCount: 50},
		RateLimit: RateLimitConfig{Requests: 30, Window: time.Minute},
	}
}
