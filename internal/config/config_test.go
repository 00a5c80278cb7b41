package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("OPENAI_MODEL", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port, got %s", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Fatalf("expected default env, got %s", cfg.Env)
	}
	if cfg.OpenAIModel != "gpt-4o-mini" {
		t.Fatalf("expected default model, got %s", cfg.OpenAIModel)
	}
	if cfg.LLMTimeout != 30*time.Second {
		t.Fatalf("expected default llm timeout, got %s", cfg.LLMTimeout)
	}
	if cfg.DedupBackend != "memory" {
		t.Fatalf("expected memory dedup backend, got %s", cfg.DedupBackend)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("expected permissive CORS default, got %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_MODEL", "gpt-4o")
	t.Setenv("LLM_TIMEOUT", "15s")
	t.Setenv("LEAD_WEBHOOK_URL", "https://crm.example.com/leads")
	t.Setenv("WEBHOOK_TIMEOUT", "5s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://skillfulhands.example, https://www.skillfulhands.example")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "10")
	t.Setenv("DEDUP_BACKEND", "Redis")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_TLS", "true")

	cfg := Load()
	if cfg.Port != "9090" || cfg.Env != "production" || cfg.LogLevel != "debug" {
		t.Fatalf("unexpected base config: %+v", cfg)
	}
	if cfg.OpenAIAPIKey != "sk-test" || cfg.OpenAIModel != "gpt-4o" {
		t.Fatalf("unexpected openai config: %+v", cfg)
	}
	if cfg.LLMTimeout != 15*time.Second || cfg.WebhookTimeout != 5*time.Second {
		t.Fatalf("unexpected timeouts: %+v", cfg)
	}
	if cfg.LeadWebhookURL != "https://crm.example.com/leads" {
		t.Fatalf("unexpected webhook url: %s", cfg.LeadWebhookURL)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://www.skillfulhands.example" {
		t.Fatalf("unexpected origins: %v", cfg.CORSAllowedOrigins)
	}
	if cfg.RateLimitRPS != 2.5 || cfg.RateLimitBurst != 10 {
		t.Fatalf("unexpected rate limit config: %+v", cfg)
	}
	if cfg.DedupBackend != "redis" {
		t.Fatalf("expected normalized dedup backend, got %s", cfg.DedupBackend)
	}
	if cfg.RedisAddr != "localhost:6379" || !cfg.RedisTLS {
		t.Fatalf("unexpected redis config: %+v", cfg)
	}
}

func TestGetEnvAsSliceSkipsEmptyEntries(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", " , https://a.example ,, https://b.example ")
	cfg := Load()
	if len(cfg.CORSAllowedOrigins) != 2 {
		t.Fatalf("expected 2 origins, got %v", cfg.CORSAllowedOrigins)
	}
}
