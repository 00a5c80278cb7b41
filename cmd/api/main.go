package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/grygorii1976-hash/SHHS-chat-backend/internal/api/router"
	"github.com/grygorii1976-hash/SHHS-chat-backend/internal/chat"
	appconfig "github.com/grygorii1976-hash/SHHS-chat-backend/internal/config"
	"github.com/grygorii1976-hash/SHHS-chat-backend/internal/crm"
	"github.com/grygorii1976-hash/SHHS-chat-backend/internal/intake"
	"github.com/grygorii1976-hash/SHHS-chat-backend/internal/llm"
	"github.com/grygorii1976-hash/SHHS-chat-backend/internal/observability/metrics"
	"github.com/grygorii1976-hash/SHHS-chat-backend/pkg/logging"
)

func main() {
	// Local development convenience; missing .env is fine.
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting SHHS chat backend",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	intakeMetrics := metrics.NewIntakeMetrics(registry)

	llmClient, err := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.LLMTimeout, logger)
	if err != nil {
		logger.Error("failed to initialize OpenAI client", "error", err)
		os.Exit(1)
	}

	dispatcher := buildDispatcher(cfg, logger, intakeMetrics)

	chatHandler := chat.NewHandler(llmClient, dispatcher, logger, intakeMetrics)

	r := router.New(&router.Config{
		Logger:             logger,
		ChatHandler:        chatHandler,
		MetricsHandler:     promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimitRPS:       cfg.RateLimitRPS,
		RateLimitBurst:     cfg.RateLimitBurst,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
	fmt.Println("Server exited gracefully")
}

// buildDispatcher wires lead forwarding. Without a webhook URL the server
// still chats; it just keeps leads to itself.
func buildDispatcher(cfg *appconfig.Config, logger *logging.Logger, m *metrics.IntakeMetrics) *intake.Dispatcher {
	if cfg.LeadWebhookURL == "" {
		logger.Warn("LEAD_WEBHOOK_URL not set, lead forwarding disabled")
		return nil
	}

	deliverer, err := crm.New(crm.Config{
		URL:     cfg.LeadWebhookURL,
		Timeout: cfg.WebhookTimeout,
		Logger:  logger,
	})
	if err != nil {
		logger.Error("failed to initialize lead webhook client", "error", err)
		os.Exit(1)
	}

	store := buildSentStore(cfg, logger)
	return intake.NewDispatcher(store, deliverer, logger, m)
}

func buildSentStore(cfg *appconfig.Config, logger *logging.Logger) intake.SentStore {
	if cfg.DedupBackend != "redis" {
		logger.Info("using in-memory lead dedup store")
		return intake.NewMemorySentStore()
	}

	opts := &redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}
	if cfg.RedisTLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("redis unreachable, falling back to in-memory dedup store",
			"addr", cfg.RedisAddr,
			"error", err,
		)
		return intake.NewMemorySentStore()
	}

	logger.Info("using redis lead dedup store", "addr", cfg.RedisAddr)
	return intake.NewRedisSentStore(client)
}
