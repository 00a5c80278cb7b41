// Package chat exposes the conversational HTTP surface.
package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/grygorii1976-hash/SHHS-chat-backend/internal/intake"
	"github.com/grygorii1976-hash/SHHS-chat-backend/internal/llm"
	"github.com/grygorii1976-hash/SHHS-chat-backend/internal/observability/metrics"
	"github.com/grygorii1976-hash/SHHS-chat-backend/pkg/logging"
)

const defaultDispatchTimeout = 15 * time.Second

// Handler serves the chat endpoints.
type Handler struct {
	llm             llm.Client
	dispatcher      *intake.Dispatcher
	logger          *logging.Logger
	metrics         *metrics.IntakeMetrics
	dispatchTimeout time.Duration
}

// NewHandler wires the chat surface. The dispatcher may be nil when no lead
// webhook is configured; replies still work, leads are just not forwarded.
func NewHandler(client llm.Client, dispatcher *intake.Dispatcher, logger *logging.Logger, m *metrics.IntakeMetrics) *Handler {
	if client == nil {
		panic("chat: llm client cannot be nil")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		llm:             client,
		dispatcher:      dispatcher,
		logger:          logger,
		metrics:         m,
		dispatchTimeout: defaultDispatchTimeout,
	}
}

// ChatRequest is the body for POST /chat.
type ChatRequest struct {
	Message string             `json:"message"`
	History []intake.Utterance `json:"history"`
}

// ChatResponse carries the assistant reply.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// Health reports liveness.
// GET /health
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Chat generates the next assistant reply and, in the background, checks the
// conversation for a deliverable lead.
// POST /chat
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		h.metrics.ObserveChat("bad_request")
		jsonError(w, "Missing 'message' in body", http.StatusBadRequest)
		return
	}

	conv := make(intake.Conversation, 0, len(req.History)+2)
	conv = append(conv, req.History...)
	conv = append(conv, intake.Utterance{Role: intake.RoleCustomer, Text: req.Message})

	start := time.Now()
	reply, err := h.llm.Complete(r.Context(), promptMessages(conv))
	h.metrics.ObserveLLMLatency(time.Since(start).Seconds())
	if err != nil {
		h.metrics.ObserveChat("llm_error")
		h.logger.Error("chat: reply generation failed", "error", err)
		jsonError(w, "Server error", http.StatusInternalServerError)
		return
	}

	conv = append(conv, intake.Utterance{Role: intake.RoleAssistant, Text: reply})
	h.dispatchLead(conv, reply)

	h.metrics.ObserveChat("ok")
	writeJSON(w, http.StatusOK, ChatResponse{Reply: reply})
}

// dispatchLead runs lead detection off the request path so the reply is never
// delayed by the webhook.
func (h *Handler) dispatchLead(conv intake.Conversation, reply string) {
	if h.dispatcher == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), h.dispatchTimeout)
		defer cancel()
		if _, err := h.dispatcher.MaybeEmit(ctx, conv, reply); err != nil {
			h.logger.Error("chat: lead dispatch failed", "error", err)
		}
	}()
}

func promptMessages(conv intake.Conversation) []llm.Message {
	messages := make([]llm.Message, 0, len(conv)+1)
	messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: systemPrompt})
	for _, u := range conv {
		role := llm.RoleUser
		if u.Role == intake.RoleAssistant {
			role = llm.RoleAssistant
		}
		messages = append(messages, llm.Message{Role: role, Content: u.Text})
	}
	return messages
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func jsonError(w http.ResponseWriter, message string, status int) {
	writeJSON(w, status, map[string]string{"error": message})
}
