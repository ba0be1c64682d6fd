package relay

import (
	"context"
	"net/http"
	"time"

	"github.com/ranjeetkulkarni/ExpenseNinja/internal/logging"
	"github.com/ranjeetkulkarni/ExpenseNinja/internal/orchestrator"
)

// twimlAck is the constant acknowledgement body returned to the webhook
// caller; the actual responses go out through the Sender.
const twimlAck = "<Response></Response>"

// Dialogue handles one inbound message and returns the responses to
// deliver.
type Dialogue interface {
	Handle(ctx context.Context, in orchestrator.Inbound) []orchestrator.Outbound
}

// WebhookHandler receives Twilio-style inbound webhooks ("Body"/"From" form
// fields), dispatches them to the dialogue layer and delivers the responses
// through the Sender.
type WebhookHandler struct {
	dialogue Dialogue
	sender   Sender
	logger   logging.Logger
}

// NewWebhookHandler wires the inbound webhook to the dialogue layer.
func NewWebhookHandler(dialogue Dialogue, sender Sender, logger logging.Logger) *WebhookHandler {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &WebhookHandler{
		dialogue: dialogue,
		sender:   sender,
		logger:   logger,
	}
}

// ServeHTTP implements http.Handler.
func (h *WebhookHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	text := r.Form.Get("Body")
	sender := r.Form.Get("From")
	if text == "" || sender == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	responses := h.dialogue.Handle(r.Context(), orchestrator.Inbound{Sender: sender, Text: text})

	// Outbound delivery is best-effort: a transport failure is logged and
	// the response dropped. A nil sender drops everything, which keeps the
	// webhook usable without outbound credentials.
	for _, out := range responses {
		if h.sender == nil {
			h.logger.WithField(logging.FieldSender, out.Recipient).Warn("No outbound sender configured, dropping response")
			continue
		}
		if err := h.sender.Send(r.Context(), out.Recipient, out.Text); err != nil {
			h.logger.WithError(err).WithField(logging.FieldSender, out.Recipient).Error("Failed to deliver outbound message")
		}
	}

	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(twimlAck))
}

// NewServer builds the webhook HTTP server with sane timeouts.
func NewServer(addr string, handler *WebhookHandler) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/webhook", handler)

	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}
}
