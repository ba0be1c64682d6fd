// Package relay is the message-transport shim: it receives inbound webhook
// requests and delivers outbound texts. Delivery is best-effort by design;
// a failed send is logged and dropped, never queued or retried.
package relay

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ranjeetkulkarni/ExpenseNinja/internal/logging"
)

// Sender delivers one outbound text message to a recipient.
type Sender interface {
	Send(ctx context.Context, recipient, text string) error
}

// TwilioSender delivers messages through the Twilio Messages API.
type TwilioSender struct {
	accountSID string
	authToken  string
	from       string
	endpoint   string
	client     *http.Client
	logger     logging.Logger
}

// NewTwilioSender creates a sender for the given account. from is the
// WhatsApp-enabled Twilio number (e.g. "whatsapp:+14155238886").
func NewTwilioSender(accountSID, authToken, from string, timeout time.Duration, logger logging.Logger) *TwilioSender {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &TwilioSender{
		accountSID: accountSID,
		authToken:  authToken,
		from:       from,
		endpoint:   fmt.Sprintf("https://api.twilio.com/2010-04-01/Accounts/%s/Messages.json", accountSID),
		client:     &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// SetEndpoint overrides the Twilio API URL. Tests point this at a local
// server.
func (s *TwilioSender) SetEndpoint(endpoint string) {
	s.endpoint = endpoint
}

// Send posts one message to the Twilio Messages endpoint.
func (s *TwilioSender) Send(ctx context.Context, recipient, text string) error {
	form := url.Values{}
	form.Set("From", s.from)
	form.Set("To", recipient)
	form.Set("Body", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build Twilio request: %w", err)
	}
	req.SetBasicAuth(s.accountSID, s.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("send WhatsApp message: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("Twilio API returned status %d", resp.StatusCode)
	}

	s.logger.WithField(logging.FieldSender, recipient).Debug("Outbound message delivered")
	return nil
}
