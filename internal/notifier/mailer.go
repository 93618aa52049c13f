package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/useraccounts/go-user-accounts/internal/config"
	"github.com/useraccounts/go-user-accounts/internal/logger"
)

// ErrDeliveryRejected is returned when the email provider answers the
// request but refuses to accept the message.
var ErrDeliveryRejected = errors.New("email provider rejected the message")

// mailer is the HTTP implementation of [Notifier]. It targets an
// Elastic-Email-compatible transactional API: a form-encoded POST to
// /v2/email/send with an apikey parameter and a JSON {"success": bool}
// envelope in the response.
type mailer struct {
	client    *resty.Client
	apiKey    string
	fromEmail string
	fromName  string

	logger *logger.Logger
}

// sendResponse is the provider's response envelope.
type sendResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// NewMailer constructs a [Notifier] from the mail configuration. The base
// URL and sender address are required; the request timeout falls back to 15
// seconds when unset.
func NewMailer(cfg config.Mail, log *logger.Logger) (Notifier, error) {
	if cfg.APIURL == "" {
		return nil, fmt.Errorf("empty mail API URL")
	}
	if cfg.FromEmail == "" {
		return nil, fmt.Errorf("empty sender email address")
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.APIURL, "/")).
		SetTimeout(timeout)

	return &mailer{
		client:    cli,
		apiKey:    cfg.APIKey,
		fromEmail: cfg.FromEmail,
		fromName:  cfg.FromName,
		logger:    log,
	}, nil
}

// Send implements [Notifier]. It submits one message to the provider and
// returns an error when the request fails, the provider responds with a
// non-2xx status, or the response envelope reports a rejection.
func (m *mailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	log := logger.FromContext(ctx)

	resp, err := m.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"apikey":   m.apiKey,
			"from":     m.fromEmail,
			"fromName": m.fromName,
			"to":       to,
			"subject":  subject,
			"bodyHtml": htmlBody,
			"bodyText": htmlBody,
		}).
		Post("/v2/email/send")
	if err != nil {
		return fmt.Errorf("send email request: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		log.Error().Int("status", resp.StatusCode()).Str("to", to).Msg("email provider returned non-OK status")
		return fmt.Errorf("%w: status %d", ErrDeliveryRejected, resp.StatusCode())
	}

	var envelope sendResponse
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return fmt.Errorf("decoding email provider response: %w", err)
	}
	if !envelope.Success {
		log.Error().Str("to", to).Str("provider_error", envelope.Error).Msg("email provider rejected the message")
		return fmt.Errorf("%w: %s", ErrDeliveryRejected, envelope.Error)
	}

	return nil
}
