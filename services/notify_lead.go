package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ourdigitalstory0-sys/liferepublic-backend/config"
	"github.com/ourdigitalstory0-sys/liferepublic-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// relayPayload is the body the form-relay endpoint expects. Underscore
// fields configure the relay itself rather than carrying lead data.
type relayPayload struct {
	Subject      string `json:"_subject"`
	Template     string `json:"_template"`
	Captcha      string `json:"_captcha"`
	Autoresponse string `json:"_autoresponse"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Email        string `json:"email,omitempty"`
	Message      string `json:"message,omitempty"`
	Project      string `json:"project,omitempty"`
	Source       string `json:"source,omitempty"`
	Timestamp    string `json:"timestamp"`
}

// LeadNotifier sends best-effort notifications when a lead is captured: a
// JSON POST to the email relay and, when Twilio is configured, an SMS to
// the sales number. The lead row is the source of truth; nothing here may
// block or fail the insert, so every error is logged and dropped.
type LeadNotifier struct {
	relayURL     string
	subject      string
	autoresponse string
	client       *http.Client
	logger       zerolog.Logger

	twilio  *twilio.RestClient
	smsFrom string
	smsTo   string
}

func NewLeadNotifier(cfg map[string]string) *LeadNotifier {
	n := &LeadNotifier{
		relayURL:     config.GetString(cfg, "LEAD_RELAY_URL", ""),
		subject:      config.GetString(cfg, "LEAD_RELAY_SUBJECT", "New Enquiry - Life Republic"),
		autoresponse: config.GetString(cfg, "LEAD_RELAY_AUTORESPONSE", "Thank you for your enquiry. Our team will reach out shortly."),
		client:       &http.Client{Timeout: 10 * time.Second},
		logger:       log.With().Str("service", "leadNotifier").Logger(),
	}

	sid := config.GetString(cfg, "TWILIO_ACCOUNT_SID", "")
	token := config.GetString(cfg, "TWILIO_AUTH_TOKEN", "")
	n.smsFrom = config.GetString(cfg, "TWILIO_FROM_NUMBER", "")
	n.smsTo = config.GetString(cfg, "SALES_SMS_NUMBER", "")
	if sid != "" && token != "" && n.smsFrom != "" && n.smsTo != "" {
		n.twilio = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: sid,
			Password: token,
		})
	}

	return n
}

// Notify dispatches all configured channels. Call it in its own goroutine
// after the lead insert has committed; it never returns an error.
func (n *LeadNotifier) Notify(lead models.Lead) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := n.sendRelay(ctx, lead); err != nil {
		n.logger.Error().Err(err).Uint("leadID", lead.ID).Msg("lead relay notification failed")
	}
	if err := n.sendSMS(lead); err != nil {
		n.logger.Error().Err(err).Uint("leadID", lead.ID).Msg("lead SMS notification failed")
	}
}

func (n *LeadNotifier) sendRelay(ctx context.Context, lead models.Lead) error {
	if n.relayURL == "" {
		n.logger.Debug().Msg("LEAD_RELAY_URL not set, skipping relay notification")
		return nil
	}

	payload := relayPayload{
		Subject:      n.subject,
		Template:     "table",
		Captcha:      "false",
		Autoresponse: n.autoresponse,
		Name:         lead.Name,
		Phone:        lead.Phone,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	}
	if lead.Email != nil {
		payload.Email = *lead.Email
	}
	if lead.Message != nil {
		payload.Message = *lead.Message
	}
	if lead.Project != nil {
		payload.Project = *lead.Project
	}
	if lead.Source != nil {
		payload.Source = *lead.Source
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling relay payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.relayURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("posting to relay: %w", err)
	}
	defer resp.Body.Close()

	// The relay body is never parsed; an HTTP-ok check is the whole contract.
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("relay returned status %d", resp.StatusCode)
	}
	return nil
}

func (n *LeadNotifier) sendSMS(lead models.Lead) error {
	if n.twilio == nil {
		return nil
	}

	body := fmt.Sprintf("New enquiry: %s, %s", lead.Name, lead.Phone)
	if lead.Project != nil {
		body += " (" + *lead.Project + ")"
	}

	params := &twilioapi.CreateMessageParams{}
	params.SetTo(n.smsTo)
	params.SetFrom(n.smsFrom)
	params.SetBody(body)

	_, err := n.twilio.Api.CreateMessage(params)
	return err
}
