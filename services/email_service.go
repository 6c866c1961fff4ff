package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// EmailSender dispatches one outbound email. Implemented by EmailService;
// tests substitute a recorder.
type EmailSender interface {
	Send(ctx context.Context, email, subject, message string) error
}

// EmailService posts messages to the email dispatch endpoint. The endpoint
// gives no delivery receipt; a 2xx response only means it accepted the send.
type EmailService struct {
	BaseURL string
	Client  *http.Client
}

// NewEmailService creates an EmailService against the given base URL
func NewEmailService(baseURL string) *EmailService {
	return &EmailService{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Send performs a single POST /send-email attempt. No retries.
func (es *EmailService) Send(ctx context.Context, email, subject, message string) error {
	payload, err := json.Marshal(map[string]string{
		"email":   email,
		"subject": subject,
		"message": message,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, es.BaseURL+"/send-email", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := es.Client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach email service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("email service returned status %d", resp.StatusCode)
	}
	return nil
}
