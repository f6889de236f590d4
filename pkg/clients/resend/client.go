package resend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/ckscontracting/demo-request/pkg/models"
)

// DefaultBaseURL is the Resend production API
const DefaultBaseURL = "https://api.resend.com"

// Client defines the interface for sending email through the Resend API
type Client interface {
	Send(ctx context.Context, n models.Notification) (models.Receipt, error)
}

type clientImpl struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new Resend client. An empty baseURL uses DefaultBaseURL.
func NewClient(apiKey, baseURL string) Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &clientImpl{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

type sendPayload struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
	ReplyTo string   `json:"reply_to,omitempty"`
}

// APIError is returned when Resend rejects a request
type APIError struct {
	StatusCode int
	Name       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("resend API error %d (%s): %s", e.StatusCode, e.Name, e.Message)
	}
	return fmt.Sprintf("resend API error %d: %s", e.StatusCode, e.Message)
}

func (c *clientImpl) Send(ctx context.Context, n models.Notification) (models.Receipt, error) {
	payload := sendPayload{
		From:    n.From,
		To:      n.To,
		Subject: n.Subject,
		HTML:    n.HTML,
		Text:    n.Text,
		ReplyTo: n.ReplyTo,
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return models.Receipt{}, fmt.Errorf("error creating payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewBuffer(jsonPayload))
	if err != nil {
		return models.Receipt{}, fmt.Errorf("error creating request: %w", err)
	}

	// Add authentication headers
	req.Header.Add("Authorization", "Bearer "+c.apiKey)
	req.Header.Add("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.Receipt{}, fmt.Errorf("error sending email: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.Receipt{}, fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: string(body)}
		var errorResponse struct {
			Name    string `json:"name"`
			Message string `json:"message"`
		}
		if json.Unmarshal(body, &errorResponse) == nil && errorResponse.Message != "" {
			apiErr.Name = errorResponse.Name
			apiErr.Message = errorResponse.Message
		}
		return models.Receipt{}, apiErr
	}

	var receipt models.Receipt
	if err := json.Unmarshal(body, &receipt); err != nil {
		return models.Receipt{}, fmt.Errorf("error parsing response: %w", err)
	}

	return receipt, nil
}
