// Package twilio is a minimal REST client for the Twilio Messages API,
// covering only what the service needs: sending one WhatsApp message.
package twilio

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-api-whatsapp/internal/config"
	"github.com/go-api-whatsapp/internal/domain"
)

const defaultBaseURL = "https://api.twilio.com"

// Result is the slice of the provider's response the service surfaces to
// callers: the provider-assigned message identifier and delivery status.
type Result struct {
	SID    string `json:"sid"`
	Status string `json:"status"`
}

// Messenger sends a single message through the provider. to must already be
// in the provider's addressing scheme.
type Messenger interface {
	Send(ctx context.Context, to, body string) (*Result, error)
}

// Client talks to the Twilio REST API using account-SID basic auth.
type Client struct {
	httpClient *http.Client
	baseURL    string
	accountSID string
	authToken  string
	from       string
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    defaultBaseURL,
		accountSID: cfg.TwilioAccountSID,
		authToken:  cfg.TwilioAuthToken,
		from:       cfg.TwilioWhatsAppFrom,
	}
}

// apiError is Twilio's error envelope. Status doubles as the HTTP status.
type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// Send posts a message to the Messages endpoint and returns the provider's
// SID and status verbatim. No retries: a provider failure is surfaced
// immediately as a domain.ErrProvider wrap carrying the upstream detail.
func (c *Client) Send(ctx context.Context, to, body string) (*Result, error) {
	form := url.Values{}
	form.Set("From", c.from)
	form.Set("To", to)
	form.Set("Body", body)

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", c.baseURL, c.accountSID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.SetBasicAuth(c.accountSID, c.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProvider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr apiError
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil || apiErr.Message == "" {
			return nil, fmt.Errorf("%w: unexpected status %d", domain.ErrProvider, resp.StatusCode)
		}
		return nil, fmt.Errorf("%w: %s (code %d)", domain.ErrProvider, apiErr.Message, apiErr.Code)
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", domain.ErrProvider, err)
	}
	return &result, nil
}
