package sms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/safinity/safinity/internal/pkg/circuitbreaker"
	"github.com/safinity/safinity/internal/pkg/logger"
	"github.com/safinity/safinity/internal/pkg/models"
)

// VeevotechClient sends SMS messages through the Veevotech HTTP API.
// A 200 response with an absent-or-non-"error" application status means the
// message was accepted by the gateway, not that it reached the handset.
// A circuit breaker guards the gateway so a dead provider fails fast
// instead of holding every dispatch for the full timeout.
type VeevotechClient struct {
	baseURL    string
	apiHash    string
	httpClient *http.Client
	breaker    *circuitbreaker.CircuitBreaker
}

// NewVeevotechClient creates an SMS gateway client
func NewVeevotechClient(cfg models.SMSConfig) *VeevotechClient {
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &VeevotechClient{
		baseURL: cfg.BaseURL,
		apiHash: cfg.APIHash,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		breaker: circuitbreaker.New(circuitbreaker.DefaultConfig("veevotech")),
	}
}

// SendSMS delivers one message to the gateway and reports the gateway's
// verdict. Transport failures, non-200 statuses, and malformed bodies are
// returned as errors; the caller decides whether they abort or accumulate.
func (c *VeevotechClient) SendSMS(ctx context.Context, receiver, sender, text string) (*models.SMSResponse, error) {
	var result *models.SMSResponse
	err := c.breaker.Execute(ctx, func(ctx context.Context) error {
		var sendErr error
		result, sendErr = c.send(ctx, receiver, sender, text)
		return sendErr
	})
	return result, err
}

func (c *VeevotechClient) send(ctx context.Context, receiver, sender, text string) (*models.SMSResponse, error) {
	params := url.Values{}
	params.Set("hash", c.apiHash)
	params.Set("receivernum", receiver)
	params.Set("sendernum", sender)
	params.Set("textmessage", text)

	apiURL := fmt.Sprintf("%s/sendsms?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sms request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read sms response: %w", err)
	}

	result := &models.SMSResponse{HTTPStatus: resp.StatusCode}

	if len(body) > 0 {
		var parsed struct {
			Status  string `json:"status"`
			Message string `json:"message"`
		}
		if err := json.Unmarshal(body, &parsed); err != nil {
			return nil, fmt.Errorf("invalid sms response body: %w", err)
		}
		result.Status = parsed.Status
		result.Message = parsed.Message
	}

	if resp.StatusCode != http.StatusOK {
		return result, fmt.Errorf("sms gateway returned status %d", resp.StatusCode)
	}
	if result.Status == "error" {
		return result, fmt.Errorf("sms gateway rejected message: %s", result.Message)
	}

	logger.Debug("SMS accepted by gateway",
		logger.String("receiver", receiver),
		logger.Int("http_status", resp.StatusCode),
	)

	return result, nil
}
