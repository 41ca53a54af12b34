// Package notifier delivers outbound text notifications through an SMS or
// webhook gateway.
package notifier

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Notifier sends a message to a recipient
type Notifier interface {
	Notify(ctx context.Context, recipient, message string) error
}

// Message is the JSON body posted to the gateway
type Message struct {
	To   string `json:"to"`
	Body string `json:"body"`
}

// gatewayResponse is the optional JSON reply of the gateway
type gatewayResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Error  string `json:"error"`
}

// HTTPNotifier posts messages to a gateway URL with a bearer token
type HTTPNotifier struct {
	httpClient *resty.Client
	url        string
	logger     *zap.Logger
}

// NewHTTPNotifier creates a notifier for the gateway at url
func NewHTTPNotifier(url, token string, timeout time.Duration, logger *zap.Logger) *HTTPNotifier {
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	if token != "" {
		client.SetAuthToken(token)
	}

	return &HTTPNotifier{
		httpClient: client,
		url:        url,
		logger:     logger,
	}
}

// Notify posts the message and fails on transport errors or non-2xx replies
func (n *HTTPNotifier) Notify(ctx context.Context, recipient, message string) error {
	var response gatewayResponse
	resp, err := n.httpClient.R().
		SetContext(ctx).
		SetBody(Message{To: recipient, Body: message}).
		SetResult(&response).
		SetError(&response).
		Post(n.url)
	if err != nil {
		return fmt.Errorf("failed to call notification gateway: %w", err)
	}

	if resp.IsError() {
		if response.Error != "" {
			return fmt.Errorf("notification gateway error: %s (status: %d)", response.Error, resp.StatusCode())
		}
		return fmt.Errorf("notification gateway returned status %d", resp.StatusCode())
	}

	n.logger.Debug("notification accepted",
		zap.String("recipient", recipient),
		zap.String("message_id", response.ID),
		zap.String("status", response.Status),
	)
	return nil
}

// Noop discards every message; used when no gateway is configured
type Noop struct {
	logger *zap.Logger
}

// NewNoop creates a notifier that only logs
func NewNoop(logger *zap.Logger) *Noop {
	return &Noop{logger: logger}
}

// Notify logs the message and returns nil
func (n *Noop) Notify(_ context.Context, recipient, message string) error {
	n.logger.Info("notification gateway not configured, message dropped",
		zap.String("recipient", recipient),
		zap.Int("length", len(message)),
	)
	return nil
}
