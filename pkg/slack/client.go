// Package slack posts messages to a Slack incoming webhook.
package slack

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-resty/resty/v2"

	"github.com/jon890/order-slack-relay/internal/domain/models"
)

var ErrEmptyWebhookURL = errors.New("slack webhook url is required")

type Client struct {
	log        *slog.Logger
	httpClient *resty.Client
	webhookURL string
}

// New fails fast on an empty URL so misconfiguration surfaces at startup,
// not on the first send.
func New(log *slog.Logger, webhookURL string) (*Client, error) {
	if webhookURL == "" {
		return nil, ErrEmptyWebhookURL
	}

	return &Client{
		log:        log,
		httpClient: resty.New(),
		webhookURL: webhookURL,
	}, nil
}

// SendMessage POSTs the message as JSON. One attempt, no retry; a non-2xx
// response is a failure and its body is kept for diagnostics.
func (c *Client) SendMessage(ctx context.Context, message models.SlackMessage) error {
	const op = "slack.SendMessage"

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(message).
		Post(c.webhookURL)
	if err != nil {
		c.log.Error(op, slog.String("error", err.Error()))
		return fmt.Errorf("%s: %w", op, err)
	}

	if resp.IsError() {
		c.log.Error(op,
			slog.Int("status", resp.StatusCode()),
			slog.String("body", resp.String()),
		)

		return fmt.Errorf("%s: webhook returned %d: %s", op, resp.StatusCode(), resp.String())
	}

	return nil
}
