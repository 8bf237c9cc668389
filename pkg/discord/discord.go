package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"insights-srv/pkg/log"
)

var errWebhookRequired = errors.New("discord: webhook id and token are required")

// IDiscord posts messages to a Discord channel through a webhook.
type IDiscord interface {
	// SendEmbed posts one embed built from options.
	SendEmbed(ctx context.Context, options MessageOptions) error
	// ReportBug posts an internal error report, truncated to fit one embed.
	ReportBug(ctx context.Context, message string) error
	Close() error
}

// Config tunes webhook delivery. Zero values fall back to the defaults.
type Config struct {
	Timeout    time.Duration
	RetryCount int
	RetryDelay time.Duration
	Username   string
}

func (c *Config) applyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.RetryCount <= 0 {
		c.RetryCount = DefaultRetryCount
	}
	if c.RetryDelay <= 0 {
		c.RetryDelay = DefaultRetryDelay
	}
	if c.Username == "" {
		c.Username = defaultUsername
	}
}

type webhookClient struct {
	l      log.Logger
	url    string
	cfg    Config
	client *http.Client
}

// New builds a webhook-backed IDiscord from the webhook id and token.
func New(l log.Logger, id, token string) (IDiscord, error) {
	if id == "" || token == "" {
		return nil, errWebhookRequired
	}

	cfg := Config{}
	cfg.applyDefaults()

	return &webhookClient{
		l:   l,
		url: fmt.Sprintf("https://discord.com/api/webhooks/%s/%s", id, token),
		cfg: cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     30 * time.Second,
			},
		},
	}, nil
}

func (d *webhookClient) SendEmbed(ctx context.Context, options MessageOptions) error {
	embed := buildEmbed(options)
	if err := validateEmbed(embed); err != nil {
		return err
	}

	return d.sendWithRetry(ctx, &WebhookPayload{
		Username: d.cfg.Username,
		Embeds:   []Embed{embed},
	})
}

func (d *webhookClient) ReportBug(ctx context.Context, message string) error {
	return d.SendEmbed(ctx, MessageOptions{
		Type:        MessageTypeError,
		Title:       reportBugTitle,
		Description: fmt.Sprintf("```%s```", truncate(message, MaxDescriptionLen-8)),
		Timestamp:   time.Now(),
	})
}

func (d *webhookClient) Close() error {
	d.client.CloseIdleConnections()
	return nil
}

func (d *webhookClient) sendWithRetry(ctx context.Context, payload *WebhookPayload) error {
	var lastErr error
	for attempt := 0; attempt <= d.cfg.RetryCount; attempt++ {
		if attempt > 0 {
			d.l.Warnf(ctx, "pkg.discord.sendWithRetry: attempt %d/%d after: %v", attempt, d.cfg.RetryCount, lastErr)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(d.cfg.RetryDelay):
			}
		}

		if err := d.send(ctx, payload); err != nil {
			lastErr = err
			continue
		}
		return nil
	}

	return fmt.Errorf("discord: giving up after %d attempts: %w", d.cfg.RetryCount+1, lastErr)
}

func (d *webhookClient) send(ctx context.Context, payload *WebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("discord: marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("discord: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("discord: send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("discord: webhook returned %d: %s", resp.StatusCode, string(raw))
	}

	return nil
}
