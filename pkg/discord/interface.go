package discord

import (
	"context"
	"errors"

	pkghttp "tweet-insights-srv/pkg/http"
)

var errWebhookRequired = errors.New("discord: webhook URL is required")

// IDiscord posts operational alerts to a Discord webhook.
// Implementations are safe for concurrent use.
type IDiscord interface {
	SendEmbed(ctx context.Context, options MessageOptions) error
	SendError(ctx context.Context, title, description string, err error) error
	SendInfo(ctx context.Context, title, description string, fields map[string]string) error
	ReportBug(ctx context.Context, message string) error
}

// New creates a webhook client. Returns the interface.
func New(cfg Config) (IDiscord, error) {
	if cfg.WebhookURL == "" {
		return nil, errWebhookRequired
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Username == "" {
		cfg.Username = DefaultUsername
	}
	return &discordImpl{
		config: cfg,
		client: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout:   cfg.Timeout,
			Retries:   DefaultRetryCount,
			RetryWait: DefaultRetryDelay,
		}),
	}, nil
}
