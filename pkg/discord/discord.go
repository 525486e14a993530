package discord

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"time"
)

// SendEmbed posts a single embed built from options.
func (d *discordImpl) SendEmbed(ctx context.Context, options MessageOptions) error {
	ts := options.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	payload := WebhookPayload{
		Username: d.config.Username,
		Embeds: []Embed{{
			Title:       options.Title,
			Description: truncate(options.Description, maxDescriptionLength),
			Color:       colorFor(options.Type),
			Timestamp:   ts.UTC().Format(time.RFC3339),
			Fields:      options.Fields,
		}},
	}
	return d.post(ctx, payload)
}

// SendError posts an error embed.
func (d *discordImpl) SendError(ctx context.Context, title, description string, err error) error {
	if err != nil {
		description = fmt.Sprintf("%s\n```%v```", description, err)
	}
	return d.SendEmbed(ctx, MessageOptions{
		Type:        MessageTypeError,
		Title:       title,
		Description: description,
	})
}

// SendInfo posts an informational embed with sorted fields.
func (d *discordImpl) SendInfo(ctx context.Context, title, description string, fields map[string]string) error {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	embedFields := make([]EmbedField, 0, len(keys))
	for _, k := range keys {
		embedFields = append(embedFields, EmbedField{Name: k, Value: fields[k], Inline: true})
	}
	return d.SendEmbed(ctx, MessageOptions{
		Type:        MessageTypeInfo,
		Title:       title,
		Description: description,
		Fields:      embedFields,
	})
}

// ReportBug posts a raw bug report, used for recovered panics and unexpected 5xx errors.
func (d *discordImpl) ReportBug(ctx context.Context, message string) error {
	return d.SendEmbed(ctx, MessageOptions{
		Type:        MessageTypeWarning,
		Title:       "Bug report",
		Description: message,
	})
}

func (d *discordImpl) post(ctx context.Context, payload WebhookPayload) error {
	body, status, err := d.client.Post(ctx, d.config.WebhookURL, payload, nil)
	if err != nil {
		return fmt.Errorf("discord: send webhook: %w", err)
	}
	if status != http.StatusOK && status != http.StatusNoContent {
		return fmt.Errorf("discord: webhook returned status %d: %s", status, string(body))
	}
	return nil
}

func colorFor(t MessageType) int {
	switch t {
	case MessageTypeError:
		return colorError
	case MessageTypeWarning:
		return colorWarning
	default:
		return colorInfo
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
