package system

import (
	"context"
	"fmt"

	"github.com/julianstephens/healthtrack/internal/cli"
	"github.com/julianstephens/healthtrack/internal/constants"
	"github.com/julianstephens/healthtrack/internal/models"
	"github.com/julianstephens/healthtrack/internal/notifier"
)

type payloadSender interface {
	Notify(ctx context.Context, payload notifier.WebhookPayload) error
}

// NotifyCmd sends one reminder to the tray app. It is meant for cron or a
// systemd timer.
type NotifyCmd struct {
	DryRun bool `help:"Print the reminder to stdout instead of sending it."`

	sender payloadSender
}

func (c *NotifyCmd) Run(ctx *cli.Context) error {
	if ctx.Config != nil && !ctx.Config.NotificationsEnabled() {
		if c.DryRun {
			fmt.Println("Notifications are disabled in config.")
		}
		return nil
	}

	payload, ok := reminder(ctx)
	if !ok {
		if c.DryRun {
			fmt.Println("Nothing to remind about.")
		}
		return nil
	}

	if c.DryRun {
		fmt.Printf("[DryRun] %s: %s\n", payload.Title, payload.Text)
		return nil
	}

	sender := c.sender
	if sender == nil {
		sender = notifier.New()
	}
	if err := sender.Notify(context.Background(), payload); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	return nil
}

// reminder asks for today's entry when none exists, otherwise surfaces the
// most urgent high-priority insight.
func reminder(ctx *cli.Context) (notifier.WebhookPayload, bool) {
	t := ctx.Tracker()
	if _, ok := t.Entries.Today(); !ok {
		return notifier.WebhookPayload{
			Title:      "Log today's health",
			Text:       "You haven't logged anything today. Run 'healthtrack log' to keep your streak going.",
			DurationMs: constants.NotificationDurationMs,
		}, true
	}

	for _, in := range t.CurrentInsights() {
		if in.Priority != models.PriorityHigh {
			break
		}
		return notifier.WebhookPayload{
			Title:      in.Title,
			Text:       in.Description,
			DurationMs: constants.NotificationDurationMs,
		}, true
	}
	return notifier.WebhookPayload{}, false
}
