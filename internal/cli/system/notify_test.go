package system

import (
	"context"
	"testing"

	"github.com/julianstephens/healthtrack/internal/models"
	"github.com/julianstephens/healthtrack/internal/notifier"
)

type fakeSender struct {
	sent []notifier.WebhookPayload
}

func (f *fakeSender) Notify(_ context.Context, p notifier.WebhookPayload) error {
	f.sent = append(f.sent, p)
	return nil
}

func TestNotifyRemindsWhenNothingLogged(t *testing.T) {
	ctx, _ := newTestContext(t)
	s := &fakeSender{}

	if err := (&NotifyCmd{sender: s}).Run(ctx); err != nil {
		t.Fatalf("notify failed: %v", err)
	}
	if len(s.sent) != 1 {
		t.Fatalf("sent %d notifications, want 1", len(s.sent))
	}
	if s.sent[0].Title != "Log today's health" {
		t.Errorf("title = %q", s.sent[0].Title)
	}
}

func TestNotifySendsHighPriorityInsight(t *testing.T) {
	ctx, _ := newTestContext(t)
	seedEntry(t, ctx, 0, func(e *models.HealthEntry) {
		e.Steps = 12000
		e.WaterIntake = 1.0
		e.SleepHours = 8
	})
	s := &fakeSender{}

	if err := (&NotifyCmd{sender: s}).Run(ctx); err != nil {
		t.Fatalf("notify failed: %v", err)
	}
	if len(s.sent) != 1 || s.sent[0].Title != "Hydration Needs Attention" {
		t.Errorf("sent = %+v, want the hydration insight", s.sent)
	}
}

func TestNotifyQuietWhenNothingUrgent(t *testing.T) {
	ctx, _ := newTestContext(t)
	seedEntry(t, ctx, 0, func(e *models.HealthEntry) {
		e.Steps = 12000
		e.WaterIntake = 3.0
		e.SleepHours = 8
	})
	s := &fakeSender{}

	if err := (&NotifyCmd{sender: s}).Run(ctx); err != nil {
		t.Fatalf("notify failed: %v", err)
	}
	if len(s.sent) != 0 {
		t.Errorf("sent %d notifications, want 0", len(s.sent))
	}
}

func TestNotifyRespectsQuietConfig(t *testing.T) {
	ctx, _ := newTestContext(t)
	ctx.Config.Notifications.Quiet = true
	s := &fakeSender{}

	if err := (&NotifyCmd{sender: s}).Run(ctx); err != nil {
		t.Fatalf("notify failed: %v", err)
	}
	if len(s.sent) != 0 {
		t.Error("quiet config should suppress notifications")
	}
}

func TestNotifyDryRunSendsNothing(t *testing.T) {
	ctx, _ := newTestContext(t)
	s := &fakeSender{}

	if err := (&NotifyCmd{DryRun: true, sender: s}).Run(ctx); err != nil {
		t.Fatalf("notify failed: %v", err)
	}
	if len(s.sent) != 0 {
		t.Error("dry run should not send")
	}
}
