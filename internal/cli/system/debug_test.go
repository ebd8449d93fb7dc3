package system

import (
	"testing"

	"github.com/julianstephens/healthtrack/internal/constants"
	"github.com/julianstephens/healthtrack/internal/models"
)

func TestDebugDBPathCmd(t *testing.T) {
	ctx, _ := newTestContext(t)
	if err := (&DebugDBPathCmd{}).Run(ctx); err != nil {
		t.Errorf("debug db-path command failed: %v", err)
	}
}

func TestDebugKeysCmd(t *testing.T) {
	ctx, _ := newTestContext(t)
	seedEntry(t, ctx, 0, func(e *models.HealthEntry) { e.Steps = 500 })
	if err := (&DebugKeysCmd{}).Run(ctx); err != nil {
		t.Errorf("debug keys command failed: %v", err)
	}
}

func TestDebugDumpCmd(t *testing.T) {
	ctx, _ := newTestContext(t)
	seedEntry(t, ctx, 0, func(e *models.HealthEntry) { e.Steps = 500 })

	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{"stored key", constants.KeyEntries, false},
		{"missing key", "NoSuchKey", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := (&DebugDumpCmd{Key: tt.key}).Run(ctx)
			if (err != nil) != tt.wantErr {
				t.Errorf("Run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDebugDumpEntryCmd(t *testing.T) {
	ctx, _ := newTestContext(t)
	seedEntry(t, ctx, 1, func(e *models.HealthEntry) { e.Steps = 500 })

	tests := []struct {
		name    string
		date    string
		wantErr bool
	}{
		{"existing day", "2025-03-14", false},
		{"today has no entry", "today", true},
		{"malformed date", "14/03/2025", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := (&DebugDumpEntryCmd{Date: tt.date}).Run(ctx)
			if (err != nil) != tt.wantErr {
				t.Errorf("Run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDebugDumpSettingsAndHistory(t *testing.T) {
	ctx, _ := newTestContext(t)
	if err := (&DebugDumpSettingsCmd{}).Run(ctx); err != nil {
		t.Errorf("dump-settings failed: %v", err)
	}
	if err := (&DebugHistoryCmd{}).Run(ctx); err != nil {
		t.Errorf("history failed: %v", err)
	}
}
