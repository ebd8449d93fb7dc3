package system

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/julianstephens/healthtrack/internal/cli"
	"github.com/julianstephens/healthtrack/internal/storage"
	"github.com/julianstephens/healthtrack/internal/utils"
)

type DebugCmd struct {
	DBPath       DebugDBPathCmd       `cmd:"" name:"db-path" help:"Show database path."`
	Keys         DebugKeysCmd         `cmd:"" help:"List stored keys."`
	Dump         DebugDumpCmd         `cmd:"" help:"Dump the raw JSON stored under a key."`
	DumpEntry    DebugDumpEntryCmd    `cmd:"" help:"Dump one day's entry as JSON."`
	DumpSettings DebugDumpSettingsCmd `cmd:"" help:"Dump settings as JSON."`
	History      DebugHistoryCmd      `cmd:"" help:"Dump achievement unlock history as JSON."`
}

func printJSON(v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(jsonBytes))
	return nil
}

type DebugDBPathCmd struct{}

func (cmd *DebugDBPathCmd) Run(ctx *cli.Context) error {
	return printJSON(map[string]string{
		"path": ctx.Store.GetConfigPath(),
	})
}

type DebugKeysCmd struct{}

func (cmd *DebugKeysCmd) Run(ctx *cli.Context) error {
	keys, err := ctx.Store.Keys()
	if err != nil {
		return fmt.Errorf("failed to list keys: %w", err)
	}
	for _, k := range keys {
		fmt.Println(k)
	}
	return nil
}

type DebugDumpCmd struct {
	Key string `arg:"" help:"Storage key to dump."`
}

func (cmd *DebugDumpCmd) Run(ctx *cli.Context) error {
	raw, err := ctx.Store.Get(cmd.Key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("key not found: %s", cmd.Key)
		}
		return fmt.Errorf("failed to read %s: %w", cmd.Key, err)
	}

	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		return fmt.Errorf("stored value for %s is not valid JSON: %w", cmd.Key, err)
	}
	fmt.Println(out.String())
	return nil
}

type DebugDumpEntryCmd struct {
	Date string `arg:"" help:"Day of the entry to dump (YYYY-MM-DD or 'today')."`
}

func (cmd *DebugDumpEntryCmd) Run(ctx *cli.Context) error {
	loc := ctx.Location()
	day := ctx.Now()
	if cmd.Date != "today" {
		parsed, err := utils.ParseDateInLocation(cmd.Date, loc)
		if err != nil {
			return fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD or 'today')", cmd.Date)
		}
		day = parsed
	}

	entry, ok := ctx.Tracker().Entries.OnDay(day)
	if !ok {
		return fmt.Errorf("no entry found for date: %s", utils.DayKey(day, loc))
	}
	return printJSON(entry)
}

type DebugDumpSettingsCmd struct{}

func (cmd *DebugDumpSettingsCmd) Run(ctx *cli.Context) error {
	return printJSON(storage.LoadSettings(ctx.Store))
}

type DebugHistoryCmd struct{}

func (cmd *DebugHistoryCmd) Run(ctx *cli.Context) error {
	history, err := storage.UnlockHistory(ctx.Store)
	if err != nil {
		return fmt.Errorf("failed to read unlock history: %w", err)
	}
	return printJSON(history)
}
