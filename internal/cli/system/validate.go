package system

import (
	"fmt"

	"github.com/julianstephens/healthtrack/internal/cli"
	"github.com/julianstephens/healthtrack/internal/validation"
)

type ValidateCmd struct {
	Fix bool `help:"Repair duplicate days, negative values and unknown moods."`
}

func (cmd *ValidateCmd) Run(ctx *cli.Context) error {
	repo := ctx.Tracker().Entries
	v := validation.New(validation.WithClock(ctx.Clock), validation.WithLocation(ctx.Location()))

	fmt.Println("Validating entries...")
	result := v.ValidateEntries(repo.All())

	fmt.Println()
	fmt.Println(result.FormatReport())

	if !result.HasConflicts() || !cmd.Fix {
		return nil
	}

	fixed, actions := v.Fix(repo.All())
	if len(actions) == 0 {
		fmt.Println("Nothing could be fixed automatically.")
		return nil
	}

	ctx.PerformAutomaticBackup()
	if err := repo.ReplaceAll(fixed); err != nil {
		return fmt.Errorf("failed to save fixed entries: %w", err)
	}

	fmt.Println("Applied fixes:")
	for _, a := range actions {
		fmt.Printf("- %s\n", a.Action)
	}

	remaining := v.ValidateEntries(repo.All())
	if remaining.HasConflicts() {
		fmt.Printf("\n%d conflict(s) need manual attention.\n", len(remaining.Conflicts))
	}
	return nil
}
