package system

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/healthtrack/internal/cli"
	"github.com/julianstephens/healthtrack/internal/storage"
)

// ExportCmd writes every stored record to a portable JSON file
type ExportCmd struct {
	Path  string `arg:"" help:"Destination JSON file."`
	Force bool   `help:"Overwrite the file if it exists."`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	path := kong.ExpandPath(c.Path)
	if c.Force {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove existing export: %w", err)
		}
	}

	dst := storage.NewJSONStore(path)
	if err := dst.Init(); err != nil {
		return err
	}

	copied, err := storage.Copy(dst, ctx.Store)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	fmt.Printf("✓ Exported %d record(s) to %s\n", copied, path)
	return nil
}

// ImportCmd loads records from a JSON export, replacing matching keys
type ImportCmd struct {
	Path string `arg:"" help:"JSON file written by 'healthtrack export'." type:"existingfile"`
}

func (c *ImportCmd) Run(ctx *cli.Context) error {
	src := storage.NewJSONStore(kong.ExpandPath(c.Path))
	if err := src.Load(); err != nil {
		return fmt.Errorf("failed to read export: %w", err)
	}

	ctx.PerformAutomaticBackup()

	copied, err := storage.Copy(ctx.Store, src)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}
	fmt.Printf("✓ Imported %d record(s) from %s\n", copied, c.Path)
	return nil
}
