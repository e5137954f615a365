package main

import (
	"fmt"

	"github.com/fwojciec/contentdir"
	"github.com/fwojciec/contentdir/sqlite"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	items, err := deps.Content.AllItems(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", contentdir.ErrorMessage(err))
		return err
	}

	db := sqlite.NewDB(c.Path)
	if err := db.Open(); err != nil {
		return fmt.Errorf("failed to open snapshot database at %q: %w", c.Path, err)
	}
	defer db.Close()

	writer := sqlite.NewSnapshotWriter(db)
	if err := writer.Write(deps.Ctx, items); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	fmt.Fprintf(deps.Stdout, "Exported %d items to %s\n", len(items), c.Path)

	return nil
}
