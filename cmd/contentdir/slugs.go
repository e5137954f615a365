package main

import (
	"fmt"

	"github.com/fwojciec/contentdir"
)

// Run executes the slugs command.
func (c *SlugsCmd) Run(deps *Dependencies) error {
	refs, err := deps.Content.Slugs(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", contentdir.ErrorMessage(err))
		return err
	}

	for _, ref := range refs {
		fmt.Fprintf(deps.Stdout, "%s/%s\n", ref.ContentType, ref.Slug)
	}

	return nil
}
