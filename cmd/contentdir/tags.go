package main

import (
	"fmt"

	"github.com/fwojciec/contentdir"
)

// Run executes the tags command.
func (c *TagsCmd) Run(deps *Dependencies) error {
	counts, err := deps.Content.TagCounts(deps.Ctx, c.Type)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", contentdir.ErrorMessage(err))
		return err
	}

	if len(counts) == 0 {
		fmt.Fprintln(deps.Stdout, "No tags found.")
		return nil
	}

	for _, tag := range contentdir.SortedTags(counts) {
		fmt.Fprintf(deps.Stdout, "%s  %d\n", tag, counts[tag])
	}

	return nil
}
