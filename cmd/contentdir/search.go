package main

import (
	"fmt"
	"sort"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	snapshot := deps.Content.SearchSnapshot(deps.Ctx)

	if snapshot.Failed() {
		fmt.Fprintf(deps.Stderr, "search unavailable (%s)\n", snapshot.Failure)
		return nil
	}

	if len(snapshot.Items) == 0 {
		fmt.Fprintln(deps.Stdout, "Corpus is empty.")
		return nil
	}

	groups := snapshot.GroupByType()
	types := make([]string, 0, len(groups))
	for contentType := range groups {
		types = append(types, contentType)
	}
	sort.Strings(types)

	for _, contentType := range types {
		heading := contentType
		if tc, ok := deps.Config.Type(contentType); ok && tc.NamePlural != "" {
			heading = tc.NamePlural
		}
		fmt.Fprintf(deps.Stdout, "%s:\n", heading)
		for _, item := range groups[contentType] {
			fmt.Fprintf(deps.Stdout, "  %s/%s  %s\n", item.ContentType, item.Slug, item.Meta.Title)
		}
	}

	fmt.Fprintf(deps.Stdout, "\n%d items (snapshot %s)\n", len(snapshot.Items), snapshot.ID)

	return nil
}
