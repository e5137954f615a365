package main

import (
	"fmt"

	"github.com/fwojciec/contentdir"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	result, err := deps.Content.Query(deps.Ctx, contentdir.Query{
		ContentType: c.Type,
		Page:        c.Page,
		PageSize:    c.PageSize,
		Query:       c.Query,
		Tags:        c.Tags,
		SortBy:      c.SortBy,
		SortOrder:   c.SortOrder,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", contentdir.ErrorMessage(err))
		return err
	}

	if result.Pagination.TotalItems == 0 {
		fmt.Fprintln(deps.Stdout, "No content found.")
		return nil
	}

	for _, item := range result.Items {
		line := fmt.Sprintf("%s/%s  %s", item.ContentType, item.Slug, item.Meta.Title)
		if item.Meta.Date != "" {
			line += fmt.Sprintf("  (%s)", item.Meta.Date)
		}
		fmt.Fprintln(deps.Stdout, line)
	}

	p := result.Pagination
	fmt.Fprintf(deps.Stdout, "\nPage %d of %d (%d items)\n", p.Page, p.TotalPages, p.TotalItems)

	return nil
}
