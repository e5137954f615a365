package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/contentdir"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	item, err := deps.Content.ItemBySlug(deps.Ctx, c.Type, c.Slug)
	if err != nil {
		if contentdir.ErrorCode(err) == contentdir.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: %s/%s not found. Use 'contentdir slugs' to see available content.\n", c.Type, c.Slug)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", contentdir.ErrorMessage(err))
		}
		return err
	}

	if c.Body {
		fmt.Fprintln(deps.Stdout, item.Body)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "%s/%s\n", item.ContentType, item.Slug)
	fmt.Fprintf(deps.Stdout, "Title:   %s\n", item.Meta.Title)
	if item.Meta.Summary != "" {
		fmt.Fprintf(deps.Stdout, "Summary: %s\n", item.Meta.Summary)
	}
	if item.Meta.Date != "" {
		fmt.Fprintf(deps.Stdout, "Date:    %s\n", item.Meta.Date)
	}
	if item.Meta.Author != "" {
		fmt.Fprintf(deps.Stdout, "Author:  %s\n", item.Meta.Author)
	}
	if len(item.Meta.Tags) > 0 {
		fmt.Fprintf(deps.Stdout, "Tags:    %s\n", strings.Join(item.Meta.Tags, ", "))
	}
	fmt.Fprintf(deps.Stdout, "Hash:    %s\n", item.ContentHash)

	return nil
}
