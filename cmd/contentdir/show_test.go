package main_test

import (
	"context"
	"testing"

	"github.com/fwojciec/contentdir"
	main "github.com/fwojciec/contentdir/cmd/contentdir"
	"github.com/fwojciec/contentdir/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints the metadata summary", func(t *testing.T) {
		t.Parallel()

		service := &mock.Service{
			ItemBySlugFn: func(_ context.Context, contentType, slug string) (*contentdir.Item, error) {
				return &contentdir.Item{
					Slug:        slug,
					ContentType: contentType,
					Body:        "The body.",
					ContentHash: "0011223344556677",
					Meta: contentdir.Meta{
						Title:  "First Post",
						Date:   "2024-01-01",
						Author: "Jan",
						Tags:   []string{"go", "web"},
					},
				}, nil
			},
		}

		deps, stdout, _ := newDeps(service)
		cmd := &main.ShowCmd{Type: "articles", Slug: "first-post"}

		require.NoError(t, cmd.Run(deps))

		output := stdout.String()
		assert.Contains(t, output, "articles/first-post")
		assert.Contains(t, output, "Title:   First Post")
		assert.Contains(t, output, "Tags:    go, web")
		assert.NotContains(t, output, "The body.")
	})

	t.Run("prints only the body with --body", func(t *testing.T) {
		t.Parallel()

		service := &mock.Service{
			ItemBySlugFn: func(_ context.Context, contentType, slug string) (*contentdir.Item, error) {
				return &contentdir.Item{Slug: slug, ContentType: contentType, Body: "Raw body."}, nil
			},
		}

		deps, stdout, _ := newDeps(service)
		cmd := &main.ShowCmd{Type: "articles", Slug: "first-post", Body: true}

		require.NoError(t, cmd.Run(deps))
		assert.Equal(t, "Raw body.\n", stdout.String())
	})

	t.Run("suggests the slugs command when not found", func(t *testing.T) {
		t.Parallel()

		service := &mock.Service{
			ItemBySlugFn: func(_ context.Context, contentType, slug string) (*contentdir.Item, error) {
				return nil, contentdir.Errorf(contentdir.ENOTFOUND, "content %s/%s not found", contentType, slug)
			},
		}

		deps, _, stderr := newDeps(service)
		cmd := &main.ShowCmd{Type: "articles", Slug: "missing-slug"}

		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Equal(t, contentdir.ENOTFOUND, contentdir.ErrorCode(err))
		assert.Contains(t, stderr.String(), "contentdir slugs")
	})
}
