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

func TestSearchCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("groups results under configured headings", func(t *testing.T) {
		t.Parallel()

		service := &mock.Service{
			SearchSnapshotFn: func(_ context.Context) *contentdir.SearchSnapshot {
				return contentdir.NewSearchSnapshot([]*contentdir.Item{
					{Slug: "a1", ContentType: "articles", Meta: contentdir.Meta{Title: "A1"}},
					{Slug: "g1", ContentType: "guides", Meta: contentdir.Meta{Title: "G1"}},
				})
			},
		}

		deps, stdout, _ := newDeps(service)

		require.NoError(t, (&main.SearchCmd{}).Run(deps))

		output := stdout.String()
		assert.Contains(t, output, "Articles:")
		assert.Contains(t, output, "Guides:")
		assert.Contains(t, output, "articles/a1  A1")
		assert.Contains(t, output, "2 items")
	})

	t.Run("distinguishes an empty corpus from a failed load", func(t *testing.T) {
		t.Parallel()

		empty := &mock.Service{
			SearchSnapshotFn: func(_ context.Context) *contentdir.SearchSnapshot {
				return contentdir.NewSearchSnapshot(nil)
			},
		}
		deps, stdout, stderr := newDeps(empty)
		require.NoError(t, (&main.SearchCmd{}).Run(deps))
		assert.Contains(t, stdout.String(), "Corpus is empty.")
		assert.Empty(t, stderr.String())

		failed := &mock.Service{
			SearchSnapshotFn: func(_ context.Context) *contentdir.SearchSnapshot {
				return contentdir.FailedSearchSnapshot(contentdir.Errorf(contentdir.EINVALID, "boom"))
			},
		}
		deps, stdout, stderr = newDeps(failed)
		require.NoError(t, (&main.SearchCmd{}).Run(deps))
		assert.Empty(t, stdout.String())
		assert.Contains(t, stderr.String(), "search unavailable (invalid)")
	})
}
