package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/contentdir"
	"github.com/fwojciec/contentdir/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func testItems() []*contentdir.Item {
	return []*contentdir.Item{
		{
			Slug:        "first-post",
			ContentType: "articles",
			Body:        "Body one.",
			ContentHash: "0011223344556677",
			Meta: contentdir.Meta{
				Title:   "First Post",
				Summary: "A summary",
				Date:    "2024-01-01",
				Author:  "Jan",
				Tags:    []string{"go", "web"},
			},
		},
		{
			Slug:        "setup",
			ContentType: "guides",
			Body:        "Body two.",
			ContentHash: "8899aabbccddeeff",
			Meta:        contentdir.Meta{Title: "Setup"},
		},
	}
}

func TestSnapshotWriter_Write(t *testing.T) {
	t.Parallel()

	t.Run("writes every item", func(t *testing.T) {
		t.Parallel()

		db := openTestDB(t)
		writer := sqlite.NewSnapshotWriter(db)
		ctx := context.Background()

		require.NoError(t, writer.Write(ctx, testItems()))

		n, err := writer.Count(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		var title, tags string
		err = db.QueryRowContext(ctx, `SELECT title, tags FROM items WHERE content_type = ? AND slug = ?`,
			"articles", "first-post").Scan(&title, &tags)
		require.NoError(t, err)
		assert.Equal(t, "First Post", title)
		assert.JSONEq(t, `["go","web"]`, tags)
	})

	t.Run("re-export is idempotent", func(t *testing.T) {
		t.Parallel()

		db := openTestDB(t)
		writer := sqlite.NewSnapshotWriter(db)
		ctx := context.Background()

		require.NoError(t, writer.Write(ctx, testItems()))
		require.NoError(t, writer.Write(ctx, testItems()))

		n, err := writer.Count(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("counts scoped by content type", func(t *testing.T) {
		t.Parallel()

		db := openTestDB(t)
		writer := sqlite.NewSnapshotWriter(db)
		ctx := context.Background()

		require.NoError(t, writer.Write(ctx, testItems()))

		n, err := writer.Count(ctx, "guides")
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})
}
