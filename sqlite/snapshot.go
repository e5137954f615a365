package sqlite

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fwojciec/contentdir"
)

// SnapshotWriter writes loaded content items into a snapshot database.
type SnapshotWriter struct {
	db *DB
}

// NewSnapshotWriter creates a new SnapshotWriter.
func NewSnapshotWriter(db *DB) *SnapshotWriter {
	return &SnapshotWriter{db: db}
}

// Write upserts every item keyed by (content_type, slug). Re-exporting the
// same corpus is idempotent; changed bodies show up as changed hashes.
func (w *SnapshotWriter) Write(ctx context.Context, items []*contentdir.Item) error {
	exportedAt := time.Now().UTC().Format(time.RFC3339)

	for _, item := range items {
		tags, err := json.Marshal(item.Meta.Tags)
		if err != nil {
			return err
		}
		if item.Meta.Tags == nil {
			tags = []byte("[]")
		}

		_, err = w.db.ExecContext(ctx, `
			INSERT INTO items (content_type, slug, title, summary, date, author, topic, tags, body, content_hash, exported_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (content_type, slug) DO UPDATE SET
				title = excluded.title,
				summary = excluded.summary,
				date = excluded.date,
				author = excluded.author,
				topic = excluded.topic,
				tags = excluded.tags,
				body = excluded.body,
				content_hash = excluded.content_hash,
				exported_at = excluded.exported_at
		`, item.ContentType, item.Slug, item.Meta.Title, item.Meta.Summary, item.Meta.Date,
			item.Meta.Author, item.Meta.Topic, string(tags), item.Body, item.ContentHash, exportedAt)
		if err != nil {
			return err
		}
	}

	return nil
}

// Count returns the number of exported items, optionally scoped to one
// content type.
func (w *SnapshotWriter) Count(ctx context.Context, contentType string) (int, error) {
	var n int
	var err error
	if contentType != "" {
		err = w.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM items WHERE content_type = ?`, contentType).Scan(&n)
	} else {
		err = w.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM items`).Scan(&n)
	}
	return n, err
}
