// Package slog provides logging decorators for contentdir services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/contentdir"
)

// Ensure LoggingStore implements contentdir.Service.
var _ contentdir.Service = (*LoggingStore)(nil)

// LoggingStore wraps a contentdir.Service with debug logging of load sizes,
// query shapes, and durations.
type LoggingStore struct {
	next   contentdir.Service
	logger *slog.Logger
}

// NewLoggingStore creates a new LoggingStore.
func NewLoggingStore(next contentdir.Service, logger *slog.Logger) *LoggingStore {
	return &LoggingStore{next: next, logger: logger}
}

func (s *LoggingStore) ItemsByType(ctx context.Context, contentType string) ([]*contentdir.Item, error) {
	begin := time.Now()
	items, err := s.next.ItemsByType(ctx, contentType)
	if err != nil {
		s.logger.Error("load type", "contentType", contentType, "err", err)
		return nil, err
	}
	s.logger.Debug("load type", "contentType", contentType, "items", len(items), "duration", time.Since(begin))
	return items, nil
}

func (s *LoggingStore) AllItems(ctx context.Context) ([]*contentdir.Item, error) {
	begin := time.Now()
	items, err := s.next.AllItems(ctx)
	if err != nil {
		s.logger.Error("load all", "err", err)
		return nil, err
	}
	s.logger.Debug("load all", "items", len(items), "duration", time.Since(begin))
	return items, nil
}

func (s *LoggingStore) ItemBySlug(ctx context.Context, contentType, slug string) (*contentdir.Item, error) {
	item, err := s.next.ItemBySlug(ctx, contentType, slug)
	if err != nil {
		if contentdir.ErrorCode(err) == contentdir.ENOTFOUND {
			s.logger.Debug("item not found", "contentType", contentType, "slug", slug)
		} else {
			s.logger.Error("get item", "contentType", contentType, "slug", slug, "err", err)
		}
		return nil, err
	}
	return item, nil
}

func (s *LoggingStore) Slugs(ctx context.Context) ([]contentdir.SlugRef, error) {
	return s.next.Slugs(ctx)
}

func (s *LoggingStore) Query(ctx context.Context, q contentdir.Query) (*contentdir.PaginatedResult, error) {
	begin := time.Now()
	result, err := s.next.Query(ctx, q)
	if err != nil {
		s.logger.Error("query", "contentType", q.ContentType, "err", err)
		return nil, err
	}
	s.logger.Debug("query",
		"contentType", q.ContentType,
		"query", q.Query,
		"tags", q.Tags,
		"page", result.Pagination.Page,
		"totalItems", result.Pagination.TotalItems,
		"duration", time.Since(begin))
	return result, nil
}

func (s *LoggingStore) TagCounts(ctx context.Context, contentType string) (map[string]int, error) {
	return s.next.TagCounts(ctx, contentType)
}

func (s *LoggingStore) AllTags(ctx context.Context) ([]string, error) {
	return s.next.AllTags(ctx)
}

func (s *LoggingStore) ItemsByTag(ctx context.Context, tag string) ([]*contentdir.Item, error) {
	return s.next.ItemsByTag(ctx, tag)
}

func (s *LoggingStore) SearchSnapshot(ctx context.Context) *contentdir.SearchSnapshot {
	begin := time.Now()
	snapshot := s.next.SearchSnapshot(ctx)
	if snapshot.Failed() {
		s.logger.Warn("search snapshot failed", "failure", snapshot.Failure)
		return snapshot
	}
	s.logger.Debug("search snapshot", "items", len(snapshot.Items), "duration", time.Since(begin))
	return snapshot
}
