package mock

import (
	"context"

	"github.com/fwojciec/contentdir"
)

var _ contentdir.Service = (*Service)(nil)

// Service is a mock implementation of contentdir.Service.
type Service struct {
	ItemsByTypeFn    func(ctx context.Context, contentType string) ([]*contentdir.Item, error)
	AllItemsFn       func(ctx context.Context) ([]*contentdir.Item, error)
	ItemBySlugFn     func(ctx context.Context, contentType, slug string) (*contentdir.Item, error)
	SlugsFn          func(ctx context.Context) ([]contentdir.SlugRef, error)
	QueryFn          func(ctx context.Context, q contentdir.Query) (*contentdir.PaginatedResult, error)
	TagCountsFn      func(ctx context.Context, contentType string) (map[string]int, error)
	AllTagsFn        func(ctx context.Context) ([]string, error)
	ItemsByTagFn     func(ctx context.Context, tag string) ([]*contentdir.Item, error)
	SearchSnapshotFn func(ctx context.Context) *contentdir.SearchSnapshot
}

func (s *Service) ItemsByType(ctx context.Context, contentType string) ([]*contentdir.Item, error) {
	return s.ItemsByTypeFn(ctx, contentType)
}

func (s *Service) AllItems(ctx context.Context) ([]*contentdir.Item, error) {
	return s.AllItemsFn(ctx)
}

func (s *Service) ItemBySlug(ctx context.Context, contentType, slug string) (*contentdir.Item, error) {
	return s.ItemBySlugFn(ctx, contentType, slug)
}

func (s *Service) Slugs(ctx context.Context) ([]contentdir.SlugRef, error) {
	return s.SlugsFn(ctx)
}

func (s *Service) Query(ctx context.Context, q contentdir.Query) (*contentdir.PaginatedResult, error) {
	return s.QueryFn(ctx, q)
}

func (s *Service) TagCounts(ctx context.Context, contentType string) (map[string]int, error) {
	return s.TagCountsFn(ctx, contentType)
}

func (s *Service) AllTags(ctx context.Context) ([]string, error) {
	return s.AllTagsFn(ctx)
}

func (s *Service) ItemsByTag(ctx context.Context, tag string) ([]*contentdir.Item, error) {
	return s.ItemsByTagFn(ctx, tag)
}

func (s *Service) SearchSnapshot(ctx context.Context) *contentdir.SearchSnapshot {
	return s.SearchSnapshotFn(ctx)
}
