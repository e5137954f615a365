// Package fs provides the filesystem-backed content store.
package fs

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/contentdir"
	"github.com/fwojciec/contentdir/frontmatter"
	"golang.org/x/sync/errgroup"
)

// Ensure Store implements the content interfaces at compile time.
var _ contentdir.Service = (*Store)(nil)

// Store materializes content collections from the content tree and caches
// them per content type for the lifetime of the process.
//
// The cache is append-only: a type's entry is written once after its first
// successful load and never mutated or evicted. Concurrent first loads of
// the same type may both read the filesystem; both write equivalent values,
// so the race is benign and intentionally left unlocked. A new deployment
// means a new process and therefore a fresh cache.
type Store struct {
	baseDir string
	config  *contentdir.Config
	logger  *slog.Logger

	cache sync.Map // content type -> []*contentdir.Item
}

// NewStore creates a Store reading from baseDir/{contentRoot}. A nil logger
// discards diagnostics.
func NewStore(baseDir string, config *contentdir.Config, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{baseDir: baseDir, config: config, logger: logger}
}

// Config returns the site configuration the store was built with.
func (s *Store) Config() *contentdir.Config {
	return s.config
}

// ItemsByType returns every item of one content type. The first call loads
// from disk; later calls are served from the cache. Unknown types and
// missing directories yield an empty slice. A malformed document fails the
// load with EINVALID and nothing is cached.
func (s *Store) ItemsByType(ctx context.Context, contentType string) ([]*contentdir.Item, error) {
	if cached, ok := s.cache.Load(contentType); ok {
		return cached.([]*contentdir.Item), nil
	}

	typeConfig, ok := s.config.Type(contentType)
	if !ok {
		s.logger.Warn("unknown content type", "contentType", contentType)
		return []*contentdir.Item{}, nil
	}

	items, err := s.loadType(contentType, typeConfig)
	if err != nil {
		return nil, err
	}

	s.cache.Store(contentType, items)
	return items, nil
}

// loadType reads every document file in the type's directory.
func (s *Store) loadType(contentType string, typeConfig contentdir.TypeConfig) ([]*contentdir.Item, error) {
	dir := filepath.Join(s.baseDir, s.config.ContentRoot, typeConfig.Directory)

	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return []*contentdir.Item{}, nil
	}
	if err != nil {
		return nil, err
	}

	items := make([]*contentdir.Item, 0, len(entries))
	seen := make(map[string]string, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !frontmatter.IsContentFile(entry.Name()) {
			continue
		}

		slug := frontmatter.Slug(entry.Name())
		if prev, ok := seen[slug]; ok {
			return nil, contentdir.Errorf(contentdir.ECONFLICT,
				"duplicate slug %q in %s: %s and %s", slug, typeConfig.Directory, prev, entry.Name())
		}
		seen[slug] = entry.Name()

		src, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}

		meta, body, err := frontmatter.Parse(src)
		if err != nil {
			return nil, contentdir.Errorf(contentdir.EINVALID,
				"malformed document %s/%s: %s", typeConfig.Directory, entry.Name(), contentdir.ErrorMessage(err))
		}

		items = append(items, &contentdir.Item{
			Slug:        slug,
			ContentType: contentType,
			Body:        body,
			ContentHash: hashContent(body),
			Meta:        meta,
		})
	}

	return items, nil
}

// AllItems loads every configured content type concurrently and returns the
// concatenation in configuration-declaration order.
func (s *Store) AllItems(ctx context.Context) ([]*contentdir.Item, error) {
	perType := make([][]*contentdir.Item, len(s.config.Types))

	g, ctx := errgroup.WithContext(ctx)
	for i, tc := range s.config.Types {
		g.Go(func() error {
			items, err := s.ItemsByType(ctx, tc.Slug)
			if err != nil {
				return err
			}
			perType[i] = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []*contentdir.Item
	for _, items := range perType {
		all = append(all, items...)
	}
	return all, nil
}

// ItemBySlug retrieves one item by its global key.
// Returns ENOTFOUND if the item does not exist.
func (s *Store) ItemBySlug(ctx context.Context, contentType, slug string) (*contentdir.Item, error) {
	items, err := s.ItemsByType(ctx, contentType)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if item.Slug == slug {
			return item, nil
		}
	}
	return nil, contentdir.Errorf(contentdir.ENOTFOUND, "content %s/%s not found", contentType, slug)
}

// Slugs enumerates the (contentType, slug) pairs of the whole corpus.
func (s *Store) Slugs(ctx context.Context) ([]contentdir.SlugRef, error) {
	items, err := s.AllItems(ctx)
	if err != nil {
		return nil, err
	}
	refs := make([]contentdir.SlugRef, len(items))
	for i, item := range items {
		refs[i] = contentdir.SlugRef{ContentType: item.ContentType, Slug: item.Slug}
	}
	return refs, nil
}

// Query runs a filtered, sorted, paginated query over the corpus.
func (s *Store) Query(ctx context.Context, q contentdir.Query) (*contentdir.PaginatedResult, error) {
	var items []*contentdir.Item
	var err error
	if q.ContentType != "" {
		items, err = s.ItemsByType(ctx, q.ContentType)
	} else {
		items, err = s.AllItems(ctx)
	}
	if err != nil {
		return nil, err
	}
	return contentdir.RunQuery(items, q, s.config), nil
}

// TagCounts returns occurrence counts per tag, scoped to one content type
// when contentType is non-empty.
func (s *Store) TagCounts(ctx context.Context, contentType string) (map[string]int, error) {
	var items []*contentdir.Item
	var err error
	if contentType != "" {
		items, err = s.ItemsByType(ctx, contentType)
	} else {
		items, err = s.AllItems(ctx)
	}
	if err != nil {
		return nil, err
	}
	return contentdir.TagCounts(items), nil
}

// AllTags returns the distinct global tags sorted lexicographically.
func (s *Store) AllTags(ctx context.Context) ([]string, error) {
	counts, err := s.TagCounts(ctx, "")
	if err != nil {
		return nil, err
	}
	return contentdir.SortedTags(counts), nil
}

// ItemsByTag returns every item of any type carrying tag, in store order.
func (s *Store) ItemsByTag(ctx context.Context, tag string) ([]*contentdir.Item, error) {
	items, err := s.AllItems(ctx)
	if err != nil {
		return nil, err
	}
	return contentdir.FilterByTag(items, tag), nil
}

// SearchSnapshot builds the body-stripped search payload. Load failures
// degrade to an empty snapshot tagged with the failure code; search is a
// convenience feature and must not take a request down with it.
func (s *Store) SearchSnapshot(ctx context.Context) *contentdir.SearchSnapshot {
	items, err := s.AllItems(ctx)
	if err != nil {
		s.logger.Warn("search snapshot unavailable", "err", err)
		return contentdir.FailedSearchSnapshot(err)
	}
	return contentdir.NewSearchSnapshot(items)
}

// hashContent computes the xxHash of content as a hex string.
func hashContent(content string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(content))
	return hex.EncodeToString(b)
}
