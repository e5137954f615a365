package contentdir

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Meta holds the front-matter metadata of a content item. Known fields are
// typed; anything else an author puts in the front matter lands in Extra and
// is passed through opaquely.
type Meta struct {
	Title   string   `yaml:"title" json:"title"`
	Summary string   `yaml:"summary" json:"summary,omitempty"`
	Image   string   `yaml:"image" json:"image,omitempty"`
	Date    string   `yaml:"date" json:"date,omitempty"` // ISO-8601
	Author  string   `yaml:"author" json:"author,omitempty"`
	Tags    []string `yaml:"tags" json:"tags,omitempty"`
	Topic   string   `yaml:"topic" json:"topic,omitempty"`

	// Fields used by specific content types.
	AudioURL     string   `yaml:"audioUrl" json:"audioUrl,omitempty"`
	Virtue       string   `yaml:"virtue" json:"virtue,omitempty"`
	Technologies []string `yaml:"technologies" json:"technologies,omitempty"`
	GitHub       string   `yaml:"github" json:"github,omitempty"`
	Demo         string   `yaml:"demo" json:"demo,omitempty"`
	Featured     bool     `yaml:"featured" json:"featured,omitempty"`

	// Extra holds unrecognized front-matter fields keyed by their raw name.
	Extra map[string]any `yaml:"-" json:"extra,omitempty"`
}

// KnownMetaFields lists the front-matter keys that decode into typed Meta
// fields. Keys not in this list end up in Meta.Extra.
var KnownMetaFields = []string{
	"title", "summary", "image", "date", "author", "tags", "topic",
	"audioUrl", "virtue", "technologies", "github", "demo", "featured",
}

// SortValue returns the string form of the named metadata field and whether
// the field is set. Unset fields (including known fields at their zero
// value) report false so that sorting can keep them last.
func (m Meta) SortValue(field string) (string, bool) {
	switch field {
	case "title":
		return m.Title, m.Title != ""
	case "summary":
		return m.Summary, m.Summary != ""
	case "image":
		return m.Image, m.Image != ""
	case "date":
		return m.Date, m.Date != ""
	case "author":
		return m.Author, m.Author != ""
	case "tags":
		return strings.Join(m.Tags, " "), len(m.Tags) > 0
	case "topic":
		return m.Topic, m.Topic != ""
	case "audioUrl":
		return m.AudioURL, m.AudioURL != ""
	case "virtue":
		return m.Virtue, m.Virtue != ""
	case "technologies":
		return strings.Join(m.Technologies, " "), len(m.Technologies) > 0
	case "github":
		return m.GitHub, m.GitHub != ""
	case "demo":
		return m.Demo, m.Demo != ""
	case "featured":
		return strconv.FormatBool(m.Featured), m.Featured
	}
	if v, ok := m.Extra[field]; ok && v != nil {
		return fmt.Sprint(v), true
	}
	return "", false
}

// HasTag reports whether the item's tag list contains tag.
func (m Meta) HasTag(tag string) bool {
	for _, t := range m.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Item represents one content document loaded from the content tree.
type Item struct {
	// Slug is the URL identifier, derived from the source file's base name.
	// Unique within a content type; (ContentType, Slug) is the global key.
	Slug string `json:"slug"`

	// ContentType names the type collection the item belongs to.
	ContentType string `json:"contentType"`

	// Body is the raw markdown/MDX source following the front matter.
	Body string `json:"body"`

	// ContentHash is a hex-encoded hash of Body, computed at load time.
	ContentHash string `json:"contentHash"`

	Meta Meta `json:"meta"`
}

// SearchValue returns the composite string an interactive palette filters
// against: "{type}/{slug} {title} {summary} {joined tags}".
func (i *Item) SearchValue() string {
	return fmt.Sprintf("%s/%s %s %s %s",
		i.ContentType, i.Slug, i.Meta.Title, i.Meta.Summary, strings.Join(i.Meta.Tags, " "))
}

// SlugRef identifies one content item across all types. Used for static-path
// enumeration at build time.
type SlugRef struct {
	ContentType string `json:"contentType"`
	Slug        string `json:"slug"`
}

// ContentService represents the read operations over the content store.
type ContentService interface {
	// ItemsByType returns every item of one content type in file-system
	// enumeration order. Unknown types and missing directories yield an
	// empty slice, not an error. Returns EINVALID if a document in the
	// type's directory cannot be parsed.
	ItemsByType(ctx context.Context, contentType string) ([]*Item, error)

	// AllItems returns every item of every configured type, in
	// configuration-declaration order of types.
	AllItems(ctx context.Context) ([]*Item, error)

	// ItemBySlug retrieves one item by its global key.
	// Returns ENOTFOUND if the item does not exist.
	ItemBySlug(ctx context.Context, contentType, slug string) (*Item, error)

	// Slugs enumerates the (contentType, slug) pairs of the whole corpus.
	Slugs(ctx context.Context) ([]SlugRef, error)

	// Query runs a filtered, sorted, paginated query over the corpus.
	Query(ctx context.Context, q Query) (*PaginatedResult, error)
}

// TagService represents tag aggregation over the content store.
type TagService interface {
	// TagCounts returns occurrence counts per tag, scoped to one content
	// type when contentType is non-empty, else global.
	TagCounts(ctx context.Context, contentType string) (map[string]int, error)

	// AllTags returns the distinct global tags sorted lexicographically.
	AllTags(ctx context.Context) ([]string, error)

	// ItemsByTag returns every item carrying tag, in store order.
	ItemsByTag(ctx context.Context, tag string) ([]*Item, error)
}

// SearchService supplies the body-stripped corpus snapshot backing
// client-side search. It never fails: load errors degrade to an empty
// snapshot carrying a failure reason.
type SearchService interface {
	SearchSnapshot(ctx context.Context) *SearchSnapshot
}

// Service aggregates the read operations consumed by the CLI and the HTTP
// server.
type Service interface {
	ContentService
	TagService
	SearchService
}
