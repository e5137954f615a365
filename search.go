package contentdir

import (
	"encoding/binary"
	"encoding/hex"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// SearchItem is a body-stripped view of an Item, small enough to ship to an
// interactive client-side filter in bulk.
type SearchItem struct {
	Slug        string `json:"slug"`
	ContentType string `json:"contentType"`
	ContentHash string `json:"contentHash"`
	Meta        Meta   `json:"meta"`

	// Value is the composite string the palette filters against.
	Value string `json:"value"`
}

// SearchSnapshot is the full-corpus search payload. It is a result type:
// either Items holds the corpus, or Failure names the error code of the
// load failure that produced an empty snapshot. An all-empty corpus and a
// failed load are therefore distinguishable by callers even though the
// presentation layer may render both as "no results".
type SearchSnapshot struct {
	// ID uniquely identifies one snapshot build.
	ID string `json:"id"`

	BuiltAt time.Time     `json:"builtAt"`
	Items   []*SearchItem `json:"items"`

	// Failure is the error code of the load failure, empty on success.
	Failure string `json:"failure,omitempty"`
}

// NewSearchSnapshot builds a snapshot from loaded items, dropping every body.
func NewSearchSnapshot(items []*Item) *SearchSnapshot {
	stripped := make([]*SearchItem, len(items))
	for i, item := range items {
		stripped[i] = &SearchItem{
			Slug:        item.Slug,
			ContentType: item.ContentType,
			ContentHash: item.ContentHash,
			Meta:        item.Meta,
			Value:       item.SearchValue(),
		}
	}
	return &SearchSnapshot{
		ID:      uuid.New().String(),
		BuiltAt: time.Now().UTC(),
		Items:   stripped,
	}
}

// FailedSearchSnapshot builds an empty snapshot tagged with the error code
// of the underlying failure.
func FailedSearchSnapshot(err error) *SearchSnapshot {
	return &SearchSnapshot{
		ID:      uuid.New().String(),
		BuiltAt: time.Now().UTC(),
		Items:   []*SearchItem{},
		Failure: ErrorCode(err),
	}
}

// Failed reports whether the snapshot represents a load failure rather than
// a genuinely empty corpus.
func (s *SearchSnapshot) Failed() bool {
	return s.Failure != ""
}

// GroupByType groups the snapshot items by content type, preserving item
// order within each group.
func (s *SearchSnapshot) GroupByType() map[string][]*SearchItem {
	groups := make(map[string][]*SearchItem)
	for _, item := range s.Items {
		groups[item.ContentType] = append(groups[item.ContentType], item)
	}
	return groups
}

// Checksum returns a hex digest over the snapshot's item identities and
// content hashes. Two snapshots of the same corpus share a checksum even
// though their IDs differ, which makes it usable as an HTTP ETag.
func (s *SearchSnapshot) Checksum() string {
	h := xxhash.New()
	for _, item := range s.Items {
		h.WriteString(item.ContentType)
		h.WriteString("/")
		h.WriteString(item.Slug)
		h.WriteString("#")
		h.WriteString(item.ContentHash)
		h.WriteString("\n")
	}
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, h.Sum64())
	return hex.EncodeToString(b)
}
