package contentdir

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Query describes one content request. All fields are optional; unset
// fields fall back to configuration defaults. Queries are transient values
// constructed per request and never persisted.
type Query struct {
	ContentType string   `json:"contentType,omitempty"`
	Page        int      `json:"page,omitempty"` // 1-based
	PageSize    int      `json:"pageSize,omitempty"`
	Query       string   `json:"query,omitempty"` // free-text substring filter
	Tags        []string `json:"tags,omitempty"`  // AND-combined
	SortBy      string   `json:"sortBy,omitempty"`
	SortOrder   string   `json:"sortOrder,omitempty"`
}

// Pagination carries the derived page metadata of a query result.
type Pagination struct {
	Page        int  `json:"page"`
	PageSize    int  `json:"pageSize"`
	TotalItems  int  `json:"totalItems"`
	TotalPages  int  `json:"totalPages"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

// Filters echoes the resolved query parameters so UI state can be restored.
type Filters struct {
	Query     string   `json:"query,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	SortBy    string   `json:"sortBy"`
	SortOrder string   `json:"sortOrder"`
}

// PaginatedResult is one page of a query plus its metadata.
type PaginatedResult struct {
	Items      []*Item    `json:"items"`
	Pagination Pagination `json:"pagination"`
	Filters    Filters    `json:"filters"`
}

// RunQuery applies q to items in fixed order: free-text filter, tag-AND
// filter, stable sort, pagination. It is a pure function: items is never
// mutated, and the returned slice is a fresh copy.
func RunQuery(items []*Item, q Query, config *Config) *PaginatedResult {
	page := q.Page
	if page < 1 {
		page = 1
	}
	pageSize := q.PageSize
	if pageSize < 1 {
		pageSize = config.PageSizeFor(q.ContentType)
	}
	sortBy := q.SortBy
	sortOrder := q.SortOrder
	if sortBy == "" {
		sortBy = config.SortFor(q.ContentType).Field
	}
	if sortOrder == "" {
		sortOrder = config.SortFor(q.ContentType).Order
	}

	filtered := filterItems(items, q.Query, q.Tags)
	sortItems(filtered, sortBy, sortOrder)

	totalItems := len(filtered)
	totalPages := (totalItems + pageSize - 1) / pageSize
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > totalItems {
		start = totalItems
	}
	if end > totalItems {
		end = totalItems
	}

	return &PaginatedResult{
		Items: filtered[start:end],
		Pagination: Pagination{
			Page:        page,
			PageSize:    pageSize,
			TotalItems:  totalItems,
			TotalPages:  totalPages,
			HasNextPage: page < totalPages,
			HasPrevPage: page > 1,
		},
		Filters: Filters{
			Query:     q.Query,
			Tags:      q.Tags,
			SortBy:    sortBy,
			SortOrder: sortOrder,
		},
	}
}

// filterItems returns a new slice holding the items that match the free-text
// query and carry every requested tag.
func filterItems(items []*Item, query string, tags []string) []*Item {
	out := make([]*Item, 0, len(items))
	q := strings.ToLower(query)
	for _, item := range items {
		if q != "" && !strings.Contains(searchableText(item), q) {
			continue
		}
		if !hasAllTags(item, tags) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// searchableText concatenates the free-text-filterable metadata fields,
// skipping the ones that are missing.
func searchableText(item *Item) string {
	parts := make([]string, 0, 5)
	m := item.Meta
	if m.Title != "" {
		parts = append(parts, m.Title)
	}
	if m.Summary != "" {
		parts = append(parts, m.Summary)
	}
	if len(m.Tags) > 0 {
		parts = append(parts, strings.Join(m.Tags, " "))
	}
	if m.Author != "" {
		parts = append(parts, m.Author)
	}
	if m.Topic != "" {
		parts = append(parts, m.Topic)
	}
	return strings.ToLower(strings.Join(parts, " "))
}

func hasAllTags(item *Item, tags []string) bool {
	for _, tag := range tags {
		if !item.Meta.HasTag(tag) {
			return false
		}
	}
	return true
}

// sortItems stably sorts items in place by the named metadata field using
// locale-aware string comparison. Items missing the field sort to the end
// regardless of order; the desc flip applies only to defined-vs-defined
// comparisons.
func sortItems(items []*Item, sortBy, sortOrder string) {
	c := collate.New(language.Und)
	desc := sortOrder == SortDesc
	sort.SliceStable(items, func(i, j int) bool {
		av, aok := items[i].Meta.SortValue(sortBy)
		bv, bok := items[j].Meta.SortValue(sortBy)
		if !aok || !bok {
			return aok && !bok
		}
		cmp := c.CompareString(av, bv)
		if desc {
			return cmp > 0
		}
		return cmp < 0
	})
}
