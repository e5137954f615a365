package contentdir

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Sort orders accepted by Query.SortOrder and SortSpec.Order.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// SortSpec is a (field, order) pair.
type SortSpec struct {
	Field string `yaml:"field" json:"field"`
	Order string `yaml:"order" json:"order"`
}

// TypeFeatures toggles optional behavior for one content type.
type TypeFeatures struct {
	Audio      bool `yaml:"audio" json:"audio"`
	Images     bool `yaml:"images" json:"images"`
	Tags       bool `yaml:"tags" json:"tags"`
	Search     bool `yaml:"search" json:"search"`
	Pagination bool `yaml:"pagination" json:"pagination"`
	VirtueCard bool `yaml:"virtueCard" json:"virtueCard"`
}

// CardDisplay toggles fields on list-page cards. Consumed by the rendering
// layer; the core only carries it.
type CardDisplay struct {
	ShowImage   bool `yaml:"showImage" json:"showImage"`
	ShowSummary bool `yaml:"showSummary" json:"showSummary"`
	ShowTags    bool `yaml:"showTags" json:"showTags"`
	ShowDate    bool `yaml:"showDate" json:"showDate"`
	ShowAuthor  bool `yaml:"showAuthor" json:"showAuthor"`
}

// DetailDisplay toggles fields on detail pages.
type DetailDisplay struct {
	ShowImage  bool `yaml:"showImage" json:"showImage"`
	ShowAudio  bool `yaml:"showAudio" json:"showAudio"`
	ShowTags   bool `yaml:"showTags" json:"showTags"`
	ShowAuthor bool `yaml:"showAuthor" json:"showAuthor"`
	ShowDate   bool `yaml:"showDate" json:"showDate"`
	ShowVirtue bool `yaml:"showVirtue" json:"showVirtue"`
}

// TypeConfig configures one content type.
type TypeConfig struct {
	Slug           string        `yaml:"slug" json:"slug"`
	Name           string        `yaml:"name" json:"name"`
	NamePlural     string        `yaml:"namePlural" json:"namePlural"`
	Directory      string        `yaml:"directory" json:"directory"`
	PageSize       int           `yaml:"pageSize" json:"pageSize,omitempty"`
	RequiredFields []string      `yaml:"requiredFields" json:"requiredFields,omitempty"` // advisory, not enforced at load
	Features       TypeFeatures  `yaml:"features" json:"features"`
	DefaultSort    *SortSpec     `yaml:"defaultSort" json:"defaultSort,omitempty"`
	Card           CardDisplay   `yaml:"card" json:"card"`
	Detail         DetailDisplay `yaml:"detail" json:"detail"`
}

// Validate returns an error if the type configuration contains invalid fields.
func (tc *TypeConfig) Validate() error {
	if tc.Slug == "" {
		return Errorf(EINVALID, "content type slug required")
	}
	if tc.Directory == "" {
		return Errorf(EINVALID, "content type %q directory required", tc.Slug)
	}
	if tc.DefaultSort != nil && tc.DefaultSort.Order != SortAsc && tc.DefaultSort.Order != SortDesc {
		return Errorf(EINVALID, "content type %q sort order must be %q or %q", tc.Slug, SortAsc, SortDesc)
	}
	return nil
}

// Defaults holds site-wide query fallbacks.
type Defaults struct {
	PageSize  int    `yaml:"pageSize" json:"pageSize"`
	SortField string `yaml:"sortField" json:"sortField"`
	SortOrder string `yaml:"sortOrder" json:"sortOrder"`
}

// SiteFeatures toggles site-wide features.
type SiteFeatures struct {
	Search     bool `yaml:"search" json:"search"`
	Tags       bool `yaml:"tags" json:"tags"`
	Pagination bool `yaml:"pagination" json:"pagination"`
}

// Config is the static site configuration. It is built once at process
// start and never mutated afterwards. Types is an ordered slice so that
// whole-corpus operations follow declaration order.
type Config struct {
	ContentRoot string       `yaml:"contentRoot" json:"contentRoot"`
	Defaults    Defaults     `yaml:"defaults" json:"defaults"`
	Features    SiteFeatures `yaml:"features" json:"features"`
	Types       []TypeConfig `yaml:"types" json:"types"`
}

// Validate returns an error if the configuration contains invalid fields.
func (c *Config) Validate() error {
	if c.ContentRoot == "" {
		return Errorf(EINVALID, "content root required")
	}
	seen := make(map[string]bool, len(c.Types))
	for i := range c.Types {
		tc := &c.Types[i]
		if err := tc.Validate(); err != nil {
			return err
		}
		if seen[tc.Slug] {
			return Errorf(ECONFLICT, "duplicate content type %q", tc.Slug)
		}
		seen[tc.Slug] = true
	}
	if o := c.Defaults.SortOrder; o != SortAsc && o != SortDesc {
		return Errorf(EINVALID, "default sort order must be %q or %q", SortAsc, SortDesc)
	}
	if c.Defaults.PageSize < 1 {
		return Errorf(EINVALID, "default page size must be positive")
	}
	return nil
}

// Type looks up a content type by slug.
func (c *Config) Type(slug string) (TypeConfig, bool) {
	for _, tc := range c.Types {
		if tc.Slug == slug {
			return tc, true
		}
	}
	return TypeConfig{}, false
}

// IsValidType reports whether a content type is configured.
func (c *Config) IsValidType(slug string) bool {
	_, ok := c.Type(slug)
	return ok
}

// TypeNames returns the configured content type slugs in declaration order.
func (c *Config) TypeNames() []string {
	names := make([]string, len(c.Types))
	for i, tc := range c.Types {
		names[i] = tc.Slug
	}
	return names
}

// SortFor resolves the default sort for a content type: the type's own
// default when configured, else the site default.
func (c *Config) SortFor(contentType string) SortSpec {
	if tc, ok := c.Type(contentType); ok && tc.DefaultSort != nil {
		return *tc.DefaultSort
	}
	return SortSpec{Field: c.Defaults.SortField, Order: c.Defaults.SortOrder}
}

// PageSizeFor resolves the default page size for a content type.
func (c *Config) PageSizeFor(contentType string) int {
	if tc, ok := c.Type(contentType); ok && tc.PageSize > 0 {
		return tc.PageSize
	}
	return c.Defaults.PageSize
}

// ParseConfig decodes and validates a YAML site configuration.
func ParseConfig(data []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, Errorf(EINVALID, "parse config: %s", err)
	}
	if c.Defaults.PageSize == 0 {
		c.Defaults.PageSize = 9
	}
	if c.Defaults.SortField == "" {
		c.Defaults.SortField = "date"
	}
	if c.Defaults.SortOrder == "" {
		c.Defaults.SortOrder = SortDesc
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadConfig reads and parses a YAML site configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseConfig(data)
}

// DefaultConfig returns the built-in configuration: an articles and a guides
// collection under a "content" root, newest first, nine items per page.
func DefaultConfig() *Config {
	return &Config{
		ContentRoot: "content",
		Defaults: Defaults{
			PageSize:  9,
			SortField: "date",
			SortOrder: SortDesc,
		},
		Features: SiteFeatures{Search: true, Tags: true, Pagination: true},
		Types: []TypeConfig{
			{
				Slug:           "articles",
				Name:           "Article",
				NamePlural:     "Articles",
				Directory:      "articles",
				RequiredFields: []string{"title"},
				Features:       TypeFeatures{Images: true, Tags: true, Search: true, Pagination: true},
				DefaultSort:    &SortSpec{Field: "date", Order: SortDesc},
				Card:           CardDisplay{ShowImage: true, ShowSummary: true, ShowTags: true, ShowDate: true},
				Detail:         DetailDisplay{ShowImage: true, ShowTags: true, ShowDate: true, ShowAuthor: true},
			},
			{
				Slug:           "guides",
				Name:           "Guide",
				NamePlural:     "Guides",
				Directory:      "guides",
				RequiredFields: []string{"title"},
				Features:       TypeFeatures{Images: true, Tags: true, Search: true, Pagination: true},
				DefaultSort:    &SortSpec{Field: "date", Order: SortDesc},
				Card:           CardDisplay{ShowImage: true, ShowSummary: true, ShowTags: true, ShowDate: true},
				Detail:         DetailDisplay{ShowImage: true, ShowTags: true, ShowDate: true, ShowAuthor: true},
			},
		},
	}
}
