package contentdir_test

import (
	"testing"

	"github.com/fwojciec/contentdir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	t.Parallel()

	t.Run("decodes types in declaration order", func(t *testing.T) {
		t.Parallel()

		config, err := contentdir.ParseConfig([]byte(`
contentRoot: content
defaults:
  pageSize: 6
  sortField: title
  sortOrder: asc
types:
  - slug: guides
    name: Guide
    namePlural: Guides
    directory: guides
  - slug: articles
    name: Article
    namePlural: Articles
    directory: articles
    pageSize: 12
    defaultSort:
      field: date
      order: desc
`))

		require.NoError(t, err)
		assert.Equal(t, []string{"guides", "articles"}, config.TypeNames())
		assert.Equal(t, 6, config.Defaults.PageSize)

		articles, ok := config.Type("articles")
		require.True(t, ok)
		assert.Equal(t, 12, articles.PageSize)
		require.NotNil(t, articles.DefaultSort)
		assert.Equal(t, "date", articles.DefaultSort.Field)
	})

	t.Run("fills missing defaults", func(t *testing.T) {
		t.Parallel()

		config, err := contentdir.ParseConfig([]byte(`
contentRoot: content
types:
  - slug: articles
    directory: articles
`))

		require.NoError(t, err)
		assert.Equal(t, 9, config.Defaults.PageSize)
		assert.Equal(t, "date", config.Defaults.SortField)
		assert.Equal(t, contentdir.SortDesc, config.Defaults.SortOrder)
	})

	t.Run("rejects invalid YAML", func(t *testing.T) {
		t.Parallel()

		_, err := contentdir.ParseConfig([]byte("types: ["))

		require.Error(t, err)
		assert.Equal(t, contentdir.EINVALID, contentdir.ErrorCode(err))
	})

	t.Run("rejects a type without a directory", func(t *testing.T) {
		t.Parallel()

		_, err := contentdir.ParseConfig([]byte(`
contentRoot: content
types:
  - slug: articles
`))

		require.Error(t, err)
		assert.Equal(t, contentdir.EINVALID, contentdir.ErrorCode(err))
	})

	t.Run("rejects duplicate types", func(t *testing.T) {
		t.Parallel()

		_, err := contentdir.ParseConfig([]byte(`
contentRoot: content
types:
  - slug: articles
    directory: articles
  - slug: articles
    directory: posts
`))

		require.Error(t, err)
		assert.Equal(t, contentdir.ECONFLICT, contentdir.ErrorCode(err))
	})
}

func TestConfig_Lookups(t *testing.T) {
	t.Parallel()

	config := contentdir.DefaultConfig()

	t.Run("validates the built-in configuration", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, config.Validate())
	})

	t.Run("IsValidType", func(t *testing.T) {
		t.Parallel()
		assert.True(t, config.IsValidType("articles"))
		assert.True(t, config.IsValidType("guides"))
		assert.False(t, config.IsValidType("podcasts"))
	})

	t.Run("SortFor falls back to site defaults for unknown types", func(t *testing.T) {
		t.Parallel()

		spec := config.SortFor("podcasts")
		assert.Equal(t, "date", spec.Field)
		assert.Equal(t, contentdir.SortDesc, spec.Order)
	})

	t.Run("PageSizeFor falls back to site defaults", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 9, config.PageSizeFor("articles"))
		assert.Equal(t, 9, config.PageSizeFor(""))
	})
}
