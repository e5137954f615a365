package contentdir_test

import (
	"testing"

	"github.com/fwojciec/contentdir"
	"github.com/stretchr/testify/assert"
)

func TestMeta_SortValue(t *testing.T) {
	t.Parallel()

	meta := contentdir.Meta{
		Title: "Hello",
		Date:  "2024-03-01",
		Tags:  []string{"go", "web"},
		Extra: map[string]any{"weight": 3},
	}

	t.Run("known fields", func(t *testing.T) {
		t.Parallel()

		v, ok := meta.SortValue("title")
		assert.True(t, ok)
		assert.Equal(t, "Hello", v)

		v, ok = meta.SortValue("tags")
		assert.True(t, ok)
		assert.Equal(t, "go web", v)
	})

	t.Run("unset known field reports missing", func(t *testing.T) {
		t.Parallel()

		_, ok := meta.SortValue("summary")
		assert.False(t, ok)
	})

	t.Run("extension fields", func(t *testing.T) {
		t.Parallel()

		v, ok := meta.SortValue("weight")
		assert.True(t, ok)
		assert.Equal(t, "3", v)

		_, ok = meta.SortValue("nonexistent")
		assert.False(t, ok)
	})
}

func TestMeta_HasTag(t *testing.T) {
	t.Parallel()

	meta := contentdir.Meta{Tags: []string{"go", "web"}}

	assert.True(t, meta.HasTag("go"))
	assert.False(t, meta.HasTag("rust"))
	assert.False(t, contentdir.Meta{}.HasTag("go"))
}

func TestItem_SearchValue(t *testing.T) {
	t.Parallel()

	item := newItem("guides", "setup", "Setup Guide", func(it *contentdir.Item) {
		it.Meta.Summary = "Getting started"
		it.Meta.Tags = []string{"beginner"}
	})

	assert.Equal(t, "guides/setup Setup Guide Getting started beginner", item.SearchValue())
}
