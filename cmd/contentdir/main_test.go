package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	main "github.com/fwojciec/contentdir/cmd/contentdir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeContentTree lays out a small content directory with two types.
func writeContentTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	docs := map[string]string{
		"content/articles/first-post.md": "---\ntitle: First Post\ndate: \"2024-02-01\"\ntags:\n  - go\n---\n\nBody one.\n",
		"content/articles/older-post.md": "---\ntitle: Older Post\ndate: \"2024-01-01\"\n---\n\nBody two.\n",
		"content/guides/setup.mdx":       "---\ntitle: Setup\n---\n\nBody three.\n",
	}
	for name, src := range docs {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	}

	return dir
}

func runMain(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	err := main.NewMain().Run(context.Background(), args, stdout, stderr)
	return stdout.String(), stderr.String(), err
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("list sorts newest first", func(t *testing.T) {
		t.Parallel()

		dir := writeContentTree(t)
		stdout, _, err := runMain(t, "--dir", dir, "list", "--type", "articles")

		require.NoError(t, err)
		first := bytes.Index([]byte(stdout), []byte("articles/first-post"))
		older := bytes.Index([]byte(stdout), []byte("articles/older-post"))
		require.GreaterOrEqual(t, first, 0)
		require.GreaterOrEqual(t, older, 0)
		assert.Less(t, first, older)
		assert.Contains(t, stdout, "Page 1 of 1 (2 items)")
	})

	t.Run("show prints a single item", func(t *testing.T) {
		t.Parallel()

		dir := writeContentTree(t)
		stdout, _, err := runMain(t, "--dir", dir, "show", "guides", "setup")

		require.NoError(t, err)
		assert.Contains(t, stdout, "guides/setup")
		assert.Contains(t, stdout, "Title:   Setup")
	})

	t.Run("slugs covers every type", func(t *testing.T) {
		t.Parallel()

		dir := writeContentTree(t)
		stdout, _, err := runMain(t, "--dir", dir, "slugs")

		require.NoError(t, err)
		assert.Contains(t, stdout, "articles/first-post")
		assert.Contains(t, stdout, "articles/older-post")
		assert.Contains(t, stdout, "guides/setup")
	})

	t.Run("tags counts across types", func(t *testing.T) {
		t.Parallel()

		dir := writeContentTree(t)
		stdout, _, err := runMain(t, "--dir", dir, "tags")

		require.NoError(t, err)
		assert.Contains(t, stdout, "go  1")
	})

	t.Run("export writes a snapshot database", func(t *testing.T) {
		t.Parallel()

		dir := writeContentTree(t)
		dbPath := filepath.Join(t.TempDir(), "snapshot.db")
		stdout, _, err := runMain(t, "--dir", dir, "export", dbPath)

		require.NoError(t, err)
		assert.Contains(t, stdout, "Exported 3 items")
		assert.FileExists(t, dbPath)
	})

	t.Run("missing directory yields an empty listing", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := runMain(t, "--dir", t.TempDir(), "list")

		require.NoError(t, err)
		assert.Contains(t, stdout, "No content found.")
	})

	t.Run("no command prints help and errors", func(t *testing.T) {
		t.Parallel()

		_, _, err := runMain(t)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
	})

	t.Run("loads configuration from a file", func(t *testing.T) {
		t.Parallel()

		dir := writeContentTree(t)
		configPath := filepath.Join(t.TempDir(), "site.yaml")
		config := "contentRoot: content\ntypes:\n  - slug: articles\n    name: Article\n    namePlural: Articles\n    directory: articles\n    pageSize: 1\n"
		require.NoError(t, os.WriteFile(configPath, []byte(config), 0o644))

		stdout, _, err := runMain(t, "--dir", dir, "--config", configPath, "list", "--type", "articles")

		require.NoError(t, err)
		assert.Contains(t, stdout, "Page 1 of 2 (2 items)")
	})

	t.Run("bad configuration hints at syntax", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), "site.yaml")
		require.NoError(t, os.WriteFile(configPath, []byte("{invalid"), 0o644))

		_, stderr, err := runMain(t, "--config", configPath, "list")

		require.Error(t, err)
		assert.Contains(t, stderr, "Hint: Check the configuration file syntax")
	})
}
