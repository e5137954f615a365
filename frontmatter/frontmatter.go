// Package frontmatter parses content documents consisting of a YAML
// front-matter block followed by a markdown body.
package frontmatter

import (
	"bytes"
	"strings"

	"github.com/fwojciec/contentdir"
	"gopkg.in/yaml.v3"
)

var (
	openFence  = []byte("---\n")
	closeFence = []byte("\n---")
)

// Parse splits src into front-matter metadata and body text.
//
// A document without an opening fence has empty metadata and its entire
// content as the body. Unknown front-matter fields are preserved in
// Meta.Extra. Returns EINVALID if the front-matter block is unterminated or
// is not valid YAML.
func Parse(src []byte) (contentdir.Meta, string, error) {
	var meta contentdir.Meta

	src = bytes.ReplaceAll(src, []byte("\r\n"), []byte("\n"))
	if !bytes.HasPrefix(src, openFence) {
		return meta, string(src), nil
	}

	block, body, ok := split(src[len(openFence):])
	if !ok {
		return meta, "", contentdir.Errorf(contentdir.EINVALID, "unterminated front matter")
	}

	if err := yaml.Unmarshal(block, &meta); err != nil {
		return contentdir.Meta{}, "", contentdir.Errorf(contentdir.EINVALID, "invalid front matter: %s", err)
	}
	meta.Extra = extraFields(block)

	return meta, string(body), nil
}

// split separates the front-matter block from the body at the closing
// fence: a line holding exactly "---". Reports false if no closing fence
// exists.
func split(rest []byte) (block, body []byte, ok bool) {
	// Empty front-matter block: the closing fence is the first line.
	if bytes.HasPrefix(rest, []byte("---\n")) {
		return nil, trimBodyStart(rest[len("---\n"):]), true
	}
	if bytes.Equal(rest, []byte("---")) {
		return nil, nil, true
	}

	for i := 0; ; {
		j := bytes.Index(rest[i:], closeFence)
		if j < 0 {
			return nil, nil, false
		}
		end := i + j + len(closeFence)
		if end == len(rest) {
			return rest[:i+j], nil, true
		}
		if rest[end] == '\n' {
			return rest[:i+j], trimBodyStart(rest[end+1:]), true
		}
		i += j + 1
	}
}

// trimBodyStart drops the blank line conventionally separating the closing
// fence from the body.
func trimBodyStart(body []byte) []byte {
	return bytes.TrimPrefix(body, []byte("\n"))
}

// extraFields decodes the raw front-matter mapping and strips the keys that
// decoded into typed Meta fields, leaving only pass-through extensions.
func extraFields(block []byte) map[string]any {
	var raw map[string]any
	if err := yaml.Unmarshal(block, &raw); err != nil {
		return nil
	}
	for _, key := range contentdir.KnownMetaFields {
		delete(raw, key)
	}
	if len(raw) == 0 {
		return nil
	}
	return raw
}

// Slug derives a content slug from a source file name by stripping its
// extension. Example: "my-first-post.mdx" → "my-first-post".
func Slug(fileName string) string {
	if i := strings.LastIndex(fileName, "."); i > 0 {
		return fileName[:i]
	}
	return fileName
}

// IsContentFile reports whether a file name looks like a content document.
func IsContentFile(fileName string) bool {
	return strings.HasSuffix(fileName, ".md") || strings.HasSuffix(fileName, ".mdx")
}
