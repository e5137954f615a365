// Package contentdir provides the content query core for a file-backed
// directory site. It loads front-matter markdown documents into per-type
// collections, answers filtered/sorted/paginated queries, derives tag
// indexes, and produces a body-stripped snapshot for client-side search.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., fs/, sqlite/, http/).
package contentdir
