package main

import (
	"context"
	"io"

	"github.com/fwojciec/contentdir"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Config  *contentdir.Config
	Content contentdir.Service
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Dir    string `short:"d" default:"." help:"Directory containing the content root"`
	Config string `short:"c" help:"Site configuration file (YAML); built-in defaults when omitted"`
	Debug  bool   `help:"Enable debug logging"`

	List   ListCmd   `cmd:"" help:"List content with filtering, sorting, and pagination"`
	Show   ShowCmd   `cmd:"" help:"Show one content item by type and slug"`
	Slugs  SlugsCmd  `cmd:"" help:"Enumerate every (type, slug) pair"`
	Tags   TagsCmd   `cmd:"" help:"Show tag counts"`
	Search SearchCmd `cmd:"" help:"Print the search snapshot"`
	Export ExportCmd `cmd:"" help:"Export the corpus to a SQLite snapshot database"`
	Serve  ServeCmd  `cmd:"" help:"Serve the content API over HTTP"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Type      string   `short:"t" help:"Restrict to one content type"`
	Page      int      `default:"1" help:"Page number (1-based)"`
	PageSize  int      `help:"Items per page (defaults from configuration)"`
	Query     string   `short:"q" help:"Free-text filter"`
	Tags      []string `help:"Tags the items must all carry (repeatable)"`
	SortBy    string   `help:"Metadata field to sort by"`
	SortOrder string   `help:"Sort order: asc or desc"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Type string `arg:"" help:"Content type"`
	Slug string `arg:"" help:"Item slug"`
	Body bool   `help:"Print the raw body instead of the metadata summary"`
}

// SlugsCmd is the "slugs" subcommand.
type SlugsCmd struct{}

// TagsCmd is the "tags" subcommand.
type TagsCmd struct {
	Type string `short:"t" help:"Restrict to one content type"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct{}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Path string `arg:"" help:"Snapshot database path"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:":8080" help:"Listen address"`
	RPS  int    `default:"50" help:"Per-client requests per second (0 disables limiting)"`
}
