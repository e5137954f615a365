package main

import (
	"log/slog"

	contenthttp "github.com/fwojciec/contentdir/http"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	server := contenthttp.NewServer(c.Addr, deps.Content, slog.New(slog.NewTextHandler(deps.Stderr, nil)))
	server.RPS = float64(c.RPS)

	return server.ListenAndServe(deps.Ctx)
}
