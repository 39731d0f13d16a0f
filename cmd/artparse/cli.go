package main

import (
	"context"
	"io"

	"github.com/fwojciec/artparse"
	"github.com/fwojciec/artparse/batch"
	"github.com/fwojciec/artparse/fs"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Artworks artparse.ArtworkService
	Writer   *fs.JSONWriter
	Runner   *batch.Runner
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log each parse and write"`

	Parse  ParseCmd  `cmd:"" help:"Parse saved HTML pages into JSON artwork lists"`
	List   ListCmd   `cmd:"" help:"List stored sources or the artworks of a source"`
	Show   ShowCmd   `cmd:"" help:"Print the stored artworks of a source as JSON"`
	Delete DeleteCmd `cmd:"" help:"Delete the stored artworks of a source"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	Files       []string `arg:"" name:"file" help:"Saved HTML pages to parse"`
	Output      string   `short:"o" default:"output" help:"Directory JSON results are written to"`
	BaseOrigin  string   `name:"base-origin" env:"ARTPARSE_BASE_ORIGIN" default:"https://google.com" help:"Origin prepended to artwork links"`
	Concurrency int      `short:"c" default:"4" help:"Files parsed concurrently"`
	NoStore     bool     `name:"no-store" help:"Skip saving artworks to the database"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Source string `arg:"" optional:"" help:"Source to list artworks for"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Source string `arg:"" help:"Source to print"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Source string `arg:"" help:"Source to delete"`
}
