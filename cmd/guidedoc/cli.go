package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/guidedoc"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Sanitizer guidedoc.Sanitizer
	Converter guidedoc.Converter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log per-document processing details"`

	Process ProcessCmd `cmd:"" help:"Process scraped HTML pages listed in a manifest"`
	Assess  AssessCmd  `cmd:"" help:"Assess a single scraped HTML page and print its quality metrics"`
}

// ProcessCmd is the "process" subcommand.
type ProcessCmd struct {
	Manifest    string  `arg:"" help:"Manifest YAML listing sections and their scraped HTML files"`
	Dir         string  `short:"d" default:"." help:"Parent directory for output"`
	Output      string  `short:"o" default:"docs" help:"Output directory name"`
	Config      string  `help:"Pipeline tuning overrides (YAML)"`
	Concurrency int     `short:"c" default:"10" help:"Concurrent processing limit"`
	MinScore    float64 `help:"Skip saving documents scoring below this value"`
}

// AssessCmd is the "assess" subcommand.
type AssessCmd struct {
	File     string `arg:"" help:"Scraped HTML file"`
	Title    string `required:"" help:"Section title"`
	Platform string `default:"universal" help:"Section platform"`
	Category string `default:"foundations" help:"Section category"`
	URL      string `default:"file://local" help:"Section source URL"`
	Config   string `help:"Pipeline tuning overrides (YAML)"`
}
