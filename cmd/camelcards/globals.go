package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/camelcards/camel"
	"github.com/lox/camelcards/internal/config"
	"github.com/lox/camelcards/internal/report"
)

const defaultConfigPath = config.DefaultFile

// Globals are flags shared by every command
type Globals struct {
	Config  string `short:"c" help:"Path to HCL config file" default:"${default_config}" type:"path"`
	Debug   bool   `help:"Enable debug logging"`
	NoColor bool   `help:"Disable colored output"`
}

// session holds what a command needs after config and flags are merged
type session struct {
	cfg     *config.Config
	logger  *log.Logger
	printer *report.Printer
	stdout  io.Writer
}

func (g *Globals) session(ctx *kong.Context) (*session, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}

	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	if g.Debug {
		level = log.DebugLevel
	}

	logger := log.NewWithOptions(ctx.Stderr, log.Options{
		Level:  level,
		Prefix: "camelcards",
	})
	logger.Debug("Loaded config", "path", g.Config, "input", cfg.Input, "modes", cfg.Modes, "style", cfg.Output.Style)

	return &session{
		cfg:    cfg,
		logger: logger,
		printer: report.NewPrinter(ctx.Stdout, report.Options{
			NoColor: g.NoColor || cfg.Output.NoColor,
		}),
		stdout: ctx.Stdout,
	}, nil
}

// inputPath picks the file argument over the configured input
func (s *session) inputPath(arg string) string {
	if arg != "" {
		return arg
	}
	return s.cfg.Input
}

// readInput returns the whole puzzle input; "-" reads stdin
func (s *session) readInput(stdin io.Reader, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		s.logger.Debug("Reading hands from stdin")
		data, err = io.ReadAll(stdin)
	} else {
		s.logger.Debug("Reading hands", "path", path)
		data, err = os.ReadFile(filepath.Clean(path))
	}
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return string(data), nil
}

// modes resolves --mode flags, falling back to the configured modes
func (s *session) modes(flags []string) ([]camel.Mode, error) {
	if len(flags) == 0 {
		return s.cfg.RuleModes()
	}
	override := *s.cfg
	override.Modes = flags
	return override.RuleModes()
}

func (s *session) parseHands(input string, mode camel.Mode) ([]camel.Hand, error) {
	hands, err := camel.ParseHands(strings.NewReader(input), mode)
	if err != nil {
		return nil, fmt.Errorf("%s rules: %w", mode, err)
	}
	s.logger.Debug("Parsed hands", "mode", mode, "count", len(hands))
	return hands, nil
}
