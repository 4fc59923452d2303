package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/alecthomas/kong"
	"github.com/coder/quartz"

	"github.com/lox/camelcards/camel"
	"github.com/lox/camelcards/internal/config"
	"github.com/lox/camelcards/internal/report"
)

// ScoreCmd prints one total per rule mode, like the two puzzle parts.
type ScoreCmd struct {
	File string   `arg:"" optional:"" help:"Puzzle input, one hand per line (- for stdin, defaults to config input)"`
	Mode []string `short:"m" help:"Rule modes to score: standard, joker (defaults to config modes)"`
}

func (cmd *ScoreCmd) Run(g *Globals, clock quartz.Clock, stdin io.Reader, ctx *kong.Context) error {
	s, err := g.session(ctx)
	if err != nil {
		return err
	}

	modes, err := s.modes(cmd.Mode)
	if err != nil {
		return err
	}
	input, err := s.readInput(stdin, s.inputPath(cmd.File))
	if err != nil {
		return err
	}

	if s.cfg.Output.Style == config.StyleTable {
		for i, mode := range modes {
			hands, err := s.parseHands(input, mode)
			if err != nil {
				return err
			}
			summary, err := report.Score(clock, mode, hands)
			if err != nil {
				return err
			}
			s.logger.Debug("Scored", "mode", mode, "total", summary.Total)
			if i > 0 {
				fmt.Fprintln(s.stdout)
			}
			s.printer.Standings(summary)
		}
		return nil
	}

	results, err := camel.SolveAll(input, modes...)
	if err != nil {
		return err
	}
	for _, res := range results {
		s.logger.Debug("Scored", "mode", res.Mode, "total", res.Total)
	}
	s.printer.Totals(results)
	return nil
}

// ClassifyCmd prints the category of hands given on the command line.
type ClassifyCmd struct {
	Hands []string `arg:"" help:"Hands of five cards, e.g. 32T3K"`
	Mode  string   `short:"m" default:"standard" enum:"standard,joker" help:"Rule mode (standard or joker)"`
}

func (cmd *ClassifyCmd) Run(g *Globals, ctx *kong.Context) error {
	s, err := g.session(ctx)
	if err != nil {
		return err
	}

	mode, err := camel.ParseMode(cmd.Mode)
	if err != nil {
		return err
	}

	hands := make([]camel.Hand, 0, len(cmd.Hands))
	for _, cards := range cmd.Hands {
		h, err := camel.NewHand(cards, 0, mode)
		if err != nil {
			return err
		}
		hands = append(hands, h)
	}
	s.printer.Classification(mode, hands)
	return nil
}

// RankCmd prints every hand with its rank and winnings.
type RankCmd struct {
	File string `arg:"" optional:"" help:"Puzzle input, one hand per line (- for stdin, defaults to config input)"`
	Mode string `short:"m" default:"standard" enum:"standard,joker" help:"Rule mode (standard or joker)"`
}

func (cmd *RankCmd) Run(g *Globals, clock quartz.Clock, stdin io.Reader, ctx *kong.Context) error {
	s, err := g.session(ctx)
	if err != nil {
		return err
	}

	mode, err := camel.ParseMode(cmd.Mode)
	if err != nil {
		return err
	}
	input, err := s.readInput(stdin, s.inputPath(cmd.File))
	if err != nil {
		return err
	}
	hands, err := s.parseHands(input, mode)
	if err != nil {
		return err
	}
	if len(hands) == 0 {
		return errors.New("no hands found in input")
	}

	summary, err := report.Score(clock, mode, hands)
	if err != nil {
		return err
	}
	s.logger.Debug("Ranked", "mode", mode, "hands", len(summary.Ranked), "elapsed", summary.Elapsed)
	s.printer.Standings(summary)
	return nil
}
