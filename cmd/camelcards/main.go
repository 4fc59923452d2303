package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/coder/quartz"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Score    ScoreCmd         `cmd:"" help:"Print total winnings for each rule mode"`
	Classify ClassifyCmd      `cmd:"" help:"Print the category of one or more hands"`
	Rank     RankCmd          `cmd:"" help:"Print the ranked table of hands for one rule mode"`
}

func newParser(cli *CLI, stdin io.Reader, stdout, stderr io.Writer, clock quartz.Clock, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("camelcards"),
		kong.Description("Rank camel card hands and total their winnings"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version":        version,
			"default_config": defaultConfigPath,
		},
		kong.Writers(stdout, stderr),
		kong.BindTo(clock, (*quartz.Clock)(nil)),
		kong.BindTo(stdin, (*io.Reader)(nil)),
	}, options...)
	return kong.New(cli, options...)
}

func main() {
	var cli CLI
	parser, err := newParser(&cli, os.Stdin, os.Stdout, os.Stderr, quartz.NewReal())
	if err != nil {
		panic(err)
	}

	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	err = ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
