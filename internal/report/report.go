package report

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/coder/quartz"
	"github.com/muesli/termenv"

	"github.com/lox/camelcards/camel"
)

// Summary is one scored rule mode
type Summary struct {
	Mode    camel.Mode
	Ranked  []camel.Ranked
	Total   int
	Elapsed time.Duration
}

// Score ranks hands and times the ranking with clock
func Score(clock quartz.Clock, mode camel.Mode, hands []camel.Hand) (Summary, error) {
	start := clock.Now()
	ranked := camel.RankHands(hands)
	total, err := camel.Sum(ranked)
	if err != nil {
		return Summary{}, fmt.Errorf("%s rules: %w", mode, err)
	}
	return Summary{
		Mode:    mode,
		Ranked:  ranked,
		Total:   total,
		Elapsed: clock.Now().Sub(start),
	}, nil
}

// Options configures a Printer
type Options struct {
	NoColor bool
}

// Printer writes scored results to a terminal
type Printer struct {
	w io.Writer

	header   lipgloss.Style
	hand     lipgloss.Style
	category lipgloss.Style
	total    lipgloss.Style
	muted    lipgloss.Style
}

// NewPrinter creates a printer writing to w
func NewPrinter(w io.Writer, opts Options) *Printer {
	r := lipgloss.NewRenderer(w)
	if opts.NoColor {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Printer{
		w: w,
		header: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")),
		hand: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14")),
		category: r.NewStyle().
			Foreground(lipgloss.Color("12")),
		total: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10")),
		muted: r.NewStyle().
			Foreground(lipgloss.Color("8")),
	}
}

// Totals prints "Part N: total" for each summary in order
func (p *Printer) Totals(results []camel.Result) {
	for i, res := range results {
		fmt.Fprintf(p.w, "Part %d: %s\n", partNumber(res.Mode, i), p.total.Render(strconv.Itoa(res.Total)))
	}
}

// Classification prints one hand per line with its category
func (p *Printer) Classification(mode camel.Mode, hands []camel.Hand) {
	w := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\n", p.header.Render("hand"), p.header.Render(mode.String()+" rules"))
	for _, h := range hands {
		fmt.Fprintf(w, "%s\t%s\n", p.hand.Render(h.Symbols()), p.category.Render(h.Category.String()))
	}
	w.Flush()
}

// Standings prints the ranked table for one mode followed by its total
func (p *Printer) Standings(s Summary) {
	w := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t\n",
		p.header.Render("rank"),
		p.header.Render("hand"),
		p.header.Render("category"),
		p.header.Render("bid"),
		p.header.Render("winnings"))

	for _, r := range s.Ranked {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\t\n",
			r.Rank,
			p.hand.Render(r.Hand.Symbols()),
			p.category.Render(r.Hand.Category.String()),
			r.Hand.Bid,
			r.Winnings)
	}
	w.Flush()

	fmt.Fprintf(p.w, "\n%s %s\n", p.header.Render("total"), p.total.Render(strconv.Itoa(s.Total)))
	fmt.Fprintln(p.w, p.muted.Render(fmt.Sprintf("%d hands ranked under %s rules in %v",
		len(s.Ranked), s.Mode, s.Elapsed.Truncate(time.Microsecond))))
}

// partNumber keeps the puzzle numbering: standard rules are part 1 and
// joker rules part 2, whatever order they were requested in.
func partNumber(mode camel.Mode, i int) int {
	switch mode {
	case camel.Standard:
		return 1
	case camel.Jokers:
		return 2
	default:
		return i + 1
	}
}
