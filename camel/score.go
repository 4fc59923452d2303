package camel

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"slices"
	"strings"
)

// Ranked is a hand with its 1-based position in the sorted table.
type Ranked struct {
	Hand     Hand
	Rank     int
	Winnings int
}

// RankHands sorts a copy of hands from weakest to strongest and assigns
// ranks. The input slice is not modified.
func RankHands(hands []Hand) []Ranked {
	sorted := slices.Clone(hands)
	slices.SortStableFunc(sorted, Compare)

	ranked := make([]Ranked, len(sorted))
	for i, h := range sorted {
		ranked[i] = Ranked{
			Hand:     h,
			Rank:     i + 1,
			Winnings: h.Bid * (i + 1),
		}
	}
	return ranked
}

// TotalWinnings returns the sum of bid times rank over all hands.
func TotalWinnings(hands []Hand) (int, error) {
	return Sum(RankHands(hands))
}

// Sum adds up the winnings of ranked hands, failing with ErrOverflow if
// any product or the running total does not fit in an int.
func Sum(ranked []Ranked) (int, error) {
	total := 0
	for _, r := range ranked {
		bid := r.Hand.Bid
		if bid < 0 || r.Rank < 0 || (bid != 0 && r.Rank > math.MaxInt/bid) {
			return 0, fmt.Errorf("%w: bid %d at rank %d", ErrOverflow, bid, r.Rank)
		}
		w := bid * r.Rank
		if total > math.MaxInt-w {
			return 0, fmt.Errorf("%w: total after rank %d", ErrOverflow, r.Rank)
		}
		total += w
	}
	return total, nil
}

// ParseHands reads one hand per line. Blank lines are skipped. The first
// bad line aborts the parse.
func ParseHands(r io.Reader, mode Mode) ([]Hand, error) {
	var hands []Hand
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		h, err := ParseHand(line, mode)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		hands = append(hands, h)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading hands: %w", err)
	}
	return hands, nil
}

// Solve parses input under mode and returns the total winnings.
func Solve(r io.Reader, mode Mode) (int, error) {
	hands, err := ParseHands(r, mode)
	if err != nil {
		return 0, err
	}
	return TotalWinnings(hands)
}

// Result is the total winnings for one rule mode.
type Result struct {
	Mode  Mode
	Total int
}

// SolveAll scores the same input under every mode in Modes order.
func SolveAll(input string, modes ...Mode) ([]Result, error) {
	if len(modes) == 0 {
		modes = Modes()
	}

	results := make([]Result, 0, len(modes))
	for _, mode := range modes {
		total, err := Solve(strings.NewReader(input), mode)
		if err != nil {
			return nil, fmt.Errorf("%s rules: %w", mode, err)
		}
		results = append(results, Result{Mode: mode, Total: total})
	}
	return results, nil
}
