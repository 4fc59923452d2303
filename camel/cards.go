package camel

import (
	"fmt"
	"strings"
)

// Mode selects the rule set used to rank and classify cards.
type Mode uint8

const (
	// Standard ranks J as a Jack between T and Q.
	Standard Mode = iota
	// Jokers ranks J below every other card and treats it as wild.
	Jokers
)

// Modes returns every rule mode in scoring order (part 1, then part 2).
func Modes() []Mode {
	return []Mode{Standard, Jokers}
}

// String returns the mode name used on the command line and in config.
func (m Mode) String() string {
	switch m {
	case Standard:
		return "standard"
	case Jokers:
		return "joker"
	default:
		return "unknown"
	}
}

// ParseMode parses a rule mode name.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "standard":
		return Standard, nil
	case "joker", "jokers":
		return Jokers, nil
	default:
		return 0, fmt.Errorf("unknown rule mode %q", s)
	}
}

// Rank is the comparison value of a single card. Higher is stronger.
type Rank uint8

const (
	Joker Rank = 1 // J under joker rules; wild
	Two   Rank = iota + 1
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// ParseRank maps a card symbol to its rank under the given mode.
func ParseRank(c byte, mode Mode) (Rank, error) {
	switch c {
	case 'A':
		return Ace, nil
	case 'K':
		return King, nil
	case 'Q':
		return Queen, nil
	case 'J':
		if mode == Jokers {
			return Joker, nil
		}
		return Jack, nil
	case 'T':
		return Ten, nil
	case '2', '3', '4', '5', '6', '7', '8', '9':
		return Rank(c - '0'), nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidCard, c)
	}
}

// Symbol returns the input symbol for the rank, or '?' for values outside
// the alphabet.
func (r Rank) Symbol() byte {
	switch {
	case r == Joker, r == Jack:
		return 'J'
	case r >= Two && r <= Nine:
		return byte('0' + r)
	case r == Ten:
		return 'T'
	case r == Queen:
		return 'Q'
	case r == King:
		return 'K'
	case r == Ace:
		return 'A'
	default:
		return '?'
	}
}

// String returns the card symbol.
func (r Rank) String() string {
	return string(r.Symbol())
}

// Valid reports whether r is the joker or one of Two through Ace.
func (r Rank) Valid() bool {
	return r == Joker || (r >= Two && r <= Ace)
}

// IsWild reports whether the rank is the joker.
func (r Rank) IsWild() bool {
	return r == Joker
}
