package camel

import (
	"cmp"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// HandSize is the number of cards in a hand.
const HandSize = 5

// MaxBid is the largest bid a hand may carry.
const MaxBid = math.MaxInt32

// Hand is a dealt hand with its bid. The category is computed once when the
// hand is built and never changes.
type Hand struct {
	Cards    [HandSize]Rank // in dealt order
	Bid      int
	Mode     Mode
	Category Category
}

// NewHand builds a hand from a five-symbol string such as "32T3K".
func NewHand(cards string, bid int, mode Mode) (Hand, error) {
	if len(cards) != HandSize {
		return Hand{}, fmt.Errorf("%w: hand %q has %d cards, want %d", ErrMalformedLine, cards, len(cards), HandSize)
	}
	if bid < 0 {
		return Hand{}, fmt.Errorf("%w: negative bid %d", ErrMalformedLine, bid)
	}
	if bid > MaxBid {
		return Hand{}, fmt.Errorf("%w: bid %d exceeds %d", ErrMalformedLine, bid, MaxBid)
	}

	h := Hand{Bid: bid, Mode: mode}
	for i := 0; i < HandSize; i++ {
		r, err := ParseRank(cards[i], mode)
		if err != nil {
			return Hand{}, fmt.Errorf("card %d of %q: %w", i+1, cards, err)
		}
		h.Cards[i] = r
	}

	cat, err := Classify(h.Cards, mode)
	if err != nil {
		return Hand{}, err
	}
	h.Category = cat
	return h, nil
}

// MustNewHand is NewHand that panics on error (for tests)
func MustNewHand(cards string, bid int, mode Mode) Hand {
	h, err := NewHand(cards, bid, mode)
	if err != nil {
		panic(fmt.Sprintf("failed to build hand %q: %v", cards, err))
	}
	return h
}

// ParseHand parses a "<cards> <bid>" line, e.g. "32T3K 765".
func ParseHand(line string, mode Mode) (Hand, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Hand{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}

	bid, err := strconv.Atoi(fields[1])
	if err != nil {
		return Hand{}, fmt.Errorf("%w: bid %q is not an integer", ErrMalformedLine, fields[1])
	}
	return NewHand(fields[0], bid, mode)
}

// Symbols returns the cards as they were dealt, e.g. "KTJJT".
func (h Hand) Symbols() string {
	var b [HandSize]byte
	for i, r := range h.Cards {
		b[i] = r.Symbol()
	}
	return string(b[:])
}

// String returns the hand in input format.
func (h Hand) String() string {
	return h.Symbols() + " " + strconv.Itoa(h.Bid)
}

// Compare orders hands by category and then by card ranks in dealt order.
// It returns -1 if a is weaker, 0 if equal and 1 if a is stronger.
func Compare(a, b Hand) int {
	if c := cmp.Compare(a.Category, b.Category); c != 0 {
		return c
	}
	for i := range a.Cards {
		if c := cmp.Compare(a.Cards[i], b.Cards[i]); c != 0 {
			return c
		}
	}
	return 0
}

// Compare compares h with other, see Compare.
func (h Hand) Compare(other Hand) int {
	return Compare(h, other)
}

// IsStrongerThan returns true if h ranks above other
func (h Hand) IsStrongerThan(other Hand) bool {
	return Compare(h, other) > 0
}

// IsWeakerThan returns true if h ranks below other
func (h Hand) IsWeakerThan(other Hand) bool {
	return Compare(h, other) < 0
}

// Equals returns true if both hands have the same category and cards.
// Bids are ignored.
func (h Hand) Equals(other Hand) bool {
	return Compare(h, other) == 0
}
