package camel

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedLine is returned when a line is not "<5 cards> <bid>".
	ErrMalformedLine = errors.New("malformed hand line")
	// ErrInvalidCard is returned for a symbol outside 23456789TJQKA.
	ErrInvalidCard = errors.New("invalid card symbol")
	// ErrUnreachable signals a count combination five cards cannot produce.
	ErrUnreachable = errors.New("unreachable card count combination")
	// ErrOverflow is returned when total winnings do not fit in an int.
	ErrOverflow = errors.New("winnings overflow")
)

// Category is the strength class of a hand, ordered weakest to strongest.
type Category uint8

const (
	HighCard Category = iota + 1
	OnePair
	TwoPair
	ThreeOfAKind
	FullHouse
	FourOfAKind
	FiveOfAKind
)

// Categories returns all categories from weakest to strongest.
func Categories() []Category {
	return []Category{HighCard, OnePair, TwoPair, ThreeOfAKind, FullHouse, FourOfAKind, FiveOfAKind}
}

// Valid reports whether c is one of the seven categories.
func (c Category) Valid() bool {
	return c >= HighCard && c <= FiveOfAKind
}

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case FiveOfAKind:
		return "Five of a Kind"
	default:
		return "Unknown"
	}
}

// countShape is the part of a rank histogram that decides the category:
// the largest group size and how many groups have exactly two cards.
type countShape struct {
	largest int
	pairs   int
}

// jokerShape is countShape over the non-wild cards plus the wild count.
type jokerShape struct {
	countShape
	jokers int
}

// Five cards partition as {5},{4,1},{3,2},{3,1,1},{2,2,1},{2,1,1,1},{1,1,1,1,1}.
var plainCategories = map[countShape]Category{
	{5, 0}: FiveOfAKind,
	{4, 0}: FourOfAKind,
	{3, 1}: FullHouse,
	{3, 0}: ThreeOfAKind,
	{2, 2}: TwoPair,
	{2, 1}: OnePair,
	{1, 0}: HighCard,
}

// All jokers join the largest plain group. With 1-4 jokers the remaining
// plain cards can only take these shapes.
var jokerCategories = map[jokerShape]Category{
	{countShape{4, 0}, 1}: FiveOfAKind,
	{countShape{3, 0}, 2}: FiveOfAKind,
	{countShape{3, 0}, 1}: FourOfAKind,
	{countShape{2, 2}, 1}: FullHouse,
	{countShape{2, 1}, 1}: ThreeOfAKind,
	{countShape{2, 1}, 2}: FourOfAKind,
	{countShape{2, 1}, 3}: FiveOfAKind,
	{countShape{1, 0}, 1}: OnePair,
	{countShape{1, 0}, 2}: ThreeOfAKind,
	{countShape{1, 0}, 3}: FourOfAKind,
	{countShape{1, 0}, 4}: FiveOfAKind,
}

// shapeOf builds the histogram of ranks, skipping wild cards when skipWild
// is set, and returns its shape and the number of wild cards seen. Ranks
// other than Joker and Two through Ace are rejected.
func shapeOf(cards [HandSize]Rank, skipWild bool) (countShape, int, error) {
	var counts [Ace + 1]int
	wild := 0
	for i, r := range cards {
		if !r.Valid() {
			return countShape{}, 0, fmt.Errorf("%w: rank %d at position %d", ErrInvalidCard, r, i+1)
		}
		if skipWild && r.IsWild() {
			wild++
			continue
		}
		counts[r]++
	}

	var shape countShape
	for _, n := range counts {
		if n > shape.largest {
			shape.largest = n
		}
		if n == 2 {
			shape.pairs++
		}
	}
	return shape, wild, nil
}

// Detect classifies five cards treating every rank as a plain card. A Joker
// counts as its own rank here, which is how an all-joker hand is classified.
func Detect(cards [HandSize]Rank) (Category, error) {
	shape, _, err := shapeOf(cards, false)
	if err != nil {
		return 0, err
	}
	cat, ok := plainCategories[shape]
	if !ok {
		return 0, fmt.Errorf("%w: largest group %d with %d pairs", ErrUnreachable, shape.largest, shape.pairs)
	}
	return cat, nil
}

// DetectWithJokers classifies five cards with jokers standing in for
// whichever rank gives the strongest category. A hand with no jokers, or
// made only of jokers, is classified as plain cards.
func DetectWithJokers(cards [HandSize]Rank) (Category, error) {
	shape, jokers, err := shapeOf(cards, true)
	if err != nil {
		return 0, err
	}
	if jokers == 0 || jokers == HandSize {
		return Detect(cards)
	}

	cat, ok := jokerCategories[jokerShape{shape, jokers}]
	if !ok {
		return 0, fmt.Errorf("%w: largest plain group %d with %d pairs and %d jokers",
			ErrUnreachable, shape.largest, shape.pairs, jokers)
	}
	return cat, nil
}

// Classify returns the category of cards under the given rule mode.
func Classify(cards [HandSize]Rank, mode Mode) (Category, error) {
	if mode == Jokers {
		return DetectWithJokers(cards)
	}
	return Detect(cards)
}
