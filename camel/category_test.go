package camel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const alphabet = "23456789TJQKA"

func mustRanks(t testing.TB, s string, mode Mode) [HandSize]Rank {
	t.Helper()
	require.Len(t, s, HandSize)
	var cards [HandSize]Rank
	for i := 0; i < HandSize; i++ {
		r, err := ParseRank(s[i], mode)
		require.NoError(t, err)
		cards[i] = r
	}
	return cards
}

// permutations returns every ordering of cards, duplicates included.
func permutations(cards [HandSize]Rank) [][HandSize]Rank {
	var out [][HandSize]Rank
	var permute func(k int)
	permute = func(k int) {
		if k == HandSize {
			out = append(out, cards)
			return
		}
		for i := k; i < HandSize; i++ {
			cards[k], cards[i] = cards[i], cards[k]
			permute(k + 1)
			cards[k], cards[i] = cards[i], cards[k]
		}
	}
	permute(0)
	return out
}

// allHands calls fn for each of the 13^5 possible symbol strings.
func allHands(fn func(s string)) {
	var b [HandSize]byte
	total := 1
	for i := 0; i < HandSize; i++ {
		total *= len(alphabet)
	}
	for n := 0; n < total; n++ {
		v := n
		for i := 0; i < HandSize; i++ {
			b[i] = alphabet[v%len(alphabet)]
			v /= len(alphabet)
		}
		fn(string(b[:]))
	}
}

func TestDetect(t *testing.T) {
	t.Parallel()
	tests := []struct {
		hand string
		want Category
	}{
		{"AAAAA", FiveOfAKind},
		{"AA8AA", FourOfAKind},
		{"33332", FourOfAKind},
		{"2AAAA", FourOfAKind},
		{"23332", FullHouse},
		{"TTT98", ThreeOfAKind},
		{"23432", TwoPair},
		{"KK677", TwoPair},
		{"KTJJT", TwoPair},
		{"A23A4", OnePair},
		{"32T3K", OnePair},
		{"23456", HighCard},
		{"T55J5", ThreeOfAKind},
		{"QQQJA", ThreeOfAKind},
		{"JJJJJ", FiveOfAKind},
	}

	for _, tt := range tests {
		t.Run(tt.hand, func(t *testing.T) {
			got, err := Detect(mustRanks(t, tt.hand, Standard))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got, "Detect(%s) = %s", tt.hand, got)
		})
	}
}

func TestDetectIgnoresCardOrder(t *testing.T) {
	t.Parallel()
	for _, hand := range []string{"AAAAA", "33332", "23332", "TTT98", "23432", "A23A4", "23456"} {
		cards := mustRanks(t, hand, Standard)
		want, err := Detect(cards)
		require.NoError(t, err)

		perms := permutations(cards)
		require.Len(t, perms, 120)
		for _, p := range perms {
			got, err := Detect(p)
			require.NoError(t, err)
			if got != want {
				t.Fatalf("Detect(%v) = %s, want %s (permutation of %s)", p, got, want, hand)
			}
		}
	}
}

func TestDetectWithJokers(t *testing.T) {
	t.Parallel()
	tests := []struct {
		hand string
		want Category
	}{
		// no jokers behaves like plain detection
		{"32T3K", OnePair},
		{"KK677", TwoPair},
		{"23456", HighCard},
		// all jokers
		{"JJJJJ", FiveOfAKind},
		// one joker
		{"AAAAJ", FiveOfAKind},
		{"AAA2J", FourOfAKind},
		{"22J33", FullHouse},
		{"T55J5", FourOfAKind},
		{"QQQJA", FourOfAKind},
		{"2234J", ThreeOfAKind},
		{"2345J", OnePair},
		// two jokers
		{"AJAJA", FiveOfAKind},
		{"QJJQ2", FourOfAKind},
		{"KTJJT", FourOfAKind},
		{"J23J4", ThreeOfAKind},
		// three jokers
		{"JJ3J3", FiveOfAKind},
		{"JJJ94", FourOfAKind},
		// four jokers
		{"JJJJ2", FiveOfAKind},
	}

	for _, tt := range tests {
		t.Run(tt.hand, func(t *testing.T) {
			got, err := DetectWithJokers(mustRanks(t, tt.hand, Jokers))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got, "DetectWithJokers(%s) = %s", tt.hand, got)
		})
	}
}

func TestDetectWithJokersWithoutWildCardsMatchesDetect(t *testing.T) {
	t.Parallel()
	allHands(func(s string) {
		for i := 0; i < HandSize; i++ {
			if s[i] == 'J' {
				return
			}
		}
		plain, err := Detect(mustRanks(t, s, Standard))
		require.NoError(t, err)
		wild, err := DetectWithJokers(mustRanks(t, s, Jokers))
		require.NoError(t, err)
		if plain != wild {
			t.Fatalf("%s: Detect = %s, DetectWithJokers = %s", s, plain, wild)
		}
	})
}

// bestSubstitution tries every plain rank for every joker independently and
// returns the strongest category found.
func bestSubstitution(t *testing.T, cards [HandSize]Rank) Category {
	t.Helper()
	var plain []Rank
	for r := Two; r <= Ace; r++ {
		if r != Jack {
			plain = append(plain, r)
		}
	}

	best := Category(0)
	var try func(i int, c [HandSize]Rank)
	try = func(i int, c [HandSize]Rank) {
		if i == HandSize {
			cat, err := Detect(c)
			if err != nil {
				t.Fatalf("Detect(%v): %v", c, err)
			}
			if cat > best {
				best = cat
			}
			return
		}
		if !c[i].IsWild() {
			try(i+1, c)
			return
		}
		for _, r := range plain {
			c[i] = r
			try(i+1, c)
		}
	}
	try(0, cards)
	return best
}

func TestDetectWithJokersIsBestSubstitution(t *testing.T) {
	if testing.Short() {
		t.Skip("exhaustive joker search skipped in short mode")
	}
	t.Parallel()

	allHands(func(s string) {
		cards := mustRanks(t, s, Jokers)
		got, err := DetectWithJokers(cards)
		require.NoError(t, err)
		if want := bestSubstitution(t, cards); got != want {
			t.Fatalf("DetectWithJokers(%s) = %s, best substitution gives %s", s, got, want)
		}
	})
}

func TestJokerTableCoversEveryReachableShape(t *testing.T) {
	t.Parallel()
	seen := make(map[jokerShape]bool)
	allHands(func(s string) {
		shape, jokers, err := shapeOf(mustRanks(t, s, Jokers), true)
		require.NoError(t, err)
		if jokers == 0 || jokers == HandSize {
			return
		}
		seen[jokerShape{shape, jokers}] = true
	})

	for shape := range seen {
		_, ok := jokerCategories[shape]
		assert.True(t, ok, "reachable shape %+v missing from joker table", shape)
	}
	for shape := range jokerCategories {
		assert.True(t, seen[shape], "joker table entry %+v is never reached", shape)
	}
	assert.Len(t, seen, 11)
}

func TestPlainTableCoversEveryReachableShape(t *testing.T) {
	t.Parallel()
	seen := make(map[countShape]bool)
	allHands(func(s string) {
		shape, _, err := shapeOf(mustRanks(t, s, Standard), false)
		require.NoError(t, err)
		seen[shape] = true
	})

	assert.Len(t, seen, len(plainCategories))
	for shape := range seen {
		_, ok := plainCategories[shape]
		assert.True(t, ok, "reachable shape %+v missing from table", shape)
	}
}

func TestDetectRejectsRanksOutsideAlphabet(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		cards [HandSize]Rank
	}{
		{"rank above ace", [HandSize]Rank{Ace, Ace, Ace, Ace, 200}},
		{"two pair with stray rank", [HandSize]Rank{Two, Two, Three, Three, 99}},
		{"all zero ranks", [HandSize]Rank{0, 0, 0, 0, 0}},
		{"single zero rank", [HandSize]Rank{King, 0, King, Queen, Queen}},
		{"joker with rank above ace", [HandSize]Rank{Joker, Ace, Ace, Ace, 200}},
		{"rank just past ace", [HandSize]Rank{Ace + 1, Two, Three, Four, Five}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, mode := range Modes() {
				cat, err := Classify(tt.cards, mode)
				assert.ErrorIs(t, err, ErrInvalidCard, "%s rules", mode)
				assert.Zero(t, cat)
			}

			_, err := Detect(tt.cards)
			assert.ErrorIs(t, err, ErrInvalidCard)
			_, err = DetectWithJokers(tt.cards)
			assert.ErrorIs(t, err, ErrInvalidCard)
		})
	}
}

func TestDetectAcceptsJokerAsPlainRank(t *testing.T) {
	t.Parallel()
	cat, err := Detect([HandSize]Rank{Joker, Joker, Two, Two, Two})
	require.NoError(t, err)
	assert.Equal(t, FullHouse, cat)

	cat, err = DetectWithJokers([HandSize]Rank{Joker, Joker, Two, Two, Two})
	require.NoError(t, err)
	assert.Equal(t, FiveOfAKind, cat)
}

func TestClassifyIsIdempotent(t *testing.T) {
	t.Parallel()
	for _, hand := range []string{"32T3K", "T55J5", "KK677", "KTJJT", "QQQJA", "JJJJJ"} {
		for _, mode := range Modes() {
			cards := mustRanks(t, hand, mode)
			first, err := Classify(cards, mode)
			require.NoError(t, err)
			second, err := Classify(cards, mode)
			require.NoError(t, err)
			assert.Equal(t, first, second, "%s under %s rules", hand, mode)
		}
	}
}

func TestCategoryOrderAndNames(t *testing.T) {
	t.Parallel()
	cats := Categories()
	require.Len(t, cats, 7)
	for i, c := range cats {
		assert.Equal(t, Category(i+1), c)
		assert.True(t, c.Valid())
		assert.NotEqual(t, "Unknown", c.String())
	}
	assert.False(t, Category(0).Valid())
	assert.False(t, Category(8).Valid())
	assert.Equal(t, "Full House", FullHouse.String())
	assert.Equal(t, "Unknown", Category(0).String())
}
