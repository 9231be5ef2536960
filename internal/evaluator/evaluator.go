// Package evaluator classifies poker hands of five to seven cards into
// ranked categories and selects the best five cards for tie-breaking.
package evaluator

import (
	"errors"
	"fmt"
	"sort"

	"github.com/lox/bettingbot/internal/deck"
)

// ErrInvalidHandSize is returned when fewer than five cards are evaluated
var ErrInvalidHandSize = errors.New("hand must contain at least 5 cards")

// Category represents a hand category, ordered weakest to strongest
type Category int

const (
	HighCard Category = iota + 1
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns the display name of the category
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// Result is an evaluated hand: its category and the five cards that make
// it, ordered by tie-break significance (defining cards first, then
// kickers in descending rank).
type Result struct {
	Category Category
	Cards    []deck.Card
}

// String returns a human-readable form like "Full House (A♠ A♥ A♦ K♣ K♠)"
func (r Result) String() string {
	s := r.Category.String() + " ("
	for i, c := range r.Cards {
		if i > 0 {
			s += " "
		}
		s += c.String()
	}
	return s + ")"
}

// Evaluate determines the best five-card hand within the given cards.
// It accepts five to seven cards (hole cards plus board).
//
// Aces are always high: A-2-3-4-5 is not recognised as a straight.
func Evaluate(cards []deck.Card) (Result, error) {
	if len(cards) < 5 {
		return Result{}, fmt.Errorf("%w: got %d", ErrInvalidHandSize, len(cards))
	}

	flush := flushCards(cards)
	if flush != nil {
		if sf := straightCards(flush); sf != nil {
			if sf[0].Rank == deck.Ace {
				return Result{Category: RoyalFlush, Cards: sf}, nil
			}
			return Result{Category: StraightFlush, Cards: sf}, nil
		}
	}

	if quads := nOfAKind(cards, 4); quads != nil {
		return Result{Category: FourOfAKind, Cards: quads}, nil
	}

	if fh := fullHouse(cards); fh != nil {
		return Result{Category: FullHouse, Cards: fh}, nil
	}

	if flush != nil {
		return Result{Category: Flush, Cards: flush}, nil
	}

	if st := straightCards(cards); st != nil {
		return Result{Category: Straight, Cards: st}, nil
	}

	if trips := nOfAKind(cards, 3); trips != nil {
		return Result{Category: ThreeOfAKind, Cards: trips}, nil
	}

	if tp := twoPair(cards); tp != nil {
		return Result{Category: TwoPair, Cards: tp}, nil
	}

	if pair := nOfAKind(cards, 2); pair != nil {
		return Result{Category: Pair, Cards: pair}, nil
	}

	return Result{Category: HighCard, Cards: sortedByRankDesc(cards)[:5]}, nil
}

// Compare orders two evaluated hands. It returns a positive number if a
// beats b, negative if b beats a, and zero on an exact rank tie. Equal
// categories are broken by comparing the five ordered cards rank by rank.
func Compare(a, b Result) int {
	if a.Category != b.Category {
		return int(a.Category) - int(b.Category)
	}
	for i := 0; i < len(a.Cards) && i < len(b.Cards); i++ {
		if a.Cards[i].Rank != b.Cards[i].Rank {
			return int(a.Cards[i].Rank) - int(b.Cards[i].Rank)
		}
	}
	return 0
}

// flushCards returns the strongest five cards of a suit holding five or
// more cards, sorted by descending rank, or nil if no such suit exists.
// The straight-flush search only considers these five, so a straight
// buried below the top of a six-card suit does not qualify. Suits are
// scanned in a fixed order so ties are deterministic.
func flushCards(cards []deck.Card) []deck.Card {
	for suit := deck.Spades; suit <= deck.Clubs; suit++ {
		var suited []deck.Card
		for _, c := range cards {
			if c.Suit == suit {
				suited = append(suited, c)
			}
		}
		if len(suited) >= 5 {
			return sortedByRankDesc(suited)[:5]
		}
	}
	return nil
}

// straightCards finds five consecutive distinct ranks and returns one card
// per rank, highest first, or nil. For duplicated ranks the first card in
// input order is used.
func straightCards(cards []deck.Card) []deck.Card {
	byRank := make(map[deck.Rank]deck.Card)
	var ranks []deck.Rank
	for _, c := range cards {
		if _, ok := byRank[c.Rank]; !ok {
			byRank[c.Rank] = c
			ranks = append(ranks, c.Rank)
		}
	}
	if len(ranks) < 5 {
		return nil
	}

	sort.Slice(ranks, func(i, j int) bool { return ranks[i] > ranks[j] })

	for i := 0; i+4 < len(ranks); i++ {
		if ranks[i]-ranks[i+4] == 4 {
			run := make([]deck.Card, 0, 5)
			for _, r := range ranks[i : i+5] {
				run = append(run, byRank[r])
			}
			return run
		}
	}
	return nil
}

// nOfAKind returns a five-card hand built around the highest rank that
// appears at least n times, with the remaining slots filled by the
// highest-ranked kickers, or nil if no rank appears n times.
func nOfAKind(cards []deck.Card, n int) []deck.Card {
	counts := make(map[deck.Rank]int)
	for _, c := range cards {
		counts[c.Rank]++
	}

	best := deck.Rank(0)
	for rank, count := range counts {
		if count >= n && rank > best {
			best = rank
		}
	}
	if best == 0 {
		return nil
	}

	hand := make([]deck.Card, 0, 5)
	for _, c := range cards {
		if c.Rank == best && len(hand) < n {
			hand = append(hand, c)
		}
	}
	for _, c := range sortedByRankDesc(cards) {
		if len(hand) == 5 {
			break
		}
		if c.Rank != best {
			hand = append(hand, c)
		}
	}
	return hand
}

// fullHouse returns trips plus the best pair of a different rank, or nil.
func fullHouse(cards []deck.Card) []deck.Card {
	trips := nOfAKind(cards, 3)
	if trips == nil {
		return nil
	}
	tripRank := trips[0].Rank

	var rest []deck.Card
	for _, c := range cards {
		if c.Rank != tripRank {
			rest = append(rest, c)
		}
	}
	pair := nOfAKind(rest, 2)
	if pair == nil {
		return nil
	}

	return append(trips[:3:3], pair[0], pair[1])
}

// twoPair returns the two highest pairs plus the best kicker of a third
// rank, or nil if fewer than two pairs are present.
func twoPair(cards []deck.Card) []deck.Card {
	counts := make(map[deck.Rank]int)
	for _, c := range cards {
		counts[c.Rank]++
	}

	var pairRanks []deck.Rank
	for rank, count := range counts {
		if count >= 2 {
			pairRanks = append(pairRanks, rank)
		}
	}
	if len(pairRanks) < 2 {
		return nil
	}
	sort.Slice(pairRanks, func(i, j int) bool { return pairRanks[i] > pairRanks[j] })

	high, low := pairRanks[0], pairRanks[1]
	hand := make([]deck.Card, 0, 5)
	for _, r := range []deck.Rank{high, low} {
		added := 0
		for _, c := range cards {
			if c.Rank == r && added < 2 {
				hand = append(hand, c)
				added++
			}
		}
	}
	for _, c := range sortedByRankDesc(cards) {
		if c.Rank != high && c.Rank != low {
			hand = append(hand, c)
			break
		}
	}
	return hand
}

// sortedByRankDesc returns a copy of cards sorted by descending rank.
// The sort is stable so equal ranks keep their input order.
func sortedByRankDesc(cards []deck.Card) []deck.Card {
	sorted := make([]deck.Card, len(cards))
	copy(sorted, cards)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Rank > sorted[j].Rank })
	return sorted
}
