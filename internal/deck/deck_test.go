package deck

import (
	"math/rand"
	"testing"
)

func TestDeckDealsAllCardsOnce(t *testing.T) {
	d := New(rand.New(rand.NewSource(1)))

	cards, err := d.Deal(52)
	if err != nil {
		t.Fatalf("Deal(52) unexpected error: %v", err)
	}

	seen := make(map[Card]bool, 52)
	for _, c := range cards {
		if seen[c] {
			t.Errorf("duplicate card dealt: %v", c)
		}
		seen[c] = true
	}
	if len(seen) != 52 {
		t.Errorf("dealt %d distinct cards, want 52", len(seen))
	}

	if _, err := d.Deal(1); err == nil {
		t.Error("expected error dealing from empty deck")
	}
}

func TestDeckDeterministicWithSeed(t *testing.T) {
	a := New(rand.New(rand.NewSource(42)))
	b := New(rand.New(rand.NewSource(42)))

	ca, _ := a.Deal(10)
	cb, _ := b.Deal(10)
	for i := range ca {
		if ca[i] != cb[i] {
			t.Fatalf("card %d differs: %v vs %v", i, ca[i], cb[i])
		}
	}

	if a.Remaining() != 42 {
		t.Errorf("Remaining() = %d, want 42", a.Remaining())
	}
}

func TestDealReturnsIndependentCopies(t *testing.T) {
	a := New(rand.New(rand.NewSource(7)))
	b := New(rand.New(rand.NewSource(7)))

	hole, err := a.Deal(2)
	if err != nil {
		t.Fatalf("Deal(2) unexpected error: %v", err)
	}

	// Growing or rewriting a dealt hand must not disturb the deck.
	hole = append(hole, Card{Suit: Spades, Rank: Ace})
	hole[0] = Card{Suit: Hearts, Rank: Two}

	if _, err := b.Deal(2); err != nil {
		t.Fatalf("Deal(2) unexpected error: %v", err)
	}
	want, _ := b.Deal(3)
	got, err := a.Deal(3)
	if err != nil {
		t.Fatalf("Deal(3) unexpected error: %v", err)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("card %d after mutation = %v, want %v", i, got[i], want[i])
		}
	}
}
