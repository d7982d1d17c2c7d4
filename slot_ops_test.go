package inventory

import (
	"errors"
	"testing"
)

func TestSplitProducesNewInstanceAndDecrementsSource(t *testing.T) {
	slot := NewSlot[string](oreInstance(10))

	piece, err := Split[string](slot, 4)
	if err != nil {
		t.Fatalf("unexpected split error: %v", err)
	}
	if piece.Quantity() != 4 {
		t.Fatalf("expected split piece quantity 4, got %d", piece.Quantity())
	}
	if got := slot.Get().Quantity(); got != 6 {
		t.Fatalf("expected source quantity 6 after split, got %d", got)
	}
	if piece == slot.Get() {
		t.Fatalf("expected split to mint a distinct instance")
	}
}

func TestSplitRejectsBadAmounts(t *testing.T) {
	cases := []struct {
		name   string
		amount int
	}{
		{"zero", 0},
		{"negative", -2},
		{"equal to source", 10},
		{"above source", 15},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			slot := NewSlot[string](oreInstance(10))
			if _, err := Split[string](slot, tc.amount); !errors.Is(err, ErrInvalidQuantity) {
				t.Fatalf("expected ErrInvalidQuantity for amount %d, got %v", tc.amount, err)
			}
			if got := slot.Get().Quantity(); got != 10 {
				t.Fatalf("expected failed split to leave source at 10, got %d", got)
			}
		})
	}
}

func TestSplitRequiresOccupiedStackableSlot(t *testing.T) {
	if _, err := Split[string](NewSlot[string](nil), 1); !errors.Is(err, ErrSlotEmpty) {
		t.Fatalf("expected ErrSlotEmpty splitting an empty slot, got %v", err)
	}
	if _, err := Split[string](NewSlot[string](pickInstance()), 1); !errors.Is(err, ErrNotStackable) {
		t.Fatalf("expected ErrNotStackable splitting a non-stackable item, got %v", err)
	}
}

func TestSplitFiresSourceHook(t *testing.T) {
	calls := 0
	slot := NewSlotFunc[string](oreInstance(10), func(Instance[string]) { calls++ })
	if _, err := Split[string](slot, 3); err != nil {
		t.Fatalf("unexpected split error: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected exactly one hook call for the decrement, got %d", calls)
	}
}

func TestSplitHalf(t *testing.T) {
	slot := NewSlot[string](oreInstance(9))
	piece, err := SplitHalf[string](slot)
	if err != nil {
		t.Fatalf("unexpected error halving stack: %v", err)
	}
	if piece.Quantity() != 4 || slot.Get().Quantity() != 5 {
		t.Fatalf("expected 9 to halve into 4 and 5, got %d and %d", piece.Quantity(), slot.Get().Quantity())
	}

	single := NewSlot[string](oreInstance(1))
	if _, err := SplitHalf[string](single); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity halving a single unit, got %v", err)
	}
}

func TestCombineMovesWhatFits(t *testing.T) {
	dst := NewSlot[string](oreInstance(90))
	src := NewSlot[string](oreInstance(30))

	moved, err := Combine[string](dst, src)
	if err != nil {
		t.Fatalf("unexpected combine error: %v", err)
	}
	if moved != 10 {
		t.Fatalf("expected 10 units moved into the 90/100 stack, got %d", moved)
	}
	if got := dst.Get().Quantity(); got != 100 {
		t.Fatalf("expected destination at cap 100, got %d", got)
	}
	if got := src.Get().Quantity(); got != 20 {
		t.Fatalf("expected source to retain remainder 20, got %d", got)
	}
}

func TestCombineDrainsSourceToEmpty(t *testing.T) {
	dst := NewSlot[string](oreInstance(10))
	src := NewSlot[string](oreInstance(5))

	moved, err := Combine[string](dst, src)
	if err != nil {
		t.Fatalf("unexpected combine error: %v", err)
	}
	if moved != 5 {
		t.Fatalf("expected all 5 units moved, got %d", moved)
	}
	if !src.IsEmpty() {
		t.Fatalf("expected fully drained source to be cleared")
	}
	if got := dst.Get().Quantity(); got != 15 {
		t.Fatalf("expected destination quantity 15, got %d", got)
	}
}

func TestCombineFullDestinationIsNoOpNotError(t *testing.T) {
	dst := NewSlot[string](oreInstance(100))
	src := NewSlot[string](oreInstance(40))

	moved, err := Combine[string](dst, src)
	if err != nil {
		t.Fatalf("expected full destination to be a no-op, got %v", err)
	}
	if moved != 0 {
		t.Fatalf("expected zero units moved into a full stack, got %d", moved)
	}
	if got := src.Get().Quantity(); got != 40 {
		t.Fatalf("expected source untouched at 40, got %d", got)
	}
}

func TestCombineFailureModes(t *testing.T) {
	if _, err := Combine[string](NewSlot[string](nil), NewSlot[string](oreInstance(5))); !errors.Is(err, ErrSlotEmpty) {
		t.Fatalf("expected ErrSlotEmpty for empty destination, got %v", err)
	}
	if _, err := Combine[string](NewSlot[string](oreInstance(5)), NewSlot[string](nil)); !errors.Is(err, ErrSlotEmpty) {
		t.Fatalf("expected ErrSlotEmpty for empty source, got %v", err)
	}
	if _, err := Combine[string](NewSlot[string](oreInstance(5)), NewSlot[string](gemInstance(5))); !errors.Is(err, ErrItemMismatch) {
		t.Fatalf("expected ErrItemMismatch across item kinds, got %v", err)
	}
	dst := NewSlot[string](pickInstance())
	src := NewSlot[string](pickInstance())
	if _, err := Combine[string](dst, src); !errors.Is(err, ErrNotStackable) {
		t.Fatalf("expected ErrNotStackable merging picks, got %v", err)
	}
}

func TestSplitThenCombineRestoresOriginal(t *testing.T) {
	source := NewSlot[string](oreInstance(37))
	piece, err := Split[string](source, 12)
	if err != nil {
		t.Fatalf("unexpected split error: %v", err)
	}

	scratch := NewSlot[string](piece)
	if _, err := Combine[string](source, scratch); err != nil {
		t.Fatalf("unexpected combine error: %v", err)
	}
	if got := source.Get().Quantity(); got != 37 {
		t.Fatalf("expected combine to restore original quantity 37, got %d", got)
	}
	if !scratch.IsEmpty() {
		t.Fatalf("expected temporary slot to be emptied")
	}
}

func TestSwapExchangesAnyContents(t *testing.T) {
	a := NewSlot[string](oreInstance(8))
	b := NewSlot[string](pickInstance())

	Swap[string](a, b)
	if a.Get().Item().ID() != "iron_pick" || b.Get().Item().ID() != "copper_ore" {
		t.Fatalf("expected swap to exchange contents")
	}

	empty := NewSlot[string](nil)
	Swap[string](a, empty)
	if !a.IsEmpty() {
		t.Fatalf("expected swap with empty slot to empty the other side")
	}
	if empty.Get().Item().ID() != "iron_pick" {
		t.Fatalf("expected pick to move into the empty slot")
	}
}

func TestSwapTwiceIsIdentity(t *testing.T) {
	a := NewSlot[string](oreInstance(8))
	b := NewSlot[string](gemInstance(3))
	first, second := a.Get(), b.Get()

	Swap[string](a, b)
	Swap[string](a, b)
	if a.Get() != first || b.Get() != second {
		t.Fatalf("expected double swap to restore both slots")
	}
}
