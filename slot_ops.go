package inventory

import "fmt"

// Split carves amount units off the stack held by slot and returns them as
// a new instance. The source keeps the rest; amount must be strictly
// between zero and the source quantity, so neither side ends up empty.
// Split does not place the result anywhere; the caller picks the
// destination. The slot's change hook fires once for the decrement.
func Split[ID comparable](slot Slot[ID], amount int) (Instance[ID], error) {
	inst := slot.Get()
	if inst == nil {
		return nil, fmt.Errorf("split: %w", ErrSlotEmpty)
	}
	if !inst.Item().Stackable() {
		return nil, fmt.Errorf("split: %w", ErrNotStackable)
	}
	if amount <= 0 || amount >= inst.Quantity() {
		return nil, fmt.Errorf("split %d of %d: %w", amount, inst.Quantity(), ErrInvalidQuantity)
	}

	piece, err := inst.WithQuantity(amount)
	if err != nil {
		return nil, fmt.Errorf("split: %w", err)
	}
	if err := inst.SetQuantity(inst.Quantity() - amount); err != nil {
		return nil, fmt.Errorf("split: %w", err)
	}
	slot.Set(inst)
	return piece, nil
}

// SplitHalf splits the lower half off the slot's stack. Stacks of fewer
// than two units cannot be halved and report ErrInvalidQuantity.
func SplitHalf[ID comparable](slot Slot[ID]) (Instance[ID], error) {
	inst := slot.Get()
	if inst == nil {
		return nil, fmt.Errorf("split: %w", ErrSlotEmpty)
	}
	return Split(slot, inst.Quantity()/2)
}

// Combine merges the stack in src into dst when both hold the same item
// kind and that item is stackable. It moves as many units as dst has room
// for and returns the count moved; src keeps any remainder, or is cleared
// when fully drained. A full dst is not an error; zero units move and
// the remainder stays put, so no quantity is ever lost.
//
// An empty dst is reported as ErrSlotEmpty rather than treated as a move;
// use Swap or Slot.Set to fill an empty slot.
func Combine[ID comparable](dst, src Slot[ID]) (int, error) {
	into := dst.Get()
	if into == nil {
		return 0, fmt.Errorf("combine: destination: %w", ErrSlotEmpty)
	}
	from := src.Get()
	if from == nil {
		return 0, fmt.Errorf("combine: source: %w", ErrSlotEmpty)
	}
	if !sameItem(into, from) {
		return 0, fmt.Errorf("combine: %w", ErrItemMismatch)
	}
	if !into.Item().Stackable() {
		return 0, fmt.Errorf("combine: %w", ErrNotStackable)
	}

	moved := min(from.Quantity(), stackRoom(into))
	if moved == 0 {
		return 0, nil
	}
	if err := into.SetQuantity(into.Quantity() + moved); err != nil {
		return 0, fmt.Errorf("combine: %w", err)
	}
	if err := from.SetQuantity(from.Quantity() - moved); err != nil {
		return 0, fmt.Errorf("combine: %w", err)
	}
	dst.Set(into)
	if from.Quantity() == 0 {
		src.Clear()
	} else {
		src.Set(from)
	}
	return moved, nil
}

// Swap exchanges the contents of two slots unconditionally, regardless of
// item kind or emptiness. Both change hooks fire.
func Swap[ID comparable](a, b Slot[ID]) {
	held := a.Get()
	a.Set(b.Get())
	b.Set(held)
}
