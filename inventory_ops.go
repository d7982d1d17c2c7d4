package inventory

import "fmt"

// Add places inst into the slot sequence and returns the unplaced
// remainder, or nil when everything fit. Slots are scanned first to last.
//
// A stacking pass tops up existing stacks of the same item kind before a
// placement pass fills empty slots, chunked by the item's maximum stack
// quantity. Quantity is conserved: input = placed + remainder. A full or
// mismatched inventory is not an error; the whole input simply comes back
// as the remainder and what the caller does with it (drop it, reject the
// action, open another container) is the caller's decision.
//
// Non-stackable items skip the stacking pass and occupy exactly one empty
// slot per call. A zero-quantity input is a no-op.
func Add[ID comparable](slots []Slot[ID], inst Instance[ID]) Instance[ID] {
	if inst == nil || inst.Quantity() == 0 {
		return nil
	}

	if !inst.Item().Stackable() {
		for _, slot := range slots {
			if slot.IsEmpty() {
				slot.Set(inst)
				return nil
			}
		}
		return inst
	}

	remaining := inst.Quantity()

	// Stacking pass: spread across every partial stack of the same kind
	// before touching empty slots.
	for _, slot := range slots {
		if remaining == 0 {
			break
		}
		held := slot.Get()
		if held == nil || !sameItem(held, inst) {
			continue
		}
		moved := min(remaining, stackRoom(held))
		if moved == 0 {
			continue
		}
		if err := held.SetQuantity(held.Quantity() + moved); err != nil {
			continue
		}
		slot.Set(held)
		remaining -= moved
	}

	// Placement pass: fill empty slots from the start, one cap-sized
	// chunk per slot.
	maxQuantity := inst.Item().MaxQuantity()
	for _, slot := range slots {
		if remaining == 0 || maxQuantity <= 0 {
			break
		}
		if !slot.IsEmpty() {
			continue
		}
		placed := min(remaining, maxQuantity)
		if placed == inst.Quantity() {
			// Nothing stacked and the whole input fits: keep the
			// caller's instance instead of minting a copy.
			slot.Set(inst)
			remaining = 0
			break
		}
		piece, err := inst.WithQuantity(placed)
		if err != nil {
			continue
		}
		slot.Set(piece)
		remaining -= placed
	}

	return mint(inst, remaining)
}

// Contains reports whether any slot holds an instance of the item kind.
func Contains[ID comparable](slots []Slot[ID], id ID) bool {
	for _, slot := range slots {
		if held := slot.Get(); held != nil && held.Item().ID() == id {
			return true
		}
	}
	return false
}

// Total sums the held quantity of the item kind across every slot.
func Total[ID comparable](slots []Slot[ID], id ID) int {
	total := 0
	for _, slot := range slots {
		if held := slot.Get(); held != nil && held.Item().ID() == id {
			total += held.Quantity()
		}
	}
	return total
}

// Remove takes up to n units of the item kind out of the sequence,
// scanning from the last slot backwards so trailing partial stacks drain
// first. It returns the removed units as one instance (nil when the item
// is absent) and the shortfall when fewer than n units were available.
func Remove[ID comparable](slots []Slot[ID], id ID, n int) (Instance[ID], int, error) {
	if n <= 0 {
		return nil, 0, fmt.Errorf("remove %d: %w", n, ErrInvalidQuantity)
	}

	removed := 0
	var template Instance[ID]
	for i := len(slots) - 1; i >= 0 && removed < n; i-- {
		held := slots[i].Get()
		if held == nil || held.Item().ID() != id {
			continue
		}
		template = held
		take := min(n-removed, held.Quantity())
		if take == held.Quantity() {
			slots[i].Clear()
		} else {
			if err := held.SetQuantity(held.Quantity() - take); err != nil {
				continue
			}
			slots[i].Set(held)
		}
		removed += take
	}

	if removed == 0 {
		return nil, n, nil
	}
	return mint(template, removed), n - removed, nil
}

// Drain empties every slot and returns the instances that were held, in
// slot order.
func Drain[ID comparable](slots []Slot[ID]) []Instance[ID] {
	var drained []Instance[ID]
	for _, slot := range slots {
		if held := slot.Get(); held != nil {
			drained = append(drained, held)
			slot.Clear()
		}
	}
	return drained
}

// MutateSlots applies mutate to the sequence, rolling every slot back to
// its prior contents and quantity when the mutation fails. When it
// succeeds and the sequence observably changed, emit runs with the
// updated slots. Rollback re-fires slot change hooks, mirroring what the
// host UI needs to repaint anyway.
func MutateSlots[ID comparable](slots []Slot[ID], mutate func([]Slot[ID]) error, emit func([]Slot[ID])) error {
	if mutate == nil {
		return nil
	}

	type snapshot struct {
		inst     Instance[ID]
		quantity int
	}
	before := make([]snapshot, len(slots))
	for i, slot := range slots {
		held := slot.Get()
		snap := snapshot{inst: held}
		if held != nil {
			snap.quantity = held.Quantity()
		}
		before[i] = snap
	}

	if err := mutate(slots); err != nil {
		for i, slot := range slots {
			snap := before[i]
			if snap.inst != nil {
				_ = snap.inst.SetQuantity(snap.quantity)
			}
			slot.Set(snap.inst)
		}
		return err
	}

	if emit == nil {
		return nil
	}
	for i, slot := range slots {
		held := slot.Get()
		if held != before[i].inst || (held != nil && held.Quantity() != before[i].quantity) {
			emit(slots)
			return nil
		}
	}
	return nil
}

// mint produces an instance of template's item kind holding n units. When
// n exceeds what the host's WithQuantity accepts (an over-cap input that
// found no room), an internal carrier preserves the exact count so no
// quantity is silently destroyed.
func mint[ID comparable](template Instance[ID], n int) Instance[ID] {
	if n == 0 {
		return nil
	}
	if inst, err := template.WithQuantity(n); err == nil {
		return inst
	}
	return &overflowInstance[ID]{item: template.Item(), quantity: n}
}

// overflowInstance carries quantities the host's own instance type
// refuses to represent. It only ever leaves the package as a returned
// remainder.
type overflowInstance[ID comparable] struct {
	item     Item[ID]
	quantity int
}

func (o *overflowInstance[ID]) Item() Item[ID] { return o.item }

func (o *overflowInstance[ID]) Quantity() int { return o.quantity }

func (o *overflowInstance[ID]) SetQuantity(n int) error {
	if n < 0 {
		return fmt.Errorf("set quantity %d: %w", n, ErrInvalidQuantity)
	}
	o.quantity = n
	return nil
}

func (o *overflowInstance[ID]) WithQuantity(n int) (Instance[ID], error) {
	if n < 0 {
		return nil, fmt.Errorf("with quantity %d: %w", n, ErrInvalidQuantity)
	}
	return &overflowInstance[ID]{item: o.item, quantity: n}, nil
}
