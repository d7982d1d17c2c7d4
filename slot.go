package inventory

// BasicSlot is the default Slot implementation. It stores one optional
// Instance and an optional change hook fired synchronously after every
// mutation commits, intended to drive UI refresh. The hook receives the
// new contents, nil for empty.
type BasicSlot[ID comparable] struct {
	instance Instance[ID]
	onChange func(Instance[ID])
}

// NewSlot constructs a slot holding inst, which may be nil for an empty
// slot. Instances with zero quantity are treated as absent.
func NewSlot[ID comparable](inst Instance[ID]) *BasicSlot[ID] {
	s := &BasicSlot[ID]{}
	s.instance = normalize(inst)
	return s
}

// NewSlotFunc constructs a slot with a change hook bound from the start.
// The hook does not fire for the initial contents.
func NewSlotFunc[ID comparable](inst Instance[ID], onChange func(Instance[ID])) *BasicSlot[ID] {
	s := NewSlot(inst)
	s.onChange = onChange
	return s
}

// OnChange binds or replaces the change hook. A nil hook disables
// notifications.
func (s *BasicSlot[ID]) OnChange(fn func(Instance[ID])) {
	s.onChange = fn
}

// Get returns the held instance, or nil when empty.
func (s *BasicSlot[ID]) Get() Instance[ID] {
	return s.instance
}

// Set replaces the contents and notifies the change hook.
func (s *BasicSlot[ID]) Set(inst Instance[ID]) {
	s.instance = normalize(inst)
	s.notify()
}

// Clear empties the slot and notifies the change hook.
func (s *BasicSlot[ID]) Clear() {
	s.instance = nil
	s.notify()
}

// IsEmpty reports whether the slot holds no instance.
func (s *BasicSlot[ID]) IsEmpty() bool {
	return s.instance == nil
}

func (s *BasicSlot[ID]) notify() {
	if s.onChange != nil {
		s.onChange(s.instance)
	}
}

// normalize maps zero-quantity instances to nil so emptiness has a single
// representation.
func normalize[ID comparable](inst Instance[ID]) Instance[ID] {
	if inst == nil || inst.Quantity() == 0 {
		return nil
	}
	return inst
}
