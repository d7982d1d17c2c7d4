// Package inventory decouples the mechanics of storing, stacking,
// splitting, merging, and moving item stacks from any particular game's
// item catalog. Hosts supply an item type and an item-instance type
// through the Item and Instance interfaces; the package supplies the
// algorithms that operate over an ordered slice of slots.
//
// The one assumption made here is that items stack: every item carries a
// stackable flag and a maximum stack quantity. Inventory models that are
// not fundamentally stack-based are unsupported.
package inventory

// Item describes the immutable, shared definition of an item kind.
// Implementations must never mutate after construction; many instances
// may reference one Item concurrently without synchronization.
type Item[ID comparable] interface {
	// ID returns the identity used to decide whether two instances hold
	// the same kind of item.
	ID() ID
	// Stackable reports whether multiple units may share one slot.
	Stackable() bool
	// MaxQuantity returns the per-slot quantity cap. Values of 0 or 1
	// conventionally mean non-stackable.
	MaxQuantity() int
}

// Instance is a live occurrence of an Item with a mutable quantity.
type Instance[ID comparable] interface {
	// Item returns the shared definition this instance references.
	Item() Item[ID]
	// Quantity returns the current unit count.
	Quantity() int
	// SetQuantity replaces the unit count. It fails with
	// ErrInvalidQuantity when n is negative, exceeds the item's maximum
	// for stackable items, or exceeds 1 for non-stackable items.
	SetQuantity(n int) error
	// WithQuantity mints a fresh instance of the same item holding n
	// units, leaving the receiver untouched. The algorithms use it to
	// produce split results and overflow remainders without knowing the
	// host's concrete type. Quantity validation matches SetQuantity.
	WithQuantity(n int) (Instance[ID], error)
}

// Slot owns at most one Instance at a single position in an inventory.
type Slot[ID comparable] interface {
	// Get returns the held instance, or nil when empty. Reads never
	// trigger change hooks.
	Get() Instance[ID]
	// Set replaces the contents unconditionally. Instances with zero
	// quantity normalize to empty. Fires the change hook, if any, after
	// the mutation is visible.
	Set(inst Instance[ID])
	// Clear empties the slot. Equivalent to Set(nil).
	Clear()
	// IsEmpty reports whether the slot holds no instance.
	IsEmpty() bool
}

// sameItem reports whether both instances reference the same item kind.
func sameItem[ID comparable](a, b Instance[ID]) bool {
	return a.Item().ID() == b.Item().ID()
}

// stackRoom returns how many more units the instance's slot may absorb.
func stackRoom[ID comparable](inst Instance[ID]) int {
	room := inst.Item().MaxQuantity() - inst.Quantity()
	if room < 0 {
		return 0
	}
	return room
}
