package inventory

import "errors"

// Failure conditions reported by the slot and inventory algorithms. All of
// them are local and recoverable; no operation aborts a wider mutation.
var (
	// ErrInvalidQuantity signals a zero, negative, or over-cap quantity,
	// or a split amount outside the open interval (0, source quantity).
	ErrInvalidQuantity = errors.New("invalid_quantity")
	// ErrItemMismatch signals a merge across differing item identities.
	ErrItemMismatch = errors.New("item_mismatch")
	// ErrNotStackable signals a split or merge on a non-stackable item.
	ErrNotStackable = errors.New("not_stackable")
	// ErrSlotEmpty signals an operation that needs an occupied slot.
	ErrSlotEmpty = errors.New("slot_empty")
)
