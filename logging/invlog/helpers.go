// Package invlog defines the inventory event vocabulary and publish
// helpers layered over the logging router.
package invlog

import (
	"context"

	"github.com/Lubba-64/inventory-go/logging"
)

const (
	// EventStackAdded is emitted when Add places units into the sequence.
	EventStackAdded logging.EventType = "inventory.stack_added"
	// EventOverflowReturned is emitted when Add hands a remainder back.
	EventOverflowReturned logging.EventType = "inventory.overflow_returned"
	// EventStackSplit is emitted after a successful split.
	EventStackSplit logging.EventType = "inventory.stack_split"
	// EventStacksCombined is emitted after a successful combine.
	EventStacksCombined logging.EventType = "inventory.stacks_combined"
	// EventSlotsSwapped is emitted after a swap.
	EventSlotsSwapped logging.EventType = "inventory.slots_swapped"
	// EventMutationFailed is emitted when a requested mutation is rejected.
	EventMutationFailed logging.EventType = "inventory.mutation_failed"
)

// StackAddedPayload describes the placed portion of an add.
type StackAddedPayload struct {
	ItemID    string `json:"itemId"`
	Placed    int    `json:"placed"`
	Requested int    `json:"requested"`
}

// OverflowReturnedPayload describes an unplaced remainder.
type OverflowReturnedPayload struct {
	ItemID    string `json:"itemId"`
	Remainder int    `json:"remainder"`
}

// StackSplitPayload describes a completed split.
type StackSplitPayload struct {
	ItemID string `json:"itemId"`
	Amount int    `json:"amount"`
	Left   int    `json:"left"`
}

// StacksCombinedPayload describes a completed combine.
type StacksCombinedPayload struct {
	ItemID   string `json:"itemId"`
	Moved    int    `json:"moved"`
	SrcSlot  int    `json:"srcSlot"`
	DestSlot int    `json:"destSlot"`
}

// SlotsSwappedPayload describes a swap between two positions.
type SlotsSwappedPayload struct {
	SlotA int `json:"slotA"`
	SlotB int `json:"slotB"`
}

// MutationFailedPayload describes a rejected mutation.
type MutationFailedPayload struct {
	Op     string `json:"op"`
	Reason string `json:"reason"`
}

// StackAdded publishes a stack-added event.
func StackAdded(ctx context.Context, pub logging.Publisher, inventoryID string, payload StackAddedPayload, extra map[string]any) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:      EventStackAdded,
		Inventory: inventoryID,
		Slot:      logging.NoSlot,
		Severity:  logging.SeverityInfo,
		Category:  logging.CategoryInventory,
		Payload:   payload,
		Extra:     extra,
	})
}

// OverflowReturned publishes an overflow event.
func OverflowReturned(ctx context.Context, pub logging.Publisher, inventoryID string, payload OverflowReturnedPayload, extra map[string]any) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:      EventOverflowReturned,
		Inventory: inventoryID,
		Slot:      logging.NoSlot,
		Severity:  logging.SeverityWarn,
		Category:  logging.CategoryInventory,
		Payload:   payload,
		Extra:     extra,
	})
}

// StackSplit publishes a split event scoped to the source slot.
func StackSplit(ctx context.Context, pub logging.Publisher, inventoryID string, slot int, payload StackSplitPayload, extra map[string]any) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:      EventStackSplit,
		Inventory: inventoryID,
		Slot:      slot,
		Severity:  logging.SeverityInfo,
		Category:  logging.CategorySlot,
		Payload:   payload,
		Extra:     extra,
	})
}

// StacksCombined publishes a combine event scoped to the destination slot.
func StacksCombined(ctx context.Context, pub logging.Publisher, inventoryID string, payload StacksCombinedPayload, extra map[string]any) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:      EventStacksCombined,
		Inventory: inventoryID,
		Slot:      payload.DestSlot,
		Severity:  logging.SeverityInfo,
		Category:  logging.CategorySlot,
		Payload:   payload,
		Extra:     extra,
	})
}

// SlotsSwapped publishes a swap event.
func SlotsSwapped(ctx context.Context, pub logging.Publisher, inventoryID string, payload SlotsSwappedPayload, extra map[string]any) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:      EventSlotsSwapped,
		Inventory: inventoryID,
		Slot:      payload.SlotA,
		Severity:  logging.SeverityInfo,
		Category:  logging.CategorySlot,
		Payload:   payload,
		Extra:     extra,
	})
}

// MutationFailed publishes a rejected-mutation event.
func MutationFailed(ctx context.Context, pub logging.Publisher, inventoryID string, payload MutationFailedPayload, extra map[string]any) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:      EventMutationFailed,
		Inventory: inventoryID,
		Slot:      logging.NoSlot,
		Severity:  logging.SeverityWarn,
		Category:  logging.CategoryInventory,
		Payload:   payload,
		Extra:     extra,
	})
}
