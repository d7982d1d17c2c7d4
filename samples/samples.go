// Package samples provides ready-made Item and Instance implementations
// for hosts that do not need custom item types, plus a small built-in
// catalog used by the tests and the demo. Everything here is optional;
// any host type satisfying the root interfaces plugs in the same way.
package samples

import (
	"fmt"

	"github.com/google/uuid"

	inventory "github.com/Lubba-64/inventory-go"
)

// Item is the default immutable item definition. Construct items once
// (usually through the catalog) and share them by pointer across every
// instance; nothing mutates an Item after construction.
type Item struct {
	id          string
	name        string
	description string
	maxQuantity int
	tags        []string
}

// ItemParams carries the fields needed to define an item.
type ItemParams struct {
	ID          string
	Name        string
	Description string
	MaxQuantity int
	Tags        []string
}

// NewItem validates params and builds an immutable item definition.
func NewItem(params ItemParams) (*Item, error) {
	if params.ID == "" {
		return nil, fmt.Errorf("item definition requires an id")
	}
	if params.MaxQuantity < 0 {
		return nil, fmt.Errorf("item %q: negative max quantity %d", params.ID, params.MaxQuantity)
	}
	tags := append([]string(nil), params.Tags...)
	return &Item{
		id:          params.ID,
		name:        params.Name,
		description: params.Description,
		maxQuantity: params.MaxQuantity,
		tags:        tags,
	}, nil
}

func (i *Item) ID() string { return i.id }

// Stackable reports whether more than one unit shares a slot. Items with
// a max quantity of 0 or 1 are non-stackable.
func (i *Item) Stackable() bool { return i.maxQuantity > 1 }

func (i *Item) MaxQuantity() int { return i.maxQuantity }

func (i *Item) Name() string { return i.name }

func (i *Item) Description() string { return i.description }

// Tags returns a copy of the item's quality tags.
func (i *Item) Tags() []string { return append([]string(nil), i.tags...) }

// ItemInstance is the default live occurrence of an Item. Each instance
// carries a unique id so hosts can address it in wire payloads and UI
// state.
type ItemInstance struct {
	uid      uuid.UUID
	item     *Item
	quantity int
}

// NewInstance wraps quantity units of item in a fresh instance.
func NewInstance(item *Item, quantity int) (*ItemInstance, error) {
	if item == nil {
		return nil, fmt.Errorf("instance requires an item definition")
	}
	if err := validQuantity(item, quantity); err != nil {
		return nil, err
	}
	return &ItemInstance{uid: uuid.New(), item: item, quantity: quantity}, nil
}

// MustInstance is NewInstance for static setup code; it panics on error.
func MustInstance(item *Item, quantity int) *ItemInstance {
	inst, err := NewInstance(item, quantity)
	if err != nil {
		panic(err)
	}
	return inst
}

// UID returns the unique id of this instance.
func (inst *ItemInstance) UID() uuid.UUID { return inst.uid }

func (inst *ItemInstance) Item() inventory.Item[string] { return inst.item }

// Definition returns the concrete sample item, avoiding the interface
// round trip for hosts that know they are working with samples.
func (inst *ItemInstance) Definition() *Item { return inst.item }

func (inst *ItemInstance) Quantity() int { return inst.quantity }

func (inst *ItemInstance) SetQuantity(n int) error {
	if err := validQuantity(inst.item, n); err != nil {
		return err
	}
	inst.quantity = n
	return nil
}

func (inst *ItemInstance) WithQuantity(n int) (inventory.Instance[string], error) {
	if err := validQuantity(inst.item, n); err != nil {
		return nil, err
	}
	return &ItemInstance{uid: uuid.New(), item: inst.item, quantity: n}, nil
}

func validQuantity(item *Item, n int) error {
	if n < 0 {
		return fmt.Errorf("item %q: quantity %d: %w", item.id, n, inventory.ErrInvalidQuantity)
	}
	limit := item.maxQuantity
	if !item.Stackable() {
		limit = 1
	}
	if n > limit {
		return fmt.Errorf("item %q: quantity %d over cap %d: %w", item.id, n, limit, inventory.ErrInvalidQuantity)
	}
	return nil
}
