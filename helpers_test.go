package inventory

import "fmt"

// testItem and testInstance are the minimal contract implementations the
// core tests run against, independent of the samples package.
type testItem struct {
	id        string
	stackable bool
	max       int
}

func (i *testItem) ID() string       { return i.id }
func (i *testItem) Stackable() bool  { return i.stackable }
func (i *testItem) MaxQuantity() int { return i.max }

type testInstance struct {
	item     *testItem
	quantity int
}

func (inst *testInstance) Item() Item[string] { return inst.item }
func (inst *testInstance) Quantity() int      { return inst.quantity }

func (inst *testInstance) SetQuantity(n int) error {
	if err := validTestQuantity(inst.item, n); err != nil {
		return err
	}
	inst.quantity = n
	return nil
}

func (inst *testInstance) WithQuantity(n int) (Instance[string], error) {
	if err := validTestQuantity(inst.item, n); err != nil {
		return nil, err
	}
	return &testInstance{item: inst.item, quantity: n}, nil
}

func validTestQuantity(item *testItem, n int) error {
	if n < 0 {
		return fmt.Errorf("quantity %d: %w", n, ErrInvalidQuantity)
	}
	limit := item.max
	if !item.stackable {
		limit = 1
	}
	if n > limit {
		return fmt.Errorf("quantity %d over cap %d: %w", n, limit, ErrInvalidQuantity)
	}
	return nil
}

var (
	oreItem  = &testItem{id: "copper_ore", stackable: true, max: 100}
	gemItem  = &testItem{id: "rough_gem", stackable: true, max: 10}
	pickItem = &testItem{id: "iron_pick", stackable: false, max: 1}
)

func oreInstance(q int) *testInstance {
	return &testInstance{item: oreItem, quantity: q}
}

func gemInstance(q int) *testInstance {
	return &testInstance{item: gemItem, quantity: q}
}

func pickInstance() *testInstance {
	return &testInstance{item: pickItem, quantity: 1}
}

// emptyRow builds n empty slots.
func emptyRow(n int) []Slot[string] {
	slots := make([]Slot[string], n)
	for i := range slots {
		slots[i] = NewSlot[string](nil)
	}
	return slots
}

func quantityAt(slots []Slot[string], i int) int {
	held := slots[i].Get()
	if held == nil {
		return 0
	}
	return held.Quantity()
}
