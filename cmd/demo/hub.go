package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	inventory "github.com/Lubba-64/inventory-go"
	"github.com/Lubba-64/inventory-go/logging"
	"github.com/Lubba-64/inventory-go/logging/invlog"
	"github.com/Lubba-64/inventory-go/samples"
)

const (
	writeWait = 10 * time.Second
	slotCount = 12
)

// itemLookup resolves an item id to its shared definition. The hub does
// not care whether definitions come from a catalog file or the built-in
// samples.
type itemLookup func(id string) (*samples.Item, bool)

// session is one connected client and its slot grid. All mutation runs
// under the owning hub's mutex; the engine itself is single-threaded per
// inventory.
type session struct {
	id      string
	slots   []inventory.Slot[string]
	dirty   map[int]struct{}
	conn    *websocket.Conn
	writeMu sync.Mutex
}

// Hub owns all live sessions and serializes inventory mutation.
type Hub struct {
	mu       sync.Mutex
	sessions map[string]*session
	lookup   itemLookup
	pub      logging.Publisher
}

func newHub(lookup itemLookup, pub logging.Publisher) *Hub {
	if pub == nil {
		pub = logging.NopPublisher()
	}
	return &Hub{
		sessions: make(map[string]*session),
		lookup:   lookup,
		pub:      pub,
	}
}

// Join creates a session with a seeded slot grid and returns it.
func (h *Hub) Join() *session {
	s := &session{
		id:    uuid.NewString(),
		dirty: make(map[int]struct{}),
	}
	s.slots = make([]inventory.Slot[string], slotCount)
	for i := range s.slots {
		index := i
		s.slots[i] = inventory.NewSlotFunc[string](nil, func(inventory.Instance[string]) {
			s.dirty[index] = struct{}{}
		})
	}
	h.seed(s)

	h.mu.Lock()
	h.sessions[s.id] = s
	h.mu.Unlock()
	return s
}

// seed stocks a fresh grid so there is something to push around.
func (h *Hub) seed(s *session) {
	for _, stock := range []struct {
		id       string
		quantity int
	}{
		{samples.ItemGoldCoin, 50},
		{samples.ItemCheeseWheel, 90},
		{samples.ItemHealthPotion, 2},
		{samples.ItemIronSword, 1},
	} {
		item, ok := h.lookup(stock.id)
		if !ok {
			continue
		}
		inst, err := samples.NewInstance(item, stock.quantity)
		if err != nil {
			log.Printf("failed to seed %s for %s: %v", stock.id, s.id, err)
			continue
		}
		if remainder := inventory.Add(s.slots, inventory.Instance[string](inst)); remainder != nil {
			log.Printf("seed overflow for %s: %d %s", s.id, remainder.Quantity(), stock.id)
		}
	}
	s.dirty = make(map[int]struct{})
}

// Disconnect drops a session.
func (h *Hub) Disconnect(id string) {
	h.mu.Lock()
	delete(h.sessions, id)
	h.mu.Unlock()
}

// Session looks up a live session by id.
func (h *Hub) Session(id string) (*session, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	s, ok := h.sessions[id]
	return s, ok
}

// Apply runs one command against the session's slots and returns the
// reply message to send alongside the refreshed state.
func (h *Hub) Apply(ctx context.Context, s *session, cmd commandMessage) any {
	h.mu.Lock()
	defer h.mu.Unlock()

	switch cmd.Type {
	case "add":
		return h.applyAdd(ctx, s, cmd)
	case "split":
		return h.applySplit(ctx, s, cmd)
	case "combine":
		return h.applyCombine(ctx, s, cmd)
	case "swap":
		return h.applySwap(ctx, s, cmd)
	case "remove":
		return h.applyRemove(ctx, s, cmd)
	default:
		return errorMessage{Type: "error", Op: cmd.Type, Reason: "unknown_command"}
	}
}

func (h *Hub) applyAdd(ctx context.Context, s *session, cmd commandMessage) any {
	item, ok := h.lookup(cmd.ItemID)
	if !ok {
		return h.reject(ctx, s, "add", "unknown_item")
	}
	inst, err := samples.NewInstance(item, cmd.Quantity)
	if err != nil {
		return h.reject(ctx, s, "add", reasonFor(err))
	}

	remainder := inventory.Add(s.slots, inventory.Instance[string](inst))
	left := 0
	if remainder != nil {
		left = remainder.Quantity()
		invlog.OverflowReturned(ctx, h.pub, s.id, invlog.OverflowReturnedPayload{
			ItemID:    cmd.ItemID,
			Remainder: left,
		}, nil)
	}
	invlog.StackAdded(ctx, h.pub, s.id, invlog.StackAddedPayload{
		ItemID:    cmd.ItemID,
		Placed:    cmd.Quantity - left,
		Requested: cmd.Quantity,
	}, nil)
	return resultMessage{Type: "result", Op: "add", Remainder: left}
}

func (h *Hub) applySplit(ctx context.Context, s *session, cmd commandMessage) any {
	if !validSlot(cmd.Slot) || !validSlot(cmd.To) {
		return h.reject(ctx, s, "split", "invalid_slot")
	}
	if cmd.Slot == cmd.To || !s.slots[cmd.To].IsEmpty() {
		return h.reject(ctx, s, "split", "destination_occupied")
	}

	piece, err := inventory.Split[string](s.slots[cmd.Slot], cmd.Amount)
	if err != nil {
		return h.reject(ctx, s, "split", reasonFor(err))
	}
	s.slots[cmd.To].Set(piece)

	invlog.StackSplit(ctx, h.pub, s.id, cmd.Slot, invlog.StackSplitPayload{
		ItemID: piece.Item().ID(),
		Amount: piece.Quantity(),
		Left:   s.slots[cmd.Slot].Get().Quantity(),
	}, nil)
	return resultMessage{Type: "result", Op: "split", Moved: piece.Quantity()}
}

func (h *Hub) applyCombine(ctx context.Context, s *session, cmd commandMessage) any {
	if !validSlot(cmd.Slot) || !validSlot(cmd.To) || cmd.Slot == cmd.To {
		return h.reject(ctx, s, "combine", "invalid_slot")
	}

	moved, err := inventory.Combine[string](s.slots[cmd.To], s.slots[cmd.Slot])
	if err != nil {
		return h.reject(ctx, s, "combine", reasonFor(err))
	}

	held := s.slots[cmd.To].Get()
	invlog.StacksCombined(ctx, h.pub, s.id, invlog.StacksCombinedPayload{
		ItemID:   held.Item().ID(),
		Moved:    moved,
		SrcSlot:  cmd.Slot,
		DestSlot: cmd.To,
	}, nil)
	return resultMessage{Type: "result", Op: "combine", Moved: moved}
}

func (h *Hub) applySwap(ctx context.Context, s *session, cmd commandMessage) any {
	if !validSlot(cmd.A) || !validSlot(cmd.B) {
		return h.reject(ctx, s, "swap", "invalid_slot")
	}

	inventory.Swap[string](s.slots[cmd.A], s.slots[cmd.B])
	invlog.SlotsSwapped(ctx, h.pub, s.id, invlog.SlotsSwappedPayload{
		SlotA: cmd.A,
		SlotB: cmd.B,
	}, nil)
	return resultMessage{Type: "result", Op: "swap"}
}

func (h *Hub) applyRemove(ctx context.Context, s *session, cmd commandMessage) any {
	removed, short, err := inventory.Remove(s.slots, cmd.ItemID, cmd.Quantity)
	if err != nil {
		return h.reject(ctx, s, "remove", reasonFor(err))
	}
	taken := 0
	if removed != nil {
		taken = removed.Quantity()
	}
	return resultMessage{Type: "result", Op: "remove", Moved: taken, Remainder: short}
}

func (h *Hub) reject(ctx context.Context, s *session, op, reason string) errorMessage {
	invlog.MutationFailed(ctx, h.pub, s.id, invlog.MutationFailedPayload{
		Op:     op,
		Reason: reason,
	}, nil)
	return errorMessage{Type: "error", Op: op, Reason: reason}
}

// stateLocked snapshots the session's slots and drains the dirty set.
// Must run under h.mu; callers go through SnapshotState.
func (h *Hub) stateLocked(s *session) stateMessage {
	views := make([]slotView, len(s.slots))
	for i, slot := range s.slots {
		view := slotView{Slot: i}
		if held := slot.Get(); held != nil {
			view.ItemID = held.Item().ID()
			view.Quantity = held.Quantity()
			if inst, ok := held.(*samples.ItemInstance); ok {
				view.Name = inst.Definition().Name()
				view.UID = inst.UID().String()
			}
		}
		views[i] = view
	}

	changed := make([]int, 0, len(s.dirty))
	for index := range s.dirty {
		changed = append(changed, index)
	}
	s.dirty = make(map[int]struct{})

	return stateMessage{
		Type:       "state",
		SessionID:  s.id,
		Slots:      views,
		Changed:    changed,
		ServerTime: time.Now().UnixMilli(),
	}
}

// SnapshotState builds the state message for a session.
func (h *Hub) SnapshotState(s *session) stateMessage {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.stateLocked(s)
}

// send writes a JSON message to the session's connection.
func (s *session) send(msg any) error {
	if s.conn == nil {
		return nil
	}
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return s.conn.WriteMessage(websocket.TextMessage, data)
}

func validSlot(i int) bool {
	return i >= 0 && i < slotCount
}

// reasonFor maps engine errors onto stable wire reasons.
func reasonFor(err error) string {
	switch {
	case errors.Is(err, inventory.ErrInvalidQuantity):
		return "invalid_quantity"
	case errors.Is(err, inventory.ErrItemMismatch):
		return "item_mismatch"
	case errors.Is(err, inventory.ErrNotStackable):
		return "not_stackable"
	case errors.Is(err, inventory.ErrSlotEmpty):
		return "slot_empty"
	default:
		return "internal_error"
	}
}
