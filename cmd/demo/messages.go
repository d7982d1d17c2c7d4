package main

// commandMessage is what clients send over the websocket.
type commandMessage struct {
	Type     string `json:"type"`
	ItemID   string `json:"itemId,omitempty"`
	Quantity int    `json:"quantity,omitempty"`
	Amount   int    `json:"amount,omitempty"`
	Slot     int    `json:"slot,omitempty"`
	To       int    `json:"to,omitempty"`
	A        int    `json:"a,omitempty"`
	B        int    `json:"b,omitempty"`
}

// slotView is one slot as serialized to clients. Item fields are empty
// for empty slots.
type slotView struct {
	Slot     int    `json:"slot"`
	ItemID   string `json:"itemId,omitempty"`
	Name     string `json:"name,omitempty"`
	Quantity int    `json:"quantity,omitempty"`
	UID      string `json:"uid,omitempty"`
}

// stateMessage pushes the full inventory after every mutation, plus the
// slot positions that changed so clients can repaint selectively.
type stateMessage struct {
	Type       string     `json:"type"`
	SessionID  string     `json:"sessionId"`
	Slots      []slotView `json:"slots"`
	Changed    []int      `json:"changed,omitempty"`
	ServerTime int64      `json:"serverTime"`
}

// resultMessage reports the outcome of a command that has a value
// result, such as the remainder of an add.
type resultMessage struct {
	Type      string `json:"type"`
	Op        string `json:"op"`
	Remainder int    `json:"remainder,omitempty"`
	Moved     int    `json:"moved,omitempty"`
}

// errorMessage reports a rejected command.
type errorMessage struct {
	Type   string `json:"type"`
	Op     string `json:"op"`
	Reason string `json:"reason"`
}
