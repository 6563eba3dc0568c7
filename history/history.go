// Package history provides snapshot-based undo/redo over a diagram graph's
// persistent state.
package history

// Target is anything whose full persistent state can be captured and put
// back. The diagram graph satisfies it; history never looks inside the
// snapshot bytes.
type Target interface {
	Snapshot() ([]byte, error)
	Restore(data []byte) error
}

// DefaultCapacity bounds each stack when no explicit capacity is given.
const DefaultCapacity = 50

// History keeps two bounded stacks of opaque state snapshots. Pushing a new
// edit discards the redo future; the oldest undo entry is evicted when the
// stack is full. Failures (corrupt snapshots included) surface as a false
// return with the target left unmodified, never as a panic.
type History struct {
	target   Target
	undo     [][]byte
	redo     [][]byte
	capacity int
}

// New creates a history manager for the target.
func New(target Target, capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &History{target: target, capacity: capacity}
}

// Push snapshots the target's current state onto the undo stack. Call it
// before mutating. Any redo future is discarded.
func (h *History) Push() bool {
	data, err := h.target.Snapshot()
	if err != nil {
		return false
	}
	h.undo = push(h.undo, data, h.capacity)
	h.redo = nil
	return true
}

// CanUndo returns true if undo is possible.
func (h *History) CanUndo() bool {
	return len(h.undo) > 0
}

// CanRedo returns true if redo is possible.
func (h *History) CanRedo() bool {
	return len(h.redo) > 0
}

// Undo restores the most recent undo snapshot, moving the current state onto
// the redo stack. Returns false, with the target untouched, when the stack
// is empty or the snapshot cannot be applied.
func (h *History) Undo() bool {
	return h.step(&h.undo, &h.redo)
}

// Redo restores the most recent redo snapshot, moving the current state onto
// the undo stack.
func (h *History) Redo() bool {
	return h.step(&h.redo, &h.undo)
}

// step pops from one stack, pushes the current state onto the other, and
// restores. The pop happens even when the snapshot turns out to be corrupt:
// the entry is unusable either way, but the target is left as it was.
func (h *History) step(from, to *[][]byte) bool {
	n := len(*from)
	if n == 0 {
		return false
	}

	current, err := h.target.Snapshot()
	if err != nil {
		return false
	}

	entry := (*from)[n-1]
	*from = (*from)[:n-1]

	if err := h.target.Restore(entry); err != nil {
		return false
	}
	*to = push(*to, current, h.capacity)
	return true
}

// Clear drops both stacks.
func (h *History) Clear() {
	h.undo = nil
	h.redo = nil
}

// Depths reports the sizes of the undo and redo stacks, for status display.
func (h *History) Depths() (undo, redo int) {
	return len(h.undo), len(h.redo)
}

// push appends to a bounded stack, evicting the oldest entry on overflow.
func push(stack [][]byte, data []byte, capacity int) [][]byte {
	if len(stack) >= capacity {
		stack = append(stack[:0], stack[1:]...)
		stack = stack[:capacity-1]
	}
	return append(stack, data)
}
