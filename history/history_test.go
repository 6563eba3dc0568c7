package history

import (
	"errors"
	"testing"

	"drafter/diagram"
)

func TestUndoRedoRoundTrip(t *testing.T) {
	g := diagram.NewGraph()
	h := New(g, 10)

	// S0: one shape.
	a := g.AddShape(diagram.KindState, 0, 0)
	a.Name = "A"

	// Edit: push then mutate to S1.
	if !h.Push() {
		t.Fatal("Push failed")
	}
	b := g.AddShape(diagram.KindState, 0, 200)
	b.Name = "B"
	g.AddConnection(a.ID, b.ID)

	if !h.CanUndo() {
		t.Fatal("expected CanUndo after a push")
	}
	if !h.Undo() {
		t.Fatal("Undo failed")
	}
	if len(g.Shapes) != 1 || g.Shapes[0].Name != "A" {
		t.Errorf("undo did not restore S0: %d shapes", len(g.Shapes))
	}
	if len(g.Connections) != 0 {
		t.Error("undo left connections from S1 behind")
	}

	if !h.CanRedo() {
		t.Fatal("expected CanRedo after an undo")
	}
	if !h.Redo() {
		t.Fatal("Redo failed")
	}
	if len(g.Shapes) != 2 || len(g.Connections) != 1 {
		t.Errorf("redo did not restore S1: %d shapes, %d connections",
			len(g.Shapes), len(g.Connections))
	}

	// Connection geometry is re-derived, not replayed from the snapshot.
	if g.Connections[0].Path.IsEmpty() {
		t.Error("restored connection has no path")
	}
}

func TestPushClearsRedo(t *testing.T) {
	g := diagram.NewGraph()
	h := New(g, 10)

	h.Push()
	g.AddShape(diagram.KindState, 0, 0)

	if !h.Undo() {
		t.Fatal("Undo failed")
	}
	if !h.CanRedo() {
		t.Fatal("redo should be available after undo")
	}

	// A new edit branches history: the redo future is gone.
	h.Push()
	g.AddShape(diagram.KindChoice, 50, 50)

	if h.CanRedo() {
		t.Error("CanRedo should be false after a new edit")
	}
	if h.Redo() {
		t.Error("Redo should fail after a new edit")
	}
}

func TestUndoOnEmptyStack(t *testing.T) {
	g := diagram.NewGraph()
	h := New(g, 10)

	if h.CanUndo() {
		t.Error("fresh history should not allow undo")
	}
	if h.Undo() {
		t.Error("Undo on empty stack should return false")
	}
	if h.Redo() {
		t.Error("Redo on empty stack should return false")
	}
}

func TestCapacityEvictsOldest(t *testing.T) {
	g := diagram.NewGraph()
	h := New(g, 3)

	for i := 0; i < 5; i++ {
		h.Push()
		g.AddShape(diagram.KindState, float64(i*10), 0)
	}

	undo, _ := h.Depths()
	if undo != 3 {
		t.Errorf("undo depth = %d, want capped at 3", undo)
	}

	// Unwind everything available: we land on the oldest retained state
	// (after 2 edits), not the initial empty graph.
	for h.Undo() {
	}
	if len(g.Shapes) != 2 {
		t.Errorf("deepest undo has %d shapes, want 2 (oldest snapshots evicted)",
			len(g.Shapes))
	}
}

func TestDefaultCapacity(t *testing.T) {
	h := New(diagram.NewGraph(), 0)
	if h.capacity != DefaultCapacity {
		t.Errorf("capacity = %d, want %d", h.capacity, DefaultCapacity)
	}
}

// flakyTarget simulates snapshot corruption and capture failures.
type flakyTarget struct {
	snapshotErr error
	restoreErr  error
	restored    [][]byte
}

func (f *flakyTarget) Snapshot() ([]byte, error) {
	if f.snapshotErr != nil {
		return nil, f.snapshotErr
	}
	return []byte("{}"), nil
}

func (f *flakyTarget) Restore(data []byte) error {
	if f.restoreErr != nil {
		return f.restoreErr
	}
	f.restored = append(f.restored, data)
	return nil
}

func TestCorruptSnapshotFailsQuietly(t *testing.T) {
	f := &flakyTarget{}
	h := New(f, 10)
	h.Push()

	f.restoreErr = errors.New("malformed snapshot")
	if h.Undo() {
		t.Error("Undo of a corrupt snapshot should return false")
	}
	if len(f.restored) != 0 {
		t.Error("target must not be modified by a failed undo")
	}
	if h.CanRedo() {
		t.Error("a failed undo must not grow the redo stack")
	}
}

func TestSnapshotFailureBlocksPush(t *testing.T) {
	f := &flakyTarget{snapshotErr: errors.New("cannot capture")}
	h := New(f, 10)

	if h.Push() {
		t.Error("Push should fail when the snapshot cannot be taken")
	}
	if h.CanUndo() {
		t.Error("failed push must not grow the undo stack")
	}
}
