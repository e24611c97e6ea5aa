package cssinspect

// HistoryEntry is one reversible unit of change. Entries carry everything
// needed to apply the edit in either direction without consulting the
// override store's selector-keyed view, so each entry stays independently
// reversible even when four of them were produced by one linked gesture.
type HistoryEntry struct {
	Element  ElementID
	Selector string
	Property string
	OldValue string
	NewValue string

	// OldIsOverride is false when OldValue is the pre-edit original, i.e.
	// undoing this entry removes the override rather than rewriting it.
	OldIsOverride bool

	// NewIsOverride is false when the forward direction restores the
	// original value (a reset recorded as an undoable edit).
	NewIsOverride bool

	// OriginalInline records whether the captured original came from a
	// host inline value, so restoring knows to write it back rather than
	// remove the inline style.
	OriginalInline bool
}

// History is a linear undo/redo machine over property mutations: two
// unbounded stacks, no branching. It lives for the inspection session and is
// cleared only by a full reset.
type History struct {
	undo []HistoryEntry
	redo []HistoryEntry
}

func NewHistory() *History {
	return &History{}
}

// Record pushes a completed edit onto the undo stack and clears the redo
// stack (standard linear-history semantics).
func (h *History) Record(entry HistoryEntry) {
	h.undo = append(h.undo, entry)
	h.redo = nil
}

// PeekUndo returns the entry that Undo would revert, without moving it.
// The caller applies the inverse first and commits only on success, so a
// failed host write leaves the stacks untouched.
func (h *History) PeekUndo() (HistoryEntry, bool) {
	if len(h.undo) == 0 {
		return HistoryEntry{}, false
	}
	return h.undo[len(h.undo)-1], true
}

// CommitUndo moves the top undo entry to the redo stack.
func (h *History) CommitUndo() {
	n := len(h.undo)
	if n == 0 {
		return
	}
	entry := h.undo[n-1]
	h.undo = h.undo[:n-1]
	h.redo = append(h.redo, entry)
}

// PeekRedo returns the entry that Redo would reapply, without moving it.
func (h *History) PeekRedo() (HistoryEntry, bool) {
	if len(h.redo) == 0 {
		return HistoryEntry{}, false
	}
	return h.redo[len(h.redo)-1], true
}

// CommitRedo moves the top redo entry back to the undo stack.
func (h *History) CommitRedo() {
	n := len(h.redo)
	if n == 0 {
		return
	}
	entry := h.redo[n-1]
	h.redo = h.redo[:n-1]
	h.undo = append(h.undo, entry)
}

// CanUndo reports whether the undo stack is non-empty. UIs disable the
// affordance instead of surfacing a failure.
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether the redo stack is non-empty.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// Depth returns the sizes of the undo and redo stacks.
func (h *History) Depth() (undo, redo int) {
	return len(h.undo), len(h.redo)
}

// Clear empties both stacks. Only a full session reset calls this.
func (h *History) Clear() {
	h.undo = nil
	h.redo = nil
}
