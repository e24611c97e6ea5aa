package cssinspect

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHistoryInitialState(t *testing.T) {
	h := NewHistory()

	require.False(t, h.CanUndo())
	require.False(t, h.CanRedo())

	_, ok := h.PeekUndo()
	require.False(t, ok)
	_, ok = h.PeekRedo()
	require.False(t, ok)

	// Commit on empty stacks is a no-op, not a panic.
	h.CommitUndo()
	h.CommitRedo()
}

func TestHistoryRecordClearsRedo(t *testing.T) {
	h := NewHistory()

	h.Record(HistoryEntry{Property: "color", NewValue: "a"})
	h.Record(HistoryEntry{Property: "color", NewValue: "b"})
	h.CommitUndo()
	require.True(t, h.CanRedo())

	// Any new edit forfeits the redo branch.
	h.Record(HistoryEntry{Property: "color", NewValue: "c"})
	require.False(t, h.CanRedo())

	undo, redo := h.Depth()
	require.Equal(t, 2, undo)
	require.Equal(t, 0, redo)
}

func TestHistoryUndoRedoMovement(t *testing.T) {
	h := NewHistory()
	h.Record(HistoryEntry{Property: "opacity", NewValue: "0.5"})

	entry, ok := h.PeekUndo()
	require.True(t, ok)
	require.Equal(t, "opacity", entry.Property)

	h.CommitUndo()
	require.False(t, h.CanUndo())
	require.True(t, h.CanRedo())

	entry, ok = h.PeekRedo()
	require.True(t, ok)
	require.Equal(t, "0.5", entry.NewValue)

	h.CommitRedo()
	require.True(t, h.CanUndo())
	require.False(t, h.CanRedo())
}

func TestHistoryClear(t *testing.T) {
	h := NewHistory()
	h.Record(HistoryEntry{Property: "color"})
	h.Record(HistoryEntry{Property: "width"})
	h.CommitUndo()

	h.Clear()
	require.False(t, h.CanUndo())
	require.False(t, h.CanRedo())
}
