package cssinspect

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecordOriginalIdempotent(t *testing.T) {
	store := NewOverrideStore()
	el := newTestElement("button", []string{"btn"}, map[string]string{"color": "rgb(0, 0, 0)"})

	require.True(t, store.RecordOriginal(el, "color"))

	// Mutate the live value, then record again: the original must keep
	// the pre-session value.
	require.NoError(t, el.SetInlineStyle("color", "rgb(255, 0, 0)"))
	require.False(t, store.RecordOriginal(el, "color"))

	original, ok := store.Original(el, "color")
	require.True(t, ok)
	require.Equal(t, "rgb(0, 0, 0)", original)
}

func TestApplyOverrideIdempotent(t *testing.T) {
	store := NewOverrideStore()
	el := newTestElement("button", []string{"btn"}, map[string]string{"color": "rgb(0, 0, 0)"})

	prev, err := store.ApplyOverride(el, "color", "var(--color-error)")
	require.NoError(t, err)
	require.Equal(t, "rgb(0, 0, 0)", prev)

	prev, err = store.ApplyOverride(el, "color", "var(--color-error)")
	require.NoError(t, err)
	require.Equal(t, "var(--color-error)", prev)

	v, ok := store.OverrideFor(".btn", "color")
	require.True(t, ok)
	require.Equal(t, "var(--color-error)", v)

	original, ok := store.Original(el, "color")
	require.True(t, ok)
	require.Equal(t, "rgb(0, 0, 0)", original, "original must stay the pre-first-edit value")
	require.Equal(t, 1, store.trackedPairs())
}

func TestApplyOverrideRollbackOnHostFailure(t *testing.T) {
	store := NewOverrideStore()
	el := newTestElement("button", []string{"btn"}, map[string]string{"color": "rgb(0, 0, 0)"})
	el.locked["color"] = true

	_, err := store.ApplyOverride(el, "color", "var(--color-error)")
	require.ErrorIs(t, err, ErrHostMutation)

	// No partial record of an edit that never took visual effect.
	_, ok := store.OverrideFor(".btn", "color")
	require.False(t, ok)
	_, ok = store.Original(el, "color")
	require.False(t, ok)
	require.Empty(t, store.Selectors())
}

func TestClearOverrideDropsEmptySelectorMaps(t *testing.T) {
	store := NewOverrideStore()
	el := newTestElement("button", []string{"btn"}, map[string]string{
		"color":   "rgb(0, 0, 0)",
		"opacity": "0.8",
	})

	_, err := store.ApplyOverride(el, "color", "red")
	require.NoError(t, err)
	_, err = store.ApplyOverride(el, "opacity", "0.5")
	require.NoError(t, err)
	require.Equal(t, []string{".btn"}, store.Selectors())

	store.ClearOverride(el, "color")
	require.Equal(t, []string{".btn"}, store.Selectors())

	store.ClearOverride(el, "opacity")
	require.Empty(t, store.Selectors())
	require.Empty(t, store.OverridesFor(".btn"))
}

func TestSelectorsFirstEncounteredOrder(t *testing.T) {
	store := NewOverrideStore()
	btn := newTestElement("button", []string{"btn"}, map[string]string{"color": "x"})
	card := newTestElement("div", []string{"card"}, map[string]string{"color": "y"})

	_, err := store.ApplyOverride(btn, "color", "a")
	require.NoError(t, err)
	_, err = store.ApplyOverride(card, "color", "b")
	require.NoError(t, err)
	_, err = store.ApplyOverride(btn, "opacity", "0.5")
	require.NoError(t, err)

	require.Equal(t, []string{".btn", ".card"}, store.Selectors())
}

func TestSharedSelectorSharesOverrideEntry(t *testing.T) {
	store := NewOverrideStore()
	first := newTestElement("button", []string{"btn"}, map[string]string{"color": "rgb(0, 0, 0)"})
	second := newTestElement("button", []string{"btn"}, map[string]string{"color": "rgb(0, 0, 0)"})

	_, err := store.ApplyOverride(first, "color", "red")
	require.NoError(t, err)
	_, err = store.ApplyOverride(second, "color", "blue")
	require.NoError(t, err)

	// One rule-level entry; the second edit replaced the first.
	v, ok := store.OverrideFor(".btn", "color")
	require.True(t, ok)
	require.Equal(t, "blue", v)
	require.Equal(t, []string{".btn"}, store.Selectors())

	// Live values diverge: only the instance each edit targeted changed.
	require.Equal(t, "red", first.ReadStyle("color"))
	require.Equal(t, "blue", second.ReadStyle("color"))
}

func TestResetAllRestoresAndClears(t *testing.T) {
	store := NewOverrideStore()
	btn := newTestElement("button", []string{"btn"}, map[string]string{"color": "rgb(0, 0, 0)"})
	card := newTestElement("div", []string{"card"}, map[string]string{"opacity": "0.9"})

	_, err := store.ApplyOverride(btn, "color", "red")
	require.NoError(t, err)
	_, err = store.ApplyOverride(card, "opacity", "0.5")
	require.NoError(t, err)

	require.NoError(t, store.ResetAll())

	require.Equal(t, "rgb(0, 0, 0)", btn.ReadStyle("color"))
	require.Equal(t, "0.9", card.ReadStyle("opacity"))
	require.False(t, btn.HasInlineStyle("color"))
	require.Empty(t, store.Selectors())
	require.Equal(t, 0, store.trackedPairs())
}

func TestResetAllRestoresPreSessionInlineValue(t *testing.T) {
	store := NewOverrideStore()
	el := newTestElement("div", []string{"card"}, map[string]string{"width": "100px"})
	// The host had an inline value before the session started.
	require.NoError(t, el.SetInlineStyle("width", "200px"))

	_, err := store.ApplyOverride(el, "width", "var(--space-12)")
	require.NoError(t, err)
	require.NoError(t, store.ResetAll())

	// Reset rewrites the pre-session inline value instead of removing it.
	require.True(t, el.HasInlineStyle("width"))
	require.Equal(t, "200px", el.ReadStyle("width"))
}

func TestResetAllClearsBookkeepingEvenWhenHostFails(t *testing.T) {
	store := NewOverrideStore()
	el := newTestElement("button", []string{"btn"}, map[string]string{"color": "rgb(0, 0, 0)"})

	_, err := store.ApplyOverride(el, "color", "red")
	require.NoError(t, err)

	// Host starts rejecting writes after the edit.
	el.locked["color"] = true

	err = store.ResetAll()
	require.ErrorIs(t, err, ErrHostMutation)

	// Reset is a hard session boundary regardless.
	require.Empty(t, store.Selectors())
	require.Equal(t, 0, store.trackedPairs())
}
