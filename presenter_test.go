package cssinspect

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestPresenter() (*Presenter, *OverrideStore) {
	store := NewOverrideStore()
	return NewPresenter(NewRegistry(DefaultTokens), store), store
}

func propByName(t *testing.T, infos []PropertyInfo, name string) PropertyInfo {
	t.Helper()
	for _, info := range infos {
		if info.Property == name {
			return info
		}
	}
	t.Fatalf("property %s not presented", name)
	return PropertyInfo{}
}

func hasProp(infos []PropertyInfo, name string) bool {
	for _, info := range infos {
		if info.Property == name {
			return true
		}
	}
	return false
}

func TestMeaningfulPropertiesSuppressesDefaults(t *testing.T) {
	p, _ := newTestPresenter()
	el := newTestElement("div", []string{"card"}, map[string]string{
		"display":          "block",
		"opacity":          "1",
		"transform":        "none",
		"margin-top":       "0px",
		"background-color": "rgba(0, 0, 0, 0)",
		"color":            "rgb(17, 24, 39)",
		"padding-top":      "16px",
	})

	infos := p.MeaningfulProperties(el)

	require.True(t, hasProp(infos, "display"), "block is not the display default")
	require.True(t, hasProp(infos, "color"))
	require.True(t, hasProp(infos, "padding-top"))

	require.False(t, hasProp(infos, "opacity"))
	require.False(t, hasProp(infos, "transform"))
	require.False(t, hasProp(infos, "margin-top"))
	require.False(t, hasProp(infos, "background-color"), "fully transparent background is noise")
}

func TestMeaningfulPropertiesNilElement(t *testing.T) {
	p, _ := newTestPresenter()
	require.Nil(t, p.MeaningfulProperties(nil))
}

func TestClassifyTokenBacked(t *testing.T) {
	p, _ := newTestPresenter()
	el := newTestElement("div", []string{"card"}, map[string]string{
		// Computed form of color-gray-900 (#111827).
		"color": "rgb(17, 24, 39)",
		// 32px resolves to space-8 (2rem).
		"padding-top": "32px",
	})

	infos := p.MeaningfulProperties(el)

	color := propByName(t, infos, "color")
	require.Equal(t, KindToken, color.Kind)
	require.Equal(t, CategoryColor, color.TokenCategory)
	require.Equal(t, "color-gray-900", color.MatchedToken)

	padding := propByName(t, infos, "padding-top")
	require.Equal(t, KindToken, padding.Kind)
	require.Equal(t, CategorySpacing, padding.TokenCategory)
	require.Equal(t, "space-8", padding.MatchedToken)
}

func TestClassifyUntokenizedValueHasNoMatch(t *testing.T) {
	p, _ := newTestPresenter()
	el := newTestElement("div", []string{"card"}, map[string]string{
		"padding-top": "13px",
	})

	info := propByName(t, p.MeaningfulProperties(el), "padding-top")
	require.Equal(t, KindToken, info.Kind)
	require.Empty(t, info.MatchedToken)
}

func TestClassifyEnumInSet(t *testing.T) {
	p, _ := newTestPresenter()
	el := newTestElement("div", []string{"card"}, map[string]string{
		"display": "flex",
	})

	info := propByName(t, p.MeaningfulProperties(el), "display")
	require.Equal(t, KindEnum, info.Kind)
	require.Contains(t, info.Options, "flex")
	require.Contains(t, info.Options, "grid")
	// In-set value adds no synthetic entry.
	require.Len(t, info.Options, 7)
}

func TestClassifyEnumOutOfSetGetsSyntheticOption(t *testing.T) {
	p, _ := newTestPresenter()
	el := newTestElement("div", []string{"card"}, map[string]string{
		"display": "table-cell",
	})

	info := propByName(t, p.MeaningfulProperties(el), "display")
	require.Equal(t, KindEnum, info.Kind)
	require.Equal(t, "table-cell", info.Options[len(info.Options)-1],
		"out-of-set current value is appended, never dropped")
}

func TestClassifyOpaqueTruncation(t *testing.T) {
	p, _ := newTestPresenter()
	long := "translateX(10px) rotate(3deg) scale(1.02) skewY(1deg)"
	el := newTestElement("div", []string{"card"}, map[string]string{
		"transform": long,
	})

	info := propByName(t, p.MeaningfulProperties(el), "transform")
	require.Equal(t, KindOpaque, info.Kind)
	require.Len(t, info.Display, opaqueDisplayLimit)
	require.True(t, strings.HasSuffix(info.Display, "..."))
	require.Equal(t, long, info.Value, "full value is preserved alongside the display form")
}

func TestClassifyModifiedFlag(t *testing.T) {
	p, store := newTestPresenter()
	el := newTestElement("button", []string{"btn"}, map[string]string{
		"color":   "rgb(17, 24, 39)",
		"opacity": "0.8",
	})

	_, err := store.ApplyOverride(el, "color", "var(--color-error)")
	require.NoError(t, err)

	infos := p.MeaningfulProperties(el)
	require.True(t, propByName(t, infos, "color").Modified)
	require.False(t, propByName(t, infos, "opacity").Modified)
}

func TestGroupedPreservesChecklistOrder(t *testing.T) {
	p, _ := newTestPresenter()
	el := newTestElement("div", []string{"card"}, map[string]string{
		"display":     "flex",
		"width":       "320px",
		"padding-top": "16px",
		"color":       "rgb(17, 24, 39)",
	})

	grouped := p.Grouped(el)

	layout := grouped[GroupLayout]
	require.Len(t, layout, 2)
	require.Equal(t, "display", layout[0].Property)
	require.Equal(t, "width", layout[1].Property)

	require.Len(t, grouped[GroupSpacing], 1)
	require.Len(t, grouped[GroupColor], 1)
	require.Empty(t, grouped[GroupEffects])
}

func TestBoxModelView(t *testing.T) {
	p, _ := newTestPresenter()
	el := newTestElement("div", []string{"card"}, map[string]string{
		"margin-top":     "8px",
		"margin-right":   "8px",
		"margin-bottom":  "8px",
		"margin-left":    "8px",
		"padding-top":    "16px",
		"padding-right":  "24px",
		"padding-bottom": "16px",
		"padding-left":   "24px",
	})

	view := p.BoxModel(el)
	require.True(t, view.Margin.Uniform())
	require.False(t, view.Padding.Uniform())
	require.Equal(t, "24px", view.Padding.Right)
}

func TestCornerRadiiViewCarriesWidgetState(t *testing.T) {
	p, _ := newTestPresenter()
	el := newTestElement("div", []string{"card"}, map[string]string{
		"border-top-left-radius":     "8px",
		"border-top-right-radius":    "8px",
		"border-bottom-right-radius": "8px",
		"border-bottom-left-radius":  "2px",
	})

	view := p.CornerRadii(el, WidgetState{Linked: true})
	require.True(t, view.Linked)
	require.Equal(t, "2px", view.BottomLeft)
	require.False(t, view.Corners().Uniform())
}
