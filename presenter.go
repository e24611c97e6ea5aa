package cssinspect


// Group names a fixed section of the property checklist.
type Group string

// Property groups in display order.
const (
	GroupLayout     Group = "layout"
	GroupSpacing    Group = "spacing"
	GroupTypography Group = "typography"
	GroupColor      Group = "color"
	GroupBorders    Group = "borders"
	GroupEffects    Group = "effects"
)

// GroupOrder is the fixed display order of property groups.
var GroupOrder = []Group{
	GroupLayout,
	GroupSpacing,
	GroupTypography,
	GroupColor,
	GroupBorders,
	GroupEffects,
}

// Affordance classifies what editing widget a property gets.
type Affordance int

const (
	// KindToken properties map to a token category and get a token picker.
	KindToken Affordance = iota
	// KindEnum properties have a fixed legal keyword set and get a closed
	// choice list.
	KindEnum
	// KindOpaque properties are shown as truncated read-only text.
	KindOpaque
)

// opaqueDisplayLimit truncates read-only values for display.
const opaqueDisplayLimit = 40

// propertySpec is one row of the fixed checklist.
type propertySpec struct {
	name     string
	group    Group
	tokenCat Category // non-empty: token-backed
	enum     []string // non-empty: enumerated keyword set
	defaults []string // values suppressed as no-op noise (normalized forms)
}

// propertyChecklist is the fixed, grouped property list the presenter walks.
// The defaults column must match the host's computed no-op values exactly;
// a wrong entry either shows noise or hides a real style.
var propertyChecklist = []propertySpec{
	// Layout
	{name: "display", group: GroupLayout,
		enum:     []string{"block", "inline", "inline-block", "flex", "inline-flex", "grid", "none"},
		defaults: []string{"inline"}},
	{name: "position", group: GroupLayout,
		enum:     []string{"static", "relative", "absolute", "fixed", "sticky"},
		defaults: []string{"static"}},
	{name: "width", group: GroupLayout, defaults: []string{"auto"}},
	{name: "height", group: GroupLayout, defaults: []string{"auto"}},
	{name: "min-width", group: GroupLayout, defaults: []string{"auto", "0px"}},
	{name: "max-width", group: GroupLayout, defaults: []string{"none"}},
	{name: "gap", group: GroupLayout, tokenCat: CategorySpacing, defaults: []string{"normal", "0px"}},
	{name: "flex-direction", group: GroupLayout,
		enum:     []string{"row", "row-reverse", "column", "column-reverse"},
		defaults: []string{"row"}},
	{name: "align-items", group: GroupLayout,
		enum:     []string{"stretch", "flex-start", "flex-end", "center", "baseline"},
		defaults: []string{"normal", "stretch"}},
	{name: "justify-content", group: GroupLayout,
		enum:     []string{"flex-start", "flex-end", "center", "space-between", "space-around", "space-evenly"},
		defaults: []string{"normal", "flex-start"}},
	{name: "z-index", group: GroupLayout, defaults: []string{"auto"}},
	{name: "overflow", group: GroupLayout,
		enum:     []string{"visible", "hidden", "scroll", "auto", "clip"},
		defaults: []string{"visible"}},

	// Spacing
	{name: "margin-top", group: GroupSpacing, tokenCat: CategorySpacing, defaults: []string{"0px"}},
	{name: "margin-right", group: GroupSpacing, tokenCat: CategorySpacing, defaults: []string{"0px"}},
	{name: "margin-bottom", group: GroupSpacing, tokenCat: CategorySpacing, defaults: []string{"0px"}},
	{name: "margin-left", group: GroupSpacing, tokenCat: CategorySpacing, defaults: []string{"0px"}},
	{name: "padding-top", group: GroupSpacing, tokenCat: CategorySpacing, defaults: []string{"0px"}},
	{name: "padding-right", group: GroupSpacing, tokenCat: CategorySpacing, defaults: []string{"0px"}},
	{name: "padding-bottom", group: GroupSpacing, tokenCat: CategorySpacing, defaults: []string{"0px"}},
	{name: "padding-left", group: GroupSpacing, tokenCat: CategorySpacing, defaults: []string{"0px"}},

	// Typography
	{name: "font-family", group: GroupTypography, tokenCat: CategoryTypography},
	{name: "font-size", group: GroupTypography, tokenCat: CategoryTypography},
	{name: "font-weight", group: GroupTypography,
		enum:     []string{"normal", "bold", "100", "200", "300", "400", "500", "600", "700", "800", "900"},
		defaults: []string{"normal", "400"}},
	{name: "line-height", group: GroupTypography, tokenCat: CategoryTypography, defaults: []string{"normal"}},
	{name: "letter-spacing", group: GroupTypography, defaults: []string{"normal"}},
	{name: "text-align", group: GroupTypography,
		enum:     []string{"left", "right", "center", "justify"},
		defaults: []string{"start", "left"}},
	{name: "text-transform", group: GroupTypography,
		enum:     []string{"none", "uppercase", "lowercase", "capitalize"},
		defaults: []string{"none"}},

	// Color
	{name: "color", group: GroupColor, tokenCat: CategoryColor},
	{name: "background-color", group: GroupColor, tokenCat: CategoryColor,
		defaults: []string{"transparent", "rgba(0, 0, 0, 0)"}},

	// Borders
	{name: "border-width", group: GroupBorders, tokenCat: CategoryBorder, defaults: []string{"0px"}},
	{name: "border-style", group: GroupBorders,
		enum:     []string{"none", "solid", "dashed", "dotted", "double"},
		defaults: []string{"none"}},
	{name: "border-color", group: GroupBorders, tokenCat: CategoryColor, defaults: []string{"currentcolor"}},
	{name: "border-top-left-radius", group: GroupBorders, tokenCat: CategoryRadius, defaults: []string{"0px"}},
	{name: "border-top-right-radius", group: GroupBorders, tokenCat: CategoryRadius, defaults: []string{"0px"}},
	{name: "border-bottom-right-radius", group: GroupBorders, tokenCat: CategoryRadius, defaults: []string{"0px"}},
	{name: "border-bottom-left-radius", group: GroupBorders, tokenCat: CategoryRadius, defaults: []string{"0px"}},

	// Effects
	{name: "opacity", group: GroupEffects, defaults: []string{"1"}},
	{name: "box-shadow", group: GroupEffects, tokenCat: CategoryShadow, defaults: []string{"none"}},
	{name: "transform", group: GroupEffects, defaults: []string{"none"}},
	{name: "transition", group: GroupEffects, defaults: []string{"none", "all 0s ease 0s"}},
	{name: "filter", group: GroupEffects, defaults: []string{"none"}},
	{name: "backdrop-filter", group: GroupEffects, tokenCat: CategoryGlass, defaults: []string{"none"}},
}

// CornerProperties are the four corner-radius properties in widget order.
var CornerProperties = []string{
	"border-top-left-radius",
	"border-top-right-radius",
	"border-bottom-right-radius",
	"border-bottom-left-radius",
}

// MarginProperties and PaddingProperties are the box-model sides in
// top/right/bottom/left order.
var (
	MarginProperties  = []string{"margin-top", "margin-right", "margin-bottom", "margin-left"}
	PaddingProperties = []string{"padding-top", "padding-right", "padding-bottom", "padding-left"}
)

// PropertyInfo is one row of the presented property list: the effective
// value plus the editing affordance the host should render for it.
type PropertyInfo struct {
	Property string
	Value    string
	Group    Group
	Kind     Affordance

	// TokenCategory and MatchedToken are set for KindToken. MatchedToken
	// is the reverse-lookup hit for the current value; empty means the
	// value is untokenized (not an error).
	TokenCategory Category
	MatchedToken  string

	// Options is the closed keyword set for KindEnum, with the current
	// value appended as a synthetic extra entry when it is out of set.
	Options []string

	// Display is the (possibly truncated) read-only text for KindOpaque.
	Display string

	// Modified reports a pending override for the element's selector.
	Modified bool
}

// Presenter computes which of an element's style properties are meaningful
// and how each should be edited. Its output is a pure function of the
// element's effective style and the override-store snapshot; widget state
// (linked corners etc.) is passed in explicitly, never captured.
type Presenter struct {
	registry *Registry
	store    *OverrideStore
}

func NewPresenter(registry *Registry, store *OverrideStore) *Presenter {
	return &Presenter{registry: registry, store: store}
}

// MeaningfulProperties walks the fixed checklist and returns, in checklist
// order, every property whose effective value is present and not a
// documented no-op default for that property.
func (p *Presenter) MeaningfulProperties(el Element) []PropertyInfo {
	if el == nil {
		return nil
	}

	var out []PropertyInfo
	for _, spec := range propertyChecklist {
		value := el.ReadStyle(spec.name)
		if value == "" || p.isDefault(spec, value) {
			continue
		}
		out = append(out, p.classify(el, spec, value))
	}
	return out
}

// Grouped partitions MeaningfulProperties output by group, preserving
// checklist order within each group.
func (p *Presenter) Grouped(el Element) map[Group][]PropertyInfo {
	grouped := make(map[Group][]PropertyInfo)
	for _, info := range p.MeaningfulProperties(el) {
		grouped[info.Group] = append(grouped[info.Group], info)
	}
	return grouped
}

func (p *Presenter) isDefault(spec propertySpec, value string) bool {
	norm := p.registry.Normalize(value)
	for _, def := range spec.defaults {
		if norm == p.registry.Normalize(def) {
			return true
		}
	}
	return false
}

func (p *Presenter) classify(el Element, spec propertySpec, value string) PropertyInfo {
	info := PropertyInfo{
		Property: spec.name,
		Value:    value,
		Group:    spec.group,
		Modified: p.store.IsModified(el, spec.name),
	}

	switch {
	case spec.tokenCat != "":
		info.Kind = KindToken
		info.TokenCategory = spec.tokenCat
		if name, ok := p.registry.ReverseLookup(value); ok {
			info.MatchedToken = name
		}

	case len(spec.enum) > 0:
		info.Kind = KindEnum
		info.Options = append([]string(nil), spec.enum...)
		// Never silently drop an out-of-set current value.
		if !containsString(info.Options, p.registry.Normalize(value)) {
			info.Options = append(info.Options, value)
		}

	default:
		info.Kind = KindOpaque
		info.Display = truncateValue(value, opaqueDisplayLimit)
	}

	return info
}

// SideValues holds a four-sided value set in top/right/bottom/left order.
type SideValues struct {
	Top, Right, Bottom, Left string
}

// Uniform reports whether all four sides carry the same value.
func (v SideValues) Uniform() bool {
	return v.Top == v.Right && v.Right == v.Bottom && v.Bottom == v.Left
}

// BoxModelView is the synthesized composite spacing widget: four-sided
// margin and padding values collapsed into one view.
type BoxModelView struct {
	Margin  SideValues
	Padding SideValues
}

// CornerRadiusView is the synthesized corner-radius widget. Linked mirrors
// the widget state passed in; when the four corners differ the widget shows
// them individually regardless.
type CornerRadiusView struct {
	TopLeft, TopRight, BottomRight, BottomLeft string
	Linked                                     bool
}

// Corners returns the four values in CornerProperties order.
func (v CornerRadiusView) Corners() SideValues {
	return SideValues{Top: v.TopLeft, Right: v.TopRight, Bottom: v.BottomRight, Left: v.BottomLeft}
}

// WidgetState is explicit per-widget state (linked/unlinked mode) passed
// into and returned from render calls so presenter output stays a pure
// function of (element, store snapshot).
type WidgetState struct {
	Linked bool
}

// BoxModel reads the composite spacing view for an element.
func (p *Presenter) BoxModel(el Element) BoxModelView {
	if el == nil {
		return BoxModelView{}
	}
	return BoxModelView{
		Margin:  readSides(el, MarginProperties),
		Padding: readSides(el, PaddingProperties),
	}
}

// CornerRadii reads the composite corner-radius view, carrying the caller's
// widget state through.
func (p *Presenter) CornerRadii(el Element, state WidgetState) CornerRadiusView {
	if el == nil {
		return CornerRadiusView{Linked: state.Linked}
	}
	return CornerRadiusView{
		TopLeft:     el.ReadStyle(CornerProperties[0]),
		TopRight:    el.ReadStyle(CornerProperties[1]),
		BottomRight: el.ReadStyle(CornerProperties[2]),
		BottomLeft:  el.ReadStyle(CornerProperties[3]),
		Linked:      state.Linked,
	}
}

func readSides(el Element, props []string) SideValues {
	return SideValues{
		Top:    el.ReadStyle(props[0]),
		Right:  el.ReadStyle(props[1]),
		Bottom: el.ReadStyle(props[2]),
		Left:   el.ReadStyle(props[3]),
	}
}

func truncateValue(value string, limit int) string {
	if len(value) <= limit {
		return value
	}
	return value[:limit-3] + "..."
}

func containsString(slice []string, val string) bool {
	for _, item := range slice {
		if item == val {
			return true
		}
	}
	return false
}
