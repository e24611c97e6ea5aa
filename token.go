package cssinspect

// Category groups design tokens by the kind of value they produce.
type Category string

// Token categories in authoritative build order. When two tokens normalize to
// the same concrete value, the one inserted later into the reverse index wins,
// so this order (and declaration order within a category) decides the winner.
const (
	CategoryColor      Category = "color"
	CategorySpacing    Category = "spacing"
	CategoryTypography Category = "typography"
	CategoryRadius     Category = "radius"
	CategoryShadow     Category = "shadow"
	CategoryBorder     Category = "border"
	CategoryGlass      Category = "glass"
)

// CategoryOrder is the canonical build order for the reverse index.
var CategoryOrder = []Category{
	CategoryColor,
	CategorySpacing,
	CategoryTypography,
	CategoryRadius,
	CategoryShadow,
	CategoryBorder,
	CategoryGlass,
}

// Token is a named, canonical design value. Tokens are defined once at
// process start and never mutated.
type Token struct {
	Name     string   // "color-accent-500"
	Category Category // "color"
	Raw      string   // authored value: "#7C3AED", "0.5rem", ...
}

// Var renders the token as a CSS custom-property reference.
func (t Token) Var() string {
	return "var(--" + t.Name + ")"
}

// DefaultTokens is the built-in token table. Declaration order within each
// category is significant: pickers present tokens in this order, and the
// reverse index is built by walking CategoryOrder then this slice.
var DefaultTokens = []Token{
	// Colors - gray scale
	{"color-gray-50", CategoryColor, "#F9FAFB"},
	{"color-gray-100", CategoryColor, "#F3F4F6"},
	{"color-gray-200", CategoryColor, "#E5E7EB"},
	{"color-gray-300", CategoryColor, "#D1D5DB"},
	{"color-gray-400", CategoryColor, "#9CA3AF"},
	{"color-gray-500", CategoryColor, "#6B7280"},
	{"color-gray-600", CategoryColor, "#4B5563"},
	{"color-gray-700", CategoryColor, "#374151"},
	{"color-gray-800", CategoryColor, "#1F2937"},
	{"color-gray-900", CategoryColor, "#111827"},

	// Colors - accent scale
	{"color-accent-400", CategoryColor, "#A78BFA"},
	{"color-accent-500", CategoryColor, "#7C3AED"},
	{"color-accent-600", CategoryColor, "#6D28D9"},

	// Colors - semantic
	{"color-success", CategoryColor, "#10B981"},
	{"color-warning", CategoryColor, "#F59E0B"},
	{"color-error", CategoryColor, "#EF4444"},
	{"color-info", CategoryColor, "#3B82F6"},
	{"color-white", CategoryColor, "#FFFFFF"},
	{"color-black", CategoryColor, "#000000"},

	// Spacing scale (rem-based, geometric-ish progression)
	{"space-0", CategorySpacing, "0px"},
	{"space-1", CategorySpacing, "0.25rem"},
	{"space-2", CategorySpacing, "0.5rem"},
	{"space-3", CategorySpacing, "0.75rem"},
	{"space-4", CategorySpacing, "1rem"},
	{"space-6", CategorySpacing, "1.5rem"},
	{"space-8", CategorySpacing, "2rem"},
	{"space-12", CategorySpacing, "3rem"},

	// Typography
	{"font-size-xs", CategoryTypography, "0.75rem"},
	{"font-size-sm", CategoryTypography, "0.875rem"},
	{"font-size-md", CategoryTypography, "1rem"},
	{"font-size-lg", CategoryTypography, "1.125rem"},
	{"font-size-xl", CategoryTypography, "1.25rem"},
	{"font-size-2xl", CategoryTypography, "1.5rem"},
	{"font-family-sans", CategoryTypography, "Inter, system-ui, sans-serif"},
	{"font-family-mono", CategoryTypography, "JetBrains Mono, monospace"},
	{"leading-tight", CategoryTypography, "1.25"},
	{"leading-normal", CategoryTypography, "1.5"},
	{"leading-relaxed", CategoryTypography, "1.75"},

	// Corner radius
	{"radius-none", CategoryRadius, "0px"},
	{"radius-sm", CategoryRadius, "0.125rem"},
	{"radius-md", CategoryRadius, "0.375rem"},
	{"radius-lg", CategoryRadius, "0.5rem"},
	{"radius-xl", CategoryRadius, "0.75rem"},
	{"radius-full", CategoryRadius, "9999px"},

	// Shadows
	{"shadow-sm", CategoryShadow, "0 1px 2px 0 rgba(0, 0, 0, 0.05)"},
	{"shadow-md", CategoryShadow, "0 4px 6px -1px rgba(0, 0, 0, 0.1)"},
	{"shadow-lg", CategoryShadow, "0 10px 15px -3px rgba(0, 0, 0, 0.1)"},

	// Border widths
	{"border-thin", CategoryBorder, "1px"},
	{"border-medium", CategoryBorder, "2px"},
	{"border-thick", CategoryBorder, "4px"},

	// Glass (backdrop blur presets)
	{"glass-blur-sm", CategoryGlass, "blur(4px)"},
	{"glass-blur-md", CategoryGlass, "blur(12px)"},
	{"glass-blur-lg", CategoryGlass, "blur(24px)"},
}
