package cssinspect

import (
	"fmt"
	"io"
	"sort"
)

// ReportConfig controls terminal report rendering.
type ReportConfig struct {
	UseColors bool
}

// WritePropertyReport renders the grouped meaningful-property list for an
// element. The host owns real widget rendering; this is the terminal view
// of the same presenter output.
func WritePropertyReport(w io.Writer, p *Presenter, el Element, config ReportConfig) {
	if el == nil {
		return
	}

	selector := ResolveSelector(el)
	fmt.Fprintln(w, RenderStyle(StyleHeader, selector, config.UseColors))

	grouped := p.Grouped(el)
	for _, group := range GroupOrder {
		infos := grouped[group]
		if len(infos) == 0 {
			continue
		}

		fmt.Fprintf(w, "\n%s\n", RenderStyle(StyleHeader, string(group), config.UseColors))
		for _, info := range infos {
			writePropertyLine(w, info, config)
		}
	}

	corners := p.CornerRadii(el, WidgetState{Linked: true})
	if sides := corners.Corners(); sides.Uniform() && sides.Top != "" {
		fmt.Fprintf(w, "\n%s\n", RenderStyle(StyleMuted, "corner radii linked: "+sides.Top, config.UseColors))
	}
}

func writePropertyLine(w io.Writer, info PropertyInfo, config ReportConfig) {
	marker := " "
	if info.Modified {
		marker = RenderStyle(StyleModified, "*", config.UseColors)
	}

	switch info.Kind {
	case KindToken:
		if info.MatchedToken != "" {
			fmt.Fprintf(w, "%s %-28s %s (%s)\n", marker, info.Property,
				RenderStyle(StyleToken, info.MatchedToken, config.UseColors),
				RenderStyle(StyleMuted, info.Value, config.UseColors))
		} else {
			fmt.Fprintf(w, "%s %-28s %s\n", marker, info.Property, info.Value)
		}
	case KindEnum:
		fmt.Fprintf(w, "%s %-28s %s %s\n", marker, info.Property, info.Value,
			RenderStyle(StyleMuted, fmt.Sprintf("(one of %d)", len(info.Options)), config.UseColors))
	default:
		fmt.Fprintf(w, "%s %-28s %s\n", marker, info.Property,
			RenderStyle(StyleMuted, info.Display, config.UseColors))
	}
}

// WriteTokenReport lists a category's tokens (or all categories when cat is
// empty). Declaration order by default; alphabetical re-sorts a copy for
// display only.
func WriteTokenReport(w io.Writer, registry *Registry, cat Category, alphabetical bool, config ReportConfig) {
	categories := CategoryOrder
	if cat != "" {
		categories = []Category{cat}
	}

	for _, category := range categories {
		tokens := registry.TokensInCategory(category)
		if len(tokens) == 0 {
			continue
		}

		fmt.Fprintf(w, "%s (%d)\n", RenderStyle(StyleHeader, string(category), config.UseColors), len(tokens))

		display := append([]Token(nil), tokens...)
		if alphabetical {
			sort.Slice(display, func(i, j int) bool {
				return display[i].Name < display[j].Name
			})
		}

		for _, tok := range display {
			fmt.Fprintf(w, "  %-24s %s\n", RenderStyle(StyleToken, tok.Name, config.UseColors), tok.Raw)
		}
		fmt.Fprintln(w)
	}
}
