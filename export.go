package cssinspect

import (
	"sort"
	"strings"
	"time"
)

// renderStylesheet serializes the override store into stylesheet text: one
// rule block per selector with pending overrides, in first-encountered
// selector order, properties sorted for determinism. Selectors with no
// properties cannot occur (the store drops empty maps), so nothing is
// elided here beyond skipping the loop.
func renderStylesheet(store *OverrideStore, now time.Time) string {
	var b strings.Builder

	b.WriteString("/* cssinspect export ")
	b.WriteString(now.Format(time.RFC3339))
	b.WriteString(" */\n")

	for _, selector := range store.Selectors() {
		props := store.OverridesFor(selector)
		if len(props) == 0 {
			continue
		}

		names := make([]string, 0, len(props))
		for name := range props {
			names = append(names, name)
		}
		sort.Strings(names)

		b.WriteString("\n")
		b.WriteString(selector)
		b.WriteString(" {\n")
		for _, name := range names {
			b.WriteString("  ")
			b.WriteString(name)
			b.WriteString(": ")
			b.WriteString(props[name])
			b.WriteString(";\n")
		}
		b.WriteString("}\n")
	}

	return b.String()
}
