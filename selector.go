package cssinspect

import "strings"

// internalClassPrefixes marks classes the inspector adds for its own
// bookkeeping (selection outline, preview-area wrappers, picker widgets).
// They never participate in selector derivation.
var internalClassPrefixes = []string{"si-", "_"}

// ResolveSelector derives the rule selector that overrides on this element
// are keyed (and exported) under. It is a pure function of the element's
// class set at call time and is recomputed on each access.
//
// Precedence after filtering internal classes:
//
//	modifier class (BEM "block--variant")
//	element class  (BEM "block__part")
//	first remaining class
//	tag name
//
// An element with zero qualifying classes resolves to its bare tag name; an
// override on such a selector affects every element of that tag. That
// coarse-graining is deliberate and visible in the export.
func ResolveSelector(el Element) string {
	classes := qualifyingClasses(el.Classes())

	for _, class := range classes {
		if strings.Contains(class, "--") {
			return "." + class
		}
	}
	for _, class := range classes {
		if strings.Contains(class, "__") {
			return "." + class
		}
	}
	if len(classes) > 0 {
		return "." + classes[0]
	}
	return el.TagName()
}

// qualifyingClasses filters out inspector-internal classes.
func qualifyingClasses(classes []string) []string {
	out := make([]string, 0, len(classes))
	for _, class := range classes {
		if class == "" || isInternalClass(class) {
			continue
		}
		out = append(out, class)
	}
	return out
}

func isInternalClass(class string) bool {
	for _, prefix := range internalClassPrefixes {
		if strings.HasPrefix(class, prefix) {
			return true
		}
	}
	return false
}
