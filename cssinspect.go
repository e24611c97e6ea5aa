// Package cssinspect is a visual style inspector core: given a tree of
// rendered, styled elements, it resolves effective style values back into
// named design tokens, tracks per-selector property overrides with linear
// undo/redo, and exports the accumulated edits as stylesheet text.
//
// # Usage
//
//	registry := cssinspect.NewRegistry(cssinspect.DefaultTokens)
//	inspector := cssinspect.New(registry)
//
//	inspector.SelectElement(el)
//	props := inspector.MeaningfulProperties()
//	err := inspector.ApplyPropertyChange(nil, "background-color", "var(--color-accent-600)")
//	css := inspector.ExportStylesheet()
//
// The core reads already-computed style values through the Element interface
// supplied by the host environment and writes inline overrides back through
// it. It never parses a stylesheet grammar, never persists anything, and
// never computes layout. Widget rendering belongs to the host; the presenter
// only decides which properties are meaningful and what editing affordance
// each one gets.
//
// Overrides are keyed by rule selector, so two elements that resolve to the
// same selector share one override entry: an edit updates only the selected
// instance's live value but exports as a rule affecting every match. That
// divergence is a documented invariant of the export model.
//
// # CLI Tool
//
// cssinspect also provides a CLI tool. Install with:
//
//	go install github.com/yacobolo/cssinspect/cmd/cssinspect@latest
package cssinspect
