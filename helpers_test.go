package cssinspect

import "fmt"

// testElement is a minimal host element: computed values from a map, inline
// overrides shadowing them, and an optional set of locked properties whose
// writes the fake host rejects.
type testElement struct {
	tag      string
	classes  []string
	computed map[string]string
	inline   map[string]string
	locked   map[string]bool
}

func newTestElement(tag string, classes []string, computed map[string]string) *testElement {
	if computed == nil {
		computed = map[string]string{}
	}
	return &testElement{
		tag:      tag,
		classes:  classes,
		computed: computed,
		inline:   map[string]string{},
		locked:   map[string]bool{},
	}
}

func (e *testElement) TagName() string   { return e.tag }
func (e *testElement) Classes() []string { return append([]string(nil), e.classes...) }

func (e *testElement) ReadStyle(property string) string {
	if v, ok := e.inline[property]; ok {
		return v
	}
	return e.computed[property]
}

func (e *testElement) HasInlineStyle(property string) bool {
	_, ok := e.inline[property]
	return ok
}

func (e *testElement) SetInlineStyle(property, value string) error {
	if e.locked[property] {
		return fmt.Errorf("property %s is locked", property)
	}
	e.inline[property] = value
	return nil
}

func (e *testElement) RemoveInlineStyle(property string) error {
	if e.locked[property] {
		return fmt.Errorf("property %s is locked", property)
	}
	delete(e.inline, property)
	return nil
}
