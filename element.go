package cssinspect

import "errors"

// ErrHostMutation is returned (wrapped) when the host rejects a style write.
// A failed write must leave the override store and history unchanged.
var ErrHostMutation = errors.New("host mutation rejected")

// Element is the host-side view of one rendered, styled node. The core never
// computes layout or cascade itself; it reads already-computed values through
// this interface and writes overrides back through it.
//
// Implementations must be usable as map keys (pointer receivers are fine).
type Element interface {
	// TagName returns the element's tag identity ("div", "button").
	TagName() string

	// Classes returns the element's class annotations at call time.
	Classes() []string

	// ReadStyle returns the live effective value for a property, with any
	// inline override applied. Empty string means the host has no value.
	ReadStyle(property string) string

	// HasInlineStyle reports whether an inline value is currently set for
	// the property. Used when capturing originals so reset knows whether
	// to write the old value back or remove the inline style entirely.
	HasInlineStyle(property string) bool

	// SetInlineStyle writes an inline override for a property. An error
	// means the write took no visual effect.
	SetInlineStyle(property, value string) error

	// RemoveInlineStyle removes an inline override, restoring whatever
	// value the cascade computes.
	RemoveInlineStyle(property string) error
}

// ElementID is a stable integer handle for an element within one inspection
// session. Original-value records are keyed by handle so their ownership and
// lifetime are explicit rather than tied to host object identity.
type ElementID int

// elementArena assigns and resolves element handles. Handles are never
// reused within a session.
type elementArena struct {
	ids   map[Element]ElementID
	elems map[ElementID]Element
	next  ElementID
}

func newElementArena() *elementArena {
	return &elementArena{
		ids:   make(map[Element]ElementID),
		elems: make(map[ElementID]Element),
		next:  1,
	}
}

// handle returns the element's handle, assigning one on first sight.
func (a *elementArena) handle(el Element) ElementID {
	if id, ok := a.ids[el]; ok {
		return id
	}
	id := a.next
	a.next++
	a.ids[el] = id
	a.elems[id] = el
	return id
}

// element resolves a handle back to its element.
func (a *elementArena) element(id ElementID) (Element, bool) {
	el, ok := a.elems[id]
	return el, ok
}
