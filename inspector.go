package cssinspect

import "time"

// InputCapture is the external collaborator delivering hover and selection
// events with concrete element references. The inspector registers its
// handlers; the collaborator owns event capture itself.
type InputCapture interface {
	OnHover(func(Element))
	OnSelect(func(Element))
}

// Inspector ties the registry, override store, history, and presenter into
// the session facade the host drives. All operations complete synchronously
// within the handler that triggered them; the inspector is single-threaded
// by contract. Introducing concurrency requires synchronizing the store,
// history, and arena as a unit, since record-original / apply / push-history
// must be atomic per edit.
type Inspector struct {
	registry  *Registry
	store     *OverrideStore
	history   *History
	presenter *Presenter

	selected Element
	hovered  Element
}

// New builds an inspector over the given token registry.
func New(registry *Registry) *Inspector {
	store := NewOverrideStore()
	return &Inspector{
		registry:  registry,
		store:     store,
		history:   NewHistory(),
		presenter: NewPresenter(registry, store),
	}
}

// Attach wires the inspector's selection handlers into an input-capture
// collaborator.
func (in *Inspector) Attach(capture InputCapture) {
	capture.OnHover(in.HoverElement)
	capture.OnSelect(in.SelectElement)
}

func (in *Inspector) Registry() *Registry   { return in.registry }
func (in *Inspector) Store() *OverrideStore { return in.store }
func (in *Inspector) History() *History     { return in.history }
func (in *Inspector) Presenter() *Presenter { return in.presenter }

// SelectElement makes el the current selection target.
func (in *Inspector) SelectElement(el Element) {
	in.selected = el
}

// HoverElement tracks the currently hovered element.
func (in *Inspector) HoverElement(el Element) {
	in.hovered = el
}

// Selected returns the current selection, nil when nothing is selected.
func (in *Inspector) Selected() Element { return in.selected }

// Hovered returns the currently hovered element, nil when none.
func (in *Inspector) Hovered() Element { return in.hovered }

// MeaningfulProperties presents the current selection's property list. An
// empty result for a missing selection is the correct terminal behavior.
func (in *Inspector) MeaningfulProperties() []PropertyInfo {
	return in.presenter.MeaningfulProperties(in.selected)
}

// ApplyPropertyChange edits one property on an element (nil means the
// current selection). The live write lands on that concrete instance, but
// the override is booked — and exported — at selector granularity: other
// elements resolving to the same selector share the entry.
//
// On success the edit is pushed onto the undo history; a rejected host
// write leaves store and history unchanged.
func (in *Inspector) ApplyPropertyChange(el Element, property, value string) error {
	el = in.target(el)
	if el == nil {
		return nil
	}

	selector := ResolveSelector(el)
	id := in.store.Handle(el)
	_, hadOverride := in.store.OverrideFor(selector, property)

	prev, err := in.store.ApplyOverride(el, property, value)
	if err != nil {
		return err
	}

	in.history.Record(HistoryEntry{
		Element:        id,
		Selector:       selector,
		Property:       property,
		OldValue:       prev,
		NewValue:       value,
		OldIsOverride:  hadOverride,
		NewIsOverride:  true,
		OriginalInline: in.store.originals[id][property].inline,
	})
	return nil
}

// ApplyLinkedChange propagates one edit to several properties (the linked
// corner or box-model widget). Each side is recorded as a separate,
// independently undoable history entry; one undo reverts only the most
// recent side.
func (in *Inspector) ApplyLinkedChange(el Element, properties []string, value string) error {
	el = in.target(el)
	if el == nil {
		return nil
	}
	for _, property := range properties {
		if err := in.ApplyPropertyChange(el, property, value); err != nil {
			return err
		}
	}
	return nil
}

// ResetProperty restores a property to its recorded pre-session value and
// clears its override. The reset itself is undoable. No-ops when the
// property was never edited.
func (in *Inspector) ResetProperty(el Element, property string) error {
	el = in.target(el)
	if el == nil {
		return nil
	}

	id := in.store.Handle(el)
	rec, ok := in.store.originals[id][property]
	if !ok {
		return nil
	}

	selector := ResolveSelector(el)
	_, hadOverride := in.store.OverrideFor(selector, property)

	entry := HistoryEntry{
		Element:        id,
		Selector:       selector,
		Property:       property,
		OldValue:       el.ReadStyle(property),
		NewValue:       rec.value,
		OldIsOverride:  hadOverride,
		NewIsOverride:  false,
		OriginalInline: rec.inline,
	}

	if err := in.store.applyForward(el, entry); err != nil {
		return err
	}
	in.history.Record(entry)
	return nil
}

// ResetAll restores every tracked value and clears overrides, originals,
// and both history stacks unconditionally. Reset is a hard session
// boundary; export and undo state do not survive it.
func (in *Inspector) ResetAll() error {
	err := in.store.ResetAll()
	in.history.Clear()
	return err
}

// Undo reverts the most recent edit. No-op when the undo stack is empty; a
// rejected host write leaves both stacks unchanged.
func (in *Inspector) Undo() error {
	entry, ok := in.history.PeekUndo()
	if !ok {
		return nil
	}
	el, ok := in.store.arena.element(entry.Element)
	if !ok {
		in.history.CommitUndo()
		return nil
	}
	if err := in.store.applyInverse(el, entry); err != nil {
		return err
	}
	in.history.CommitUndo()
	return nil
}

// Redo reapplies the most recently undone edit. No-op on an empty redo
// stack.
func (in *Inspector) Redo() error {
	entry, ok := in.history.PeekRedo()
	if !ok {
		return nil
	}
	el, ok := in.store.arena.element(entry.Element)
	if !ok {
		in.history.CommitRedo()
		return nil
	}
	if err := in.store.applyForward(el, entry); err != nil {
		return err
	}
	in.history.CommitRedo()
	return nil
}

// ExportStylesheet serializes pending overrides into stylesheet text. The
// hand-off of that text to a clipboard or file is the host's concern and
// does not touch inspector state.
func (in *Inspector) ExportStylesheet() string {
	return renderStylesheet(in.store, time.Now())
}

func (in *Inspector) target(el Element) Element {
	if el != nil {
		return el
	}
	return in.selected
}
