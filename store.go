package cssinspect

import (
	"errors"
	"fmt"
)

// originalRecord is the value in effect on a specific element instance
// before its first override, captured lazily and never overwritten.
type originalRecord struct {
	value  string
	inline bool // the value came from a pre-session inline style
}

// OverrideStore is the authoritative map of pending property overrides keyed
// by selector, plus per-element original-value records used for reset and
// export. Multiple elements sharing a selector share one override entry;
// editing one edits the rule, even though the live write lands on the
// concrete instance the operator interacted with.
//
// All state is session-scoped and in-memory. Not safe for concurrent use;
// the inspector drives it from a single event-handling goroutine.
type OverrideStore struct {
	arena *elementArena

	overrides     map[string]map[string]string
	selectorOrder []string // first-encountered order, drives export

	originals map[ElementID]map[string]originalRecord
}

func NewOverrideStore() *OverrideStore {
	return &OverrideStore{
		arena:     newElementArena(),
		overrides: make(map[string]map[string]string),
		originals: make(map[ElementID]map[string]originalRecord),
	}
}

// Handle returns the stable session handle for an element.
func (s *OverrideStore) Handle(el Element) ElementID {
	return s.arena.handle(el)
}

// RecordOriginal captures the element's current live value for a property if
// no record exists yet. Idempotent: later edits to the same property never
// overwrite the pre-session value. Reports whether a record was created.
func (s *OverrideStore) RecordOriginal(el Element, property string) bool {
	id := s.arena.handle(el)
	if _, ok := s.originals[id][property]; ok {
		return false
	}
	if s.originals[id] == nil {
		s.originals[id] = make(map[string]originalRecord)
	}
	s.originals[id][property] = originalRecord{
		value:  el.ReadStyle(property),
		inline: el.HasInlineStyle(property),
	}
	return true
}

// Original returns the recorded pre-session value for (element, property).
func (s *OverrideStore) Original(el Element, property string) (string, bool) {
	rec, ok := s.originals[s.arena.handle(el)][property]
	return rec.value, ok
}

// ApplyOverride records the original (if needed), writes the value as the
// element's live style, and books the override under the element's selector.
// Returns the previous live value for the history entry.
//
// The record-original / host-write / bookkeeping sequence is atomic with
// respect to failure: a rejected host write rolls back the original record
// and leaves the override map untouched.
func (s *OverrideStore) ApplyOverride(el Element, property, value string) (string, error) {
	id := s.arena.handle(el)
	selector := ResolveSelector(el)

	created := s.RecordOriginal(el, property)
	prev := el.ReadStyle(property)

	if err := el.SetInlineStyle(property, value); err != nil {
		if created {
			s.dropOriginal(id, property)
		}
		return "", fmt.Errorf("apply %s on %s: %w: %v", property, selector, ErrHostMutation, err)
	}

	s.setOverride(selector, property, value)
	return prev, nil
}

// ClearOverride removes the (selector, property) entry for the element's
// selector. Empty selector maps are dropped so the store never holds
// empty-map litter.
func (s *OverrideStore) ClearOverride(el Element, property string) {
	s.clearOverride(ResolveSelector(el), property)
}

// OverrideFor returns the pending override for (selector, property).
func (s *OverrideStore) OverrideFor(selector, property string) (string, bool) {
	v, ok := s.overrides[selector][property]
	return v, ok
}

// IsModified reports whether the element's selector has a pending override
// for the property.
func (s *OverrideStore) IsModified(el Element, property string) bool {
	_, ok := s.OverrideFor(ResolveSelector(el), property)
	return ok
}

// Selectors returns selectors with pending overrides in first-encountered
// order.
func (s *OverrideStore) Selectors() []string {
	out := make([]string, len(s.selectorOrder))
	copy(out, s.selectorOrder)
	return out
}

// OverridesFor returns a copy of the property map for a selector.
func (s *OverrideStore) OverridesFor(selector string) map[string]string {
	props := s.overrides[selector]
	out := make(map[string]string, len(props))
	for k, v := range props {
		out[k] = v
	}
	return out
}

// ResetAll restores every tracked (element, property) pair to its original
// value, then clears all overrides, original records, and hands the caller
// the signal to clear history. Reset is a hard session boundary: the
// bookkeeping is cleared unconditionally even if some host restores fail,
// and the joined error reports what could not be restored.
func (s *OverrideStore) ResetAll() error {
	var errs []error
	for id, props := range s.originals {
		el, ok := s.arena.element(id)
		if !ok {
			continue
		}
		for property, rec := range props {
			if err := restoreOriginal(el, property, rec); err != nil {
				errs = append(errs, err)
			}
		}
	}

	s.overrides = make(map[string]map[string]string)
	s.selectorOrder = nil
	s.originals = make(map[ElementID]map[string]originalRecord)

	return errors.Join(errs...)
}

// applyForward applies an entry's forward direction: the original edit, a
// redo, or a reset (NewIsOverride false). Host write happens first; the
// store is only touched on success.
func (s *OverrideStore) applyForward(el Element, entry HistoryEntry) error {
	id := s.arena.handle(el)

	if !entry.NewIsOverride {
		// Reset: restore the original and drop all bookkeeping.
		rec := originalRecord{value: entry.NewValue, inline: entry.OriginalInline}
		if err := restoreOriginal(el, entry.Property, rec); err != nil {
			return err
		}
		s.clearOverride(entry.Selector, entry.Property)
		s.dropOriginal(id, entry.Property)
		return nil
	}

	if err := el.SetInlineStyle(entry.Property, entry.NewValue); err != nil {
		return fmt.Errorf("redo %s on %s: %w: %v", entry.Property, entry.Selector, ErrHostMutation, err)
	}
	if !entry.OldIsOverride {
		s.ensureOriginal(id, entry.Property, originalRecord{
			value:  entry.OldValue,
			inline: entry.OriginalInline,
		})
	}
	s.setOverride(entry.Selector, entry.Property, entry.NewValue)
	return nil
}

// applyInverse reverts an entry: restores OldValue as live value and updates
// override and original bookkeeping accordingly.
func (s *OverrideStore) applyInverse(el Element, entry HistoryEntry) error {
	id := s.arena.handle(el)

	if !entry.OldIsOverride {
		// Undoing the first edit on this (element, property): the
		// override disappears and the original record with it.
		rec := originalRecord{value: entry.OldValue, inline: entry.OriginalInline}
		if err := restoreOriginal(el, entry.Property, rec); err != nil {
			return err
		}
		s.clearOverride(entry.Selector, entry.Property)
		s.dropOriginal(id, entry.Property)
		return nil
	}

	if err := el.SetInlineStyle(entry.Property, entry.OldValue); err != nil {
		return fmt.Errorf("undo %s on %s: %w: %v", entry.Property, entry.Selector, ErrHostMutation, err)
	}
	s.setOverride(entry.Selector, entry.Property, entry.OldValue)
	if !entry.NewIsOverride {
		// Undoing a reset re-establishes the original record it dropped;
		// the reset's new value was exactly that original.
		s.ensureOriginal(id, entry.Property, originalRecord{
			value:  entry.NewValue,
			inline: entry.OriginalInline,
		})
	}
	return nil
}

// restoreOriginal writes a recorded original back to the host: pre-session
// inline values are rewritten, otherwise the inline override is removed so
// the cascade value shows through.
func restoreOriginal(el Element, property string, rec originalRecord) error {
	var err error
	if rec.inline {
		err = el.SetInlineStyle(property, rec.value)
	} else {
		err = el.RemoveInlineStyle(property)
	}
	if err != nil {
		return fmt.Errorf("restore %s: %w: %v", property, ErrHostMutation, err)
	}
	return nil
}

func (s *OverrideStore) setOverride(selector, property, value string) {
	if _, ok := s.overrides[selector]; !ok {
		s.overrides[selector] = make(map[string]string)
		s.selectorOrder = append(s.selectorOrder, selector)
	}
	s.overrides[selector][property] = value
}

func (s *OverrideStore) clearOverride(selector, property string) {
	props, ok := s.overrides[selector]
	if !ok {
		return
	}
	delete(props, property)
	if len(props) == 0 {
		delete(s.overrides, selector)
		for i, sel := range s.selectorOrder {
			if sel == selector {
				s.selectorOrder = append(s.selectorOrder[:i], s.selectorOrder[i+1:]...)
				break
			}
		}
	}
}

func (s *OverrideStore) ensureOriginal(id ElementID, property string, rec originalRecord) {
	if _, ok := s.originals[id][property]; ok {
		return
	}
	if s.originals[id] == nil {
		s.originals[id] = make(map[string]originalRecord)
	}
	s.originals[id][property] = rec
}

func (s *OverrideStore) dropOriginal(id ElementID, property string) {
	delete(s.originals[id], property)
	if len(s.originals[id]) == 0 {
		delete(s.originals, id)
	}
}

// trackedPairs reports how many (element, property) original records exist.
func (s *OverrideStore) trackedPairs() int {
	n := 0
	for _, props := range s.originals {
		n += len(props)
	}
	return n
}
