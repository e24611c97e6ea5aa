package hostdoc

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/yacobolo/cssinspect"
)

// Events is a scripted input-capture collaborator: it satisfies
// cssinspect.InputCapture and replays hover/select events into whatever
// handlers the inspector attached.
type Events struct {
	hover []func(cssinspect.Element)
	sel   []func(cssinspect.Element)
}

// OnHover registers a hover handler.
func (e *Events) OnHover(fn func(cssinspect.Element)) {
	e.hover = append(e.hover, fn)
}

// OnSelect registers a selection handler.
func (e *Events) OnSelect(fn func(cssinspect.Element)) {
	e.sel = append(e.sel, fn)
}

// EmitHover delivers a hover event.
func (e *Events) EmitHover(el cssinspect.Element) {
	for _, fn := range e.hover {
		fn(el)
	}
}

// EmitSelect delivers a selection event.
func (e *Events) EmitSelect(el cssinspect.Element) {
	for _, fn := range e.sel {
		fn(el)
	}
}

// SetStep edits one property on the current selection.
type SetStep struct {
	Property string `yaml:"property" validate:"required"`
	Value    string `yaml:"value" validate:"required"`
}

// LinkedStep edits a composite widget in linked mode.
type LinkedStep struct {
	Widget string `yaml:"widget" validate:"required,oneof=corners margin padding"`
	Value  string `yaml:"value" validate:"required"`
}

// Step is one scripted operation. Exactly one field should be set per step.
type Step struct {
	Select   string      `yaml:"select,omitempty"`
	Hover    string      `yaml:"hover,omitempty"`
	Set      *SetStep    `yaml:"set,omitempty"`
	Linked   *LinkedStep `yaml:"linked,omitempty"`
	Reset    string      `yaml:"reset,omitempty"`
	ResetAll bool        `yaml:"reset-all,omitempty"`
	Undo     bool        `yaml:"undo,omitempty"`
	Redo     bool        `yaml:"redo,omitempty"`
}

// Script is an ordered edit session replayed against an inspector.
type Script struct {
	Steps []Step `yaml:"steps"`
}

// LoadScript reads and validates a session script.
func LoadScript(path string) (*Script, error) {
	// #nosec G304 - path comes from trusted configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return ParseScript(data)
}

// ParseScript unmarshals and validates a session script.
func ParseScript(data []byte) (*Script, error) {
	var script Script
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}

	v := validator.New()
	for i, step := range script.Steps {
		if step.Set != nil {
			if err := v.Struct(step.Set); err != nil {
				return nil, fmt.Errorf("step %d: %w", i+1, err)
			}
		}
		if step.Linked != nil {
			if err := v.Struct(step.Linked); err != nil {
				return nil, fmt.Errorf("step %d: %w", i+1, err)
			}
		}
	}

	return &script, nil
}

// Run replays the script against an inspector over a document. Selection
// events flow through the Events collaborator so the script exercises the
// same attach path a real input-capture host would.
func (s *Script) Run(doc *Document, inspector *cssinspect.Inspector) error {
	events := &Events{}
	inspector.Attach(events)

	for i, step := range s.Steps {
		if err := runStep(doc, inspector, events, step); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return nil
}

func runStep(doc *Document, inspector *cssinspect.Inspector, events *Events, step Step) error {
	switch {
	case step.Select != "":
		node := doc.Find(step.Select)
		if node == nil {
			return fmt.Errorf("no element matches %q", step.Select)
		}
		events.EmitSelect(node)

	case step.Hover != "":
		node := doc.Find(step.Hover)
		if node == nil {
			return fmt.Errorf("no element matches %q", step.Hover)
		}
		events.EmitHover(node)

	case step.Set != nil:
		return inspector.ApplyPropertyChange(nil, step.Set.Property, step.Set.Value)

	case step.Linked != nil:
		return inspector.ApplyLinkedChange(nil, linkedProperties(step.Linked.Widget), step.Linked.Value)

	case step.Reset != "":
		return inspector.ResetProperty(nil, step.Reset)

	case step.ResetAll:
		return inspector.ResetAll()

	case step.Undo:
		return inspector.Undo()

	case step.Redo:
		return inspector.Redo()
	}
	return nil
}

func linkedProperties(widget string) []string {
	switch widget {
	case "margin":
		return cssinspect.MarginProperties
	case "padding":
		return cssinspect.PaddingProperties
	default:
		return cssinspect.CornerProperties
	}
}
