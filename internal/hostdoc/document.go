// Package hostdoc is an in-memory host environment for the inspector core:
// an element tree loaded from a YAML fixture, with computed style values
// supplied directly and inline overrides tracked per node. It stands in for
// the rendering host during CLI sessions and tests.
package hostdoc

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Node is one element in the document tree. It implements
// cssinspect.Element: computed values come straight from the fixture, and
// inline overrides written by the inspector shadow them.
type Node struct {
	Tag       string            `yaml:"tag" validate:"required"`
	ClassList []string          `yaml:"classes"`
	Computed  map[string]string `yaml:"styles"`
	Locked    []string          `yaml:"locked"`
	Children  []*Node           `yaml:"children"`

	inline map[string]string
}

// TagName returns the node's tag identity.
func (n *Node) TagName() string { return n.Tag }

// Classes returns a copy of the node's class annotations.
func (n *Node) Classes() []string {
	return append([]string(nil), n.ClassList...)
}

// ReadStyle returns the live effective value: the inline override when one
// is set, otherwise the fixture's computed value.
func (n *Node) ReadStyle(property string) string {
	if v, ok := n.inline[property]; ok {
		return v
	}
	return n.Computed[property]
}

// HasInlineStyle reports whether an inline value is set for the property.
func (n *Node) HasInlineStyle(property string) bool {
	_, ok := n.inline[property]
	return ok
}

// SetInlineStyle writes an inline override. Properties listed under
// `locked` in the fixture simulate a host that rejects the write.
func (n *Node) SetInlineStyle(property, value string) error {
	if n.isLocked(property) {
		return fmt.Errorf("property %s is locked", property)
	}
	if n.inline == nil {
		n.inline = make(map[string]string)
	}
	n.inline[property] = value
	return nil
}

// RemoveInlineStyle removes an inline override, exposing the computed value
// again.
func (n *Node) RemoveInlineStyle(property string) error {
	if n.isLocked(property) {
		return fmt.Errorf("property %s is locked", property)
	}
	delete(n.inline, property)
	return nil
}

func (n *Node) isLocked(property string) bool {
	for _, p := range n.Locked {
		if p == property {
			return true
		}
	}
	return false
}

// Document is a loaded element tree.
type Document struct {
	Root *Node `yaml:"root" validate:"required"`
}

// Load reads and parses a document fixture from disk.
func Load(path string) (*Document, error) {
	// #nosec G304 - path comes from trusted configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return Parse(data)
}

// Parse unmarshals and validates a document fixture.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	if doc.Root == nil {
		return nil, fmt.Errorf("parse document: missing root element")
	}

	v := validator.New()
	var invalid error
	doc.Walk(func(n *Node) bool {
		if err := v.Struct(n); err != nil {
			invalid = fmt.Errorf("invalid element: %w", err)
			return false
		}
		return true
	})
	if invalid != nil {
		return nil, invalid
	}

	return &doc, nil
}

// Walk visits every node depth-first until fn returns false.
func (d *Document) Walk(fn func(*Node) bool) {
	walk(d.Root, fn)
}

func walk(n *Node, fn func(*Node) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	for _, child := range n.Children {
		if !walk(child, fn) {
			return false
		}
	}
	return true
}

// Find returns the first node matching a query: ".class" matches by class
// annotation, anything else by tag name. Nil when nothing matches.
func (d *Document) Find(query string) *Node {
	var found *Node
	d.Walk(func(n *Node) bool {
		if matches(n, query) {
			found = n
			return false
		}
		return true
	})
	return found
}

// FindAll returns every node matching a query in document order.
func (d *Document) FindAll(query string) []*Node {
	var out []*Node
	d.Walk(func(n *Node) bool {
		if matches(n, query) {
			out = append(out, n)
		}
		return true
	})
	return out
}

func matches(n *Node, query string) bool {
	if class, ok := strings.CutPrefix(query, "."); ok {
		for _, c := range n.ClassList {
			if c == class {
				return true
			}
		}
		return false
	}
	return n.Tag == query
}
