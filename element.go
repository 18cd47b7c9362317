package xmldom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "fmt"

// Shape identifies the storage variant of a finalized Element. The builder
// classifies every element exactly once, when its end event arrives, into the
// most compact variant covering the element's populated fields.
type Shape uint8

const (
	// General elements carry any combination of text, attributes and children,
	// including none of them.
	General Shape = iota
	// Leaf elements carry text only.
	Leaf
	// List elements carry children only.
	List
	// Empty elements carry attributes only, think self-closing tags.
	Empty
)

func (sh Shape) String() string {
	switch sh {
	case Leaf:
		return "Leaf"
	case List:
		return "List"
	case Empty:
		return "Empty"
	}
	return "General"
}

// Element is one node of a document tree, corresponding to a single tag pair
// (or self-closing tag) in the source document. Elements are created by a
// Builder and are read-only once finalized; reads never depend on the shape
// an element was classified into.
type Element struct {
	shape      Shape
	name       string
	text       string
	attributes map[string]string
	children   []*Element
	parent     *Element // non-owning back-link for navigation, nil for the root
}

// newElement runs the shape classification and freezes a node. It is called
// exactly once per element, by the builder at the element's end event. The
// compact shapes drop unpopulated containers; General keeps whatever the
// caller handed in, populated or not.
func newElement(name, text string, attributes map[string]string, children []*Element) *Element {
	e := &Element{name: name}
	switch {
	case text != "" && len(children) == 0 && len(attributes) == 0:
		e.shape = Leaf
		e.text = text
	case text == "" && len(children) > 0 && len(attributes) == 0:
		e.shape = List
		e.children = children
	case text == "" && len(children) == 0 && len(attributes) > 0:
		e.shape = Empty
		e.attributes = attributes
	default:
		e.shape = General
		e.text = text
		e.attributes = attributes
		e.children = children
	}
	for _, ch := range e.children {
		ch.parent = e
	}
	return e
}

func (e *Element) String() string {
	return fmt.Sprintf("(Element %s #ch=%d)", e.name, len(e.children))
}

// Name returns the element's tag name. Names are never empty.
func (e *Element) Name() string {
	return e.name
}

// Shape returns the storage variant this element was classified into.
// Clients usually should not care.
func (e *Element) Shape() Shape {
	return e.shape
}

// Text returns the direct text content of this element, not including text of
// descendents. It is empty for elements without text.
func (e *Element) Text() string {
	return e.text
}

// Attribute returns the value for an attribute key of this element.
func (e *Element) Attribute(key string) (string, bool) {
	v, ok := e.attributes[key]
	return v, ok
}

// Attributes returns the attribute mapping of this element, nil if the
// element carries none. The map is the element's own storage and must be
// treated as read-only.
func (e *Element) Attributes() map[string]string {
	return e.attributes
}

// Parent returns the enclosing element, or nil for the root of the tree.
func (e *Element) Parent() *Element {
	return e.parent
}

// ChildCount returns the number of children-elements.
func (e *Element) ChildCount() int {
	return len(e.children)
}

// Child returns the n'th child element in document order.
func (e *Element) Child(n int) (*Element, bool) {
	if n < 0 || n >= len(e.children) {
		return nil, false
	}
	return e.children[n], true
}

// Children returns a slice with all children of an element, in document order.
func (e *Element) Children() []*Element {
	children := make([]*Element, len(e.children))
	copy(children, e.children)
	return children
}
