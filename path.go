package xmldom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "strings"

/*
Paths are dot-separated sequences of literal element names, resolved over a
finished tree:

	doc.ElementAtPath("book.chapter.title")

A first component that is empty (the path starts with '.') or that equals the
node's own name anchors resolution at the node itself and does not consume a
child. Note the resulting ambiguity: from a node named "a", the path "a"
denotes the node itself even if it also has a child named "a". This is
long-standing behavior that callers rely on.
*/

// pathSteps splits a path into its components and applies the
// self-anchoring rule for the first one.
func (e *Element) pathSteps(path string) []string {
	steps := strings.Split(path, ".")
	if len(steps) > 0 && (steps[0] == "" || steps[0] == e.name) {
		steps = steps[1:]
	}
	return steps
}

// ElementAtPath resolves a path to a single element, matching each component
// against the first child with that name, in document order. It fails fast:
// a component without a matching child yields (nil, false).
func (e *Element) ElementAtPath(path string) (*Element, bool) {
	if e == nil {
		return nil, false
	}
	match := e
	for _, step := range e.pathSteps(path) {
		var found *Element
		for _, ch := range match.children {
			if ch.name == step {
				found = ch
				break
			}
		}
		if found == nil {
			return nil, false
		}
		match = found
	}
	return match, true
}

// ElementsAtPath resolves a path to all matching elements. For every path
// component the current match set is replaced by all equally-named children
// across the set, keeping the order of the original matches and document
// order within each. An empty set stops resolution immediately.
//
// Repeated calls with the same path on the same tree return equal results;
// resolution never mutates the tree.
func (e *Element) ElementsAtPath(path string) []*Element {
	if e == nil {
		return nil
	}
	matches := []*Element{e}
	for _, step := range e.pathSteps(path) {
		var next []*Element
		for _, m := range matches {
			for _, ch := range m.children {
				if ch.name == step {
					next = append(next, ch)
				}
			}
		}
		if len(next) == 0 {
			return nil
		}
		matches = next
	}
	return matches
}
