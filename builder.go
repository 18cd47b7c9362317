package xmldom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// draft is the construction-time counterpart of Element: mutable, builder
// internal, and never handed out to clients. Finalizing a draft (by running
// the shape classification) is the one-way conversion into an Element.
type draft struct {
	name       string
	attributes map[string]string
	children   []*Element // finalized children, attached at their end events
	parent     *draft
}

// Builder assembles a document tree from ordered element-boundary events, as
// emitted by a tokenizer: for every element exactly one start event before
// any events of its descendents, and exactly one end event—carrying the
// element's direct text—after all of them. The builder relies on this
// well-formed depth-first order and does not validate it.
//
// A Builder drives one tree to completion and is not safe for concurrent
// use. The finished tree, in contrast, is immutable and may be read from
// multiple goroutines.
type Builder struct {
	root      *Element
	current   *draft
	ancestors []*draft // redundant with the draft parent chain, kept in lockstep
}

// NewBuilder creates an empty Builder, ready to receive events.
func NewBuilder() *Builder {
	return &Builder{}
}

// StartElement opens a new element with a tag name and its attributes.
// Children are not linked to their parent here; that happens at the matching
// end event, so a parent's children list only ever holds finalized elements.
func (b *Builder) StartElement(name string, attributes map[string]string) {
	d := &draft{name: name, attributes: attributes}
	if b.current == nil {
		b.current = d
		return
	}
	d.parent = b.current
	b.ancestors = append(b.ancestors, b.current)
	b.current = d
}

// EndElement closes the element most recently opened. text is the direct text
// content the tokenizer accumulated since the start event. The element is
// classified into its final shape, attached to its parent, and construction
// ascends one level.
//
// An end event with no open element is traced and ignored; a balanced event
// stream never produces one. A tag-name mismatch is traced as well, but the
// open element is closed regardless—enforcing balance is the tokenizer's job.
func (b *Builder) EndElement(name string, text string) {
	d := b.current
	if d == nil {
		tracer().Infof("builder dropping end event </%s> without open element", name)
		return
	}
	if d.name != name {
		tracer().Infof("builder closing <%s> on end event </%s>", d.name, name)
	}
	e := newElement(d.name, text, d.attributes, d.children)
	if d.parent != nil {
		d.parent.children = append(d.parent.children, e)
	} else if b.root == nil {
		b.root = e // the root is set at most once
	}
	b.current = d.parent
	if len(b.ancestors) > 0 && b.current != nil {
		b.ancestors = b.ancestors[:len(b.ancestors)-1]
	}
}

// Depth returns the number of elements currently open.
func (b *Builder) Depth() int {
	if b.current == nil {
		return 0
	}
	return len(b.ancestors) + 1
}

// Finish returns the root of the finished tree, or nil if the event stream
// completed no element. Callers—normally just the parse facade—must not call
// Finish before the event source signaled end-of-input.
func (b *Builder) Finish() *Element {
	return b.root
}
