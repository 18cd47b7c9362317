package xmldom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/xmldom/maybe"
)

// ErrNoRoot is returned by Parse and ParseHTML if the input produced no
// document root, e.g. for empty input.
var ErrNoRoot = errors.New("document contains no root element")

// Parse reads a complete XML document into an element tree and returns its
// root. Tokenization is delegated to an encoding/xml decoder; Parse adapts
// its tokens to builder events and drives the builder synchronously to
// completion. There is no streaming and no recovery: a parse either
// completes in one pass or fails.
//
// A tokenizer-level error is returned unchanged. If the tokenizer reports no
// error but no element was completed either, Parse returns ErrNoRoot.
func Parse(data []byte) (*Element, error) {
	builder := NewBuilder()
	dec := xml.NewDecoder(bytes.NewReader(data))
	texts := textStack{}
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			tracer().Debugf("xml tokenizer: %v", err)
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			attributes := make(map[string]string, len(t.Attr))
			for _, a := range t.Attr {
				attributes[a.Name.Local] = a.Value
			}
			builder.StartElement(t.Name.Local, attributes)
			texts.push()
		case xml.EndElement:
			builder.EndElement(t.Name.Local, texts.pop())
		case xml.CharData:
			texts.append(string(t))
		}
		// directives, comments and processing instructions are dropped
	}
	root := builder.Finish()
	if root == nil {
		return nil, ErrNoRoot
	}
	return root, nil
}

// LoadFromFile reads and parses an XML file, best-effort. Every failure mode,
// unreadable file or broken document alike, collapses to Nothing; callers
// needing diagnostics should read the file themselves and use Parse.
func LoadFromFile(path string) maybe.Maybe[*Element] {
	data, err := os.ReadFile(path)
	if err != nil {
		tracer().Infof("cannot read %q: %v", path, err)
		return maybe.Nothing[*Element]()
	}
	root, err := Parse(data)
	if err != nil {
		tracer().Infof("cannot parse %q: %v", path, err)
		return maybe.Nothing[*Element]()
	}
	return maybe.Just(root)
}

// --- Text accumulation -----------------------------------------------------

// textStack accumulates direct text content per open element, so that every
// end event can carry the text collected since the matching start event.
// Node text is interleaved with child elements in mixed content, hence the
// accumulation cannot live in a single buffer.
type textStack []*strings.Builder

func (ts *textStack) push() {
	*ts = append(*ts, &strings.Builder{})
}

func (ts *textStack) append(s string) {
	if n := len(*ts); n > 0 {
		(*ts)[n-1].WriteString(s)
	}
	// text outside of any element is dropped
}

// pop returns the text accumulated for the innermost open element.
// Whitespace-only accumulation (indentation between child elements) reads as
// absent text.
func (ts *textStack) pop() string {
	n := len(*ts)
	if n == 0 {
		return ""
	}
	text := (*ts)[n-1].String()
	*ts = (*ts)[:n-1]
	if strings.TrimSpace(text) == "" {
		return ""
	}
	return text
}
