package xmldom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"bytes"
	"io"

	"golang.org/x/net/html"
)

// voidElements never receive an end tag in HTML; the adapter closes them
// right after their start event.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// ParseHTML reads an HTML fragment or document into an element tree, driving
// the same builder as Parse with events from the x/net/html tokenizer. Tag
// names arrive lowercased, comments and doctypes are dropped.
//
// HTML is forgiving, and so is this adapter: void elements (br, img, …) are
// closed immediately, stray end tags are ignored, and elements still open at
// end of input are closed bottom-up. ErrNoRoot is returned if no element was
// completed at all.
func ParseHTML(data []byte) (*Element, error) {
	builder := NewBuilder()
	z := html.NewTokenizer(bytes.NewReader(data))
	texts := textStack{}
	var open []string // names of open elements, for auto-closing
loop:
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				tracer().Debugf("html tokenizer: %v", err)
				return nil, err
			}
			break loop
		case html.StartTagToken:
			t := z.Token()
			builder.StartElement(t.Data, attributeMap(t.Attr))
			if voidElements[t.Data] {
				builder.EndElement(t.Data, "")
				continue
			}
			texts.push()
			open = append(open, t.Data)
		case html.SelfClosingTagToken:
			t := z.Token()
			builder.StartElement(t.Data, attributeMap(t.Attr))
			builder.EndElement(t.Data, "")
		case html.EndTagToken:
			t := z.Token()
			if len(open) == 0 {
				tracer().Infof("ignoring stray end tag </%s>", t.Data)
				continue
			}
			open = open[:len(open)-1]
			builder.EndElement(t.Data, texts.pop())
		case html.TextToken:
			texts.append(z.Token().Data)
		}
	}
	for len(open) > 0 { // input ended with elements still open
		name := open[len(open)-1]
		open = open[:len(open)-1]
		builder.EndElement(name, texts.pop())
	}
	root := builder.Finish()
	if root == nil {
		return nil, ErrNoRoot
	}
	return root, nil
}

func attributeMap(attrs []html.Attribute) map[string]string {
	m := make(map[string]string, len(attrs))
	for _, a := range attrs {
		m[a.Key] = a.Val
	}
	return m
}
