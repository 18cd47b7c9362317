/*
Package xmldom builds in-memory element trees for XML-ish documents and
offers a small dot-path query language to navigate them.

The package sits above a tokenizer: the low-level scanning of raw bytes into
start/end events is delegated to a collaborator (encoding/xml for XML input,
golang.org/x/net/html for lenient HTML input). A Builder consumes the ordered
event stream and assembles finalized, read-only Elements; queries then operate
on the finished tree.

	root, err := xmldom.Parse(data)
	if err != nil {
		…
	}
	title, ok := root.ElementAtPath("book.title")

Finished trees are immutable and may be read from multiple goroutines without
locking. A Builder, in contrast, is single-threaded bookkeeping and must not
be shared.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package xmldom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'xmldom.dom'.
func tracer() tracing.Trace {
	return tracing.Select("xmldom.dom")
}
