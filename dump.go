package xmldom

import (
	"fmt"
	"strings"

	tp "github.com/xlab/treeprint"
)

// Dump renders an element tree as indented text for diagnostics: tag name,
// attribute mapping, direct text, then the children's own dumps. The output
// is neither stable nor parseable; do not build on it.
func Dump(e *Element) string {
	if e == nil {
		return ""
	}
	printer := tp.New()
	printer.SetValue(dumpLabel(e))
	dumpChildren(printer, e)
	return printer.String()
}

func dumpChildren(printer tp.Tree, e *Element) {
	for _, ch := range e.children {
		if len(ch.children) == 0 {
			printer.AddNode(dumpLabel(ch))
			continue
		}
		branch := printer.AddBranch(dumpLabel(ch))
		dumpChildren(branch, ch)
	}
}

func dumpLabel(e *Element) string {
	var sb strings.Builder
	sb.WriteString(e.name)
	if len(e.attributes) > 0 {
		fmt.Fprintf(&sb, " %v", e.attributes)
	}
	if e.text != "" {
		fmt.Fprintf(&sb, " %q", e.text)
	}
	return sb.String()
}
