package xmldom_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/xmldom"
)

func TestDump(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "xmldom.dom")
	defer teardown()
	//
	root, err := xmldom.Parse([]byte(`<a x="1"><b>hello</b><c/></a>`))
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	out := xmldom.Dump(root)
	t.Logf("dump =\n%s", out)
	for _, want := range []string{"a", "x:1", "b", `"hello"`, "c"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected dump to mention %q, doesn't", want)
		}
	}
}

func TestDumpNil(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "xmldom.dom")
	defer teardown()
	//
	if out := xmldom.Dump(nil); out != "" {
		t.Errorf("expected dump of nil to be empty, is %q", out)
	}
}
