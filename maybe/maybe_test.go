package maybe_test

import (
	"testing"

	. "github.com/npillmayer/xmldom/maybe"
)

func TestMaybeMatch(t *testing.T) {
	x := Just(7) // infers type
	y := Nothing[int]()

	var v int
	switch m := x.Match(); m {
	case m.Just(&v):
		t.Logf("Just(%d)", v)
	case m.Nothing():
		t.Log("Nothing")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}

	var w int
	switch m := y.Match(); m {
	case m.Just(&w):
		t.Error("expected Nothing not to match Just, did")
	case m.Nothing():
		t.Log("Nothing")
	}
	if w != 0 {
		t.Errorf("expected w to stay 0, is %#v", w)
	}
}

func TestMaybeWithDefault(t *testing.T) {
	if x := Just(7).WithDefault(100); x != 7 {
		t.Errorf("expected Just(7) to unwrap to 7, is %d", x)
	}
	if y := Nothing[int]().WithDefault(100); y != 100 {
		t.Errorf("expected Nothing to default to 100, is %d", y)
	}
}
