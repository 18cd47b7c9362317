package xmldom

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestClassifyLeaf(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "xmldom.dom")
	defer teardown()
	//
	e := newElement("greeting", "hi", nil, nil)
	if e.Shape() != Leaf {
		t.Errorf("expected text-only element to classify as Leaf, is %s", e.Shape())
	}
	if e.Text() != "hi" {
		t.Errorf("expected text to read \"hi\", is %q", e.Text())
	}
	if e.Attributes() != nil {
		t.Errorf("expected attributes to read as absent, is %v", e.Attributes())
	}
	if e.ChildCount() != 0 {
		t.Errorf("expected no children, have %d", e.ChildCount())
	}
}

func TestClassifyList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "xmldom.dom")
	defer teardown()
	//
	first := newElement("first", "1", nil, nil)
	second := newElement("second", "2", nil, nil)
	e := newElement("pair", "", nil, []*Element{first, second})
	if e.Shape() != List {
		t.Errorf("expected children-only element to classify as List, is %s", e.Shape())
	}
	if e.Text() != "" {
		t.Errorf("expected text to read as absent, is %q", e.Text())
	}
	if ch, ok := e.Child(0); !ok || ch != first {
		t.Errorf("expected child 0 to be %v in document order, is %v", first, ch)
	}
	if ch, ok := e.Child(1); !ok || ch != second {
		t.Errorf("expected child 1 to be %v in document order, is %v", second, ch)
	}
}

func TestClassifyEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "xmldom.dom")
	defer teardown()
	//
	e := newElement("knob", "", map[string]string{"x": "1"}, nil)
	if e.Shape() != Empty {
		t.Errorf("expected attributes-only element to classify as Empty, is %s", e.Shape())
	}
	if v, ok := e.Attribute("x"); !ok || v != "1" {
		t.Errorf("expected attribute x=1, is %q", v)
	}
	if e.Text() != "" || e.ChildCount() != 0 {
		t.Error("expected text and children to read as absent, don't")
	}
}

func TestClassifyGeneral(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "xmldom.dom")
	defer teardown()
	//
	ch := newElement("inner", "x", nil, nil)
	e := newElement("mixed", "some text", nil, []*Element{ch})
	if e.Shape() != General {
		t.Errorf("expected mixed-content element to classify as General, is %s", e.Shape())
	}
	if e.Text() != "some text" {
		t.Errorf("expected text to stay readable, is %q", e.Text())
	}
	if e.ChildCount() != 1 {
		t.Errorf("expected children to stay readable, have %d", e.ChildCount())
	}
}

func TestClassifyBlankIsGeneral(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "xmldom.dom")
	defer teardown()
	//
	e := newElement("void", "", map[string]string{}, nil)
	if e.Shape() != General {
		t.Errorf("expected element with nothing populated to classify as General, is %s", e.Shape())
	}
}

func TestElementChildBounds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "xmldom.dom")
	defer teardown()
	//
	a := newElement("a", "a", nil, nil)
	b := newElement("b", "b", nil, nil)
	e := newElement("list", "", nil, []*Element{a, b})
	if _, ok := e.Child(2); ok {
		t.Error("expected child at index 2 of a 2-element list to be absent, isn't")
	}
	if _, ok := e.Child(-1); ok {
		t.Error("expected child at negative index to be absent, isn't")
	}
	if ch, ok := e.Child(0); !ok || ch.Name() != "a" {
		t.Errorf("expected child 0 to be <a>, is %v", ch)
	}
}

func TestElementParentLinks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "xmldom.dom")
	defer teardown()
	//
	ch := newElement("inner", "x", nil, nil)
	e := newElement("outer", "", nil, []*Element{ch})
	if ch.Parent() != e {
		t.Errorf("expected child's parent to be <outer>, is %v", ch.Parent())
	}
	if e.Parent() != nil {
		t.Errorf("expected root's parent to be nil, is %v", e.Parent())
	}
}
