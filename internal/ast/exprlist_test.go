package ast

import (
	"reflect"
	"testing"
)

func TestExprList_PushReplacesExistingName(t *testing.T) {
	l := NewExprList(nil, nil)
	l = l.Push("x", &Number{Value: 1})
	l = l.Push("x", &Number{Value: 2})

	if l.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", l.Len())
	}
	if got := l.Value(0).(*Number).Value; got != 2 {
		t.Errorf("Value(0) = %v, want 2 (replaced)", got)
	}
}

func TestExprList_RemoveByName(t *testing.T) {
	l := NewExprList([]string{"a", "b", "c"}, []Node{&Number{Value: 1}, &Number{Value: 2}, &Number{Value: 3}})
	l = l.RemoveByName("b")

	if l.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", l.Len())
	}
	if name, _ := l.At(0); name != "a" {
		t.Errorf("At(0) name = %q, want \"a\"", name)
	}
	if name, _ := l.At(1); name != "c" {
		t.Errorf("At(1) name = %q, want \"c\"", name)
	}
}

func TestExprList_PopTrailing(t *testing.T) {
	l := NewExprList(
		[]string{"a", "", ""},
		[]Node{&Number{Value: 1}, &Number{Value: 2}, &Number{Value: 3}},
	)
	rest, popped := l.PopTrailing()

	if rest.Len() != 1 {
		t.Fatalf("rest.Len() = %d, want 1", rest.Len())
	}
	if len(popped) != 2 {
		t.Fatalf("len(popped) = %d, want 2", len(popped))
	}
	want := []float64{2, 3}
	for i, w := range want {
		if got := popped[i].(*Number).Value; got != w {
			t.Errorf("popped[%d] = %v, want %v", i, got, w)
		}
	}
}

func TestExprList_PopTrailingKeepsNamedTail(t *testing.T) {
	l := NewExprList([]string{"", "a"}, []Node{&Number{Value: 1}, &Number{Value: 2}})
	rest, popped := l.PopTrailing()

	if rest.Len() != 2 {
		t.Fatalf("PopTrailing should not strip a named trailing entry, rest.Len() = %d", rest.Len())
	}
	if len(popped) != 0 {
		t.Errorf("popped = %v, want empty", popped)
	}
}

func TestExprList_IndexOfName(t *testing.T) {
	l := NewExprList([]string{"", "b"}, []Node{&Number{Value: 1}, &Number{Value: 2}})
	if i := l.IndexOfName("b"); i != 1 {
		t.Errorf("IndexOfName(\"b\") = %d, want 1", i)
	}
	if i := l.IndexOfName("missing"); i != -1 {
		t.Errorf("IndexOfName(\"missing\") = %d, want -1", i)
	}
}

func TestExprList_Named(t *testing.T) {
	unnamed := NewExprList([]string{"", ""}, []Node{&Number{Value: 1}, &Number{Value: 2}})
	if unnamed.Named() {
		t.Errorf("Named() = true, want false")
	}
	named := NewExprList([]string{"", "x"}, []Node{&Number{Value: 1}, &Number{Value: 2}})
	if !named.Named() {
		t.Errorf("Named() = false, want true")
	}
}

func TestExprList_RemoveAtPreservesOrder(t *testing.T) {
	l := NewExprList([]string{"a", "b", "c"}, []Node{&Number{Value: 1}, &Number{Value: 2}, &Number{Value: 3}})
	l = l.RemoveAt(1)

	gotNames := []string{}
	for i := 0; i < l.Len(); i++ {
		n, _ := l.At(i)
		gotNames = append(gotNames, n)
	}
	if !reflect.DeepEqual(gotNames, []string{"a", "c"}) {
		t.Errorf("names after RemoveAt(1) = %v, want [a c]", gotNames)
	}
}
