package vector

import "testing"

func TestConcat_JoinsToHighestKind(t *testing.T) {
	got := Concat(nil, LogicalOf(true), IntegerOf(2), NumericOf(3.5))
	nv, ok := got.(NumericVector)
	if !ok {
		t.Fatalf("result is not NumericVector, got %T", got)
	}
	want := []float64{1, 2, 3.5}
	for i, w := range want {
		v, _ := nv.At(i).Value()
		if v != w {
			t.Errorf("element %d = %v, want %v", i, v, w)
		}
	}
}

func TestConcat_Empty(t *testing.T) {
	got := Concat(nil)
	if !got.IsEmpty() {
		t.Errorf("Concat() with no arguments should be empty")
	}
}

func TestConcat_PreservesArgumentNamesForScalars(t *testing.T) {
	got := Concat([]string{"x", "y"}, NumericOf(1), NumericOf(2))
	names := got.Names()
	if names == nil {
		t.Fatalf("expected names to be carried through, got nil")
	}
	if names[0] != "x" || names[1] != "y" {
		t.Errorf("names = %v, want [x y]", names)
	}
}

func TestConcat_PreservesElementNamesOverArgumentNames(t *testing.T) {
	named := NumericOf(1, 2).WithNames([]string{"a", "b"})
	got := Concat([]string{"ignored"}, NumericVector{named})

	names := got.Names()
	if names == nil || names[0] != "a" || names[1] != "b" {
		t.Errorf("names = %v, want [a b]", names)
	}
}

func TestConcat_UnnamedStaysUnnamed(t *testing.T) {
	got := Concat(nil, NumericOf(1), NumericOf(2))
	if got.Names() != nil {
		t.Errorf("Names() = %v, want nil when nothing was named", got.Names())
	}
}
