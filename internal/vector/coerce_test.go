package vector

import "testing"

func TestCoerce_IdentityIsNoOp(t *testing.T) {
	v := NumericOf(1, 2, 3)
	got := Coerce(v, Numeric)
	if got.(NumericVector).Len() != 3 {
		t.Fatalf("identity coercion changed length")
	}
}

func TestCoerce_CharacterToIntegerIntroducesNA(t *testing.T) {
	cv := CharacterOf("1", "x", "3")

	iv, introducedNA := cv.ParseInteger()
	if !introducedNA {
		t.Errorf("introducedNA = false, want true")
	}
	if v, ok := iv.At(0).Value(); !ok || v != 1 {
		t.Errorf("element 0 = %v (ok=%v), want 1", v, ok)
	}
	if _, ok := iv.At(1).Value(); ok {
		t.Errorf("element 1 should be NA")
	}
	if v, ok := iv.At(2).Value(); !ok || v != 3 {
		t.Errorf("element 2 = %v (ok=%v), want 3", v, ok)
	}
}

func TestCoerce_CharacterToNumericIntroducesNA(t *testing.T) {
	cv := CharacterOf("1.5", "nope")

	nv, introducedNA := cv.ParseNumeric()
	if !introducedNA {
		t.Errorf("introducedNA = false, want true")
	}
	if v, ok := nv.At(0).Value(); !ok || v != 1.5 {
		t.Errorf("element 0 = %v (ok=%v), want 1.5", v, ok)
	}
}

func TestCoerce_LogicalFromCharacter(t *testing.T) {
	cv := CharacterOf("TRUE", "FALSE", "T", "F", "maybe")
	lv := cv.AsLogical()

	want := []NA[bool]{Some(true), Some(false), Some(true), Some(false), Missing[bool]()}
	for i, w := range want {
		got := lv.At(i)
		wv, wok := w.Value()
		gv, gok := got.Value()
		if wok != gok || (wok && wv != gv) {
			t.Errorf("element %d = %v (ok=%v), want %v (ok=%v)", i, gv, gok, wv, wok)
		}
	}
}

func TestCoerce_IntegerToCharacter(t *testing.T) {
	iv := IntegerOf(1, 2, 3)
	cv := iv.AsCharacter()
	if s, _ := cv.At(0).Value(); s != "1" {
		t.Errorf("element 0 = %q, want \"1\"", s)
	}
}

func TestNA_MapPropagatesMissing(t *testing.T) {
	m := Missing[int]()
	mapped := MapNA(m, func(n int) int { return n * 2 })
	if !mapped.IsNA() {
		t.Errorf("MapNA over a missing value should stay missing")
	}
}

func TestNA_MapAppliesOverPresent(t *testing.T) {
	s := Some(21)
	mapped := MapNA(s, func(n int) int { return n * 2 })
	v, ok := mapped.Value()
	if !ok || v != 42 {
		t.Errorf("MapNA(Some(21)) = %v (ok=%v), want 42", v, ok)
	}
}
