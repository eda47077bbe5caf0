package builtins

import (
	"testing"

	"github.com/cwbudde/vexpr/internal/object"
	"github.com/cwbudde/vexpr/internal/vector"
)

type noContext struct{}

func (noContext) CurrentEnv() *object.Environment { return nil }
func (noContext) ParentEnv() *object.Environment  { return nil }

func num(vs ...float64) object.Value { return object.VectorValue{V: vector.NumericOf(vs...)} }

func TestAdd_Builtin(t *testing.T) {
	r := Default()
	fn, ok := r.Lookup("+")
	if !ok {
		t.Fatal("expected + to be registered")
	}
	out, err := fn([]object.Value{num(1, 2, 3), num(10)}, []string{"", ""}, noContext{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := out.(object.VectorValue).V.(vector.NumericVector)
	want := vector.NumericOf(11, 12, 13)
	if got.String() != want.String() {
		t.Errorf("+ = %s, want %s", got.String(), want.String())
	}
}

func TestAdd_WrongArgCountSignals(t *testing.T) {
	r := Default()
	fn, _ := r.Lookup("+")
	if _, err := fn([]object.Value{num(1)}, []string{""}, noContext{}); err == nil {
		t.Error("expected an error for a single argument")
	}
}

func TestDiv_IntegerByZeroSignals(t *testing.T) {
	r := Default()
	fn, _ := r.Lookup("/")
	a := object.VectorValue{V: vector.IntegerOf(5)}
	b := object.VectorValue{V: vector.IntegerOf(0)}
	if _, err := fn([]object.Value{a, b}, []string{"", ""}, noContext{}); err == nil {
		t.Error("expected integer division by zero to signal")
	}
}

func TestC_AllVectorsConcatenates(t *testing.T) {
	r := Default()
	fn, _ := r.Lookup("c")
	out, err := fn([]object.Value{num(1, 2), num(3)}, []string{"", ""}, noContext{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := out.(object.VectorValue).V
	if got.Len() != 3 {
		t.Errorf("c() length = %d, want 3", got.Len())
	}
}

func TestC_MixedKindsFallsBackToList(t *testing.T) {
	r := Default()
	fn, _ := r.Lookup("c")
	fnObj := &object.Function{}
	out, err := fn([]object.Value{num(1), fnObj}, []string{"", ""}, noContext{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := out.(object.ListValue); !ok {
		t.Errorf("c() with a non-vector argument should fall back to a list, got %T", out)
	}
}

func TestList_PreservesNames(t *testing.T) {
	r := Default()
	fn, _ := r.Lookup("list")
	out, err := fn([]object.Value{num(1), num(2)}, []string{"a", ""}, noContext{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lv := out.(object.ListValue)
	if v, ok := lv.Get("a"); !ok || v.(object.VectorValue).V.String() != num(1).(object.VectorValue).V.String() {
		t.Errorf("list(a = 1, 2) should bind name %q", "a")
	}
}

func TestEnvironmentFns_NoActiveFrameSignals(t *testing.T) {
	r := Default()
	fn, _ := r.Lookup("environment")
	if _, err := fn(nil, nil, noContext{}); err == nil {
		t.Error("expected environment() with no active frame to signal")
	}
}

func TestNewEnv_ReturnsEnvironmentValue(t *testing.T) {
	r := Default()
	fn, _ := r.Lookup("new.env")
	out, err := fn(nil, nil, noContext{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := out.(object.EnvironmentValue); !ok {
		t.Errorf("new.env() should return an EnvironmentValue, got %T", out)
	}
}
