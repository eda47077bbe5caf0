package reader

import (
	"testing"

	"github.com/cwbudde/vexpr/internal/ast"
)

func mustParse(t *testing.T, src string) ast.Node {
	t.Helper()
	n, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", src, err)
	}
	return n
}

func TestParse_NumberLiteral(t *testing.T) {
	n := mustParse(t, "3.5")
	num, ok := n.(*ast.Number)
	if !ok || num.Value != 3.5 {
		t.Errorf("got %#v, want Number{3.5}", n)
	}
}

func TestParse_IntegerLiteral(t *testing.T) {
	n := mustParse(t, "42L")
	i, ok := n.(*ast.Integer)
	if !ok || i.Value != 42 {
		t.Errorf("got %#v, want Integer{42}", n)
	}
}

func TestParse_NegativeNumberVersusSubtractCall(t *testing.T) {
	n := mustParse(t, "-5")
	if num, ok := n.(*ast.Number); !ok || num.Value != -5 {
		t.Errorf("bare -5 should parse as a negative number literal, got %#v", n)
	}
	n = mustParse(t, "(- 5 3)")
	call, ok := n.(*ast.Call)
	if !ok {
		t.Fatalf("(- 5 3) should parse as a Call, got %#v", n)
	}
	sym, ok := call.Head.(*ast.Symbol)
	if !ok || sym.Name != "-" {
		t.Errorf("call head should be symbol '-', got %#v", call.Head)
	}
}

func TestParse_StringLiteral(t *testing.T) {
	n := mustParse(t, `"hello\nworld"`)
	s, ok := n.(*ast.String)
	if !ok || s.Value != "hello\nworld" {
		t.Errorf("got %#v, want String{hello\\nworld}", n)
	}
}

func TestParse_BoolAndNullKeywords(t *testing.T) {
	if _, ok := mustParse(t, "TRUE").(*ast.Bool); !ok {
		t.Error("TRUE should parse as a Bool")
	}
	if b := mustParse(t, "FALSE").(*ast.Bool); b.Value {
		t.Error("FALSE should parse as Bool{false}")
	}
	if _, ok := mustParse(t, "NULL").(*ast.Null); !ok {
		t.Error("NULL should parse as ast.Null")
	}
}

func TestParse_NADesugarsToNiladicCall(t *testing.T) {
	n := mustParse(t, "NA")
	call, ok := n.(*ast.Call)
	if !ok {
		t.Fatalf("NA should parse as a Call, got %#v", n)
	}
	sym, ok := call.Head.(*ast.Symbol)
	if !ok || sym.Name != "NA" || call.Args.Len() != 0 {
		t.Errorf("NA should desugar to a zero-arg call to NA, got %s", call.String())
	}
}

func TestParse_SimpleCall(t *testing.T) {
	n := mustParse(t, "(+ (c 1 2 3) (c 10 20))")
	call, ok := n.(*ast.Call)
	if !ok {
		t.Fatalf("expected a Call, got %#v", n)
	}
	sym, ok := call.Head.(*ast.Symbol)
	if !ok || sym.Name != "+" {
		t.Fatalf("head should be symbol '+', got %#v", call.Head)
	}
	if call.Args.Len() != 2 {
		t.Fatalf("expected 2 args, got %d", call.Args.Len())
	}
	_, first := call.Args.At(0)
	inner, ok := first.(*ast.Call)
	if !ok {
		t.Fatalf("first arg should itself be a Call, got %#v", first)
	}
	innerSym := inner.Head.(*ast.Symbol)
	if innerSym.Name != "c" || inner.Args.Len() != 3 {
		t.Errorf("first arg should be c(1, 2, 3), got %s", inner.String())
	}
}

func TestParse_FunctionWithDefault(t *testing.T) {
	n := mustParse(t, "(function (x (y (+ x 1))) y)")
	fn, ok := n.(*ast.Function)
	if !ok {
		t.Fatalf("expected a Function, got %#v", n)
	}
	if fn.Formals.Len() != 2 {
		t.Fatalf("expected 2 formals, got %d", fn.Formals.Len())
	}
	name0, def0 := fn.Formals.At(0)
	if name0 != "x" || def0 != nil {
		t.Errorf("formal 0 should be required x with no default, got name=%q def=%v", name0, def0)
	}
	name1, def1 := fn.Formals.At(1)
	if name1 != "y" {
		t.Errorf("formal 1 should be named y, got %q", name1)
	}
	defCall, ok := def1.(*ast.Call)
	if !ok {
		t.Fatalf("formal y's default should be a Call, got %#v", def1)
	}
	if sym := defCall.Head.(*ast.Symbol); sym.Name != "+" {
		t.Errorf("default expr head should be '+', got %q", sym.Name)
	}
	body, ok := fn.Body.(*ast.Symbol)
	if !ok || body.Name != "y" {
		t.Errorf("body should be symbol y, got %#v", fn.Body)
	}
}

func TestParse_IfWithoutElse(t *testing.T) {
	n := mustParse(t, "(if TRUE 1)")
	ifNode, ok := n.(*ast.If)
	if !ok {
		t.Fatalf("expected an If, got %#v", n)
	}
	if ifNode.Else != nil {
		t.Errorf("no else branch should leave Else nil, got %#v", ifNode.Else)
	}
}

func TestParse_IfWithElse(t *testing.T) {
	n := mustParse(t, "(if FALSE 1 2)")
	ifNode := n.(*ast.If)
	if ifNode.Else == nil {
		t.Error("expected an else branch")
	}
}

func TestParse_ForLoop(t *testing.T) {
	n := mustParse(t, "(for x (c 1 2 3) (block (+ x 1)))")
	forNode, ok := n.(*ast.For)
	if !ok {
		t.Fatalf("expected a For, got %#v", n)
	}
	if forNode.Var != "x" {
		t.Errorf("loop variable = %q, want x", forNode.Var)
	}
	if _, ok := forNode.Body.(*ast.Block); !ok {
		t.Errorf("body should be a Block, got %#v", forNode.Body)
	}
}

func TestParse_WhileLoop(t *testing.T) {
	n := mustParse(t, "(while (< i 3) (<- i (+ i 1)))")
	if _, ok := n.(*ast.While); !ok {
		t.Fatalf("expected a While, got %#v", n)
	}
}

func TestParse_BlockSequence(t *testing.T) {
	n := mustParse(t, "(block 1 2 3)")
	block, ok := n.(*ast.Block)
	if !ok || len(block.Body) != 3 {
		t.Fatalf("expected a 3-element Block, got %#v", n)
	}
}

func TestParse_BreakContinueReturn(t *testing.T) {
	if _, ok := mustParse(t, "(break)").(*ast.Break); !ok {
		t.Error("(break) should parse as ast.Break")
	}
	if _, ok := mustParse(t, "(continue)").(*ast.Continue); !ok {
		t.Error("(continue) should parse as ast.Continue")
	}
	ret := mustParse(t, "(return 7)").(*ast.Return)
	if ret.Value == nil {
		t.Error("(return 7) should carry a Value")
	}
	retBare := mustParse(t, "(return)").(*ast.Return)
	if retBare.Value != nil {
		t.Error("(return) with no argument should leave Value nil")
	}
}

func TestParse_ListLiteral(t *testing.T) {
	n := mustParse(t, "(list 1 2 3)")
	list, ok := n.(*ast.List)
	if !ok || list.Elements.Len() != 3 {
		t.Fatalf("expected a 3-element List, got %#v", n)
	}
}

func TestParse_InlineLambdaApplication(t *testing.T) {
	n := mustParse(t, "((function (x) (+ x 1)) 5)")
	call, ok := n.(*ast.Call)
	if !ok {
		t.Fatalf("expected a Call, got %#v", n)
	}
	if _, ok := call.Head.(*ast.Function); !ok {
		t.Errorf("call head should be an inline Function, got %#v", call.Head)
	}
	if call.Args.Len() != 1 {
		t.Errorf("expected 1 arg, got %d", call.Args.Len())
	}
}

func TestParse_Comment(t *testing.T) {
	n := mustParse(t, "// a comment\n42")
	num, ok := n.(*ast.Number)
	if !ok || num.Value != 42 {
		t.Errorf("comment should be skipped, got %#v", n)
	}
}

func TestParseProgram_MultipleTopLevelExprsWrapInBlock(t *testing.T) {
	n, err := ParseProgram("(<- x 1) (<- y 2) (+ x y)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	block, ok := n.(*ast.Block)
	if !ok || len(block.Body) != 3 {
		t.Fatalf("expected a 3-statement Block, got %#v", n)
	}
}

func TestParseProgram_SingleExprIsNotWrapped(t *testing.T) {
	n, err := ParseProgram("42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := n.(*ast.Number); !ok {
		t.Errorf("a single top-level expr should not be wrapped in a Block, got %#v", n)
	}
}

func TestParse_UnterminatedListSignalsSyntaxError(t *testing.T) {
	_, err := Parse("(+ 1 2")
	if err == nil {
		t.Fatal("expected a syntax error for an unterminated call")
	}
	if _, ok := err.(*SyntaxError); !ok {
		t.Errorf("expected a *SyntaxError, got %T", err)
	}
}

func TestParse_TrailingInputSignalsSyntaxError(t *testing.T) {
	_, err := Parse("1 2")
	if err == nil {
		t.Error("expected a syntax error for unexpected trailing input")
	}
}
