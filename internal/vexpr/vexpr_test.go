package vexpr

import (
	"context"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

func run(t *testing.T, src string) string {
	t.Helper()
	in := New()
	v, err := in.EvalSource(context.Background(), src)
	if err != nil {
		t.Fatalf("EvalSource(%q) error: %v", src, err)
	}
	return v.String()
}

func TestEvalSource_VectorArithmeticWithRecycling(t *testing.T) {
	snaps.MatchSnapshot(t, "vector_arithmetic", run(t, "(+ (c 1 2 3 4) (c 10 20))"))
}

func TestEvalSource_ComparisonYieldsLogicalVector(t *testing.T) {
	snaps.MatchSnapshot(t, "comparison", run(t, "(> (c 1 5 3) (c 2 2 2))"))
}

func TestEvalSource_IfElseBranchesOnVectorTruth(t *testing.T) {
	snaps.MatchSnapshot(t, "if_else", run(t, "(if (> 3 2) 100 200)"))
}

func TestEvalSource_WhileLoopAccumulates(t *testing.T) {
	src := `(block
		(<- total 0)
		(<- i 0)
		(while (< i 5)
			(block
				(<- total (+ total i))
				(<- i (+ i 1))))
		total)`
	snaps.MatchSnapshot(t, "while_accumulate", run(t, src))
}

func TestEvalSource_ForLoopWithBreak(t *testing.T) {
	src := `(block
		(<- seen (c))
		(for x (c 10 20 30 40)
			(block
				(if (== x 30) (break))
				(<- seen (c seen x))))
		seen)`
	snaps.MatchSnapshot(t, "for_break", run(t, src))
}

func TestEvalSource_FunctionWithDefaultArgument(t *testing.T) {
	src := `(block
		(<- greet (function (name (excited FALSE))
			(if excited name name)))
		(greet "ok"))`
	snaps.MatchSnapshot(t, "function_default", run(t, src))
}

func TestEvalSource_RecursiveFunction(t *testing.T) {
	src := `(block
		(<- fact (function (n)
			(if (<= n 1) 1 (* n (fact (- n 1))))))
		(fact 5))`
	snaps.MatchSnapshot(t, "recursive_function", run(t, src))
}

func TestEvalSource_LazyDefaultReferencesEarlierParam(t *testing.T) {
	src := `(block
		(<- f (function (x (y (+ x 1))) (+ x y)))
		(f 10))`
	snaps.MatchSnapshot(t, "lazy_default", run(t, src))
}

func TestEvalSource_QuoteAndEvalRoundTrip(t *testing.T) {
	src := `(block
		(<- x 41)
		(eval (quote (+ x 1))))`
	snaps.MatchSnapshot(t, "quote_eval", run(t, src))
}

func TestEvalSource_OrShortCircuitsWithoutForcingSecondOperand(t *testing.T) {
	src := `(block
		(<- called 0)
		(<- sideEffect (function () (block (<- called (+ called 1)) TRUE)))
		(or TRUE (sideEffect))
		called)`
	snaps.MatchSnapshot(t, "or_short_circuit", run(t, src))
}

func TestEvalSource_ListLiteralAndBuiltin(t *testing.T) {
	snaps.MatchSnapshot(t, "list_literal", run(t, `(list 1 "two" TRUE)`))
}

func TestEvalSource_NAPropagatesThroughArithmetic(t *testing.T) {
	snaps.MatchSnapshot(t, "na_propagation", run(t, "(+ (c 1 2) NA)"))
}

func TestEvalSource_NewEnvAndEval(t *testing.T) {
	src := `(block
		(<- e (new.env))
		(eval (quote (<- inner 99)) e)
		(eval (quote inner) e))`
	snaps.MatchSnapshot(t, "new_env", run(t, src))
}

func TestEvalSource_ClosureCapturesDefiningEnvironment(t *testing.T) {
	src := `(block
		(<- makeAdder (function (n) (function (x) (+ x n))))
		(<- addFive (makeAdder 5))
		(addFive 10))`
	snaps.MatchSnapshot(t, "closure_capture", run(t, src))
}
