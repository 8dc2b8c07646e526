package lexdump_test

import (
	"os"

	"github.com/coolc/lextest/compiler/internal/lexdump"
	"github.com/coolc/lextest/compiler/internal/token"
)

func ExampleDump() {
	src := token.NewSliceSource([]token.Token{
		{Code: token.CLASS, Line: 1},
		{Code: token.TYPEID, Line: 1, Value: token.Symbol("Main")},
		{Code: token.INHERITS, Line: 1},
		{Code: token.TYPEID, Line: 1, Value: token.Symbol("IO")},
		{Code: token.ERROR, Line: 2, Value: token.Message("Unmatched *)")},
		{Code: token.RBrace, Line: 3},
	})
	_, _ = lexdump.Dump(os.Stdout, "main.cl", src)
	// Output:
	// #name "main.cl"
	// #1 CLASS
	// #1 TYPEID Main
	// #1 INHERITS
	// #1 TYPEID IO
	// #2 ERROR Unmatched *)
}
