// Package ctxroot detects root contexts created below package main.
package ctxroot

import (
	"go/ast"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// Analyzer detects context.Background/TODO outside package main and tests.
// Library code takes the caller's context so cancellation and the signal
// handler reach every backend call.
var Analyzer = &analysis.Analyzer{
	Name:     "ctxroot",
	Doc:      "detects context.Background/TODO calls outside package main and tests",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

var rootFuncs = map[string]bool{
	"Background": true,
	"TODO":       true,
}

func run(pass *analysis.Pass) (interface{}, error) {
	if pass.Pkg.Name() == "main" {
		return nil, nil
	}

	inspect := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.CallExpr)(nil),
	}

	inspect.Preorder(nodeFilter, func(n ast.Node) {
		call := n.(*ast.CallExpr)

		if strings.HasSuffix(pass.Fset.File(call.Pos()).Name(), "_test.go") {
			return
		}

		sel, ok := call.Fun.(*ast.SelectorExpr)
		if !ok {
			return
		}

		obj := pass.TypesInfo.Uses[sel.Sel]
		if obj == nil || obj.Pkg() == nil || obj.Pkg().Path() != "context" {
			return
		}

		if rootFuncs[obj.Name()] {
			pass.Reportf(call.Pos(),
				"context.%s called outside package main - accept a context.Context instead",
				obj.Name())
		}
	})

	return nil, nil
}
