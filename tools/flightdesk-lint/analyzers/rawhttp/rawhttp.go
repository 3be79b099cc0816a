// Package rawhttp detects outbound net/http calls made outside the request
// client package.
package rawhttp

import (
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// Analyzer reports package-level net/http request helpers used anywhere but
// the httpapi package, where headers, body scrubbing and 204 handling live.
var Analyzer = &analysis.Analyzer{
	Name:     "rawhttp",
	Doc:      "detects net/http request calls outside the httpapi package",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

// clientPackage is the last path element of the package allowed to call out.
const clientPackage = "httpapi"

var requestFuncs = map[string]bool{
	"Get":                   true,
	"Head":                  true,
	"Post":                  true,
	"PostForm":              true,
	"NewRequest":            true,
	"NewRequestWithContext": true,
	"DefaultClient":         true,
}

func run(pass *analysis.Pass) (interface{}, error) {
	if isClientPackage(pass.Pkg.Path()) {
		return nil, nil
	}

	inspect := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.SelectorExpr)(nil),
	}

	inspect.Preorder(nodeFilter, func(n ast.Node) {
		sel := n.(*ast.SelectorExpr)

		obj := pass.TypesInfo.Uses[sel.Sel]
		if !isPackageLevel(obj, "net/http") {
			return
		}

		if requestFuncs[obj.Name()] {
			pass.Reportf(sel.Pos(),
				"http.%s used outside %s - send requests through httpapi.Client",
				obj.Name(), clientPackage)
		}
	})

	return nil, nil
}

func isClientPackage(path string) bool {
	path = strings.TrimSuffix(path, "_test")
	return path == clientPackage || strings.HasSuffix(path, "/"+clientPackage)
}

// isPackageLevel excludes methods such as http.Header.Get.
func isPackageLevel(obj types.Object, pkgPath string) bool {
	if obj == nil || obj.Pkg() == nil || obj.Pkg().Path() != pkgPath {
		return false
	}
	return obj.Parent() == obj.Pkg().Scope()
}
