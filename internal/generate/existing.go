package generate

import (
	"go/ast"
	"go/token"
)

// assertionKey identifies one (target type, interface) assertion pair.
type assertionKey struct {
	target string
	iface  string
}

// Existing is the set of marker assertions already present in a package.
// Once a suggested fix has been applied, the spliced assertions are
// ordinary source; this set keeps the analyzer from re-reporting them.
type Existing map[assertionKey]bool

// Has reports whether an assertion for iface on target is present.
// iface is compared textually, as written at the assertion site.
func (e Existing) Has(target, iface string) bool {
	return e[assertionKey{target: target, iface: iface}]
}

// ScanExisting collects marker assertions from the package's files.
// It recognizes the two shapes the generator emits:
//
//	var _ Iface = (*Target)(nil)
//	func _[...](v Target[...]) { var _ Iface = v }
func ScanExisting(fset *token.FileSet, files []*ast.File) Existing {
	existing := make(Existing)

	for _, file := range files {
		for _, d := range file.Decls {
			switch d := d.(type) {
			case *ast.GenDecl:
				scanVarDecl(fset, d, existing)
			case *ast.FuncDecl:
				scanBlankFunc(fset, d, existing)
			}
		}
	}

	return existing
}

// scanVarDecl matches `var _ Iface = (*Target)(nil)`.
func scanVarDecl(fset *token.FileSet, d *ast.GenDecl, existing Existing) {
	if d.Tok != token.VAR {
		return
	}

	for _, spec := range d.Specs {
		vs, ok := spec.(*ast.ValueSpec)
		if !ok || len(vs.Names) != 1 || vs.Names[0].Name != "_" {
			continue
		}

		if vs.Type == nil || len(vs.Values) != 1 {
			continue
		}

		target, ok := nilPointerTarget(vs.Values[0])
		if !ok {
			continue
		}

		existing[assertionKey{target: target, iface: exprText(fset, vs.Type)}] = true
	}
}

// nilPointerTarget matches `(*Target)(nil)` and returns the target name.
func nilPointerTarget(expr ast.Expr) (string, bool) {
	call, ok := expr.(*ast.CallExpr)
	if !ok || len(call.Args) != 1 {
		return "", false
	}

	arg, ok := call.Args[0].(*ast.Ident)
	if !ok || arg.Name != "nil" {
		return "", false
	}

	paren, ok := call.Fun.(*ast.ParenExpr)
	if !ok {
		return "", false
	}

	star, ok := paren.X.(*ast.StarExpr)
	if !ok {
		return "", false
	}

	return baseTypeName(star.X)
}

// scanBlankFunc matches the generic assertion form: a blank function whose
// single parameter names the target type and whose body is blank var
// assertions against that parameter.
func scanBlankFunc(fset *token.FileSet, d *ast.FuncDecl, existing Existing) {
	if d.Name.Name != "_" || d.Recv != nil || d.Body == nil {
		return
	}

	params := d.Type.Params
	if params == nil || len(params.List) != 1 {
		return
	}

	target, ok := baseTypeName(params.List[0].Type)
	if !ok {
		return
	}

	for _, stmt := range d.Body.List {
		declStmt, ok := stmt.(*ast.DeclStmt)
		if !ok {
			continue
		}

		gen, ok := declStmt.Decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.VAR {
			continue
		}

		for _, spec := range gen.Specs {
			vs, ok := spec.(*ast.ValueSpec)
			if !ok || len(vs.Names) != 1 || vs.Names[0].Name != "_" || vs.Type == nil {
				continue
			}

			existing[assertionKey{target: target, iface: exprText(fset, vs.Type)}] = true
		}
	}
}

// baseTypeName unwraps generic instantiations down to the base identifier.
func baseTypeName(expr ast.Expr) (string, bool) {
	switch e := expr.(type) {
	case *ast.Ident:
		return e.Name, true
	case *ast.IndexExpr:
		return baseTypeName(e.X)
	case *ast.IndexListExpr:
		return baseTypeName(e.X)
	}

	return "", false
}
