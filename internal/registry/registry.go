package registry

import (
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
)

// Classification is the registry's verdict for a referenced interface.
type Classification int

const (
	// Ordinary is an interface with no marker qualification.
	Ordinary Classification = iota

	// UserMarker is an interface declared as a marker with ifacemark:marker,
	// in this package or in a dependency.
	UserMarker

	// Auto is an interface that is marker-qualified by definition: the
	// behavior-free universe interfaces (any, comparable) and anything
	// listed in the -auto-marker flag.
	Auto

	// Unresolved means the reference does not name an interface type.
	Unresolved
)

// Fact marks an interface declared as a marker. Exported on the interface's
// type name so passes over dependent packages can classify it without
// re-reading its declaration.
type Fact struct{}

func (*Fact) AFact() {}

func (*Fact) String() string { return "marker" }

// autoEntry is one parsed -auto-marker flag element.
type autoEntry struct {
	pkgPath string
	name    string
}

// Registry answers marker-qualification queries for one analysis pass.
// It is read-only once built; the engine never writes back to it.
type Registry struct {
	pass  *analysis.Pass
	local map[types.Object]bool
	auto  []autoEntry
}

// New builds a Registry. declared holds the type objects of interfaces
// annotated with ifacemark:marker in this pass; extraAuto is the raw
// -auto-marker flag value.
func New(pass *analysis.Pass, declared map[types.Object]bool, extraAuto string) *Registry {
	return &Registry{
		pass:  pass,
		local: declared,
		auto:  parseAuto(extraAuto),
	}
}

// parseAuto parses the -auto-marker flag value.
// Format: comma-separated list of "pkg/path.Name" entries.
func parseAuto(s string) []autoEntry {
	var entries []autoEntry

	for part := range strings.SplitSeq(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		entry := autoEntry{name: part}
		if i := strings.LastIndex(part, "."); i >= 0 {
			entry.pkgPath = part[:i]
			entry.name = part[i+1:]
		}

		entries = append(entries, entry)
	}

	return entries
}

// ClassifyObject classifies a resolved type object.
func (r *Registry) ClassifyObject(obj types.Object) Classification {
	tn, ok := obj.(*types.TypeName)
	if !ok {
		return Unresolved
	}

	if tn.Pkg() == nil {
		// Universe scope. Only any and comparable carry no behavior;
		// error declares a method and stays ordinary.
		switch tn.Name() {
		case "any", "comparable":
			return Auto
		}

		if types.IsInterface(tn.Type()) {
			return Ordinary
		}

		return Unresolved
	}

	if !types.IsInterface(tn.Type()) {
		return Unresolved
	}

	if r.local[obj] {
		return UserMarker
	}

	if r.pass != nil {
		var fact Fact
		if r.pass.ImportObjectFact(obj, &fact) {
			return UserMarker
		}
	}

	if r.isAuto(tn) {
		return Auto
	}

	return Ordinary
}

// ClassifyExpr classifies an embedded interface element. Union and
// approximation elements never qualify as markers; an instantiated generic
// interface classifies as its generic declaration.
func (r *Registry) ClassifyExpr(expr ast.Expr) Classification {
	switch e := expr.(type) {
	case *ast.Ident:
		return r.classifyUse(e)
	case *ast.SelectorExpr:
		return r.classifyUse(e.Sel)
	case *ast.IndexExpr:
		return r.ClassifyExpr(e.X)
	case *ast.IndexListExpr:
		return r.ClassifyExpr(e.X)
	}

	return Ordinary
}

func (r *Registry) classifyUse(ident *ast.Ident) Classification {
	if r.pass == nil {
		return Unresolved
	}

	obj := r.pass.TypesInfo.Uses[ident]
	if obj == nil {
		return Unresolved
	}

	return r.ClassifyObject(obj)
}

// ResolveName resolves a directive payload name at the annotation site.
// Qualified names resolve through the file's imports; unqualified names
// through the package scope, then the universe scope. Returns nil when the
// name does not resolve.
func (r *Registry) ResolveName(file *ast.File, name string) types.Object {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return r.resolveQualified(file, name[:i], name[i+1:])
	}

	if obj := r.pass.Pkg.Scope().Lookup(name); obj != nil {
		return obj
	}

	return types.Universe.Lookup(name)
}

// resolveQualified resolves "qualifier.name" against the file's imports.
func (r *Registry) resolveQualified(file *ast.File, qualifier, name string) types.Object {
	if strings.Contains(qualifier, ".") {
		return nil
	}

	for _, imp := range file.Imports {
		path := strings.Trim(imp.Path.Value, `"`)

		pkg := importedPackage(r.pass.Pkg, path)
		if pkg == nil {
			continue
		}

		local := pkg.Name()
		if imp.Name != nil {
			local = imp.Name.Name
		}

		if local == qualifier {
			return pkg.Scope().Lookup(name)
		}
	}

	return nil
}

func importedPackage(pkg *types.Package, path string) *types.Package {
	for _, imp := range pkg.Imports() {
		if imp.Path() == path {
			return imp
		}
	}

	return nil
}

// isAuto checks tn against the parsed -auto-marker entries.
func (r *Registry) isAuto(tn *types.TypeName) bool {
	for _, entry := range r.auto {
		if entry.name != tn.Name() {
			continue
		}

		if entry.pkgPath == "" || (tn.Pkg() != nil && tn.Pkg().Path() == entry.pkgPath) {
			return true
		}
	}

	return false
}

// IsAssertableInterface reports whether obj names an interface type usable
// on the right-hand side of a marker assertion. comparable is an interface
// but not a valid variable type, so it is excluded.
func IsAssertableInterface(obj types.Object) bool {
	tn, ok := obj.(*types.TypeName)
	if !ok || !types.IsInterface(tn.Type()) {
		return false
	}

	if tn.Pkg() == nil && tn.Name() == "comparable" {
		return false
	}

	return true
}
