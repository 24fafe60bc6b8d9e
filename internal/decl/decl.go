// Package decl models the type declarations the analyzer operates on.
//
// A Decl is the structural view of a single annotated type declaration:
// its kind, its name, its generic parameter list, and, for interfaces,
// its explicit methods and embedded elements. It is built once per
// annotated declaration and never mutated.
package decl

import "go/ast"

// Kind distinguishes concrete type declarations from interface declarations.
type Kind int

const (
	// Concrete covers every non-interface type declaration: structs,
	// named basic types, slices, maps, and so on. They are all uniform
	// targets for marker assertions.
	Concrete Kind = iota

	// Interface covers interface type declarations.
	Interface
)

// Decl is the structural view of an annotated type declaration.
//
// Methods and Embeds are populated only when Kind is Interface, in
// declaration order. TypeParams is the declaration's type parameter list
// kept verbatim; generated assertions re-declare it unchanged.
type Decl struct {
	Kind       Kind
	Name       *ast.Ident
	TypeParams *ast.FieldList // nil for non-generic declarations
	Methods    []*ast.Field   // explicit interface methods
	Embeds     []ast.Expr     // embedded interface elements
}

// FromSpec builds a Decl from a parsed type declaration.
func FromSpec(spec *ast.TypeSpec) Decl {
	d := Decl{
		Kind:       Concrete,
		Name:       spec.Name,
		TypeParams: spec.TypeParams,
	}

	iface, ok := spec.Type.(*ast.InterfaceType)
	if !ok {
		return d
	}

	d.Kind = Interface

	if iface.Methods == nil {
		return d
	}

	for _, field := range iface.Methods.List {
		if len(field.Names) > 0 {
			d.Methods = append(d.Methods, field)
		} else {
			d.Embeds = append(d.Embeds, field.Type)
		}
	}

	return d
}

// TypeParamNames returns the declared type parameter names in order.
// Empty for non-generic declarations.
func (d Decl) TypeParamNames() []string {
	if d.TypeParams == nil {
		return nil
	}

	var names []string

	for _, field := range d.TypeParams.List {
		for _, name := range field.Names {
			names = append(names, name.Name)
		}
	}

	return names
}
