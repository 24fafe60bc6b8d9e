// Package generate renders marker assertion declarations for annotated
// concrete types.
package generate

import (
	"fmt"
	"go/ast"
	"go/printer"
	"go/token"
	"strings"

	"github.com/hmarui/ifacemark/internal/decl"
)

// Impl is one generated marker assertion for a single interface.
// The interface reference is carried exactly as written in the directive;
// the generator never inspects the interface it asserts against.
type Impl struct {
	Iface      string
	Target     string
	TypeParams *ast.FieldList
}

// WrongTargetError reports a mark directive applied to an interface
// declaration.
type WrongTargetError struct {
	Name string
}

func (e *WrongTargetError) Error() string {
	return fmt.Sprintf("ifacemark:mark cannot be applied to interface type %s", e.Name)
}

// Build produces one assertion per requested interface name, in request
// order. Duplicate names produce duplicate assertions; rejecting a true
// duplicate is the compiler's job, not this generator's. The annotated
// declaration must be a concrete type.
func Build(d decl.Decl, names []string) ([]Impl, error) {
	if d.Kind != decl.Concrete {
		return nil, &WrongTargetError{Name: d.Name.Name}
	}

	impls := make([]Impl, 0, len(names))

	for _, name := range names {
		impls = append(impls, Impl{
			Iface:      name,
			Target:     d.Name.Name,
			TypeParams: d.TypeParams,
		})
	}

	return impls, nil
}

// Render formats the assertion as a Go declaration. Non-generic targets get
// a blank var assertion. Generic targets get a blank function that
// re-declares the target's type parameter list verbatim, so the assertion
// holds for every instantiation rather than a specific one.
func (im Impl) Render(fset *token.FileSet) string {
	if im.TypeParams == nil || len(im.TypeParams.List) == 0 {
		return fmt.Sprintf("var _ %s = (*%s)(nil)", im.Iface, im.Target)
	}

	params := renderTypeParams(fset, im.TypeParams)
	args := strings.Join(paramNames(im.TypeParams), ", ")

	return fmt.Sprintf("func _%s(v %s[%s]) { var _ %s = v }", params, im.Target, args, im.Iface)
}

// renderTypeParams echoes a type parameter list, bounds included, as it
// appears in the source declaration.
func renderTypeParams(fset *token.FileSet, fl *ast.FieldList) string {
	parts := make([]string, 0, len(fl.List))

	for _, field := range fl.List {
		names := make([]string, len(field.Names))
		for i, name := range field.Names {
			names[i] = name.Name
		}

		parts = append(parts, strings.Join(names, ", ")+" "+exprText(fset, field.Type))
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

func paramNames(fl *ast.FieldList) []string {
	var names []string

	for _, field := range fl.List {
		for _, name := range field.Names {
			names = append(names, name.Name)
		}
	}

	return names
}

func exprText(fset *token.FileSet, expr ast.Expr) string {
	var buf strings.Builder

	if err := printer.Fprint(&buf, fset, expr); err != nil {
		return ""
	}

	return buf.String()
}
