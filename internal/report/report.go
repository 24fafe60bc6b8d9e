// Package report converts engine results into analysis diagnostics.
// Every failure maps 1:1 onto one diagnostic with a precise position;
// nothing here ever aborts the pass.
package report

import (
	"fmt"
	"go/token"
	"strings"

	"golang.org/x/tools/go/analysis"

	"github.com/hmarui/ifacemark/internal/directive"
	"github.com/hmarui/ifacemark/internal/validate"
)

// ParseError reports a malformed directive payload.
func ParseError(pass *analysis.Pass, err *directive.ParseError) {
	pass.Reportf(err.Pos, "%s", err.Error())
}

// Orphan reports a directive with no type declaration on the next line.
func Orphan(pass *analysis.Pass, d directive.Directive) {
	pass.Reportf(d.Pos, "ifacemark:%s directive must be attached to a type declaration", d.Kind.Verb())
}

// MarkOnInterface reports a mark directive applied to an interface type.
func MarkOnInterface(pass *analysis.Pass, pos token.Pos, name string) {
	pass.Reportf(pos, "ifacemark:mark cannot be applied to interface type %s", name)
}

// MarkerOnConcrete reports a marker directive applied to a non-interface type.
func MarkerOnConcrete(pass *analysis.Pass, pos token.Pos, name string) {
	pass.Reportf(pos, "ifacemark:marker can only be applied to an interface type, %s is not one", name)
}

// UnresolvedInterface reports a mark payload name that does not resolve.
func UnresolvedInterface(pass *analysis.Pass, pos token.Pos, name string) {
	pass.Reportf(pos, "cannot resolve interface %s", name)
}

// NotAnInterface reports a mark payload name that resolves to something
// other than an assertable interface type.
func NotAnInterface(pass *analysis.Pass, pos token.Pos, name string) {
	pass.Reportf(pos, "%s is not an interface type", name)
}

// InvalidMarker reports a failed marker validation for the named interface.
func InvalidMarker(pass *analysis.Pass, name string, v validate.Verdict) {
	switch v.Reason {
	case validate.HasMethods:
		pass.Reportf(v.Pos, "%s is not a marker interface: declares method %s", name, v.Detail)
	case validate.UnresolvedEmbed:
		pass.Reportf(v.Pos, "cannot resolve embedded interface %s in %s", v.Detail, name)
	default:
		pass.Reportf(v.Pos, "%s is not a marker interface: embeds non-marker interface %s", name, v.Detail)
	}
}

// MissingAssertions reports a type whose mark directive requests assertions
// not yet present, with a single fix splicing all of them in after the
// annotated declaration. The edit is anchored at the start of the line
// following the declaration so trailing comments stay in place.
func MissingAssertions(pass *analysis.Pass, pos, declEnd token.Pos, target string, missing, stubs []string) {
	anchor := nextLineStart(pass, declEnd)

	pass.Report(analysis.Diagnostic{
		Pos:     pos,
		Message: fmt.Sprintf("type %s is missing marker assertions: %s", target, strings.Join(missing, ", ")),
		SuggestedFixes: []analysis.SuggestedFix{{
			Message: fmt.Sprintf("add marker assertions for %s", target),
			TextEdits: []analysis.TextEdit{{
				Pos:     anchor,
				End:     anchor,
				NewText: []byte("\n" + strings.Join(stubs, "\n") + "\n"),
			}},
		}},
	})
}

// nextLineStart returns the position of the first character on the line
// after pos, or the end of the file when pos sits on the last line.
func nextLineStart(pass *analysis.Pass, pos token.Pos) token.Pos {
	file := pass.Fset.File(pos)
	line := file.Line(pos)

	if line >= file.LineCount() {
		return file.Pos(file.Size())
	}

	return file.LineStart(line + 1)
}
