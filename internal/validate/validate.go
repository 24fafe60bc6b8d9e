// Package validate decides whether an interface declaration qualifies as a
// marker interface.
package validate

import (
	"go/ast"
	"go/printer"
	"go/token"
	"strings"

	"github.com/hmarui/ifacemark/internal/decl"
	"github.com/hmarui/ifacemark/internal/registry"
)

// Classifier resolves an embedded interface element to a marker
// classification. Satisfied by *registry.Registry; tests supply mocks.
type Classifier interface {
	ClassifyExpr(expr ast.Expr) registry.Classification
}

// Reason identifies why an interface failed marker validation.
type Reason int

const (
	// HasMethods: the interface declares at least one method of its own.
	HasMethods Reason = iota

	// NonMarkerEmbed: an embedded element is neither a declared marker nor
	// auto-qualified.
	NonMarkerEmbed

	// UnresolvedEmbed: an embedded element does not resolve to an
	// interface type.
	UnresolvedEmbed
)

// Verdict is the outcome of validating one interface declaration.
// Pos and Detail identify the offending method or embed when Valid is false.
type Verdict struct {
	Valid  bool
	Reason Reason
	Pos    token.Pos
	Detail string
}

// Interface checks d against the marker contract: no methods of its own,
// and every embedded element already marker-qualified. The method check
// runs first and short-circuits; within each category the first offender in
// declaration order is the one reported.
func Interface(fset *token.FileSet, d decl.Decl, classifier Classifier) Verdict {
	if len(d.Methods) > 0 {
		method := d.Methods[0]

		return Verdict{
			Reason: HasMethods,
			Pos:    method.Pos(),
			Detail: method.Names[0].Name,
		}
	}

	for _, embed := range d.Embeds {
		switch classifier.ClassifyExpr(embed) {
		case registry.UserMarker, registry.Auto:
			continue
		case registry.Unresolved:
			return Verdict{
				Reason: UnresolvedEmbed,
				Pos:    embed.Pos(),
				Detail: embedText(fset, embed),
			}
		default:
			return Verdict{
				Reason: NonMarkerEmbed,
				Pos:    embed.Pos(),
				Detail: embedText(fset, embed),
			}
		}
	}

	return Verdict{Valid: true}
}

func embedText(fset *token.FileSet, expr ast.Expr) string {
	var buf strings.Builder

	if err := printer.Fprint(&buf, fset, expr); err != nil {
		return "embedded interface"
	}

	return buf.String()
}
