// Package directive parses //ifacemark:mark and //ifacemark:marker
// directives and associates them with the type declarations they annotate.
package directive

import (
	"fmt"
	"go/ast"
	"go/token"
	"strings"
	"unicode"
)

// Kind identifies which directive form was parsed.
type Kind int

const (
	// Mark requests generation of marker assertions for a concrete type.
	// Payload: a non-empty, comma-separated list of interface names.
	Mark Kind = iota

	// Marker requests validation of an interface declaration as a marker
	// interface. Takes no payload.
	Marker
)

const (
	prefix     = "ifacemark:"
	markVerb   = "mark"
	markerVerb = "marker"
)

// Verb returns the directive verb as written in source.
func (k Kind) Verb() string {
	if k == Marker {
		return markerVerb
	}

	return markVerb
}

// Name is a single interface reference in a mark directive payload.
type Name struct {
	Text string
	Pos  token.Pos
}

// Directive is a parsed annotation.
type Directive struct {
	Kind  Kind
	Pos   token.Pos // position of the directive comment
	Names []Name    // populated for Mark only
}

// Attached pairs a directive with the type declaration it annotates.
// Spec and Decl are nil when no type declaration follows the directive.
type Attached struct {
	Directive
	Spec *ast.TypeSpec
	Decl *ast.GenDecl // enclosing declaration, used as the splice anchor
}

// ParseErrorKind classifies malformed directive payloads.
type ParseErrorKind int

const (
	// EmptyList: a mark directive with no interface names.
	EmptyList ParseErrorKind = iota

	// MalformedName: a payload token that is not a valid path expression.
	MalformedName

	// UnexpectedArguments: a marker directive given a payload.
	UnexpectedArguments
)

// ParseError describes a malformed directive payload. The whole directive
// is rejected; names before the offending token are discarded.
type ParseError struct {
	Kind  ParseErrorKind
	Token string
	Pos   token.Pos
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case EmptyList:
		return "ifacemark:mark requires at least one interface name"
	case MalformedName:
		return fmt.Sprintf("invalid interface name %q in ifacemark:mark directive", e.Token)
	case UnexpectedArguments:
		return "ifacemark:marker does not take arguments"
	}

	return "malformed ifacemark directive"
}

// CollectFile scans a file's comments for ifacemark directives and returns
// them keyed by the line the comment sits on. Malformed payloads are
// returned in scan order; a malformed directive does not appear in the map.
func CollectFile(fset *token.FileSet, file *ast.File) (map[int]Directive, []*ParseError) {
	directives := make(map[int]Directive)

	var errs []*ParseError

	for _, cg := range file.Comments {
		for _, c := range cg.List {
			dir, perr, ok := parseComment(c)
			if !ok {
				continue
			}

			if perr != nil {
				errs = append(errs, perr)

				continue
			}

			line := fset.Position(c.Pos()).Line
			directives[line] = dir
		}
	}

	return directives, errs
}

// Attach associates collected directives with the type declarations they
// annotate. A directive annotates the type declaration that begins on the
// next line, matching the placement of a doc comment's last line. Leftover
// directives are returned with a nil Spec so the caller can report them.
func Attach(fset *token.FileSet, file *ast.File, directives map[int]Directive) []Attached {
	var attached []Attached

	claimed := make(map[int]bool)

	for _, d := range file.Decls {
		genDecl, ok := d.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}

		for _, spec := range genDecl.Specs {
			typeSpec, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}

			line := fset.Position(typeSpec.Pos()).Line

			dir, hasDirective := directives[line-1]
			if !hasDirective {
				continue
			}

			claimed[line-1] = true
			attached = append(attached, Attached{Directive: dir, Spec: typeSpec, Decl: genDecl})
		}
	}

	// Orphans, in source order.
	var orphans []Attached

	for line, dir := range directives {
		if !claimed[line] {
			orphans = append(orphans, Attached{Directive: dir})
		}
	}

	for i := range orphans {
		for j := i + 1; j < len(orphans); j++ {
			if orphans[j].Pos < orphans[i].Pos {
				orphans[i], orphans[j] = orphans[j], orphans[i]
			}
		}
	}

	return append(attached, orphans...)
}

// parseComment parses a single comment. ok is false when the comment is not
// an ifacemark directive at all.
func parseComment(c *ast.Comment) (Directive, *ParseError, bool) {
	text := c.Text
	if !strings.HasPrefix(text, "//") {
		return Directive{}, nil, false
	}

	rest := strings.TrimPrefix(text, "//")
	trimmed := strings.TrimLeft(rest, " \t")

	if !strings.HasPrefix(trimmed, prefix) {
		return Directive{}, nil, false
	}

	// Offset of the verb within the original comment text, for positions.
	verbOffset := len(text) - len(trimmed) + len(prefix)
	body := trimmed[len(prefix):]

	verb := body

	payload := ""
	payloadOffset := verbOffset + len(body)

	if i := strings.IndexAny(body, " \t"); i >= 0 {
		verb = body[:i]
		payload = body[i+1:]
		payloadOffset = verbOffset + i + 1
	}

	// A trailing //-comment is commentary, not payload.
	if i := strings.Index(payload, "//"); i >= 0 {
		payload = payload[:i]
	}

	switch verb {
	case markVerb:
		names, perr := parseMarkPayload(payload, c.Pos()+token.Pos(payloadOffset))
		if perr != nil {
			return Directive{}, perr, true
		}

		return Directive{Kind: Mark, Pos: c.Pos(), Names: names}, nil, true

	case markerVerb:
		if strings.TrimSpace(payload) != "" {
			return Directive{}, &ParseError{Kind: UnexpectedArguments, Token: payload, Pos: c.Pos()}, true
		}

		return Directive{Kind: Marker, Pos: c.Pos()}, nil, true
	}

	// Unknown verbs are not ours to interpret.
	return Directive{}, nil, false
}

// parseMarkPayload parses a comma-separated list of interface names.
// base is the position of the payload's first byte. One trailing comma is
// tolerated; empty tokens anywhere else are malformed.
func parseMarkPayload(payload string, base token.Pos) ([]Name, *ParseError) {
	if strings.TrimSpace(payload) == "" {
		return nil, &ParseError{Kind: EmptyList, Pos: base}
	}

	parts := strings.Split(payload, ",")
	if n := len(parts); n > 1 && strings.TrimSpace(parts[n-1]) == "" {
		parts = parts[:n-1]
	}

	names := make([]Name, 0, len(parts))
	offset := 0

	for _, part := range parts {
		text := strings.TrimSpace(part)
		pos := base + token.Pos(offset+leadingSpace(part))

		if text == "" || !isPath(text) {
			return nil, &ParseError{Kind: MalformedName, Token: text, Pos: pos}
		}

		names = append(names, Name{Text: text, Pos: pos})
		offset += len(part) + 1
	}

	return names, nil
}

// isPath reports whether s is a dot-separated sequence of Go identifiers,
// e.g. "Array" or "caps.Array".
func isPath(s string) bool {
	for _, seg := range strings.Split(s, ".") {
		if !isIdent(seg) {
			return false
		}
	}

	return true
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		if unicode.IsLetter(r) || r == '_' {
			continue
		}

		if i > 0 && unicode.IsDigit(r) {
			continue
		}

		return false
	}

	return true
}

func leadingSpace(s string) int {
	return len(s) - len(strings.TrimLeft(s, " \t"))
}
