// Package ifacemark provides a go/analysis based analyzer that maintains
// marker interface assertions and validates marker interface declarations.
package ifacemark

import (
	"flag"
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"

	"github.com/hmarui/ifacemark/internal/decl"
	"github.com/hmarui/ifacemark/internal/directive"
	"github.com/hmarui/ifacemark/internal/generate"
	"github.com/hmarui/ifacemark/internal/registry"
	"github.com/hmarui/ifacemark/internal/report"
	"github.com/hmarui/ifacemark/internal/validate"
)

// Flags for the analyzer.
var (
	autoMarkers string

	// Directive enable/disable flags (both enabled by default).
	enableMark   bool
	enableMarker bool
)

func init() {
	Analyzer.Flags.StringVar(&autoMarkers, "auto-marker", "",
		"comma-separated list of interfaces treated as marker-qualified (e.g., example.com/caps.Capability)")

	Analyzer.Flags.BoolVar(&enableMark, "mark", true, "enable the mark assertion generator")
	Analyzer.Flags.BoolVar(&enableMarker, "marker", true, "enable the marker interface validator")
}

// Analyzer is the main analyzer for ifacemark.
var Analyzer = &analysis.Analyzer{
	Name:      "ifacemark",
	Doc:       "maintains marker interface assertions and validates marker interface declarations",
	Run:       run,
	Flags:     flag.FlagSet{},
	FactTypes: []analysis.Fact{(*registry.Fact)(nil)},
}

// fileDirectives holds one file's attached directives, kept with the file
// so payload names resolve against that file's imports.
type fileDirectives struct {
	file     *ast.File
	attached []directive.Attached
}

func run(pass *analysis.Pass) (any, error) {
	skipFiles := buildSkipFiles(pass)

	collected := collectDirectives(pass, skipFiles)

	// Declared markers feed the registry before any validation runs, so
	// declaration order within the package does not matter. The fact is
	// exported for every declared marker, matching the rule that a trait
	// qualifies once declared, not once proven valid.
	declared := declaredMarkers(pass, collected)

	reg := registry.New(pass, declared, autoMarkers)
	existing := generate.ScanExisting(pass.Fset, pass.Files)

	for _, fd := range collected {
		for _, att := range fd.attached {
			switch att.Kind {
			case directive.Mark:
				if enableMark {
					runMark(pass, reg, existing, fd.file, att)
				}
			case directive.Marker:
				if enableMarker {
					runMarker(pass, reg, att)
				}
			}
		}
	}

	return nil, nil
}

// collectDirectives parses and attaches directives file by file.
// Malformed payloads are reported here; they never reach the generator or
// validator.
func collectDirectives(pass *analysis.Pass, skipFiles map[string]bool) []fileDirectives {
	var collected []fileDirectives

	for _, file := range pass.Files {
		filename := pass.Fset.Position(file.Pos()).Filename
		if skipFiles[filename] {
			continue
		}

		directives, errs := directive.CollectFile(pass.Fset, file)
		for _, perr := range errs {
			report.ParseError(pass, perr)
		}

		if len(directives) == 0 {
			continue
		}

		collected = append(collected, fileDirectives{
			file:     file,
			attached: directive.Attach(pass.Fset, file, directives),
		})
	}

	return collected
}

// declaredMarkers collects the interfaces annotated with ifacemark:marker
// and exports the marker fact on each.
func declaredMarkers(pass *analysis.Pass, collected []fileDirectives) map[types.Object]bool {
	declared := make(map[types.Object]bool)

	for _, fd := range collected {
		for _, att := range fd.attached {
			if att.Kind != directive.Marker || att.Spec == nil {
				continue
			}

			if _, ok := att.Spec.Type.(*ast.InterfaceType); !ok {
				continue
			}

			obj := pass.TypesInfo.Defs[att.Spec.Name]
			if obj == nil {
				continue
			}

			declared[obj] = true
			pass.ExportObjectFact(obj, &registry.Fact{})
		}
	}

	return declared
}

// runMark handles one mark directive: resolve every requested name, then
// report the assertions still missing, with a fix that splices them in.
func runMark(pass *analysis.Pass, reg *registry.Registry, existing generate.Existing, file *ast.File, att directive.Attached) {
	if att.Spec == nil {
		report.Orphan(pass, att.Directive)

		return
	}

	d := decl.FromSpec(att.Spec)

	names := make([]string, len(att.Names))
	for i, name := range att.Names {
		names[i] = name.Text
	}

	// The target kind check comes first; it belongs to the generator.
	impls, err := generate.Build(d, names)
	if err != nil {
		report.MarkOnInterface(pass, att.Pos, d.Name.Name)

		return
	}

	// Every name must resolve before anything is reported; a request is
	// never partially honored.
	for _, name := range att.Names {
		obj := reg.ResolveName(file, name.Text)
		if obj == nil {
			report.UnresolvedInterface(pass, name.Pos, name.Text)

			return
		}

		if !registry.IsAssertableInterface(obj) {
			report.NotAnInterface(pass, name.Pos, name.Text)

			return
		}
	}

	var missing, stubs []string

	for _, im := range impls {
		if existing.Has(im.Target, im.Iface) {
			continue
		}

		missing = append(missing, im.Iface)
		stubs = append(stubs, im.Render(pass.Fset))
	}

	if len(missing) == 0 {
		return
	}

	report.MissingAssertions(pass, d.Name.Pos(), att.Decl.End(), d.Name.Name, missing, stubs)
}

// runMarker handles one marker directive: check the target kind, then
// validate against the marker contract.
func runMarker(pass *analysis.Pass, reg *registry.Registry, att directive.Attached) {
	if att.Spec == nil {
		report.Orphan(pass, att.Directive)

		return
	}

	d := decl.FromSpec(att.Spec)
	if d.Kind != decl.Interface {
		report.MarkerOnConcrete(pass, att.Pos, d.Name.Name)

		return
	}

	verdict := validate.Interface(pass.Fset, d, reg)
	if !verdict.Valid {
		report.InvalidMarker(pass, d.Name.Name, verdict)
	}
}

// buildSkipFiles creates a set of filenames to skip.
// Generated files never carry directives of their own; spliced assertions
// in them are still picked up by the assertion scan.
func buildSkipFiles(pass *analysis.Pass) map[string]bool {
	skipFiles := make(map[string]bool)

	for _, file := range pass.Files {
		filename := pass.Fset.Position(file.Pos()).Filename

		if ast.IsGenerated(file) {
			skipFiles[filename] = true
		}
	}

	return skipFiles
}
