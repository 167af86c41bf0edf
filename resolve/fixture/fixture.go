// Package fixture loads YAML-described ParserResult fixtures for tests and
// for the typegraph-inspect command line tool: turning a human-authored
// document into the in-memory shape resolve.Resolve expects, without itself
// doing any resolution.
package fixture

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/arcweave/typegraph/ir"
)

// Document is the on-disk fixture shape: one YAML document describing a
// ParserResult's types, free functions, and typealiases in a compact textual
// form, with type expressions written the way they would appear in source
// (`String`, `[Int]`, `(Int, String) -> Bool`, `Box<Element>`, `A & B`).
type Document struct {
	Types       []TypeDecl   `yaml:"types"`
	Functions   []MethodDecl `yaml:"functions"`
	Typealiases []AliasDecl  `yaml:"typealiases"`
}

// TypeDecl describes one parsed type or extension record, prior to
// unification.
type TypeDecl struct {
	Kind               string                  `yaml:"kind"`
	Name               string                  `yaml:"name"`
	Module             string                  `yaml:"module"`
	Imports            []string                `yaml:"imports"`
	Doc                string                  `yaml:"doc"`
	Extension          bool                    `yaml:"extension"`
	Inherits           []string                `yaml:"inherits"`
	Variables          []VariableDecl          `yaml:"variables"`
	Methods            []MethodDecl            `yaml:"methods"`
	Subscripts         []SubscriptDecl         `yaml:"subscripts"`
	Cases              []EnumCaseDecl          `yaml:"cases"`
	RawType            string                  `yaml:"rawType"`
	AssociatedTypes    []AssociatedTypeDecl    `yaml:"associatedTypes"`
	GenericRequirements []GenericRequirementDecl `yaml:"genericRequirements"`
	ComposedTypes      []string                `yaml:"composedTypes"`
	NestedTypes        []TypeDecl              `yaml:"nestedTypes"`
}

// VariableDecl describes one property.
type VariableDecl struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Static   bool   `yaml:"static"`
	Stored   bool   `yaml:"stored"`
	DefinedIn string `yaml:"definedIn"`
}

// ParameterDecl describes one method/subscript parameter.
type ParameterDecl struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// MethodDecl describes one method or free function.
type MethodDecl struct {
	Name                  string          `yaml:"name"`
	Parameters            []ParameterDecl `yaml:"parameters"`
	Return                string          `yaml:"return"`
	ReturnIsVoid          bool            `yaml:"returnIsVoid"`
	Initializer           bool            `yaml:"initializer"`
	FailableInitializer   bool            `yaml:"failableInitializer"`
	Static                bool            `yaml:"static"`
	DefinedIn             string          `yaml:"definedIn"`
}

// SubscriptDecl describes one subscript.
type SubscriptDecl struct {
	Parameters []ParameterDecl `yaml:"parameters"`
	Return     string          `yaml:"return"`
	DefinedIn  string          `yaml:"definedIn"`
}

// EnumCaseDecl describes one enum case.
type EnumCaseDecl struct {
	Name             string               `yaml:"name"`
	AssociatedValues []AssociatedValueDecl `yaml:"associatedValues"`
}

// AssociatedValueDecl describes one enum case payload slot.
type AssociatedValueDecl struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// AssociatedTypeDecl describes one protocol associatedtype declaration.
type AssociatedTypeDecl struct {
	Name       string `yaml:"name"`
	Constraint string `yaml:"constraint"`
}

// GenericRequirementDecl describes one protocol `where` clause entry.
type GenericRequirementDecl struct {
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
}

// AliasDecl describes one typealias declaration.
type AliasDecl struct {
	Name   string `yaml:"name"`
	Module string `yaml:"module"`
	Parent string `yaml:"parent"`
	Type   string `yaml:"type"`
}

// Load reads a YAML fixture file and builds an *ir.ParserResult from it.
func Load(path string) (*ir.ParserResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: read %q: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML fixture content into an *ir.ParserResult.
func Parse(data []byte) (*ir.ParserResult, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("fixture: decode: %w", err)
	}
	return doc.Build()
}

// Build constructs an *ir.ParserResult from an already-decoded Document.
func (doc *Document) Build() (*ir.ParserResult, error) {
	pr := &ir.ParserResult{}

	var buildType func(d TypeDecl, module ir.Module) (*ir.Type, error)
	buildType = func(d TypeDecl, module ir.Module) (*ir.Type, error) {
		kind, err := parseKind(d.Kind)
		if err != nil {
			return nil, err
		}
		mod := module
		if d.Module != "" {
			mod = ir.NewModule(d.Module)
		}
		t := ir.NewType(kind, d.Name, mod)
		if d.Extension {
			t.MarkExtension()
		}
		t.SetDoc(d.Doc)
		t.SetImports(modulesOf(d.Imports))
		t.AddInheritedTypeNames(d.Inherits...)

		for _, v := range d.Variables {
			variable := ir.NewVariable(v.Name, parseTypeName(v.Type))
			variable.SetStatic(v.Static)
			variable.SetStored(v.Stored)
			if v.DefinedIn != "" {
				variable.SetDefinedInTypeName(parseTypeName(v.DefinedIn))
			}
			t.AddVariables(variable)
		}
		for _, m := range d.Methods {
			t.AddMethods(buildMethod(m))
		}
		for _, sub := range d.Subscripts {
			s := ir.NewSubscript(parseTypeName(sub.Return))
			for _, p := range sub.Parameters {
				s.AddParameters(ir.NewMethodParameter(p.Name, parseTypeName(p.Type)))
			}
			if sub.DefinedIn != "" {
				s.SetDefinedInTypeName(parseTypeName(sub.DefinedIn))
			}
			t.AddSubscripts(s)
		}
		for _, c := range d.Cases {
			values := make([]*ir.AssociatedValue, 0, len(c.AssociatedValues))
			for _, av := range c.AssociatedValues {
				values = append(values, ir.NewAssociatedValue(av.Name, parseTypeName(av.Type)))
			}
			t.AddCases(ir.NewEnumCase(c.Name, values...))
		}
		if d.RawType != "" {
			t.SetRawTypeName(parseTypeName(d.RawType))
		}
		for _, at := range d.AssociatedTypes {
			var constraint *ir.TypeName
			if at.Constraint != "" {
				constraint = parseTypeName(at.Constraint)
			}
			t.AddAssociatedTypes(ir.NewAssociatedType(at.Name, constraint))
		}
		for _, gr := range d.GenericRequirements {
			t.AddGenericRequirements(ir.NewGenericRequirement(parseTypeName(gr.Left), parseTypeName(gr.Right)))
		}
		for _, name := range d.ComposedTypes {
			t.AddComposedTypeNames(parseTypeName(name))
		}
		for _, nested := range d.NestedTypes {
			nt, err := buildType(nested, mod)
			if err != nil {
				return nil, err
			}
			t.AddNestedType(nt)
		}
		return t, nil
	}

	for _, d := range doc.Types {
		t, err := buildType(d, "")
		if err != nil {
			return nil, err
		}
		pr.Types = append(pr.Types, t)
	}

	for _, m := range doc.Functions {
		pr.Functions = append(pr.Functions, buildMethod(m))
	}

	for _, a := range doc.Typealiases {
		// Like a type's name, an alias's name may be written module-qualified;
		// the Typealias itself holds the unqualified name.
		name := a.Name
		if a.Module != "" {
			name = strings.TrimPrefix(name, a.Module+".")
		}
		alias := ir.NewTypealias(name, ir.NewModule(a.Module), parseTypeName(a.Type))
		pr.Typealiases = append(pr.Typealiases, alias)
	}

	return pr, nil
}

func buildMethod(m MethodDecl) *ir.Method {
	method := ir.NewMethod(m.Name)
	for _, p := range m.Parameters {
		method.AddParameters(ir.NewMethodParameter(p.Name, parseTypeName(p.Type)))
	}
	if m.Return != "" {
		method.SetReturnTypeName(parseTypeName(m.Return))
	}
	method.SetReturnTypeIsVoid(m.ReturnIsVoid)
	method.SetInitializer(m.Initializer)
	method.SetFailableInitializer(m.FailableInitializer)
	method.SetStatic(m.Static)
	if m.DefinedIn != "" {
		method.SetDefinedInTypeName(parseTypeName(m.DefinedIn))
	}
	return method
}

func modulesOf(names []string) []ir.Module {
	if len(names) == 0 {
		return nil
	}
	out := make([]ir.Module, len(names))
	for i, n := range names {
		out[i] = ir.NewModule(n)
	}
	return out
}

func parseKind(s string) (ir.Kind, error) {
	switch s {
	case "class":
		return ir.KindClass, nil
	case "struct":
		return ir.KindStruct, nil
	case "enum":
		return ir.KindEnum, nil
	case "protocol":
		return ir.KindProtocol, nil
	case "protocolComposition":
		return ir.KindProtocolComposition, nil
	case "":
		return ir.KindUnknown, nil
	default:
		return ir.KindUnknown, fmt.Errorf("fixture: unknown kind %q", s)
	}
}
