package fixture

import (
	"strings"

	"github.com/arcweave/typegraph/ir"
)

// parseTypeName parses a small, source-like type-expression grammar into an
// *ir.TypeName tree, the same shape the real parser would hand to
// resolve.Resolve, so fixtures exercise the Type-Expression Rewriter with
// the same compound structures real input has:
//
//	Name                 simple reference
//	Name?                optional
//	Name!                implicitly unwrapped optional
//	[Element]            array
//	[Key: Value]         dictionary
//	(A, label: B)        tuple
//	(A, B) -> C          closure
//	Name<A, B>           generic instantiation
//	A & B                protocol composition
//
// It never touches resolve.State: it only builds the textual tree a real
// parser would have produced before any resolution happens.
func parseTypeName(s string) *ir.TypeName {
	p := &typeParser{input: strings.TrimSpace(s)}
	return p.parseSuffixed()
}

type typeParser struct {
	input string
	pos   int
}

func (p *typeParser) rest() string { return p.input[p.pos:] }

func (p *typeParser) skipSpace() {
	for p.pos < len(p.input) && p.input[p.pos] == ' ' {
		p.pos++
	}
}

// parseSuffixed parses one composition-or-primary expression followed by
// optional trailing `?`/`!` markers.
func (p *typeParser) parseSuffixed() *ir.TypeName {
	tn := p.parseComposition()
	p.skipSpace()
	for p.pos < len(p.input) {
		switch p.input[p.pos] {
		case '?':
			tn.SetOptional(true)
			p.pos++
		case '!':
			tn.SetImplicitlyUnwrappedOptional(true)
			p.pos++
		default:
			return tn
		}
	}
	return tn
}

// parseComposition parses `A & B & C`.
func (p *typeParser) parseComposition() *ir.TypeName {
	first := p.parsePrimary()
	p.skipSpace()
	if !strings.HasPrefix(p.rest(), "&") {
		return first
	}
	names := []string{first.Name()}
	for strings.HasPrefix(p.rest(), "&") {
		p.pos++
		p.skipSpace()
		next := p.parsePrimary()
		names = append(names, next.Name())
		p.skipSpace()
	}
	composed := ir.NewTypeName(strings.Join(names, " & "))
	composed.SetProtocolComposition(true)
	return composed
}

func (p *typeParser) parsePrimary() *ir.TypeName {
	p.skipSpace()
	if p.pos >= len(p.input) {
		return ir.NewTypeName("")
	}

	switch p.input[p.pos] {
	case '[':
		return p.parseBracket()
	case '(':
		return p.parseParenOrClosure()
	default:
		return p.parseNameOrGeneric()
	}
}

func (p *typeParser) parseBracket() *ir.TypeName {
	p.pos++ // consume '['
	first := p.parseSuffixed()
	p.skipSpace()
	if p.pos < len(p.input) && p.input[p.pos] == ':' {
		p.pos++
		value := p.parseSuffixed()
		p.skipSpace()
		p.expect(']')
		return ir.NewTypeName("[" + first.String() + ": " + value.String() + "]").
			SetDictionary(ir.NewDictionaryType(first, value))
	}
	p.expect(']')
	return ir.NewTypeName("[" + first.String() + "]").SetArray(ir.NewArrayType(first))
}

func (p *typeParser) parseParenOrClosure() *ir.TypeName {
	elements := p.parseTupleElements()
	p.skipSpace()
	if strings.HasPrefix(p.rest(), "->") {
		p.pos += 2
		ret := p.parseSuffixed()
		params := make([]ir.ClosureParameter, 0, len(elements))
		for _, e := range elements {
			params = append(params, ir.ClosureParameter{TypeName: e.TypeName})
		}
		return ir.NewTypeName("closure").SetClosure(ir.NewClosureType(ret, params...))
	}
	if len(elements) == 1 && elements[0].Label == "" {
		return elements[0].TypeName
	}
	return ir.NewTypeName("tuple").SetTuple(ir.NewTupleType(elements...))
}

func (p *typeParser) parseTupleElements() []ir.TupleElement {
	p.pos++ // consume '('
	var elements []ir.TupleElement
	p.skipSpace()
	if p.pos < len(p.input) && p.input[p.pos] == ')' {
		p.pos++
		return elements
	}
	for {
		p.skipSpace()
		label, tn := p.parseLabeledElement()
		elements = append(elements, ir.TupleElement{Label: label, TypeName: tn})
		p.skipSpace()
		if p.pos < len(p.input) && p.input[p.pos] == ',' {
			p.pos++
			continue
		}
		break
	}
	p.expect(')')
	return elements
}

func (p *typeParser) parseLabeledElement() (string, *ir.TypeName) {
	start := p.pos
	for p.pos < len(p.input) && p.input[p.pos] != ':' && p.input[p.pos] != ',' && p.input[p.pos] != ')' {
		p.pos++
	}
	candidate := strings.TrimSpace(p.input[start:p.pos])
	if p.pos < len(p.input) && p.input[p.pos] == ':' && isIdentifier(candidate) {
		p.pos++
		return candidate, p.parseSuffixed()
	}
	p.pos = start
	return "", p.parseSuffixed()
}

func (p *typeParser) parseNameOrGeneric() *ir.TypeName {
	start := p.pos
	for p.pos < len(p.input) && isNameByte(p.input[p.pos]) {
		p.pos++
	}
	name := p.input[start:p.pos]
	p.skipSpace()
	if p.pos >= len(p.input) || p.input[p.pos] != '<' {
		return ir.NewTypeName(name)
	}

	p.pos++ // consume '<'
	var params []*ir.TypeName
	for {
		params = append(params, p.parseSuffixed())
		p.skipSpace()
		if p.pos < len(p.input) && p.input[p.pos] == ',' {
			p.pos++
			continue
		}
		break
	}
	p.expect('>')
	return ir.NewTypeName(name).SetGeneric(ir.NewGenericType(name, params...))
}

func (p *typeParser) expect(b byte) {
	p.skipSpace()
	if p.pos < len(p.input) && p.input[p.pos] == b {
		p.pos++
	}
}

func isNameByte(b byte) bool {
	return b == '.' || b == '_' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isNameByte(s[i]) {
			return false
		}
	}
	return true
}
