package resolve

import (
	"cmp"
	"slices"

	gocmp "github.com/google/go-cmp/cmp"
	"github.com/arcweave/typegraph/ir"
)

// Result is the canonical, cross-linked type graph produced by Resolve: the
// external interface's uniqueTypesAndFunctions, plus the flattened
// typealiases a caller may want to inspect directly.
type Result struct {
	Types       []*ir.Type
	Functions   []*ir.Method
	Typealiases []*ir.Typealias
}

// Diff reports a human-readable difference between two Results, built on top
// of go-cmp. It is primarily useful in tests asserting idempotence:
// resolving the same ParserResult twice must produce Results that compare
// equal. Diff compares only the ordered lists of type global names, function
// names and typealias global names; members, cross-links and rewritten type
// names are not compared.
func (r *Result) Diff(other *Result) string {
	return gocmp.Diff(snapshot(r), snapshot(other))
}

type resultSnapshot struct {
	Types       []string
	Functions   []string
	Typealiases []string
}

func snapshot(r *Result) resultSnapshot {
	if r == nil {
		return resultSnapshot{}
	}
	out := resultSnapshot{
		Types:       make([]string, len(r.Types)),
		Functions:   make([]string, len(r.Functions)),
		Typealiases: make([]string, len(r.Typealiases)),
	}
	for i, t := range r.Types {
		out.Types[i] = t.GlobalName()
	}
	for i, m := range r.Functions {
		out.Functions[i] = m.Name()
	}
	for i, a := range r.Typealiases {
		out.Typealiases[i] = a.GlobalName()
	}
	return out
}

// Resolve runs the full pipeline over an unresolved ParserResult: unify
// duplicate declarations, resolve names through scope and typealiases,
// rewrite every type expression to its canonical form, resolve member
// signatures (in parallel), and compute the ancestor closure. The result's
// Types, Functions, and Typealiases are sorted by name for determinism
// regardless of how the parallel member-resolution phase happened to
// schedule its workers.
//
// Resolve never fails on a per-reference basis: an unresolved name anywhere
// in the input simply leaves the corresponding Type() nil, while its
// ActualTypeName keeps the reference's raw text.
// The returned error is non-nil only for a problem with the input itself (a
// nil ParserResult, or two declarations of the same global name that cannot
// be merged).
func Resolve(pr *ir.ParserResult, opts ...Option) (*Result, error) {
	if pr == nil {
		return nil, newError(NilInput, "nil ParserResult")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	logger := cfg.logger

	s := newState()
	s.functions = pr.Functions

	logger.Debug("unify", "types", len(pr.Types))
	if err := s.unify(pr.Types); err != nil {
		return nil, err
	}

	logger.Debug("index typealiases", "aliases", len(pr.Typealiases))
	for _, a := range pr.Typealiases {
		s.aliases[ir.CanonicalName(a.GlobalName())] = a
	}
	// Resolve every alias's Type up front, in input order, so that aliases
	// nothing references are resolved too and the parallel member phase only
	// reads s.flattened.
	for _, a := range pr.Typealiases {
		s.probe(ir.CanonicalName(a.GlobalName()), nil, a.Module(), a.Imports(), make(map[string]bool))
	}

	logger.Debug("rewrite type expressions and resolve members", "workers", cfg.workerCount)
	s.resolveMembers(cfg)

	logger.Debug("compute ancestor closure")
	s.computeAncestorClosure()

	types := slices.Clone(s.types)
	slices.SortFunc(types, func(a, b *ir.Type) int { return cmp.Compare(a.GlobalName(), b.GlobalName()) })

	functions := slices.Clone(s.functions)
	slices.SortFunc(functions, func(a, b *ir.Method) int { return cmp.Compare(a.Name(), b.Name()) })

	aliases := make([]*ir.Typealias, 0, len(s.aliases))
	for _, a := range s.aliases {
		aliases = append(aliases, a)
	}
	slices.SortFunc(aliases, func(a, b *ir.Typealias) int { return cmp.Compare(a.GlobalName(), b.GlobalName()) })

	logger.Debug("resolve complete", "types", len(types), "functions", len(functions), "typealiases", len(aliases))

	return &Result{Types: types, Functions: functions, Typealiases: aliases}, nil
}
