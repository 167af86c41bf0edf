// Package typegraph turns the raw, unresolved output of a source-code
// parser into a canonical, cross-linked type graph.
//
// A parser that walks source files produces one fragment per declaration:
// a class split across a primary body and several extensions, a typealias
// whose target is still just text, a method whose parameter and return
// types are still just text. typegraph's resolve package merges those
// fragments, resolves every textual type reference through lexical scope
// and typealias chains, and links each declaration to its ancestors so that
// downstream tooling (code generators, linters, documentation renderers)
// can walk the graph instead of re-deriving it.
//
// # Architecture Overview
//
// The module is organized into two tiers:
//
//	Data model tier (no internal dependencies):
//	  - ir: TypeName, Type, Typealias, and the member types, modeling the
//	    shape of a parsed declaration before and after resolution
//
//	Resolution tier:
//	  - resolve: the Unifier, Name Resolver, Type-Expression Rewriter,
//	    Member Resolver, and Ancestor Closure that together build the
//	    cross-linked graph
//	  - resolve/fixture: a YAML fixture format for test input and the
//	    typegraph-inspect command
//
// # Entry Point
//
//	import "github.com/arcweave/typegraph/resolve"
//
//	result, err := resolve.Resolve(parserResult)
//	if err != nil {
//	    // problem with the input itself: nil, or an unmergeable declaration
//	}
//	// result.Types, result.Functions, result.Typealiases are now
//	// cross-linked and sorted by name
//
// # Subpackages
//
//   - [github.com/arcweave/typegraph/ir]: the data model
//   - [github.com/arcweave/typegraph/resolve]: the resolution pipeline
//   - [github.com/arcweave/typegraph/resolve/fixture]: fixture loading
package typegraph
