// Package ir defines the data model that flows through the type resolution
// core: the unresolved textual type-expression language produced by a parser
// (TypeName and its compound forms), the nominal declarations that language
// refers to (Type, in its Class/Struct/Enum/Protocol/ProtocolComposition
// variants), their members, typealiases, and the ParserResult boundary value
// that ties them together.
//
// Nothing in this package resolves anything; it only models the shapes that
// package resolve operates on. Mutation of the resolved slots described here
// (TypeName.actualTypeName, the various Type/Set* slots) is owned by resolve.
package ir
