// Package filters builds where-filter trees and encodes them for both
// transports.
//
// A filter is constructed fluently and stays transport-agnostic until a
// query encodes it:
//
//	f := filters.And(
//		filters.ByProperty("wordCount").GreaterThan(1000),
//		filters.ByRef("writesFor").ByProperty("name").Like("*Times*"),
//	)
//
// ToGRPC produces the weaviate.v1 filter message; ToREST produces the
// where-clause map used by GraphQL and REST endpoints. Dates are encoded
// as RFC 3339 strings and UUIDs in canonical form on both paths.
// Reference traversals on the REST path require server 1.23 or newer;
// older targets are rejected at encode time rather than producing a
// server-side parse error.
package filters
