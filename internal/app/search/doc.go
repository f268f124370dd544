// Package search is the deterministic core of the catalog: it compiles
// free-form questions and explicit parameters into one validated FilterSet
// shape, translates filter sets into parameter-ordered query specs, and
// aggregates comparison statistics.
//
// Every function here is pure and safe for concurrent use; the only
// side-effecting step, executing a QuerySpec, belongs to the repository
// layer.
//
// Known limitation: qualitative rating language ("high ratings", "good
// courses") is not mapped to any numeric constraint. Such words stay in the
// free-text residue and only influence the partial-name match.
package search
