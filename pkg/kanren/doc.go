// Package kanren implements a small embedded relational programming engine
// in the miniKanren family. Client programs describe relations over
// symbolic terms; the engine searches for term bindings (substitutions)
// that satisfy conjunctions and disjunctions of primitive goals, and
// returns a bounded list of reified answers.
//
// The package is organized around three layers, leaves first:
//
//   - Terms and substitutions (term.go, subst.go): logic variables,
//     atoms, cons pairs, and the triangular substitution that binds
//     variables to terms.
//   - The goal algebra (stream.go, goal.go): goals as functions from a
//     substitution to a lazy, possibly infinite stream of substitutions,
//     and the combinators that build them.
//   - Surface sugar (clause.go, relation.go, run.go, reify.go): the
//     clause compiler that turns declarative clauses (conde, fresh,
//     defrel, run) into goal trees, and the reifier that turns a raw
//     substitution into a printable answer.
//
// Unlike a solver built on goroutines and channels, every piece of this
// engine is a plain, pure Go value. Search is driven by ordinary function
// calls; the only place the engine ever suspends is a thunk returned by a
// Stream, forced by a later call to Take. This is deliberate: answer order
// must be exactly reproducible (see Stream, Disj), which a goroutine
// scheduler cannot guarantee.
package kanren
