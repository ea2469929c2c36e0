package kanren

// This file is the ergonomic, Go-native front end over the clause AST in
// clause.go: Fresh, Conde and DefRel build the corresponding Node values
// and compile them immediately, so callers write and compose Goal values
// directly instead of assembling an AST by hand. A malformed call here
// (a nil body, a wrong-arity nested call discovered when a DefRel relation
// is first invoked and validated) panics, since this layer has no error return through which
// to report it — building the same clause through Fresh_/Conde_/DefRel_
// and calling Compile directly is the way to recover the error instead.

// Fresh allocates a fresh variable for each name, binds them into body's
// scope, and returns the compiled goal. A name of "_" is a wildcard: it
// contributes no binding, and the corresponding entry of vars passed to
// body is nil.
func Fresh(names []string, body func(vars []*Var) Goal) Goal {
	g, err := Compile(Fresh_(names, func(vars []*Var) Node {
		return Goal_(body(vars))
	}))
	if err != nil {
		panic(err)
	}
	return g
}

// CondeArm is one arm of a Conde call: a var-binding pattern (identical in
// shape to Fresh's names, wildcard included) plus the goal-producing body
// to run under those bindings.
type CondeArm struct {
	Vars []string
	Body func(vars []*Var) Goal
}

// Conde compiles a disjunction of fresh-scoped arms, tried in the order
// given. Each arm behaves as its own Fresh call; failure of one arm never
// affects the variables allocated by another.
func Conde(arms ...CondeArm) Goal {
	clauses := make([]CondeClause, len(arms))
	for i, arm := range arms {
		body := arm.Body
		clauses[i] = CondeClause{
			Vars: arm.Vars,
			Body: func(vars []*Var) Node { return Goal_(body(vars)) },
		}
	}
	g, err := Compile(Conde_(clauses...))
	if err != nil {
		panic(err)
	}
	return g
}

// DefRel defines a relation of the given arity. Its shape is validated
// against dummy arguments the first time it is invoked (see Relation.Goal),
// not at definition time — a self-referential relation's body may name the
// very variable DefRel is still constructing, so validation cannot run
// until every package-level var it touches is assigned. A malformed body
// (e.g. a nested call with the wrong arity) panics on that first
// invocation rather than failing silently during search.
func DefRel(name string, arity int, body func(args []Term) Goal) *Relation {
	return DefRel_(name, arity, func(args []Term) Node {
		return Goal_(body(args))
	})
}

// Goal invokes the relation with concrete term arguments, returning the
// goal a caller composes with Conj/Disj/Fresh/Conde like any other. The
// call is wrapped in the mandatory one-step delay (see Suspend), so a
// relation may call itself, directly or through another relation, without
// diverging before the returned goal is ever applied to a substitution.
func (r *Relation) Goal(args ...Term) Goal {
	g, err := Compile(Call_(r, args...))
	if err != nil {
		panic(err)
	}
	return g
}
