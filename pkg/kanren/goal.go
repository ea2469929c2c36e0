package kanren

// Goal is a function from a substitution to a stream of substitutions:
// every way of extending the input substitution that satisfies the goal.
// Goals are pure values — composing them with Conj/Disj never evaluates
// them, it only builds a larger function.
type Goal func(s *Subst) *Stream

// Succeed is the goal that always succeeds, unchanged: λs. [s].
var Succeed Goal = func(s *Subst) *Stream {
	return StreamUnit(s)
}

// Fail is the goal that never succeeds: λs. [].
var Fail Goal = func(s *Subst) *Stream {
	return StreamEmpty
}

// Identical is the goal that unifies u and v: λs. unify(s, u, v), lifted
// to a singleton stream, or the empty stream on failure. Eq is the same
// goal under the name most of the literature and the surrounding
// ecosystem uses.
func Identical(u, v Term) Goal {
	return func(s *Subst) *Stream {
		s2 := Unify(s, u, v)
		if s2 == nil {
			return StreamEmpty
		}
		return StreamUnit(s2)
	}
}

// Eq is an alias for Identical.
func Eq(u, v Term) Goal { return Identical(u, v) }

// Disj is the disjunction combinator: λs. Append(g1(s), g2(s)). With more
// than two goals it folds left-associatively, matching the clause
// compiler's rule 2 so that the textual order of disjuncts determines the
// Append-swap interleaving order observably.
func Disj(goals ...Goal) Goal {
	switch len(goals) {
	case 0:
		return Fail
	case 1:
		return goals[0]
	}
	acc := disj2(goals[0], goals[1])
	for _, g := range goals[2:] {
		acc = disj2(acc, g)
	}
	return acc
}

func disj2(g1, g2 Goal) Goal {
	return func(s *Subst) *Stream {
		return Append(g1(s), g2(s))
	}
}

// Conj is the conjunction combinator: λs. AppendMap(g1(s), g2). With more
// than two goals it folds left-associatively (rule 1 of the clause
// compiler), so each answer of an earlier conjunct drives the next in
// left-to-right textual order.
func Conj(goals ...Goal) Goal {
	switch len(goals) {
	case 0:
		return Succeed
	case 1:
		return goals[0]
	}
	acc := conj2(goals[0], goals[1])
	for _, g := range goals[2:] {
		acc = conj2(acc, g)
	}
	return acc
}

func conj2(g1, g2 Goal) Goal {
	return func(s *Subst) *Stream {
		return AppendMap(g1(s), g2)
	}
}

// Suspend wraps a goal body in the one-step inverse-eta-delay every
// user-defined relation must apply when invoked, so that a goal which
// recurses into itself does not diverge before producing a single
// substitution: applying the returned goal to s does not evaluate body(s)
// immediately, it returns a suspension that evaluates body(s) only when
// something forces it (via Append, AppendMap or Take). Without this, a
// self-referential relation like Appendo would recurse eagerly at
// construction time and never return.
func Suspend(body Goal) Goal {
	return func(s *Subst) *Stream {
		return StreamSuspend(func() *Stream {
			return body(s)
		})
	}
}
