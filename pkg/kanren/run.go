package kanren

import "context"

// Run allocates a fresh variable q, runs qf(q) against the empty
// substitution, and reifies up to n answers in the order Take produces
// them. Passing Unbounded for n asks for every answer the goal produces;
// only exhaustion or non-termination ends such a call.
func Run(n int, qf func(q *Var) Goal) []ReifiedTerm {
	q := FreshVarNamed("q")
	substs := Take(qf(q)(Empty()), n)

	reify := Reify(q)
	out := make([]ReifiedTerm, len(substs))
	for i, s := range substs {
		out[i] = reify(s)
	}
	return out
}

// RunContext is Run with cancellation. ctx is checked once per stream
// step — once per mature cons consumed, once per suspension forced —
// never from inside Unify, Append or AppendMap themselves, so cancelling
// ctx only stops pulling further answers; it cannot change what the pure
// stream algebra computes. A cancelled ctx returns the answers already
// collected and ctx.Err(), never a partial answer.
func RunContext(ctx context.Context, n int, qf func(q *Var) Goal) ([]ReifiedTerm, error) {
	q := FreshVarNamed("q")
	a := qf(q)(Empty())

	var substs []*Subst
	var err error
loop:
	for {
		if err = ctx.Err(); err != nil {
			break loop
		}
		if n != Unbounded && n <= 0 {
			break loop
		}
		switch {
		case a.isEmpty():
			break loop
		case a.mature:
			substs = append(substs, a.head)
			if n != Unbounded {
				n--
			}
			a = a.tail
		default: // suspension
			a = a.thunk()
		}
	}

	reify := Reify(q)
	out := make([]ReifiedTerm, len(substs))
	for i, s := range substs {
		out[i] = reify(s)
	}
	return out, err
}
