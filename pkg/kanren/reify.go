package kanren

import "fmt"

// Reify returns a function that, given a substitution, produces the
// canonical printable form of t: every variable reachable from t is
// deep-walked and then replaced by a stable name "_0", "_1", … assigned in
// left-to-right, depth-first order (head before tail of every Pair), the
// order in which each variable is first encountered. Two different
// unbound variables reachable in the answer get two different names; the
// same variable in multiple positions gets the same name. The result
// never contains a live *Var.
func Reify(t Term) func(*Subst) Term {
	return func(s *Subst) Term {
		walked := DeepWalk(s, t)

		names := Empty()
		nextIndex := 0
		var walkNames func(term Term)
		walkNames = func(term Term) {
			switch tm := term.(type) {
			case *Var:
				if _, found := names.lookup(tm.id); !found {
					names = PutUnsafe(names, tm, NewAtom(fmt.Sprintf("_%d", nextIndex)))
					nextIndex++
				}
			case *Pair:
				// Recurse into head (shallow for ordinary data); walk the
				// tail spine iteratively so naming a long proper list
				// cannot exhaust the Go call stack.
				cur := Term(tm)
				for {
					p, ok := cur.(*Pair)
					if !ok {
						break
					}
					walkNames(p.Head)
					cur = p.Tail
				}
				walkNames(cur)
			}
		}
		walkNames(walked)

		return DeepWalk(names, walked)
	}
}

// ReifiedTerm is a term produced by Reify: it contains only host atoms,
// pairs, the empty list, and name atoms of the form "_<k>" standing in for
// what were free variables.
type ReifiedTerm = Term
