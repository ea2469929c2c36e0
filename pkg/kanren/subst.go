package kanren

// Subst is an immutable, triangular mapping from logic variables to terms:
// a variable may be bound to another variable, which may in turn be bound,
// forming a chain. It is represented as a persistent linked list of
// extensions — each Put/PutUnsafe allocates one new node pointing at its
// parent — rather than a copy-on-write map, so that extending s to s' never
// mutates s and both remain valid for concurrent readers (backtracking
// depends on older substitutions staying reachable from suspended stream
// continuations). Extend is O(1); lookup is O(chain length), the tradeoff
// a linked-list-over-a-base-map representation accepts in exchange for
// structural sharing.
//
// A nil *Subst never occurs as a valid, bound-nothing substitution — Empty
// returns a canonical non-nil sentinel — so nil is free to serve as the
// distinguished failure value threaded through Put and Unify.
type Subst struct {
	id     uint64
	term   Term
	parent *Subst
}

// empty is the canonical empty substitution: no bindings, no parent.
// Variable ids start at 1 (see FreshVar), so id 0 can never match a real
// lookup and is safe to use as this sentinel's inert id.
var empty = &Subst{}

// Empty returns the substitution with no bindings.
func Empty() *Subst { return empty }

// lookup returns the term directly bound to variable id v in s, and
// whether a binding was found.
func (s *Subst) lookup(id uint64) (Term, bool) {
	for n := s; n != nil; n = n.parent {
		if n.id == id {
			return n.term, true
		}
	}
	return nil, false
}

// PutUnsafe extends s so that x is bound to v, without any occurs-check.
// It can introduce a cyclic substitution if v contains x; callers must
// only use it where they have independently established safety (see the
// fresh-variable shortcut in Unify).
func PutUnsafe(s *Subst, x *Var, v Term) *Subst {
	return &Subst{id: x.id, term: v, parent: s}
}

// Put extends s so that x is bound to v, failing (returning nil) if that
// would bind x to a term containing x (directly or through the chain of
// other bindings) — the occurs-check that keeps every substitution
// reachable via Put acyclic.
func Put(s *Subst, x *Var, v Term) *Subst {
	if OccursCheck(s, x, Walk(s, v)) {
		return nil
	}
	return PutUnsafe(s, x, v)
}

// Walk follows variable-to-term bindings in s until it reaches a
// non-variable term or a variable unbound in s (a "fresh" variable). It
// never recurses into a Pair's structure — only the outermost term is
// walked — and loops rather than recurring down the binding chain, so an
// arbitrarily long chain of variable-to-variable bindings cannot exhaust
// the Go call stack.
func Walk(s *Subst, t Term) Term {
	for {
		v, ok := t.(*Var)
		if !ok {
			return t
		}
		bound, found := s.lookup(v.id)
		if !found {
			return t
		}
		t = bound
	}
}

// OccursCheck reports whether variable x appears anywhere in the term tree
// rooted at v (after walking v through s), recursively through the head
// and tail of every Pair. It is the test that keeps Put from introducing a
// binding cycle.
func OccursCheck(s *Subst, x *Var, v Term) bool {
	v = Walk(s, v)
	switch t := v.(type) {
	case *Var:
		return t.id == x.id
	case *Pair:
		// Walk the spine iteratively; only recurse into head positions,
		// which keeps occurs-check stack-safe on long proper lists.
		cur := Term(t)
		for {
			p, ok := cur.(*Pair)
			if !ok {
				break
			}
			if OccursCheck(s, x, p.Head) {
				return true
			}
			cur = Walk(s, p.Tail)
		}
		return OccursCheck(s, x, cur)
	default:
		return false
	}
}

// Unify returns the substitution extending s that makes u and v equal, or
// nil if no such substitution exists. It implements the six unification
// rules verbatim:
//
//  1. walk both terms through s;
//  2. if structurally equal (same variable, equal atoms, or both Nil),
//     return s unchanged;
//  3. if both are variables, bind one to the other without an
//     occurs-check — two distinct fresh variables can never introduce a
//     cycle, so the check would be redundant;
//  4. if exactly one is a variable, Put it to the other;
//  5. if both are Pairs, unify head against head, then tail against tail
//     under the substitution the head unification produced;
//  6. otherwise, fail.
func Unify(s *Subst, u, v Term) *Subst {
	if s == nil {
		return nil
	}
	u = Walk(s, u)
	v = Walk(s, v)

	if termsIdentical(u, v) {
		return s
	}

	uVar, uIsVar := u.(*Var)
	vVar, vIsVar := v.(*Var)

	switch {
	case uIsVar && vIsVar:
		return PutUnsafe(s, uVar, v)
	case uIsVar:
		return Put(s, uVar, v)
	case vIsVar:
		return Put(s, vVar, u)
	}

	up, uIsPair := u.(*Pair)
	vp, vIsPair := v.(*Pair)
	if uIsPair && vIsPair {
		s = Unify(s, up.Head, vp.Head)
		if s == nil {
			return nil
		}
		return Unify(s, up.Tail, vp.Tail)
	}

	return nil
}

// termsIdentical is the structural-equality check of Unify's step 2: the
// same variable, or equal atoms (Nil included). Two Pairs are never
// identical here; Unify's step 5 compares them head and tail.
func termsIdentical(u, v Term) bool {
	if uv, ok := u.(*Var); ok {
		if vv, ok := v.(*Var); ok {
			return uv.id == vv.id
		}
		return false
	}
	if ua, ok := u.(*Atom); ok {
		if va, ok := v.(*Atom); ok {
			return atomsEqual(ua, va)
		}
		return false
	}
	return false
}

// DeepWalk recursively walks t through s and rebuilds every Pair from
// deep-walked head and tail, returning a term that contains only fresh
// variables and ground constructors. The list spine (the chain of tails)
// is rebuilt iteratively rather than by recursive descent, so an
// arbitrarily long proper list cannot exhaust the Go call stack; only head
// positions recurse, which for ordinary data is shallow.
func DeepWalk(s *Subst, t Term) Term {
	t = Walk(s, t)
	if _, ok := t.(*Pair); !ok {
		return t
	}

	var heads []Term
	cur := t
	for {
		p, ok := cur.(*Pair)
		if !ok {
			break
		}
		heads = append(heads, DeepWalk(s, p.Head))
		cur = Walk(s, p.Tail)
	}
	tail := DeepWalk(s, cur)

	result := tail
	for i := len(heads) - 1; i >= 0; i-- {
		result = NewPair(heads[i], result)
	}
	return result
}
