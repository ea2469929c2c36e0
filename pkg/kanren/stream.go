package kanren

// Stream is a lazy, possibly infinite sequence of substitutions. It is a
// discriminated value with exactly one of three shapes at a time:
//
//   - empty: no more substitutions will ever appear;
//   - mature: a substitution (Head) followed by a (possibly lazy) tail;
//   - immature: a thunk that, when forced, yields another Stream.
//
// A Stream is not an iterator with hidden state; it is an immutable value.
// Forcing a thunk is an ordinary Go function call that produces a new
// Stream value — the thunk itself is consumed and never re-forced. The
// only place the engine can "pause" search is a thunk returned from
// Disj's right operand (via Append's swap) or from a suspended relation
// call (see Suspend) — there is no goroutine, no channel, no preemption
// anywhere in this file.
type Stream struct {
	mature bool
	head   *Subst
	tail   *Stream
	thunk  func() *Stream
}

// StreamEmpty is the stream with no substitutions.
var StreamEmpty = &Stream{}

// StreamUnit returns the single-substitution mature stream {s}.
func StreamUnit(s *Subst) *Stream {
	return &Stream{mature: true, head: s, tail: StreamEmpty}
}

// StreamCons returns the mature stream whose first element is head and
// whose remaining elements are tail.
func StreamCons(head *Subst, tail *Stream) *Stream {
	return &Stream{mature: true, head: head, tail: tail}
}

// StreamSuspend wraps a thunk as an immature stream. Forcing it (via
// Append, AppendMap or Take) calls thunk exactly once.
func StreamSuspend(thunk func() *Stream) *Stream {
	return &Stream{thunk: thunk}
}

// isEmpty reports whether s is the terminal, no-more-substitutions shape.
func (s *Stream) isEmpty() bool {
	return !s.mature && s.thunk == nil
}

// isSuspension reports whether s is an unforced thunk.
func (s *Stream) isSuspension() bool {
	return !s.mature && s.thunk != nil
}

// Append concatenates two streams. Per the canonical interleaving
// miniKanren semantics:
//
//   - if a is empty, the result is b;
//   - if a is mature h::t, the result is h :: Append(t, b);
//   - if a is a suspension, the result is a new suspension that, when
//     forced, yields Append(b, force(a)) — note the swap of operands.
//
// The swap is what gives Disj its fairness: it biases interleaving toward
// b whenever a has suspended, so an infinite producer on the left cannot
// starve a producer on the right.
//
// spec.md §7 calls out append (alongside walk/deep_walk) as needing
// trampolined recursion so a long run of mature conses at the head of a
// cannot exhaust the Go stack. The mature prefix is walked iteratively
// here and the result rebuilt from the tail outward, exactly as Walk and
// DeepWalk already do for substitution chains and list spines; only the
// one-element recursive call inside a forced suspension's thunk remains,
// and that call is deferred until something forces it, never nested
// eagerly at construction time.
func Append(a, b *Stream) *Stream {
	var heads []*Subst
	cur := a
	for cur.mature {
		heads = append(heads, cur.head)
		cur = cur.tail
	}

	var result *Stream
	switch {
	case cur.isEmpty():
		result = b
	default: // suspension
		result = StreamSuspend(func() *Stream {
			return Append(b, cur.thunk())
		})
	}

	for i := len(heads) - 1; i >= 0; i-- {
		result = StreamCons(heads[i], result)
	}
	return result
}

// AppendMap applies g to every substitution in a and concatenates the
// resulting streams, used to thread conjunction through each answer of its
// left goal. Unlike Append, forcing a suspension here does not swap
// operands — conjunction is sequential by construction, so there is no
// fairness concern between a and g's output.
//
// Stack-safe for the same reason as Append: the mature prefix of a is
// walked with an explicit loop and folded back through Append (itself
// iterative over its own mature prefix) rather than recursing once per
// element of a.
func AppendMap(a *Stream, g Goal) *Stream {
	var heads []*Subst
	cur := a
	for cur.mature {
		heads = append(heads, cur.head)
		cur = cur.tail
	}

	var result *Stream
	switch {
	case cur.isEmpty():
		result = StreamEmpty
	default: // suspension
		result = StreamSuspend(func() *Stream {
			return AppendMap(cur.thunk(), g)
		})
	}

	for i := len(heads) - 1; i >= 0; i-- {
		result = Append(g(heads[i]), result)
	}
	return result
}

// Unbounded is the sentinel n for Take meaning "take every substitution
// the stream produces" — only non-termination or stream exhaustion ends
// such a call.
const Unbounded = -1

// Take pulls up to n substitutions from a stream, forcing suspensions as
// needed. Passing Unbounded disables the decrement, so only exhaustion or
// non-termination terminates the call. Take is total on finite streams;
// on infinite streams only a finite n is guaranteed to terminate.
func Take(a *Stream, n int) []*Subst {
	var out []*Subst
	for {
		if n != Unbounded && n <= 0 {
			return out
		}
		switch {
		case a.isEmpty():
			return out
		case a.mature:
			out = append(out, a.head)
			if n != Unbounded {
				n--
			}
			a = a.tail
		default: // suspension
			a = a.thunk()
		}
	}
}
