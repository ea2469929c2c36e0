package kanren

import "testing"

func TestSucceedAndFail(t *testing.T) {
	if got := Take(Succeed(Empty()), Unbounded); len(got) != 1 {
		t.Fatalf("Succeed should yield exactly one substitution, got %d", len(got))
	}
	if got := Take(Fail(Empty()), Unbounded); len(got) != 0 {
		t.Fatalf("Fail should yield no substitutions, got %d", len(got))
	}
}

func TestConjIdentities(t *testing.T) {
	t.Run("empty conj is Succeed", func(t *testing.T) {
		if got := Take(Conj()(Empty()), Unbounded); len(got) != 1 {
			t.Fatalf("Conj() should behave like Succeed, got %d answers", len(got))
		}
	})

	t.Run("single-goal conj is that goal", func(t *testing.T) {
		x := FreshVar()
		g := Eq(x, NewAtom(1))
		if got := Take(Conj(g)(Empty()), Unbounded); len(got) != 1 {
			t.Fatalf("Conj(g) should behave like g, got %d answers", len(got))
		}
	})

	t.Run("conjunction fails if any conjunct fails", func(t *testing.T) {
		x := FreshVar()
		g := Conj(Eq(x, NewAtom(1)), Eq(x, NewAtom(2)))
		if got := Take(g(Empty()), Unbounded); len(got) != 0 {
			t.Fatalf("conflicting conjuncts should fail, got %d answers", len(got))
		}
	})
}

func TestDisjIdentities(t *testing.T) {
	t.Run("empty disj is Fail", func(t *testing.T) {
		if got := Take(Disj()(Empty()), Unbounded); len(got) != 0 {
			t.Fatalf("Disj() should behave like Fail, got %d answers", len(got))
		}
	})

	t.Run("single-goal disj is that goal", func(t *testing.T) {
		x := FreshVar()
		g := Eq(x, NewAtom(1))
		if got := Take(Disj(g)(Empty()), Unbounded); len(got) != 1 {
			t.Fatalf("Disj(g) should behave like g, got %d answers", len(got))
		}
	})

	t.Run("disjunction yields an answer per disjunct, in order", func(t *testing.T) {
		x := FreshVar()
		g := Disj(Eq(x, NewAtom(1)), Eq(x, NewAtom(2)), Eq(x, NewAtom(3)))
		substs := Take(g(Empty()), Unbounded)
		if len(substs) != 3 {
			t.Fatalf("expected 3 answers, got %d", len(substs))
		}
		for i, want := range []int{1, 2, 3} {
			got := Walk(substs[i], x).(*Atom).Value().(int)
			if got != want {
				t.Errorf("answer %d: want %d, got %d", i, want, got)
			}
		}
	})
}

func TestSuspendDelaysEvaluation(t *testing.T) {
	ran := false
	g := Suspend(func(s *Subst) *Stream {
		ran = true
		return StreamUnit(s)
	})

	stream := g(Empty())
	if ran {
		t.Fatal("Suspend must not evaluate its body until the stream is forced")
	}

	Take(stream, 1)
	if !ran {
		t.Fatal("forcing the suspended stream should evaluate the body exactly once")
	}
}

func TestSuspendPreventsEagerDivergence(t *testing.T) {
	// A relation that calls itself unconditionally would diverge at
	// construction time without the mandatory delay; with it, building
	// the goal must return immediately.
	var loop Goal
	loop = Suspend(func(s *Subst) *Stream {
		return loop(s)
	})

	_ = loop(Empty()) // must return without looping forever
}
