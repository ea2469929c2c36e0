package kanren

import "testing"

func TestFreshVar(t *testing.T) {
	t.Run("distinct ids", func(t *testing.T) {
		v1 := FreshVar()
		v2 := FreshVar()
		if v1.ID() == v2.ID() {
			t.Error("FreshVar should never repeat an id")
		}
	})

	t.Run("IsVar", func(t *testing.T) {
		v := FreshVar()
		if !v.IsVar() {
			t.Error("Var.IsVar() should be true")
		}
	})

	t.Run("FreshVars allocates one per name in order", func(t *testing.T) {
		vars := FreshVars("x", "y", "z")
		if len(vars) != 3 {
			t.Fatalf("expected 3 vars, got %d", len(vars))
		}
		if vars[0].Name() != "x" || vars[1].Name() != "y" || vars[2].Name() != "z" {
			t.Error("FreshVars should preserve name order")
		}
	})
}

func TestAtom(t *testing.T) {
	t.Run("equal underlying values unify as identical", func(t *testing.T) {
		a := NewAtom(42)
		b := NewAtom(42)
		if !atomsEqual(a, b) {
			t.Error("atoms wrapping equal values should compare equal")
		}
	})

	t.Run("different underlying values are not equal", func(t *testing.T) {
		a := NewAtom("x")
		b := NewAtom("y")
		if atomsEqual(a, b) {
			t.Error("atoms wrapping different values should not compare equal")
		}
	})

	t.Run("IsVar is false", func(t *testing.T) {
		if NewAtom(1).IsVar() {
			t.Error("Atom.IsVar() should be false")
		}
	})

	t.Run("Nil prints as the empty list", func(t *testing.T) {
		if Nil.String() != "()" {
			t.Errorf("expected \"()\", got %q", Nil.String())
		}
	})
}

func TestListAndL(t *testing.T) {
	t.Run("List terminates with Nil", func(t *testing.T) {
		lst := List(NewAtom(1), NewAtom(2))
		p, ok := lst.(*Pair)
		if !ok {
			t.Fatal("List should build a Pair chain")
		}
		if p.Tail.(*Pair).Tail != Nil {
			t.Error("List should terminate the spine with Nil")
		}
	})

	t.Run("L wraps raw values and passes Terms through", func(t *testing.T) {
		v := FreshVar()
		lst := L(1, v, "x")
		p := lst.(*Pair)
		if p.Head.(*Atom).Value() != 1 {
			t.Error("L should wrap a raw int as an Atom")
		}
		if p.Tail.(*Pair).Head != Term(v) {
			t.Error("L should pass a Term through unwrapped")
		}
	})

	t.Run("empty List is Nil", func(t *testing.T) {
		if List() != Nil {
			t.Error("List() with no arguments should be Nil")
		}
	})
}
