package kanren

import (
	"reflect"
	"testing"
)

func substWithID(id uint64) *Subst {
	return &Subst{id: id}
}

func TestStreamUnitAndCons(t *testing.T) {
	s := substWithID(1)
	u := StreamUnit(s)
	if got := Take(u, Unbounded); len(got) != 1 || got[0] != s {
		t.Fatalf("StreamUnit should yield exactly its one substitution, got %v", got)
	}

	tail := StreamUnit(substWithID(2))
	cons := StreamCons(s, tail)
	got := Take(cons, Unbounded)
	if len(got) != 2 || got[0] != s {
		t.Fatalf("StreamCons should yield head then tail, got %v", got)
	}
}

func TestAppendMatureFirstOperand(t *testing.T) {
	a := StreamCons(substWithID(1), StreamCons(substWithID(2), StreamEmpty))
	b := StreamUnit(substWithID(3))

	got := Take(Append(a, b), Unbounded)
	want := []uint64{1, 2, 3}
	var ids []uint64
	for _, s := range got {
		ids = append(ids, s.id)
	}
	if !reflect.DeepEqual(ids, want) {
		t.Fatalf("Append(mature, b) should yield a's elements then b's, got %v", ids)
	}
}

func TestAppendSwapsOnSuspension(t *testing.T) {
	// a is a suspension that, once forced, yields a single substitution.
	// Per the swap rule, forcing Append(a, b) yields Append(b, force(a)):
	// b's elements must appear before a's once a was suspended.
	forced := false
	a := StreamSuspend(func() *Stream {
		forced = true
		return StreamUnit(substWithID(1))
	})
	b := StreamUnit(substWithID(2))

	result := Append(a, b)
	if forced {
		t.Fatal("Append must not force a suspension eagerly")
	}

	got := Take(result, Unbounded)
	var ids []uint64
	for _, s := range got {
		ids = append(ids, s.id)
	}
	if !reflect.DeepEqual(ids, []uint64{2, 1}) {
		t.Fatalf("Append should swap operands across a suspension, got %v", ids)
	}
}

func TestAppendMapDoesNotSwap(t *testing.T) {
	g := func(s *Subst) *Stream {
		return StreamUnit(substWithID(s.id * 10))
	}

	a := StreamSuspend(func() *Stream {
		return StreamCons(substWithID(1), StreamUnit(substWithID(2)))
	})

	got := Take(AppendMap(a, g), Unbounded)
	var ids []uint64
	for _, s := range got {
		ids = append(ids, s.id)
	}
	if !reflect.DeepEqual(ids, []uint64{10, 20}) {
		t.Fatalf("AppendMap should preserve a's order without swapping, got %v", ids)
	}
}

func TestTakeZeroNeverForcesASuspension(t *testing.T) {
	forced := false
	s := StreamSuspend(func() *Stream {
		forced = true
		return StreamEmpty
	})

	got := Take(s, 0)
	if len(got) != 0 {
		t.Fatal("Take(s, 0) should return no substitutions")
	}
	if forced {
		t.Fatal("Take(s, 0) must not force the stream at all")
	}
}

func TestTakeUnboundedExhaustsAFiniteStream(t *testing.T) {
	s := StreamCons(substWithID(1), StreamCons(substWithID(2), StreamEmpty))
	got := Take(s, Unbounded)
	if len(got) != 2 {
		t.Fatalf("expected 2 substitutions, got %d", len(got))
	}
}

// TestAppendLongMaturePrefixIsStackSafe pins the stack-safety property
// spec.md §7 asks of append: a long run of mature conses at the head of a
// must be walked iteratively, not by one Go call frame per element.
func TestAppendLongMaturePrefixIsStackSafe(t *testing.T) {
	const n = 50000
	var a *Stream = StreamEmpty
	for i := n - 1; i >= 0; i-- {
		a = StreamCons(substWithID(uint64(i)), a)
	}
	b := StreamUnit(substWithID(n))

	got := Take(Append(a, b), Unbounded)
	if len(got) != n+1 {
		t.Fatalf("expected %d substitutions, got %d", n+1, len(got))
	}
	if got[0].id != 0 || got[n-1].id != uint64(n-1) || got[n].id != n {
		t.Fatalf("unexpected order: first=%d last-of-a=%d b=%d", got[0].id, got[n-1].id, got[n].id)
	}
}

// TestAppendMapLongMaturePrefixIsStackSafe is the same property for
// AppendMap, which folds its mature prefix through Append rather than
// consing it directly.
func TestAppendMapLongMaturePrefixIsStackSafe(t *testing.T) {
	const n = 50000
	var a *Stream = StreamEmpty
	for i := n - 1; i >= 0; i-- {
		a = StreamCons(substWithID(uint64(i)), a)
	}
	g := func(s *Subst) *Stream {
		return StreamUnit(s)
	}

	got := Take(AppendMap(a, g), Unbounded)
	if len(got) != n {
		t.Fatalf("expected %d substitutions, got %d", n, len(got))
	}
	if got[0].id != 0 || got[n-1].id != uint64(n-1) {
		t.Fatalf("unexpected order: first=%d last=%d", got[0].id, got[n-1].id)
	}
}

func TestTakeBoundedStopsEarly(t *testing.T) {
	calls := 0
	var infinite func() *Stream
	infinite = func() *Stream {
		calls++
		id := uint64(calls)
		return StreamCons(substWithID(id), StreamSuspend(infinite))
	}

	got := Take(StreamSuspend(infinite), 3)
	if len(got) != 3 {
		t.Fatalf("expected exactly 3 substitutions, got %d", len(got))
	}
}
