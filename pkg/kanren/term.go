package kanren

import (
	"fmt"
	"reflect"
	"strings"
	"sync/atomic"
)

// Term is a value in the object language: a logic variable, an atom, or a
// cons pair. Terms are immutable once constructed; unification never
// mutates a term, it only extends a Subst.
type Term interface {
	// String returns a human-readable representation of the term.
	String() string

	// IsVar reports whether the term is a logic variable.
	IsVar() bool
}

// Var is a logic variable: an opaque token representing an as-yet-unknown
// term. Two variables are equal only if they share an id; a shared name
// never makes two variables equal.
type Var struct {
	id   uint64
	name string
}

var varCounter atomic.Uint64

// FreshVar returns a variable whose id is distinct from every variable
// previously issued in the running process.
func FreshVar() *Var {
	return FreshVarNamed("")
}

// FreshVarNamed is FreshVar with a human-readable name attached for
// reification-independent debugging output (String, not Reify, uses it).
func FreshVarNamed(name string) *Var {
	return &Var{id: varCounter.Add(1), name: name}
}

// FreshVars allocates one variable per name and returns them in order.
// An empty name is permitted and yields an anonymous variable.
func FreshVars(names ...string) []*Var {
	vars := make([]*Var, len(names))
	for i, n := range names {
		vars[i] = FreshVarNamed(n)
	}
	return vars
}

// ID returns the variable's process-unique identity. Two variables are the
// same variable iff their IDs are equal.
func (v *Var) ID() uint64 { return v.id }

// Name returns the variable's optional debugging name.
func (v *Var) Name() string { return v.name }

func (v *Var) IsVar() bool { return true }

func (v *Var) String() string {
	if v.name != "" {
		return fmt.Sprintf("_%s.%d", v.name, v.id)
	}
	return fmt.Sprintf("_%d", v.id)
}

// Atom is an opaque ground value: an integer, a string, a symbol, a bool,
// or any other host value the client treats as atomic. Two atoms are equal
// iff their underlying values are equal.
type Atom struct {
	value interface{}
}

// NewAtom wraps any Go value as an atomic term.
func NewAtom(value interface{}) *Atom {
	return &Atom{value: value}
}

// Value returns the underlying Go value.
func (a *Atom) Value() interface{} { return a.value }

func (a *Atom) IsVar() bool { return false }

func (a *Atom) String() string {
	if a == Nil {
		return "()"
	}
	return fmt.Sprintf("%v", a.value)
}

// emptyList is the unique sentinel value distinguishing the empty-list
// atom from any host value a client might legitimately wrap (including
// nil, 0, "" or false).
type emptyList struct{}

// Nil is the canonical empty-list atom: the universal list terminator.
// Named distinctly from Subst's Empty() (the empty substitution) — the
// two are unrelated values that happen to both mean "nothing here yet."
var Nil = &Atom{value: emptyList{}}

// atomsEqual performs structural equality of the underlying values of two
// atoms. Most host values (ints, strings, bools, symbols) are directly
// comparable with ==; values that are not comparable (slices, maps,
// funcs) would panic under ==, so we fall back to reflect.DeepEqual for
// those rather than let a client's atom choice crash unification.
func atomsEqual(a, b *Atom) (eq bool) {
	if a == b {
		return true
	}
	defer func() {
		if recover() != nil {
			eq = reflect.DeepEqual(a.value, b.value)
		}
	}()
	return a.value == b.value
}

// Pair is the universal cons cell over terms: the constructor for lists
// and arbitrary (possibly improper) tree structures. Pair is acyclic on
// construction; a cycle can only be introduced through a Subst built with
// PutUnsafe.
type Pair struct {
	Head Term
	Tail Term
}

// NewPair constructs a cons cell.
func NewPair(head, tail Term) *Pair {
	return &Pair{Head: head, Tail: tail}
}

func (p *Pair) IsVar() bool { return false }

func (p *Pair) String() string {
	var b strings.Builder
	b.WriteByte('(')
	cur := Term(p)
	first := true
	for {
		pp, ok := cur.(*Pair)
		if !ok {
			break
		}
		if !first {
			b.WriteByte(' ')
		}
		first = false
		b.WriteString(pp.Head.String())
		cur = pp.Tail
	}
	if cur != Nil {
		b.WriteString(" . ")
		b.WriteString(cur.String())
	}
	b.WriteByte(')')
	return b.String()
}

// List builds a proper list (a right-nested chain of Pairs terminated by
// Nil) from the given terms.
func List(terms ...Term) Term {
	var result Term = Nil
	for i := len(terms) - 1; i >= 0; i-- {
		result = NewPair(terms[i], result)
	}
	return result
}

// A wraps any Go value as an atomic term. Shorthand for NewAtom, in the
// spirit of a convenience front-end over the core constructors.
func A(value interface{}) Term { return NewAtom(value) }

// L builds a list from mixed values: Term arguments are used as-is, any
// other value is wrapped with A first.
func L(values ...interface{}) Term {
	terms := make([]Term, len(values))
	for i, v := range values {
		if t, ok := v.(Term); ok {
			terms[i] = t
		} else {
			terms[i] = A(v)
		}
	}
	return List(terms...)
}
