// Package relations is a small library of common relations built entirely
// on top of pkg/kanren's core (Fresh, Conde, DefRel) — nothing here
// reaches into kanren's internals. Each relation is bidirectional in the
// classic miniKanren sense: arguments may be bound, unbound, or partially
// bound, and the same definition answers "compute," "verify," and
// "generate" queries alike depending on which argument carries the
// unknown.
package relations

import "github.com/relateware/gokanren/pkg/kanren"

// Appendo relates xs, ys and zs such that zs is xs with ys appended.
// Bidirectional: with xs and ys bound it computes zs; with zs bound and
// xs or ys unbound it enumerates every way of splitting zs.
//
//	Appendo(List(1,2), List(3,4), zs)   // zs = [1 2 3 4]
//	Appendo(xs, ys, List(1,2,3))        // xs,ys range over every split
var Appendo = kanren.DefRel("appendo", 3, func(args []kanren.Term) kanren.Goal {
	xs, ys, zs := args[0], args[1], args[2]
	return kanren.Conde(
		kanren.CondeArm{
			Vars: []string{},
			Body: func(_ []*kanren.Var) kanren.Goal {
				return kanren.Conj(kanren.Eq(xs, kanren.Nil), kanren.Eq(ys, zs))
			},
		},
		kanren.CondeArm{
			Vars: []string{"head", "xsRest", "zsRest"},
			Body: func(v []*kanren.Var) kanren.Goal {
				head, xsRest, zsRest := v[0], v[1], v[2]
				return kanren.Conj(
					kanren.Eq(xs, kanren.NewPair(head, xsRest)),
					kanren.Eq(zs, kanren.NewPair(head, zsRest)),
					Appendo.Goal(xsRest, ys, zsRest),
				)
			},
		},
	)
})

// Membero relates an element to a list it occurs in. Bidirectional: with
// the list bound it enumerates the list's members in order (with
// repeats); with the element bound and the list unbound it generates
// lists containing that element at every position.
var Membero = kanren.DefRel("membero", 2, func(args []kanren.Term) kanren.Goal {
	x, list := args[0], args[1]
	return kanren.Conde(
		kanren.CondeArm{
			Vars: []string{"rest"},
			Body: func(v []*kanren.Var) kanren.Goal {
				return kanren.Eq(list, kanren.NewPair(x, v[0]))
			},
		},
		kanren.CondeArm{
			Vars: []string{"head", "rest"},
			Body: func(v []*kanren.Var) kanren.Goal {
				head, rest := v[0], v[1]
				return kanren.Conj(
					kanren.Eq(list, kanren.NewPair(head, rest)),
					Membero.Goal(x, rest),
				)
			},
		},
	)
})

// Rembero relates an element, an input list and an output list, where the
// output list is the input list with one occurrence of the element
// removed. Removing the first occurrence is the first answer; removing each
// later occurrence is a further answer. Bidirectional: known element and input produce the output;
// known element and output can generate candidate inputs; known input and
// output can determine what element was removed.
var Rembero = kanren.DefRel("rembero", 3, func(args []kanren.Term) kanren.Goal {
	element, input, output := args[0], args[1], args[2]
	return kanren.Conde(
		kanren.CondeArm{
			Vars: []string{"rest"},
			Body: func(v []*kanren.Var) kanren.Goal {
				rest := v[0]
				return kanren.Conj(
					kanren.Eq(input, kanren.NewPair(element, rest)),
					kanren.Eq(output, rest),
				)
			},
		},
		kanren.CondeArm{
			Vars: []string{"head", "tail", "restOutput"},
			Body: func(v []*kanren.Var) kanren.Goal {
				head, tail, restOutput := v[0], v[1], v[2]
				return kanren.Conj(
					kanren.Eq(input, kanren.NewPair(head, tail)),
					kanren.Eq(output, kanren.NewPair(head, restOutput)),
					Rembero.Goal(element, tail, restOutput),
				)
			},
		},
	)
})

// sameLengtho succeeds when xs and ys have the same length, without
// relating their elements. It exists to bound Reverso's search — calling
// Appendo with both list arguments unbound would otherwise enumerate
// arbitrarily long lists before ever reaching a length that fits.
var sameLengtho = kanren.DefRel("sameLengtho", 2, func(args []kanren.Term) kanren.Goal {
	xs, ys := args[0], args[1]
	return kanren.Conde(
		kanren.CondeArm{
			Vars: []string{},
			Body: func(_ []*kanren.Var) kanren.Goal {
				return kanren.Conj(kanren.Eq(xs, kanren.Nil), kanren.Eq(ys, kanren.Nil))
			},
		},
		kanren.CondeArm{
			Vars: []string{"xsRest", "ysRest", "_x", "_y"},
			Body: func(v []*kanren.Var) kanren.Goal {
				xsRest, ysRest, x, y := v[0], v[1], v[2], v[3]
				return kanren.Conj(
					kanren.Eq(xs, kanren.NewPair(x, xsRest)),
					kanren.Eq(ys, kanren.NewPair(y, ysRest)),
					sameLengtho.Goal(xsRest, ysRest),
				)
			},
		},
	)
})

var reversoCore = kanren.DefRel("reversoCore", 2, func(args []kanren.Term) kanren.Goal {
	list, reversed := args[0], args[1]
	return kanren.Conde(
		kanren.CondeArm{
			Vars: []string{},
			Body: func(_ []*kanren.Var) kanren.Goal {
				return kanren.Conj(kanren.Eq(list, kanren.Nil), kanren.Eq(reversed, kanren.Nil))
			},
		},
		kanren.CondeArm{
			Vars: []string{"head", "tail", "revTail"},
			Body: func(v []*kanren.Var) kanren.Goal {
				head, tail, revTail := v[0], v[1], v[2]
				return kanren.Conj(
					kanren.Eq(list, kanren.NewPair(head, tail)),
					reversoCore.Goal(tail, revTail),
					Appendo.Goal(revTail, kanren.List(head), reversed),
				)
			},
		},
	)
})

// Reverso relates a list to its reverse. Bidirectional in both
// directions, terminating either way because sameLengtho fixes both
// lists' length before reversoCore ever calls Appendo with two unbound
// list arguments.
var Reverso = kanren.DefRel("reverso", 2, func(args []kanren.Term) kanren.Goal {
	list, reversed := args[0], args[1]
	return kanren.Conj(
		sameLengtho.Goal(list, reversed),
		reversoCore.Goal(list, reversed),
	)
})

// Lengtho relates a list to its length represented as a Peano numeral
// (nested pairs: zero is the empty list, n+1 is a pair of the atom "s"
// and n). Bidirectional: a bound list yields its length; a bound length
// generates lists of exactly that length with unbound elements.
var Lengtho = kanren.DefRel("lengtho", 2, func(args []kanren.Term) kanren.Goal {
	list, length := args[0], args[1]
	return kanren.Conde(
		kanren.CondeArm{
			Vars: []string{},
			Body: func(_ []*kanren.Var) kanren.Goal {
				return kanren.Conj(kanren.Eq(list, kanren.Nil), kanren.Eq(length, kanren.Nil))
			},
		},
		kanren.CondeArm{
			Vars: []string{"head", "tail", "restLength"},
			Body: func(v []*kanren.Var) kanren.Goal {
				head, tail, restLength := v[0], v[1], v[2]
				return kanren.Conj(
					kanren.Eq(list, kanren.NewPair(head, tail)),
					kanren.Eq(length, kanren.NewPair(kanren.A("s"), restLength)),
					Lengtho.Goal(tail, restLength),
				)
			},
		},
	)
})
