package kanren

import (
	"github.com/hashicorp/go-multierror"
)

// Node is a clause AST value: the data the clause compiler consumes. The
// source-level sugar (Fresh, Conde, DefRel — see relation.go) is a
// front-end that builds these values and calls Compile; it carries no
// semantics of its own that isn't already expressed here. Node values are
// built with the constructors below, never by implementing the interface
// directly.
type Node interface {
	isClauseNode()
}

type goalNode struct{ g Goal }

func (goalNode) isClauseNode() {}

// Goal_ wraps an already-built Goal as a leaf clause node.
func Goal_(g Goal) Node {
	if g == nil {
		g = Fail
	}
	return goalNode{g: g}
}

type conjNode struct{ nodes []Node }

func (conjNode) isClauseNode() {}

// Conj_ builds a conjunction clause node: conj{} compiles to Succeed,
// conj{g} to g, and conj{g1; …; gk} to the left-associative fold
// Conj(Conj(…Conj(g1, g2)…), gk).
func Conj_(nodes ...Node) Node { return conjNode{nodes: nodes} }

type disjNode struct{ nodes []Node }

func (disjNode) isClauseNode() {}

// Disj_ builds a disjunction clause node: disj{} compiles to Fail,
// otherwise symmetric to Conj_. The left-associative fold is observable —
// it fixes the Append-swap interleaving order.
func Disj_(nodes ...Node) Node { return disjNode{nodes: nodes} }

type freshNode struct {
	names []string
	body  func(vars []*Var) Node
}

func (freshNode) isClauseNode() {}

// Fresh_ allocates a fresh variable for each name (in order), binds it
// into body's scope, and compiles conj{body}. A name of "_" is a
// wildcard: it contributes no binding, and the corresponding slot in the
// vars slice passed to body is nil.
func Fresh_(names []string, body func(vars []*Var) Node) Node {
	return freshNode{names: names, body: body}
}

// CondeClause is one arm of a Conde_ clause: a var-binding pattern
// (identical in shape to Fresh_'s names, wildcard included) plus the body
// to compile under those bindings.
type CondeClause struct {
	Vars []string
	Body func(vars []*Var) Node
}

type condeNode struct{ clauses []CondeClause }

func (condeNode) isClauseNode() {}

// Conde_ builds disj over its clauses, each compiled as Fresh_(pattern,
// body).
func Conde_(clauses ...CondeClause) Node { return condeNode{clauses: clauses} }

type callNode struct {
	rel  *Relation
	args []Term
}

func (callNode) isClauseNode() {}

// Call_ invokes a relation defined with DefRel_ with concrete term
// arguments.
func Call_(rel *Relation, args ...Term) Node { return callNode{rel: rel, args: args} }

// Relation is a named goal-producing function defined with DefRel_. Its
// body is compiled fresh at every invocation (Call_), wrapped in the
// mandatory one-step delay (Suspend) so recursive relations terminate at
// construction time.
type Relation struct {
	name  string
	arity int
	body  func(args []Term) Node

	// Shape validation runs lazily, once, on first invocation rather than
	// inside DefRel_ itself — package-level relations are conventionally
	// defined as "var Foo = DefRel_(...)" with a body that refers to Foo
	// by closing over it, so Foo's own Relation value does not exist yet
	// while DefRel_ runs. validating guards against the reentrant call
	// that results when a relation's body calls itself: the inner call
	// sees validating already true and skips straight to compiling the
	// invocation, exactly as every other nested Call_ does. The search
	// engine is single-threaded by design (see Stream), so a plain bool
	// is the correct primitive here, not sync.Once.
	validated  bool
	validating bool
	defErr     error
}

// Name returns the relation's name, conventionally suffixed "o".
func (r *Relation) Name() string { return r.name }

// DefRel_ defines a relation: a named function from concrete term
// arguments to a goal. The body's shape is checked against dummy fresh
// arguments the first time the relation is invoked (see validate) —
// malformed AST inside a relation (a nil Fresh_ body, a Conde_ clause
// with a nil body, a nested Call_ with the wrong arity) is a compile-time
// error raised before that first invocation's goal ever runs, not a
// silent search failure.
func DefRel_(name string, arity int, body func(args []Term) Node) *Relation {
	return &Relation{name: name, arity: arity, body: body}
}

// validate checks the relation's shape against dummy fresh arguments,
// once. It is a no-op if validation already ran or is already in
// progress higher up the call stack (the case for a relation that calls
// itself, directly or through another relation).
func (r *Relation) validate() {
	if r.validated || r.validating {
		return
	}
	r.validating = true
	defer func() {
		r.validating = false
		r.validated = true
	}()

	if r.body == nil {
		r.defErr = newCompileError("DefRel_", "relation %q has a nil body", r.name)
		return
	}
	dummyArgs := make([]Term, r.arity)
	for i := range dummyArgs {
		dummyArgs[i] = FreshVar()
	}
	node := r.body(dummyArgs)
	if node == nil {
		r.defErr = newCompileError("DefRel_", "relation %q body returned a nil clause node", r.name)
		return
	}
	if _, errs := compileNode(node); len(errs) > 0 {
		r.defErr = aggregateErrors(errs)
	}
}

// Compile transforms a clause AST into a goal, applying the six rules of
// the clause compiler inside-out. It returns a non-nil error — aggregated
// with go-multierror when more than one problem is found in a single
// call — if and only if the AST is malformed; a malformed AST never
// produces a goal that fails silently during search.
func Compile(node Node) (Goal, error) {
	g, errs := compileNode(node)
	if len(errs) == 0 {
		return g, nil
	}
	return Fail, aggregateErrors(errs)
}

func aggregateErrors(errs []error) error {
	if len(errs) == 1 {
		return errs[0]
	}
	var merr *multierror.Error
	for _, e := range errs {
		merr = multierror.Append(merr, e)
	}
	return merr.ErrorOrNil()
}

func compileNode(node Node) (Goal, []error) {
	switch n := node.(type) {
	case goalNode:
		return n.g, nil
	case conjNode:
		return compileConj(n.nodes)
	case disjNode:
		return compileDisj(n.nodes)
	case freshNode:
		return compileFresh(n.names, n.body)
	case condeNode:
		return compileConde(n.clauses)
	case callNode:
		return compileCall(n.rel, n.args)
	default:
		return Fail, []error{newCompileError("Node", "unknown clause node type %T", node)}
	}
}

func compileConj(nodes []Node) (Goal, []error) {
	if len(nodes) == 0 {
		return Succeed, nil
	}
	goals := make([]Goal, 0, len(nodes))
	var errs []error
	for _, n := range nodes {
		if n == nil {
			errs = append(errs, newCompileError("Conj_", "nil clause node in conjunction"))
			continue
		}
		g, es := compileNode(n)
		if len(es) > 0 {
			errs = append(errs, es...)
			continue
		}
		goals = append(goals, g)
	}
	if len(errs) > 0 {
		return Fail, errs
	}
	return Conj(goals...), nil
}

func compileDisj(nodes []Node) (Goal, []error) {
	if len(nodes) == 0 {
		return Fail, nil
	}
	goals := make([]Goal, 0, len(nodes))
	var errs []error
	for _, n := range nodes {
		if n == nil {
			errs = append(errs, newCompileError("Disj_", "nil clause node in disjunction"))
			continue
		}
		g, es := compileNode(n)
		if len(es) > 0 {
			errs = append(errs, es...)
			continue
		}
		goals = append(goals, g)
	}
	if len(errs) > 0 {
		return Fail, errs
	}
	return Disj(goals...), nil
}

func compileFresh(names []string, body func(vars []*Var) Node) (Goal, []error) {
	if body == nil {
		return Fail, []error{newCompileError("Fresh_", "body function is nil")}
	}
	vars := make([]*Var, len(names))
	for i, name := range names {
		if name == "_" {
			continue // wildcard: contributes no binding
		}
		vars[i] = FreshVarNamed(name)
	}
	node := body(vars)
	if node == nil {
		return Fail, []error{newCompileError("Fresh_", "body returned a nil clause node")}
	}
	return compileNode(node)
}

func compileConde(clauses []CondeClause) (Goal, []error) {
	if len(clauses) == 0 {
		return Fail, nil
	}
	goals := make([]Goal, 0, len(clauses))
	var errs []error
	for i, c := range clauses {
		if c.Body == nil {
			errs = append(errs, newCompileError("Conde_", "clause %d has a nil body", i))
			continue
		}
		g, es := compileFresh(c.Vars, c.Body)
		if len(es) > 0 {
			errs = append(errs, es...)
			continue
		}
		goals = append(goals, g)
	}
	if len(errs) > 0 {
		return Fail, errs
	}
	return Disj(goals...), nil
}

func compileCall(rel *Relation, args []Term) (Goal, []error) {
	if rel == nil {
		return Fail, []error{newCompileError("Call_", "relation is nil")}
	}
	rel.validate()
	if rel.defErr != nil {
		return Fail, []error{rel.defErr}
	}
	if len(args) != rel.arity {
		return Fail, []error{newCompileError("Call_", "relation %q expects %d argument(s), got %d", rel.name, rel.arity, len(args))}
	}

	// The one-step delay is mandatory (spec.md §4.4): neither the body's
	// construction nor its evaluation happens until something forces the
	// suspension, which is what lets a relation invoke itself here
	// without diverging before Compile returns.
	return Suspend(func(s *Subst) *Stream {
		node := rel.body(args)
		if node == nil {
			return StreamEmpty
		}
		g, errs := compileNode(node)
		if len(errs) > 0 {
			return StreamEmpty
		}
		return g(s)
	}), nil
}
