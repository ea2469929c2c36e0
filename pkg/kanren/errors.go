package kanren

import "fmt"

// CompileError reports a malformed clause AST discovered by Compile — a
// programmer error, never a search failure. It is always raised before any
// goal runs; the driver never executes a goal built from an AST that
// failed to compile.
type CompileError struct {
	Node   string // the clause form that was malformed, e.g. "Conde_"
	Reason string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("kanren: malformed %s clause: %s", e.Node, e.Reason)
}

func newCompileError(node, reason string, args ...interface{}) *CompileError {
	return &CompileError{Node: node, Reason: fmt.Sprintf(reason, args...)}
}
