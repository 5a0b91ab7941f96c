// Package symbols tracks declared names during parsing: the namespace-
// scoped SymbolTable every declaration registers into, and the TypeCache
// that resolves a declared type name back to the node that declared it.
package symbols

import (
	"strings"

	"github.com/golangee/swizzle/ast"
	"github.com/golangee/swizzle/token"
)

// Info records where and what a declared name binds to.
type Info struct {
	Name string
	Node ast.Node
	Pos  token.FileInfo
}

// Table is an insertion-order-preserving map of fully-qualified name to
// declaration, rejecting redefinition. Order is preserved because later
// passes (code generation, pretty-printing) must reproduce the source's
// declaration order, not Go's randomized map order.
type Table struct {
	order   []string
	entries map[string]Info
}

// New returns an empty Table.
func New() *Table {
	return &Table{entries: make(map[string]Info)}
}

// Define registers name at the given namespace (use "" for the root
// namespace) as declared by node at pos. It returns a *token.SyntaxError
// if the fully-qualified name was already defined.
func (t *Table) Define(namespace, name string, node ast.Node, pos token.FileInfo) error {
	qualified := Qualify(namespace, name)

	if existing, ok := t.entries[qualified]; ok {
		return &token.SyntaxError{
			File:    pos,
			Message: "redefinition of '" + qualified + "', previously declared at " + existing.Pos.String(),
		}
	}

	t.entries[qualified] = Info{Name: qualified, Node: node, Pos: pos}
	t.order = append(t.order, qualified)

	return nil
}

// Lookup resolves a fully-qualified name.
func (t *Table) Lookup(qualified string) (Info, bool) {
	info, ok := t.entries[qualified]

	return info, ok
}

// Names returns every defined fully-qualified name in declaration order.
func (t *Table) Names() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)

	return out
}

// Len reports how many names are defined.
func (t *Table) Len() int { return len(t.order) }

// Qualify joins a namespace and a local name with "::", the same
// separator the grammar uses for namespace paths. An empty namespace
// returns name unchanged.
func Qualify(namespace, name string) string {
	if namespace == "" {
		return name
	}

	return namespace + "::" + name
}

// Split reverses Qualify, returning the namespace portion (possibly
// empty) and the local name.
func Split(qualified string) (namespace, name string) {
	idx := strings.LastIndex(qualified, "::")
	if idx < 0 {
		return "", qualified
	}

	return qualified[:idx], qualified[idx+2:]
}
