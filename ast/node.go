package ast

import "github.com/golangee/swizzle/token"

// Node is implemented by every concrete AST node. The base() accessor is
// unexported so only types in this package can satisfy Node.
type Node interface {
	Kind() Kind
	Pos() token.FileInfo
	Parent() Node
	Children() []Node
	base() *Base
}

// Base is embedded by every concrete node and implements the bookkeeping
// shared across the whole tree: its kind, source range, parent link and
// child list.
type Base struct {
	kind     Kind
	pos      token.FileInfo
	parent   Node
	children []Node
}

func newBase(kind Kind, pos token.FileInfo) Base {
	return Base{kind: kind, pos: pos}
}

func (b *Base) Kind() Kind            { return b.kind }
func (b *Base) Pos() token.FileInfo   { return b.pos }
func (b *Base) Parent() Node          { return b.parent }
func (b *Base) Children() []Node      { return b.children }
func (b *Base) base() *Base           { return b }

// Attach appends child to parent's child list and records parent as
// child's parent. It is the only way nodes are linked, so Parent() is
// always consistent with Children().
func Attach(parent, child Node) {
	parent.base().children = append(parent.base().children, child)
	child.base().parent = parent
}

// SetPos overwrites a node's recorded source range. Parsers build nodes
// before their full extent (closing brace, trailing semicolon) is known
// and widen the range once the construct closes.
func SetPos(n Node, pos token.FileInfo) {
	n.base().pos = pos
}
