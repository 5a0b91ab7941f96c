package parser

import (
	"math"

	"github.com/golangee/swizzle/symbols"
	"github.com/golangee/swizzle/values"
)

// Context is the per-file parser state described by the design as "the
// only global state": the namespace the parser is currently appending
// declarations under, the enum value allocator and its duplicate-
// detection set, the bitfield bit cursor, the const-member flag a
// struct field's parse picks up from a preceding 'const' keyword, and
// the SymbolTable every declaration registers into.
type Context struct {
	CurrentNamespace string

	CurrentEnumValue     values.Value
	EnumValueAllocations map[uint64]bool

	CurrentBitfieldBit int

	MemberIsConst bool

	Symbols  *symbols.Table
	Resolver ImportResolver
}

// NewContext returns a Context ready to parse a translation unit,
// resolving imports through resolver (nil disables import validation).
func NewContext(resolver ImportResolver) *Context {
	return &Context{
		Symbols:  symbols.New(),
		Resolver: resolver,
	}
}

// resetEnumScope is invoked on entering an enum's '{': the allocator
// starts at the underlying width's zero and the duplicate set is empty.
func (c *Context) resetEnumScope(width values.Width) {
	c.CurrentEnumValue = values.Zero(width)
	c.EnumValueAllocations = make(map[uint64]bool)
}

// resetBitfieldScope is invoked on entering a bitfield's '{': the bit
// cursor is set below any legal bit position so the first field's begin
// bit (>= 0) always satisfies begin > CurrentBitfieldBit.
func (c *Context) resetBitfieldScope() {
	c.CurrentBitfieldBit = math.MinInt
}
