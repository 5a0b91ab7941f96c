// Package values implements the literal-to-width conversion primitive
// the parser uses whenever a literal token must become a value of a
// specific integer or floating-point width: enum field values, default
// values, variable_block case values, and attribute literals.
package values

// Width is one of the built-in integer or floating-point type mnemonics
// that may appear after a ':' as an enum/bitfield underlying type, or as
// a struct field's scalar type.
type Width uint8

const (
	U8 Width = iota
	I8
	U16
	I16
	U32
	I32
	U64
	I64
	F32
	F64
)

var widthNames = map[Width]string{
	U8: "u8", I8: "i8",
	U16: "u16", I16: "i16",
	U32: "u32", I32: "i32",
	U64: "u64", I64: "i64",
	F32: "f32", F64: "f64",
}

var namesToWidth = func() map[string]Width {
	m := make(map[string]Width, len(widthNames))
	for w, name := range widthNames {
		m[name] = w
	}

	return m
}()

func (w Width) String() string {
	if name, ok := widthNames[w]; ok {
		return name
	}

	return "unknown"
}

// ParseWidth resolves a type mnemonic such as "u8" or "i64" to its Width.
func ParseWidth(mnemonic string) (Width, bool) {
	w, ok := namesToWidth[mnemonic]

	return w, ok
}

// IsSigned reports whether w is one of the signed integer widths.
func (w Width) IsSigned() bool {
	switch w {
	case I8, I16, I32, I64:
		return true
	default:
		return false
	}
}

// IsFloat reports whether w is a floating-point width.
func (w Width) IsFloat() bool {
	return w == F32 || w == F64
}

// bounds returns the inclusive [min, max] range representable by an
// integer width: min as an int64 (zero for unsigned widths) and max as a
// uint64. Float widths return (0, 0).
func (w Width) bounds() (min int64, max uint64) {
	switch w {
	case U8:
		return 0, 1<<8 - 1
	case I8:
		return -1 << 7, 1<<7 - 1
	case U16:
		return 0, 1<<16 - 1
	case I16:
		return -1 << 15, 1<<15 - 1
	case U32:
		return 0, 1<<32 - 1
	case I32:
		return -1 << 31, 1<<31 - 1
	case U64:
		return 0, 1<<64 - 1
	case I64:
		return -1 << 63, 1<<63 - 1
	default:
		return 0, 0
	}
}
