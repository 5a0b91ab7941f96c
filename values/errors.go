package values

import "fmt"

// InvalidInputError means the lexeme could not be parsed as any
// recognized literal form (decimal, hex, or character) for SetValue.
type InvalidInputError struct {
	Lexeme string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid literal %q", e.Lexeme)
}

// OverflowError means a literal's value exceeds the maximum representable
// by the requested Width.
type OverflowError struct {
	Lexeme string
	Width  Width
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("value %q overflows %s", e.Lexeme, e.Width)
}

// UnderflowError means a literal's value is below the minimum
// representable by the requested Width (always zero for unsigned widths).
type UnderflowError struct {
	Lexeme string
	Width  Width
}

func (e *UnderflowError) Error() string {
	return fmt.Sprintf("value %q underflows %s", e.Lexeme, e.Width)
}

// EmptyError means SetValue was asked to parse an empty lexeme.
type EmptyError struct{}

func (e *EmptyError) Error() string {
	return "empty literal"
}
