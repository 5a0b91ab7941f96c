// SPDX-FileCopyrightText: © 2021 The dyml authors <https://github.com/golangee/dyml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package token

// Type is the closed set of lexical categories the tokenizer produces.
type Type uint8

const (
	// Whitespace is the zero value: a reset sentinel for a not-yet-classified
	// pending token. The tokenizer never emits it.
	Whitespace Type = iota

	String         // identifier: foo, Bar_Baz
	StringLiteral  // "quoted text"
	CharLiteral    // 'c'
	NumericLiteral // 42, -3
	FloatLiteral   // reserved; no lexical rule currently produces this
	HexLiteral     // 0x2a

	Attribute      // @
	AttributeBlock // @{ ... }

	Keyword     // import namespace using struct enum const case extern
	BuiltinType // u8 i8 u16 i16 u32 i32 u64 i64 f32 f64 bitfield variable_block

	LBrace    // {
	RBrace    // }
	LBracket  // [
	RBracket  // ]
	Equal     // =
	Semicolon // ;
	Dot       // .
	Comma     // ,
	Colon     // :

	Comment          // // to end of line
	MultilineComment // // continued with a trailing backslash
)

var typeNames = map[Type]string{
	Whitespace:       "whitespace",
	String:           "string",
	StringLiteral:    "string_literal",
	CharLiteral:      "char_literal",
	NumericLiteral:   "numeric_literal",
	FloatLiteral:     "float_literal",
	HexLiteral:       "hex_literal",
	Attribute:        "attribute",
	AttributeBlock:   "attribute_block",
	Keyword:          "keyword",
	BuiltinType:      "type",
	LBrace:           "{",
	RBrace:           "}",
	LBracket:         "[",
	RBracket:         "]",
	Equal:            "=",
	Semicolon:        ";",
	Dot:              ".",
	Comma:            ",",
	Colon:            ":",
	Comment:          "comment",
	MultilineComment: "multiline_comment",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}

	return "unknown_token_type"
}

// keywords is the closed keyword set recognized by the language.
var keywords = map[string]bool{
	"import":    true,
	"namespace": true,
	"using":     true,
	"struct":    true,
	"enum":      true,
	"const":     true,
	"case":      true,
	"extern":    true,
}

// builtinTypes is the closed set of built-in type mnemonics, including the
// two compound types bitfield and variable_block (see spec §9, Open Questions:
// bitfield is classified as a type, not a keyword).
var builtinTypes = map[string]bool{
	"u8": true, "i8": true,
	"u16": true, "i16": true,
	"u32": true, "i32": true,
	"u64": true, "i64": true,
	"f32": true, "f64": true,
	"bitfield":       true,
	"variable_block": true,
}

// IsKeyword reports whether word is one of the reserved keywords.
func IsKeyword(word string) bool {
	return keywords[word]
}

// IsBuiltinType reports whether word names a built-in scalar or compound type.
func IsBuiltinType(word string) bool {
	return builtinTypes[word]
}

// classify resolves the Type of an accumulated identifier-like lexeme.
func classify(lexeme string) Type {
	switch {
	case IsKeyword(lexeme):
		return Keyword
	case IsBuiltinType(lexeme):
		return BuiltinType
	default:
		return String
	}
}

// Token is a non-owning view into the tokenizer's source buffer: the
// slice of the original text the token spans (a Go string slice, itself
// a zero-copy view over the immutable source), its byte Offset and
// Length in that buffer, and its Type tag.
type Token struct {
	Lexeme string
	Offset int
	Length int
	Type   Type
}

func (t Token) String() string {
	return t.Lexeme
}

// Info pairs a Token with the FileInfo range it occupies — the parser's
// input unit.
type Info struct {
	Token Token
	File  FileInfo
}

func (i Info) String() string {
	return i.File.String() + ": " + i.Token.Type.String() + " " + i.Token.Lexeme
}
