package ast

import (
	"github.com/golangee/swizzle/token"
	"github.com/golangee/swizzle/values"
)

// Root is the single top-level node of a parsed file: every namespace
// statement, import, extern, type alias, enum, bitfield, struct and
// top-level comment hangs off it directly.
type Root struct {
	Base
	FileName string
}

func NewRoot(fileName string, pos token.FileInfo) *Root {
	return &Root{Base: newBase(KindRoot, pos), FileName: fileName}
}

// Namespace records a "namespace a::b;" statement. It has no children:
// the declarations that follow it are its siblings under Root and carry
// the namespace as the prefix of their qualified Name.
type Namespace struct {
	Base
	Name string
}

func NewNamespace(name string, pos token.FileInfo) *Namespace {
	return &Namespace{Base: newBase(KindNamespace, pos), Name: name}
}

// Import records the relative path of another schema file (its segments
// joined with "/" and suffixed ".swizzle"). The parser does not read
// that file; its declarations are not added to this file's symbols.
type Import struct {
	Base
	Path string
}

func NewImport(path string, pos token.FileInfo) *Import {
	return &Import{Base: newBase(KindImport, pos), Path: path}
}

// Extern forward-declares a type defined elsewhere, satisfying a
// reference to it without supplying a body.
type Extern struct {
	Base
	Name string
}

func NewExtern(name string, pos token.FileInfo) *Extern {
	return &Extern{Base: newBase(KindExtern, pos), Name: name}
}

// TypeAlias binds Name to an existing type mnemonic or declared type.
type TypeAlias struct {
	Base
	Name       string
	Underlying string
}

func NewTypeAlias(name, underlying string, pos token.FileInfo) *TypeAlias {
	return &TypeAlias{Base: newBase(KindTypeAlias, pos), Name: name, Underlying: underlying}
}

// Enum declares a named integer type whose EnumField children carry
// the allocated literal values.
type Enum struct {
	Base
	Name       string
	Underlying values.Width
}

func NewEnum(name string, underlying values.Width, pos token.FileInfo) *Enum {
	return &Enum{Base: newBase(KindEnum, pos), Name: name, Underlying: underlying}
}

// EnumField is one member of an Enum. HasExplicitValue distinguishes a
// field that named its literal from one that received the allocator's
// next value.
type EnumField struct {
	Base
	Name             string
	Value            values.Value
	HasExplicitValue bool
}

func NewEnumField(name string, value values.Value, explicit bool, pos token.FileInfo) *EnumField {
	return &EnumField{Base: newBase(KindEnumField, pos), Name: name, Value: value, HasExplicitValue: explicit}
}

// Bitfield declares a named integer type whose BitfieldField children
// each claim a contiguous, non-overlapping range of bits.
type Bitfield struct {
	Base
	Name       string
	Underlying values.Width
}

func NewBitfield(name string, underlying values.Width, pos token.FileInfo) *Bitfield {
	return &Bitfield{Base: newBase(KindBitfield, pos), Name: name, Underlying: underlying}
}

// BitfieldField claims bits [BeginBit, EndBit] (inclusive, EndBit ==
// BeginBit for a single-bit field) of its parent Bitfield.
type BitfieldField struct {
	Base
	Name     string
	BeginBit int
	EndBit   int
}

func NewBitfieldField(name string, beginBit, endBit int, pos token.FileInfo) *BitfieldField {
	return &BitfieldField{Base: newBase(KindBitfieldField, pos), Name: name, BeginBit: beginBit, EndBit: endBit}
}

// Struct declares an ordered, named record type.
type Struct struct {
	Base
	Name string
}

func NewStruct(name string, pos token.FileInfo) *Struct {
	return &Struct{Base: newBase(KindStruct, pos), Name: name}
}

// StructField is one member of a Struct. The Is* flags and SizerName
// fold the array/vector markers spec's data model lists as separate
// node kinds into properties of the field they modify, matching how a
// concrete field is actually described: a named, typed, optionally
// array/vector/const slot, optionally labeled and attributed.
type StructField struct {
	Base
	Name      string
	TypeName  string
	IsArray   bool
	ArraySize int
	IsVector  bool
	SizerName string
	IsConst   bool
}

func NewStructField(name, typeName string, pos token.FileInfo) *StructField {
	return &StructField{Base: newBase(KindStructField, pos), Name: name, TypeName: typeName}
}

// VariableBlock declares a tagged-union member: one of its
// VariableBlockCase children is selected by a runtime discriminator.
type VariableBlock struct {
	Base
	Name string
}

func NewVariableBlock(name string, pos token.FileInfo) *VariableBlock {
	return &VariableBlock{Base: newBase(KindVariableBlock, pos), Name: name}
}

// VariableBlockCase is one arm of a VariableBlock: Value is the
// discriminator literal that selects this arm, TypeName the type named
// for that arm (not checked against the declared types).
type VariableBlockCase struct {
	Base
	TypeName string
	Value    values.Value
}

func NewVariableBlockCase(typeName string, value values.Value, pos token.FileInfo) *VariableBlockCase {
	return &VariableBlockCase{Base: newBase(KindVariableBlockCase, pos), TypeName: typeName, Value: value}
}

// Attribute is a single key/value (or key-only) annotation attached to
// the declaration that follows it. A "@name=literal" form attaches the
// literal as a single child (one of CharLiteral, StringLiteral,
// NumericLiteral, HexLiteral); a bare "@name" has no children.
type Attribute struct {
	Base
	Name string
}

func NewAttribute(name string, pos token.FileInfo) *Attribute {
	return &Attribute{Base: newBase(KindAttribute, pos), Name: name}
}

// HasValue reports whether this attribute was given a "=literal" value.
func (a *Attribute) HasValue() bool { return len(a.Children()) > 0 }

// AttributeBlock is a "@{ ... }" annotation attached to the declaration
// that follows it. Content is the raw text between the braces; unlike a
// plain Attribute it is not further parsed into a key/value pair.
type AttributeBlock struct {
	Base
	Content string
}

func NewAttributeBlock(content string, pos token.FileInfo) *AttributeBlock {
	return &AttributeBlock{Base: newBase(KindAttributeBlock, pos), Content: content}
}

// CharLiteral is a parsed 'c' literal, reduced to its byte value.
type CharLiteral struct {
	Base
	Lexeme string
	Value  values.Value
}

func NewCharLiteral(lexeme string, value values.Value, pos token.FileInfo) *CharLiteral {
	return &CharLiteral{Base: newBase(KindCharLiteral, pos), Lexeme: lexeme, Value: value}
}

// StringLiteral is a parsed "..." literal.
type StringLiteral struct {
	Base
	Lexeme string
	Text   string
}

func NewStringLiteral(lexeme, text string, pos token.FileInfo) *StringLiteral {
	return &StringLiteral{Base: newBase(KindStringLiteral, pos), Lexeme: lexeme, Text: text}
}

// NumericLiteral is a parsed decimal literal. The parser builds it only
// for attribute values, where Value is stored at i64.
type NumericLiteral struct {
	Base
	Lexeme string
	Value  values.Value
}

func NewNumericLiteral(lexeme string, value values.Value, pos token.FileInfo) *NumericLiteral {
	return &NumericLiteral{Base: newBase(KindNumericLiteral, pos), Lexeme: lexeme, Value: value}
}

// HexLiteral is a parsed 0x... literal.
type HexLiteral struct {
	Base
	Lexeme string
	Value  values.Value
}

func NewHexLiteral(lexeme string, value values.Value, pos token.FileInfo) *HexLiteral {
	return &HexLiteral{Base: newBase(KindHexLiteral, pos), Lexeme: lexeme, Value: value}
}

// DefaultValue holds a struct field's "= <literal>" default.
type DefaultValue struct {
	Base
	Value values.Value
}

func NewDefaultValue(value values.Value, pos token.FileInfo) *DefaultValue {
	return &DefaultValue{Base: newBase(KindDefaultValue, pos), Value: value}
}

// DefaultStringValue holds a struct field's "= \"...\"" default, kept
// distinct from DefaultValue because a string default is never
// width-converted.
type DefaultStringValue struct {
	Base
	Text string
}

func NewDefaultStringValue(text string, pos token.FileInfo) *DefaultStringValue {
	return &DefaultStringValue{Base: newBase(KindDefaultStringValue, pos), Text: text}
}

// FieldLabel holds the "num ':'" tag a struct field was given, fixing its
// wire position independent of declaration order.
type FieldLabel struct {
	Base
	Name string
}

func NewFieldLabel(name string, pos token.FileInfo) *FieldLabel {
	return &FieldLabel{Base: newBase(KindFieldLabel, pos), Name: name}
}

// Comment is a single-line "// ..." comment retained for round-tripping.
type Comment struct {
	Base
	Text string
}

func NewComment(text string, pos token.FileInfo) *Comment {
	return &Comment{Base: newBase(KindComment, pos), Text: text}
}

// MultilineComment is a "//" comment continued onto following lines by
// a trailing backslash.
type MultilineComment struct {
	Base
	Text string
}

func NewMultilineComment(text string, pos token.FileInfo) *MultilineComment {
	return &MultilineComment{Base: newBase(KindMultilineComment, pos), Text: text}
}
