// Package ast defines the abstract syntax tree the parser builds: a
// closed set of node kinds, a shared Base embedding every concrete node
// uses for position and parent/child bookkeeping, and a Visitor that
// tree-walking passes dispatch through.
package ast

// Kind identifies which concrete node type a Node value holds.
type Kind uint8

const (
	KindRoot Kind = iota
	KindNamespace
	KindImport
	KindExtern
	KindTypeAlias
	KindEnum
	KindEnumField
	KindBitfield
	KindBitfieldField
	KindStruct
	KindStructField
	KindVariableBlock
	KindVariableBlockCase
	KindAttribute
	KindAttributeBlock
	KindCharLiteral
	KindStringLiteral
	KindNumericLiteral
	KindHexLiteral
	KindDefaultValue
	KindDefaultStringValue
	KindFieldLabel
	KindComment
	KindMultilineComment
)

var kindNames = map[Kind]string{
	KindRoot:               "Root",
	KindNamespace:          "Namespace",
	KindImport:             "Import",
	KindExtern:             "Extern",
	KindTypeAlias:          "TypeAlias",
	KindEnum:               "Enum",
	KindEnumField:          "EnumField",
	KindBitfield:           "Bitfield",
	KindBitfieldField:      "BitfieldField",
	KindStruct:             "Struct",
	KindStructField:        "StructField",
	KindVariableBlock:      "VariableBlock",
	KindVariableBlockCase:  "VariableBlockCase",
	KindAttribute:          "Attribute",
	KindAttributeBlock:     "AttributeBlock",
	KindCharLiteral:        "CharLiteral",
	KindStringLiteral:      "StringLiteral",
	KindNumericLiteral:     "NumericLiteral",
	KindHexLiteral:         "HexLiteral",
	KindDefaultValue:       "DefaultValue",
	KindDefaultStringValue: "DefaultStringValue",
	KindFieldLabel:         "FieldLabel",
	KindComment:            "Comment",
	KindMultilineComment:   "MultilineComment",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return "unknown"
}

// Depth controls how far a traversal recurses from the node it starts at.
type Depth uint8

const (
	// One visits only the given node, not its children.
	One Depth = iota
	// All recurses into every descendant.
	All
)
