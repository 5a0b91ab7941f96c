package ast

import "fmt"

// Visitor is implemented by passes that walk the tree: one method per
// concrete node kind, dispatched by Accept.
type Visitor interface {
	VisitRoot(n *Root) error
	VisitNamespace(n *Namespace) error
	VisitImport(n *Import) error
	VisitExtern(n *Extern) error
	VisitTypeAlias(n *TypeAlias) error
	VisitEnum(n *Enum) error
	VisitEnumField(n *EnumField) error
	VisitBitfield(n *Bitfield) error
	VisitBitfieldField(n *BitfieldField) error
	VisitStruct(n *Struct) error
	VisitStructField(n *StructField) error
	VisitVariableBlock(n *VariableBlock) error
	VisitVariableBlockCase(n *VariableBlockCase) error
	VisitAttribute(n *Attribute) error
	VisitAttributeBlock(n *AttributeBlock) error
	VisitCharLiteral(n *CharLiteral) error
	VisitStringLiteral(n *StringLiteral) error
	VisitNumericLiteral(n *NumericLiteral) error
	VisitHexLiteral(n *HexLiteral) error
	VisitDefaultValue(n *DefaultValue) error
	VisitDefaultStringValue(n *DefaultStringValue) error
	VisitFieldLabel(n *FieldLabel) error
	VisitComment(n *Comment) error
	VisitMultilineComment(n *MultilineComment) error
}

// Accept dispatches n to the matching Visitor method, then — when depth
// is All — recurses into n's children. This single function replaces a
// per-type Accept method for each of the kinds above; the parent of n
// during the visit is always available via n.Parent(), so the original
// three-argument "accept(visitor, parent, depth)" shape collapses to
// Accept(n, v, depth) without losing information.
func Accept(n Node, v Visitor, depth Depth) error {
	if err := dispatch(n, v); err != nil {
		return err
	}

	if depth == All {
		for _, child := range n.Children() {
			if err := Accept(child, v, All); err != nil {
				return err
			}
		}
	}

	return nil
}

func dispatch(n Node, v Visitor) error {
	switch t := n.(type) {
	case *Root:
		return v.VisitRoot(t)
	case *Namespace:
		return v.VisitNamespace(t)
	case *Import:
		return v.VisitImport(t)
	case *Extern:
		return v.VisitExtern(t)
	case *TypeAlias:
		return v.VisitTypeAlias(t)
	case *Enum:
		return v.VisitEnum(t)
	case *EnumField:
		return v.VisitEnumField(t)
	case *Bitfield:
		return v.VisitBitfield(t)
	case *BitfieldField:
		return v.VisitBitfieldField(t)
	case *Struct:
		return v.VisitStruct(t)
	case *StructField:
		return v.VisitStructField(t)
	case *VariableBlock:
		return v.VisitVariableBlock(t)
	case *VariableBlockCase:
		return v.VisitVariableBlockCase(t)
	case *Attribute:
		return v.VisitAttribute(t)
	case *AttributeBlock:
		return v.VisitAttributeBlock(t)
	case *CharLiteral:
		return v.VisitCharLiteral(t)
	case *StringLiteral:
		return v.VisitStringLiteral(t)
	case *NumericLiteral:
		return v.VisitNumericLiteral(t)
	case *HexLiteral:
		return v.VisitHexLiteral(t)
	case *DefaultValue:
		return v.VisitDefaultValue(t)
	case *DefaultStringValue:
		return v.VisitDefaultStringValue(t)
	case *FieldLabel:
		return v.VisitFieldLabel(t)
	case *Comment:
		return v.VisitComment(t)
	case *MultilineComment:
		return v.VisitMultilineComment(t)
	default:
		return fmt.Errorf("ast: Accept: unhandled node kind %T", n)
	}
}
