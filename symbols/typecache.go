package symbols

import "github.com/golangee/swizzle/ast"

// TypeCache resolves a type name referenced as a struct field's type
// back to the ast.Node that declared it. It is populated from a Table's entries
// restricted to the node kinds that introduce a type.
type TypeCache struct {
	byName map[string]ast.Node
}

// NewTypeCache builds a TypeCache from every type-introducing
// declaration recorded in t.
func NewTypeCache(t *Table) *TypeCache {
	tc := &TypeCache{byName: make(map[string]ast.Node)}

	for _, name := range t.Names() {
		info, _ := t.Lookup(name)

		switch info.Node.Kind() {
		case ast.KindEnum, ast.KindBitfield, ast.KindStruct, ast.KindTypeAlias, ast.KindExtern:
			tc.byName[name] = info.Node
		}
	}

	return tc
}

// Resolve looks up name, trying it first as given (a fully-qualified
// reference) and then, if namespace is non-empty, qualified under the
// current namespace. A name declared both as given and under the
// current namespace resolves to the as-given declaration.
func (tc *TypeCache) Resolve(namespace, name string) (ast.Node, bool) {
	if n, ok := tc.byName[name]; ok {
		return n, true
	}

	if namespace != "" {
		n, ok := tc.byName[Qualify(namespace, name)]

		return n, ok
	}

	return nil, false
}
