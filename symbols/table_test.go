package symbols_test

import (
	"testing"

	"github.com/golangee/swizzle/ast"
	"github.com/golangee/swizzle/symbols"
	"github.com/golangee/swizzle/token"
)

func TestTableDefineAndLookup(t *testing.T) {
	tbl := symbols.New()
	pos := token.NewFileInfo("t.swizzle")
	node := ast.NewStruct("Packet", pos)

	if err := tbl.Define("net", "Packet", node, pos); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	info, ok := tbl.Lookup("net::Packet")
	if !ok {
		t.Fatal("expected net::Packet to be defined")
	}

	if info.Node != node {
		t.Fatalf("expected looked up node to be the defined node")
	}

	if got := tbl.Names(); len(got) != 1 || got[0] != "net::Packet" {
		t.Fatalf("Names() = %v, want [net::Packet]", got)
	}
}

func TestTableRedefinitionIsSyntaxError(t *testing.T) {
	tbl := symbols.New()
	pos := token.NewFileInfo("t.swizzle")
	node := ast.NewStruct("Packet", pos)

	if err := tbl.Define("net", "Packet", node, pos); err != nil {
		t.Fatalf("unexpected error on first define: %v", err)
	}

	err := tbl.Define("net", "Packet", node, pos)
	if err == nil {
		t.Fatal("expected redefinition error")
	}

	if _, ok := err.(*token.SyntaxError); !ok {
		t.Fatalf("expected *token.SyntaxError, got %T", err)
	}
}

func TestQualifyAndSplit(t *testing.T) {
	if got := symbols.Qualify("", "Foo"); got != "Foo" {
		t.Fatalf("Qualify(\"\", Foo) = %q, want Foo", got)
	}

	if got := symbols.Qualify("a::b", "Foo"); got != "a::b::Foo" {
		t.Fatalf("Qualify(a::b, Foo) = %q, want a::b::Foo", got)
	}

	ns, name := symbols.Split("a::b::Foo")
	if ns != "a::b" || name != "Foo" {
		t.Fatalf("Split(a::b::Foo) = (%q, %q), want (a::b, Foo)", ns, name)
	}

	ns, name = symbols.Split("Foo")
	if ns != "" || name != "Foo" {
		t.Fatalf("Split(Foo) = (%q, %q), want (\"\", Foo)", ns, name)
	}
}

func TestTypeCacheResolve(t *testing.T) {
	tbl := symbols.New()
	pos := token.NewFileInfo("t.swizzle")
	enumNode := ast.NewEnum("Color", 0, pos)

	if err := tbl.Define("gfx", "Color", enumNode, pos); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tc := symbols.NewTypeCache(tbl)

	n, ok := tc.Resolve("gfx", "Color")
	if !ok || n != enumNode {
		t.Fatalf("Resolve(gfx, Color) = (%v, %v), want (enumNode, true)", n, ok)
	}

	if _, ok := tc.Resolve("", "Color"); ok {
		t.Fatal("expected unqualified lookup outside the namespace to fail")
	}
}
