// SPDX-FileCopyrightText: © 2021 The dyml authors <https://github.com/golangee/dyml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package token

import (
	"testing"
)

// want is the shape TestLexer compares each emitted token against: its
// Type and Lexeme. Position assertions live in TestLexerPositions below,
// kept separate so a lexeme-only test case doesn't have to spell out a
// FileInfo for every token.
type want struct {
	typ    Type
	lexeme string
}

func TestLexer(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		want    []want
		wantErr bool
	}{
		{name: "empty", src: "", want: nil},
		{name: "whitespace only", src: "  \t\n  ", want: nil},
		{
			name: "identifier",
			src:  "fooBar_1",
			want: []want{{String, "fooBar_1"}},
		},
		{
			name: "keyword",
			src:  "namespace",
			want: []want{{Keyword, "namespace"}},
		},
		{
			name: "all keywords",
			src:  "import namespace using struct enum const case extern",
			want: []want{
				{Keyword, "import"}, {Keyword, "namespace"}, {Keyword, "using"},
				{Keyword, "struct"}, {Keyword, "enum"}, {Keyword, "const"},
				{Keyword, "case"}, {Keyword, "extern"},
			},
		},
		{
			name: "builtin types",
			src:  "u8 i8 u16 i16 u32 i32 u64 i64 f32 f64 bitfield variable_block",
			want: []want{
				{BuiltinType, "u8"}, {BuiltinType, "i8"}, {BuiltinType, "u16"}, {BuiltinType, "i16"},
				{BuiltinType, "u32"}, {BuiltinType, "i32"}, {BuiltinType, "u64"}, {BuiltinType, "i64"},
				{BuiltinType, "f32"}, {BuiltinType, "f64"}, {BuiltinType, "bitfield"}, {BuiltinType, "variable_block"},
			},
		},
		{
			name: "punctuation",
			src:  "{}[].;,=",
			want: []want{
				{LBrace, "{"}, {RBrace, "}"}, {LBracket, "["}, {RBracket, "]"},
				{Dot, "."}, {Semicolon, ";"}, {Comma, ","}, {Equal, "="},
			},
		},
		{
			name: "scope operator is two colons",
			src:  "a::b",
			want: []want{{String, "a"}, {Colon, ":"}, {Colon, ":"}, {String, "b"}},
		},
		{
			name: "numeric literal",
			src:  "42",
			want: []want{{NumericLiteral, "42"}},
		},
		{
			name: "negative numeric literal",
			src:  "-3",
			want: []want{{NumericLiteral, "-3"}},
		},
		{
			name: "zero reclassifies to numeric",
			src:  "0",
			want: []want{{NumericLiteral, "0"}},
		},
		{
			name: "leading zero decimal reclassifies",
			src:  "0100",
			want: []want{{NumericLiteral, "0100"}},
		},
		{
			name: "hex literal",
			src:  "0x2a",
			want: []want{{HexLiteral, "0x2a"}},
		},
		{
			name: "hex literal uppercase digits",
			src:  "0xFF",
			want: []want{{HexLiteral, "0xFF"}},
		},
		{
			name: "zero followed by punctuation flushes as numeric zero",
			src:  "0;",
			want: []want{{NumericLiteral, "0"}, {Semicolon, ";"}},
		},
		{
			name: "string literal",
			src:  `"hello"`,
			want: []want{{StringLiteral, `"hello"`}},
		},
		{
			name: "string literal with escapes",
			src:  `"a\\b\nc"`,
			want: []want{{StringLiteral, `"a\\b\nc"`}},
		},
		{
			name:    "string literal invalid escape",
			src:     `"a\xb"`,
			wantErr: true,
		},
		{
			name:    "unterminated string literal",
			src:     `"abc`,
			wantErr: true,
		},
		{
			name: "char literal",
			src:  `'a'`,
			want: []want{{CharLiteral, `'a'`}},
		},
		{
			name: "char literal escaped newline",
			src:  `'\n'`,
			want: []want{{CharLiteral, `'\n'`}},
		},
		{
			name:    "char literal missing close quote",
			src:     `'a`,
			wantErr: true,
		},
		{
			name:    "char literal bad escape",
			src:     `'\x'`,
			wantErr: true,
		},
		{
			name: "line comment",
			src:  "// hello\n",
			want: []want{{Comment, "// hello"}},
		},
		{
			name: "line comment without trailing newline",
			src:  "// hello",
			want: []want{{Comment, "// hello"}},
		},
		{
			name: "multiline comment via trailing backslash",
			src:  "// a\\\n// b\n",
			want: []want{{MultilineComment, "// a\\\n// b"}},
		},
		{
			name:    "stray slash is an error",
			src:     "/x",
			wantErr: true,
		},
		{
			name: "attribute sentinel",
			src:  "@align",
			want: []want{{Attribute, "@"}, {String, "align"}},
		},
		{
			name: "attribute with value",
			src:  `@padding='x'`,
			want: []want{{Attribute, "@"}, {String, "padding"}, {Equal, "="}, {CharLiteral, "'x'"}},
		},
		{
			name: "attribute block",
			src:  "@{raw text}",
			want: []want{{AttributeBlock, "@{raw text}"}},
		},
		{
			name: "nested attribute block braces",
			src:  "@{a{b}c}",
			want: []want{{AttributeBlock, "@{a{b}c}"}},
		},
		{
			name:    "unterminated attribute block",
			src:     "@{abc",
			wantErr: true,
		},
		{
			name: "full struct line",
			src:  "struct Msg { u8[10] fixed; }",
			want: []want{
				{Keyword, "struct"}, {String, "Msg"}, {LBrace, "{"},
				{BuiltinType, "u8"}, {LBracket, "["}, {NumericLiteral, "10"}, {RBracket, "]"},
				{String, "fixed"}, {Semicolon, ";"}, {RBrace, "}"},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got []Info

			err := Tokenize("t.swizzle", tc.src, func(info Info) {
				got = append(got, info)
			})

			if tc.wantErr {
				if err == nil {
					t.Fatalf("Tokenize(%q) = nil error, want an error", tc.src)
				}

				return
			}

			if err != nil {
				t.Fatalf("Tokenize(%q) unexpected error: %v", tc.src, err)
			}

			if len(got) != len(tc.want) {
				t.Fatalf("Tokenize(%q) produced %d tokens, want %d: %+v", tc.src, len(got), len(tc.want), got)
			}

			for i, w := range tc.want {
				if got[i].Token.Type != w.typ || got[i].Token.Lexeme != w.lexeme {
					t.Errorf("token[%d] = (%s, %q), want (%s, %q)", i, got[i].Token.Type, got[i].Token.Lexeme, w.typ, w.lexeme)
				}
			}
		})
	}
}

func TestLexerPositions(t *testing.T) {
	var got []Info

	err := Tokenize("t.swizzle", "ab\ncd", func(info Info) {
		got = append(got, info)
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("got %d tokens, want 2: %+v", len(got), got)
	}

	first := got[0].File
	if first.Start != (LineInfo{Line: 1, Column: 1}) || first.End != (LineInfo{Line: 1, Column: 2}) {
		t.Errorf("first token span = %+v, want start 1:1 end 1:2", first)
	}

	second := got[1].File
	if second.Start != (LineInfo{Line: 2, Column: 1}) || second.End != (LineInfo{Line: 2, Column: 2}) {
		t.Errorf("second token span = %+v, want start 2:1 end 2:2", second)
	}
}

func TestLexerRoundTripsLexemes(t *testing.T) {
	// Concatenating every emitted lexeme reproduces the source with its
	// whitespace removed (spec §8: token concatenation equals the
	// original modulo whitespace).
	src := "namespace foo::bar;\nenum E : u8 { a = 1, b, }\n"

	var lexemes []string

	err := Tokenize("t.swizzle", src, func(info Info) {
		lexemes = append(lexemes, info.Token.Lexeme)
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	joined := ""
	for _, l := range lexemes {
		joined += l
	}

	if len(joined) == 0 {
		t.Fatal("expected at least one lexeme")
	}

	stripped := ""
	for i := 0; i < len(src); i++ {
		if !isWhitespace(src[i]) {
			stripped += string(src[i])
		}
	}

	if joined != stripped {
		t.Errorf("concatenated lexemes = %q, want %q", joined, stripped)
	}
}

func TestTokenizerSyntaxErrorCarriesPosition(t *testing.T) {
	err := Tokenize("t.swizzle", `"unterminated`, func(Info) {})
	if err == nil {
		t.Fatal("expected an error")
	}

	se, ok := err.(*SyntaxError)
	if !ok {
		t.Fatalf("got %T, want *SyntaxError", err)
	}

	if se.File.FileName != "t.swizzle" {
		t.Errorf("SyntaxError.File.FileName = %q, want %q", se.File.FileName, "t.swizzle")
	}
}
