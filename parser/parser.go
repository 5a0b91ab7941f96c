// Package parser turns a token stream into the AST defined by package
// ast, driving a pushdown automaton over three explicit stacks: a node
// stack tracking the currently open container declarations, a pending-
// attribute queue, and the token stream itself, which doubles as the
// third stack described by the design (its unconsumed suffix is exactly
// what would otherwise sit pushed on a TokenStack).
package parser

import (
	"strconv"
	"strings"

	"github.com/golangee/swizzle/ast"
	"github.com/golangee/swizzle/symbols"
	"github.com/golangee/swizzle/token"
	"github.com/golangee/swizzle/values"
)

// Parser consumes a fully tokenized translation unit and builds its AST.
type Parser struct {
	fileName string
	tokens   []token.Info
	idx      int

	ctx       *Context
	nodeStack []ast.Node
	attrQueue []ast.Node
}

// Parse tokenizes and parses src, producing the file's Root node and the
// symbol table accumulated while parsing it. resolver validates import
// paths; pass nil to skip validation (useful for parsing fragments in
// tests).
func Parse(fileName string, src string, resolver ImportResolver) (*ast.Root, *symbols.Table, error) {
	var tokens []token.Info

	if err := token.Tokenize(fileName, src, func(info token.Info) {
		tokens = append(tokens, info)
	}); err != nil {
		return nil, nil, err
	}

	p := &Parser{
		fileName: fileName,
		tokens:   tokens,
		ctx:      NewContext(resolver),
	}

	root := ast.NewRoot(fileName, token.NewFileInfo(fileName))
	p.push(root)

	for !p.atEOF() {
		if err := p.parseUnit(); err != nil {
			return nil, nil, err
		}
	}

	if len(p.attrQueue) > 0 {
		return nil, nil, bugf("attributes left unattached at end of file")
	}

	if len(p.nodeStack) != 1 {
		return nil, nil, bugf("node stack left with %d entries, want 1 (root)", len(p.nodeStack))
	}

	return root, p.ctx.Symbols, nil
}

// --- token cursor -----------------------------------------------------

func (p *Parser) atEOF() bool { return p.idx >= len(p.tokens) }

func (p *Parser) peek() (token.Info, bool) {
	if p.atEOF() {
		return token.Info{}, false
	}

	return p.tokens[p.idx], true
}

func (p *Parser) advance() token.Info {
	tok := p.tokens[p.idx]
	p.idx++

	return tok
}

func (p *Parser) expect(tp token.Type) (token.Info, error) {
	tok, ok := p.peek()
	if !ok {
		return token.Info{}, bugf("unexpected end of input, expected %s", tp)
	}

	if tok.Token.Type != tp {
		return token.Info{}, newUnexpectedTokenError(tok, tp)
	}

	return p.advance(), nil
}

func (p *Parser) expectKeyword(word string) (token.Info, error) {
	tok, err := p.expect(token.Keyword)
	if err != nil {
		return token.Info{}, err
	}

	if tok.Token.Lexeme != word {
		return token.Info{}, syntaxErrorf(tok.File, "expected keyword %q, got %q", word, tok.Token.Lexeme)
	}

	return tok, nil
}

// --- node stack --------------------------------------------------------

func (p *Parser) push(n ast.Node) { p.nodeStack = append(p.nodeStack, n) }

func (p *Parser) pop() (ast.Node, error) {
	if len(p.nodeStack) == 0 {
		return nil, bugf("pop on empty node stack")
	}

	n := p.nodeStack[len(p.nodeStack)-1]
	p.nodeStack = p.nodeStack[:len(p.nodeStack)-1]

	return n, nil
}

func (p *Parser) top() (ast.Node, error) {
	if len(p.nodeStack) == 0 {
		return nil, bugf("top of empty node stack")
	}

	return p.nodeStack[len(p.nodeStack)-1], nil
}

// attachPending drains the attribute queue onto n, in accumulation
// order, then attaches n to the node currently on top of the stack.
func (p *Parser) attachPending(n ast.Node) error {
	for _, attr := range p.attrQueue {
		ast.Attach(n, attr)
	}

	p.attrQueue = nil

	parent, err := p.top()
	if err != nil {
		return err
	}

	ast.Attach(parent, n)

	return nil
}

// --- top-level dispatch -------------------------------------------------

func (p *Parser) parseUnit() error {
	tok, ok := p.peek()
	if !ok {
		return bugf("parseUnit called at end of input")
	}

	switch tok.Token.Type {
	case token.Comment, token.MultilineComment:
		p.advance()

		var comment ast.Node = ast.NewComment(tok.Token.Lexeme, tok.File)
		if tok.Token.Type == token.MultilineComment {
			comment = ast.NewMultilineComment(tok.Token.Lexeme, tok.File)
		}

		// A comment is not a declaration: pending attributes stay queued
		// for the declaration that follows it.
		parent, err := p.top()
		if err != nil {
			return err
		}

		ast.Attach(parent, comment)

		return nil
	case token.Attribute, token.AttributeBlock:
		return p.parseAttributeDecoration()
	case token.Keyword:
		switch tok.Token.Lexeme {
		case "namespace":
			return p.parseNamespace()
		case "import":
			return p.parseImport()
		case "extern":
			return p.parseExtern()
		case "using":
			return p.parseUsing()
		case "enum":
			return p.parseEnum()
		case "struct":
			return p.parseStruct()
		default:
			return syntaxErrorf(tok.File, "unexpected keyword %q at top level", tok.Token.Lexeme)
		}
	case token.BuiltinType:
		if tok.Token.Lexeme == "bitfield" {
			return p.parseBitfield()
		}

		return newUnexpectedTokenError(tok, token.Keyword)
	default:
		return newUnexpectedTokenError(tok, token.Keyword)
	}
}

// --- attributes ----------------------------------------------------------

// parseAttributeDecoration consumes one '@' ident ('=' literal)? or one
// "@{ ... }" block and enqueues the resulting node. It never attaches
// the node itself — attributes decorate whatever declaration follows,
// possibly several tokens later, so attachment happens at that
// declaration's construction via attachPending.
func (p *Parser) parseAttributeDecoration() error {
	tok, _ := p.peek()

	if tok.Token.Type == token.AttributeBlock {
		p.advance()

		content := tok.Token.Lexeme
		content = strings.TrimPrefix(content, "@{")
		content = strings.TrimSuffix(content, "}")
		p.attrQueue = append(p.attrQueue, ast.NewAttributeBlock(content, tok.File))

		return nil
	}

	p.advance() // '@'

	name, err := p.expect(token.String)
	if err != nil {
		return err
	}

	attr := ast.NewAttribute(name.Token.Lexeme, tok.File.Span(name.File))

	if next, ok := p.peek(); ok && next.Token.Type == token.Equal {
		p.advance()

		lit, err := p.expectOneOf(token.StringLiteral, token.CharLiteral, token.HexLiteral, token.NumericLiteral)
		if err != nil {
			return err
		}

		literalNode, err := attributeLiteralNode(lit)
		if err != nil {
			return err
		}

		ast.Attach(attr, literalNode)
		ast.SetPos(attr, attr.Pos().Span(lit.File))
	}

	p.attrQueue = append(p.attrQueue, attr)

	return nil
}

// attributeLiteralNode converts the literal token following an
// attribute's '=' into the matching leaf node kind (spec §3.3). An
// attribute's value has no declared width to check against, so it is
// stored at a fixed width wide enough for any lexically valid literal
// of its form: u8 for a character, u64 for hex (always non-negative by
// grammar), i64 for a signed decimal.
func attributeLiteralNode(lit token.Info) (ast.Node, error) {
	switch lit.Token.Type {
	case token.StringLiteral:
		return ast.NewStringLiteral(lit.Token.Lexeme, decodeStringLiteral(lit.Token.Lexeme), lit.File), nil
	case token.CharLiteral:
		v, err := values.SetValue(values.U8, lit.Token.Lexeme)
		if err != nil {
			return nil, syntaxErrorf(lit.File, "attribute value: %v", err)
		}

		return ast.NewCharLiteral(lit.Token.Lexeme, v, lit.File), nil
	case token.HexLiteral:
		v, err := values.SetValue(values.U64, lit.Token.Lexeme)
		if err != nil {
			return nil, syntaxErrorf(lit.File, "attribute value: %v", err)
		}

		return ast.NewHexLiteral(lit.Token.Lexeme, v, lit.File), nil
	default:
		v, err := values.SetValue(values.I64, lit.Token.Lexeme)
		if err != nil {
			return nil, syntaxErrorf(lit.File, "attribute value: %v", err)
		}

		return ast.NewNumericLiteral(lit.Token.Lexeme, v, lit.File), nil
	}
}

func (p *Parser) expectOneOf(types ...token.Type) (token.Info, error) {
	tok, ok := p.peek()
	if !ok {
		return token.Info{}, bugf("unexpected end of input")
	}

	for _, tp := range types {
		if tok.Token.Type == tp {
			return p.advance(), nil
		}
	}

	return token.Info{}, newUnexpectedTokenError(tok, types...)
}

// --- namespace / import / extern / using ---------------------------------

// parseDottedIdent reads an ident ('::' ident)* path, joining segments
// with "::". The two colons of "::" are two distinct Colon tokens since
// the tokenizer has no dedicated scope-operator token.
func (p *Parser) parseDottedIdent() (string, token.FileInfo, error) {
	first, err := p.expect(token.String)
	if err != nil {
		return "", token.FileInfo{}, err
	}

	segments := []string{first.Token.Lexeme}
	span := first.File

	for {
		next, ok := p.peek()
		if !ok || next.Token.Type != token.Colon {
			break
		}

		p.advance()

		if _, err := p.expect(token.Colon); err != nil {
			return "", token.FileInfo{}, err
		}

		seg, err := p.expect(token.String)
		if err != nil {
			return "", token.FileInfo{}, err
		}

		segments = append(segments, seg.Token.Lexeme)
		span = span.Span(seg.File)
	}

	return strings.Join(segments, "::"), span, nil
}

func (p *Parser) parseNamespace() error {
	start, err := p.expectKeyword("namespace")
	if err != nil {
		return err
	}

	name, span, err := p.parseDottedIdent()
	if err != nil {
		return err
	}

	if _, err := p.expect(token.Semicolon); err != nil {
		return err
	}

	p.ctx.CurrentNamespace = name

	node := ast.NewNamespace(name, start.File.Span(span))

	return p.attachPending(node)
}

func (p *Parser) parseImport() error {
	start, err := p.expectKeyword("import")
	if err != nil {
		return err
	}

	first, err := p.expect(token.String)
	if err != nil {
		return err
	}

	segments := []string{first.Token.Lexeme}
	span := first.File

	for {
		next, ok := p.peek()
		if !ok || next.Token.Type != token.Colon {
			break
		}

		p.advance()

		if _, err := p.expect(token.Colon); err != nil {
			return err
		}

		seg, err := p.expect(token.String)
		if err != nil {
			return err
		}

		segments = append(segments, seg.Token.Lexeme)
		span = span.Span(seg.File)
	}

	if _, err := p.expect(token.Semicolon); err != nil {
		return err
	}

	relPath := strings.Join(segments, "/") + ".swizzle"

	if p.ctx.Resolver != nil {
		if err := p.ctx.Resolver.Resolve(relPath); err != nil {
			return syntaxErrorf(start.File.Span(span), "import %q: %v", relPath, err)
		}
	}

	node := ast.NewImport(relPath, start.File.Span(span))

	return p.attachPending(node)
}

func (p *Parser) parseExtern() error {
	start, err := p.expectKeyword("extern")
	if err != nil {
		return err
	}

	name, span, err := p.parseDottedIdent()
	if err != nil {
		return err
	}

	if _, err := p.expect(token.Semicolon); err != nil {
		return err
	}

	node := ast.NewExtern(name, start.File.Span(span))

	if err := p.ctx.Symbols.Define("", name, node, node.Pos()); err != nil {
		return err
	}

	return p.attachPending(node)
}

func (p *Parser) parseUsing() error {
	start, err := p.expectKeyword("using")
	if err != nil {
		return err
	}

	name, err := p.expect(token.String)
	if err != nil {
		return err
	}

	if _, err := p.expect(token.Equal); err != nil {
		return err
	}

	underlying, span, err := p.parseQualifiedType()
	if err != nil {
		return err
	}

	if _, err := p.expect(token.Semicolon); err != nil {
		return err
	}

	qualified := symbols.Qualify(p.ctx.CurrentNamespace, name.Token.Lexeme)
	node := ast.NewTypeAlias(qualified, underlying, start.File.Span(span))

	if err := p.ctx.Symbols.Define("", qualified, node, node.Pos()); err != nil {
		return err
	}

	return p.attachPending(node)
}

// --- enum ------------------------------------------------------------

func (p *Parser) parseEnum() error {
	start, err := p.expectKeyword("enum")
	if err != nil {
		return err
	}

	name, err := p.expect(token.String)
	if err != nil {
		return err
	}

	if _, err := p.expect(token.Colon); err != nil {
		return err
	}

	widthTok, err := p.expect(token.BuiltinType)
	if err != nil {
		return err
	}

	width, ok := values.ParseWidth(widthTok.Token.Lexeme)
	if !ok || width.IsFloat() {
		return syntaxErrorf(widthTok.File, "enum underlying type %q is not an integer type", widthTok.Token.Lexeme)
	}

	if _, err := p.expect(token.LBrace); err != nil {
		return err
	}

	p.ctx.resetEnumScope(width)

	qualified := symbols.Qualify(p.ctx.CurrentNamespace, name.Token.Lexeme)
	enumNode := ast.NewEnum(qualified, width, start.File)
	p.push(enumNode)

	fieldCount := 0

	for {
		if tok, ok := p.peek(); ok && tok.Token.Type == token.RBrace {
			break
		}

		if err := p.parseEnumField(enumNode, width); err != nil {
			return err
		}

		fieldCount++

		tok, ok := p.peek()
		if !ok {
			return bugf("unexpected end of input inside enum %q", name.Token.Lexeme)
		}

		if tok.Token.Type == token.Comma {
			p.advance()

			continue
		}

		break
	}

	end, err := p.expect(token.RBrace)
	if err != nil {
		return err
	}

	if fieldCount == 0 {
		return syntaxErrorf(end.File, "enum %q has no fields", name.Token.Lexeme)
	}

	if _, err := p.pop(); err != nil {
		return err
	}

	ast.SetPos(enumNode, enumNode.Pos().Span(end.File))

	if err := p.ctx.Symbols.Define("", qualified, enumNode, enumNode.Pos()); err != nil {
		return err
	}

	return p.attachPending(enumNode)
}

func (p *Parser) parseEnumField(enumNode *ast.Enum, width values.Width) error {
	name, err := p.expect(token.String)
	if err != nil {
		return err
	}

	explicit := false
	value := p.ctx.CurrentEnumValue
	span := name.File

	if next, ok := p.peek(); ok && next.Token.Type == token.Equal {
		p.advance()

		lit, err := p.expectOneOf(token.NumericLiteral, token.HexLiteral, token.CharLiteral)
		if err != nil {
			return err
		}

		v, err := values.SetValue(width, lit.Token.Lexeme)
		if err != nil {
			return syntaxErrorf(lit.File, "enum field %q: %v", name.Token.Lexeme, err)
		}

		value = v
		explicit = true
		span = span.Span(lit.File)
		p.ctx.CurrentEnumValue = value
	}

	if p.ctx.EnumValueAllocations[value.Uint64()] {
		return syntaxErrorf(span, "enum field %q duplicates an already allocated value", name.Token.Lexeme)
	}

	p.ctx.EnumValueAllocations[value.Uint64()] = true

	field := ast.NewEnumField(name.Token.Lexeme, value, explicit, span)
	ast.Attach(enumNode, field)

	next, err := values.Increment(value)
	if err != nil {
		return syntaxErrorf(span, "enum field %q: %v", name.Token.Lexeme, err)
	}

	p.ctx.CurrentEnumValue = next

	return nil
}

// --- bitfield ----------------------------------------------------------

func widthBits(w values.Width) int {
	switch w {
	case values.U8, values.I8:
		return 8
	case values.U16, values.I16:
		return 16
	case values.U32, values.I32:
		return 32
	case values.U64, values.I64:
		return 64
	default:
		return 0
	}
}

func (p *Parser) parseBitfield() error {
	start := p.advance() // 'bitfield'

	name, err := p.expect(token.String)
	if err != nil {
		return err
	}

	if _, err := p.expect(token.Colon); err != nil {
		return err
	}

	widthTok, err := p.expect(token.BuiltinType)
	if err != nil {
		return err
	}

	width, ok := values.ParseWidth(widthTok.Token.Lexeme)
	if !ok || width.IsFloat() {
		return syntaxErrorf(widthTok.File, "bitfield underlying type %q is not an integer type", widthTok.Token.Lexeme)
	}

	if _, err := p.expect(token.LBrace); err != nil {
		return err
	}

	p.ctx.resetBitfieldScope()

	qualified := symbols.Qualify(p.ctx.CurrentNamespace, name.Token.Lexeme)
	bfNode := ast.NewBitfield(qualified, width, start.File)
	p.push(bfNode)

	bits := widthBits(width)
	fieldCount := 0

	for {
		if tok, ok := p.peek(); ok && tok.Token.Type == token.RBrace {
			break
		}

		if err := p.parseBitfieldField(bfNode, bits); err != nil {
			return err
		}

		fieldCount++

		tok, ok := p.peek()
		if !ok {
			return bugf("unexpected end of input inside bitfield %q", name.Token.Lexeme)
		}

		if tok.Token.Type == token.Comma {
			p.advance()

			continue
		}

		break
	}

	end, err := p.expect(token.RBrace)
	if err != nil {
		return err
	}

	if fieldCount == 0 {
		return syntaxErrorf(end.File, "bitfield %q has no fields", name.Token.Lexeme)
	}

	if _, err := p.pop(); err != nil {
		return err
	}

	ast.SetPos(bfNode, bfNode.Pos().Span(end.File))

	if err := p.ctx.Symbols.Define("", qualified, bfNode, bfNode.Pos()); err != nil {
		return err
	}

	return p.attachPending(bfNode)
}

func (p *Parser) parseBitfieldField(bfNode *ast.Bitfield, bits int) error {
	name, err := p.expect(token.String)
	if err != nil {
		return err
	}

	if _, err := p.expect(token.Colon); err != nil {
		return err
	}

	beginTok, err := p.expect(token.NumericLiteral)
	if err != nil {
		return err
	}

	begin, err := strconv.Atoi(beginTok.Token.Lexeme)
	if err != nil {
		return syntaxErrorf(beginTok.File, "bitfield field %q: invalid bit index %q", name.Token.Lexeme, beginTok.Token.Lexeme)
	}

	end := begin
	span := name.File.Span(beginTok.File)

	if next, ok := p.peek(); ok && next.Token.Type == token.Dot {
		p.advance()

		if _, err := p.expect(token.Dot); err != nil {
			return err
		}

		endTok, err := p.expect(token.NumericLiteral)
		if err != nil {
			return err
		}

		end, err = strconv.Atoi(endTok.Token.Lexeme)
		if err != nil {
			return syntaxErrorf(endTok.File, "bitfield field %q: invalid bit index %q", name.Token.Lexeme, endTok.Token.Lexeme)
		}

		span = span.Span(endTok.File)
	}

	if begin <= p.ctx.CurrentBitfieldBit {
		return syntaxErrorf(span, "bitfield field %q begins at bit %d, which does not advance past bit %d", name.Token.Lexeme, begin, p.ctx.CurrentBitfieldBit)
	}

	if end < begin {
		return syntaxErrorf(span, "bitfield field %q: end bit %d is before begin bit %d", name.Token.Lexeme, end, begin)
	}

	if end >= bits {
		return syntaxErrorf(span, "bitfield field %q: end bit %d is out of range for a %d-bit underlying type", name.Token.Lexeme, end, bits)
	}

	p.ctx.CurrentBitfieldBit = end

	field := ast.NewBitfieldField(name.Token.Lexeme, begin, end, span)
	ast.Attach(bfNode, field)

	return nil
}

// --- struct ------------------------------------------------------------

func (p *Parser) parseQualifiedType() (string, token.FileInfo, error) {
	tok, ok := p.peek()
	if !ok {
		return "", token.FileInfo{}, bugf("unexpected end of input, expected a type")
	}

	if tok.Token.Type == token.BuiltinType {
		p.advance()

		return tok.Token.Lexeme, tok.File, nil
	}

	if tok.Token.Type == token.String {
		return p.parseDottedIdent()
	}

	return "", token.FileInfo{}, newUnexpectedTokenError(tok, token.BuiltinType, token.String)
}

// resolveType reports whether typeName resolves per spec §4.2.3's
// three-step search: a built-in mnemonic, the fully-qualified name as
// given, or that name qualified under the current namespace. A field
// whose type fails every step is an unresolved type reference.
func (p *Parser) resolveType(typeName string) bool {
	if _, ok := values.ParseWidth(typeName); ok {
		return true
	}

	_, ok := symbols.NewTypeCache(p.ctx.Symbols).Resolve(p.ctx.CurrentNamespace, typeName)

	return ok
}

// resolveWidth resolves typeName to an integer Width, either directly
// (a built-in mnemonic) or by looking up a previously declared Enum or
// Bitfield of that name through the same TypeCache search resolveType
// uses.
func (p *Parser) resolveWidth(typeName string) (values.Width, bool) {
	if w, ok := values.ParseWidth(typeName); ok {
		return w, !w.IsFloat()
	}

	node, ok := symbols.NewTypeCache(p.ctx.Symbols).Resolve(p.ctx.CurrentNamespace, typeName)
	if !ok {
		return 0, false
	}

	switch n := node.(type) {
	case *ast.Enum:
		return n.Underlying, true
	case *ast.Bitfield:
		return n.Underlying, true
	default:
		return 0, false
	}
}

func (p *Parser) parseStruct() error {
	start, err := p.expectKeyword("struct")
	if err != nil {
		return err
	}

	name, err := p.expect(token.String)
	if err != nil {
		return err
	}

	if _, err := p.expect(token.LBrace); err != nil {
		return err
	}

	qualified := symbols.Qualify(p.ctx.CurrentNamespace, name.Token.Lexeme)
	structNode := ast.NewStruct(qualified, start.File)
	p.push(structNode)

	for {
		tok, ok := p.peek()
		if !ok {
			return bugf("unexpected end of input inside struct %q", name.Token.Lexeme)
		}

		if tok.Token.Type == token.RBrace {
			break
		}

		if err := p.parseStructMember(structNode); err != nil {
			return err
		}
	}

	end, err := p.expect(token.RBrace)
	if err != nil {
		return err
	}

	if _, err := p.pop(); err != nil {
		return err
	}

	ast.SetPos(structNode, structNode.Pos().Span(end.File))

	if err := p.ctx.Symbols.Define("", qualified, structNode, structNode.Pos()); err != nil {
		return err
	}

	return p.attachPending(structNode)
}

func (p *Parser) parseStructMember(structNode *ast.Struct) error {
	for {
		tok, ok := p.peek()
		if !ok {
			return bugf("unexpected end of input parsing struct member")
		}

		if tok.Token.Type != token.Attribute && tok.Token.Type != token.AttributeBlock {
			break
		}

		if err := p.parseAttributeDecoration(); err != nil {
			return err
		}
	}

	if tok, ok := p.peek(); ok && tok.Token.Type == token.BuiltinType && tok.Token.Lexeme == "variable_block" {
		return p.parseVariableBlock(structNode)
	}

	var label *ast.FieldLabel

	if tok, ok := p.peek(); ok && tok.Token.Type == token.NumericLiteral {
		if next, ok := p.peekAt(1); ok && next.Token.Type == token.Colon {
			p.advance()
			colon := p.advance()

			label = ast.NewFieldLabel(tok.Token.Lexeme, tok.File.Span(colon.File))
		}
	}

	p.ctx.MemberIsConst = false

	if tok, ok := p.peek(); ok && tok.Token.Type == token.Keyword && tok.Token.Lexeme == "const" {
		p.advance()

		p.ctx.MemberIsConst = true
	}

	typeName, typeSpan, err := p.parseQualifiedType()
	if err != nil {
		return err
	}

	isArray, arraySize, isVector, sizerName := false, 0, false, ""

	if tok, ok := p.peek(); ok && tok.Token.Type == token.LBracket {
		p.advance()

		sizeTok, ok := p.peek()
		if !ok {
			return bugf("unexpected end of input in array/vector size")
		}

		switch sizeTok.Token.Type {
		case token.NumericLiteral:
			p.advance()

			n, err := strconv.Atoi(sizeTok.Token.Lexeme)
			if err != nil {
				return syntaxErrorf(sizeTok.File, "invalid array size %q", sizeTok.Token.Lexeme)
			}

			isArray = true
			arraySize = n
		case token.String:
			p.advance()

			sizerName = sizeTok.Token.Lexeme
			firstSeg := sizerName

			if dot, ok := p.peek(); ok && dot.Token.Type == token.Dot {
				p.advance()

				member, err := p.expect(token.String)
				if err != nil {
					return err
				}

				sizerName = sizerName + "." + member.Token.Lexeme
			}

			sizerField, ok := findStructField(structNode, firstSeg)
			if !ok {
				return syntaxErrorf(sizeTok.File, "vector sizer %q does not name a prior field of this struct", sizerName)
			}

			sizerWidth, ok := p.resolveWidth(sizerField.TypeName)
			if !ok || sizerWidth.IsSigned() {
				return syntaxErrorf(sizeTok.File, "vector sizer %q: field %q is not an unsigned integer type", sizerName, sizerField.Name)
			}

			isVector = true
		default:
			return newUnexpectedTokenError(sizeTok, token.NumericLiteral, token.String)
		}

		if _, err := p.expect(token.RBracket); err != nil {
			return err
		}
	}

	fieldName, err := p.expect(token.String)
	if err != nil {
		return err
	}

	if !p.resolveType(typeName) {
		return syntaxErrorf(typeSpan.Span(fieldName.File), "field %q: type %q is not declared", fieldName.Token.Lexeme, typeName)
	}

	if structFieldNamed(structNode, fieldName.Token.Lexeme) {
		return syntaxErrorf(fieldName.File, "struct field %q is already declared", fieldName.Token.Lexeme)
	}

	field := ast.NewStructField(fieldName.Token.Lexeme, typeName, typeSpan.Span(fieldName.File))
	field.IsArray = isArray
	field.ArraySize = arraySize
	field.IsVector = isVector
	field.SizerName = sizerName
	field.IsConst = p.ctx.MemberIsConst

	var defaultNode ast.Node

	if tok, ok := p.peek(); ok && tok.Token.Type == token.Equal {
		p.advance()

		dn, err := p.parseDefaultValue(field)
		if err != nil {
			return err
		}

		defaultNode = dn
	}

	if p.ctx.MemberIsConst && defaultNode == nil {
		return syntaxErrorf(field.Pos(), "const struct field %q requires a default value", fieldName.Token.Lexeme)
	}

	if _, err := p.expect(token.Semicolon); err != nil {
		return err
	}

	if label != nil {
		ast.Attach(field, label)
	}

	if defaultNode != nil {
		ast.Attach(field, defaultNode)
	}

	return p.attachPendingStructField(structNode, field)
}

// attachPendingStructField drains pending attributes onto field and
// appends field directly to structNode (struct members are never
// pushed onto the node stack — only the struct itself is).
func (p *Parser) attachPendingStructField(structNode *ast.Struct, field *ast.StructField) error {
	for _, attr := range p.attrQueue {
		ast.Attach(field, attr)
	}

	p.attrQueue = nil

	ast.Attach(structNode, field)

	return nil
}

func (p *Parser) parseDefaultValue(field *ast.StructField) (ast.Node, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, bugf("unexpected end of input parsing default value")
	}

	switch tok.Token.Type {
	case token.NumericLiteral, token.HexLiteral:
		if field.IsArray || field.IsVector {
			return nil, syntaxErrorf(tok.File, "field %q: numeric default is not permitted on array/vector fields", field.Name)
		}

		width, ok := p.resolveWidth(field.TypeName)
		if !ok {
			return nil, syntaxErrorf(tok.File, "field %q: type %q is not an integer type, cannot take a numeric default", field.Name, field.TypeName)
		}

		p.advance()

		v, err := values.SetValue(width, tok.Token.Lexeme)
		if err != nil {
			return nil, syntaxErrorf(tok.File, "field %q default value: %v", field.Name, err)
		}

		return ast.NewDefaultValue(v, tok.File), nil
	case token.CharLiteral:
		if field.IsArray || field.IsVector {
			return nil, syntaxErrorf(tok.File, "field %q: char default is not permitted on array/vector fields", field.Name)
		}

		width, ok := p.resolveWidth(field.TypeName)
		if !ok {
			return nil, syntaxErrorf(tok.File, "field %q: type %q is not an integer type, cannot take a char default", field.Name, field.TypeName)
		}

		p.advance()

		v, err := values.SetValue(width, tok.Token.Lexeme)
		if err != nil {
			return nil, syntaxErrorf(tok.File, "field %q default value: %v", field.Name, err)
		}

		return ast.NewDefaultValue(v, tok.File), nil
	case token.StringLiteral:
		if !field.IsArray {
			return nil, syntaxErrorf(tok.File, "field %q: string default is only permitted on array fields", field.Name)
		}

		if field.IsVector {
			return nil, syntaxErrorf(tok.File, "field %q: string default is not permitted on vector fields", field.Name)
		}

		p.advance()

		text := decodeStringLiteral(tok.Token.Lexeme)
		if len(text) > field.ArraySize {
			return nil, syntaxErrorf(tok.File, "field %q: default string of length %d exceeds array size %d", field.Name, len(text), field.ArraySize)
		}

		return ast.NewDefaultStringValue(text, tok.File), nil
	default:
		return nil, newUnexpectedTokenError(tok, token.NumericLiteral, token.HexLiteral, token.CharLiteral, token.StringLiteral)
	}
}

// decodeStringLiteral strips the surrounding quotes a StringLiteral
// lexeme carries; escape decoding mirrors the tokenizer's accepted set.
func decodeStringLiteral(lexeme string) string {
	inner := lexeme
	if len(inner) >= 2 && inner[0] == '"' && inner[len(inner)-1] == '"' {
		inner = inner[1 : len(inner)-1]
	}

	var b strings.Builder

	for i := 0; i < len(inner); i++ {
		if inner[i] == '\\' && i+1 < len(inner) {
			i++

			switch inner[i] {
			case '\\':
				b.WriteByte('\\')
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case 'a':
				b.WriteByte('\a')
			case '0':
				b.WriteByte(0)
			default:
				b.WriteByte(inner[i])
			}

			continue
		}

		b.WriteByte(inner[i])
	}

	return b.String()
}

func (p *Parser) peekAt(offset int) (token.Info, bool) {
	idx := p.idx + offset
	if idx >= len(p.tokens) {
		return token.Info{}, false
	}

	return p.tokens[idx], true
}

func structFieldNamed(structNode *ast.Struct, name string) bool {
	for _, child := range structNode.Children() {
		if sf, ok := child.(*ast.StructField); ok && sf.Name == name {
			return true
		}
	}

	return false
}

// --- variable_block ------------------------------------------------------

func (p *Parser) parseVariableBlock(structNode *ast.Struct) error {
	start := p.advance() // 'variable_block'

	if _, err := p.expect(token.Colon); err != nil {
		return err
	}

	discTok, err := p.expect(token.String)
	if err != nil {
		return err
	}

	discriminant := discTok.Token.Lexeme
	span := start.File.Span(discTok.File)

	if dot, ok := p.peek(); ok && dot.Token.Type == token.Dot {
		p.advance()

		member, err := p.expect(token.String)
		if err != nil {
			return err
		}

		discriminant = discriminant + "." + member.Token.Lexeme
		span = span.Span(member.File)
	}

	firstSeg := discriminant
	if idx := strings.IndexByte(firstSeg, '.'); idx >= 0 {
		firstSeg = firstSeg[:idx]
	}

	var discWidth values.Width

	discField, ok := findStructField(structNode, firstSeg)
	if !ok {
		return syntaxErrorf(span, "variable_block discriminant %q does not name a field of this struct", discriminant)
	}

	w, ok := p.resolveWidth(discField.TypeName)
	if !ok {
		return syntaxErrorf(span, "variable_block discriminant %q is not an enum-typed field", discriminant)
	}

	discWidth = w

	if _, err := p.expect(token.LBrace); err != nil {
		return err
	}

	vb := ast.NewVariableBlock(discriminant, start.File)
	allocations := make(map[uint64]bool)

	for {
		tok, ok := p.peek()
		if !ok {
			return bugf("unexpected end of input inside variable_block")
		}

		if tok.Token.Type == token.RBrace {
			break
		}

		if err := p.parseVariableBlockCase(vb, discWidth, allocations); err != nil {
			return err
		}
	}

	end, err := p.expect(token.RBrace)
	if err != nil {
		return err
	}

	ast.SetPos(vb, vb.Pos().Span(end.File))

	return p.attachVariableBlock(structNode, vb)
}

func (p *Parser) attachVariableBlock(structNode *ast.Struct, vb *ast.VariableBlock) error {
	for _, attr := range p.attrQueue {
		ast.Attach(vb, attr)
	}

	p.attrQueue = nil

	ast.Attach(structNode, vb)

	return nil
}

func (p *Parser) parseVariableBlockCase(vb *ast.VariableBlock, discWidth values.Width, allocations map[uint64]bool) error {
	caseTok, err := p.expectKeyword("case")
	if err != nil {
		return err
	}

	lit, err := p.expectOneOf(token.NumericLiteral, token.HexLiteral, token.CharLiteral)
	if err != nil {
		return err
	}

	val, err := values.SetValue(discWidth, lit.Token.Lexeme)
	if err != nil {
		return syntaxErrorf(lit.File, "variable_block case: %v", err)
	}

	if allocations[val.Uint64()] {
		return syntaxErrorf(lit.File, "variable_block case value is already used")
	}

	allocations[val.Uint64()] = true

	if _, err := p.expect(token.Colon); err != nil {
		return err
	}

	typeName, typeSpan, err := p.parseDottedIdent()
	if err != nil {
		return err
	}

	if _, err := p.expect(token.Semicolon); err != nil {
		return err
	}

	c := ast.NewVariableBlockCase(typeName, val, caseTok.File.Span(typeSpan))
	ast.Attach(vb, c)

	return nil
}

func findStructField(structNode *ast.Struct, name string) (*ast.StructField, bool) {
	for _, child := range structNode.Children() {
		if sf, ok := child.(*ast.StructField); ok && sf.Name == name {
			return sf, true
		}
	}

	return nil, false
}
