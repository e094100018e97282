/*
File   : zlang/parser/parser.go

Package parser implements a Pratt (top-down operator precedence) parser for
ZLang, grounded on the teacher's parser/parser.go UnaryFuncs/BinaryFuncs
dispatch-table design. Unlike the teacher, which collects errors and keeps
parsing, this parser aborts at the first unexpected token (spec §4.2) and
threads errors back through ordinary Go error returns rather than an Errors
slice, since ZLang has no REPL-style partial-recovery requirement at the
parser level (the REPL retries a whole input, not a partial parse).
*/
package parser

import (
	"strconv"

	"github.com/akashmaji946/zlang/ast"
	"github.com/akashmaji946/zlang/lexer"
	"github.com/akashmaji946/zlang/token"
)

type unaryParseFn func() (ast.Expr, error)
type binaryParseFn func(left ast.Expr) (ast.Expr, error)

// Parser holds the one-token lookahead state plus the Pratt dispatch tables,
// mirroring the teacher's Parser.CurrToken/NextToken/UnaryFuncs/BinaryFuncs.
type Parser struct {
	lex *lexer.Lexer

	cur  token.Token
	peek token.Token

	unaryFuncs  map[token.Type]unaryParseFn
	binaryFuncs map[token.Type]binaryParseFn
}

// New constructs a Parser over l and primes the two-token lookahead.
func New(l *lexer.Lexer) (*Parser, error) {
	p := &Parser{lex: l}
	p.registerFuncs()

	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

// ParseProgram is the package's convenience entry point: lex+parse src in
// one call, as used by the CLI's run command and the REPL.
func ParseProgram(src string) (*ast.Program, error) {
	p, err := New(lexer.New(src))
	if err != nil {
		return nil, err
	}
	return p.Parse()
}

func (p *Parser) registerFuncs() {
	p.unaryFuncs = map[token.Type]unaryParseFn{
		token.NUMBER:   p.parseNumberLiteral,
		token.STRING:   p.parseStringLiteral,
		token.IDENT:    p.parseIdentifier,
		token.FR:       p.parseBoolLiteral,
		token.CAP:      p.parseBoolLiteral,
		token.BANG:     p.parseUnary,
		token.MINUS:    p.parseUnary,
		token.LPAREN:   p.parseGroupedExpression,
		token.LBRACKET: p.parseArrayLiteral,
		token.LBRACE:   p.parseObjectLiteral,
	}

	p.binaryFuncs = map[token.Type]binaryParseFn{
		token.PLUS:     p.parseBinary,
		token.MINUS:    p.parseBinary,
		token.STAR:     p.parseBinary,
		token.SLASH:    p.parseBinary,
		token.PERCENT:  p.parseBinary,
		token.EQ:       p.parseBinary,
		token.NEQ:      p.parseBinary,
		token.LT:       p.parseBinary,
		token.LE:       p.parseBinary,
		token.GT:       p.parseBinary,
		token.GE:       p.parseBinary,
		token.AND:      p.parseBinary,
		token.OR:       p.parseBinary,
		token.LPAREN:   p.parseCall,
		token.DOT:      p.parseMember,
		token.LBRACKET: p.parseIndex,
	}
}

func (p *Parser) advance() error {
	p.cur = p.peek
	tok, err := p.lex.Next()
	if err != nil {
		return err
	}
	p.peek = tok
	return nil
}

func (p *Parser) expectPeek(tt token.Type, expectedFormat string, a ...interface{}) error {
	if p.peek.Type != tt {
		return newError(p.peek, expectedFormat, a...)
	}
	return p.advance()
}

// Parse consumes the whole token stream and returns the program's top-level
// statement sequence.
func (p *Parser) Parse() (*ast.Program, error) {
	prog := &ast.Program{}
	for p.cur.Type != token.EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		prog.Statements = append(prog.Statements, stmt)
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	return prog, nil
}

// parseStatement dispatches on the leading token per spec §4.2. On entry
// p.cur is the first token of the statement; on return p.cur is the LAST
// token consumed by it (callers advance past it).
func (p *Parser) parseStatement() (ast.Stmt, error) {
	switch p.cur.Type {
	case token.BET:
		return p.parseBinding()
	case token.FLEX:
		return p.parseFunctionDeclaration()
	case token.SUS:
		return p.parseIf()
	case token.LOWKEY:
		return p.parseWhile()
	case token.HIGHKEY:
		return p.parseForEach()
	case token.VIBE:
		return p.parseReturn()
	case token.BRUH:
		return p.parsePrint()
	case token.LBRACE:
		return p.parseBlock()
	default:
		return p.parseExpressionOrAssignment()
	}
}

func (p *Parser) parseBinding() (ast.Stmt, error) {
	tok := p.cur
	if err := p.expectPeek(token.IDENT, "identifier after 'bet'"); err != nil {
		return nil, err
	}
	name := p.cur.Literal
	if err := p.expectPeek(token.ASSIGN, "'=' after binding name"); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	value, err := p.parseExpression(lowest)
	if err != nil {
		return nil, err
	}
	return &ast.Binding{Token: tok, Name: name, Value: value}, nil
}

func (p *Parser) parseFunctionDeclaration() (ast.Stmt, error) {
	tok := p.cur
	if err := p.expectPeek(token.IDENT, "function name after 'flex'"); err != nil {
		return nil, err
	}
	name := p.cur.Literal
	if err := p.expectPeek(token.LPAREN, "'(' after function name"); err != nil {
		return nil, err
	}
	params, err := p.parseParams()
	if err != nil {
		return nil, err
	}
	if err := p.expectPeek(token.LBRACE, "'{' to open function body"); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.FunctionDeclaration{Token: tok, Name: name, Params: params, Body: body}, nil
}

// parseParams assumes p.cur == '(' and leaves p.cur == ')'.
func (p *Parser) parseParams() ([]string, error) {
	var params []string
	if p.peek.Type == token.RPAREN {
		return params, p.advance()
	}
	if err := p.expectPeek(token.IDENT, "parameter name"); err != nil {
		return nil, err
	}
	params = append(params, p.cur.Literal)
	for p.peek.Type == token.COMMA {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expectPeek(token.IDENT, "parameter name"); err != nil {
			return nil, err
		}
		params = append(params, p.cur.Literal)
	}
	return params, p.expectPeek(token.RPAREN, "')' to close parameter list")
}

// parseBlock assumes p.cur == '{' and leaves p.cur == '}'.
func (p *Parser) parseBlock() (*ast.Block, error) {
	tok := p.cur
	if err := p.advance(); err != nil {
		return nil, err
	}
	block := &ast.Block{Token: tok}
	for p.cur.Type != token.RBRACE {
		if p.cur.Type == token.EOF {
			return nil, newError(p.cur, "'}' to close block")
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	return block, nil
}

func (p *Parser) parseIf() (ast.Stmt, error) {
	tok := p.cur
	if err := p.expectPeek(token.LPAREN, "'(' after 'sus'"); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression(lowest)
	if err != nil {
		return nil, err
	}
	if err := p.expectPeek(token.RPAREN, "')' after condition"); err != nil {
		return nil, err
	}
	if err := p.expectPeek(token.LBRACE, "'{' to open 'sus' body"); err != nil {
		return nil, err
	}
	thenBlock, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	var elseBlock *ast.Block
	if p.peek.Type == token.BUSSIN {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expectPeek(token.LBRACE, "'{' to open 'bussin' body"); err != nil {
			return nil, err
		}
		elseBlock, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	}

	return &ast.If{Token: tok, Condition: cond, Then: thenBlock, Else: elseBlock}, nil
}

func (p *Parser) parseWhile() (ast.Stmt, error) {
	tok := p.cur
	if err := p.expectPeek(token.LPAREN, "'(' after 'lowkey'"); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression(lowest)
	if err != nil {
		return nil, err
	}
	if err := p.expectPeek(token.RPAREN, "')' after condition"); err != nil {
		return nil, err
	}
	if err := p.expectPeek(token.LBRACE, "'{' to open 'lowkey' body"); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.While{Token: tok, Condition: cond, Body: body}, nil
}

func (p *Parser) parseForEach() (ast.Stmt, error) {
	tok := p.cur
	if err := p.expectPeek(token.LPAREN, "'(' after 'highkey'"); err != nil {
		return nil, err
	}
	if err := p.expectPeek(token.IDENT, "loop variable name"); err != nil {
		return nil, err
	}
	name := p.cur.Literal
	if err := p.expectPeek(token.IN, "'in' after loop variable"); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	iterable, err := p.parseExpression(lowest)
	if err != nil {
		return nil, err
	}
	if err := p.expectPeek(token.RPAREN, "')' after iterable expression"); err != nil {
		return nil, err
	}
	if err := p.expectPeek(token.LBRACE, "'{' to open 'highkey' body"); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.ForEach{Token: tok, Name: name, Iterable: iterable, Body: body}, nil
}

func (p *Parser) parseReturn() (ast.Stmt, error) {
	tok := p.cur
	if _, startsExpr := p.unaryFuncs[p.peek.Type]; !startsExpr {
		return &ast.Return{Token: tok, Value: nil}, nil
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	value, err := p.parseExpression(lowest)
	if err != nil {
		return nil, err
	}
	return &ast.Return{Token: tok, Value: value}, nil
}

func (p *Parser) parsePrint() (ast.Stmt, error) {
	tok := p.cur
	if err := p.advance(); err != nil {
		return nil, err
	}
	value, err := p.parseExpression(lowest)
	if err != nil {
		return nil, err
	}
	return &ast.Print{Token: tok, Value: value}, nil
}

func (p *Parser) parseExpressionOrAssignment() (ast.Stmt, error) {
	tok := p.cur
	expr, err := p.parseExpression(lowest)
	if err != nil {
		return nil, err
	}
	if p.peek.Type == token.ASSIGN {
		target, err := exprToLvalue(expr)
		if err != nil {
			return nil, err
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		value, err := p.parseExpression(lowest)
		if err != nil {
			return nil, err
		}
		return &ast.Assignment{Token: tok, Target: target, Value: value}, nil
	}
	return &ast.ExpressionStatement{Token: tok, Expr: expr}, nil
}

func exprToLvalue(expr ast.Expr) (ast.Lvalue, error) {
	switch e := expr.(type) {
	case *ast.Identifier:
		return ast.Lvalue{Kind: ast.LvalueIdent, Name: e.Name}, nil
	case *ast.Member:
		return ast.Lvalue{Kind: ast.LvalueMember, Object: e.Object, Property: e.Property}, nil
	case *ast.Index:
		return ast.Lvalue{Kind: ast.LvalueIndex, Object: e.Object, Index: e.Index}, nil
	default:
		return ast.Lvalue{}, newError(expr.Pos(), "identifier, member, or index expression as assignment target")
	}
}

// parseExpression is the Pratt climb: parse a prefix production, then
// repeatedly fold in infix operators whose precedence exceeds prec.
func (p *Parser) parseExpression(prec precedence) (ast.Expr, error) {
	prefix, ok := p.unaryFuncs[p.cur.Type]
	if !ok {
		return nil, newError(p.cur, "expression")
	}
	left, err := prefix()
	if err != nil {
		return nil, err
	}

	for prec < p.peekPrecedence() {
		infix, ok := p.binaryFuncs[p.peek.Type]
		if !ok {
			return left, nil
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		left, err = infix(left)
		if err != nil {
			return nil, err
		}
	}
	return left, nil
}

func (p *Parser) parseNumberLiteral() (ast.Expr, error) {
	tok := p.cur
	value, err := strconv.ParseFloat(tok.Literal, 64)
	if err != nil {
		return nil, newError(tok, "well-formed number literal")
	}
	return &ast.NumberLiteral{Token: tok, Value: value}, nil
}

func (p *Parser) parseStringLiteral() (ast.Expr, error) {
	return &ast.StringLiteral{Token: p.cur, Value: p.cur.Literal}, nil
}

func (p *Parser) parseIdentifier() (ast.Expr, error) {
	return &ast.Identifier{Token: p.cur, Name: p.cur.Literal}, nil
}

func (p *Parser) parseBoolLiteral() (ast.Expr, error) {
	return &ast.BoolLiteral{Token: p.cur, Value: p.cur.Type == token.FR}, nil
}

func (p *Parser) parseUnary() (ast.Expr, error) {
	tok := p.cur
	if err := p.advance(); err != nil {
		return nil, err
	}
	operand, err := p.parseExpression(unaryPrec)
	if err != nil {
		return nil, err
	}
	return &ast.Unary{Token: tok, Operator: tok.Type, Operand: operand}, nil
}

func (p *Parser) parseBinary(left ast.Expr) (ast.Expr, error) {
	tok := p.cur
	prec := p.curPrecedence()
	if err := p.advance(); err != nil {
		return nil, err
	}
	right, err := p.parseExpression(prec)
	if err != nil {
		return nil, err
	}
	return &ast.Binary{Token: tok, Operator: tok.Type, Left: left, Right: right}, nil
}

func (p *Parser) parseGroupedExpression() (ast.Expr, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	expr, err := p.parseExpression(lowest)
	if err != nil {
		return nil, err
	}
	return expr, p.expectPeek(token.RPAREN, "')' to close parenthesized expression")
}

func (p *Parser) parseArrayLiteral() (ast.Expr, error) {
	tok := p.cur
	var elements []ast.Expr
	if p.peek.Type == token.RBRACKET {
		return &ast.ArrayLiteral{Token: tok, Elements: elements}, p.advance()
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	el, err := p.parseExpression(lowest)
	if err != nil {
		return nil, err
	}
	elements = append(elements, el)
	for p.peek.Type == token.COMMA {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		el, err = p.parseExpression(lowest)
		if err != nil {
			return nil, err
		}
		elements = append(elements, el)
	}
	return &ast.ArrayLiteral{Token: tok, Elements: elements}, p.expectPeek(token.RBRACKET, "']' to close array literal")
}

func (p *Parser) parseObjectLiteral() (ast.Expr, error) {
	tok := p.cur
	var fields []ast.ObjectField
	if p.peek.Type == token.RBRACE {
		return &ast.ObjectLiteral{Token: tok, Fields: fields}, p.advance()
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	field, err := p.parseObjectField()
	if err != nil {
		return nil, err
	}
	fields = append(fields, field)
	for p.peek.Type == token.COMMA {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		field, err = p.parseObjectField()
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}
	return &ast.ObjectLiteral{Token: tok, Fields: fields}, p.expectPeek(token.RBRACE, "'}' to close object literal")
}

func (p *Parser) parseObjectField() (ast.ObjectField, error) {
	var key string
	switch p.cur.Type {
	case token.IDENT, token.STRING:
		key = p.cur.Literal
	default:
		return ast.ObjectField{}, newError(p.cur, "identifier or string as object key")
	}
	if err := p.expectPeek(token.COLON, "':' after object key"); err != nil {
		return ast.ObjectField{}, err
	}
	if err := p.advance(); err != nil {
		return ast.ObjectField{}, err
	}
	value, err := p.parseExpression(lowest)
	if err != nil {
		return ast.ObjectField{}, err
	}
	return ast.ObjectField{Key: key, Value: value}, nil
}

func (p *Parser) parseCall(callee ast.Expr) (ast.Expr, error) {
	tok := p.cur
	args, err := p.parseCallArgs()
	if err != nil {
		return nil, err
	}
	return &ast.Call{Token: tok, Callee: callee, Args: args}, nil
}

// parseCallArgs assumes p.cur == '(' and leaves p.cur == ')'.
func (p *Parser) parseCallArgs() ([]ast.Expr, error) {
	var args []ast.Expr
	if p.peek.Type == token.RPAREN {
		return args, p.advance()
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	arg, err := p.parseExpression(lowest)
	if err != nil {
		return nil, err
	}
	args = append(args, arg)
	for p.peek.Type == token.COMMA {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		arg, err = p.parseExpression(lowest)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	return args, p.expectPeek(token.RPAREN, "')' to close argument list")
}

func (p *Parser) parseMember(object ast.Expr) (ast.Expr, error) {
	tok := p.cur
	if err := p.expectPeek(token.IDENT, "property name after '.'"); err != nil {
		return nil, err
	}
	return &ast.Member{Token: tok, Object: object, Property: p.cur.Literal}, nil
}

func (p *Parser) parseIndex(object ast.Expr) (ast.Expr, error) {
	tok := p.cur
	if err := p.advance(); err != nil {
		return nil, err
	}
	idx, err := p.parseExpression(lowest)
	if err != nil {
		return nil, err
	}
	return &ast.Index{Token: tok, Object: object, Index: idx}, p.expectPeek(token.RBRACKET, "']' to close index expression")
}
