/*
File   : zlang/lexer/lexer.go
*/

// Package lexer tokenizes ZLang source text into a token.Token stream.
// It scans byte by byte, tracking line and column for diagnostics, and
// recognizes operators, keywords, literals, identifiers, and punctuation
// per spec §4.1. Whitespace and // line comments are discarded; anything
// that cannot begin a token yields a *lexer.Error (spec §7) rather than a
// silently-swallowed INVALID token.
package lexer

import (
	"strings"

	"github.com/akashmaji946/zlang/token"
)

// Lexer holds scanning state over a single source string. It is not safe
// for concurrent use; ZLang is single-threaded throughout (spec §5).
type Lexer struct {
	src     string
	current byte
	pos     int
	length  int
	line    int
	column  int
}

// New creates a Lexer positioned at the start of src.
func New(src string) *Lexer {
	l := &Lexer{src: src, length: len(src), line: 1, column: 1}
	if l.length > 0 {
		l.current = src[0]
	}
	return l
}

// Next scans and returns the next token, or an *Error if the input at the
// current position cannot begin any valid token. A token.EOF token is
// returned (with a nil error) once the end of the source is reached.
func (l *Lexer) Next() (token.Token, error) {
	if err := l.skipWhitespaceAndComments(); err != nil {
		return token.Token{}, err
	}

	line, column := l.line, l.column

	switch {
	case l.current == 0:
		return token.New(token.EOF, "", line, column), nil
	case l.current == '"':
		return l.readString()
	case isDigit(l.current):
		return l.readNumber(), nil
	case isIdentStart(l.current):
		return l.readIdentifier(), nil
	}

	if tok, ok := l.readOperator(); ok {
		return tok, nil
	}

	ch := l.current
	l.advance()
	return token.Token{}, newError(line, column, "unexpected character %q", ch)
}

// All tokenizes the entire source, returning the resulting tokens (without
// a trailing EOF entry) or the first lex error encountered.
func (l *Lexer) All() ([]token.Token, error) {
	tokens := make([]token.Token, 0)
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		if tok.Type == token.EOF {
			break
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

func (l *Lexer) peek() byte {
	if l.pos+1 >= l.length {
		return 0
	}
	return l.src[l.pos+1]
}

func (l *Lexer) advance() {
	if l.current == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	l.pos++
	if l.pos >= l.length {
		l.current = 0
		l.pos = l.length
	} else {
		l.current = l.src[l.pos]
	}
}

func (l *Lexer) skipWhitespaceAndComments() error {
	for {
		switch {
		case isWhitespace(l.current):
			l.advance()
		case l.current == '/' && l.peek() == '/':
			for l.current != '\n' && l.current != 0 {
				l.advance()
			}
		default:
			return nil
		}
	}
}

// twoCharOps is checked before single-character operators so that, e.g.,
// "==" is not mis-tokenized as two "=" tokens (spec §4.1: "matched greedily
// before single-character operators").
var twoCharOps = map[string]token.Type{
	"==": token.EQ,
	"!=": token.NEQ,
	"<=": token.LE,
	">=": token.GE,
	"&&": token.AND,
	"||": token.OR,
}

var oneCharOps = map[byte]token.Type{
	'+': token.PLUS,
	'-': token.MINUS,
	'*': token.STAR,
	'/': token.SLASH,
	'%': token.PERCENT,
	'=': token.ASSIGN,
	'<': token.LT,
	'>': token.GT,
	'!': token.BANG,
	'(': token.LPAREN,
	')': token.RPAREN,
	'{': token.LBRACE,
	'}': token.RBRACE,
	'[': token.LBRACKET,
	']': token.RBRACKET,
	',': token.COMMA,
	'.': token.DOT,
	':': token.COLON,
}

func (l *Lexer) readOperator() (token.Token, bool) {
	line, column := l.line, l.column
	two := string(l.current) + string(l.peek())
	if typ, ok := twoCharOps[two]; ok {
		l.advance()
		l.advance()
		return token.New(typ, two, line, column), true
	}
	if typ, ok := oneCharOps[l.current]; ok {
		lit := string(l.current)
		l.advance()
		return token.New(typ, lit, line, column), true
	}
	return token.Token{}, false
}

func (l *Lexer) readNumber() token.Token {
	line, column := l.line, l.column
	start := l.pos
	for isDigit(l.current) {
		l.advance()
	}
	if l.current == '.' && isDigit(l.peek()) {
		l.advance()
		for isDigit(l.current) {
			l.advance()
		}
	}
	return token.New(token.NUMBER, l.src[start:l.pos], line, column)
}

func (l *Lexer) readIdentifier() token.Token {
	line, column := l.line, l.column
	start := l.pos
	for isIdentPart(l.current) {
		l.advance()
	}
	literal := l.src[start:l.pos]
	return token.New(token.LookupIdent(literal), literal, line, column)
}

// readString scans a double-quoted string literal starting at the opening
// quote, handling the escapes listed in spec §4.1 (\\, \", \n, \t).
func (l *Lexer) readString() (token.Token, error) {
	line, column := l.line, l.column
	l.advance() // consume opening quote

	var sb strings.Builder
	for l.current != '"' {
		if l.current == 0 {
			return token.Token{}, newError(line, column, "unterminated string literal")
		}
		if l.current == '\\' {
			l.advance()
			escaped, ok := escapeChar(l.current)
			if !ok {
				return token.Token{}, newError(l.line, l.column, "invalid escape sequence \\%c", l.current)
			}
			sb.WriteByte(escaped)
			l.advance()
			continue
		}
		sb.WriteByte(l.current)
		l.advance()
	}
	l.advance() // consume closing quote
	return token.New(token.STRING, sb.String(), line, column), nil
}

func escapeChar(c byte) (byte, bool) {
	switch c {
	case '\\':
		return '\\', true
	case '"':
		return '"', true
	case 'n':
		return '\n', true
	case 't':
		return '\t', true
	default:
		return 0, false
	}
}

// isWhitespace treats ';' as optional whitespace (spec §9: "Implementers who
// wish to support semicolons may accept them as optional whitespace"), so
// statement-separating semicolons in source are silently skipped rather than
// tokenized.
func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == ';'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentStart(c byte) bool {
	return isAlpha(c) || c == '_'
}

func isIdentPart(c byte) bool {
	return isAlpha(c) || isDigit(c) || c == '_'
}
