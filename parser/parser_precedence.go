/*
File   : zlang/parser/parser_precedence.go
*/
package parser

import "github.com/akashmaji946/zlang/token"

// precedence implements spec §4.2's 9-level table, leveled so that a higher
// number binds tighter. Level 7 (unary) is handled outside this table by
// parseUnary; the table drives the infix climb for the binary operators
// (levels 1-6) and for the postfix chain `(`, `.`, `[` (level 8), whose
// parse functions are parseCall, parseMember and parseIndex.
type precedence int

const (
	lowest precedence = iota
	orPrec
	andPrec
	equalityPrec
	comparePrec
	sumPrec
	productPrec
	unaryPrec
	postfixPrec
)

var precedences = map[token.Type]precedence{
	token.OR:      orPrec,
	token.AND:     andPrec,
	token.EQ:      equalityPrec,
	token.NEQ:     equalityPrec,
	token.LT:      comparePrec,
	token.LE:      comparePrec,
	token.GT:      comparePrec,
	token.GE:      comparePrec,
	token.PLUS:    sumPrec,
	token.MINUS:   sumPrec,
	token.STAR:    productPrec,
	token.SLASH:   productPrec,
	token.PERCENT: productPrec,
	token.LPAREN:   postfixPrec,
	token.DOT:      postfixPrec,
	token.LBRACKET: postfixPrec,
}

func (p *Parser) peekPrecedence() precedence {
	if pr, ok := precedences[p.peek.Type]; ok {
		return pr
	}
	return lowest
}

func (p *Parser) curPrecedence() precedence {
	if pr, ok := precedences[p.cur.Type]; ok {
		return pr
	}
	return lowest
}
