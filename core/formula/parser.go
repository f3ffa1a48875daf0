package formula

import (
	"fmt"
	"strconv"
)

// tokenKind identifies a lexical token
type tokenKind int

const (
	tokenNumber tokenKind = iota
	tokenPlus
	tokenMinus
	tokenStar
	tokenSlash
	tokenLParen
	tokenRParen
	tokenEOF
)

type token struct {
	kind  tokenKind
	value float64
	pos   int
}

// lex tokenizes a substituted expression. Any character outside the
// arithmetic sublanguage is an error.
func lex(input string) ([]token, error) {
	var tokens []token
	i := 0
	for i < len(input) {
		c := input[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '+':
			tokens = append(tokens, token{kind: tokenPlus, pos: i})
			i++
		case c == '-':
			tokens = append(tokens, token{kind: tokenMinus, pos: i})
			i++
		case c == '*':
			tokens = append(tokens, token{kind: tokenStar, pos: i})
			i++
		case c == '/':
			tokens = append(tokens, token{kind: tokenSlash, pos: i})
			i++
		case c == '(':
			tokens = append(tokens, token{kind: tokenLParen, pos: i})
			i++
		case c == ')':
			tokens = append(tokens, token{kind: tokenRParen, pos: i})
			i++
		case c >= '0' && c <= '9' || c == '.':
			start := i
			seenDot := false
			for i < len(input) {
				d := input[i]
				if d == '.' {
					if seenDot {
						break
					}
					seenDot = true
					i++
					continue
				}
				if d < '0' || d > '9' {
					break
				}
				i++
			}
			val, err := strconv.ParseFloat(input[start:i], 64)
			if err != nil {
				return nil, fmt.Errorf("bad number %q at %d", input[start:i], start)
			}
			tokens = append(tokens, token{kind: tokenNumber, value: val, pos: start})
		default:
			return nil, fmt.Errorf("unexpected character %q at %d", c, i)
		}
	}
	tokens = append(tokens, token{kind: tokenEOF, pos: len(input)})
	return tokens, nil
}

// parser is a recursive-descent parser over the token stream.
//
// Grammar:
//
//	expr   = term   { ("+" | "-") term }
//	term   = factor { ("*" | "/") factor }
//	factor = number | "(" expr ")" | ("+" | "-") factor
type parser struct {
	tokens []token
	pos    int
}

func parse(input string) (float64, error) {
	tokens, err := lex(input)
	if err != nil {
		return 0, err
	}
	p := &parser{tokens: tokens}
	val, err := p.expr()
	if err != nil {
		return 0, err
	}
	if p.peek().kind != tokenEOF {
		return 0, fmt.Errorf("unexpected trailing input at %d", p.peek().pos)
	}
	return val, nil
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) next() token {
	t := p.tokens[p.pos]
	if t.kind != tokenEOF {
		p.pos++
	}
	return t
}

func (p *parser) expr() (float64, error) {
	val, err := p.term()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek().kind {
		case tokenPlus:
			p.next()
			rhs, err := p.term()
			if err != nil {
				return 0, err
			}
			val += rhs
		case tokenMinus:
			p.next()
			rhs, err := p.term()
			if err != nil {
				return 0, err
			}
			val -= rhs
		default:
			return val, nil
		}
	}
}

func (p *parser) term() (float64, error) {
	val, err := p.factor()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek().kind {
		case tokenStar:
			p.next()
			rhs, err := p.factor()
			if err != nil {
				return 0, err
			}
			val *= rhs
		case tokenSlash:
			p.next()
			rhs, err := p.factor()
			if err != nil {
				return 0, err
			}
			// Division by zero yields a non-finite value; Evaluate
			// degrades it to 0.
			val /= rhs
		default:
			return val, nil
		}
	}
}

func (p *parser) factor() (float64, error) {
	t := p.next()
	switch t.kind {
	case tokenNumber:
		return t.value, nil
	case tokenLParen:
		val, err := p.expr()
		if err != nil {
			return 0, err
		}
		if closing := p.next(); closing.kind != tokenRParen {
			return 0, fmt.Errorf("missing closing parenthesis at %d", closing.pos)
		}
		return val, nil
	case tokenMinus:
		val, err := p.factor()
		if err != nil {
			return 0, err
		}
		return -val, nil
	case tokenPlus:
		return p.factor()
	default:
		return 0, fmt.Errorf("unexpected token at %d", t.pos)
	}
}
