package domain

import (
	"strings"
)

// attrMatchesTest reports whether an outer attribute is a cfg attribute
// whose argument predicate mentions the test condition. Anything that does
// not parse as a recognizable predicate shape counts as non-matching; a
// malformed attribute is never an error.
func attrMatchesTest(text string) bool {
	args, ok := cfgArguments(text)
	if !ok {
		return false
	}

	parser := predParser{tokens: lexPredicate(args)}
	expr := parser.parseSequence()

	return containsTest(expr)
}

// cfgArguments strips `#[cfg( ... )]` down to its argument text. Attributes
// with any other path (cfg_attr included) do not qualify.
func cfgArguments(text string) (string, bool) {
	s := strings.TrimSpace(text)

	if !strings.HasPrefix(s, "#[") || !strings.HasSuffix(s, "]") {
		return "", false
	}

	inner := strings.TrimSpace(s[2 : len(s)-1])

	name := leadingIdent(inner)
	if name != "cfg" {
		return "", false
	}

	rest := strings.TrimSpace(inner[len(name):])
	if !strings.HasPrefix(rest, "(") || !strings.HasSuffix(rest, ")") {
		return "", false
	}

	return rest[1 : len(rest)-1], true
}

func leadingIdent(s string) string {
	end := 0
	for end < len(s) && isIdentByte(s[end]) {
		end++
	}

	return s[:end]
}

func isIdentByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}

// The predicate grammar is matched structurally, not semantically: a bare
// identifier, a parenthesized group, a comma list, a binary and/or
// expression, or an any(...)/all(...) call. Everything else is opaque and
// matches nothing.
type predKind int

const (
	predIdent predKind = iota
	predGroup
	predList
	predBinary
	predCall
	predOpaque
)

type predExpr struct {
	kind predKind
	name string
	args []predExpr
}

// containsTest walks a predicate expression looking for the test condition.
func containsTest(expr predExpr) bool {
	switch expr.kind {
	case predIdent:
		return expr.name == "test"
	case predGroup, predList:
		return anyContainsTest(expr.args)
	case predBinary:
		return anyContainsTest(expr.args)
	case predCall:
		if expr.name != "any" && expr.name != "all" {
			return false
		}

		return anyContainsTest(expr.args)
	default:
		return false
	}
}

func anyContainsTest(exprs []predExpr) bool {
	for _, e := range exprs {
		if containsTest(e) {
			return true
		}
	}

	return false
}

type tokKind int

const (
	tokIdent tokKind = iota
	tokLParen
	tokRParen
	tokComma
	tokAnd
	tokOr
	tokOther
)

type predToken struct {
	kind tokKind
	text string
}

// lexPredicate splits cfg argument text into tokens. String literals and
// unrecognized punctuation become opaque tokens so the parser can skip the
// clauses that contain them without giving up on the rest.
func lexPredicate(s string) []predToken {
	var tokens []predToken

	i := 0
	for i < len(s) {
		b := s[i]

		switch {
		case b == ' ' || b == '\t' || b == '\r' || b == '\n':
			i++
		case b == '(':
			tokens = append(tokens, predToken{kind: tokLParen})
			i++
		case b == ')':
			tokens = append(tokens, predToken{kind: tokRParen})
			i++
		case b == ',':
			tokens = append(tokens, predToken{kind: tokComma})
			i++
		case b == '&' && i+1 < len(s) && s[i+1] == '&':
			tokens = append(tokens, predToken{kind: tokAnd})
			i += 2
		case b == '|' && i+1 < len(s) && s[i+1] == '|':
			tokens = append(tokens, predToken{kind: tokOr})
			i += 2
		case b == '"':
			j := i + 1
			for j < len(s) && s[j] != '"' {
				if s[j] == '\\' {
					j++
				}
				j++
			}
			if j < len(s) {
				j++
			}
			tokens = append(tokens, predToken{kind: tokOther, text: s[i:j]})
			i = j
		case isIdentByte(b):
			j := i
			for j < len(s) && isIdentByte(s[j]) {
				j++
			}
			tokens = append(tokens, predToken{kind: tokIdent, text: s[i:j]})
			i = j
		default:
			tokens = append(tokens, predToken{kind: tokOther, text: s[i : i+1]})
			i++
		}
	}

	return tokens
}

type predParser struct {
	tokens []predToken
	pos    int
}

func (p *predParser) peek() (predToken, bool) {
	if p.pos >= len(p.tokens) {
		return predToken{}, false
	}

	return p.tokens[p.pos], true
}

func (p *predParser) next() (predToken, bool) {
	tok, ok := p.peek()
	if ok {
		p.pos++
	}

	return tok, ok
}

// parseSequence parses one or more comma-separated arguments. A single
// argument is returned as-is; several become a list.
func (p *predParser) parseSequence() predExpr {
	args := []predExpr{p.parseArg()}

	for {
		tok, ok := p.peek()
		if !ok || tok.kind != tokComma {
			break
		}

		p.pos++
		args = append(args, p.parseArg())
	}

	if len(args) == 1 {
		return args[0]
	}

	return predExpr{kind: predList, args: args}
}

// parseArg parses a single argument, falling back to an opaque clause when
// the argument is not one of the recognized predicate shapes. The fallback
// consumes up to the next top-level comma so one unparseable argument does
// not poison its siblings.
func (p *predParser) parseArg() predExpr {
	saved := p.pos

	expr, ok := p.parseExpr()
	if ok {
		if tok, more := p.peek(); !more || tok.kind == tokComma || tok.kind == tokRParen {
			return expr
		}
	}

	p.pos = saved
	p.skipOpaque()

	return predExpr{kind: predOpaque}
}

func (p *predParser) parseExpr() (predExpr, bool) {
	left, ok := p.parseTerm()
	if !ok {
		return predExpr{}, false
	}

	for {
		tok, more := p.peek()
		if !more || (tok.kind != tokAnd && tok.kind != tokOr) {
			break
		}

		p.pos++

		right, rightOK := p.parseTerm()
		if !rightOK {
			return predExpr{}, false
		}

		left = predExpr{kind: predBinary, args: []predExpr{left, right}}
	}

	return left, true
}

func (p *predParser) parseTerm() (predExpr, bool) {
	tok, ok := p.next()
	if !ok {
		return predExpr{}, false
	}

	switch tok.kind {
	case tokIdent:
		if peeked, more := p.peek(); more && peeked.kind == tokLParen {
			p.pos++
			args := p.parseCallArgs()

			return predExpr{kind: predCall, name: tok.text, args: args}, true
		}

		return predExpr{kind: predIdent, name: tok.text}, true

	case tokLParen:
		inner := p.parseSequence()
		if closing, more := p.next(); !more || closing.kind != tokRParen {
			return predExpr{}, false
		}

		if inner.kind == predList {
			return inner, true
		}

		return predExpr{kind: predGroup, args: []predExpr{inner}}, true

	default:
		return predExpr{}, false
	}
}

// parseCallArgs consumes comma-separated arguments up to the closing paren.
func (p *predParser) parseCallArgs() []predExpr {
	if tok, ok := p.peek(); ok && tok.kind == tokRParen {
		p.pos++
		return nil
	}

	var args []predExpr

	for {
		args = append(args, p.parseArg())

		tok, ok := p.next()
		if !ok || tok.kind == tokRParen {
			break
		}

		if tok.kind != tokComma {
			p.skipOpaque()
		}
	}

	return args
}

// skipOpaque advances past the current clause: everything up to the next
// comma or closing paren at the current nesting depth.
func (p *predParser) skipOpaque() {
	depth := 0

	for {
		tok, ok := p.peek()
		if !ok {
			return
		}

		switch tok.kind {
		case tokLParen:
			depth++
		case tokRParen:
			if depth == 0 {
				return
			}
			depth--
		case tokComma:
			if depth == 0 {
				return
			}
		}

		p.pos++
	}
}
