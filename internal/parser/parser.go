// Package parser implements the recursive-descent parser converting a
// character stream into a node tree.
package parser

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/nodefmt/nodefmt/errors"
	"github.com/nodefmt/nodefmt/node"
	"github.com/nodefmt/nodefmt/stream"
)

// parser holds the cursor state. Position is tracked here rather than
// in the Source so that any Source implementation yields positioned
// errors.
type parser struct {
	src      stream.Source
	line     int
	col      int
	depth    int
	maxDepth int
}

// Parse reads exactly one value from src and returns it, leaving the
// cursor just past the parsed value. Trailing input is not consumed;
// callers needing end-of-input validation must check the Source
// afterwards.
func Parse(src stream.Source, maxDepth int) (node.Node, error) {
	p := &parser{src: src, line: 1, col: 1, maxDepth: maxDepth}
	return p.parseValue()
}

func (p *parser) current() (rune, bool) {
	return p.src.Current()
}

func (p *parser) next() {
	if ch, ok := p.src.Current(); ok && ch == '\n' {
		p.line++
		p.col = 0
	}
	p.src.Next()
	p.col++
}

func (p *parser) errorf(format string, args ...any) *errors.ParseError {
	return &errors.ParseError{
		Message: fmt.Sprintf(format, args...),
		Line:    p.line,
		Column:  p.col,
	}
}

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

func (p *parser) skipWhitespace() {
	for {
		ch, ok := p.current()
		if !ok || !isSpace(ch) {
			return
		}
		p.next()
	}
}

// The contract for every parse function: entered with the cursor on
// the first character of the construct, returns with the cursor on
// the character after it.

func (p *parser) parseValue() (node.Node, error) {
	if p.depth >= p.maxDepth {
		return nil, p.errorf("exceeded maximum nesting depth of %d", p.maxDepth)
	}
	p.depth++
	defer func() { p.depth-- }()

	p.skipWhitespace()

	ch, ok := p.current()
	switch {
	case !ok:
		return nil, p.errorf("empty input")
	case ch == '{':
		return p.parseObject()
	case ch == '[':
		return p.parseArray()
	case ch == '"':
		return p.parseString()
	case ch == 't':
		return p.parseLiteral("true", node.Bool(true))
	case ch == 'f':
		return p.parseLiteral("false", node.Bool(false))
	case ch == 'n':
		return p.parseLiteral("null", node.Null{})
	case ch == '-' || ('0' <= ch && ch <= '9'):
		return p.parseNumber()
	default:
		return nil, p.errorf("unexpected character %q", ch)
	}
}

func (p *parser) parseObject() (node.Node, error) {
	obj := node.Object{}
	p.next() // consume '{'

	p.skipWhitespace()
	if ch, ok := p.current(); ok && ch == '}' {
		p.next()
		return obj, nil
	}

	for {
		p.skipWhitespace()

		if ch, ok := p.current(); !ok || ch != '"' {
			return nil, p.errorf("object key must be a string")
		}
		keyNode, err := p.parseString()
		if err != nil {
			return nil, err
		}
		key := string(keyNode.(node.Str))

		p.skipWhitespace()
		if ch, ok := p.current(); !ok || ch != ':' {
			return nil, p.errorf("expected ':' after object key")
		}
		p.next()

		value, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		// Duplicate keys overwrite, standard mapping semantics.
		obj[key] = value

		p.skipWhitespace()
		ch, ok := p.current()
		switch {
		case ok && ch == ',':
			p.next()
		case ok && ch == '}':
			p.next()
			return obj, nil
		default:
			return nil, p.errorf("expected ',' or '}' in object")
		}
	}
}

func (p *parser) parseArray() (node.Node, error) {
	arr := node.Array{}
	p.next() // consume '['

	p.skipWhitespace()
	if ch, ok := p.current(); ok && ch == ']' {
		p.next()
		return arr, nil
	}

	for {
		elem, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		arr = append(arr, elem)

		p.skipWhitespace()
		ch, ok := p.current()
		switch {
		case ok && ch == ',':
			p.next()
		case ok && ch == ']':
			p.next()
			return arr, nil
		default:
			return nil, p.errorf("expected ',' or ']' in array")
		}
	}
}

func (p *parser) parseString() (node.Node, error) {
	var sb strings.Builder
	p.next() // consume opening quote

	for {
		ch, ok := p.current()
		if !ok {
			return nil, p.errorf("unterminated string")
		}
		switch ch {
		case '"':
			p.next()
			return node.Str(sb.String()), nil
		case '\\':
			p.next()
			r, err := p.parseEscape()
			if err != nil {
				return nil, err
			}
			sb.WriteRune(r)
		default:
			sb.WriteRune(ch)
			p.next()
		}
	}
}

func (p *parser) parseEscape() (rune, error) {
	ch, ok := p.current()
	if !ok {
		return 0, p.errorf("invalid escape sequence")
	}
	switch ch {
	case '"', '\\', '/':
		p.next()
		return ch, nil
	case 'b':
		p.next()
		return '\b', nil
	case 'f':
		p.next()
		return '\f', nil
	case 'n':
		p.next()
		return '\n', nil
	case 'r':
		p.next()
		return '\r', nil
	case 't':
		p.next()
		return '\t', nil
	case 'u':
		p.next()
		return p.parseHexEscape()
	}
	return 0, p.errorf("invalid escape sequence")
}

func (p *parser) parseHexEscape() (rune, error) {
	var val rune
	for range 4 {
		ch, ok := p.current()
		if !ok {
			return 0, p.errorf("invalid escape sequence")
		}
		var d rune
		switch {
		case '0' <= ch && ch <= '9':
			d = ch - '0'
		case 'a' <= ch && ch <= 'f':
			d = ch - 'a' + 10
		case 'A' <= ch && ch <= 'F':
			d = ch - 'A' + 10
		default:
			return 0, p.errorf("invalid escape sequence")
		}
		val = val*16 + d
		p.next()
	}
	if !utf8.ValidRune(val) {
		return 0, p.errorf("invalid escape sequence")
	}
	return val, nil
}

func (p *parser) parseNumber() (node.Node, error) {
	var sb strings.Builder
	isFloat := false

	if ch, ok := p.current(); ok && ch == '-' {
		sb.WriteRune('-')
		p.next()
	}

scan:
	for {
		ch, ok := p.current()
		if !ok {
			break
		}
		switch {
		case '0' <= ch && ch <= '9':
			sb.WriteRune(ch)
			p.next()
		case ch == '.':
			if isFloat {
				return nil, p.errorf("multiple decimal points in number")
			}
			isFloat = true
			sb.WriteRune(ch)
			p.next()
		case ch == 'e' || ch == 'E':
			isFloat = true
			sb.WriteRune(ch)
			p.next()
			if sign, ok := p.current(); ok && (sign == '+' || sign == '-') {
				sb.WriteRune(sign)
				p.next()
			}
		default:
			break scan
		}
	}

	if isFloat {
		f, err := strconv.ParseFloat(sb.String(), 64)
		if err != nil {
			return nil, p.errorf("invalid float number %q", sb.String())
		}
		return node.Float(f), nil
	}
	i, err := strconv.ParseInt(sb.String(), 10, 64)
	if err != nil {
		return nil, p.errorf("invalid integer number %q", sb.String())
	}
	return node.Int(i), nil
}

func (p *parser) parseLiteral(want string, val node.Node) (node.Node, error) {
	for _, expect := range want {
		ch, ok := p.current()
		if !ok || ch != expect {
			return nil, p.errorf("expected %q", want)
		}
		p.next()
	}
	return val, nil
}
