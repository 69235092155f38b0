package hocon

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var numberPattern = regexp.MustCompile(`^[+-]?[0-9]+(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)

// Parse reads a document in tscfg's HOCON subset and returns its root
// Config. See the package doc for exactly what subset is supported.
func Parse(input string) (*Config, error) {
	lex := newLexer(input)
	cfg := NewConfig()

	if err := parseObjectBody(lex, cfg, false); err != nil {
		return nil, err
	}

	return cfg, nil
}

type lexer struct {
	src     []rune
	pos     int
	line    int
	pending []string
}

func newLexer(input string) *lexer {
	return &lexer{src: []rune(input), line: 1}
}

func (l *lexer) eof() bool {
	return l.pos >= len(l.src)
}

func (l *lexer) peekRune() rune {
	if l.eof() {
		return 0
	}

	return l.src[l.pos]
}

func (l *lexer) advance() rune {
	r := l.src[l.pos]
	l.pos++

	if r == '\n' {
		l.line++
	}

	return r
}

// skipWhitespaceAndComments advances past whitespace and "#"/"//" line
// comments, appending stripped comment text to l.pending.
func (l *lexer) skipWhitespaceAndComments() {
	for !l.eof() {
		r := l.peekRune()

		switch {
		case r == ' ' || r == '\t' || r == '\r' || r == '\n':
			l.advance()
		case r == '#':
			l.consumeLineComment(1)
		case r == '/' && l.pos+1 < len(l.src) && l.src[l.pos+1] == '/':
			l.consumeLineComment(2)
		default:
			return
		}
	}
}

func (l *lexer) consumeLineComment(markerLen int) {
	for range markerLen {
		l.advance()
	}

	start := l.pos

	for !l.eof() && l.peekRune() != '\n' {
		l.advance()
	}

	text := strings.TrimPrefix(string(l.src[start:l.pos]), " ")
	l.pending = append(l.pending, text)
}

// consumeTrailingComment consumes a single "#"/"//" comment appearing
// immediately after the current position without crossing a newline, and
// returns its text. It returns nil if no such same-line comment is
// present.
func (l *lexer) consumeTrailingComment() []string {
	for {
		switch r := l.peekRune(); {
		case r == ' ' || r == '\t':
			l.advance()
		case r == '#':
			l.consumeLineComment(1)

			return l.takePending()
		case r == '/' && l.pos+1 < len(l.src) && l.src[l.pos+1] == '/':
			l.consumeLineComment(2)

			return l.takePending()
		default:
			return nil
		}
	}
}

func (l *lexer) takePending() []string {
	p := l.pending
	l.pending = nil

	return p
}

func isStructural(r rune) bool {
	switch r {
	case '{', '}', '[', ']', '=', ':', ',', '"':
		return true
	default:
		return false
	}
}

func (l *lexer) readBareword() string {
	start := l.pos

	for !l.eof() {
		r := l.peekRune()
		if r == ' ' || r == '\t' || r == '\r' || r == '\n' || isStructural(r) {
			break
		}

		if r == '#' || (r == '/' && l.pos+1 < len(l.src) && l.src[l.pos+1] == '/') {
			break
		}

		l.advance()
	}

	return string(l.src[start:l.pos])
}

func (l *lexer) readQuotedString() (string, error) {
	l.advance() // opening quote

	var sb strings.Builder

	for {
		if l.eof() {
			return "", fmt.Errorf("hocon: unterminated string at line %d", l.line)
		}

		r := l.advance()
		if r == '"' {
			return sb.String(), nil
		}

		if r != '\\' {
			sb.WriteRune(r)

			continue
		}

		if l.eof() {
			return "", fmt.Errorf("hocon: unterminated escape at line %d", l.line)
		}

		switch esc := l.advance(); esc {
		case 'n':
			sb.WriteRune('\n')
		case 't':
			sb.WriteRune('\t')
		case 'r':
			sb.WriteRune('\r')
		default:
			sb.WriteRune(esc)
		}
	}
}

// readKey reads a key at the current position: a quoted string (kept as a
// single path segment, never split on dots inside the quotes) or a bare,
// possibly dotted, identifier run (split into path segments on ".").
func (l *lexer) readKey() (segs []string, err error) {
	if l.peekRune() == '"' {
		s, err := l.readQuotedString()
		if err != nil {
			return nil, err
		}

		return []string{s}, nil
	}

	bw := l.readBareword()
	if bw == "" {
		return nil, fmt.Errorf("hocon: expected key at line %d", l.line)
	}

	return strings.Split(bw, "."), nil
}

// parseObjectBody parses key/value pairs into cfg until EOF (top level) or
// a closing '}' (stopBrace).
func parseObjectBody(lex *lexer, cfg *Config, stopBrace bool) error {
	for {
		lex.skipWhitespaceAndComments()

		if lex.eof() {
			if stopBrace {
				return fmt.Errorf("hocon: unterminated object, expected '}' at line %d", lex.line)
			}

			return nil
		}

		if stopBrace && lex.peekRune() == '}' {
			lex.advance()

			return nil
		}

		if lex.peekRune() == ',' {
			lex.advance()

			continue
		}

		keyComments := lex.takePending()
		keyLine := lex.line

		segs, err := lex.readKey()
		if err != nil {
			return err
		}

		lex.skipWhitespaceAndComments()

		var val *Value

		switch {
		case !lex.eof() && lex.peekRune() == '{':
			val, err = parseValue(lex)
		case !lex.eof() && (lex.peekRune() == '=' || lex.peekRune() == ':'):
			lex.advance()
			val, err = parseValue(lex)
		default:
			return fmt.Errorf("hocon: expected '=' or '{' after key at line %d", keyLine)
		}

		if err != nil {
			return err
		}

		val.origin = Origin{Line: keyLine, Comments: append(keyComments, val.origin.Comments...)}
		insertPath(cfg, segs, val)
	}
}

func parseValue(lex *lexer) (*Value, error) {
	lex.skipWhitespaceAndComments()

	if lex.eof() {
		return nil, fmt.Errorf("hocon: unexpected EOF, expected value at line %d", lex.line)
	}

	line := lex.line

	switch r := lex.peekRune(); {
	case r == '{':
		lex.advance()

		// A comment trailing "{" on the same line (e.g. "Dog { # @define
		// extends Animal") annotates this object's own key, not whatever
		// key happens to come first inside the body — capture it here
		// before the recursive parse's own comment-skipping can
		// misattribute it.
		trailing := lex.consumeTrailingComment()

		cfg := NewConfig()
		if err := parseObjectBody(lex, cfg, true); err != nil {
			return nil, err
		}

		return &Value{kind: KindObject, object: cfg, origin: Origin{Line: line, Comments: trailing}}, nil

	case r == '[':
		lex.advance()

		return parseArray(lex, line)

	case r == '"':
		s, err := lex.readQuotedString()
		if err != nil {
			return nil, err
		}

		return &Value{kind: KindString, raw: s, text: s, rendered: s, origin: Origin{Line: line}}, nil

	default:
		bw := lex.readBareword()
		if bw == "" {
			return nil, fmt.Errorf("hocon: unexpected character %q at line %d", r, line)
		}

		return scalarFromBareword(bw, line), nil
	}
}

func scalarFromBareword(bw string, line int) *Value {
	switch bw {
	case "true":
		return &Value{kind: KindBoolean, raw: true, text: bw, rendered: bw, origin: Origin{Line: line}}
	case "false":
		return &Value{kind: KindBoolean, raw: false, text: bw, rendered: bw, origin: Origin{Line: line}}
	case "null":
		return &Value{kind: KindNull, raw: nil, text: bw, rendered: bw, origin: Origin{Line: line}}
	}

	if numberPattern.MatchString(bw) {
		var raw any

		if iv, err := strconv.ParseInt(bw, 10, 64); err == nil {
			raw = iv
		} else if fv, err := strconv.ParseFloat(bw, 64); err == nil {
			raw = fv
		}

		return &Value{kind: KindNumber, raw: raw, text: bw, rendered: bw, origin: Origin{Line: line}}
	}

	return &Value{kind: KindString, raw: bw, text: bw, rendered: bw, origin: Origin{Line: line}}
}

func parseArray(lex *lexer, line int) (*Value, error) {
	var elems []*Value

	for {
		lex.skipWhitespaceAndComments()

		if lex.eof() {
			return nil, fmt.Errorf("hocon: unterminated array at line %d", line)
		}

		if lex.peekRune() == ']' {
			lex.advance()

			break
		}

		if lex.peekRune() == ',' {
			lex.advance()

			continue
		}

		v, err := parseValue(lex)
		if err != nil {
			return nil, err
		}

		elems = append(elems, v)

		lex.skipWhitespaceAndComments()

		if !lex.eof() && lex.peekRune() == ',' {
			lex.advance()
		}
	}

	parts := make([]string, len(elems))
	raws := make([]any, len(elems))

	for i, e := range elems {
		parts[i] = e.Render()
		raws[i] = e.Unwrapped()
	}

	return &Value{
		kind:     KindList,
		raw:      raws,
		elements: elems,
		rendered: "[" + strings.Join(parts, ",") + "]",
		origin:   Origin{Line: line},
	}, nil
}

// insertPath inserts v at the dotted path segs under cfg, creating (or
// reusing) intermediate object nodes as needed — the dotted-bare-key
// shorthand HOCON itself defines.
func insertPath(cfg *Config, segs []string, v *Value) {
	cur := cfg

	for _, seg := range segs[:len(segs)-1] {
		if existing, ok := cur.children[seg]; ok && existing.kind == KindObject {
			cur = existing.object

			continue
		}

		nested := NewConfig()
		cur.Set(seg, &Value{kind: KindObject, object: nested})
		cur = nested
	}

	cur.Set(segs[len(segs)-1], v)
}

// renderObject renders c the way Render() expects for an object value.
func renderObject(c *Config) string {
	parts := make([]string, 0, len(c.order))

	for _, k := range c.order {
		parts = append(parts, k+":"+c.children[k].Render())
	}

	return "{" + strings.Join(parts, ",") + "}"
}
