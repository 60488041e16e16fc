/*
File    : lax/lexer/lexer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package lexer performs lexical analysis of Lax source code. It scans
// the source byte by byte, identifying the tokens spec.md §4.1 defines:
// punctuation, one/two-char operators, string and number literals,
// identifiers and keywords. Grounded on go-mix's lexer.Lexer
// (Src/Current/Position/Line byte-scanner with Advance/Peek) and
// original_source/src/scanner.rs's exact error strings
// ("Unterminated string.", "Unexpected character.").
package lexer

import (
	"strconv"
	"unicode"

	"github.com/akashmaji946/lax/errs"
	"github.com/akashmaji946/lax/token"
)

// Lexer holds the scanning state for a single source string.
type Lexer struct {
	src     string
	start   int
	current int
	line    int
	status  *errs.Status
}

// New creates a Lexer over src that reports scan errors to status.
func New(src string, status *errs.Status) *Lexer {
	return &Lexer{src: src, line: 1, status: status}
}

// ScanTokens scans the entire source and returns its token list, always
// terminated by exactly one Eof token (spec.md §4.1's output contract).
// Scan errors are reported through status but do not stop scanning —
// the resulting token stream may be degraded, but a caller checking
// status.HadCompileError afterward will already know not to trust it.
func (l *Lexer) ScanTokens() []token.Token {
	var tokens []token.Token
	for !l.atEnd() {
		l.start = l.current
		if t, ok := l.scanToken(); ok {
			tokens = append(tokens, t)
		}
	}
	tokens = append(tokens, token.New(token.Eof, "", l.line))
	return tokens
}

func (l *Lexer) atEnd() bool {
	return l.current >= len(l.src)
}

func (l *Lexer) advance() byte {
	c := l.src[l.current]
	l.current++
	return c
}

func (l *Lexer) peek() byte {
	if l.atEnd() {
		return 0
	}
	return l.src[l.current]
}

func (l *Lexer) peekNext() byte {
	if l.current+1 >= len(l.src) {
		return 0
	}
	return l.src[l.current+1]
}

// match consumes the current byte and returns true if it equals want,
// otherwise leaves the position untouched.
func (l *Lexer) match(want byte) bool {
	if l.atEnd() || l.src[l.current] != want {
		return false
	}
	l.current++
	return true
}

func (l *Lexer) lexeme() string {
	return l.src[l.start:l.current]
}

func (l *Lexer) simple(kind token.Kind) (token.Token, bool) {
	return token.New(kind, l.lexeme(), l.line), true
}

// scanToken dispatches on the next byte per spec.md §4.1's ordering.
// The bool result is false for bytes that produce no token (whitespace,
// comments) or that were already reported as a scan error.
func (l *Lexer) scanToken() (token.Token, bool) {
	c := l.advance()
	switch c {
	case '(':
		return l.simple(token.LeftParen)
	case ')':
		return l.simple(token.RightParen)
	case '{':
		return l.simple(token.LeftBrace)
	case '}':
		return l.simple(token.RightBrace)
	case ',':
		return l.simple(token.Comma)
	case '.':
		return l.simple(token.Dot)
	case '-':
		return l.simple(token.Minus)
	case '+':
		return l.simple(token.Plus)
	case ';':
		return l.simple(token.Semicolon)
	case '*':
		return l.simple(token.Star)

	case '!':
		if l.match('=') {
			return l.simple(token.BangEqual)
		}
		return l.simple(token.Bang)
	case '=':
		if l.match('=') {
			return l.simple(token.EqualEqual)
		}
		return l.simple(token.Equal)
	case '<':
		if l.match('=') {
			return l.simple(token.LessEqual)
		}
		return l.simple(token.Less)
	case '>':
		if l.match('=') {
			return l.simple(token.GreaterEqual)
		}
		return l.simple(token.Greater)

	case '/':
		if l.match('/') {
			for l.peek() != '\n' && !l.atEnd() {
				l.advance()
			}
			return token.Token{}, false
		}
		return l.simple(token.Slash)

	case ' ', '\r', '\t':
		return token.Token{}, false
	case '\n':
		l.line++
		return token.Token{}, false

	case '"':
		return l.scanString()

	default:
		switch {
		case isDigit(c):
			return l.scanNumber()
		case isAlpha(c):
			return l.scanIdentifier()
		default:
			l.status.ReportScan(errs.ScanError{Line: l.line, Message: "Unexpected character."})
			return token.Token{}, false
		}
	}
}

func (l *Lexer) scanString() (token.Token, bool) {
	startLine := l.line
	for l.peek() != '"' && !l.atEnd() {
		if l.peek() == '\n' {
			l.line++
		}
		l.advance()
	}

	if l.atEnd() {
		l.status.ReportScan(errs.ScanError{Line: startLine, Message: "Unterminated string."})
		return token.Token{}, false
	}

	l.advance() // closing quote
	value := l.src[l.start+1 : l.current-1]
	return token.NewLiteral(token.String, l.lexeme(), token.StringValue(value), startLine), true
}

func (l *Lexer) scanNumber() (token.Token, bool) {
	for isDigit(l.peek()) {
		l.advance()
	}
	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}

	lexeme := l.lexeme()
	n, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		l.status.ReportScan(errs.ScanError{Line: l.line, Message: "Failed to parse number."})
		return token.Token{}, false
	}
	return token.NewLiteral(token.Number, lexeme, token.NumberValue(n), l.line), true
}

func (l *Lexer) scanIdentifier() (token.Token, bool) {
	for isAlphaNumeric(l.peek()) {
		l.advance()
	}
	lexeme := l.lexeme()
	kind, ok := token.Keywords[lexeme]
	if !ok {
		kind = token.Identifier
	}
	return token.New(kind, lexeme, l.line), true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return c == '_' || unicode.IsLetter(rune(c))
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
