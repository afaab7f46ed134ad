// FILE: lixenwraith/cliconfig/token.go
package cliconfig

import (
	"iter"
	"strings"
	"unicode/utf8"
)

// TokenKind classifies a command-line element.
type TokenKind int

const (
	// TokenEnd marks the end of the input
	TokenEnd TokenKind = iota
	// TokenShort is a dash followed by exactly one character ("-c")
	TokenShort
	// TokenLong is two dashes followed by a name ("--config")
	TokenLong
	// TokenValue is any other element
	TokenValue
)

// String returns the kind name.
func (k TokenKind) String() string {
	switch k {
	case TokenEnd:
		return "end"
	case TokenShort:
		return "short"
	case TokenLong:
		return "long"
	case TokenValue:
		return "value"
	default:
		return "unknown"
	}
}

// Token is one classified element of the argument list.
type Token struct {
	Kind  TokenKind
	Short rune   // Set for TokenShort
	Long  string // Set for TokenLong
	Raw   string // The element as given
}

// Lexer classifies arguments one at a time. It knows nothing about the schema.
// A Lexer is single-use; build a new one to restart.
type Lexer struct {
	args       []string
	pos        int
	terminated bool // A bare "--" was seen; everything after it is a value
}

// NewLexer returns a Lexer over args. The first element is taken to be the
// program name and skipped.
func NewLexer(args []string) *Lexer {
	if len(args) > 0 {
		args = args[1:]
	}
	return &Lexer{args: args}
}

// Next returns the next classified token, or a TokenEnd token once the input
// is exhausted. Calling Next after the end keeps returning TokenEnd.
func (l *Lexer) Next() Token {
	for l.pos < len(l.args) {
		arg := l.args[l.pos]
		l.pos++

		if l.terminated {
			return Token{Kind: TokenValue, Raw: arg}
		}
		if arg == "--" {
			l.terminated = true
			continue
		}
		return classify(arg)
	}
	return Token{Kind: TokenEnd}
}

// Value returns the next element unclassified, for a flag that takes a value.
// It reports false when the input is exhausted.
func (l *Lexer) Value() (string, bool) {
	if l.pos >= len(l.args) {
		return "", false
	}
	arg := l.args[l.pos]
	l.pos++
	return arg, true
}

// Remaining returns the number of elements not yet consumed.
func (l *Lexer) Remaining() int {
	return len(l.args) - l.pos
}

// classify performs the purely lexical split of a single element.
func classify(arg string) Token {
	if name, ok := strings.CutPrefix(arg, "--"); ok && name != "" {
		return Token{Kind: TokenLong, Long: name, Raw: arg}
	}
	if rest, ok := strings.CutPrefix(arg, "-"); ok && utf8.RuneCountInString(rest) == 1 {
		r, _ := utf8.DecodeRuneInString(rest)
		if r != '-' && r != utf8.RuneError {
			return Token{Kind: TokenShort, Short: r, Raw: arg}
		}
	}
	return Token{Kind: TokenValue, Raw: arg}
}

// Tokens returns the classification of args as a sequence, ending before
// TokenEnd. Elements following a value-kind flag are classified like any
// other, since the sequence has no schema. Each iteration starts over.
func Tokens(args []string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		l := NewLexer(args)
		for {
			tok := l.Next()
			if tok.Kind == TokenEnd || !yield(tok) {
				return
			}
		}
	}
}
