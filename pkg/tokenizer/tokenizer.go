package tokenizer

import (
	"fmt"
	"unicode/utf8"
)

// Tokenizer scans a regex pattern and classifies one terminal at a time.
// It owns the bookkeeping the classifier does not: byte position, line and
// column, escape detection, and whether the scan is currently inside a
// custom (bracketed) character class.
type Tokenizer struct {
	input         string
	position      int
	line          int
	column        int
	syntax        SyntaxOptions
	inCustomClass bool
	tokens        []*Token
}

// NewTokenizer creates a new tokenizer instance for the default dialect.
func NewTokenizer(input string) *Tokenizer {
	return NewTokenizerWithOptions(input, 0)
}

// NewTokenizerWithOptions creates a new tokenizer instance with the given
// syntax options.
func NewTokenizerWithOptions(input string, syntax SyntaxOptions) *Tokenizer {
	return &Tokenizer{
		input:  input,
		line:   1,
		column: 1,
		syntax: syntax,
		tokens: make([]*Token, 0),
	}
}

// Tokenize processes the pattern and returns a slice of tokens, one per
// terminal. Tokenization only fails on a dangling escape (a backslash with
// nothing after it); the tokens scanned up to that point are still returned
// alongside the error.
func (t *Tokenizer) Tokenize() ([]*Token, error) {
	for t.position < len(t.input) {
		if err := t.nextToken(); err != nil {
			return t.tokens, err
		}
	}
	return t.tokens, nil
}

// nextToken consumes one terminal, classifies it and stamps its span.
// A span's end is the scanner position just after the terminal.
func (t *Tokenizer) nextToken() error {
	start := Position{Line: t.line, Col: t.column}

	c, size := utf8.DecodeRuneInString(t.input[t.position:])
	escaped := false

	if c == '\\' {
		t.advance(size)
		if t.position >= len(t.input) {
			return fmt.Errorf("dangling escape at line %d, column %d", start.Line, start.Col)
		}
		c, size = utf8.DecodeRuneInString(t.input[t.position:])
		escaped = true
	}
	t.advance(size)

	token := ClassifyTerminal(c, escaped, t.inCustomClass, t.syntax)
	token.Span = Span{Start: start, End: Position{Line: t.line, Col: t.column}}

	t.trackCustomClass(token)
	t.tokens = append(t.tokens, token)
	return nil
}

// trackCustomClass updates the bracket-class state from a freshly classified
// token. Only unescaped structural brackets move the state, and the
// classifier already guarantees escaped brackets come back as literals.
// Classes do not nest: an inner '[' is still a metacharacter but opens
// nothing, and the first unescaped ']' closes the class.
func (t *Tokenizer) trackCustomClass(token *Token) {
	if token.Type != MetaCharacterToken || token.Meta == nil {
		return
	}

	switch *token.Meta {
	case MetaOpenBracket:
		t.inCustomClass = true
	case MetaCloseBracket:
		t.inCustomClass = false
	}
}

// advance moves the scanner forward n bytes, maintaining line and column.
func (t *Tokenizer) advance(n int) {
	for i := 0; i < n && t.position < len(t.input); i++ {
		if t.input[t.position] == '\n' {
			t.line++
			t.column = 1
		} else {
			t.column++
		}
		t.position++
	}
}
