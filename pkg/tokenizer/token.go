package tokenizer

import "encoding/json"

// TokenType represents the different types of terminal tokens in a regex
// pattern. The one-character codes are what appears in the JSON output.
type TokenType string

const (
	// Structure tokens
	TriviaToken        TokenType = "t" // Ignorable whitespace under the whitespace-ignoring option
	MetaCharacterToken TokenType = "m" // Structural characters (quantifiers, alternation, grouping, class syntax)
	AnchorToken        TokenType = "a" // Zero-width position assertions

	// Escape tokens
	SpecialEscapeToken TokenType = "e" // Escapes naming a single control character
	BuiltinClassToken  TokenType = "b" // Escapes (and dot) naming a built-in character class

	// Fallback token
	CharacterToken TokenType = "c" // Literal characters, escaped or not
)

// MetaCharacter identifies which structural character a metacharacter token
// carries. The values are the characters themselves.
type MetaCharacter string

const (
	MetaOpenBracket  MetaCharacter = "["
	MetaCloseBracket MetaCharacter = "]"
	MetaStar         MetaCharacter = "*"
	MetaQuestion     MetaCharacter = "?"
	MetaPipe         MetaCharacter = "|"
	MetaOpenParen    MetaCharacter = "("
	MetaCloseParen   MetaCharacter = ")"
	MetaDash         MetaCharacter = "-"
	MetaCaret        MetaCharacter = "^"
	MetaColon        MetaCharacter = ":"
)

// Anchor identifies which position assertion an anchor token carries.
type Anchor string

const (
	AnchorLineStart              Anchor = "line-start"                // ^
	AnchorLineEnd                Anchor = "line-end"                  // $
	AnchorWordBoundary           Anchor = "word-boundary"             // \b
	AnchorNotWordBoundary        Anchor = "not-word-boundary"         // \B
	AnchorStringStart            Anchor = "string-start"              // \A
	AnchorStringEndOrNewline     Anchor = "string-end-or-newline"     // \Z
	AnchorStringEnd              Anchor = "string-end"                // \z
	AnchorPreviousMatchEnd       Anchor = "previous-match-end"        // \G
	AnchorResetMatchStart        Anchor = "reset-match-start"         // \K
	AnchorTextSegmentBoundary    Anchor = "text-segment-boundary"     // \y
	AnchorNotTextSegmentBoundary Anchor = "not-text-segment-boundary" // \Y
)

// SpecialCharacterEscape identifies which control character a special escape
// token names.
type SpecialCharacterEscape string

const (
	EscapeTab            SpecialCharacterEscape = "tab"             // \t
	EscapeCarriageReturn SpecialCharacterEscape = "carriage-return" // \r
	EscapeFormFeed       SpecialCharacterEscape = "form-feed"       // \f
	EscapeBell           SpecialCharacterEscape = "bell"            // \a
	EscapeEscape         SpecialCharacterEscape = "escape"          // \e
	EscapeNewline        SpecialCharacterEscape = "newline"         // \n
	EscapeBackspace      SpecialCharacterEscape = "backspace"       // \b, custom classes only
)

// CharacterClass identifies which built-in class a class token names.
// Inversion is carried on the token rather than in this enumeration, so \d
// and \D both map to ClassDigit.
type CharacterClass string

const (
	ClassDigit                CharacterClass = "digit"                 // \d
	ClassWhitespace           CharacterClass = "whitespace"            // \s
	ClassHorizontalWhitespace CharacterClass = "horizontal-whitespace" // \h
	ClassVerticalWhitespace   CharacterClass = "vertical-whitespace"   // \v
	ClassWord                 CharacterClass = "word"                  // \w
	ClassAny                  CharacterClass = "any"                   // .
	ClassNewlineSequence      CharacterClass = "newline-sequence"      // \R, inverted for \N
	ClassAnyGrapheme          CharacterClass = "any-grapheme"          // \X
)

// Position represents a line and column position in the pattern.
type Position struct {
	Line int `json:"line"`
	Col  int `json:"col"`
}

// Span represents the start and end positions of a token.
type Span struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// MarshalJSON implements custom JSON marshaling for Span.
func (s Span) MarshalJSON() ([]byte, error) {
	arr := [4]int{s.Start.Line, s.Start.Col, s.End.Line, s.End.Col}
	return json.Marshal(arr)
}

// UnmarshalJSON implements custom JSON unmarshaling for Span.
func (s *Span) UnmarshalJSON(data []byte) error {
	var arr [4]int
	if err := json.Unmarshal(data, &arr); err != nil {
		return err
	}
	s.Start = Position{Line: arr[0], Col: arr[1]}
	s.End = Position{Line: arr[2], Col: arr[3]}
	return nil
}

// Token represents a single classified terminal from a regex pattern.
// Exactly one of the payload field groups is populated, matching Type.
type Token struct {
	// Common fields for all tokens
	Text string    `json:"text"`
	Span Span      `json:"span"`
	Type TokenType `json:"type"`

	// Metacharacter token fields
	Meta *MetaCharacter `json:"meta,omitempty"`

	// Anchor token fields
	Anchor *Anchor `json:"anchor,omitempty"`

	// Special escape token fields
	Escape *SpecialCharacterEscape `json:"escape,omitempty"`

	// Builtin class token fields
	Class    *CharacterClass `json:"class,omitempty"`
	Inverted *bool           `json:"inverted,omitempty"` // Only present (true) for inverted classes

	// Character token fields
	Value   *string `json:"value,omitempty"`   // The character itself, without any escaping backslash
	Escaped *bool   `json:"escaped,omitempty"` // Only present (true) for escaped literals
}

// NewTriviaToken creates a new trivia token for ignorable whitespace.
func NewTriviaToken(text string, span Span) *Token {
	return &Token{
		Text: text,
		Type: TriviaToken,
		Span: span,
	}
}

// NewMetaToken creates a new metacharacter token.
func NewMetaToken(text string, meta MetaCharacter, span Span) *Token {
	return &Token{
		Text: text,
		Type: MetaCharacterToken,
		Span: span,
		Meta: &meta,
	}
}

// NewAnchorToken creates a new anchor token.
func NewAnchorToken(text string, anchor Anchor, span Span) *Token {
	return &Token{
		Text:   text,
		Type:   AnchorToken,
		Span:   span,
		Anchor: &anchor,
	}
}

// NewSpecialEscapeToken creates a new special character escape token.
func NewSpecialEscapeToken(text string, escape SpecialCharacterEscape, span Span) *Token {
	return &Token{
		Text:   text,
		Type:   SpecialEscapeToken,
		Span:   span,
		Escape: &escape,
	}
}

// NewBuiltinClassToken creates a new builtin character class token.
func NewBuiltinClassToken(text string, class CharacterClass, inverted bool, span Span) *Token {
	token := &Token{
		Text:  text,
		Type:  BuiltinClassToken,
		Span:  span,
		Class: &class,
	}

	// Only set the pointer when the class is actually inverted
	if inverted {
		token.Inverted = &inverted
	}

	return token
}

// NewCharacterToken creates a new literal character token.
func NewCharacterToken(text, value string, escaped bool, span Span) *Token {
	token := &Token{
		Text:  text,
		Type:  CharacterToken,
		Span:  span,
		Value: &value,
	}

	if escaped {
		token.Escaped = &escaped
	}

	return token
}
