package tokenizer

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func FuzzClassifyTerminal(f *testing.F) {
	// Seed one representative per token type plus context-sensitive letters
	f.Add('a', true, false, uint16(0))
	f.Add('.', false, false, uint16(0))
	f.Add(' ', false, true, uint16(1))
	f.Add('[', false, true, uint16(0))
	f.Add('D', true, true, uint16(0))
	f.Add('^', false, false, uint16(0))
	f.Add('b', true, true, uint16(0))

	f.Fuzz(func(t *testing.T, c rune, escaped, inCustomClass bool, syntaxBits uint16) {
		if c == '\\' && !escaped {
			return // scanner contract: a bare backslash never reaches the classifier
		}

		syntax := SyntaxOptions(syntaxBits)
		token := ClassifyTerminal(c, escaped, inCustomClass, syntax)
		if token == nil {
			t.Fatalf("Expected a token for %q, got nil", string(c))
		}

		switch token.Type {
		case TriviaToken:
			if escaped || c != ' ' || !syntax.Contains(IgnoreWhitespace) {
				t.Errorf("Unexpected trivia for %q (escaped=%v)", string(c), escaped)
			}
		case MetaCharacterToken:
			if token.Meta == nil {
				t.Errorf("Metacharacter token without payload for %q", string(c))
			}
			if escaped {
				t.Errorf("Escaped %q must not classify as a metacharacter", string(c))
			}
		case AnchorToken:
			if token.Anchor == nil {
				t.Errorf("Anchor token without payload for %q", string(c))
			}
			if inCustomClass {
				t.Errorf("Anchor for %q inside a custom class", string(c))
			}
		case SpecialEscapeToken:
			if token.Escape == nil {
				t.Errorf("Special escape token without payload for %q", string(c))
			}
			if !escaped {
				t.Errorf("Unescaped %q must not classify as a special escape", string(c))
			}
		case BuiltinClassToken:
			if token.Class == nil {
				t.Errorf("Builtin class token without payload for %q", string(c))
			}
		case CharacterToken:
			if token.Value == nil || *token.Value != string(c) {
				t.Errorf("Expected fallback value %q, got %v", string(c), token.Value)
			}
			gotEscaped := token.Escaped != nil && *token.Escaped
			if gotEscaped != escaped {
				t.Errorf("Expected escaped=%v on the fallback for %q", escaped, string(c))
			}
		default:
			t.Errorf("Unknown token type %s for %q", token.Type, string(c))
		}
	})
}

func FuzzTokenize(f *testing.F) {
	f.Add("(a|b)*")
	f.Add("[a-z]+")
	f.Add(`\d\w`)
	f.Add("^x$")
	f.Add(`[^\]]`)
	f.Add("a\nb")
	f.Add(`\`)

	f.Fuzz(func(t *testing.T, pattern string) {
		tokens, err := NewTokenizer(pattern).Tokenize()

		if err != nil {
			// The only scan failure is a dangling escape
			if !strings.HasPrefix(err.Error(), "dangling escape at ") {
				t.Errorf("Unexpected error: %v", err)
			}
			return
		}

		// A clean scan of valid UTF-8 reassembles the input from token texts
		if utf8.ValidString(pattern) {
			var rebuilt strings.Builder
			for _, token := range tokens {
				rebuilt.WriteString(token.Text)
			}
			if rebuilt.String() != pattern {
				t.Errorf("Token texts rebuild %q, want %q", rebuilt.String(), pattern)
			}
		}
	})
}
