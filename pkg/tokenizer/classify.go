package tokenizer

import (
	"fmt"
	"unicode"
)

// Metacharacter vocabularies. Context selects which one applies: inside a
// custom class the structural characters are the class-syntax ones, outside
// they are the grouping/quantifier/alternation ones. '[' is the one character
// structural in both.
var (
	outsideClassMetaCharacters = map[rune]MetaCharacter{
		'[': MetaOpenBracket,
		'*': MetaStar,
		'?': MetaQuestion,
		'|': MetaPipe,
		'(': MetaOpenParen,
		')': MetaCloseParen,
	}

	insideClassMetaCharacters = map[rune]MetaCharacter{
		'[': MetaOpenBracket,
		']': MetaCloseBracket,
		'-': MetaDash,
		'^': MetaCaret,
		':': MetaColon,
	}
)

// classifySpecialEscape recognizes escapes naming a single control character.
// The letter b only means backspace inside a custom class; outside one it is
// the word-boundary anchor and must fall through to the anchor classifier.
func classifySpecialEscape(c rune, inCustomClass bool) (SpecialCharacterEscape, bool) {
	switch c {
	case 't':
		return EscapeTab, true
	case 'r':
		return EscapeCarriageReturn, true
	case 'f':
		return EscapeFormFeed, true
	case 'a':
		return EscapeBell, true
	case 'e':
		return EscapeEscape, true
	case 'n':
		return EscapeNewline, true
	case 'b':
		if inCustomClass {
			return EscapeBackspace, true
		}
	}
	return "", false
}

// classifyMetaCharacter recognizes structural characters against the
// vocabulary for the current context. A character that is only structural in
// the other context is a plain no-match here, never a different token; what
// to make of a misplaced one is the parser's call.
func classifyMetaCharacter(c rune, inCustomClass bool) (MetaCharacter, bool) {
	vocabulary := outsideClassMetaCharacters
	if inCustomClass {
		vocabulary = insideClassMetaCharacters
	}

	meta, ok := vocabulary[c]
	return meta, ok
}

// classifyAnchor recognizes zero-width position assertions. Anchors never
// occur inside a custom class.
func classifyAnchor(c rune, escaped, inCustomClass bool) (Anchor, bool) {
	if inCustomClass {
		return "", false
	}

	if !escaped {
		switch c {
		case '^':
			return AnchorLineStart, true
		case '$':
			return AnchorLineEnd, true
		}
		return "", false
	}

	switch c {
	case 'b':
		return AnchorWordBoundary, true
	case 'B':
		return AnchorNotWordBoundary, true
	case 'A':
		return AnchorStringStart, true
	case 'Z':
		return AnchorStringEndOrNewline, true
	case 'z':
		return AnchorStringEnd, true
	case 'G':
		return AnchorPreviousMatchEnd, true
	case 'K':
		return AnchorResetMatchStart, true
	case 'y':
		return AnchorTextSegmentBoundary, true
	case 'Y':
		return AnchorNotTextSegmentBoundary, true
	}
	return "", false
}

// classifyBuiltinClass recognizes shorthand character classes, returning the
// class, whether it is inverted, and whether anything matched at all.
//
// The uppercase inversions S, D, H, W and V re-dispatch on their lowercased
// letter and flip the inversion flag. The lowercase letters always classify
// in every context, so the recursion terminates in one step.
func classifyBuiltinClass(c rune, escaped, inCustomClass bool) (CharacterClass, bool, bool) {
	if !escaped {
		// Unescaped, only the dot is a class, and only outside a custom
		// class. Inside one it reads as a literal full stop.
		if c == '.' && !inCustomClass {
			return ClassAny, false, true
		}
		return "", false, false
	}

	switch c {
	case 's':
		return ClassWhitespace, false, true
	case 'd':
		return ClassDigit, false, true
	case 'h':
		return ClassHorizontalWhitespace, false, true
	case 'v':
		return ClassVerticalWhitespace, false, true
	case 'w':
		return ClassWord, false, true
	case 'S', 'D', 'H', 'W', 'V':
		class, inverted, ok := classifyBuiltinClass(unicode.ToLower(c), escaped, inCustomClass)
		if !ok {
			// Note: The lowercase partner of an inversion letter always
			// classifies, so reaching this means the tables above are broken.
			panic(fmt.Sprintf("No builtin class behind inversion escape %q", string(c)))
		}
		return class, !inverted, true
	}

	if !inCustomClass {
		switch c {
		case 'R':
			return ClassNewlineSequence, false, true
		case 'N':
			return ClassNewlineSequence, true, true
		case 'X':
			return ClassAnyGrapheme, false, true
		}
	}

	return "", false, false
}

// ClassifyTerminal classifies one lexical terminal of a regex pattern: the
// character c, whether the scanner reached it through a backslash escape,
// whether the scanner is currently inside a custom (bracketed) character
// class, and the active syntax options. It always returns exactly one token
// and never fails; anything unrecognized becomes a literal character token.
//
// The returned token has a zero span. The scanner owns positions and stamps
// the span afterwards.
//
// The caller must have consumed escaping backslashes itself: passing a
// backslash with escaped=false violates the scanning contract and panics.
func ClassifyTerminal(c rune, escaped, inCustomClass bool, syntax SyntaxOptions) *Token {
	if c == '\\' && !escaped {
		panic("Unescaped backslash passed to ClassifyTerminal: the scanner must consume it as an escape introducer")
	}

	text := string(c)
	if escaped {
		text = `\` + text
	}

	// The check order matters: several characters are claimed by more than
	// one classifier, and escape state plus class context decide which wins.
	if escaped {
		if escape, ok := classifySpecialEscape(c, inCustomClass); ok {
			return NewSpecialEscapeToken(text, escape, Span{})
		}
	} else {
		if syntax.Contains(IgnoreWhitespace) && c == ' ' {
			return NewTriviaToken(text, Span{})
		}
		if meta, ok := classifyMetaCharacter(c, inCustomClass); ok {
			return NewMetaToken(text, meta, Span{})
		}
	}

	if anchor, ok := classifyAnchor(c, escaped, inCustomClass); ok {
		return NewAnchorToken(text, anchor, Span{})
	}

	if class, inverted, ok := classifyBuiltinClass(c, escaped, inCustomClass); ok {
		return NewBuiltinClassToken(text, class, inverted, Span{})
	}

	return NewCharacterToken(text, string(c), escaped, Span{})
}
