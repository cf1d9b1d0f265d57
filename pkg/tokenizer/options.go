package tokenizer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SyntaxOptions is a bitmask of regex dialect options. The zero value is the
// default dialect. Only IgnoreWhitespace changes how terminals classify; the
// remaining flags ride along for downstream pipeline stages. Unrecognized
// bits are inert, never an error, so profiles from newer tools keep working.
type SyntaxOptions uint16

const (
	IgnoreWhitespace SyntaxOptions = 1 << iota // Unescaped plain spaces become trivia
	CaseInsensitive
	Multiline
	DotMatchesNewline
)

// Contains reports whether all of the given flags are set.
func (s SyntaxOptions) Contains(flags SyntaxOptions) bool {
	return s&flags == flags
}

// With returns a copy of the options with the given flags set.
func (s SyntaxOptions) With(flags SyntaxOptions) SyntaxOptions {
	return s | flags
}

// SyntaxFile represents the structure of a YAML syntax profile
type SyntaxFile struct {
	IgnoreWhitespace  bool `yaml:"ignore_whitespace"`
	CaseInsensitive   bool `yaml:"case_insensitive"`
	Multiline         bool `yaml:"multiline"`
	DotMatchesNewline bool `yaml:"dot_matches_newline"`
}

// DefaultSyntaxFile returns the profile for the default dialect, with every
// option off.
func DefaultSyntaxFile() *SyntaxFile {
	return &SyntaxFile{}
}

// LoadSyntaxFile loads and parses a YAML syntax profile
func LoadSyntaxFile(filename string) (*SyntaxFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read syntax file '%s': %w", filename, err)
	}

	var syntax SyntaxFile
	if err := yaml.Unmarshal(data, &syntax); err != nil {
		return nil, fmt.Errorf("failed to parse YAML in syntax file '%s': %w", filename, err)
	}

	return &syntax, nil
}

// Options folds the profile's flags into a SyntaxOptions bitmask.
func (f *SyntaxFile) Options() SyntaxOptions {
	var options SyntaxOptions

	if f.IgnoreWhitespace {
		options = options.With(IgnoreWhitespace)
	}
	if f.CaseInsensitive {
		options = options.With(CaseInsensitive)
	}
	if f.Multiline {
		options = options.With(Multiline)
	}
	if f.DotMatchesNewline {
		options = options.With(DotMatchesNewline)
	}

	return options
}
