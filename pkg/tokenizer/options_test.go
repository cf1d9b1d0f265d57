package tokenizer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSyntaxOptionsContains(t *testing.T) {
	var options SyntaxOptions
	require.False(t, options.Contains(IgnoreWhitespace))

	options = options.With(IgnoreWhitespace)
	require.True(t, options.Contains(IgnoreWhitespace))
	require.False(t, options.Contains(Multiline))

	options = options.With(Multiline | CaseInsensitive)
	require.True(t, options.Contains(IgnoreWhitespace|Multiline))
	require.False(t, options.Contains(DotMatchesNewline))
}

func TestLoadSyntaxFile(t *testing.T) {
	content := `ignore_whitespace: true
multiline: true`

	path := filepath.Join(t.TempDir(), "syntax.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	syntax, err := LoadSyntaxFile(path)
	require.NoError(t, err)

	require.True(t, syntax.IgnoreWhitespace)
	require.True(t, syntax.Multiline)
	require.False(t, syntax.CaseInsensitive)
	require.False(t, syntax.DotMatchesNewline)

	options := syntax.Options()
	require.True(t, options.Contains(IgnoreWhitespace))
	require.True(t, options.Contains(Multiline))
	require.False(t, options.Contains(CaseInsensitive))
}

func TestLoadSyntaxFileUnknownKeys(t *testing.T) {
	// Profiles written for newer tools may carry options this tokenizer does
	// not know about; they must still load cleanly.
	content := `ignore_whitespace: true
allow_duplicate_group_names: true
recursion_limit: 20`

	path := filepath.Join(t.TempDir(), "syntax.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	syntax, err := LoadSyntaxFile(path)
	require.NoError(t, err)
	require.True(t, syntax.IgnoreWhitespace)
	require.Equal(t, IgnoreWhitespace, syntax.Options())
}

func TestLoadSyntaxFileErrors(t *testing.T) {
	_, err := LoadSyntaxFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ignore_whitespace: [unclosed"), 0o644))

	_, err = LoadSyntaxFile(path)
	require.Error(t, err)
}

func TestDefaultSyntaxFileRoundTrip(t *testing.T) {
	data, err := yaml.Marshal(DefaultSyntaxFile())
	require.NoError(t, err)

	var loaded SyntaxFile
	require.NoError(t, yaml.Unmarshal(data, &loaded))
	require.Equal(t, SyntaxOptions(0), loaded.Options())
}
