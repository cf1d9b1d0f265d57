package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spicery/regex-tokeniser/pkg/tokenizer"
	"gopkg.in/yaml.v3"
)

const (
	version = "0.1.0"
	usage   = `regex-tokenizer - A terminal tokenizer for regular expression patterns

Usage:
  regex-tokenizer [options]

Options:
  -h, --help            Show this help message
  -v, --version         Show version information
  --input <file>        Input file holding the pattern (defaults to stdin)
  --output <file>       Output file (defaults to stdout)
  --syntax <file>       YAML syntax profile with dialect options (optional)
  --make-syntax         Generate the default syntax profile YAML to stdout
  --exit0               Exit with code 0 even on tokenisation errors

Examples:
  regex-tokenizer                                  # Read from stdin, write to stdout
  regex-tokenizer --input pattern.txt              # Read from file, write to stdout
  regex-tokenizer --output tokens.json             # Read from stdin, write to file
  regex-tokenizer --syntax extended.yaml           # Tokenize with custom dialect options
  regex-tokenizer --make-syntax                    # Generate default syntax profile
  echo '(a|b)*' | regex-tokenizer                  # Read from stdin, write to stdout

The tokenizer outputs one JSON token object per line. One trailing newline in
the input is taken to be the shell's, not the pattern's, and is dropped.
`
)

func main() {
	var showHelp, showVersion, exit0, makeSyntax bool
	var inputFile, outputFile, syntaxFile string

	flag.BoolVar(&showHelp, "h", false, "Show help")
	flag.BoolVar(&showHelp, "help", false, "Show help")
	flag.BoolVar(&showVersion, "v", false, "Show version")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&exit0, "exit0", false, "Exit with code 0 even on errors")
	flag.BoolVar(&makeSyntax, "make-syntax", false, "Generate default syntax profile YAML")
	flag.StringVar(&inputFile, "input", "", "Input file (defaults to stdin)")
	flag.StringVar(&outputFile, "output", "", "Output file (defaults to stdout)")
	flag.StringVar(&syntaxFile, "syntax", "", "YAML syntax profile (optional)")

	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("regex-tokenizer version %s\n", version)
		os.Exit(0)
	}

	if makeSyntax {
		err := generateDefaultSyntax()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating default syntax profile: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	// Reject any positional arguments
	if len(flag.Args()) > 0 {
		fmt.Fprintf(os.Stderr, "Error: Unexpected positional arguments. Use --input and --output flags instead.\n\n")
		flag.Usage()
		os.Exit(1)
	}

	var input string
	var err error

	// Read input
	if inputFile == "" {
		// Read from stdin
		input, err = readFromStdin()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading from stdin: %v\n", err)
			os.Exit(1)
		}
	} else {
		// Read from file
		input, err = readFromFile(inputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading file '%s': %v\n", inputFile, err)
			os.Exit(1)
		}
	}

	// One trailing newline is the pipe's framing, not part of the pattern
	input = strings.TrimSuffix(input, "\n")
	input = strings.TrimSuffix(input, "\r")

	// Load the syntax profile if specified
	var t *tokenizer.Tokenizer
	if syntaxFile != "" {
		syntax, err := tokenizer.LoadSyntaxFile(syntaxFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading syntax file '%s': %v\n", syntaxFile, err)
			os.Exit(1)
		}
		t = tokenizer.NewTokenizerWithOptions(input, syntax.Options())
	} else {
		t = tokenizer.NewTokenizer(input)
	}

	// Process input
	tokens, tokenizeErr := t.Tokenize()

	// Prepare output destination
	var output io.Writer
	var outputCloser io.Closer

	if outputFile == "" {
		// Write to stdout
		output = os.Stdout
	} else {
		// Write to file
		file, err := os.Create(outputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file '%s': %v\n", outputFile, err)
			os.Exit(1)
		}
		output = file
		outputCloser = file
	}

	// Output tokens as JSON, one per line (even if there was an error)
	for _, token := range tokens {
		jsonBytes, err := json.Marshal(token)
		if err != nil {
			fmt.Fprintf(os.Stderr, "JSON encoding error: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintln(output, string(jsonBytes))
	}

	// Close output file if we opened one
	if outputCloser != nil {
		if err := outputCloser.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing output file '%s': %v\n", outputFile, err)
			os.Exit(1)
		}
	}

	// Handle tokenisation error after outputting tokens
	if tokenizeErr != nil {
		if exit0 {
			// With --exit0, exit normally despite error
			os.Exit(0)
		} else {
			// Without --exit0, print error to stderr and exit with error code
			fmt.Fprintf(os.Stderr, "Tokenization error: %v\n", tokenizeErr)
			os.Exit(1)
		}
	}
}

// readFromStdin reads all input from stdin.
func readFromStdin() (string, error) {
	bytes, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// readFromFile reads the contents of a file.
func readFromFile(filename string) (string, error) {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// generateDefaultSyntax outputs the default syntax profile in YAML format to stdout.
func generateDefaultSyntax() error {
	yamlBytes, err := yaml.Marshal(tokenizer.DefaultSyntaxFile())
	if err != nil {
		return fmt.Errorf("failed to marshal syntax profile to YAML: %w", err)
	}

	fmt.Print(string(yamlBytes))
	return nil
}
