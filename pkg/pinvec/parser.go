package pinvec

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/participle/v2"
)

// Parser parses pin-vector files.
type Parser struct {
	parser *participle.Parser[File]
}

// NewParser builds a pin-vector parser instance.
func NewParser() (*Parser, error) {
	parser, err := participle.Build[File](
		participle.Lexer(VectorLexer),
		participle.Elide("Comment", "Whitespace"),
		participle.UseLookahead(2),
	)
	if err != nil {
		return nil, fmt.Errorf("pinvec: failed to build parser: %w", err)
	}

	return &Parser{parser: parser}, nil
}

// Parse parses a vector file from a reader.
func (p *Parser) Parse(filename string, r io.Reader) (*File, error) {
	file, err := p.parser.Parse(filename, r)
	if err != nil {
		return nil, fmt.Errorf("pinvec: parse error: %w", err)
	}
	return file, nil
}

// ParseString parses a vector file from a string.
func (p *Parser) ParseString(input string) (*File, error) {
	file, err := p.parser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("pinvec: parse error: %w", err)
	}
	return file, nil
}

// ParseFile parses a vector file from a file path.
func (p *Parser) ParseFile(filename string) (*File, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("pinvec: failed to open file: %w", err)
	}
	defer f.Close()

	return p.Parse(filename, f)
}
