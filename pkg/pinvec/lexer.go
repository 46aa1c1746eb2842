package pinvec

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// VectorLexer defines the lexical structure of pin-vector files: a
// line-oriented stimulus format with # comments and case-insensitive
// keywords.
var VectorLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Comments - shell style (# to end of line)
	{Name: "Comment", Pattern: `#[^\n]*`},

	// Whitespace
	{Name: "Whitespace", Pattern: `[\s\t\n\r]+`},

	// Bank setup
	{Name: "KwPort", Pattern: `(?i)\bPORT\b`},
	{Name: "KwPins", Pattern: `(?i)\bPINS\b`},
	{Name: "KwReset", Pattern: `(?i)\bRESET\b`},

	// Register access
	{Name: "KwWrite", Pattern: `(?i)\bWRITE\b`},
	{Name: "KwRead", Pattern: `(?i)\bREAD\b`},

	// External signal interface
	{Name: "KwDrive", Pattern: `(?i)\bDRIVE\b`},
	{Name: "KwRelease", Pattern: `(?i)\bRELEASE\b`},

	// Assertions
	{Name: "KwExpect", Pattern: `(?i)\bEXPECT\b`},
	{Name: "KwOutput", Pattern: `(?i)\bOUTPUT\b`},

	// Levels
	{Name: "KwHigh", Pattern: `(?i)\bHIGH\b`},
	{Name: "KwLow", Pattern: `(?i)\bLOW\b`},

	// Literals
	{Name: "Hex", Pattern: `0[xX][0-9A-Fa-f]+`},
	{Name: "Integer", Pattern: `[0-9]+`},

	// Identifiers (register names, port letters; must come after keywords)
	{Name: "Ident", Pattern: `[a-zA-Z][a-zA-Z0-9_]*`},
})
