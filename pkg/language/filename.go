package language

import (
	"path/filepath"

	"github.com/alecthomas/chroma/v2/lexers"
)

// lexerTags maps chroma lexer names onto classifier tags.
var lexerTags = map[string]string{
	"Python":     Python,
	"Python 2":   Python,
	"Rust":       Rust,
	"Go":         Go,
	"Java":       Java,
	"C#":         CSharp,
	"C++":        Cpp,
	"C":          Cpp,
	"HTML":       HTML,
	"SQL":        SQL,
	"MySQL":      SQL,
	"PL/pgSQL":   SQL,
	"JSON":       JSON,
	"TypeScript": TypeScript,
	"TSX":        TypeScript,
	"JavaScript": JavaScript,
	"react":      JavaScript,
	"CSS":        CSS,
}

// FromFilename returns the tag for a file name, matched by extension.
// ok is false when the name is unknown or maps outside the classifier's tags.
func FromFilename(name string) (tag string, ok bool) {
	if name == "" {
		return "", false
	}

	lexer := lexers.Match(filepath.Base(name))
	if lexer == nil {
		return "", false
	}

	tag, ok = lexerTags[lexer.Config().Name]
	return tag, ok
}

// Detect picks a tag for a snippet body, preferring the file name when it is
// recognized.
func Detect(filename, text string) string {
	if tag, ok := FromFilename(filename); ok {
		return tag
	}
	return Classify(text)
}
