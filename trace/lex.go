package trace

import (
	"fmt"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// Tokenize splits src into per-line token runs, using a lexer matched by
// filename. Unknown file types fall back to the plaintext lexer, so every
// source renders, just without highlighting.
func Tokenize(filename, src string) ([]Line, error) {
	lexer := lexers.Match(filename)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	it, err := lexer.Tokenise(nil, src)
	if err != nil {
		return nil, fmt.Errorf("trace: tokenize %s: %w", filename, err)
	}

	split := chroma.SplitTokensIntoLines(it.Tokens())
	lines := make([]Line, 0, len(split))
	for _, lineTokens := range split {
		line := make(Line, 0, len(lineTokens))
		for _, t := range lineTokens {
			line = append(line, Token{Type: t.Type, Text: t.Value})
		}
		lines = append(lines, line)
	}
	return lines, nil
}
