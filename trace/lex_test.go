package trace

import (
	"strings"
	"testing"
)

func TestTokenize(t *testing.T) {
	src := "def f():\n    return 1\n"
	lines, err := Tokenize("sample.py", src)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("len(lines) = %d, want 2", len(lines))
	}

	// Concatenating every token must reproduce the source exactly.
	var b strings.Builder
	for _, line := range lines {
		for _, tok := range line {
			b.WriteString(tok.Text)
		}
	}
	if b.String() != src {
		t.Errorf("tokens reassemble to %q, want %q", b.String(), src)
	}

	// Each line keeps its newline inside the last token.
	for i, line := range lines {
		last := line[len(line)-1]
		if !strings.HasSuffix(last.Text, "\n") {
			t.Errorf("line %d does not end with newline: %q", i, last.Text)
		}
	}
}

func TestTokenize_UnknownFileType(t *testing.T) {
	lines, err := Tokenize("notes.xyzzy", "plain text\nsecond line\n")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if len(lines) != 2 {
		t.Errorf("len(lines) = %d, want 2", len(lines))
	}
}
