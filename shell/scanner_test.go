package shell

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var inputStrings = []string{
	"insert A 1 2 3",
	"erase set-b -5, 7",
	"dump A # show the table",
	"",
	"# only a comment",
	"new_set x1 11",
}

var tokenCounts = []int{5, 4, 2, 0, 0, 3}

func TestTokenize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chainset.shell")
	defer teardown()
	//
	sc, err := NewScanner()
	if err != nil {
		t.Fatal(err)
	}
	for i, input := range inputStrings {
		tokens, err := sc.Tokenize(input)
		if err != nil {
			t.Errorf("input #%d: %v", i, err)
			continue
		}
		for _, token := range tokens {
			t.Logf(" %4d | %10s | @%3d", token.Kind, token.Lexeme, token.Span.From())
		}
		if len(tokens) != tokenCounts[i] {
			t.Errorf("expected token count for #%d to be %d, is %d", i, tokenCounts[i], len(tokens))
		}
	}
}

func TestTokenKinds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chainset.shell")
	defer teardown()
	//
	sc, _ := NewScanner()
	tokens, err := sc.Tokenize("erase A -42")
	if err != nil {
		t.Fatal(err)
	}
	if tokens[0].Kind != Ident || tokens[1].Kind != Ident || tokens[2].Kind != Int {
		t.Errorf("unexpected token kinds: %v", tokens)
	}
	if tokens[2].Lexeme != "-42" {
		t.Errorf("expected negative number -42, have %q", tokens[2].Lexeme)
	}
}

func TestIllegalInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chainset.shell")
	defer teardown()
	//
	sc, _ := NewScanner()
	if _, err := sc.Tokenize("insert A $"); !errors.Is(err, ErrSyntax) {
		t.Errorf("expected syntax error for '$', have %v", err)
	}
}
