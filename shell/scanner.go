package shell

import (
	"errors"
	"fmt"
	"text/scanner"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token types are replicated from text/scanner for practical reasons.
const (
	EOF   = scanner.EOF
	Ident = scanner.Ident
	Int   = scanner.Int
)

// ErrSyntax is wrapped by errors for input the scanner does not accept.
var ErrSyntax = errors.New("syntax error")

// Token is a command line token.
type Token struct {
	Kind   int    // Ident or Int
	Lexeme string // token text
	Span   Span   // columns covered by the token
}

func (t Token) String() string {
	return fmt.Sprintf("%s%s", t.Lexeme, t.Span)
}

// Span captures the columns of a token: the start position and the position
// just behind the end.
type Span [2]int

// From returns the start value of a span.
func (s Span) From() int {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() int {
	return s[1]
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}

// Scanner splits command lines into tokens. Create one with NewScanner; a
// scanner may be re-used for any number of lines.
type Scanner struct {
	lexer *lexmachine.Lexer
}

// NewScanner creates a scanner. It will return an error if compiling the DFA
// failed.
func NewScanner() (*Scanner, error) {
	lexer := lexmachine.NewLexer()
	lexer.Add([]byte(`#[^\n]*`), skip)
	lexer.Add([]byte(`([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_|-)*`), makeToken(Ident))
	lexer.Add([]byte(`\-?[0-9]+`), makeToken(Int))
	lexer.Add([]byte(`( |\,|\t|\n|\r)+`), skip)
	if err := lexer.Compile(); err != nil {
		tracer().Errorf("error compiling DFA: %v", err)
		return nil, err
	}
	return &Scanner{lexer: lexer}, nil
}

// Tokenize splits a line into tokens.
func (sc *Scanner) Tokenize(line string) ([]Token, error) {
	s, err := sc.lexer.Scanner([]byte(line))
	if err != nil {
		return nil, err
	}
	var tokens []Token
	for tok, err, eof := s.Next(); !eof; tok, err, eof = s.Next() {
		if err != nil {
			if _, is := err.(*machines.UnconsumedInput); is {
				return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
			}
			return nil, err
		}
		token := tok.(*lexmachine.Token)
		tokens = append(tokens, Token{
			Kind:   token.Type,
			Lexeme: string(token.Lexeme),
			Span:   Span{token.StartColumn, token.EndColumn},
		})
	}
	tracer().Debugf("tokens = %v", tokens)
	return tokens, nil
}

// skip is an action which ignores the scanned match.
func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// makeToken is an action which wraps a scanned match into a token.
func makeToken(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}
