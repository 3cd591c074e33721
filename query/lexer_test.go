package query

import "testing"

func TestLexClassifiesKeywordsAndTerms(t *testing.T) {
	toks := Lex("cat AND (dog OR NOT fish)")
	wantTypes := []TokenType{TERM, AND, LPAREN, TERM, OR, NOT, TERM, RPAREN, EOF}
	if len(toks) != len(wantTypes) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(wantTypes), toks)
	}
	for i, want := range wantTypes {
		if toks[i].Type != want {
			t.Errorf("token %d: got type %v, want %v (text %q)", i, toks[i].Type, want, toks[i].Text)
		}
	}
}

func TestLexLowercaseKeywordsAreTerms(t *testing.T) {
	toks := Lex("cat and dog")
	if toks[1].Type != TERM || toks[1].Text != "and" {
		t.Errorf("lowercase \"and\" should lex as a TERM, got %+v", toks[1])
	}
}
