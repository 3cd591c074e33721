package analysis

import (
	"reflect"
	"testing"
)

func TestTokenizeSplitsOnNonAlphanumeric(t *testing.T) {
	got := Tokenize("The cat's sat-on 3 mats.")
	want := []string{"The", "cat", "s", "sat", "on", "3", "mats"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTokenizeEmpty(t *testing.T) {
	if got := Tokenize(""); len(got) != 0 {
		t.Errorf("expected no tokens, got %v", got)
	}
}
