package commands

import "testing"

func TestCompressionRecipeOrderPreserved(t *testing.T) {
	chain, err := compressionRecipe([]string{"nonum", "casefold", "stopw30"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := chain.Recipe(), "nonum,casefold,stopw30"; got != want {
		t.Errorf("got recipe %q, want %q", got, want)
	}
}

func TestCompressionRecipeRejectsUnknownName(t *testing.T) {
	if _, err := compressionRecipe([]string{"bogus"}); err == nil {
		t.Fatal("expected an error for an unrecognized --compress-dict name")
	}
}

func TestCompressionRecipeEmpty(t *testing.T) {
	chain, err := compressionRecipe(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := chain.Recipe(); got != "" {
		t.Errorf("expected an empty recipe, got %q", got)
	}
}
