package search

import (
	"reflect"
	"testing"
)

// TestNormalize verifies lowercasing, punctuation stripping, and whitespace
// collapsing.
func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello, World!", "hello world"},
		{"  Multi \t  Space  ", "multi space"},
		{"café-au-lait", "caf au lait"},
		{"UPPER123", "upper123"},
		{"!!!", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

// TestTokenize verifies stop word removal and that token order survives.
func TestTokenize(t *testing.T) {
	got := Tokenize("the Ocean and the Sea, with Waves")
	want := []string{"ocean", "sea", "waves"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}

// TestTokenizeAllStopWords verifies a query of only stop words yields nil.
func TestTokenizeAllStopWords(t *testing.T) {
	if got := Tokenize("the and of"); got != nil {
		t.Errorf("Tokenize = %v, want nil", got)
	}
	if got := Tokenize(""); got != nil {
		t.Errorf("Tokenize(\"\") = %v, want nil", got)
	}
}
