//go:build go1.18
// +build go1.18

package calc_test

import (
	"strings"
	"testing"
	"unicode"

	"github.com/zephyrtronium/calc"
)

func FuzzParse(f *testing.F) {
	f.Add("1+2")
	f.Add("(1.5)*-3")
	f.Add("2 ++ 3")
	f.Fuzz(func(t *testing.T, s string) {
		toks, err := calc.Tokenize(s)
		if err != nil {
			return
		}
		var b strings.Builder
		for _, tok := range toks {
			if tok.Text == "" {
				t.Fatalf("empty token scanning %q", s)
			}
			b.WriteString(tok.Text)
		}
		want := strings.Map(func(r rune) rune {
			if unicode.IsSpace(r) {
				return -1
			}
			return r
		}, s)
		if b.String() != want {
			t.Errorf("tokens of %q rebuild %q", s, b.String())
		}
		calc.ToPostfix(toks)
	})
}
