//go:build go1.18
// +build go1.18

package calc_test

import (
	"testing"

	"github.com/zephyrtronium/calc"
)

func FuzzEval(f *testing.F) {
	f.Add("2 + 3 * (4 - 1)")
	f.Add("-2.5 + 3*(4-1)")
	f.Add("1/0")
	f.Add("7/-2*+.5")
	f.Fuzz(func(t *testing.T, s string) {
		r, err := calc.Eval(s)
		if err != nil {
			return
		}
		if k := r.Kind(); k != calc.KindInt && k != calc.KindFloat {
			t.Errorf("%q evaluated to unnormalized %v %v", s, k, r)
		}
		q, err := calc.Eval("(" + s + ")")
		if err != nil {
			t.Fatalf("(%s) failed where %s succeeded: %v", s, s, err)
		}
		if q.Cmp(r) != 0 {
			t.Errorf("(%s) = %v but %s = %v", s, q, s, r)
		}
	})
}
