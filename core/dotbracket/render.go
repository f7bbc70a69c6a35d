// core/dotbracket/render.go
package dotbracket

import (
	"bytes"
	"fmt"

	"rnamotif-core/pairing"
)

// Render encodes a table back into dot-bracket form. Pairs are taken in
// ascending left-index order and each is assigned the lowest bracket
// class whose previously assigned pairs it does not cross, so pairs
// within one class always nest. Parse(seq, Render(t)) reproduces t; the
// literal string depends on this class assignment.
func Render(t pairing.Table) (string, error) {
	if err := pairing.Check(t); err != nil {
		return "", err
	}
	out := bytes.Repeat([]byte{Unpaired}, t.Len())
	assigned := make([][]pairing.Pair, Layers())

	for _, p := range t.Pairs() {
		k := -1
		for c := range assigned {
			if !crossesAny(p, assigned[c]) {
				k = c
				break
			}
		}
		if k < 0 {
			return "", fmt.Errorf("dotbracket: render: pair {%d,%d} needs more than %d bracket classes", p.I, p.J, Layers())
		}
		assigned[k] = append(assigned[k], p)
		out[p.I-1] = openers[k]
		out[p.J-1] = closers[k]
	}
	return string(out), nil
}

// crosses reports whether two pairs overlap without nesting.
func crosses(a, b pairing.Pair) bool {
	if b.I < a.I {
		a, b = b, a
	}
	return a.I < b.I && b.I < a.J && a.J < b.J
}

func crossesAny(p pairing.Pair, set []pairing.Pair) bool {
	for _, q := range set {
		if crosses(p, q) {
			return true
		}
	}
	return false
}
