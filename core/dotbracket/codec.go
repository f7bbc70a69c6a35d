// core/dotbracket/codec.go
package dotbracket

import (
	"fmt"

	"rnamotif-core/pairing"
)

// LengthMismatchError means sequence and structure lengths disagree.
type LengthMismatchError struct {
	SeqLen, StructLen int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("dotbracket: sequence length %d != structure length %d", e.SeqLen, e.StructLen)
}

// UnknownSymbolError means the structure contains a character outside
// the recognized alphabet. Pos is 1-based.
type UnknownSymbolError struct {
	Pos    int
	Symbol byte
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("dotbracket: unknown symbol %q at position %d", e.Symbol, e.Pos)
}

// UnbalancedBracketError means a closing bracket had no opener, or an
// opener was never closed. Pos points at the offending bracket.
type UnbalancedBracketError struct {
	Pos    int
	Symbol byte
}

func (e *UnbalancedBracketError) Error() string {
	return fmt.Sprintf("dotbracket: unbalanced bracket %q at position %d", e.Symbol, e.Pos)
}

// Parse decodes an extended dot-bracket string against its sequence into
// a pairing table. One stack per bracket class: an opener pushes its
// position, a closer pops its class's stack and records the pair.
func Parse(sequence, structure string) (pairing.Table, error) {
	if len(sequence) != len(structure) {
		return pairing.Table{}, &LengthMismatchError{SeqLen: len(sequence), StructLen: len(structure)}
	}
	n := len(structure)
	partners := make([]int, n)
	stacks := make([][]int, Layers())

	for i := 0; i < n; i++ {
		c := structure[i]
		if c == Unpaired {
			continue
		}
		if k := openClass(c); k >= 0 {
			stacks[k] = append(stacks[k], i+1)
			continue
		}
		k := closeClass(c)
		if k < 0 {
			return pairing.Table{}, &UnknownSymbolError{Pos: i + 1, Symbol: c}
		}
		st := stacks[k]
		if len(st) == 0 {
			return pairing.Table{}, &UnbalancedBracketError{Pos: i + 1, Symbol: c}
		}
		j := st[len(st)-1]
		stacks[k] = st[:len(st)-1]
		partners[j-1] = i + 1
		partners[i] = j
	}

	for k, st := range stacks {
		if len(st) > 0 {
			return pairing.Table{}, &UnbalancedBracketError{Pos: st[len(st)-1], Symbol: openers[k]}
		}
	}
	return pairing.New([]byte(sequence), partners), nil
}
