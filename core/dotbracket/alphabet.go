// core/dotbracket/alphabet.go
package dotbracket

import "bytes"

// Unpaired marks an unpaired position.
const Unpaired = '.'

// Bracket classes in layer order. Class k opens with openers[k] and
// closes with closers[k]; each class matches through its own stack, so
// pairs from different classes may cross.
var (
	openers = []byte("([{<ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	closers = []byte(")]}>abcdefghijklmnopqrstuvwxyz")
)

// Layers returns the number of independent bracket classes.
func Layers() int { return len(openers) }

// openClass returns the class of an opening bracket, or -1.
func openClass(c byte) int { return bytes.IndexByte(openers, c) }

// closeClass returns the class of a closing bracket, or -1.
func closeClass(c byte) int { return bytes.IndexByte(closers, c) }
