// core/pairing/validate.go
package pairing

import "fmt"

// Violation tags the invariant a StructureError reports.
type Violation string

const (
	EmptyTable        Violation = "empty-table"
	OutOfRangePartner Violation = "out-of-range-partner"
	SelfPair          Violation = "self-pair"
	DuplicatePartner  Violation = "duplicate-partner"
	AsymmetricPair    Violation = "asymmetric-pair"
)

// StructureError reports the first invariant violation found in a table,
// tagged with the offending 1-based position.
type StructureError struct {
	Kind  Violation
	Index int
}

func (e *StructureError) Error() string {
	if e.Kind == EmptyTable {
		return "pairing: empty table"
	}
	return fmt.Sprintf("pairing: %s at position %d", e.Kind, e.Index)
}

// Check verifies structural well-formedness: length >= 1, every partner
// in range or zero, no self-pairing, no position claimed as partner
// twice, and symmetry (partner(partner(i)) == i). The first violation is
// returned as a *StructureError; a nil return means the table is valid
// and safe for motif scanning.
func Check(t Table) error {
	n := t.Len()
	if n == 0 {
		return &StructureError{Kind: EmptyTable}
	}
	claimed := make([]int, n+1)
	for i := 1; i <= n; i++ {
		j := t.Partner(i)
		if j == 0 {
			continue
		}
		if j < 1 || j > n {
			return &StructureError{Kind: OutOfRangePartner, Index: i}
		}
		if j == i {
			return &StructureError{Kind: SelfPair, Index: i}
		}
		if claimed[j] != 0 {
			return &StructureError{Kind: DuplicatePartner, Index: i}
		}
		claimed[j] = i
		if t.Partner(j) != i {
			return &StructureError{Kind: AsymmetricPair, Index: i}
		}
	}
	return nil
}
