// Package lookup: table representations and sentinel errors.
package lookup

import "errors"

// Sentinel errors for lookup operations.
var (
	// ErrBadTable indicates a sparse table whose search and replace slices
	// differ in length.
	ErrBadTable = errors.New("lookup: search and replace must have the same length")
	// ErrOutOfRange indicates a value outside the domain of a dense table,
	// or a negative entry where indices are required.
	ErrOutOfRange = errors.New("lookup: value out of table range")
	// ErrLengthMismatch indicates arrays that must be index-aligned but
	// differ in length.
	ErrLengthMismatch = errors.New("lookup: length mismatch")
)

// Kind tags the representation of a Table.
type Kind uint8

const (
	// KindIdentity maps every index to itself.
	KindIdentity Kind = iota
	// KindDense maps index i to a stored value at position i.
	KindDense
	// KindSparse rewrites values through ordered search→replace pairs
	// applied over an identity base.
	KindSparse
)

// Table is an index-renumbering map in one of three representations.
// The zero value is the identity table. Tables are immutable once built.
type Table struct {
	kind            Kind
	dense           []int
	search, replace []int
}

// Identity returns the table mapping every index to itself.
func Identity() Table { return Table{kind: KindIdentity} }

// Dense builds a table mapping index i to values[i]. The input is copied.
func Dense(values []int) Table {
	d := make([]int, len(values))
	copy(d, values)
	return Table{kind: KindDense, dense: d}
}

// Sparse builds a table rewriting each occurrence of search[k] into
// replace[k], pairs applied in order over an identity base. Both inputs
// are copied; the length mismatch is reported by the consuming operation
// (ErrBadTable), keeping construction infallible.
func Sparse(search, replace []int) Table {
	s := make([]int, len(search))
	r := make([]int, len(replace))
	copy(s, search)
	copy(r, replace)
	return Table{kind: KindSparse, search: s, replace: r}
}

// Kind returns the representation tag of the table.
func (t Table) Kind() Kind { return t.kind }

// Resolve flattens the table to its dense form over the domain [0, n):
// position i holds the image of index i. Sparse pairs are applied
// sequentially, so a pair may rewrite the output of an earlier pair.
// Returns ErrBadTable on malformed sparse tables and ErrLengthMismatch
// when a dense table does not cover exactly n indices.
func (t Table) Resolve(n int) ([]int, error) {
	switch t.kind {
	case KindIdentity:
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out, nil
	case KindDense:
		if len(t.dense) != n {
			return nil, ErrLengthMismatch
		}
		out := make([]int, n)
		copy(out, t.dense)
		return out, nil
	case KindSparse:
		if len(t.search) != len(t.replace) {
			return nil, ErrBadTable
		}
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		for k := range t.search {
			for i, v := range out {
				if v == t.search[k] {
					out[i] = t.replace[k]
				}
			}
		}
		return out, nil
	default:
		return nil, ErrBadTable
	}
}
