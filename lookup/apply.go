package lookup

// Apply returns a copy of array with every value pushed through the table.
// Identity tables pass values through unchanged; dense tables require every
// value to lie inside [0, domain) and return ErrOutOfRange otherwise;
// sparse tables substitute by value, leaving unmatched values untouched.
// Complexity: O(len(array)) for identity/dense, O(pairs×len(array)) for
// sparse.
func Apply(array []int, t Table) ([]int, error) {
	switch t.kind {
	case KindIdentity:
		out := make([]int, len(array))
		copy(out, array)
		return out, nil
	case KindDense:
		out := make([]int, len(array))
		for i, v := range array {
			if v < 0 || v >= len(t.dense) {
				return nil, ErrOutOfRange
			}
			out[i] = t.dense[v]
		}
		return out, nil
	case KindSparse:
		if len(t.search) != len(t.replace) {
			return nil, ErrBadTable
		}
		out := make([]int, len(array))
		copy(out, array)
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

// ApplyInPlace rewrites target through the table without reallocating.
// The whole array is validated before the first write, so a failing call
// leaves target untouched. After a successful call the previous contents
// of target are gone; callers must not rely on them.
func ApplyInPlace(target []int, t Table) error {
	switch t.kind {
	case KindIdentity:
		return nil
	case KindDense:
		for _, v := range target {
			if v < 0 || v >= len(t.dense) {
				return ErrOutOfRange
			}
		}
		for i, v := range target {
			target[i] = t.dense[v]
		}
		return nil
	case KindSparse:
		if len(t.search) != len(t.replace) {
			return ErrBadTable
		}
		for k := range t.search {
			for i, v := range target {
				if v == t.search[k] {
					target[i] = t.replace[k]
				}
			}
		}
		return nil
	default:
		return ErrBadTable
	}
}

// Compose builds the single dense table over the domain [0, n) equivalent
// to applying a first and then b. Applying the composed table to any array
// is interchangeable with the two-step application (tested as a property).
func Compose(a, b Table, n int) (Table, error) {
	ra, err := a.Resolve(n)
	if err != nil {
		return Table{}, err
	}
	out, err := Apply(ra, b)
	if err != nil {
		return Table{}, err
	}
	return Table{kind: KindDense, dense: out}, nil
}
