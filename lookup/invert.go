package lookup

// Invert returns, for each distinct output value of a many-to-one dense
// table, the first original index (by position) mapping to it. The result
// has length max(table)+1; output values never produced hold -1.
// Returns ErrOutOfRange on a negative entry.
// Complexity: O(N) time, O(max+1) memory.
func Invert(table []int) ([]int, error) {
	maxVal := -1
	for _, v := range table {
		if v < 0 {
			return nil, ErrOutOfRange
		}
		if v > maxVal {
			maxVal = v
		}
	}
	out := make([]int, maxVal+1)
	for i := range out {
		out[i] = -1
	}
	for i, v := range table {
		if out[v] == -1 {
			out[v] = i
		}
	}
	return out, nil
}

// WithDeletedSlot reserves slot 0 as the "deleted" sentinel: the result
// has length len(table)+1, position 0 maps to 0 and every valid output is
// shifted by +1. A consumer that deletes object i afterwards only has to
// redirect entry i+1 to 0 instead of leaving a stale index behind.
func WithDeletedSlot(table []int) []int {
	out := make([]int, len(table)+1)
	for i, v := range table {
		out[i+1] = v + 1
	}
	return out
}
