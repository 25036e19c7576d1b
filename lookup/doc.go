// Package lookup implements the index-renumbering algebra that keeps every
// external branch/node reference consistent while the incidence matrix is
// edited.
//
// What:
//
//   - Table is a tagged renumbering map with three representations:
//     Dense (old index → new index array), Sparse (search/replace value
//     pairs applied over an identity base) and Identity.
//   - Apply rewrites the values of an index array through a Table;
//     ApplyInPlace does the same into a caller-supplied array.
//   - Compose collapses two consecutive renumberings into one, so chains
//     of edits never materialize intermediate full-size arrays.
//   - Invert picks, for each output index of a many-to-one map, the first
//     original index mapping to it.
//   - WithDeletedSlot reserves slot 0 as a "deleted" sentinel by shifting
//     every valid output by +1, letting a single integer array express
//     both renumbering and removal.
//   - MergeCoordinates collapses node coordinates through a many-to-one
//     table as weighted barycenters.
//
// Why:
//
//   - Every edit of the incidence matrix shrinks an index space; callers
//     hold label maps, masks and coordinates indexed in the old space and
//     must re-project them losslessly.
//
// Complexity:
//
//   - Apply / ApplyInPlace / Compose: O(N) time and memory.
//   - Invert: O(N) time, O(max+1) memory.
//   - MergeCoordinates: O(N) time, O(max+1) memory.
//
// Errors:
//
//   - ErrBadTable: a sparse table with search/replace of differing lengths.
//   - ErrOutOfRange: a value outside the domain of the table it is pushed
//     through.
//   - ErrLengthMismatch: coordinates, weights and table of differing lengths.
package lookup
