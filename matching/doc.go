// Package matching pairs the nodes of two simplified graphs one-to-one,
// e.g. to align the skeletons extracted from two images of the same eye.
//
// What:
//
//   - MatchNodes converts pairwise Euclidean distances between the two
//     node sets into similarity weights (reciprocal distance,
//     epsilon-stabilized) and hands them to an assignment solver that
//     maximizes the total matched weight. Every node also carries a
//     "leave me unmatched" option worth half the reciprocal of
//     MaxDistance, so two nodes farther apart than MaxDistance are
//     better left unmatched than paired.
//   - AssignmentSolver is the injection point for the optimization
//     oracle: weight matrix in, pairing out. HungarianSolver is the
//     default exact solver (augmented square matrix, O(n³) potentials).
//
// Why:
//
//   - The engine itself has no opinion on how the optimum is found; an
//     approximate or external solver can replace HungarianSolver without
//     touching the matching logic.
//
// Complexity:
//
//   - MatchNodes with HungarianSolver: O((|A|+|B|)³) time,
//     O((|A|+|B|)²) memory.
//
// Errors:
//
//   - skeleton.ErrCoordLength: malformed coordinate inputs.
//   - ErrBadWeights: a solver input whose vector lengths do not match the
//     weight matrix.
package matching
