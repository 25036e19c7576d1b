// Package geometry provides the Euclidean helpers shared by the merger
// and the cross-graph matcher.
//
// What:
//
//   - PairwiseDistances fills a |A|×|B| gonum mat.Dense with the Euclidean
//     distance between every node of two coordinate sets.
//   - SelfDistances is the symmetric |A|×|A| special case (zero diagonal).
//   - PolygonPerimeter sums consecutive-vertex distances over a closed
//     ordered ring, wrap-around included.
//
// Complexity:
//
//   - PairwiseDistances: O(|A|×|B|) time and memory.
//   - PolygonPerimeter:  O(V) time, O(1) memory.
//
// Errors:
//
//   - skeleton.ErrCoordLength: y/x slices of differing lengths.
package geometry
