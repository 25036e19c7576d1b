// File: cluster/example_test.go
package cluster_test

import (
	"fmt"

	"github.com/ClementPla/fundus-vessels-toolkit/cluster"
)

// ExampleSolve demonstrates transitive grouping: the pairs (0,1), (1,2)
// and (4,5) yield two clusters even though 0 and 2 never co-occur.
func ExampleSolve() {
	clusters, _ := cluster.Solve([][2]int{{0, 1}, {1, 2}, {4, 5}})
	for i, c := range clusters {
		fmt.Printf("cluster %d: %v\n", i, c)
	}

	// Output:
	// cluster 0: [0 1 2]
	// cluster 1: [4 5]
}
