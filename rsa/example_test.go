package rsa_test

import (
	"fmt"

	"github.com/katalvlaran/wdm/rsa"
)

// ExampleSession routes a request across a triangle and reserves spectrum
// along the cheapest path.
func ExampleSession() {
	s := rsa.NewSession()
	_ = s.AddEdge("A", "B", 1)
	_ = s.AddEdge("B", "C", 1)
	_ = s.AddEdge("A", "C", 5)

	route, _ := s.ComputePath("A", "C", rsa.UniformCost)
	fmt.Println(route.Path, route.Weight)

	a, _ := s.Allocate(route.Path, 4, 0, false)
	fmt.Println(a.Kind, a.Slots)

	n, level, _ := s.Occupancy("B", "C")
	fmt.Println(n, level)
	// Output:
	// [A B C] 2
	// contiguous [0 1 2 3]
	// 4 light
}
