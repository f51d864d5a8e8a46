package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/wdm/core"
	"github.com/katalvlaran/wdm/dijkstra"
)

// ExampleShortestPath demonstrates a route on a triangle where the direct
// edge is more expensive than the detour.
func ExampleShortestPath() {
	g := core.NewGraph()
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 1)
	g.AddEdge("A", "C", 5)

	res, err := dijkstra.ShortestPath(g, "A", "C")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Path, res.Weight)
	// Output: [A B C] 2
}
