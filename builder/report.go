package builder

import "fmt"

// Report summarises one Build run.
type Report struct {
	// Islands holds island sizes in discovery order.
	Islands []int
	// Mainland indexes Islands; -1 when the grid had no playable cell.
	Mainland int

	TreeEdges   int
	StitchEdges int
	RelaxEdges  int

	HopBound int
	Vertices int
	Edges    int
}

// String renders a one-line summary, e.g.
// "vertices=20 edges=27 islands=[17 3] mainland=0 tree=18 stitch=3 relax=6 bound=3".
func (r *Report) String() string {
	return fmt.Sprintf("vertices=%d edges=%d islands=%v mainland=%d tree=%d stitch=%d relax=%d bound=%d",
		r.Vertices, r.Edges, r.Islands, r.Mainland, r.TreeEdges, r.StitchEdges, r.RelaxEdges, r.HopBound)
}
