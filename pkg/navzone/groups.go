package navzone

// assignGroups partitions the arena into connected components. Polygons are
// visited in extraction order; every still-unassigned polygon seeds a new
// group and a breadth-first spread over the adjacency links. Each polygon is
// enqueued at most once, so the fill is linear in polygons plus edges.
// Returns the number of groups.
func assignGroups(polys []polygon) int {
	group := 0
	var queue []int
	for seed := range polys {
		if polys[seed].group >= 0 {
			continue
		}
		polys[seed].group = group
		queue = append(queue[:0], seed)
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, n := range polys[cur].neighbors {
				if polys[n].group < 0 {
					polys[n].group = group
					queue = append(queue, n)
				}
			}
		}
		group++
	}
	return group
}
