package navzone

// buildVertexIndex maps every vertex id to the polygons referencing it.
// Vertices no face touches get an empty list. Adjacency is only ever resolved
// through this index, which keeps neighbour discovery near-linear instead of
// an all-pairs scan over the arena.
func buildVertexIndex(polys []polygon, vertexCount int) [][]int {
	index := make([][]int, vertexCount)
	for i := range polys {
		for _, v := range polys[i].verts {
			index[v] = append(index[v], i)
		}
	}
	return index
}
