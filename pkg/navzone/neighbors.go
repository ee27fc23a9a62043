package navzone

// sharedEdgeNeighbors returns every polygon sharing at least two vertices
// with polys[id], without duplicates and without the polygon itself.
//
// A triangle has exactly three vertex pairs. Scanning the first vertex's
// candidates against the other two lists covers the pairs through vertex 0;
// scanning the second against the third covers the remaining pair. Coincident
// triangles sharing all three vertices are reported like any other neighbour.
func sharedEdgeNeighbors(id int, index [][]int, polys []polygon) []int {
	verts := polys[id].verts
	a := index[verts[0]]
	b := index[verts[1]]
	c := index[verts[2]]

	var out []int
	for _, cand := range a {
		if cand == id || containsID(out, cand) {
			continue
		}
		if containsID(b, cand) || containsID(c, cand) {
			out = append(out, cand)
		}
	}
	for _, cand := range b {
		if cand == id || containsID(out, cand) {
			continue
		}
		if containsID(c, cand) {
			out = append(out, cand)
		}
	}
	return out
}

func containsID(list []int, id int) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}
