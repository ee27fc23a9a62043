package navzone

// portalBetween returns the vertex ids shared by two adjacent triangles, in
// the order the owner's own winding visits them. A funnel smoother walks the
// result as the crossable edge from the owner into the neighbour. Fewer than
// two shared ids means the adjacency is degenerate and the portal is empty;
// coincident triangles yield all three ids.
//
// The two endpoints of a shared edge can sit at the ends of the owner's
// cyclic vertex sequence (last and first element), which breaks a plain
// in-order scan. A single left rotation makes them contiguous, and one
// rotation always suffices since a triangle has only three vertices. The
// rotation happens on a local copy; the arena's vertex order never changes,
// so repeated portal computations against different neighbours all see the
// polygon's original winding.
func portalBetween(owner, neighbor *polygon) []int {
	ov := owner.verts
	nv := neighbor.verts

	shared := 0
	for _, v := range ov {
		if containsVert(nv, v) {
			shared++
		}
	}
	if shared < 2 {
		return []int{}
	}

	if containsVert(nv, ov[0]) && containsVert(nv, ov[2]) {
		ov = rotateLeft(ov)
	}

	portal := make([]int, 0, shared)
	for _, v := range ov {
		if containsVert(nv, v) {
			portal = append(portal, v)
		}
	}
	return portal
}

func containsVert(verts [3]int, id int) bool {
	return verts[0] == id || verts[1] == id || verts[2] == id
}

func rotateLeft(v [3]int) [3]int {
	return [3]int{v[1], v[2], v[0]}
}
