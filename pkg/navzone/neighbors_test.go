package navzone

import "testing"

// resolveNeighbors runs extraction, indexing and neighbour discovery, the
// pipeline prefix shared by most topology tests.
func resolveNeighbors(t *testing.T, m *Mesh) []polygon {
	t.Helper()
	polys, err := extractPolygons(m)
	if err != nil {
		t.Fatalf("extractPolygons failed: %v", err)
	}
	index := buildVertexIndex(polys, len(m.Vertices))
	for i := range polys {
		polys[i].neighbors = sharedEdgeNeighbors(i, index, polys)
	}
	return polys
}

func TestBuildVertexIndex(t *testing.T) {
	m := testMesh(5, [3]int{0, 1, 2}, [3]int{1, 3, 2})
	polys, err := extractPolygons(m)
	if err != nil {
		t.Fatalf("extractPolygons failed: %v", err)
	}

	index := buildVertexIndex(polys, len(m.Vertices))

	if len(index) != 5 {
		t.Fatalf("expected one entry per vertex, got %d", len(index))
	}
	if len(index[1]) != 2 || !containsID(index[1], 0) || !containsID(index[1], 1) {
		t.Errorf("vertex 1 should index both polygons, got %v", index[1])
	}
	if len(index[0]) != 1 || index[0][0] != 0 {
		t.Errorf("vertex 0 should index polygon 0 only, got %v", index[0])
	}
	if len(index[4]) != 0 {
		t.Errorf("unreferenced vertex should have an empty list, got %v", index[4])
	}
}

func TestSharedEdgeNeighbors_Quad(t *testing.T) {
	m := testMesh(4, [3]int{0, 1, 2}, [3]int{1, 3, 2})
	polys := resolveNeighbors(t, m)

	if len(polys[0].neighbors) != 1 || polys[0].neighbors[0] != 1 {
		t.Errorf("polygon 0 neighbours = %v, want [1]", polys[0].neighbors)
	}
	if len(polys[1].neighbors) != 1 || polys[1].neighbors[0] != 0 {
		t.Errorf("polygon 1 neighbours = %v, want [0]", polys[1].neighbors)
	}
}

func TestSharedEdgeNeighbors_SingleVertexIsNotAdjacent(t *testing.T) {
	// Fan of 4 triangles around vertex 0, no pair sharing an edge.
	m := testMesh(9,
		[3]int{0, 1, 2},
		[3]int{0, 3, 4},
		[3]int{0, 5, 6},
		[3]int{0, 7, 8},
	)
	polys := resolveNeighbors(t, m)

	for i, p := range polys {
		if len(p.neighbors) != 0 {
			t.Errorf("polygon %d shares only vertex 0 with others, neighbours = %v", i, p.neighbors)
		}
	}
}

func TestSharedEdgeNeighbors_CoincidentTriangles(t *testing.T) {
	// Two triangles over the same three vertices count as mutual neighbours
	// and must not be reported twice despite sharing every vertex pair.
	m := testMesh(3, [3]int{0, 1, 2}, [3]int{0, 1, 2})
	polys := resolveNeighbors(t, m)

	if len(polys[0].neighbors) != 1 || polys[0].neighbors[0] != 1 {
		t.Errorf("polygon 0 neighbours = %v, want [1]", polys[0].neighbors)
	}
	if len(polys[1].neighbors) != 1 || polys[1].neighbors[0] != 0 {
		t.Errorf("polygon 1 neighbours = %v, want [0]", polys[1].neighbors)
	}
}

func TestSharedEdgeNeighbors_Symmetry(t *testing.T) {
	// Triangle strip plus an island.
	m := testMesh(8,
		[3]int{0, 1, 2},
		[3]int{1, 3, 2},
		[3]int{2, 3, 4},
		[3]int{5, 6, 7},
	)
	polys := resolveNeighbors(t, m)

	for i, p := range polys {
		for _, n := range p.neighbors {
			if n == i {
				t.Errorf("polygon %d lists itself as neighbour", i)
			}
			if !containsID(polys[n].neighbors, i) {
				t.Errorf("adjacency not symmetric: %d lists %d but not vice versa", i, n)
			}
		}
	}
}
