package navzone

import (
	"errors"
	"reflect"
	"testing"
)

func TestBuildZone_SharedEdgeQuad(t *testing.T) {
	m := testMesh(4, [3]int{0, 1, 2}, [3]int{1, 3, 2})

	zone, err := BuildZone(m)
	if err != nil {
		t.Fatalf("BuildZone failed: %v", err)
	}

	if len(zone.Groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(zone.Groups))
	}
	group := zone.Groups[0]
	if len(group) != 2 {
		t.Fatalf("expected 2 polygons in group, got %d", len(group))
	}

	for i, rec := range group {
		if rec.ID != i {
			t.Errorf("local ids must be dense, record %d has id %d", i, rec.ID)
		}
		if len(rec.Neighbours) != 1 {
			t.Errorf("record %d neighbours = %v, want exactly 1", i, rec.Neighbours)
		}
		if len(rec.Portals) != len(rec.Neighbours) {
			t.Errorf("record %d: portals and neighbours out of step (%d vs %d)",
				i, len(rec.Portals), len(rec.Neighbours))
		}
	}

	// Neighbour references are group-local and mutual.
	if group[0].Neighbours[0] != 1 || group[1].Neighbours[0] != 0 {
		t.Errorf("neighbour remap wrong: %v / %v", group[0].Neighbours, group[1].Neighbours)
	}

	// Both portals are the shared edge (v1,v2), each in its owner's winding.
	if !reflect.DeepEqual(group[0].Portals[0], []int{1, 2}) {
		t.Errorf("portal 0 = %v, want [1 2]", group[0].Portals[0])
	}
	if !reflect.DeepEqual(group[1].Portals[0], []int{2, 1}) {
		t.Errorf("portal 1 = %v, want [2 1]", group[1].Portals[0])
	}
}

func TestBuildZone_DisjointTriangles(t *testing.T) {
	m := testMesh(6, [3]int{0, 1, 2}, [3]int{3, 4, 5})

	zone, err := BuildZone(m)
	if err != nil {
		t.Fatalf("BuildZone failed: %v", err)
	}

	if len(zone.Groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(zone.Groups))
	}
	for g, group := range zone.Groups {
		if len(group) != 1 {
			t.Errorf("group %d has %d polygons, want 1", g, len(group))
		}
		rec := group[0]
		if rec.ID != 0 {
			t.Errorf("group %d record id = %d, want 0", g, rec.ID)
		}
		if len(rec.Neighbours) != 0 || len(rec.Portals) != 0 {
			t.Errorf("group %d record should have no neighbours or portals, got %v / %v",
				g, rec.Neighbours, rec.Portals)
		}
	}
}

func TestBuildZone_FanOfFour(t *testing.T) {
	m := testMesh(9,
		[3]int{0, 1, 2},
		[3]int{0, 3, 4},
		[3]int{0, 5, 6},
		[3]int{0, 7, 8},
	)

	zone, err := BuildZone(m)
	if err != nil {
		t.Fatalf("BuildZone failed: %v", err)
	}
	if len(zone.Groups) != 4 {
		t.Fatalf("expected 4 groups for edge-less fan, got %d", len(zone.Groups))
	}
}

func TestBuildZone_Alignment(t *testing.T) {
	// A strip where the middle triangle has two neighbours, so the lock-step
	// arrays actually carry more than one entry.
	m := testMesh(5,
		[3]int{0, 1, 2},
		[3]int{1, 3, 2},
		[3]int{2, 3, 4},
	)

	zone, err := BuildZone(m)
	if err != nil {
		t.Fatalf("BuildZone failed: %v", err)
	}
	if len(zone.Groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(zone.Groups))
	}
	group := zone.Groups[0]

	for _, rec := range group {
		if len(rec.Neighbours) != len(rec.Portals) {
			t.Fatalf("record %d: %d neighbours but %d portals",
				rec.ID, len(rec.Neighbours), len(rec.Portals))
		}
		for i, n := range rec.Neighbours {
			other := group[n]
			// Portals[i] must be exactly the ids shared with Neighbours[i].
			for _, v := range rec.Portals[i] {
				if !containsVert(rec.VertexIDs, v) || !containsVert(other.VertexIDs, v) {
					t.Errorf("record %d portal %d contains %d, not shared with neighbour %d",
						rec.ID, i, v, n)
				}
			}
			shared := 0
			for _, v := range rec.VertexIDs {
				if containsVert(other.VertexIDs, v) {
					shared++
				}
			}
			if len(rec.Portals[i]) != shared {
				t.Errorf("record %d portal %d has %d ids, %d vertices are shared",
					rec.ID, i, len(rec.Portals[i]), shared)
			}
		}
	}

	if group[1].ID != 1 || len(group[1].Neighbours) != 2 {
		t.Errorf("middle triangle should have 2 neighbours, got %v", group[1].Neighbours)
	}
}

func TestBuildZone_SharesVertexArray(t *testing.T) {
	m := testMesh(4, [3]int{0, 1, 2}, [3]int{1, 3, 2})

	zone, err := BuildZone(m)
	if err != nil {
		t.Fatalf("BuildZone failed: %v", err)
	}
	if len(zone.Vertices) == 0 || &zone.Vertices[0] != &m.Vertices[0] {
		t.Error("zone must share the input vertex array by reference")
	}
}

func TestBuildZone_Deterministic(t *testing.T) {
	build := func() *Zone {
		m := testMesh(12,
			[3]int{0, 1, 2},
			[3]int{1, 3, 2},
			[3]int{2, 3, 4},
			[3]int{5, 6, 7},
			[3]int{6, 8, 7},
			[3]int{9, 10, 11},
		)
		zone, err := BuildZone(m)
		if err != nil {
			t.Fatalf("BuildZone failed: %v", err)
		}
		return zone
	}

	first := build()
	second := build()
	if !reflect.DeepEqual(first.Groups, second.Groups) {
		t.Error("two builds of the same input must produce identical group structures")
	}
}

func TestBuildZone_InputErrors(t *testing.T) {
	m := testMesh(3)
	if _, err := BuildZone(m); !errors.Is(err, ErrEmptyMesh) {
		t.Errorf("expected ErrEmptyMesh, got %v", err)
	}

	m = testMesh(3, [3]int{0, 1, 2})
	m.Faces[0].Vertices = []int{0, 1}
	if _, err := BuildZone(m); !errors.Is(err, ErrUnsupportedTopology) {
		t.Errorf("expected ErrUnsupportedTopology, got %v", err)
	}
}
