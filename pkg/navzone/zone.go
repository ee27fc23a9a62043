// Package navzone builds navigation zones from triangulated meshes. A zone
// partitions the mesh into groups of mutually reachable triangles, records
// which triangles share an edge, and computes the shared-edge portal between
// every adjacent pair, ready for graph search and funnel smoothing
// downstream.
package navzone

import "github.com/Faultbox/navzone/pkg/math"

// PolygonRecord is one triangle of a finished group. Neighbours and Portals
// run in lock step: Portals[i] is the crossable edge into the polygon at
// Neighbours[i]. Ids and neighbour references are group-local; vertex ids
// stay global into the zone's vertex array.
type PolygonRecord struct {
	ID         int         `json:"id" msgpack:"id"`
	Neighbours []int       `json:"neighbours" msgpack:"neighbours"`
	VertexIDs  [3]int      `json:"vertexIds" msgpack:"vertexIds"`
	Centroid   math.Vec3   `json:"centroid" msgpack:"centroid"`
	Normal     math.Vec3   `json:"normal" msgpack:"normal"`
	Portals    [][]int     `json:"portals" msgpack:"portals"`
	UV         []math.Vec2 `json:"uv,omitempty" msgpack:"uv,omitempty"`
}

// Zone is the final navigation structure: the shared vertex array plus one or
// more disjoint groups of connected polygons. Consumers must treat a zone as
// read-only.
type Zone struct {
	Vertices []math.Vec3       `json:"vertices" msgpack:"vertices"`
	Groups   [][]PolygonRecord `json:"groups" msgpack:"groups"`
}

// BuildZone runs the full pipeline: extraction, vertex indexing, neighbour
// discovery, connectivity grouping, portal extraction and group-local
// remapping. The mesh is not modified; the returned zone shares the mesh's
// vertex array by reference. All build state is local to the call, so builds
// on different meshes may run concurrently.
func BuildZone(mesh *Mesh) (*Zone, error) {
	polys, err := extractPolygons(mesh)
	if err != nil {
		return nil, err
	}

	index := buildVertexIndex(polys, len(mesh.Vertices))
	for i := range polys {
		polys[i].neighbors = sharedEdgeNeighbors(i, index, polys)
	}
	groupCount := assignGroups(polys)

	// Membership in extraction order keeps local ids dense and the output
	// deterministic for a given input.
	members := make([][]int, groupCount)
	local := make([]int, len(polys))
	for i := range polys {
		g := polys[i].group
		local[i] = len(members[g])
		members[g] = append(members[g], i)
	}

	zone := &Zone{
		Vertices: mesh.Vertices,
		Groups:   make([][]PolygonRecord, groupCount),
	}
	for g, ids := range members {
		records := make([]PolygonRecord, len(ids))
		for slot, id := range ids {
			p := &polys[id]
			neighbours := make([]int, len(p.neighbors))
			portals := make([][]int, len(p.neighbors))
			for i, n := range p.neighbors {
				neighbours[i] = local[n]
				portals[i] = portalBetween(p, &polys[n])
			}
			records[slot] = PolygonRecord{
				ID:         slot,
				Neighbours: neighbours,
				VertexIDs:  p.verts,
				Centroid:   p.centroid,
				Normal:     p.normal,
				Portals:    portals,
				UV:         p.uv,
			}
		}
		zone.Groups[g] = records
	}
	return zone, nil
}
