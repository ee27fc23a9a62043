package navzone

import (
	"errors"
	"fmt"

	"github.com/Faultbox/navzone/pkg/math"
)

// Input validation errors reported by BuildZone. All of them are detected
// during polygon extraction, before any adjacency work starts.
var (
	ErrUnsupportedTopology    = errors.New("unsupported topology: face is not a triangle")
	ErrInvalidVertexReference = errors.New("face references vertex outside the mesh")
	ErrEmptyMesh              = errors.New("mesh has no faces")
)

// Face is one input triangle: three indices into the mesh vertex array in
// winding order, with its precomputed centroid and normal. UV is an optional
// per-corner payload carried through to the output untouched.
type Face struct {
	Vertices []int
	Centroid math.Vec3
	Normal   math.Vec3
	UV       []math.Vec2
}

// Mesh is the builder input: a deduplicated vertex array and the triangles
// referencing it. The mesh package produces one from raw geometry.
type Mesh struct {
	Vertices []math.Vec3
	Faces    []Face
}

// polygon is one triangle in the build arena. Adjacency and group links are
// indices into the arena, never pointers; the arena exclusively owns every
// record for the duration of one build.
type polygon struct {
	id        int
	verts     [3]int
	centroid  math.Vec3
	normal    math.Vec3
	uv        []math.Vec2
	neighbors []int
	group     int
}

// extractPolygons validates every face and fills the polygon arena. Ids are
// dense per build, assigned in face order starting at 0.
func extractPolygons(mesh *Mesh) ([]polygon, error) {
	polys := make([]polygon, 0, len(mesh.Faces))
	for i, face := range mesh.Faces {
		if len(face.Vertices) != 3 {
			return nil, fmt.Errorf("%w: face %d has %d vertices", ErrUnsupportedTopology, i, len(face.Vertices))
		}
		var verts [3]int
		for j, v := range face.Vertices {
			if v < 0 || v >= len(mesh.Vertices) {
				return nil, fmt.Errorf("%w: face %d references vertex %d", ErrInvalidVertexReference, i, v)
			}
			verts[j] = v
		}
		polys = append(polys, polygon{
			id:       len(polys),
			verts:    verts,
			centroid: face.Centroid,
			normal:   face.Normal,
			uv:       face.UV,
			group:    -1,
		})
	}
	if len(polys) == 0 {
		return nil, ErrEmptyMesh
	}
	return polys, nil
}
