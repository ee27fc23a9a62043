// Package mesh prepares raw triangle geometry for the zone builder: it welds
// duplicate vertices into a shared vertex array and derives the per-face
// centroid and normal the builder expects on its input.
package mesh

import (
	"fmt"

	"github.com/Faultbox/navzone/pkg/formats"
	"github.com/Faultbox/navzone/pkg/math"
	"github.com/Faultbox/navzone/pkg/navzone"
)

// DefaultTolerance is the vertex merge distance used when none is configured.
const DefaultTolerance = 1e-4

// Triangle is one raw input triangle, corner positions in winding order. UV
// is an optional per-corner payload carried through untouched.
type Triangle struct {
	A, B, C math.Vec3
	UV      []math.Vec2
}

// Build welds a triangle soup into an indexed mesh with per-face centroid and
// normal. Triangles collapsing to fewer than three distinct vertices after
// welding are dropped.
func Build(tris []Triangle, tolerance float32) *navzone.Mesh {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	welder := NewWelder(tolerance)
	faces := make([]navzone.Face, 0, len(tris))
	for _, tri := range tris {
		a := welder.Add(tri.A)
		b := welder.Add(tri.B)
		c := welder.Add(tri.C)
		if a == b || b == c || a == c {
			continue
		}
		faces = append(faces, navzone.Face{
			Vertices: []int{a, b, c},
			Centroid: math.Centroid(tri.A, tri.B, tri.C),
			Normal:   math.TriangleNormal(tri.A, tri.B, tri.C),
			UV:       tri.UV,
		})
	}
	return &navzone.Mesh{Vertices: welder.Vertices(), Faces: faces}
}

// FromOBJ expands a parsed OBJ into the builder input. Faces must already be
// triangulated; vertex welding handles exporters that emit one vertex per
// corner.
func FromOBJ(obj *formats.OBJ, tolerance float32) (*navzone.Mesh, error) {
	tris := make([]Triangle, 0, len(obj.Faces))
	for i, face := range obj.Faces {
		if len(face) != 3 {
			return nil, fmt.Errorf("%w: face %d has %d vertices", navzone.ErrUnsupportedTopology, i, len(face))
		}
		tris = append(tris, Triangle{
			A: obj.Vertices[face[0]],
			B: obj.Vertices[face[1]],
			C: obj.Vertices[face[2]],
		})
	}
	return Build(tris, tolerance), nil
}
