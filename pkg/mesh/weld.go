package mesh

import "github.com/Faultbox/navzone/pkg/math"

// weldBuckets must stay a power of two for the hash mask.
const weldBuckets = 1 << 12

// Welder deduplicates vertices through a uniform spatial hash grid: every
// incoming point is matched against previously accepted points in the
// surrounding cells and reuses the closest one within the weld tolerance.
type Welder struct {
	tolerance float32
	cellSize  float32
	verts     []math.Vec3
	first     [weldBuckets]int
	next      []int
}

// NewWelder creates a welder merging vertices closer than tolerance, which
// must be positive.
func NewWelder(tolerance float32) *Welder {
	w := &Welder{
		tolerance: tolerance,
		cellSize:  tolerance * 10,
	}
	for i := range w.first {
		w.first[i] = -1
	}
	return w
}

func hashCell(x, y, z int) int {
	// Arbitrary large primes, one per axis.
	n := 0x8da6b343*x + 0xd8163841*y + 0xcb1ab31f*z
	return n & (weldBuckets - 1)
}

func floorCell(v float32) int {
	n := int(v)
	if float32(n) > v {
		n--
	}
	return n
}

// Add returns the index of a vertex within tolerance of pt, inserting pt as
// a new vertex when no existing one is close enough.
func (w *Welder) Add(pt math.Vec3) int {
	minX := floorCell((pt.X - w.tolerance) / w.cellSize)
	maxX := floorCell((pt.X + w.tolerance) / w.cellSize)
	minY := floorCell((pt.Y - w.tolerance) / w.cellSize)
	maxY := floorCell((pt.Y + w.tolerance) / w.cellSize)
	minZ := floorCell((pt.Z - w.tolerance) / w.cellSize)
	maxZ := floorCell((pt.Z + w.tolerance) / w.cellSize)

	best := -1
	bestDistSq := w.tolerance * w.tolerance
	for z := minZ; z <= maxZ; z++ {
		for y := minY; y <= maxY; y++ {
			for x := minX; x <= maxX; x++ {
				h := hashCell(x, y, z)
				for i := w.first[h]; i != -1; i = w.next[i] {
					d := w.verts[i].Sub(pt)
					if distSq := d.Dot(d); distSq < bestDistSq {
						bestDistSq = distSq
						best = i
					}
				}
			}
		}
	}
	if best != -1 {
		return best
	}
	return w.push(pt)
}

// push appends pt and links it into its grid cell's chain.
func (w *Welder) push(pt math.Vec3) int {
	h := hashCell(
		floorCell(pt.X/w.cellSize),
		floorCell(pt.Y/w.cellSize),
		floorCell(pt.Z/w.cellSize),
	)
	w.verts = append(w.verts, pt)
	idx := len(w.verts) - 1
	w.next = append(w.next, w.first[h])
	w.first[h] = idx
	return idx
}

// Vertices returns the welded vertex array. The slice is owned by the welder
// and grows on later Add calls.
func (w *Welder) Vertices() []math.Vec3 {
	return w.verts
}
