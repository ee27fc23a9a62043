// Package formats implements parsers for mesh interchange formats.
package formats

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Faultbox/navzone/pkg/math"
)

// ErrMalformedOBJ indicates a statement the parser could not interpret.
var ErrMalformedOBJ = errors.New("malformed OBJ data")

// OBJ holds the subset of a Wavefront OBJ file the zone builder consumes:
// vertex positions and face index lists. Texture and normal references on
// face statements are ignored, as are all other statement types.
type OBJ struct {
	Vertices []math.Vec3
	Faces    [][]int
}

// ParseOBJ reads OBJ statements from r. Face indices are resolved to
// zero-based vertex indices; negative references count back from the current
// end of the vertex list per the OBJ specification.
func ParseOBJ(r io.Reader) (*OBJ, error) {
	obj := &OBJ{}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("%w: line %d: vertex needs 3 coordinates", ErrMalformedOBJ, lineNo)
			}
			var coords [3]float32
			for i := range coords {
				f, err := strconv.ParseFloat(fields[i+1], 32)
				if err != nil {
					return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedOBJ, lineNo, err)
				}
				coords[i] = float32(f)
			}
			obj.Vertices = append(obj.Vertices, math.Vec3{X: coords[0], Y: coords[1], Z: coords[2]})
		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("%w: line %d: face needs at least 3 vertices", ErrMalformedOBJ, lineNo)
			}
			face := make([]int, 0, len(fields)-1)
			for _, ref := range fields[1:] {
				idx, err := parseFaceRef(ref, len(obj.Vertices))
				if err != nil {
					return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedOBJ, lineNo, err)
				}
				face = append(face, idx)
			}
			obj.Faces = append(obj.Faces, face)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading OBJ: %w", err)
	}
	return obj, nil
}

// parseFaceRef resolves one "v", "v/vt" or "v/vt/vn" reference to a
// zero-based vertex index.
func parseFaceRef(ref string, vertexCount int) (int, error) {
	vertRef := ref
	if i := strings.IndexByte(vertRef, '/'); i >= 0 {
		vertRef = vertRef[:i]
	}
	idx, err := strconv.Atoi(vertRef)
	if err != nil {
		return 0, err
	}
	switch {
	case idx > 0:
		idx--
	case idx < 0:
		idx += vertexCount
	default:
		return 0, fmt.Errorf("face index 0 is not valid")
	}
	if idx < 0 || idx >= vertexCount {
		return 0, fmt.Errorf("face index %s out of range", ref)
	}
	return idx, nil
}

// LoadOBJ reads an OBJ file from disk.
func LoadOBJ(path string) (*OBJ, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()
	return ParseOBJ(f)
}
