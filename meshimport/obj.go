// Package meshimport reads Wavefront OBJ files into flat vertex slices
// ready for raster.Renderer.DrawTriangle. It is a producer of vertex
// arrays, not part of the rasterization core: positions, normals and
// texture coordinates are read and triangulated, nothing more.
package meshimport

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cza14h/nino-renderer/rmath"
	"github.com/cza14h/nino-renderer/shader"
)

// Attribute slot indices this package writes into Vertex.Attributes. A
// shader consuming meshimport output reads these slots by the same
// constants.
const (
	NormalSlot = 0 // AttrRecord.V3[NormalSlot]
	UVSlot     = 0 // AttrRecord.V2[UVSlot]
)

// ParseError reports the OBJ source line a malformed directive was found
// on, so a caller can point a user at the offending file location.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("meshimport: line %d: %s", e.Line, e.Msg)
}

// Load reads an OBJ document from r and returns a flat, triangulated
// vertex slice. Faces with more than three vertices are fan-triangulated
// around their first vertex. Faces referencing out-of-range indices
// produce a *ParseError.
func Load(r io.Reader) ([]shader.Vertex, error) {
	var positions []rmath.V3
	var normals []rmath.V3
	var uvs []rmath.V2
	var out []shader.Vertex

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
			v, err := parseV3(fields[1:])
			if err != nil {
				return nil, &ParseError{Line: lineNo, Msg: err.Error()}
			}
			positions = append(positions, v)
		case "vn":
			v, err := parseV3(fields[1:])
			if err != nil {
				return nil, &ParseError{Line: lineNo, Msg: err.Error()}
			}
			normals = append(normals, v)
		case "vt":
			v, err := parseV2(fields[1:])
			if err != nil {
				return nil, &ParseError{Line: lineNo, Msg: err.Error()}
			}
			uvs = append(uvs, v)
		case "f":
			faceVerts, err := buildFace(fields[1:], positions, normals, uvs, lineNo)
			if err != nil {
				return nil, err
			}
			for i := 1; i+1 < len(faceVerts); i++ {
				out = append(out, faceVerts[0], faceVerts[i], faceVerts[i+1])
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("meshimport: reading source: %w", err)
	}
	return out, nil
}

func parseV3(fields []string) (rmath.V3, error) {
	if len(fields) < 3 {
		return rmath.V3{}, fmt.Errorf("expected 3 components, got %d", len(fields))
	}
	x, err := strconv.ParseFloat(fields[0], 32)
	if err != nil {
		return rmath.V3{}, err
	}
	y, err := strconv.ParseFloat(fields[1], 32)
	if err != nil {
		return rmath.V3{}, err
	}
	z, err := strconv.ParseFloat(fields[2], 32)
	if err != nil {
		return rmath.V3{}, err
	}
	return rmath.V3{X: float32(x), Y: float32(y), Z: float32(z)}, nil
}

func parseV2(fields []string) (rmath.V2, error) {
	if len(fields) < 2 {
		return rmath.V2{}, fmt.Errorf("expected 2 components, got %d", len(fields))
	}
	x, err := strconv.ParseFloat(fields[0], 32)
	if err != nil {
		return rmath.V2{}, err
	}
	y, err := strconv.ParseFloat(fields[1], 32)
	if err != nil {
		return rmath.V2{}, err
	}
	return rmath.V2{X: float32(x), Y: float32(y)}, nil
}

// buildFace resolves one "f" directive's space-separated v/vt/vn groups
// into shader.Vertex values, writing normals/UVs into their fixed slots
// when present.
func buildFace(groups []string, positions, normals []rmath.V3, uvs []rmath.V2, lineNo int) ([]shader.Vertex, error) {
	if len(groups) < 3 {
		return nil, &ParseError{Line: lineNo, Msg: "face has fewer than 3 vertices"}
	}
	verts := make([]shader.Vertex, 0, len(groups))
	for _, g := range groups {
		parts := strings.Split(g, "/")
		posIdx, err := faceIndex(parts[0], len(positions))
		if err != nil {
			return nil, &ParseError{Line: lineNo, Msg: err.Error()}
		}
		v := shader.NewVertex(positions[posIdx])
		if len(parts) > 1 && parts[1] != "" {
			uvIdx, err := faceIndex(parts[1], len(uvs))
			if err != nil {
				return nil, &ParseError{Line: lineNo, Msg: err.Error()}
			}
			v.Attributes.V2[UVSlot] = uvs[uvIdx]
		}
		if len(parts) > 2 && parts[2] != "" {
			nIdx, err := faceIndex(parts[2], len(normals))
			if err != nil {
				return nil, &ParseError{Line: lineNo, Msg: err.Error()}
			}
			v.Attributes.V3[NormalSlot] = normals[nIdx]
		}
		verts = append(verts, v)
	}
	return verts, nil
}

// faceIndex resolves a 1-based OBJ index (or a negative relative index)
// into a 0-based slice index, bounds-checked against count.
func faceIndex(raw string, count int) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid face index %q", raw)
	}
	var idx int
	if n < 0 {
		idx = count + n
	} else {
		idx = n - 1
	}
	if idx < 0 || idx >= count {
		return 0, fmt.Errorf("face index %d out of range (have %d)", n, count)
	}
	return idx, nil
}
