package raster

import (
	"github.com/cza14h/nino-renderer/rmath"
)

// cullTriangle implements stage 2: backface culling in clip space. It
// reports true when the triangle should be discarded.
func (r *Renderer) cullTriangle(tri [3]clipVertex, viewDir rmath.V3) bool {
	if r.Cull == CullNone {
		return false
	}
	p0, p1, p2 := tri[0].position.V3(), tri[1].position.V3(), tri[2].position.V3()
	normal := rmath.CrossV3(rmath.SubV3(p1, p0), rmath.SubV3(p2, p1))
	dot := rmath.DotV3(normal, viewDir)

	var isFront bool
	switch r.Front {
	case FrontCW:
		isFront = dot > 0
	case FrontCCW:
		isFront = dot <= 0
	}

	switch r.Cull {
	case CullFront:
		return isFront
	case CullBack:
		return !isFront
	default:
		return false
	}
}
