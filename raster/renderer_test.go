package raster

import (
	"math"
	"testing"

	math32 "github.com/chewxy/math32"
	"github.com/cza14h/nino-renderer/camera"
	"github.com/cza14h/nino-renderer/rmath"
	"github.com/cza14h/nino-renderer/shader"
	"github.com/cza14h/nino-renderer/texture"
)

func mustCamera(t *testing.T, aspect float32) *camera.Camera {
	t.Helper()
	frustum, err := camera.NewFrustum(1, 5, aspect, math.Pi/2)
	if err != nil {
		t.Fatalf("NewFrustum: %v", err)
	}
	return camera.NewCamera(rmath.V3{}, rmath.V3{Z: -1}, rmath.V3{Y: 1}, frustum)
}

func solidFragment(c rmath.V4) shader.FragmentFunc {
	return func(_ shader.AttrRecord, _ shader.Uniforms, _ *texture.Store) rmath.V4 {
		return c
	}
}

func TestDrawTriangleWritesConstantColor(t *testing.T) {
	cam := mustCamera(t, 1)
	r := New(4, 4, cam)
	r.Clear(rmath.V4{})
	r.ShaderMut().Fragment = solidFragment(rmath.V4{X: 1, W: 1})

	verts := []shader.Vertex{
		shader.NewVertex(rmath.V3{X: -1, Y: 1, Z: 0}),
		shader.NewVertex(rmath.V3{X: 1, Y: 1, Z: 0}),
		shader.NewVertex(rmath.V3{X: 0, Y: -1, Z: 0}),
	}
	model := rmath.Translate(rmath.V3{Z: -2})
	if err := r.DrawTriangle(model, verts, texture.NewStore()); err != nil {
		t.Fatalf("DrawTriangle: %v", err)
	}

	wantR, wantG, wantB := (rmath.V4{X: 1, W: 1}).RGB8()
	var hit bool
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			r8, g8, b8 := r.Color.At(x, y)
			if r8 == wantR && g8 == wantG && b8 == wantB {
				hit = true
			}
		}
	}
	if !hit {
		t.Fatal("expected at least one red pixel")
	}
	if r0, g0, b0 := r.Color.At(0, 0); r0 != 0 || g0 != 0 || b0 != 0 {
		t.Fatalf("corner (0,0) = (%d,%d,%d), want black", r0, g0, b0)
	}
}

func TestDrawTriangleMalformedVertexCountErrors(t *testing.T) {
	cam := mustCamera(t, 1)
	r := New(4, 4, cam)
	verts := []shader.Vertex{shader.NewVertex(rmath.V3{}), shader.NewVertex(rmath.V3{})}
	if err := r.DrawTriangle(rmath.IdentityM4(), verts, texture.NewStore()); err == nil {
		t.Fatal("expected error for vertex count not divisible by 3")
	}
}

func TestDrawTriangleDepthTestKeepsNearerColor(t *testing.T) {
	cam := mustCamera(t, 1)
	r := New(8, 8, cam)
	r.Clear(rmath.V4{})

	verts := []shader.Vertex{
		shader.NewVertex(rmath.V3{X: -2, Y: 2, Z: 0}),
		shader.NewVertex(rmath.V3{X: 2, Y: 2, Z: 0}),
		shader.NewVertex(rmath.V3{X: 0, Y: -2, Z: 0}),
	}

	r.ShaderMut().Fragment = solidFragment(rmath.V4{X: 1, W: 1})
	far := rmath.Translate(rmath.V3{Z: -4})
	if err := r.DrawTriangle(far, verts, texture.NewStore()); err != nil {
		t.Fatalf("far draw: %v", err)
	}

	r.ShaderMut().Fragment = solidFragment(rmath.V4{Y: 1, W: 1})
	near := rmath.Translate(rmath.V3{Z: -2})
	if err := r.DrawTriangle(near, verts, texture.NewStore()); err != nil {
		t.Fatalf("near draw: %v", err)
	}

	wantR, wantG, wantB := (rmath.V4{Y: 1, W: 1}).RGB8()
	var checked bool
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			r8, g8, b8 := r.Color.At(x, y)
			if r8 == 0 && g8 == 0 && b8 == 0 {
				continue
			}
			checked = true
			if r8 != wantR || g8 != wantG || b8 != wantB {
				t.Fatalf("pixel (%d,%d) = (%d,%d,%d), want the nearer triangle's green", x, y, r8, g8, b8)
			}
		}
	}
	if !checked {
		t.Fatal("expected some pixels to be covered")
	}
}

func TestDrawTriangleBackfaceCullDropsTriangle(t *testing.T) {
	cam := mustCamera(t, 1)
	r := New(4, 4, cam)
	r.Clear(rmath.V4{})
	r.SetFaceCull(CullBack)
	r.SetFrontFace(FrontCCW)
	r.ShaderMut().Fragment = solidFragment(rmath.V4{X: 1, W: 1})

	// Same vertex order as TestDrawTriangleWritesConstantColor. Its clip-space
	// normal (p1-p0)x(p2-p1) has a positive dot product with the view
	// direction, which FrontCCW classifies as a back face.
	verts := []shader.Vertex{
		shader.NewVertex(rmath.V3{X: -1, Y: 1, Z: 0}),
		shader.NewVertex(rmath.V3{X: 1, Y: 1, Z: 0}),
		shader.NewVertex(rmath.V3{X: 0, Y: -1, Z: 0}),
	}
	model := rmath.Translate(rmath.V3{Z: -2})
	if err := r.DrawTriangle(model, verts, texture.NewStore()); err != nil {
		t.Fatalf("DrawTriangle: %v", err)
	}

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			r8, g8, b8 := r.Color.At(x, y)
			if r8 != 0 || g8 != 0 || b8 != 0 {
				t.Fatalf("pixel (%d,%d) should be untouched after backface cull, got (%d,%d,%d)", x, y, r8, g8, b8)
			}
		}
	}
}

func TestDrawWireframeConnectsVertices(t *testing.T) {
	cam := mustCamera(t, 1)
	r := New(12, 12, cam)
	r.Clear(rmath.V4{})
	r.ShaderMut().Fragment = solidFragment(rmath.V4{X: 1, Y: 1, Z: 1, W: 1})

	screen := [3]rmath.V4{
		{X: 1, Y: 1, Z: 1},
		{X: 10, Y: 1, Z: 1},
		{X: 5, Y: 8, Z: 1},
	}
	tri := [3]clipVertex{{}, {}, {}}
	r.drawWireframe(screen, tri, texture.NewStore())

	corners := [][2]int{{1, 1}, {10, 1}, {5, 8}}
	for _, c := range corners {
		rr, gg, bb := r.Color.At(c[0], c[1])
		if rr == 0 && gg == 0 && bb == 0 {
			t.Fatalf("expected vertex pixel %v to be drawn", c)
		}
	}
}

func TestClearAndClearDepth(t *testing.T) {
	cam := mustCamera(t, 1)
	r := New(3, 3, cam)
	r.Clear(rmath.V4{X: 0.5, Y: 0.5, Z: 0.5, W: 1})
	wantR, wantG, wantB := (rmath.V4{X: 0.5, Y: 0.5, Z: 0.5, W: 1}).RGB8()
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			rr, gg, bb := r.Color.At(x, y)
			if rr != wantR || gg != wantG || bb != wantB {
				t.Fatalf("Clear did not fill pixel (%d,%d)", x, y)
			}
		}
	}
	r.ClearDepth()
	if v := r.Depth.Get(1, 1); !math.IsInf(float64(v), 1) {
		t.Fatalf("ClearDepth depth = %v, want +Inf", v)
	}
	if got := len(r.FrameImage()); got != 3*3*3 {
		t.Fatalf("FrameImage length = %d, want %d", got, 3*3*3)
	}
}

func checkerTextureRaster(n int) texture.Texture {
	pix := make([]rmath.V4, n*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if (x+y)%2 == 0 {
				pix[y*n+x] = rmath.V4{X: 1, Y: 1, Z: 1, W: 1}
			} else {
				pix[y*n+x] = rmath.V4{W: 1}
			}
		}
	}
	return texture.Texture{W: n, H: n, Pix: pix}
}

// TestDrawTrianglePerspectiveCorrectInterpolation renders a checkerboard
// quad tilted 45 degrees around X, so its four corners sit at different
// view-space depths. Along the screen column under the quad's untilted
// X=0 line, the true texture v coordinate is an affine function of the
// local Y that produced each pixel; recovering it requires dividing by
// depth before interpolating, not interpolating screen-space-linearly.
// The fragment shader here writes the interpolated v straight into the
// green channel so it can be read back and compared against the analytic
// value, and against what a naive linear interpolation would have
// produced, to confirm the scenario actually distinguishes the two.
func TestDrawTrianglePerspectiveCorrectInterpolation(t *testing.T) {
	const width, height = 64, 512
	const uvSlot = 0

	// A wide depth range between the quad's near and far edges exaggerates
	// the gap between perspective-correct and screen-space-linear
	// interpolation; near/far are opened up from the other tests' camera
	// to allow placing the quad closer without violating the near plane.
	frustum, err := camera.NewFrustum(0.5, 10, 1, math32.Pi/2)
	if err != nil {
		t.Fatalf("NewFrustum: %v", err)
	}
	cam := camera.NewCamera(rmath.V3{}, rmath.V3{Z: -1}, rmath.V3{Y: 1}, frustum)
	r := New(width, height, cam)
	r.Clear(rmath.V4{})

	store := texture.NewStore()
	h := store.Add(checkerTextureRaster(8))
	r.Unif["diffuse"] = shader.FromTexture(h)
	r.ShaderMut().Fragment = func(attrs shader.AttrRecord, u shader.Uniforms, ts *texture.Store) rmath.V4 {
		uv := attrs.V2[uvSlot]
		if _, ok := ts.Sample(u["diffuse"].Texture(), uv); !ok {
			t.Fatalf("texture sample miss at uv=%+v", uv)
		}
		return rmath.V4{Y: uv.Y, W: 1}
	}

	mkVert := func(x, y float32, uv rmath.V2) shader.Vertex {
		v := shader.NewVertex(rmath.V3{X: x, Y: y})
		v.Attributes.V2[uvSlot] = uv
		return v
	}
	verts := []shader.Vertex{
		mkVert(-1, 1, rmath.V2{X: 0, Y: 0}),
		mkVert(1, 1, rmath.V2{X: 1, Y: 0}),
		mkVert(1, -1, rmath.V2{X: 1, Y: 1}),

		mkVert(-1, 1, rmath.V2{X: 0, Y: 0}),
		mkVert(1, -1, rmath.V2{X: 1, Y: 1}),
		mkVert(-1, -1, rmath.V2{X: 0, Y: 1}),
	}

	model := rmath.MulM4(rmath.Translate(rmath.V3{Z: -1.8}), rmath.RotateX(math32.Pi/4))
	if err := r.DrawTriangle(model, verts, store); err != nil {
		t.Fatalf("DrawTriangle: %v", err)
	}

	mvp := rmath.MulM4(cam.Projection(), rmath.MulM4(cam.View(), model))
	projectRow := func(y float32) int {
		clip := mvp.MulV4(rmath.V4{X: 0, Y: y, Z: 0, W: 1})
		cv := clipVertex{position: clip}
		screen := r.viewportMap([3]clipVertex{cv, cv, cv})
		return int(screen[0].Y + 0.5)
	}

	const colMid = width / 2
	const tolerance = 1.0 / 8 // 1/texture_dim

	rowTop := projectRow(1)
	rowBot := projectRow(-1)

	samples := []float32{0.7, 0.3, -0.3, -0.7}
	naiveDiverged := false
	for _, y := range samples {
		row := projectRow(y)
		if row < 0 || row >= height {
			t.Fatalf("sample y=%v projects outside canvas (row=%d)", y, row)
		}
		wantV := (1 - y) / 2

		_, g, _ := r.Color.At(colMid, row)
		gotV := float32(g) / 255
		if math32.Abs(gotV-wantV) > tolerance {
			t.Fatalf("y=%v row=%d: interpolated v = %v, want %v within %v (naive screen-linear interpolation instead of 1/z-linear?)", y, row, gotV, wantV, tolerance)
		}

		naiveV := float32(row-rowTop) / float32(rowBot-rowTop)
		if math32.Abs(naiveV-wantV) > tolerance {
			naiveDiverged = true
		}
	}
	if !naiveDiverged {
		t.Fatal("naive screen-space-linear interpolation also matched every sample; scenario does not distinguish perspective-correct interpolation")
	}
}
