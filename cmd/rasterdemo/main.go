// Command rasterdemo drives the CPU rasterizer core for one frame and
// writes the result to a PPM (P6) file. It stands in for a real
// windowing host, which is out of scope for this module: it composes
// the same Renderer surface a GLFW/GL host would, but blits to a file
// instead of a window surface.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/cza14h/nino-renderer/camera"
	"github.com/cza14h/nino-renderer/internal/rlog"
	"github.com/cza14h/nino-renderer/meshimport"
	"github.com/cza14h/nino-renderer/raster"
	"github.com/cza14h/nino-renderer/rmath"
	"github.com/cza14h/nino-renderer/shader"
	"github.com/cza14h/nino-renderer/texture"
)

func main() {
	var (
		width     = flag.Int("width", 256, "output canvas width in pixels")
		height    = flag.Int("height", 256, "output canvas height in pixels")
		near      = flag.Float64("near", 0.1, "camera near plane distance")
		far       = flag.Float64("far", 100, "camera far plane distance")
		fovDeg    = flag.Float64("fov", 60, "vertical field of view in degrees")
		objPath   = flag.String("obj", "", "path to a Wavefront OBJ mesh (default: a built-in triangle)")
		texPath   = flag.String("texture", "", "path to a PNG texture (optional)")
		outPath   = flag.String("out", "frame.ppm", "output PPM (P6) file path")
		modelZ    = flag.Float64("z", -3, "model translation along Z, away from the camera")
		wireframe = flag.Bool("wireframe", false, "overlay triangle edges with the Bresenham line drawer")
	)
	flag.Parse()

	log := rlog.Default()

	frustum, err := camera.NewFrustum(float32(*near), float32(*far), float32(*width)/float32(*height), float32(*fovDeg)*math.Pi/180)
	if err != nil {
		log.Error("invalid camera parameters", "error", err)
		os.Exit(1)
	}
	cam := camera.NewCamera(rmath.V3{}, rmath.V3{Z: -1}, rmath.V3{Y: 1}, frustum)

	r := raster.New(*width, *height, cam)
	r.Clear(rmath.V4{W: 1})
	r.ClearDepth()
	if *wireframe {
		r.EnableWireframe()
	}

	verts, err := loadMesh(*objPath)
	if err != nil {
		log.Error("loading mesh", "error", err)
		os.Exit(1)
	}

	store := texture.NewStore()
	var texHandle texture.Handle
	hasTexture := false
	if *texPath != "" {
		tex, err := loadTexture(*texPath)
		if err != nil {
			log.Error("loading texture", "error", err)
			os.Exit(1)
		}
		texHandle = store.Add(tex)
		hasTexture = true
	}

	r.ShaderMut().Vertex = func(in shader.Vertex, _ shader.Uniforms, _ *texture.Store) shader.Vertex {
		return in
	}
	if hasTexture {
		r.Unif["diffuse"] = shader.FromTexture(texHandle)
		r.ShaderMut().Fragment = func(attrs shader.AttrRecord, u shader.Uniforms, tex *texture.Store) rmath.V4 {
			color, ok := tex.Sample(u["diffuse"].Texture(), attrs.V2[meshimport.UVSlot])
			if !ok {
				return rmath.V4{X: 1, W: 1} // flat red stand-in for a texture miss
			}
			return color
		}
	} else {
		r.ShaderMut().Fragment = func(_ shader.AttrRecord, _ shader.Uniforms, _ *texture.Store) rmath.V4 {
			return rmath.V4{X: 1, Y: 1, Z: 1, W: 1}
		}
	}

	model := rmath.Translate(rmath.V3{Z: float32(*modelZ)})
	if err := r.DrawTriangle(model, verts, store); err != nil {
		log.Error("draw failed", "error", err)
		os.Exit(1)
	}

	if err := writePPM(*outPath, r); err != nil {
		log.Error("writing output", "error", err)
		os.Exit(1)
	}
	log.Info("wrote frame", "path", *outPath, "width", *width, "height", *height)
}

func loadMesh(path string) ([]shader.Vertex, error) {
	if path == "" {
		return []shader.Vertex{
			shader.NewVertex(rmath.V3{X: -1, Y: 1, Z: 0}),
			shader.NewVertex(rmath.V3{X: 1, Y: 1, Z: 0}),
			shader.NewVertex(rmath.V3{X: 0, Y: -1, Z: 0}),
		}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return meshimport.Load(f)
}

func loadTexture(path string) (texture.Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return texture.Texture{}, err
	}
	defer f.Close()
	return texture.Decode(f)
}

// writePPM writes r's frame image as a binary PPM (P6): no codec needed,
// unlike the PNG path used for texture input.
func writePPM(path string, r *raster.Renderer) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if _, err := fmt.Fprintf(w, "P6\n%d %d\n255\n", r.CanvasWidth(), r.CanvasHeight()); err != nil {
		return err
	}
	if _, err := w.Write(r.FrameImage()); err != nil {
		return err
	}
	return w.Flush()
}
