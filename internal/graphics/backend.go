package graphics

import (
	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// SurfaceConfig describes the fixed render state applied once at load.
type SurfaceConfig struct {
	ClearColor mgl32.Vec4
	DepthTest  bool
	Lighting   bool
	Texturing  bool
}

// CornflowerBlue is the scene's clear colour.
var CornflowerBlue = mgl32.Vec4{100.0 / 255.0, 149.0 / 255.0, 237.0 / 255.0, 1}

// Material is the front-face material and light0 position bound for a
// lit program.
type Material struct {
	Specular      mgl32.Vec4
	Ambient       mgl32.Vec4
	Diffuse       mgl32.Vec4
	LightPosition mgl32.Vec4
}

// Backend issues draw state to the current GL context. It uses the
// compatibility profile so the projection and modelview stages are the
// fixed-function matrix stacks the scene shaders read.
type Backend struct{}

func NewBackend() *Backend {
	return &Backend{}
}

// Configure applies surface state.
func (b *Backend) Configure(cfg SurfaceConfig) {
	c := cfg.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	if cfg.DepthTest {
		gl.Enable(gl.DEPTH_TEST)
	}
	if cfg.Lighting {
		gl.Enable(gl.LIGHTING)
		gl.Enable(gl.LIGHT0)
		gl.Enable(gl.NORMALIZE)
	}
	if cfg.Texturing {
		gl.Enable(gl.TEXTURE_2D)
	}
}

func (b *Backend) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

// Clear clears colour and depth.
func (b *Backend) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// LoadTransform loads proj into the projection stage and multiplies view
// into it, so vertices see proj * view.
func (b *Backend) LoadTransform(proj, view mgl32.Mat4) {
	gl.MatrixMode(gl.PROJECTION)
	gl.LoadMatrixf(&proj[0])
	gl.MultMatrixf(&view[0])
}

// LoadIdentityModelView resets the modelview stage and leaves it current.
func (b *Backend) LoadIdentityModelView() {
	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadIdentity()
}

func (b *Backend) UseProgram(id uint32) {
	gl.UseProgram(id)
}

// UniformLocation returns -1 when the program has no active uniform name.
func (b *Backend) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (b *Backend) Uniform3f(slot int32, v mgl32.Vec3) {
	gl.Uniform3f(slot, v[0], v[1], v[2])
}

func (b *Backend) Uniform1f(slot int32, v float32) {
	gl.Uniform1f(slot, v)
}

// SetMaterial binds m to the front faces and positions light0. The caller
// selects the program beforehand.
func (b *Backend) SetMaterial(m Material) {
	gl.ShadeModel(gl.SMOOTH)
	gl.Materialfv(gl.FRONT, gl.SPECULAR, &m.Specular[0])
	gl.Materialfv(gl.FRONT, gl.AMBIENT, &m.Ambient[0])
	gl.Materialfv(gl.FRONT, gl.DIFFUSE, &m.Diffuse[0])
	gl.Lightfv(gl.LIGHT0, gl.POSITION, &m.LightPosition[0])
}

// LastError returns and clears the oldest pending GL error flag.
func (b *Backend) LastError() uint32 {
	return gl.GetError()
}
