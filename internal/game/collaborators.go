package game

import (
	"campfire/internal/graphics"
	"campfire/internal/graphics/renderer"
	"campfire/internal/input"

	"github.com/go-gl/mathgl/mgl32"
)

// Window is the part of the windowing runtime the scene drives.
type Window interface {
	Focused() bool
	Size() (int, int)
	SetCursorPos(x, y float64)
	ShouldClose() bool
	SetShouldClose(bool)
	SwapBuffers()
}

// Keyboard reports held logical actions.
type Keyboard interface {
	IsActive(action input.Action) bool
}

// Camera owns the viewer pose. The scene only decides when it may change.
type Camera interface {
	Projection() mgl32.Mat4
	View() mgl32.Mat4
	Update(dt float64)
	Reset()
}

// Particles is a self-contained effect updated and drawn once per tick.
type Particles interface {
	Update(dt float64)
	Render() error
	Dispose()
}

// ParticleFactory builds the particle effect during Load.
type ParticleFactory func(origin mgl32.Vec3, maxParticles int) (Particles, error)

// AssetLoader returns the scene's renderables in draw order.
type AssetLoader interface {
	LoadAssets() ([]renderer.Renderable, error)
}

// ShaderLoader compiles and releases shader programs.
type ShaderLoader interface {
	LoadProgram(fragmentPath, vertexPath string) (*graphics.Program, error)
	DeleteProgram(p *graphics.Program)
}

// Backend is the graphics state the scene sets each frame.
type Backend interface {
	Configure(cfg graphics.SurfaceConfig)
	Viewport(x, y, width, height int)
	Clear()
	LoadTransform(proj, view mgl32.Mat4)
	LoadIdentityModelView()
	UseProgram(id uint32)
	UniformLocation(program uint32, name string) int32
	Uniform3f(slot int32, v mgl32.Vec3)
	Uniform1f(slot int32, v float32)
	SetMaterial(m graphics.Material)
	LastError() uint32
}
