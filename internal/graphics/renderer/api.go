package renderer

import "errors"

var (
	// ErrSealed is returned when a shader is assigned after loading finished.
	ErrSealed = errors.New("renderable is sealed")
	// ErrDisposed is returned when drawing a renderable whose GPU resources were released.
	ErrDisposed = errors.New("renderable is disposed")
)

// Renderable is one loaded scene object drawn once per frame.
//
// Its shader program id (0 selects the default program) may only change
// until Seal is called at the end of the load phase.
type Renderable interface {
	Tag() string
	ShaderID() uint32
	AssignShader(id uint32) error
	Seal()
	Render() error
	Dispose()
}
