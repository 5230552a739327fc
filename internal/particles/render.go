package particles

import (
	"github.com/go-gl/gl/v2.1/gl"
)

// drawLayout returns the byte size of the streamed buffer and the offset of
// the colour block, which follows the positions.
func (s *System) drawLayout() (size, colorOffset int) {
	colorOffset = len(s.positions) * 4
	return colorOffset + len(s.colors)*4, colorOffset
}

// upload streams this frame's positions and colours into the system's
// vertex buffer, orphaning the previous contents.
func (s *System) upload() {
	if s.vbo == 0 {
		gl.GenBuffers(1, &s.vbo)
	}
	size, colorOffset := s.drawLayout()

	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, size, nil, gl.STREAM_DRAW)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, colorOffset, gl.Ptr(s.positions))
	gl.BufferSubData(gl.ARRAY_BUFFER, colorOffset, size-colorOffset, gl.Ptr(s.colors))
}

// Render draws the alive particles as additive points over the current
// scene. Depth is tested but not written, so sparks never hide each other.
func (s *System) Render() error {
	if s.disposed {
		return ErrDisposed
	}
	if s.alive == 0 {
		return nil
	}

	gl.PushAttrib(gl.ENABLE_BIT | gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT | gl.POINT_BIT)
	defer gl.PopAttrib()

	gl.UseProgram(0)
	gl.Disable(gl.LIGHTING)
	gl.Disable(gl.TEXTURE_2D)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE)
	gl.DepthMask(false)
	gl.Enable(gl.POINT_SMOOTH)
	gl.PointSize(s.cfg.PointSize)

	s.upload()
	_, colorOffset := s.drawLayout()

	gl.EnableClientState(gl.VERTEX_ARRAY)
	gl.EnableClientState(gl.COLOR_ARRAY)
	gl.VertexPointer(3, gl.FLOAT, 0, gl.PtrOffset(0))
	gl.ColorPointer(4, gl.FLOAT, 0, gl.PtrOffset(colorOffset))
	gl.DrawArrays(gl.POINTS, 0, int32(s.alive))
	gl.DisableClientState(gl.COLOR_ARRAY)
	gl.DisableClientState(gl.VERTEX_ARRAY)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	return nil
}

// release deletes the vertex buffer if Render ever created one.
func (s *System) release() {
	if s.vbo != 0 {
		gl.DeleteBuffers(1, &s.vbo)
		s.vbo = 0
	}
}
