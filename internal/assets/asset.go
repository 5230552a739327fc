package assets

import (
	"campfire/internal/graphics/renderer"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/google/uuid"
)

const vertexStride = FloatsPerVertex * 4

type gpuBatch struct {
	texture uint32
	vbo     uint32
	count   int32
}

// Asset is a loaded scene object: static vertex buffers per texture plus
// the shader program it is drawn with.
type Asset struct {
	id       uuid.UUID
	tag      string
	shaderID uint32
	sealed   bool
	disposed bool

	batches []gpuBatch
}

var _ renderer.Renderable = (*Asset)(nil)

func newAsset(tag string) *Asset {
	return &Asset{id: uuid.New(), tag: tag}
}

// ID is a per-run handle used in logs.
func (a *Asset) ID() uuid.UUID { return a.id }

func (a *Asset) Tag() string { return a.tag }

func (a *Asset) ShaderID() uint32 { return a.shaderID }

// AssignShader sets the program id; 0 selects the default program.
func (a *Asset) AssignShader(id uint32) error {
	if a.sealed {
		return renderer.ErrSealed
	}
	a.shaderID = id
	return nil
}

// Seal freezes the shader assignment.
func (a *Asset) Seal() { a.sealed = true }

// upload copies mesh batches into static vertex buffers.
func (a *Asset) upload(mesh *Mesh, textureFor func(name string) (uint32, error)) error {
	for _, b := range mesh.Batches {
		tex, err := textureFor(b.Texture)
		if err != nil {
			return err
		}
		if len(b.Vertices) == 0 {
			continue
		}

		var vbo uint32
		gl.GenBuffers(1, &vbo)
		gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
		gl.BufferData(gl.ARRAY_BUFFER, len(b.Vertices)*4, gl.Ptr(b.Vertices), gl.STATIC_DRAW)

		a.batches = append(a.batches, gpuBatch{texture: tex, vbo: vbo, count: int32(b.VertexCount())})
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return nil
}

// Render draws the asset with whatever program and matrices are current.
func (a *Asset) Render() error {
	if a.disposed {
		return renderer.ErrDisposed
	}

	gl.EnableClientState(gl.VERTEX_ARRAY)
	gl.EnableClientState(gl.NORMAL_ARRAY)
	gl.EnableClientState(gl.TEXTURE_COORD_ARRAY)
	defer func() {
		gl.DisableClientState(gl.TEXTURE_COORD_ARRAY)
		gl.DisableClientState(gl.NORMAL_ARRAY)
		gl.DisableClientState(gl.VERTEX_ARRAY)
		gl.BindBuffer(gl.ARRAY_BUFFER, 0)
		gl.BindTexture(gl.TEXTURE_2D, 0)
	}()

	for _, b := range a.batches {
		gl.BindTexture(gl.TEXTURE_2D, b.texture)
		gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
		gl.VertexPointer(3, gl.FLOAT, vertexStride, gl.PtrOffset(0))
		gl.NormalPointer(gl.FLOAT, vertexStride, gl.PtrOffset(3*4))
		gl.TexCoordPointer(2, gl.FLOAT, vertexStride, gl.PtrOffset(6*4))
		gl.DrawArrays(gl.TRIANGLES, 0, b.count)
	}
	return nil
}

// Dispose releases the vertex buffers. Textures belong to the loader's cache.
func (a *Asset) Dispose() {
	if a.disposed {
		return
	}
	for _, b := range a.batches {
		gl.DeleteBuffers(1, &b.vbo)
	}
	a.batches = nil
	a.disposed = true
}
