package assets

import (
	"testing"

	"campfire/internal/graphics/renderer"
	"campfire/pkg/scenemodel"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unitBox(faces map[string]scenemodel.Face) *scenemodel.Model {
	return &scenemodel.Model{
		Elements: []scenemodel.Element{{From: [3]float32{0, 0, 0}, To: [3]float32{1, 1, 1}, Faces: faces}},
	}
}

func vertexAt(b Batch, i int) (pos, normal mgl32.Vec3, uv mgl32.Vec2) {
	v := b.Vertices[i*FloatsPerVertex:]
	return mgl32.Vec3{v[0], v[1], v[2]}, mgl32.Vec3{v[3], v[4], v[5]}, mgl32.Vec2{v[6], v[7]}
}

func TestBuildMeshBatchesByTexture(t *testing.T) {
	m := unitBox(map[string]scenemodel.Face{
		"up":    {Texture: "builtin/00ff00"},
		"north": {Texture: "builtin/808080"},
		"south": {Texture: "builtin/808080"},
	})

	mesh, err := BuildMesh(m, [3]float32{}, [3]float32{1, 1, 1})
	require.NoError(t, err)

	require.Len(t, mesh.Batches, 2)
	assert.Equal(t, "builtin/00ff00", mesh.Batches[0].Texture)
	assert.Equal(t, 6, mesh.Batches[0].VertexCount())
	assert.Equal(t, "builtin/808080", mesh.Batches[1].Texture)
	assert.Equal(t, 12, mesh.Batches[1].VertexCount())
}

func TestBuildMeshWindingMatchesNormal(t *testing.T) {
	faces := map[string]scenemodel.Face{}
	for _, dir := range faceOrder {
		faces[dir] = scenemodel.Face{Texture: dir}
	}

	for _, inverted := range []bool{false, true} {
		m := unitBox(faces)
		m.Inverted = &inverted

		mesh, err := BuildMesh(m, [3]float32{}, [3]float32{1, 1, 1})
		require.NoError(t, err)
		require.Len(t, mesh.Batches, 6)

		for _, b := range mesh.Batches {
			for tri := 0; tri < b.VertexCount(); tri += 3 {
				p0, n, _ := vertexAt(b, tri)
				p1, _, _ := vertexAt(b, tri+1)
				p2, _, _ := vertexAt(b, tri+2)

				geometric := p1.Sub(p0).Cross(p2.Sub(p0)).Normalize()
				assert.True(t, geometric.ApproxEqual(n), "face %s inverted=%v: winding %v, normal %v", b.Texture, inverted, geometric, n)

				want := faceNormals[b.Texture]
				if inverted {
					want = want.Mul(-1)
				}
				assert.Equal(t, want, n)
			}
		}
	}
}

func TestBuildMeshPlacement(t *testing.T) {
	m := unitBox(map[string]scenemodel.Face{"up": {Texture: "t", UV: [4]float32{0, 0, 4, 4}}})

	mesh, err := BuildMesh(m, [3]float32{10, 0, -2}, [3]float32{2, 3, 2})
	require.NoError(t, err)

	// First corner of the up face is (x0, y1, z0).
	pos, _, uv := vertexAt(mesh.Batches[0], 0)
	assert.Equal(t, mgl32.Vec3{10, 3, -2}, pos)
	assert.Equal(t, mgl32.Vec2{0, 0}, uv)

	_, _, uv = vertexAt(mesh.Batches[0], 2)
	assert.Equal(t, mgl32.Vec2{4, 4}, uv)
}

func TestBuildMeshRejectsUnknownFace(t *testing.T) {
	m := unitBox(map[string]scenemodel.Face{"sideways": {Texture: "t"}})
	_, err := BuildMesh(m, [3]float32{}, [3]float32{1, 1, 1})
	assert.ErrorIs(t, err, ErrUnknownFace)
}

func TestAssetShaderSealing(t *testing.T) {
	a := newAsset("water")
	assert.Equal(t, "water", a.Tag())
	assert.Zero(t, a.ShaderID())

	require.NoError(t, a.AssignShader(7))
	assert.Equal(t, uint32(7), a.ShaderID())

	a.Seal()
	assert.ErrorIs(t, a.AssignShader(3), renderer.ErrSealed)
	assert.Equal(t, uint32(7), a.ShaderID())
}

func TestAssetRenderAfterDispose(t *testing.T) {
	a := newAsset("logs")
	a.disposed = true
	assert.ErrorIs(t, a.Render(), renderer.ErrDisposed)
}
