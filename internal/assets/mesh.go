package assets

import (
	"errors"
	"fmt"

	"campfire/pkg/scenemodel"

	"github.com/go-gl/mathgl/mgl32"
)

var ErrUnknownFace = errors.New("unknown face direction")

// FloatsPerVertex is the interleaved layout: position(3) normal(3) uv(2).
const FloatsPerVertex = 8

// faceOrder fixes emission order so meshes are deterministic.
var faceOrder = []string{"up", "down", "north", "south", "west", "east"}

var faceNormals = map[string]mgl32.Vec3{
	"up":    {0, 1, 0},
	"down":  {0, -1, 0},
	"north": {0, 0, -1},
	"south": {0, 0, 1},
	"west":  {-1, 0, 0},
	"east":  {1, 0, 0},
}

// Batch is the triangles of a mesh that share one texture.
type Batch struct {
	Texture  string
	Vertices []float32
}

// VertexCount returns the number of vertices in the batch.
func (b Batch) VertexCount() int {
	return len(b.Vertices) / FloatsPerVertex
}

// Mesh is a world-space triangle list split by texture, in first-use order.
type Mesh struct {
	Batches []Batch
}

// BuildMesh turns a model's box elements into triangles placed at position
// and scaled per axis. Inverted models are wound and lit from the inside.
func BuildMesh(m *scenemodel.Model, position, scale [3]float32) (*Mesh, error) {
	for _, elem := range m.Elements {
		for dir := range elem.Faces {
			if _, ok := faceNormals[dir]; !ok {
				return nil, fmt.Errorf("%w: %q", ErrUnknownFace, dir)
			}
		}
	}

	pos := mgl32.Vec3(position)
	scl := mgl32.Vec3(scale)
	inverted := m.IsInverted()

	mesh := &Mesh{}
	index := make(map[string]int)

	for _, elem := range m.Elements {
		for _, dir := range faceOrder {
			face, ok := elem.Faces[dir]
			if !ok {
				continue
			}

			quad := faceQuad(dir, elem.From, elem.To)
			for i := range quad {
				quad[i] = pos.Add(mgl32.Vec3{quad[i][0] * scl[0], quad[i][1] * scl[1], quad[i][2] * scl[2]})
			}
			normal := faceNormals[dir]

			uv := face.UV
			if uv == [4]float32{} {
				uv = [4]float32{0, 0, 1, 1}
			}
			uvs := [4]mgl32.Vec2{{uv[0], uv[1]}, {uv[2], uv[1]}, {uv[2], uv[3]}, {uv[0], uv[3]}}

			order := [6]int{0, 1, 2, 0, 2, 3}
			if inverted {
				order = [6]int{0, 2, 1, 0, 3, 2}
				normal = normal.Mul(-1)
			}

			bi, ok := index[face.Texture]
			if !ok {
				bi = len(mesh.Batches)
				index[face.Texture] = bi
				mesh.Batches = append(mesh.Batches, Batch{Texture: face.Texture})
			}

			verts := mesh.Batches[bi].Vertices
			for _, k := range order {
				p, t := quad[k], uvs[k]
				verts = append(verts, p[0], p[1], p[2], normal[0], normal[1], normal[2], t[0], t[1])
			}
			mesh.Batches[bi].Vertices = verts
		}
	}

	return mesh, nil
}

// faceQuad returns the corners of one face, counter-clockwise seen from
// outside the box.
func faceQuad(dir string, from, to [3]float32) [4]mgl32.Vec3 {
	x0, y0, z0 := from[0], from[1], from[2]
	x1, y1, z1 := to[0], to[1], to[2]

	switch dir {
	case "up":
		return [4]mgl32.Vec3{{x0, y1, z0}, {x0, y1, z1}, {x1, y1, z1}, {x1, y1, z0}}
	case "down":
		return [4]mgl32.Vec3{{x0, y0, z0}, {x1, y0, z0}, {x1, y0, z1}, {x0, y0, z1}}
	case "north":
		return [4]mgl32.Vec3{{x1, y0, z0}, {x0, y0, z0}, {x0, y1, z0}, {x1, y1, z0}}
	case "south":
		return [4]mgl32.Vec3{{x0, y0, z1}, {x1, y0, z1}, {x1, y1, z1}, {x0, y1, z1}}
	case "west":
		return [4]mgl32.Vec3{{x0, y0, z0}, {x0, y0, z1}, {x0, y1, z1}, {x0, y1, z0}}
	default: // east
		return [4]mgl32.Vec3{{x1, y0, z1}, {x1, y0, z0}, {x1, y1, z0}, {x1, y1, z1}}
	}
}
