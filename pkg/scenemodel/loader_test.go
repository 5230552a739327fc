package scenemodel

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func newTestLoader(t *testing.T) *Loader {
	t.Helper()
	root := t.TempDir()

	writeTestFile(t, root, "models/box.json", `{
		"textures": { "all": "builtin/808080" },
		"elements": [ { "from": [0,0,0], "to": [1,1,1], "faces": { "up": { "texture": "#all" } } } ]
	}`)
	writeTestFile(t, root, "models/log.json", `{
		"parent": "box",
		"textures": { "all": "builtin/5a3a1e" }
	}`)
	writeTestFile(t, root, "models/sky.json", `{
		"parent": "box",
		"inverted": true,
		"textures": { "all": "#sky", "sky": "builtin/87ceeb" }
	}`)
	writeTestFile(t, root, "models/loop_a.json", `{ "parent": "loop_b" }`)
	writeTestFile(t, root, "models/loop_b.json", `{ "parent": "loop_a" }`)
	writeTestFile(t, root, "models/broken.json", `{ "elements": [ `)

	writeTestFile(t, root, "scene.json", `{
		"assets": [
			{ "tag": "skybox", "model": "sky", "scale": [50, 50, 50] },
			{ "tag": "logs", "model": "log", "position": [1, 0, -1] }
		]
	}`)
	writeTestFile(t, root, "dup.json", `{
		"assets": [
			{ "tag": "logs", "model": "log" },
			{ "tag": "logs", "model": "box" }
		]
	}`)
	writeTestFile(t, root, "untagged.json", `{ "assets": [ { "model": "box" } ] }`)

	return NewLoader(root)
}

func TestLoadSimpleModel(t *testing.T) {
	loader := newTestLoader(t)
	model, err := loader.LoadModel("box")
	require.NoError(t, err)

	require.Len(t, model.Elements, 1)
	assert.Equal(t, "builtin/808080", model.Elements[0].Faces["up"].Texture)
	assert.False(t, model.IsInverted())
}

func TestChildDoesNotMutateParent(t *testing.T) {
	loader := newTestLoader(t)

	logModel, err := loader.LoadModel("log")
	require.NoError(t, err)
	box, err := loader.LoadModel("box")
	require.NoError(t, err)

	assert.Equal(t, "builtin/5a3a1e", logModel.Elements[0].Faces["up"].Texture)
	assert.Equal(t, "builtin/808080", box.Elements[0].Faces["up"].Texture)
}

func TestTextureChainAndInversion(t *testing.T) {
	loader := newTestLoader(t)
	sky, err := loader.LoadModel("sky")
	require.NoError(t, err)

	assert.True(t, sky.IsInverted())
	assert.Equal(t, "builtin/87ceeb", sky.Elements[0].Faces["up"].Texture)
}

func TestCache(t *testing.T) {
	loader := newTestLoader(t)
	m1, err := loader.LoadModel("box")
	require.NoError(t, err)
	m2, err := loader.LoadModel("box")
	require.NoError(t, err)
	assert.Same(t, m1, m2)
}

func TestModelErrors(t *testing.T) {
	loader := newTestLoader(t)

	_, err := loader.LoadModel("missing")
	assert.ErrorIs(t, err, ErrModelNotFound)

	_, err = loader.LoadModel("loop_a")
	assert.ErrorIs(t, err, ErrParentCycle)

	_, err = loader.LoadModel("broken")
	assert.Error(t, err)
}

func TestResolveTextureUnknownReference(t *testing.T) {
	m := &Model{Textures: map[string]string{"a": "#b"}}
	assert.Equal(t, "#b", ResolveTexture("#a", m))
	assert.Equal(t, "plain", ResolveTexture("plain", m))
}

func TestLoadScene(t *testing.T) {
	loader := newTestLoader(t)
	scene, err := loader.LoadScene("scene")
	require.NoError(t, err)

	require.Len(t, scene.Assets, 2)
	assert.Equal(t, "skybox", scene.Assets[0].Tag)
	assert.Equal(t, [3]float32{50, 50, 50}, scene.Assets[0].ScaleOrOne())
	assert.Equal(t, "logs", scene.Assets[1].Tag)
	assert.Equal(t, [3]float32{1, 1, 1}, scene.Assets[1].ScaleOrOne())
	assert.Equal(t, [3]float32{1, 0, -1}, scene.Assets[1].Position)
}

func TestLoadSceneInvalid(t *testing.T) {
	loader := newTestLoader(t)

	_, err := loader.LoadScene("dup")
	assert.ErrorIs(t, err, ErrInvalidScene)

	_, err = loader.LoadScene("untagged")
	assert.ErrorIs(t, err, ErrInvalidScene)

	_, err = loader.LoadScene("nope")
	assert.Error(t, err)
}
