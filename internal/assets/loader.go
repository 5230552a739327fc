package assets

import (
	"fmt"

	"campfire/internal/graphics"
	"campfire/internal/graphics/renderer"
	"campfire/internal/logging"
	"campfire/pkg/scenemodel"
)

// SceneManifest is the manifest file name, without extension, under the assets directory.
const SceneManifest = "scene"

// Loader builds the scene's renderables from the manifest and model files.
type Loader struct {
	models   *scenemodel.Loader
	textures *graphics.TextureCache
	log      logging.Logger
}

func NewLoader(dir string, log logging.Logger) *Loader {
	return &Loader{
		models:   scenemodel.NewLoader(dir),
		textures: graphics.NewTextureCache(dir),
		log:      log,
	}
}

// LoadAssets returns the manifest's assets in manifest order. On failure
// nothing stays allocated.
func (l *Loader) LoadAssets() ([]renderer.Renderable, error) {
	scene, err := l.models.LoadScene(SceneManifest)
	if err != nil {
		return nil, err
	}

	loaded := make([]renderer.Renderable, 0, len(scene.Assets))
	fail := func(err error) ([]renderer.Renderable, error) {
		for _, r := range loaded {
			r.Dispose()
		}
		return nil, err
	}

	for _, p := range scene.Assets {
		model, err := l.models.LoadModel(p.Model)
		if err != nil {
			return fail(fmt.Errorf("asset %q: %w", p.Tag, err))
		}
		mesh, err := BuildMesh(model, p.Position, p.ScaleOrOne())
		if err != nil {
			return fail(fmt.Errorf("asset %q: %w", p.Tag, err))
		}

		a := newAsset(p.Tag)
		loaded = append(loaded, a)
		if err := a.upload(mesh, l.textures.Get); err != nil {
			return fail(fmt.Errorf("asset %q: %w", p.Tag, err))
		}
		l.log.Debugf("asset %s (%s): model %s, %d batches", p.Tag, a.ID(), p.Model, len(mesh.Batches))
	}

	return loaded, nil
}

// Close releases the shared textures. Call after every asset is disposed.
func (l *Loader) Close() {
	l.textures.Dispose()
}
