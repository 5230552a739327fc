package scenemodel

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrModelNotFound = errors.New("model not found")
	ErrParentCycle   = errors.New("model parent chain too deep")
	ErrInvalidScene  = errors.New("invalid scene manifest")
)

// maxParentDepth bounds parent chains; longer chains are treated as cycles.
const maxParentDepth = 16

type Loader struct {
	assetsPath string
	rawCache   map[string]*Model // parent chain merged, "#var" references intact
	modelCache map[string]*Model
}

func NewLoader(assetsPath string) *Loader {
	return &Loader{
		assetsPath: assetsPath,
		rawCache:   make(map[string]*Model),
		modelCache: make(map[string]*Model),
	}
}

// LoadModel loads models/<name>.json, merging in its parent chain and
// resolving "#var" texture references. Results are cached by name.
func (l *Loader) LoadModel(name string) (*Model, error) {
	if model, ok := l.modelCache[name]; ok {
		return model, nil
	}

	raw, err := l.loadRaw(name, 0)
	if err != nil {
		return nil, err
	}

	model := *raw
	model.Elements = cloneElements(raw.Elements)
	l.resolveTextures(&model)
	l.modelCache[name] = &model
	return &model, nil
}

// loadRaw merges a model with its parents without resolving textures, so a
// child's texture variables still apply to elements it inherits.
func (l *Loader) loadRaw(name string, depth int) (*Model, error) {
	if depth > maxParentDepth {
		return nil, fmt.Errorf("%w: %s", ErrParentCycle, name)
	}
	if model, ok := l.rawCache[name]; ok {
		return model, nil
	}

	path := filepath.Join(l.assetsPath, "models", name+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrModelNotFound, name)
		}
		return nil, fmt.Errorf("could not read model file: %w", err)
	}

	var model Model
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, fmt.Errorf("could not unmarshal model %s: %w", name, err)
	}
	if model.Textures == nil {
		model.Textures = make(map[string]string)
	}

	if model.Parent != "" {
		parent, err := l.loadRaw(model.Parent, depth+1)
		if err != nil {
			return nil, fmt.Errorf("could not load parent of %s: %w", name, err)
		}

		if model.Inverted == nil {
			model.Inverted = parent.Inverted
		}
		if len(model.Elements) == 0 {
			model.Elements = parent.Elements
		}
		for key, val := range parent.Textures {
			if _, ok := model.Textures[key]; !ok {
				model.Textures[key] = val
			}
		}
	}

	l.rawCache[name] = &model
	return &model, nil
}

func cloneElements(src []Element) []Element {
	out := make([]Element, len(src))
	for i, e := range src {
		out[i] = e
		out[i].Faces = make(map[string]Face, len(e.Faces))
		for k, f := range e.Faces {
			out[i].Faces[k] = f
		}
	}
	return out
}

func (l *Loader) resolveTextures(m *Model) {
	for i := range m.Elements {
		for faceName, face := range m.Elements[i].Faces {
			face.Texture = ResolveTexture(face.Texture, m)
			m.Elements[i].Faces[faceName] = face
		}
	}
}

// ResolveTexture follows "#var" references through m's texture map. An
// unresolvable reference is returned as far as it could be followed.
func ResolveTexture(textureName string, m *Model) string {
	for i := 0; i < 10 && strings.HasPrefix(textureName, "#"); i++ {
		resolved, ok := m.Textures[strings.TrimPrefix(textureName, "#")]
		if !ok {
			break
		}
		textureName = resolved
	}
	return textureName
}

// LoadScene reads <name>.json from the assets path and validates it.
func (l *Loader) LoadScene(name string) (*Scene, error) {
	path := filepath.Join(l.assetsPath, name+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read scene file: %w", err)
	}

	var scene Scene
	if err := json.Unmarshal(data, &scene); err != nil {
		return nil, fmt.Errorf("could not unmarshal scene json: %w", err)
	}

	seen := make(map[string]bool, len(scene.Assets))
	for i, p := range scene.Assets {
		switch {
		case p.Tag == "":
			return nil, fmt.Errorf("%w: asset %d has no tag", ErrInvalidScene, i)
		case p.Model == "":
			return nil, fmt.Errorf("%w: asset %q has no model", ErrInvalidScene, p.Tag)
		case seen[p.Tag]:
			return nil, fmt.Errorf("%w: duplicate tag %q", ErrInvalidScene, p.Tag)
		}
		seen[p.Tag] = true
	}

	return &scene, nil
}
