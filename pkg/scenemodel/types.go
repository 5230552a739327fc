package scenemodel

// Model is a mesh described as axis-aligned boxes in model space.
type Model struct {
	Parent   string            `json:"parent"`
	Inverted *bool             `json:"inverted"` // faces point inwards, e.g. a skybox
	Textures map[string]string `json:"textures"`
	Elements []Element         `json:"elements"`
}

// IsInverted reports whether the model's faces are wound to be seen from inside.
func (m *Model) IsInverted() bool {
	return m.Inverted != nil && *m.Inverted
}

type Element struct {
	From  [3]float32      `json:"from"`
	To    [3]float32      `json:"to"`
	Faces map[string]Face `json:"faces"`
}

// Face maps a texture onto one side of an element. Texture may reference a
// model texture variable as "#name".
type Face struct {
	UV      [4]float32 `json:"uv"`
	Texture string     `json:"texture"`
}

// Scene is the ordered asset manifest. Order is draw order.
type Scene struct {
	Assets []Placement `json:"assets"`
}

// Placement instantiates a model in world space under a stable tag.
type Placement struct {
	Tag      string      `json:"tag"`
	Model    string      `json:"model"`
	Position [3]float32  `json:"position"`
	Scale    *[3]float32 `json:"scale"`
}

// ScaleOrOne returns the placement scale, defaulting to 1 on every axis.
func (p Placement) ScaleOrOne() [3]float32 {
	if p.Scale == nil {
		return [3]float32{1, 1, 1}
	}
	return *p.Scale
}
