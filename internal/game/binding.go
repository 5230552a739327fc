package game

import (
	"fmt"

	"campfire/internal/graphics"

	"github.com/go-gl/mathgl/mgl32"
)

// ProgramRole is one of the four shader programs the scene compiles.
type ProgramRole int

const (
	RoleDefault ProgramRole = iota
	RoleSkybox
	RoleStaticLight
	RoleWaterLight
)

func (r ProgramRole) String() string {
	switch r {
	case RoleDefault:
		return "default"
	case RoleSkybox:
		return "skybox"
	case RoleStaticLight:
		return "static-light"
	case RoleWaterLight:
		return "water-light"
	}
	return fmt.Sprintf("ProgramRole(%d)", int(r))
}

// ProgramSource names a program's shader files relative to the assets directory.
type ProgramSource struct {
	Fragment string
	Vertex   string
}

// programOrder is the compile order used by Load.
var programOrder = []ProgramRole{RoleDefault, RoleSkybox, RoleStaticLight, RoleWaterLight}

var ProgramSources = map[ProgramRole]ProgramSource{
	RoleDefault:     {Fragment: "shaders/texture.frag", Vertex: "shaders/transform.vert"},
	RoleSkybox:      {Fragment: "shaders/skybox.frag", Vertex: "shaders/skybox.vert"},
	RoleStaticLight: {Fragment: "shaders/light.frag", Vertex: "shaders/light.vert"},
	RoleWaterLight:  {Fragment: "shaders/waterlight.frag", Vertex: "shaders/waterlight.vert"},
}

// DefaultAssignments maps asset tags to programs. Tags not listed use the
// default program.
var DefaultAssignments = map[string]ProgramRole{
	"skybox": RoleSkybox,
	"water":  RoleWaterLight,
	"logs":   RoleStaticLight,
	"ground": RoleStaticLight,
}

// Uniforms pushed to the water program every frame it draws.
const (
	UniformOriginPoint = "originPoint"
	UniformWaveTime    = "Wavetime"
)

// WaterMaterial is bound once on the water program at load.
var WaterMaterial = graphics.Material{
	Specular:      mgl32.Vec4{4.0, 4.0, 4.0, 1.0},
	Ambient:       mgl32.Vec4{0.4, 0.4, 0.4, 1.0},
	Diffuse:       mgl32.Vec4{0.4, 0.4, 0.4, 1.0},
	LightPosition: mgl32.Vec4{0.0, 1.0, 0.0, 1.0},
}

// Binding selects the program for each draw and feeds the water program
// its per-frame uniforms.
type Binding struct {
	defaultID   uint32
	waterID     uint32
	roleIDs     map[ProgramRole]uint32
	assignments map[string]ProgramRole

	origin     mgl32.Vec3
	originSlot int32
	timeSlot   int32
}

// NewBinding builds the policy from the loaded programs. The water program
// must already carry resolved origin and time slots.
func NewBinding(programs map[ProgramRole]*graphics.Program, assignments map[string]ProgramRole, origin mgl32.Vec3) (*Binding, error) {
	b := &Binding{
		roleIDs:     make(map[ProgramRole]uint32, len(programOrder)),
		assignments: assignments,
		origin:      origin,
	}
	for _, role := range programOrder {
		p, ok := programs[role]
		if !ok || p == nil || p.ID == 0 {
			return nil, fmt.Errorf("missing %s program", role)
		}
		b.roleIDs[role] = p.ID
	}
	b.defaultID = b.roleIDs[RoleDefault]
	b.waterID = b.roleIDs[RoleWaterLight]

	water := programs[RoleWaterLight]
	var ok bool
	if b.originSlot, ok = water.Slot(UniformOriginPoint); !ok {
		return nil, fmt.Errorf("water program: %s slot not resolved", UniformOriginPoint)
	}
	if b.timeSlot, ok = water.Slot(UniformWaveTime); !ok {
		return nil, fmt.Errorf("water program: %s slot not resolved", UniformWaveTime)
	}
	return b, nil
}

// AssignmentFor returns the program id an asset with tag is assigned at
// load. The default role maps to 0.
func (b *Binding) AssignmentFor(tag string) uint32 {
	role, ok := b.assignments[tag]
	if !ok || role == RoleDefault {
		return 0
	}
	return b.roleIDs[role]
}

// Select returns the program a renderable with the assigned id draws with.
func (b *Binding) Select(assigned uint32) uint32 {
	if assigned != 0 {
		return assigned
	}
	return b.defaultID
}

// Apply activates the selected program and, for the water program only,
// pushes the wave origin and the current simulated time.
func (b *Binding) Apply(be Backend, assigned uint32, clock *FrameClock) uint32 {
	id := b.Select(assigned)
	be.UseProgram(id)
	if id == b.waterID {
		be.Uniform3f(b.originSlot, b.origin)
		be.Uniform1f(b.timeSlot, float32(clock.Seconds()))
	}
	return id
}
