package game

import (
	"errors"
	"fmt"

	"campfire/internal/graphics"
	"campfire/internal/graphics/renderer"
	"campfire/internal/input"
	"campfire/internal/logging"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// State is the lifecycle phase of a Scene.
type State int

const (
	StateUninitialized State = iota
	StateLoaded
	StateRunning
	StateExited
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLoaded:
		return "loaded"
	case StateRunning:
		return "running"
	case StateExited:
		return "exited"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

var (
	ErrSceneClosed = errors.New("scene closed")
	ErrNotLoaded   = errors.New("scene not loaded")
	ErrAssetLoad   = errors.New("asset load failed")
	ErrRenderPanic = errors.New("render panicked")
)

// Options wires a Scene to its collaborators.
type Options struct {
	Window       Window
	Backend      Backend
	Keyboard     Keyboard
	Camera       Camera
	Shaders      ShaderLoader
	Assets       AssetLoader
	NewParticles ParticleFactory
	Log          logging.Logger

	FireOrigin   mgl32.Vec3
	MaxParticles int
	WaterOrigin  mgl32.Vec3

	// Assignments maps asset tags to programs. Nil means DefaultAssignments.
	Assignments map[string]ProgramRole
}

// Scene runs the per-tick update and render phases of the campfire view.
// All methods must be called from the thread that owns the graphics context.
type Scene struct {
	window       Window
	backend      Backend
	keyboard     Keyboard
	camera       Camera
	shaders      ShaderLoader
	assets       AssetLoader
	newParticles ParticleFactory
	log          logging.Logger

	fireOrigin   mgl32.Vec3
	maxParticles int
	waterOrigin  mgl32.Vec3
	assignments  map[string]ProgramRole

	state  State
	closed bool
	gate   FocusGate
	clock  FrameClock

	programs    map[ProgramRole]*graphics.Program
	binding     *Binding
	renderables []renderer.Renderable
	particles   Particles

	keyUpObservers []func(glfw.Key)
	droppedFrames  int
}

func NewScene(opts Options) *Scene {
	log := opts.Log
	if log == nil {
		log = logging.NewNopLogger()
	}
	assignments := opts.Assignments
	if assignments == nil {
		assignments = DefaultAssignments
	}
	return &Scene{
		window:       opts.Window,
		backend:      opts.Backend,
		keyboard:     opts.Keyboard,
		camera:       opts.Camera,
		shaders:      opts.Shaders,
		assets:       opts.Assets,
		newParticles: opts.NewParticles,
		log:          log,
		fireOrigin:   opts.FireOrigin,
		maxParticles: opts.MaxParticles,
		waterOrigin:  opts.WaterOrigin,
		assignments:  assignments,
		state:        StateUninitialized,
	}
}

func (s *Scene) State() State { return s.state }

// Time returns the simulated seconds accumulated by Render.
func (s *Scene) Time() float64 { return s.clock.Seconds() }

// DroppedFrames counts render ticks abandoned after an error.
func (s *Scene) DroppedFrames() int { return s.droppedFrames }

// OnKeyUp registers fn to receive every key release delivered by Dispatch.
func (s *Scene) OnKeyUp(fn func(glfw.Key)) {
	s.keyUpObservers = append(s.keyUpObservers, fn)
}

// Load configures the surface, compiles the programs, loads the assets and
// builds the fire. It runs once; later calls are no-ops. On error everything
// acquired so far is released and the scene stays uninitialized.
func (s *Scene) Load() (err error) {
	if s.closed || s.state == StateExited {
		return ErrSceneClosed
	}
	if s.state != StateUninitialized {
		return nil
	}
	defer func() {
		if err != nil {
			s.release()
		}
	}()

	s.backend.Configure(graphics.SurfaceConfig{
		ClearColor: graphics.CornflowerBlue,
		DepthTest:  true,
		Lighting:   true,
		Texturing:  true,
	})

	s.programs = make(map[ProgramRole]*graphics.Program, len(programOrder))
	for _, role := range programOrder {
		src := ProgramSources[role]
		p, err := s.shaders.LoadProgram(src.Fragment, src.Vertex)
		if err != nil {
			return fmt.Errorf("load %s program: %w", role, err)
		}
		s.programs[role] = p
	}

	water := s.programs[RoleWaterLight]
	s.backend.UseProgram(water.ID)
	s.backend.SetMaterial(WaterMaterial)
	for _, name := range []string{UniformOriginPoint, UniformWaveTime} {
		slot := s.backend.UniformLocation(water.ID, name)
		if slot < 0 {
			s.log.Warnf("uniform %q not active in %s program", name, RoleWaterLight)
		}
		water.BindSlot(name, slot)
	}

	s.binding, err = NewBinding(s.programs, s.assignments, s.waterOrigin)
	if err != nil {
		return err
	}

	s.renderables, err = s.assets.LoadAssets()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAssetLoad, err)
	}
	for _, r := range s.renderables {
		if err := r.AssignShader(s.binding.AssignmentFor(r.Tag())); err != nil {
			return fmt.Errorf("assign shader to %s: %w", r.Tag(), err)
		}
		r.Seal()
	}

	s.particles, err = s.newParticles(s.fireOrigin, s.maxParticles)
	if err != nil {
		return fmt.Errorf("create fire: %w", err)
	}

	s.log.Infof("Loaded %d assets", len(s.renderables))
	s.state = StateLoaded
	return nil
}

// Start moves a loaded scene into the running state.
func (s *Scene) Start() error {
	switch s.state {
	case StateLoaded:
		s.state = StateRunning
		return nil
	case StateRunning:
		return nil
	case StateExited:
		return ErrSceneClosed
	}
	return ErrNotLoaded
}

// Dispatch delivers queued window events in order.
func (s *Scene) Dispatch(events []input.Event) {
	for _, e := range events {
		switch e.Kind {
		case input.EventKeyUp:
			for _, fn := range s.keyUpObservers {
				fn(e.Key)
			}
		case input.EventResize:
			s.Resize(e.Width, e.Height)
		case input.EventFocus:
			s.log.Debugf("focus changed: %v", e.Focused)
		}
	}
}

// Resize sets the viewport to cover the whole surface. The projection keeps
// the aspect ratio it was created with.
func (s *Scene) Resize(width, height int) {
	if s.closed {
		return
	}
	s.backend.Viewport(0, 0, width, height)
}

// Update advances the fire, lets the camera move while the window has focus
// and checks for an exit request.
func (s *Scene) Update(dt float64) {
	if s.state != StateRunning {
		return
	}

	s.particles.Update(dt)

	d := s.gate.Decide(s.window.Focused(), s.keyboard.IsActive(input.ActionResetCamera))
	if d.UpdateCamera {
		s.camera.Update(dt)
	}
	if d.RecenterPointer {
		w, h := s.window.Size()
		s.window.SetCursorPos(float64(w)/2, float64(h)/2)
	}
	if d.ResetCamera {
		s.camera.Reset()
	}

	if s.keyboard.IsActive(input.ActionExit) || s.window.ShouldClose() {
		s.Exit()
	}
}

// Render advances the clock and draws one frame. A frame that fails is
// logged and skipped; the loop keeps running.
func (s *Scene) Render(dt float64) {
	if s.state != StateRunning {
		return
	}
	s.clock.Advance(dt)

	if err := s.drawFrame(); err != nil {
		s.droppedFrames++
		if code := s.backend.LastError(); code != 0 {
			s.log.Errorf("graphics error 0x%04X", code)
		}
		s.log.Errorf("frame dropped: %v", err)
	}
}

func (s *Scene) drawFrame() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrRenderPanic, r)
		}
	}()

	s.backend.Clear()
	s.backend.LoadTransform(s.camera.Projection(), s.camera.View())
	s.backend.LoadIdentityModelView()

	for _, r := range s.renderables {
		s.binding.Apply(s.backend, r.ShaderID(), &s.clock)
		if err := r.Render(); err != nil {
			return fmt.Errorf("render %s: %w", r.Tag(), err)
		}
	}
	if err := s.particles.Render(); err != nil {
		return fmt.Errorf("render fire: %w", err)
	}

	s.window.SwapBuffers()
	return nil
}

// Exit stops the loop and asks the window to close.
func (s *Scene) Exit() {
	if s.state == StateExited {
		return
	}
	s.state = StateExited
	s.window.SetShouldClose(true)
	s.log.Infof("exit requested")
}

// Close releases every graphics resource the scene owns. It is safe to call
// more than once.
func (s *Scene) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.state = StateExited
	s.release()
}

func (s *Scene) release() {
	if s.particles != nil {
		s.particles.Dispose()
		s.particles = nil
	}
	for i := len(s.renderables) - 1; i >= 0; i-- {
		s.renderables[i].Dispose()
	}
	s.renderables = nil
	for i := len(programOrder) - 1; i >= 0; i-- {
		if p, ok := s.programs[programOrder[i]]; ok {
			s.shaders.DeleteProgram(p)
		}
	}
	s.programs = nil
	s.binding = nil
}
