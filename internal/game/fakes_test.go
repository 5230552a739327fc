package game

import (
	"errors"
	"fmt"
	"sync"

	"campfire/internal/graphics"
	"campfire/internal/graphics/renderer"
	"campfire/internal/input"

	"github.com/go-gl/mathgl/mgl32"
)

type fakeWindow struct {
	focused     bool
	width       int
	height      int
	shouldClose bool
	cursorSets  [][2]float64
	swaps       int
}

func (w *fakeWindow) Focused() bool             { return w.focused }
func (w *fakeWindow) Size() (int, int)          { return w.width, w.height }
func (w *fakeWindow) SetCursorPos(x, y float64) { w.cursorSets = append(w.cursorSets, [2]float64{x, y}) }
func (w *fakeWindow) ShouldClose() bool         { return w.shouldClose }
func (w *fakeWindow) SetShouldClose(close bool) { w.shouldClose = close }
func (w *fakeWindow) SwapBuffers()              { w.swaps++ }

type fakeKeyboard map[input.Action]bool

func (k fakeKeyboard) IsActive(a input.Action) bool { return k[a] }

type fakeCamera struct {
	updates int
	resets  int
}

func (c *fakeCamera) Projection() mgl32.Mat4 { return mgl32.Perspective(1, 1, 0.1, 100) }
func (c *fakeCamera) View() mgl32.Mat4       { return mgl32.Ident4() }
func (c *fakeCamera) Update(dt float64)      { c.updates++ }
func (c *fakeCamera) Reset()                 { c.resets++ }

type fakeParticles struct {
	updates   int
	renderErr error
	disposed  bool
	calls     *[]string
}

func (p *fakeParticles) Update(dt float64) { p.updates++ }
func (p *fakeParticles) Render() error {
	*p.calls = append(*p.calls, "particles")
	return p.renderErr
}
func (p *fakeParticles) Dispose() { p.disposed = true }

type fakeRenderable struct {
	tag       string
	shaderID  uint32
	sealed    bool
	disposed  bool
	renderErr error
	panicWith any
	calls     *[]string
}

func (r *fakeRenderable) Tag() string      { return r.tag }
func (r *fakeRenderable) ShaderID() uint32 { return r.shaderID }
func (r *fakeRenderable) AssignShader(id uint32) error {
	if r.sealed {
		return renderer.ErrSealed
	}
	r.shaderID = id
	return nil
}
func (r *fakeRenderable) Seal() { r.sealed = true }
func (r *fakeRenderable) Render() error {
	if r.panicWith != nil {
		panic(r.panicWith)
	}
	*r.calls = append(*r.calls, "draw "+r.tag)
	return r.renderErr
}
func (r *fakeRenderable) Dispose() { r.disposed = true }

type fakeAssets struct {
	items []*fakeRenderable
	err   error
}

func (a *fakeAssets) LoadAssets() ([]renderer.Renderable, error) {
	if a.err != nil {
		return nil, a.err
	}
	out := make([]renderer.Renderable, len(a.items))
	for i, r := range a.items {
		out[i] = r
	}
	return out, nil
}

type fakeShaders struct {
	nextID  uint32
	failOn  string
	loaded  []string
	deleted []uint32
}

func (s *fakeShaders) LoadProgram(frag, vert string) (*graphics.Program, error) {
	if frag == s.failOn {
		return nil, fmt.Errorf("%s: %w", frag, graphics.ErrShaderCompile)
	}
	s.nextID++
	s.loaded = append(s.loaded, frag)
	return graphics.NewProgram(s.nextID, frag), nil
}

func (s *fakeShaders) DeleteProgram(p *graphics.Program) {
	s.deleted = append(s.deleted, p.ID)
	p.ID = 0
}

var fakeSlots = map[string]int32{UniformOriginPoint: 5, UniformWaveTime: 6}

type fakeBackend struct {
	calls     *[]string
	viewports [][4]int
	material  graphics.Material
	configure int
	lastError uint32
	origin    mgl32.Vec3
	waveTimes []float32
}

func (b *fakeBackend) record(format string, args ...any) {
	*b.calls = append(*b.calls, fmt.Sprintf(format, args...))
}

func (b *fakeBackend) Configure(cfg graphics.SurfaceConfig) { b.configure++ }
func (b *fakeBackend) Viewport(x, y, w, h int) {
	b.viewports = append(b.viewports, [4]int{x, y, w, h})
}
func (b *fakeBackend) Clear()                              { b.record("clear") }
func (b *fakeBackend) LoadTransform(proj, view mgl32.Mat4) { b.record("transform") }
func (b *fakeBackend) LoadIdentityModelView()              { b.record("identity") }
func (b *fakeBackend) UseProgram(id uint32)                { b.record("use %d", id) }
func (b *fakeBackend) UniformLocation(program uint32, name string) int32 {
	if slot, ok := fakeSlots[name]; ok {
		return slot
	}
	return -1
}
func (b *fakeBackend) Uniform3f(slot int32, v mgl32.Vec3) {
	b.record("uniform3 %d", slot)
	b.origin = v
}
func (b *fakeBackend) Uniform1f(slot int32, v float32) {
	b.record("uniform1 %d", slot)
	b.waveTimes = append(b.waveTimes, v)
}
func (b *fakeBackend) SetMaterial(m graphics.Material) { b.material = m }
func (b *fakeBackend) LastError() uint32               { return b.lastError }

type recordingLogger struct {
	mu     sync.Mutex
	infos  []string
	warns  []string
	errors []string
}

func (l *recordingLogger) DebugEnabled() bool               { return false }
func (l *recordingLogger) SetDebug(bool)                    {}
func (l *recordingLogger) Debugf(format string, args ...any) {}
func (l *recordingLogger) Infof(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, fmt.Sprintf(format, args...))
}
func (l *recordingLogger) Warnf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, fmt.Sprintf(format, args...))
}
func (l *recordingLogger) Errorf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, fmt.Sprintf(format, args...))
}

var errBoom = errors.New("boom")

// harness bundles a scene with the fakes behind it. Program ids follow
// compile order: default 1, skybox 2, static light 3, water light 4.
type harness struct {
	scene     *Scene
	calls     []string
	window    *fakeWindow
	keys      fakeKeyboard
	camera    *fakeCamera
	backend   *fakeBackend
	shaders   *fakeShaders
	assets    *fakeAssets
	particles *fakeParticles
	log       *recordingLogger
	fireArgs  []any
}

var waterOrigin = mgl32.Vec3{0, 0, 0}

func newHarness(tags ...string) *harness {
	h := &harness{
		window:  &fakeWindow{focused: true, width: 800, height: 600},
		keys:    fakeKeyboard{},
		camera:  &fakeCamera{},
		shaders: &fakeShaders{},
		assets:  &fakeAssets{},
		log:     &recordingLogger{},
	}
	h.backend = &fakeBackend{calls: &h.calls}
	h.particles = &fakeParticles{calls: &h.calls}
	for _, tag := range tags {
		h.assets.items = append(h.assets.items, &fakeRenderable{tag: tag, calls: &h.calls})
	}
	h.scene = NewScene(Options{
		Window:   h.window,
		Backend:  h.backend,
		Keyboard: h.keys,
		Camera:   h.camera,
		Shaders:  h.shaders,
		Assets:   h.assets,
		NewParticles: func(origin mgl32.Vec3, max int) (Particles, error) {
			h.fireArgs = []any{origin, max}
			return h.particles, nil
		},
		Log:          h.log,
		FireOrigin:   mgl32.Vec3{1, 1, -1},
		MaxParticles: 1000,
		WaterOrigin:  waterOrigin,
	})
	return h
}

// running loads and starts the scene and forgets the calls made so far.
func (h *harness) running() *harness {
	if err := h.scene.Load(); err != nil {
		panic(err)
	}
	if err := h.scene.Start(); err != nil {
		panic(err)
	}
	h.calls = h.calls[:0]
	return h
}

func (h *harness) item(tag string) *fakeRenderable {
	for _, r := range h.assets.items {
		if r.tag == tag {
			return r
		}
	}
	return nil
}
