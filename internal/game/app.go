package game

import (
	"time"

	"campfire/internal/assets"
	"campfire/internal/config"
	"campfire/internal/graphics"
	"campfire/internal/input"
	"campfire/internal/logging"
	"campfire/internal/particles"
	"campfire/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// App owns the window loop and the scene it drives.
type App struct {
	window *glfw.Window
	events *input.Queue
	log    logging.Logger

	scene  *Scene
	assets *assets.Loader

	fpsLimiter   *FPSLimiter
	lastTime     time.Time
	frames       int
	lastFPSCheck time.Time
}

func NewApp(window *glfw.Window, log logging.Logger) *App {
	im := input.NewInputManager()
	events := input.NewQueue()
	installCallbacks(window, im, events)

	win := &glfwWindow{w: window}
	width, height := window.GetSize()
	camera := graphics.NewCamera(im, win, width, height)
	camera.Speed = config.MoveSpeed()
	camera.Sensitivity = config.MouseSensitivity()

	dir := config.AssetsDir()
	loader := assets.NewLoader(dir, log)
	shaders := graphics.NewShaderLoader(dir)

	scene := NewScene(Options{
		Window:       win,
		Backend:      graphics.NewBackend(),
		Keyboard:     im,
		Camera:       camera,
		Shaders:      shaders,
		Assets:       loader,
		NewParticles: newFire,
		Log:          log,
		FireOrigin:   config.FireOrigin(),
		MaxParticles: config.MaxParticles(),
		WaterOrigin:  config.WaterOrigin(),
	})

	konami := NewKonamiDetector(log)
	scene.OnKeyUp(func(k glfw.Key) { konami.Observe(k) })

	return &App{
		window:     window,
		events:     events,
		log:        log,
		scene:      scene,
		assets:     loader,
		fpsLimiter: NewFPSLimiter(),
	}
}

func newFire(origin mgl32.Vec3, maxParticles int) (Particles, error) {
	fire, err := particles.NewFire(origin, maxParticles)
	if err != nil {
		return nil, err
	}
	return fire, nil
}

// Load prepares the scene and sizes the viewport to the framebuffer.
func (a *App) Load() error {
	if err := a.scene.Load(); err != nil {
		return err
	}
	a.scene.Resize(a.window.GetFramebufferSize())
	return nil
}

func (a *App) Run() {
	if err := a.scene.Start(); err != nil {
		a.log.Errorf("start scene: %v", err)
		return
	}
	a.lastTime = time.Now()
	a.lastFPSCheck = a.lastTime
	for a.scene.State() == StateRunning {
		a.tick()
	}
}

func (a *App) tick() {
	profiling.ResetFrame()
	startTick := time.Now() // Measure pure processing time
	dt := startTick.Sub(a.lastTime).Seconds()
	a.lastTime = startTick

	func() {
		defer profiling.Track("glfw.PollEvents")()
		glfw.PollEvents()
	}()
	a.scene.Dispatch(a.events.Drain())

	func() {
		defer profiling.Track("scene.Update")()
		a.scene.Update(dt)
	}()
	func() {
		defer profiling.Track("scene.Render")()
		a.scene.Render(dt)
	}()

	if d := time.Since(startTick); d > a.fpsLimiter.Budget() {
		a.log.Debugf("Slow frame: %v. Top tasks: %s", d, profiling.TopN(5))
	}

	a.frames++
	if since := time.Since(a.lastFPSCheck); since >= time.Second {
		a.log.Debugf("FPS: %.1f (dropped frames: %d)", float64(a.frames)/since.Seconds(), a.scene.DroppedFrames())
		a.frames = 0
		a.lastFPSCheck = time.Now()
	}

	a.fpsLimiter.Wait()
}

// Close releases the scene and the textures shared by its assets.
func (a *App) Close() {
	a.scene.Close()
	a.assets.Close()
}
