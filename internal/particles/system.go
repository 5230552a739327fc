package particles

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween/ease"
)

var (
	ErrInvalidCapacity = errors.New("particle capacity must be positive")
	ErrDisposed        = errors.New("particle system is disposed")
)

// Config controls emission and the look of particles over their lifetime.
type Config struct {
	SpawnRate        float32    // particles per second
	LifetimeRange    [2]float32 // seconds (min,max)
	StartSpeedRange  [2]float32 // units/sec (min,max)
	ConeAngleDegrees float32    // spread around +Y
	Buoyancy         float32    // upward acceleration, units/sec^2
	Drag             float32    // per-second linear drag
	Jitter           float32    // horizontal wander, units/sec^2

	StartColor [4]float32
	EndColor   [4]float32
	ColorEase  ease.TweenFunc // rgb from StartColor to EndColor over the lifetime
	FadeEase   ease.TweenFunc // alpha from StartColor[3] to EndColor[3]

	PointSize float32 // pixels
}

// FireConfig is a small campfire: fast-rising yellow sparks that cool to
// red and fade out.
func FireConfig() Config {
	return Config{
		SpawnRate:        400,
		LifetimeRange:    [2]float32{0.6, 1.4},
		StartSpeedRange:  [2]float32{0.4, 1.2},
		ConeAngleDegrees: 25,
		Buoyancy:         1.5,
		Drag:             0.8,
		Jitter:           0.6,
		StartColor:       [4]float32{1.0, 0.85, 0.3, 1.0},
		EndColor:         [4]float32{0.8, 0.1, 0.0, 0.0},
		ColorEase:        ease.OutQuad,
		FadeEase:         ease.InQuad,
		PointSize:        6,
	}
}

// System is a fixed-capacity CPU particle pool (struct of arrays,
// swap-remove on death) emitting from a single point.
type System struct {
	origin   mgl32.Vec3
	cfg      Config
	capacity int

	pos  []mgl32.Vec3
	vel  []mgl32.Vec3
	age  []float32
	life []float32

	alive    int
	spawnAcc float32
	rng      *rand.Rand

	// Packed draw data for the alive particles, rebuilt every Update.
	positions []float32
	colors    []float32
	vbo       uint32

	disposed bool
}

// New creates an empty system at origin holding at most capacity particles.
func New(origin mgl32.Vec3, capacity int, cfg Config, seed int64) (*System, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	if cfg.ColorEase == nil {
		cfg.ColorEase = ease.Linear
	}
	if cfg.FadeEase == nil {
		cfg.FadeEase = ease.Linear
	}
	return &System{
		origin:    origin,
		cfg:       cfg,
		capacity:  capacity,
		pos:       make([]mgl32.Vec3, capacity),
		vel:       make([]mgl32.Vec3, capacity),
		age:       make([]float32, capacity),
		life:      make([]float32, capacity),
		rng:       rand.New(rand.NewSource(seed)),
		positions: make([]float32, 0, capacity*3),
		colors:    make([]float32, 0, capacity*4),
	}, nil
}

// NewFire creates a fire effect at origin.
func NewFire(origin mgl32.Vec3, capacity int) (*System, error) {
	return New(origin, capacity, FireConfig(), time.Now().UnixNano())
}

func (s *System) Origin() mgl32.Vec3 { return s.origin }
func (s *System) Capacity() int      { return s.capacity }
func (s *System) Alive() int         { return s.alive }

// Positions returns xyz triples of the alive particles as of the last Update.
func (s *System) Positions() []float32 { return s.positions }

// Colors returns rgba quadruples matching Positions.
func (s *System) Colors() []float32 { return s.colors }

func lerp(a, b, t float32) float32 { return a + (b-a)*t }

func (s *System) sampleDirection() mgl32.Vec3 {
	coneDeg := s.cfg.ConeAngleDegrees
	if coneDeg <= 0 {
		return mgl32.Vec3{0, 1, 0}
	}
	thetaMax := float32(math.Pi) * (coneDeg / 180.0)
	cosTheta := lerp(float32(math.Cos(float64(thetaMax))), 1.0, s.rng.Float32())
	sinTheta := float32(math.Sqrt(float64(1.0 - cosTheta*cosTheta)))
	phi := 2.0 * math.Pi * s.rng.Float64()

	return mgl32.Vec3{
		float32(math.Cos(phi)) * sinTheta,
		cosTheta,
		float32(math.Sin(phi)) * sinTheta,
	}.Normalize()
}

func (s *System) killAt(i int) {
	last := s.alive - 1
	s.pos[i] = s.pos[last]
	s.vel[i] = s.vel[last]
	s.age[i] = s.age[last]
	s.life[i] = s.life[last]
	s.alive--
}

// Update advances the simulation by dt seconds. Non-positive steps are ignored.
func (s *System) Update(dt float64) {
	if s.disposed || !(dt > 0) {
		return
	}
	step := float32(dt)
	s.spawn(step)
	s.integrate(step)
	s.pack()
}

func (s *System) spawn(dt float32) {
	s.spawnAcc += s.cfg.SpawnRate * dt
	count := int(s.spawnAcc)
	s.spawnAcc -= float32(count)
	if free := s.capacity - s.alive; count > free {
		count = free
	}

	for i := 0; i < count; i++ {
		idx := s.alive
		s.alive++

		speed := lerp(s.cfg.StartSpeedRange[0], s.cfg.StartSpeedRange[1], s.rng.Float32())
		s.pos[idx] = s.origin
		s.vel[idx] = s.sampleDirection().Mul(speed)
		s.age[idx] = 0
		s.life[idx] = lerp(s.cfg.LifetimeRange[0], s.cfg.LifetimeRange[1], s.rng.Float32())
	}
}

func (s *System) integrate(dt float32) {
	drag := float32(math.Max(0, float64(1.0-s.cfg.Drag*dt)))
	i := 0
	for i < s.alive {
		age := s.age[i] + dt
		if age >= s.life[i] {
			s.killAt(i)
			continue
		}

		wander := mgl32.Vec3{
			(s.rng.Float32()*2 - 1) * s.cfg.Jitter * dt,
			s.cfg.Buoyancy * dt,
			(s.rng.Float32()*2 - 1) * s.cfg.Jitter * dt,
		}
		v := s.vel[i].Add(wander).Mul(drag)

		s.vel[i] = v
		s.pos[i] = s.pos[i].Add(v.Mul(dt))
		s.age[i] = age
		i++
	}
}

func (s *System) pack() {
	s.positions = s.positions[:0]
	s.colors = s.colors[:0]

	start, end := s.cfg.StartColor, s.cfg.EndColor
	for i := 0; i < s.alive; i++ {
		p := s.pos[i]
		s.positions = append(s.positions, p[0], p[1], p[2])

		age, life := s.age[i], s.life[i]
		s.colors = append(s.colors,
			s.cfg.ColorEase(age, start[0], end[0]-start[0], life),
			s.cfg.ColorEase(age, start[1], end[1]-start[1], life),
			s.cfg.ColorEase(age, start[2], end[2]-start[2], life),
			s.cfg.FadeEase(age, start[3], end[3]-start[3], life),
		)
	}
}

// Dispose drops the pool and its vertex buffer; further Updates are ignored
// and Render fails.
func (s *System) Dispose() {
	s.release()
	s.disposed = true
	s.alive = 0
	s.positions = s.positions[:0]
	s.colors = s.colors[:0]
}
