package graphics

import (
	"math"

	"campfire/internal/input"

	"github.com/go-gl/mathgl/mgl32"
)

// KeyState reports held logical actions.
type KeyState interface {
	IsActive(action input.Action) bool
}

// Cursor reports the pointer position and the window size, both in screen
// coordinates relative to the window's top-left corner.
type Cursor interface {
	CursorPos() (float64, float64)
	Size() (int, int)
}

type pose struct {
	position   mgl32.Vec3
	yaw, pitch float64
}

// Camera is a free-flying first-person camera. Mouse look is measured as
// the pointer's offset from the window centre, so the caller re-centres the
// pointer after every Update.
type Camera struct {
	Position mgl32.Vec3
	Yaw      float64 // degrees, -90 looks down -Z
	Pitch    float64 // degrees, clamped to +-89

	AspectRatio float32
	FOV         float32
	NearPlane   float32
	FarPlane    float32

	Speed       float32
	Sensitivity float64

	keys   KeyState
	cursor Cursor

	home        pose
	firstSample bool
}

func NewCamera(keys KeyState, cursor Cursor, width, height int) *Camera {
	c := &Camera{
		Position:    mgl32.Vec3{0, 1.5, 5},
		Yaw:         -90,
		FOV:         60.0,
		NearPlane:   0.1,
		FarPlane:    1000.0,
		Speed:       5.0,
		Sensitivity: 0.1,
		keys:        keys,
		cursor:      cursor,
		firstSample: true,
	}
	c.home = pose{position: c.Position, yaw: c.Yaw, pitch: c.Pitch}
	c.SetViewport(width, height)
	return c
}

// SetViewport updates the aspect ratio; a zero height (minimised window) is ignored.
func (c *Camera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.AspectRatio = float32(width) / float32(height)
}

func (c *Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}

func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front()), mgl32.Vec3{0, 1, 0})
}

func (c *Camera) Front() mgl32.Vec3 {
	y := mgl32.DegToRad(float32(c.Yaw))
	p := mgl32.DegToRad(float32(c.Pitch))
	fx := float32(math.Cos(float64(y)) * math.Cos(float64(p)))
	fy := float32(math.Sin(float64(p)))
	fz := float32(math.Sin(float64(y)) * math.Cos(float64(p)))
	return mgl32.Vec3{fx, fy, fz}.Normalize()
}

// Update applies one tick of mouse look and movement.
func (c *Camera) Update(dt float64) {
	c.look()
	c.move(float32(dt))
}

func (c *Camera) look() {
	if c.cursor == nil {
		return
	}
	// The pointer is wherever the OS left it until the first re-centre.
	if c.firstSample {
		c.firstSample = false
		return
	}

	x, y := c.cursor.CursorPos()
	w, h := c.cursor.Size()
	dx := x - float64(w)/2
	dy := float64(h)/2 - y

	c.Yaw += dx * c.Sensitivity
	c.Pitch += dy * c.Sensitivity

	if c.Pitch > 89.0 {
		c.Pitch = 89.0
	}
	if c.Pitch < -89.0 {
		c.Pitch = -89.0
	}
}

func (c *Camera) move(dt float32) {
	if c.keys == nil || dt <= 0 {
		return
	}

	front := c.Front()
	up := mgl32.Vec3{0, 1, 0}
	right := front.Cross(up).Normalize()

	dir := mgl32.Vec3{}
	if c.keys.IsActive(input.ActionMoveForward) {
		dir = dir.Add(front)
	}
	if c.keys.IsActive(input.ActionMoveBackward) {
		dir = dir.Sub(front)
	}
	if c.keys.IsActive(input.ActionMoveRight) {
		dir = dir.Add(right)
	}
	if c.keys.IsActive(input.ActionMoveLeft) {
		dir = dir.Sub(right)
	}
	if c.keys.IsActive(input.ActionMoveUp) {
		dir = dir.Add(up)
	}
	if c.keys.IsActive(input.ActionMoveDown) {
		dir = dir.Sub(up)
	}

	if dir.Len() > 0 {
		c.Position = c.Position.Add(dir.Normalize().Mul(c.Speed * dt))
	}
}

// Reset returns the camera to the pose it was created with.
func (c *Camera) Reset() {
	c.Position = c.home.position
	c.Yaw = c.home.yaw
	c.Pitch = c.home.pitch
	c.firstSample = true
}
