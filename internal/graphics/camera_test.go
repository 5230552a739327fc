package graphics_test

import (
	"testing"

	"campfire/internal/graphics"
	"campfire/internal/input"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

type heldKeys map[input.Action]bool

func (h heldKeys) IsActive(a input.Action) bool { return h[a] }

type fixedCursor struct {
	x, y float64
	w, h int
}

func (c *fixedCursor) CursorPos() (float64, float64) { return c.x, c.y }
func (c *fixedCursor) Size() (int, int)              { return c.w, c.h }

func TestCameraDefaults(t *testing.T) {
	cam := graphics.NewCamera(nil, nil, 800, 400)

	assert.InDelta(t, 2.0, cam.AspectRatio, 1e-6)
	front := cam.Front()
	assert.True(t, front.ApproxEqualThreshold(mgl32.Vec3{0, 0, -1}, 1e-5), "front = %v", front)
}

func TestCameraIgnoresZeroHeightViewport(t *testing.T) {
	cam := graphics.NewCamera(nil, nil, 800, 400)
	cam.SetViewport(800, 0)
	assert.InDelta(t, 2.0, cam.AspectRatio, 1e-6)
}

func TestCameraMoveForward(t *testing.T) {
	cam := graphics.NewCamera(heldKeys{input.ActionMoveForward: true}, nil, 800, 600)
	start := cam.Position

	cam.Update(1.0)

	want := start.Add(mgl32.Vec3{0, 0, -cam.Speed})
	assert.True(t, cam.Position.ApproxEqualThreshold(want, 1e-4), "position = %v, want %v", cam.Position, want)
}

func TestCameraOpposingKeysCancel(t *testing.T) {
	keys := heldKeys{input.ActionMoveLeft: true, input.ActionMoveRight: true}
	cam := graphics.NewCamera(keys, nil, 800, 600)
	start := cam.Position

	cam.Update(0.5)
	assert.Equal(t, start, cam.Position)
}

func TestCameraMouseLookSkipsFirstSample(t *testing.T) {
	cursor := &fixedCursor{x: 500, y: 300, w: 800, h: 600}
	cam := graphics.NewCamera(nil, cursor, 800, 600)

	cam.Update(0.016)
	assert.Equal(t, -90.0, cam.Yaw)

	cam.Update(0.016)
	assert.InDelta(t, -90.0+100*cam.Sensitivity, cam.Yaw, 1e-9)
	assert.Zero(t, cam.Pitch)
}

func TestCameraPitchClamped(t *testing.T) {
	cursor := &fixedCursor{x: 400, y: -5000, w: 800, h: 600}
	cam := graphics.NewCamera(nil, cursor, 800, 600)

	cam.Update(0.016)
	cam.Update(0.016)
	assert.Equal(t, 89.0, cam.Pitch)
}

func TestCameraReset(t *testing.T) {
	cursor := &fixedCursor{x: 600, y: 100, w: 800, h: 600}
	cam := graphics.NewCamera(heldKeys{input.ActionMoveUp: true}, cursor, 800, 600)
	start := cam.Position

	cam.Update(0.1)
	cam.Update(0.1)
	assert.NotEqual(t, start, cam.Position)

	cam.Reset()
	assert.Equal(t, start, cam.Position)
	assert.Equal(t, -90.0, cam.Yaw)
	assert.Zero(t, cam.Pitch)

	// The first sample after a reset is discarded again.
	cam.Update(0)
	assert.Equal(t, -90.0, cam.Yaw)
}
