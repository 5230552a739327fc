package game

import (
	"campfire/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// glfwWindow adapts a glfw window to the scene and camera interfaces.
type glfwWindow struct {
	w *glfw.Window
}

func (g *glfwWindow) Focused() bool                 { return g.w.GetAttrib(glfw.Focused) == glfw.True }
func (g *glfwWindow) Size() (int, int)              { return g.w.GetSize() }
func (g *glfwWindow) CursorPos() (float64, float64) { return g.w.GetCursorPos() }
func (g *glfwWindow) SetCursorPos(x, y float64)     { g.w.SetCursorPos(x, y) }
func (g *glfwWindow) ShouldClose() bool             { return g.w.ShouldClose() }
func (g *glfwWindow) SetShouldClose(v bool)         { g.w.SetShouldClose(v) }
func (g *glfwWindow) SwapBuffers()                  { g.w.SwapBuffers() }

// installCallbacks routes window events. Held-key state is updated
// immediately; releases, resizes and focus changes are queued for the next
// Dispatch.
func installCallbacks(window *glfw.Window, im *input.InputManager, events *input.Queue) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleKeyEvent(key, action)
		if action == glfw.Release {
			events.Push(input.KeyUp(key))
		}
	})

	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		events.Push(input.Resize(width, height))
	})

	window.SetFocusCallback(func(w *glfw.Window, focused bool) {
		if !focused {
			// Releases that happen elsewhere never reach us.
			im.ReleaseAll()
		}
		events.Push(input.Focus(focused))
	})
}
