package config

import "sync"

// LoopSettings holds window and frame loop configuration
type LoopSettings struct {
	mu               sync.RWMutex
	targetFPS        int
	windowWidth      int
	windowHeight     int
	mouseSensitivity float64
	moveSpeed        float32
	debug            bool
}

var globalLoopSettings = &LoopSettings{
	targetFPS:        60,
	windowWidth:      1024,
	windowHeight:     768,
	mouseSensitivity: 0.1,
	moveSpeed:        5.0,
}

// TargetFPS returns the fixed tick rate of the frame loop
func TargetFPS() int {
	globalLoopSettings.mu.RLock()
	defer globalLoopSettings.mu.RUnlock()
	return globalLoopSettings.targetFPS
}

// SetTargetFPS sets the tick rate, clamped to 1..240
func SetTargetFPS(fps int) {
	globalLoopSettings.mu.Lock()
	defer globalLoopSettings.mu.Unlock()

	if fps < 1 {
		fps = 1
	}
	if fps > 240 {
		fps = 240
	}
	globalLoopSettings.targetFPS = fps
}

// WindowSize returns the initial window size in screen coordinates
func WindowSize() (int, int) {
	globalLoopSettings.mu.RLock()
	defer globalLoopSettings.mu.RUnlock()
	return globalLoopSettings.windowWidth, globalLoopSettings.windowHeight
}

// SetWindowSize sets the initial window size; non-positive values are ignored
func SetWindowSize(width, height int) {
	globalLoopSettings.mu.Lock()
	defer globalLoopSettings.mu.Unlock()
	if width > 0 {
		globalLoopSettings.windowWidth = width
	}
	if height > 0 {
		globalLoopSettings.windowHeight = height
	}
}

// MouseSensitivity returns degrees of rotation per pixel of pointer travel
func MouseSensitivity() float64 {
	globalLoopSettings.mu.RLock()
	defer globalLoopSettings.mu.RUnlock()
	return globalLoopSettings.mouseSensitivity
}

func SetMouseSensitivity(s float64) {
	globalLoopSettings.mu.Lock()
	defer globalLoopSettings.mu.Unlock()
	if s <= 0 {
		return
	}
	globalLoopSettings.mouseSensitivity = s
}

// MoveSpeed returns camera speed in world units per second
func MoveSpeed() float32 {
	globalLoopSettings.mu.RLock()
	defer globalLoopSettings.mu.RUnlock()
	return globalLoopSettings.moveSpeed
}

func SetMoveSpeed(speed float32) {
	globalLoopSettings.mu.Lock()
	defer globalLoopSettings.mu.Unlock()
	if speed <= 0 {
		return
	}
	globalLoopSettings.moveSpeed = speed
}

// Debug returns whether debug logging is enabled
func Debug() bool {
	globalLoopSettings.mu.RLock()
	defer globalLoopSettings.mu.RUnlock()
	return globalLoopSettings.debug
}

func SetDebug(enabled bool) {
	globalLoopSettings.mu.Lock()
	defer globalLoopSettings.mu.Unlock()
	globalLoopSettings.debug = enabled
}
