package game

import (
	"campfire/internal/logging"
	"campfire/internal/sequence"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// KonamiCode is matched against key releases.
var KonamiCode = []glfw.Key{
	glfw.KeyUp, glfw.KeyUp,
	glfw.KeyDown, glfw.KeyDown,
	glfw.KeyLeft, glfw.KeyRight,
	glfw.KeyLeft, glfw.KeyRight,
	glfw.KeyB, glfw.KeyA,
}

// NewKonamiDetector returns a detector that logs each completed code.
func NewKonamiDetector(log logging.Logger) *sequence.Detector[glfw.Key] {
	return sequence.NewDetector(KonamiCode, func() {
		log.Infof("Konami code")
	})
}
