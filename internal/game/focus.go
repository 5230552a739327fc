package game

// GateDecision is what one tick may do to the camera.
type GateDecision struct {
	UpdateCamera    bool
	RecenterPointer bool
	ResetCamera     bool
}

// FocusGate keeps the camera frozen while the window is not focused. The
// exit check is not gated and never consults it.
type FocusGate struct{}

// Decide returns the camera actions allowed this tick. A held reset key
// resets on every focused tick it is observed.
func (FocusGate) Decide(focused, resetHeld bool) GateDecision {
	if !focused {
		return GateDecision{}
	}
	return GateDecision{
		UpdateCamera:    true,
		RecenterPointer: true,
		ResetCamera:     resetHeld,
	}
}
