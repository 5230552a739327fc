// Package sequence recognises a fixed run of keys inside a key event stream.
package sequence

// Equal reports whether a and b hold the same keys in the same order.
// Slices of different lengths are never equal.
func Equal[K comparable](a, b []K) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Detector keeps the last len(target) observed keys and fires its action
// whenever they match target exactly. The history slides by one key per
// event, so overlapping and back-to-back runs are all recognised.
type Detector[K comparable] struct {
	target  []K
	history []K
	action  func()
}

// NewDetector creates a detector for target. action may be nil.
func NewDetector[K comparable](target []K, action func()) *Detector[K] {
	t := make([]K, len(target))
	copy(t, target)
	return &Detector[K]{
		target:  t,
		history: make([]K, 0, len(t)),
		action:  action,
	}
}

// Observe records a key-up event and reports whether it completed the target.
func (d *Detector[K]) Observe(key K) bool {
	if len(d.target) == 0 {
		return false
	}

	d.history = append(d.history, key)
	if len(d.history) < len(d.target) {
		return false
	}

	matched := Equal(d.history, d.target)

	// Drop the oldest key; shifting in place keeps the backing array.
	// The action runs afterwards so it may Reset the detector.
	copy(d.history, d.history[1:])
	d.history = d.history[:len(d.history)-1]

	if matched && d.action != nil {
		d.action()
	}
	return matched
}

// Len returns the number of keys currently held.
func (d *Detector[K]) Len() int {
	return len(d.history)
}

// Cap returns the history capacity, which is the target length.
func (d *Detector[K]) Cap() int {
	return len(d.target)
}

// Reset forgets all observed keys.
func (d *Detector[K]) Reset() {
	d.history = d.history[:0]
}
