package profiling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTrackAccumulates(t *testing.T) {
	ResetFrame()
	Track("scene.Update")()
	Track("scene.Update")()

	snap := Snapshot()
	assert.Contains(t, snap, "scene.Update")
	assert.Len(t, snap, 1)

	ResetFrame()
	assert.Empty(t, Snapshot())
}

func TestTopNOrdering(t *testing.T) {
	ResetFrame()
	mu.Lock()
	totals["scene.Render"] = 4200 * time.Microsecond
	totals["particles.Update"] = 300 * time.Microsecond
	totals["glfw.PollEvents"] = 1500 * time.Microsecond
	mu.Unlock()
	t.Cleanup(ResetFrame)

	assert.Equal(t, "scene.Render:4.2ms, glfw.PollEvents:1.5ms", TopN(2))
	assert.Equal(t, "scene.Render:4.2ms, glfw.PollEvents:1.5ms, particles.Update:0.3ms", TopN(10))
	assert.Empty(t, TopN(0))
}
