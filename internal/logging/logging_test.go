package logging

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newBuffered(prefix string, debug bool) (*DefaultLogger, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	l := New(prefix, debug)
	l.out = log.New(&out, "", 0)
	l.err = log.New(&errOut, "", 0)
	return l, &out, &errOut
}

func TestLevelsRouteToStreams(t *testing.T) {
	l, out, errOut := newBuffered("scene", false)

	l.Infof("loaded %d assets", 4)
	l.Errorf("frame dropped")

	assert.Equal(t, "[scene] INFO: loaded 4 assets\n", out.String())
	assert.Equal(t, "[scene] ERROR: frame dropped\n", errOut.String())
}

func TestDebugGated(t *testing.T) {
	l, out, _ := newBuffered("", false)

	l.Debugf("hidden")
	assert.Empty(t, out.String())

	l.SetDebug(true)
	l.Debugf("shown")
	assert.Equal(t, "DEBUG: shown\n", out.String())
}

func TestNopLogger(t *testing.T) {
	l := NewNopLogger()
	l.SetDebug(true)
	assert.False(t, l.DebugEnabled())
}
