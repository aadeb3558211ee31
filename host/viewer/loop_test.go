package viewer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoopRendersOncePerFrame(t *testing.T) {
	backend := newFakeBackend()
	composer := &fakeComposer{}
	loop := NewLoop(backend, composer, discardLogger)

	loop.Start()
	assert.Equal(t, 0, composer.renders)
	require.Len(t, backend.frames, 1)

	for i := 0; i < 10; i++ {
		backend.step()
		assert.Len(t, backend.frames, 1)
	}
	assert.Equal(t, 10, composer.renders)
	assert.Equal(t, uint64(10), loop.Frames())
}

func TestLoopSurvivesRenderPanic(t *testing.T) {
	backend := newFakeBackend()
	composer := &fakeComposer{panicAt: map[int]bool{2: true}}
	loop := NewLoop(backend, composer, discardLogger)

	loop.Start()
	for i := 0; i < 4; i++ {
		assert.NotPanics(t, backend.step)
	}

	assert.Equal(t, 4, composer.renders)
	assert.Equal(t, uint64(3), loop.Frames())
	assert.Equal(t, uint64(1), loop.Failures())
	assert.Len(t, backend.frames, 1)
}
