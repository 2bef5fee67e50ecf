package plume

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlotMapAllocateAndResolve(t *testing.T) {
	m := NewSlotMap()

	h0 := m.Allocate(0)
	h1 := m.Allocate(1)
	assert.NotEqual(t, h0, h1)
	assert.Equal(t, 0, m.Slot(h0))
	assert.Equal(t, 1, m.Slot(h1))

	m.SetSlot(h0, 5)
	assert.Equal(t, 5, m.Slot(h0))
}

func TestSlotMapReusesReleasedHandles(t *testing.T) {
	m := NewSlotMap()

	h0 := m.Allocate(0)
	m.Allocate(1)
	m.Release(h0)
	assert.Equal(t, -1, m.Slot(h0))

	reused := m.Allocate(7)
	assert.Equal(t, h0, reused)
	assert.Equal(t, 7, m.Slot(reused))
}
