package dsu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSingletons(t *testing.T) {
	d := New(4)
	for i := 0; i < 4; i++ {
		root, size := d.Find(i)
		assert.Equal(t, i, root)
		assert.Equal(t, 1, size)
	}
}

func TestUniteMergesSmallerIntoLarger(t *testing.T) {
	d := New(5)
	assert.True(t, d.Unite(0, 1))
	assert.True(t, d.Unite(2, 3))
	assert.True(t, d.Unite(0, 2)) // {0,1} size 2 unites with {2,3} size 2

	root01 := d.Root(0)
	assert.Equal(t, root01, d.Root(1))
	assert.Equal(t, root01, d.Root(2))
	assert.Equal(t, root01, d.Root(3))
	assert.Equal(t, 4, d.Size(0))

	assert.NotEqual(t, root01, d.Root(4))
	assert.Equal(t, 1, d.Size(4))
}

func TestUniteNoOpWhenAlreadyConnected(t *testing.T) {
	d := New(2)
	assert.True(t, d.Unite(0, 1))
	assert.False(t, d.Unite(0, 1))
	assert.True(t, d.Connected(0, 1))
}

func TestConnected(t *testing.T) {
	d := New(3)
	assert.False(t, d.Connected(0, 1))
	d.Unite(0, 1)
	assert.True(t, d.Connected(0, 1))
	assert.False(t, d.Connected(0, 2))
}
