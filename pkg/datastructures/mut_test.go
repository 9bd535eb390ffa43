package datastructures

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMut_SetGet(t *testing.T) {
	assert := assert.New(t)
	m := NewMut("a")
	assert.Equal("a", m.GetValue())
	m.SetValue("b")
	assert.Equal("b", m.GetValue())
}

func TestMut_Tap(t *testing.T) {
	assert := assert.New(t)
	m := NewMut(5)
	same := m.Tap(func(i *int) { *i = 10 }).Tap(func(i *int) { *i++ })
	assert.Same(m, same)
	assert.Equal(11, m.GetValue())
}

func TestMut_TapPanicKeepsOldValue(t *testing.T) {
	assert := assert.New(t)
	m := NewMut(5)
	assert.PanicsWithValue("boom", func() {
		m.Tap(func(i *int) {
			*i = 10
			panic("boom")
		})
	})
	// the mutated copy never made it back into the box
	assert.Equal(5, m.GetValue())
}
