package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelection_Sync(t *testing.T) {
	var s Selection

	assert.Equal(t, "", s.Sync(nil))
	assert.Equal(t, "a", s.Sync([]string{"a", "b"}))
	assert.False(t, s.Explicit())

	// current default still offered
	assert.Equal(t, "a", s.Sync([]string{"b", "a"}))

	// current default withdrawn
	assert.Equal(t, "b", s.Sync([]string{"b"}))

	s.Choose("z")
	assert.True(t, s.Explicit())
	assert.Equal(t, "z", s.Sync([]string{"b"}))

	s.Reset()
	assert.Equal(t, "", s.Value())
	assert.Equal(t, "b", s.Sync([]string{"b"}))
}

func TestDialog_Creating(t *testing.T) {
	editing := 1
	assert.False(t, Dialog[int]{}.Creating())
	assert.True(t, Dialog[int]{Open: true}.Creating())
	assert.False(t, Dialog[int]{Open: true, Editing: &editing}.Creating())
}
