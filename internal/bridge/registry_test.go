package bridge

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveNotLinked(t *testing.T) {
	Reset()

	b, r, err := Resolve()
	assert.Nil(t, b)
	assert.Nil(t, r)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotLinked))

	var linkErr *LinkError
	require.ErrorAs(t, err, &linkErr)
	assert.Contains(t, err.Error(), "doesn't seem to be linked")
	assert.Contains(t, err.Error(), "rebuilt the app")
}

func TestGetPanicsWithLinkingMessage(t *testing.T) {
	Reset()
	assert.PanicsWithValue(t, (&LinkError{}).Error(), func() {
		Get()
	})
}

func TestRegisterResolve(t *testing.T) {
	t.Cleanup(Reset)

	rec := NewRecorder()
	Register(rec, rec)

	b, r, err := Resolve()
	require.NoError(t, err)
	assert.Same(t, rec, b)
	assert.Same(t, rec, r)
	assert.Same(t, rec, Get())
}
