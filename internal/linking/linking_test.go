package linking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceInitialURL(t *testing.T) {
	s := NewSource("app://promo/42")

	u, err := s.InitialURL(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "app://promo/42", u)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.InitialURL(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSourceOpenFansOut(t *testing.T) {
	s := NewSource("")
	var a, b []string
	s.Subscribe(func(u string) { a = append(a, u) })
	s.Subscribe(func(u string) { b = append(b, u) })

	assert.Equal(t, 2, s.Open("app://one"))
	assert.Equal(t, 2, s.Open("app://two"))
	assert.Equal(t, []string{"app://one", "app://two"}, a)
	assert.Equal(t, a, b)
}

func TestNone(t *testing.T) {
	var l Linker = None{}
	u, err := l.InitialURL(context.Background())
	require.NoError(t, err)
	assert.Empty(t, u)
	l.Subscribe(func(string) { t.Fatal("unexpected event") })
}
