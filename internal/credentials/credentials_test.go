package credentials

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

func TestAPIKey(t *testing.T) {
	keyring.MockInit()

	_, err := LoadAPIKey("default")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, StoreAPIKey("default", "key-1"))
	v, err := LoadAPIKey("default")
	require.NoError(t, err)
	assert.Equal(t, "key-1", v)

	DeleteAPIKey("default")
	_, err = LoadAPIKey("default")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReporterKey(t *testing.T) {
	keyring.MockInit()

	require.NoError(t, StoreReporterKey("default", "ads", "key-ads"))
	v, err := LoadReporterKey("default", "ads")
	require.NoError(t, err)
	assert.Equal(t, "key-ads", v)

	_, err = LoadReporterKey("other", "ads")
	assert.ErrorIs(t, err, ErrNotFound)

	DeleteReporterKey("default", "ads")
	_, err = LoadReporterKey("default", "ads")
	assert.ErrorIs(t, err, ErrNotFound)
}
