package bridge

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type startupAnswer struct {
	params string
	reason string
}

func (a *startupAnswer) OnStartupParams(paramsJSON string, reason string) {
	a.params = paramsJSON
	a.reason = reason
}

func TestRecorderRecordsInOrder(t *testing.T) {
	rec := NewRecorder()
	var hooked []string
	rec.OnCall = func(c Call) { hooked = append(hooked, c.Method) }

	require.NoError(t, rec.ReportEvent("purchase", `{"sku":"a"}`))
	require.NoError(t, rec.PauseSession())
	require.NoError(t, rec.ReporterResumeSession("key"))

	calls := rec.Since(0)
	require.Len(t, calls, 3)
	assert.Equal(t, uint64(1), calls[0].Seq)
	assert.Equal(t, []any{"purchase", `{"sku":"a"}`}, calls[0].Args)
	assert.Equal(t, "reporter.resumeSession", calls[2].Method)
	assert.Equal(t, []string{"reportEvent", "pauseSession", "reporter.resumeSession"}, hooked)

	after := rec.Since(2)
	require.Len(t, after, 1)
	assert.Equal(t, uint64(3), after[0].Seq)
}

func TestRecorderSinceLastSequence(t *testing.T) {
	rec := NewRecorder()
	require.NoError(t, rec.SendEventsBuffer())

	assert.Empty(t, rec.Since(math.MaxUint64))
	assert.Len(t, rec.Since(0), 1)
}

func TestRecorderHistoryIsBounded(t *testing.T) {
	rec := NewRecorder()
	rec.History = 2

	for i := 0; i < 5; i++ {
		require.NoError(t, rec.SendEventsBuffer())
	}
	calls := rec.Since(0)
	require.Len(t, calls, 2)
	assert.Equal(t, uint64(4), calls[0].Seq)
	assert.Equal(t, uint64(5), calls[1].Seq)
}

func TestRecorderFail(t *testing.T) {
	rec := NewRecorder()
	boom := errors.New("sdk exploded")
	rec.Fail("reportEvent", boom)

	assert.Same(t, boom, rec.ReportEvent("x", ""))
	assert.NoError(t, rec.PauseSession())
	assert.Equal(t, 1, rec.Count("reportEvent"))

	rec.Fail("reportEvent", nil)
	assert.NoError(t, rec.ReportEvent("x", ""))
}

func TestRecorderStartupParams(t *testing.T) {
	rec := NewRecorder()

	var a startupAnswer
	require.NoError(t, rec.RequestStartupParams(`["appmetrica_uuid"]`, &a))
	assert.Equal(t, "", a.params)
	assert.Equal(t, "UNKNOWN", a.reason)

	rec.StartupParamsJSON = `{"uuid":"u-1"}`
	require.NoError(t, rec.RequestStartupParams(`["appmetrica_uuid"]`, &a))
	assert.Equal(t, `{"uuid":"u-1"}`, a.params)
	assert.Equal(t, "", a.reason)
}

func TestRecorderZeroValueUsable(t *testing.T) {
	var rec Recorder
	require.NoError(t, rec.ClearAppEnvironment())
	assert.Equal(t, 1, rec.Count("clearAppEnvironment"))
}
