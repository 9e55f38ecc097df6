package router

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metrica-go/metrica"
	"github.com/metrica-go/metrica/internal/bridge"
	"github.com/metrica-go/metrica/internal/handlers"
	"github.com/metrica-go/metrica/internal/linking"
	"github.com/metrica-go/metrica/internal/models"
	"github.com/metrica-go/metrica/internal/ws"
)

type fixedIdentifiers models.StartupParams

func (f fixedIdentifiers) Identifiers() (models.StartupParams, error) {
	return models.StartupParams(f), nil
}

type fixture struct {
	rec   *bridge.Recorder
	links *linking.Source
	hub   *ws.Hub
	srv   *httptest.Server
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := slog.New(slog.DiscardHandler)

	hub := ws.NewHub(logger)
	rec := bridge.NewRecorder()
	rec.LibraryVersion = "7.2.0"
	rec.LibraryAPILevel = 42
	rec.OnCall = func(c bridge.Call) {
		data, err := json.Marshal(c)
		if err == nil {
			hub.Broadcast(handlers.CallsTopic, data)
		}
	}
	links := linking.NewSource("")

	app, err := metrica.New(rec, metrica.WithLogger(logger), metrica.WithLinker(links))
	require.NoError(t, err)

	ids := fixedIdentifiers{DeviceID: "dev-1", UUID: "uuid-1"}
	h := handlers.New(app, rec, links, ids, hub, logger)
	srv := httptest.NewServer(New(h))
	t.Cleanup(srv.Close)

	return &fixture{rec: rec, links: links, hub: hub, srv: srv}
}

func (f *fixture) post(t *testing.T, path string, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(f.srv.URL+path, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func (f *fixture) get(t *testing.T, path string) *http.Response {
	t.Helper()
	resp, err := http.Get(f.srv.URL + path)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestIndex(t *testing.T) {
	f := newFixture(t)

	resp := f.get(t, "/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var buf bytes.Buffer
	_, err := buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "<title>metrica inspector</title>")
	assert.Contains(t, buf.String(), "/ws/calls")
}

func TestReportEventIsRecorded(t *testing.T) {
	f := newFixture(t)

	resp := f.post(t, "/api/events", `{"name":"purchase","attributes":{"sku":"a-1"}}`)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	calls := f.rec.Calls("reportEvent")
	require.Len(t, calls, 1)
	assert.Equal(t, "purchase", calls[0].Args[0])
	assert.JSONEq(t, `{"sku":"a-1"}`, calls[0].Args[1].(string))
}

func TestReportEventRejectsMissingName(t *testing.T) {
	f := newFixture(t)

	resp := f.post(t, "/api/events", `{"attributes":{}}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, f.rec.Count("reportEvent"))
}

func TestReportEventBridgeFailure(t *testing.T) {
	f := newFixture(t)
	f.rec.Fail("reportEvent", assert.AnError)

	resp := f.post(t, "/api/events", `{"name":"x"}`)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestCallsSince(t *testing.T) {
	f := newFixture(t)
	f.rec.PauseSession()
	f.rec.ResumeSession()

	resp := f.get(t, "/api/calls?since=1")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var calls []bridge.Call
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&calls))
	require.Len(t, calls, 1)
	assert.Equal(t, "resumeSession", calls[0].Method)

	last := f.get(t, "/api/calls?since=18446744073709551615")
	var none []bridge.Call
	require.NoError(t, json.NewDecoder(last.Body).Decode(&none))
	assert.Empty(t, none)

	bad := f.get(t, "/api/calls?since=abc")
	assert.Equal(t, http.StatusBadRequest, bad.StatusCode)
}

func TestCallsEmptyIsArray(t *testing.T) {
	f := newFixture(t)

	resp := f.get(t, "/api/calls")
	var buf bytes.Buffer
	_, err := buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, buf.String())
}

func TestOpenURLReachesListeners(t *testing.T) {
	f := newFixture(t)
	got := make(chan string, 1)
	f.links.Subscribe(func(url string) { got <- url })

	resp := f.post(t, "/api/open", `{"url":"app://promo"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]int
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 1, body["listeners"])
	assert.Equal(t, "app://promo", <-got)

	bad := f.post(t, "/api/open", `{}`)
	assert.Equal(t, http.StatusBadRequest, bad.StatusCode)
}

func TestQR(t *testing.T) {
	f := newFixture(t)

	resp := f.get(t, "/api/qr?url=app%3A%2F%2Fpromo")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))

	var buf bytes.Buffer
	_, err := buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))

	missing := f.get(t, "/api/qr")
	assert.Equal(t, http.StatusBadRequest, missing.StatusCode)
}

func TestIdentifiers(t *testing.T) {
	f := newFixture(t)

	resp := f.get(t, "/api/identifiers")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, map[string]string{
		models.DeviceIDKey: "dev-1",
		models.UUIDKey:     "uuid-1",
	}, got)
}

func TestCallsStream(t *testing.T) {
	f := newFixture(t)

	url := "ws" + strings.TrimPrefix(f.srv.URL, "http") + "/ws/calls"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool {
		return f.hub.Count(handlers.CallsTopic) == 1
	}, time.Second, 10*time.Millisecond)

	require.NoError(t, f.rec.SendEventsBuffer())

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)

	var c bridge.Call
	require.NoError(t, json.Unmarshal(msg, &c))
	assert.Equal(t, "sendEventsBuffer", c.Method)
	assert.Equal(t, uint64(1), c.Seq)
}

func TestLibraryIsCached(t *testing.T) {
	f := newFixture(t)

	for i := 0; i < 2; i++ {
		resp := f.get(t, "/api/library")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var info map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&info))
		assert.Equal(t, "7.2.0", info["version"])
		assert.Equal(t, float64(42), info["apiLevel"])
	}
	assert.Equal(t, 1, f.rec.Count("getLibraryVersion"))
}
