package server

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubescan"
	"github.com/SeamusWaldron/cubescan/internal/classify"
	"github.com/SeamusWaldron/cubescan/internal/colorspace"
	"github.com/SeamusWaldron/cubescan/internal/recorder"
	"github.com/SeamusWaldron/cubescan/internal/storage"
)

func newTestServer(t *testing.T, initial cubescan.State) *httptest.Server {
	t.Helper()
	dir := t.TempDir()

	db, err := storage.Open(filepath.Join(dir, "cubescan.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	logger := log.New(io.Discard)
	session := recorder.NewSession(db, nil, logger)
	_, err = session.Start("", initial)
	require.NoError(t, err)

	srv := httptest.NewServer(New(session, cubescan.NewScanner(), 70, logger).Routes())
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, method, url, contentType string, body io.Reader) (*http.Response, map[string]any) {
	t.Helper()
	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp, out
}

func pngFrame(t *testing.T, c colorspace.RGB) *bytes.Buffer {
	t.Helper()
	rgb := color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
	img := image.NewRGBA(image.Rect(0, 0, 60, 60))
	for y := 0; y < 60; y++ {
		for x := 0; x < 60; x++ {
			img.Set(x, y, rgb)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return &buf
}

// hugePNGHeader returns a PNG holding only an IHDR chunk that declares a
// 20000x20000 greyscale image.
func hugePNGHeader() []byte {
	chunk := []byte("IHDR")
	chunk = binary.BigEndian.AppendUint32(chunk, 20000)
	chunk = binary.BigEndian.AppendUint32(chunk, 20000)
	chunk = append(chunk, 8, 0, 0, 0, 0)

	out := []byte("\x89PNG\r\n\x1a\n")
	out = binary.BigEndian.AppendUint32(out, uint32(len(chunk)-4))
	out = append(out, chunk...)
	return binary.BigEndian.AppendUint32(out, crc32.ChecksumIEEE(chunk))
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t, cubescan.NewState())
	resp, body := do(t, http.MethodGet, srv.URL+"/healthz", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
}

func TestMovesAndUndo(t *testing.T) {
	srv := newTestServer(t, cubescan.Solved())

	resp, body := do(t, http.MethodPost, srv.URL+"/moves", "application/json",
		strings.NewReader(`{"moves":"R U R' U'"}`))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, false, body["solved"])
	assert.Equal(t, "R U R' U'", body["history"])

	resp, body = do(t, http.MethodPost, srv.URL+"/undo", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "R U R'", body["history"])

	resp, body = do(t, http.MethodGet, srv.URL+"/moves", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "R U R'", body["moves"])
}

func TestMoves_Errors(t *testing.T) {
	srv := newTestServer(t, cubescan.NewState())

	resp, body := do(t, http.MethodPost, srv.URL+"/moves", "application/json",
		strings.NewReader(`{"moves":"R X"}`))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body["error"], "X")

	resp, _ = do(t, http.MethodPost, srv.URL+"/moves", "application/json",
		strings.NewReader(`{"moves":"R"}`))
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, _ = do(t, http.MethodPost, srv.URL+"/undo", "", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestPutAndGetState(t *testing.T) {
	srv := newTestServer(t, cubescan.NewState())

	layout, err := json.Marshal(cubescan.Solved())
	require.NoError(t, err)

	resp, body := do(t, http.MethodPut, srv.URL+"/state", "application/json", bytes.NewReader(layout))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["complete"])
	assert.Equal(t, true, body["solved"])

	resp, body = do(t, http.MethodGet, srv.URL+"/state", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	state := body["state"].(map[string]any)
	assert.Len(t, state, 6)
	assert.Equal(t, "green", state["front"].([]any)[1].([]any)[1])

	resp, _ = do(t, http.MethodPut, srv.URL+"/state", "application/json",
		strings.NewReader(`{"front":[["pink"]]}`))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCapture(t *testing.T) {
	srv := newTestServer(t, cubescan.NewState())

	resp, body := do(t, http.MethodPost, srv.URL+"/captures?face=0", "image/png", pngFrame(t, classify.Canonical(cubescan.Green)))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "front", body["face"])
	assert.Equal(t, true, body["accepted"])
	assert.GreaterOrEqual(t, body["score"].(float64), 70.0)

	_, body = do(t, http.MethodGet, srv.URL+"/state", "", nil)
	state := body["state"].(map[string]any)
	assert.Contains(t, state, "front")
}

func TestCapture_RejectedBelowMinScore(t *testing.T) {
	srv := newTestServer(t, cubescan.NewState())

	dark := pngFrame(t, colorspace.RGB{R: 10, G: 10, B: 10})
	resp, body := do(t, http.MethodPost, srv.URL+"/captures?face=1", "image/png", dark)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, false, body["accepted"])
	assert.Equal(t, 0.0, body["score"])

	_, body = do(t, http.MethodGet, srv.URL+"/state", "", nil)
	assert.Empty(t, body["state"])

	forced := pngFrame(t, colorspace.RGB{R: 10, G: 10, B: 10})
	resp, body = do(t, http.MethodPost, srv.URL+"/captures?face=1&force=true", "image/png", forced)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "back", body["face"])
}

func TestCapture_Errors(t *testing.T) {
	srv := newTestServer(t, cubescan.NewState())

	resp, _ := do(t, http.MethodPost, srv.URL+"/captures?face=9", "image/png", pngFrame(t, classify.Canonical(cubescan.Red)))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = do(t, http.MethodPost, srv.URL+"/captures", "image/png", pngFrame(t, classify.Canonical(cubescan.Red)))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = do(t, http.MethodPost, srv.URL+"/captures?face=0", "image/png", strings.NewReader("junk"))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body := do(t, http.MethodPost, srv.URL+"/captures?face=0", "image/png", bytes.NewReader(hugePNGHeader()))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body["error"], "too large")
}
