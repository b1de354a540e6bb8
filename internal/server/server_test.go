package server

import (
	"encoding/binary"
	"math"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v5"

	"github.com/samcharles93/gpurand/internal/device"
	"github.com/samcharles93/gpurand/internal/logger"
	"github.com/samcharles93/gpurand/internal/pipeline"
)

func newTestDevice(t *testing.T) *device.Device {
	t.Helper()
	dev, err := device.Provision(device.Config{
		Devices:         []device.Spec{{Name: "test", MemoryBytes: 16 << 20, ComputeUnits: 2}},
		HostMemoryBytes: 16 << 20,
	}, 0)
	if err != nil {
		t.Fatalf("provision: %v", err)
	}
	return dev
}

func newTestEcho(t *testing.T, cfg Config) (*echo.Echo, *device.Device) {
	t.Helper()
	dev := newTestDevice(t)
	e := echo.New()
	New(dev, cfg, logger.Nop()).Register(e)
	return e, dev
}

func doJSON(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorBody {
	t.Helper()
	var body struct {
		Error ErrorBody `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body %q: %v", rec.Body.String(), err)
	}
	return body.Error
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
}

func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("status %d, want %d: %s", rec.Code, want, rec.Body.String())
	}
}

func assertReleased(t *testing.T, dev *device.Device) {
	t.Helper()
	if usage := dev.Arena().Usage(); usage != (device.Usage{}) {
		t.Fatalf("buffers still outstanding: %+v", usage)
	}
}

func TestHealthz(t *testing.T) {
	t.Parallel()
	e, _ := newTestEcho(t, Config{})
	rec := doJSON(t, e, http.MethodGet, "/healthz", "")
	expectStatus(t, rec, http.StatusOK)
	for _, want := range []string{`"status":"ok"`, `"outstanding_buffers":0`} {
		if !strings.Contains(rec.Body.String(), want) {
			t.Fatalf("body lacks %s: %s", want, rec.Body.String())
		}
	}
}

func TestVariants(t *testing.T) {
	t.Parallel()
	e, _ := newTestEcho(t, Config{})
	rec := doJSON(t, e, http.MethodGet, "/v1/variants", "")
	expectStatus(t, rec, http.StatusOK)

	var body struct {
		Data []VariantInfo `json:"data"`
	}
	decodeBody(t, rec, &body)
	if len(body.Data) != 2 || body.Data[0].Name != "mt19937" || body.Data[1].Name != "mt2203" {
		t.Fatalf("unexpected variants: %+v", body.Data)
	}
	if !body.Data[1].Default || body.Data[0].Default {
		t.Fatalf("mt2203 should be the only default: %+v", body.Data)
	}
}

func TestVariantsDefaultIsNormalized(t *testing.T) {
	t.Parallel()
	defaults := pipeline.DefaultSettings()
	defaults.Variant = " MT19937 "
	e, _ := newTestEcho(t, Config{Defaults: defaults})

	rec := doJSON(t, e, http.MethodGet, "/v1/variants", "")
	expectStatus(t, rec, http.StatusOK)
	var body struct {
		Data []VariantInfo `json:"data"`
	}
	decodeBody(t, rec, &body)
	if len(body.Data) != 2 || !body.Data[0].Default || body.Data[1].Default {
		t.Fatalf("mt19937 should be flagged default: %+v", body.Data)
	}

	rec = doJSON(t, e, http.MethodPost, "/v1/uniform", `{"count":3}`)
	expectStatus(t, rec, http.StatusOK)
	var resp UniformResponse
	decodeBody(t, rec, &resp)
	if resp.Variant != "mt19937" {
		t.Fatalf("default variant reported as %q", resp.Variant)
	}
}

func TestDevices(t *testing.T) {
	t.Parallel()
	e, _ := newTestEcho(t, Config{})
	rec := doJSON(t, e, http.MethodGet, "/v1/devices", "")
	expectStatus(t, rec, http.StatusOK)

	var body struct {
		Data []DeviceInfo `json:"data"`
	}
	decodeBody(t, rec, &body)
	if len(body.Data) != 1 || body.Data[0].Name != "test" || !body.Data[0].Selected {
		t.Fatalf("unexpected devices: %+v", body.Data)
	}
}

func TestUniformJSONIsDeterministic(t *testing.T) {
	t.Parallel()
	e, dev := newTestEcho(t, Config{})

	var first, second UniformResponse
	rec := doJSON(t, e, http.MethodPost, "/v1/uniform", `{"count":10,"seed":777}`)
	expectStatus(t, rec, http.StatusOK)
	decodeBody(t, rec, &first)

	rec = doJSON(t, e, http.MethodPost, "/v1/uniform", `{"count":10,"seed":777}`)
	expectStatus(t, rec, http.StatusOK)
	decodeBody(t, rec, &second)

	if first.ID == "" || first.ID == second.ID {
		t.Fatalf("request ids should be set and distinct: %q %q", first.ID, second.ID)
	}
	if first.Count != 10 || first.Variant != "mt2203" || len(first.Values) != 10 {
		t.Fatalf("unexpected response: %+v", first)
	}
	if !slices.Equal(first.Values, second.Values) {
		t.Fatal("same seed gave different values")
	}
	for i, v := range first.Values {
		if v < 0 || v >= 1 {
			t.Fatalf("value %d out of range: %v", i, v)
		}
	}
	assertReleased(t, dev)
}

func TestUniformReportsNormalizedVariant(t *testing.T) {
	t.Parallel()
	e, _ := newTestEcho(t, Config{})

	rec := doJSON(t, e, http.MethodPost, "/v1/uniform", `{"count":3,"variant":" MT2203 "}`)
	expectStatus(t, rec, http.StatusOK)
	var body UniformResponse
	decodeBody(t, rec, &body)
	if body.Variant != "mt2203" {
		t.Fatalf("variant reported as %q", body.Variant)
	}

	rec = doJSON(t, e, http.MethodPost, "/v1/uniform", `{"count":3,"variant":"MT19937","format":"binary"}`)
	expectStatus(t, rec, http.StatusOK)
	if got := rec.Header().Get(HeaderVariant); got != "mt19937" {
		t.Fatalf("variant header %q", got)
	}
}

func TestUniformBinaryMatchesJSON(t *testing.T) {
	t.Parallel()
	e, _ := newTestEcho(t, Config{})

	var asJSON UniformResponse
	rec := doJSON(t, e, http.MethodPost, "/v1/uniform", `{"count":32,"seed":9,"variant":"mt19937"}`)
	expectStatus(t, rec, http.StatusOK)
	decodeBody(t, rec, &asJSON)

	rec = doJSON(t, e, http.MethodPost, "/v1/uniform", `{"count":32,"seed":9,"variant":"mt19937","format":"binary"}`)
	expectStatus(t, rec, http.StatusOK)
	if got := rec.Header().Get(echo.HeaderContentType); got != MIMEOctetStream {
		t.Fatalf("content type %q", got)
	}
	if got := rec.Header().Get(HeaderCount); got != "32" {
		t.Fatalf("count header %q", got)
	}
	if !slices.Equal(asJSON.Values, decodeFloats(t, rec.Body.Bytes())) {
		t.Fatal("binary and JSON values differ")
	}
}

func TestUniformUsesDefaults(t *testing.T) {
	t.Parallel()
	defaults := pipeline.DefaultSettings()
	defaults.Count = 5
	e, _ := newTestEcho(t, Config{Defaults: defaults})

	rec := doJSON(t, e, http.MethodPost, "/v1/uniform", "")
	expectStatus(t, rec, http.StatusOK)
	var body UniformResponse
	decodeBody(t, rec, &body)
	if len(body.Values) != 5 || body.Seed != pipeline.DefaultSeed {
		t.Fatalf("defaults not applied: count %d seed %d", len(body.Values), body.Seed)
	}
}

func TestUniformValidation(t *testing.T) {
	t.Parallel()
	e, dev := newTestEcho(t, Config{MaxCount: 1000})

	cases := []struct {
		name string
		body string
		kind string
	}{
		{name: "zero count", body: `{"count":0}`, kind: "GenerationError"},
		{name: "negative count", body: `{"count":-3}`, kind: "GenerationError"},
		{name: "over limit", body: `{"count":1001}`, kind: "GenerationError"},
		{name: "unknown variant", body: `{"count":10,"variant":"xorwow"}`, kind: "UnsupportedVariantError"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doJSON(t, e, http.MethodPost, "/v1/uniform", tc.body)
			expectStatus(t, rec, http.StatusBadRequest)
			body := decodeError(t, rec)
			if body.Kind != tc.kind || body.Stage != pipeline.StageValidate {
				t.Fatalf("got kind %q stage %q, want %q %q", body.Kind, body.Stage, tc.kind, pipeline.StageValidate)
			}
		})
	}

	rec := doJSON(t, e, http.MethodPost, "/v1/uniform", `{"count":`)
	expectStatus(t, rec, http.StatusBadRequest)

	rec = doJSON(t, e, http.MethodPost, "/v1/uniform", `{"count":1,"format":"csv"}`)
	expectStatus(t, rec, http.StatusBadRequest)
	if msg := decodeError(t, rec).Message; !strings.Contains(msg, "unknown format") {
		t.Fatalf("unexpected message %q", msg)
	}

	assertReleased(t, dev)
}

func TestUniformAllocationFailure(t *testing.T) {
	t.Parallel()
	dev, err := device.Provision(device.Config{
		Devices:         []device.Spec{{MemoryBytes: 1 << 10, ComputeUnits: 1}},
		HostMemoryBytes: 1 << 20,
	}, 0)
	if err != nil {
		t.Fatalf("provision: %v", err)
	}
	e := echo.New()
	New(dev, Config{}, logger.Nop()).Register(e)

	rec := doJSON(t, e, http.MethodPost, "/v1/uniform", `{"count":1000}`)
	expectStatus(t, rec, http.StatusInsufficientStorage)
	body := decodeError(t, rec)
	if body.Kind != "AllocationError" || body.Stage != pipeline.StageAllocateBuffers {
		t.Fatalf("unexpected error body: %+v", body)
	}
	assertReleased(t, dev)
}

func TestRateLimit(t *testing.T) {
	t.Parallel()
	e, _ := newTestEcho(t, Config{RequestsPerSecond: 0.001, Burst: 1})

	expectStatus(t, doJSON(t, e, http.MethodPost, "/v1/uniform", `{"count":1}`), http.StatusOK)
	expectStatus(t, doJSON(t, e, http.MethodPost, "/v1/uniform", `{"count":1}`), http.StatusTooManyRequests)

	// Informational routes are not limited.
	expectStatus(t, doJSON(t, e, http.MethodGet, "/healthz", ""), http.StatusOK)
}

func TestUniformStream(t *testing.T) {
	t.Parallel()
	e, dev := newTestEcho(t, Config{})
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	rec := doJSON(t, e, http.MethodPost, "/v1/uniform", `{"count":25,"seed":3}`)
	expectStatus(t, rec, http.StatusOK)
	var want UniformResponse
	decodeBody(t, rec, &want)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/v1/uniform/stream?count=25&seed=3&chunk=10"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	var got []float32
	var sizes []int
	for {
		typ, data, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				t.Fatalf("unexpected close: %v", err)
			}
			break
		}
		if typ != websocket.BinaryMessage {
			t.Fatalf("message type %d, want binary", typ)
		}
		values := decodeFloats(t, data)
		sizes = append(sizes, len(values))
		got = append(got, values...)
	}
	if !slices.Equal(sizes, []int{10, 10, 5}) {
		t.Fatalf("chunk sizes %v", sizes)
	}
	if !slices.Equal(want.Values, got) {
		t.Fatal("streamed values differ from the JSON response")
	}
	assertReleased(t, dev)
}

func TestUniformStreamRejectsBadParams(t *testing.T) {
	t.Parallel()
	e, _ := newTestEcho(t, Config{})
	for _, q := range []string{"count=abc", "seed=-1", "chunk=0", "count=0"} {
		rec := doJSON(t, e, http.MethodGet, "/v1/uniform/stream?"+q, "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: status %d, want 400", q, rec.Code)
		}
	}
}

func TestCloseTextIsBounded(t *testing.T) {
	err := &pipeline.StageError{Stage: pipeline.StageGenerate, Err: pipeline.ErrSequence}
	if text := closeText(err); !strings.HasPrefix(text, "SequenceError: ") {
		t.Fatalf("unexpected close text %q", text)
	}
	long := &pipeline.StageError{Stage: strings.Repeat("x", 200), Err: pipeline.ErrSequence}
	if n := len(closeText(long)); n != maxCloseReason {
		t.Fatalf("close text is %d bytes, want %d", n, maxCloseReason)
	}
}

func TestCloseTextKeepsRunesWhole(t *testing.T) {
	// The unsupported variant diagnostic quotes the caller's name.
	for _, pad := range []string{"", "a"} {
		req := pipeline.Request{Count: 1, Variant: pad + strings.Repeat("é", 100)}
		err := &pipeline.StageError{Stage: pipeline.StageValidate, Err: req.Validate()}
		full := pipeline.Kind(err) + ": " + err.Error()

		text := closeText(err)
		if !utf8.ValidString(text) {
			t.Fatalf("pad %q: close text is not valid UTF-8: %q", pad, text)
		}
		if len(text) > maxCloseReason || len(text) < maxCloseReason-utf8.UTFMax {
			t.Fatalf("pad %q: close text is %d bytes", pad, len(text))
		}
		if !strings.HasPrefix(full, text) {
			t.Fatalf("pad %q: close text is not a prefix of the diagnostic", pad)
		}
	}
}

func decodeFloats(t *testing.T, b []byte) []float32 {
	t.Helper()
	if len(b)%4 != 0 {
		t.Fatalf("payload of %d bytes is not whole float32s", len(b))
	}
	out := make([]float32, len(b)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return out
}
