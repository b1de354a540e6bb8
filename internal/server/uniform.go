package server

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v5"

	"github.com/samcharles93/gpurand/internal/logger"
	"github.com/samcharles93/gpurand/internal/pipeline"
	"github.com/samcharles93/gpurand/internal/rng"
)

const (
	MIMEOctetStream = "application/octet-stream"

	HeaderRequestID = "X-Gpurand-Request-Id"
	HeaderCount     = "X-Gpurand-Count"
	HeaderVariant   = "X-Gpurand-Variant"

	writeWait = 10 * time.Second
)

// UniformRequest is the body of POST /v1/uniform. Omitted fields take the
// server defaults.
type UniformRequest struct {
	Count   *int64  `json:"count,omitempty"`
	Seed    *uint64 `json:"seed,omitempty"`
	Variant *string `json:"variant,omitempty"`
	Lanes   *int    `json:"lanes,omitempty"`
	// Format is "json" (default) or "binary".
	Format string `json:"format,omitempty"`
}

type UniformResponse struct {
	ID      string    `json:"id"`
	Object  string    `json:"object"`
	Variant string    `json:"variant"`
	Seed    uint64    `json:"seed"`
	Count   int64     `json:"count"`
	Values  []float32 `json:"values"`
}

func (s *Server) handleUniform(c *echo.Context) error {
	var body UniformRequest
	if err := json.NewDecoder(c.Request().Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		return writeBadRequest(c, "invalid JSON body: "+err.Error())
	}
	format := strings.ToLower(body.Format)
	if format == "" && strings.Contains(c.Request().Header.Get(echo.HeaderAccept), MIMEOctetStream) {
		format = "binary"
	}
	if format != "" && format != "json" && format != "binary" {
		return writeBadRequest(c, fmt.Sprintf("unknown format %q (expected json, binary)", body.Format))
	}

	req, err := s.resolve(pipeline.RequestOptions{
		Count:   body.Count,
		Seed:    body.Seed,
		Variant: body.Variant,
		Lanes:   body.Lanes,
	})
	if err != nil {
		return writePipelineError(c, err)
	}

	id := uuid.NewString()
	log := s.log.With("request_id", id)
	ctx := logger.WithContext(c.Request().Context(), log)
	start := time.Now()
	values, err := pipeline.Generate(ctx, s.dev, req)
	if err != nil {
		log.Warn("uniform request failed", "error", err)
		return writePipelineError(c, err)
	}
	log.Info("uniform request", "count", req.Count, "variant", req.Variant, "elapsed", time.Since(start))

	c.Response().Header().Set(HeaderRequestID, id)
	if format == "binary" {
		c.Response().Header().Set(HeaderCount, strconv.FormatInt(req.Count, 10))
		c.Response().Header().Set(HeaderVariant, req.Variant)
		b, err := binary.Append(make([]byte, 0, len(values)*4), binary.LittleEndian, values)
		if err != nil {
			return err
		}
		return c.Blob(http.StatusOK, MIMEOctetStream, b)
	}
	return writeJSON(c, http.StatusOK, UniformResponse{
		ID:      id,
		Object:  "uniform",
		Variant: req.Variant,
		Seed:    req.Seed,
		Count:   req.Count,
		Values:  values,
	})
}

// handleUniformStream runs one request and sends the values as little-endian
// float32 binary frames of at most chunk values each, followed by a normal
// close. A failed run is reported in the close frame.
func (s *Server) handleUniformStream(c *echo.Context) error {
	opts, chunk, err := streamParams(c)
	if err != nil {
		return writeBadRequest(c, err.Error())
	}
	req, err := s.resolve(opts)
	if err != nil {
		return writePipelineError(c, err)
	}

	conn, err := s.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		s.log.Warn("websocket upgrade failed", "error", err)
		return nil
	}
	defer conn.Close()

	id := uuid.NewString()
	log := s.log.With("request_id", id)
	ctx := logger.WithContext(c.Request().Context(), log)

	frames := 0
	runErr := pipeline.Run(ctx, s.dev, req, func(values []float32) error {
		buf := make([]byte, 0, min(chunk, len(values))*4)
		for start := 0; start < len(values); start += chunk {
			end := min(start+chunk, len(values))
			frame, err := binary.Append(buf[:0], binary.LittleEndian, values[start:end])
			if err != nil {
				return err
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
				return fmt.Errorf("write frame: %w", err)
			}
			frames++
		}
		return nil
	})

	code, text := websocket.CloseNormalClosure, id
	if runErr != nil {
		log.Warn("uniform stream failed", "error", runErr)
		code, text = websocket.CloseInternalServerErr, closeText(runErr)
	} else {
		log.Info("uniform stream", "count", req.Count, "frames", frames)
	}
	_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, text), time.Now().Add(writeWait))
	return nil
}

func (s *Server) resolve(opts pipeline.RequestOptions) (pipeline.Request, error) {
	req := pipeline.ResolveRequest(opts, s.cfg.Defaults)
	if err := req.Validate(); err != nil {
		return req, &pipeline.StageError{Stage: pipeline.StageValidate, Err: err}
	}
	if req.Count > s.cfg.MaxCount {
		return req, &pipeline.StageError{
			Stage: pipeline.StageValidate,
			Err:   fmt.Errorf("%w: count %d exceeds the server limit of %d", rng.ErrGeneration, req.Count, s.cfg.MaxCount),
		}
	}
	return req, nil
}

func streamParams(c *echo.Context) (pipeline.RequestOptions, int, error) {
	var opts pipeline.RequestOptions
	if v := c.QueryParam("count"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return opts, 0, fmt.Errorf("invalid count %q", v)
		}
		opts.Count = &n
	}
	if v := c.QueryParam("seed"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return opts, 0, fmt.Errorf("invalid seed %q", v)
		}
		opts.Seed = &n
	}
	if v := c.QueryParam("variant"); v != "" {
		opts.Variant = &v
	}
	if v := c.QueryParam("lanes"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return opts, 0, fmt.Errorf("invalid lanes %q", v)
		}
		opts.Lanes = &n
	}
	chunk := DefaultStreamChunk
	if v := c.QueryParam("chunk"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return opts, 0, fmt.Errorf("invalid chunk %q", v)
		}
		chunk = n
	}
	return opts, chunk, nil
}

// maxCloseReason is the room left for the reason in a control frame.
const maxCloseReason = 123

// closeText fits a diagnostic into a close frame's reason, cutting on a rune
// boundary so the reason stays valid UTF-8.
func closeText(err error) string {
	text := pipeline.Kind(err) + ": " + err.Error()
	if len(text) <= maxCloseReason {
		return text
	}
	cut := maxCloseReason
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}
