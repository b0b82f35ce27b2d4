package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RequestIDHeader carries the id generated for every request.
const RequestIDHeader = "X-Request-Id"

// Err is an error with the http status code it should be reported with.
type Err struct {
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
}

func (e *Err) Error() string {
	return e.Message
}

func NewErrf(statusCode int, format string, args ...any) *Err {
	return &Err{
		Message:    fmt.Sprintf(format, args...),
		StatusCode: statusCode,
	}
}

// HandlerFunc is a typed endpoint implementation.
type HandlerFunc[Req, Resp any] func(ctx context.Context, req *Req) (*Resp, error)

// pathDecoder is implemented by requests that read fields from the url path.
type pathDecoder interface {
	decodePath(r *http.Request) error
}

type requestIDKey struct{}

// RequestID returns the id attached by RegisterFunc, if any.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// RegisterFunc registers h under method and pattern. Requests are decoded from the json body
// and path values, responses and errors are encoded as json.
func RegisterFunc[Req, Resp any](logger *logrus.Logger, mux *http.ServeMux, method, pattern string, h HandlerFunc[Req, Resp]) {
	mux.HandleFunc(method+" "+pattern, func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.NewString()
		ctx := context.WithValue(r.Context(), requestIDKey{}, reqID)
		logger := logger.WithContext(ctx).WithFields(logrus.Fields{
			"request_id": reqID,
			"method":     r.Method,
			"path":       r.URL.Path,
		})
		w.Header().Set(RequestIDHeader, reqID)

		req := new(Req)
		err := decodeRequest(r, req)
		if err != nil {
			logger.WithError(err).Warn("Failed to decode request")
			writeJSON(logger, w, err.StatusCode, err)
			return
		}

		resp, herr := h(ctx, req)
		if herr != nil {
			castedErr := &Err{}
			if !errors.As(herr, &castedErr) {
				logger.WithError(herr).Error("Handler returned an untyped error")
				castedErr = NewErrf(http.StatusInternalServerError, "Internal server error")
			}
			writeJSON(logger, w, castedErr.StatusCode, castedErr)
			return
		}

		logger.Debug("Request served")
		writeJSON(logger, w, http.StatusOK, resp)
	})
}

func decodeRequest(r *http.Request, req any) *Err {
	if r.Body != nil && r.ContentLength != 0 {
		err := json.NewDecoder(r.Body).Decode(req)
		if err != nil && !errors.Is(err, io.EOF) {
			return NewErrf(http.StatusBadRequest, "Invalid request body: %v", err)
		}
	}

	if pd, ok := req.(pathDecoder); ok {
		err := pd.decodePath(r)
		if err != nil {
			castedErr := &Err{}
			if errors.As(err, &castedErr) {
				return castedErr
			}
			return NewErrf(http.StatusBadRequest, "%v", err)
		}
	}

	return nil
}

func writeJSON(logger *logrus.Entry, w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		logger.WithError(err).Error("Failed to encode response")
	}
}

func pathUint32(r *http.Request, name string) (uint32, error) {
	raw := r.PathValue(name)
	if raw == "" {
		return 0, NewErrf(http.StatusBadRequest, "Missing required path value: '%s'", name)
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, NewErrf(http.StatusBadRequest, "Invalid '%s': expected an unsigned 32-bit integer", name)
	}
	return uint32(v), nil
}

func pathIndex(r *http.Request, name string) (int, error) {
	raw := r.PathValue(name)
	if raw == "" {
		return 0, NewErrf(http.StatusBadRequest, "Missing required path value: '%s'", name)
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, NewErrf(http.StatusBadRequest, "Invalid '%s': expected a non-negative integer", name)
	}
	return v, nil
}
