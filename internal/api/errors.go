package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/MJE43/lotus-sim-go/internal/simerr"
)

// EngineError is the JSON body of every error response.
type EngineError struct {
	Type      string         `json:"type"`
	Message   string         `json:"message"`
	Context   map[string]any `json:"context,omitempty"`
	RequestID string         `json:"request_id,omitempty"`
	Timestamp string         `json:"timestamp,omitempty"`
}

func (e EngineError) Error() string {
	return e.Message
}

// ErrorBuilder helps construct structured errors with context
type ErrorBuilder struct {
	errType   string
	message   string
	context   map[string]any
	requestID string
}

func NewError(errType, message string) *ErrorBuilder {
	return &ErrorBuilder{
		errType: errType,
		message: message,
		context: make(map[string]any),
	}
}

func (eb *ErrorBuilder) WithContext(key string, value any) *ErrorBuilder {
	eb.context[key] = value
	return eb
}

func (eb *ErrorBuilder) WithRequestID(requestID string) *ErrorBuilder {
	eb.requestID = requestID
	return eb
}

func (eb *ErrorBuilder) Build() EngineError {
	return EngineError{
		Type:      eb.errType,
		Message:   eb.message,
		Context:   eb.context,
		RequestID: eb.requestID,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// statusFor maps an error kind to its HTTP status.
func statusFor(kind simerr.Kind) int {
	switch kind {
	case simerr.KindNotFound:
		return http.StatusNotFound
	case simerr.KindInvalidRequest:
		return http.StatusBadRequest
	case simerr.KindUnsupportedCategory:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// ErrorHandler writes and logs error responses.
type ErrorHandler struct {
	log *zap.Logger
}

func NewErrorHandler(log *zap.Logger) *ErrorHandler {
	return &ErrorHandler{log: log}
}

// HandleError writes err with the status its kind maps to. Metadata carried
// by a *simerr.Error becomes the response context.
func (eh *ErrorHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	kind := simerr.KindOf(err)
	status := statusFor(kind)

	eb := NewError(string(kind), err.Error()).
		WithRequestID(middleware.GetReqID(r.Context())).
		WithContext("path", r.URL.Path)
	var se *simerr.Error
	if errors.As(err, &se) {
		for k, v := range se.Metadata {
			eb.WithContext(k, v)
		}
	}
	engineErr := eb.Build()

	fields := []zap.Field{
		zap.String("type", engineErr.Type),
		zap.Int("status", status),
		zap.String("request_id", engineErr.RequestID),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	}
	if status >= http.StatusInternalServerError {
		eh.log.Error("request failed", fields...)
	} else {
		eh.log.Warn("request rejected", fields...)
	}
	eh.writeErrorResponse(w, status, engineErr)
}

func (eh *ErrorHandler) writeErrorResponse(w http.ResponseWriter, status int, engineErr EngineError) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Error-Type", engineErr.Type)
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(engineErr); err != nil {
		eh.log.Error("write error response", zap.Error(err))
	}
}

// RecoveryHandler turns a panic into a 500 response.
func (eh *ErrorHandler) RecoveryHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rvr := recover(); rvr != nil {
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}
				requestID := middleware.GetReqID(r.Context())
				eh.log.Error("panic recovered",
					zap.String("request_id", requestID),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Any("panic", rvr),
					zap.Stack("stack"))

				engineErr := NewError(string(simerr.KindInternal), "Internal server error").
					WithRequestID(requestID).
					WithContext("panic", fmt.Sprintf("%v", rvr)).
					WithContext("path", r.URL.Path).
					Build()
				eh.writeErrorResponse(w, http.StatusInternalServerError, engineErr)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
