package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"buildledger/internal/backup"
	"buildledger/internal/budget"
	"buildledger/internal/core"
	"buildledger/internal/invoice"
	"buildledger/internal/log"
	"buildledger/internal/middleware/trace"
	"buildledger/internal/storage"
)

// JSONResponseBuilder assembles a JSON response with optional headers.
type JSONResponseBuilder struct {
	statusCode int
	headers    map[string]string
	body       any
}

func NewJSONResponse() *JSONResponseBuilder {
	return &JSONResponseBuilder{
		statusCode: http.StatusOK,
		headers:    make(map[string]string),
	}
}

func (b *JSONResponseBuilder) Status(code int) *JSONResponseBuilder {
	b.statusCode = code
	return b
}

func (b *JSONResponseBuilder) Header(name, value string) *JSONResponseBuilder {
	b.headers[name] = value
	return b
}

func (b *JSONResponseBuilder) Body(v any) *JSONResponseBuilder {
	b.body = v
	return b
}

// Write encodes the body. A nil body with 204 writes nothing.
func (b *JSONResponseBuilder) Write(w http.ResponseWriter) {
	for name, value := range b.headers {
		w.Header().Set(name, value)
	}
	if b.body == nil && b.statusCode == http.StatusNoContent {
		w.WriteHeader(b.statusCode)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(b.statusCode)
	_ = json.NewEncoder(w).Encode(b.body)
}

type errorBody struct {
	Error     string `json:"error"`
	RequestID string `json:"requestId,omitempty"`
}

// ErrorResponse builds {"error": message}.
func ErrorResponse(statusCode int, message string) *JSONResponseBuilder {
	return NewJSONResponse().Status(statusCode).Body(errorBody{Error: message})
}

func BadRequestError(message string) *JSONResponseBuilder {
	return ErrorResponse(http.StatusBadRequest, message)
}

func UnprocessableEntityError(message string) *JSONResponseBuilder {
	return ErrorResponse(http.StatusUnprocessableEntity, message)
}

func NotFoundError(message string) *JSONResponseBuilder {
	return ErrorResponse(http.StatusNotFound, message)
}

func InternalServerError(message string) *JSONResponseBuilder {
	return ErrorResponse(http.StatusInternalServerError, message)
}

func TooManyRequestsError() *JSONResponseBuilder {
	return ErrorResponse(http.StatusTooManyRequests, "rate limit exceeded, try again later")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	NewJSONResponse().Status(status).Body(v).Write(w)
}

func noContent(w http.ResponseWriter) {
	NewJSONResponse().Status(http.StatusNoContent).Write(w)
}

// invalidInput lists the errors caused by what the client sent.
var invalidInput = []error{
	core.ErrInvalidAmount,
	core.ErrInvalidType,
	core.ErrInvalidCategory,
	core.ErrEmptyDescription,
	core.ErrEmptyName,
	core.ErrEmptyID,
	core.ErrInvalidHours,
	core.ErrInvalidRate,
	core.ErrInvalidArea,
	core.ErrInvalidFloors,
	core.ErrWeekStartNotMonday,
	core.ErrInvalidPeriod,
	core.ErrInvalidDate,
	core.ErrInvalidDay,
	core.ErrInvalidMonth,
	invoice.ErrInvalidStatus,
	invoice.ErrNoItems,
	budget.ErrInvalidStatus,
	storage.ErrUnknownCurrency,
	backup.ErrInvalidBackup,
}

var notFound = []error{
	storage.ErrNotFound,
	invoice.ErrTemplateNotFound,
	invoice.ErrItemNotFound,
	budget.ErrTemplateNotFound,
	budget.ErrItemNotFound,
	errRouteNotFound,
}

func statusFor(err error) int {
	if errors.Is(err, ErrBadRequest) {
		return http.StatusBadRequest
	}
	for _, target := range notFound {
		if errors.Is(err, target) {
			return http.StatusNotFound
		}
	}
	for _, target := range invalidInput {
		if errors.Is(err, target) {
			return http.StatusUnprocessableEntity
		}
	}
	return http.StatusInternalServerError
}

// writeError maps err to a status. Server errors are logged and their
// details withheld from the client.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error, operation string) {
	status := statusFor(err)
	body := errorBody{Error: err.Error(), RequestID: trace.GetRequestID(r.Context())}
	if status >= http.StatusInternalServerError {
		s.events.LogError(r.Context(), "Request failed", err, operation,
			log.NewFields().WithRequestID(body.RequestID))
		body.Error = "internal error"
	}
	NewJSONResponse().Status(status).Body(body).Write(w)
}
