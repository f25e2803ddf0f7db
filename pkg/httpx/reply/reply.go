package reply

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"git.appkode.ru/pub/go/failure"
	jsoniter "github.com/json-iterator/go"

	"quotehub/pkg/contextx"
	"quotehub/pkg/errcodes"
	"quotehub/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type errorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	SupportID string `json:"supportId"`
}

func (e *errorResponse) WithDefaultCode(code failure.ErrorCode) {
	if e.Code == "" {
		e.Code = code.String()
	}
}

func JSON(ctx context.Context, w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger(ctx).Error("json.Encode", logx.Error(err))
	}
}

// Error maps the failure kind of err to a status code. Client errors are
// logged as warnings, everything else as errors.
func Error(ctx context.Context, w http.ResponseWriter, err error) {
	response := errorResponse{
		Code:      failure.Code(err).String(),
		Message:   failure.Description(err),
		SupportID: supportID(ctx),
	}

	status := http.StatusInternalServerError

	switch {
	case failure.IsInvalidArgumentError(err):
		status = http.StatusBadRequest
		response.WithDefaultCode(errcodes.ValidationError)
	case failure.IsNotFoundError(err):
		status = http.StatusNotFound
		response.WithDefaultCode(errcodes.NotFound)
	case failure.IsUnauthorizedError(err):
		status = http.StatusUnauthorized
	case failure.IsForbiddenError(err):
		status = http.StatusForbidden
		response.WithDefaultCode(errcodes.Forbidden)
	case failure.IsConflictError(err):
		status = http.StatusConflict
	case failure.IsUnprocessableEntityError(err):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, context.DeadlineExceeded):
		status = http.StatusGatewayTimeout
		response.WithDefaultCode(errcodes.TimeoutExceeded)
	default:
		response.WithDefaultCode(errcodes.InternalServerError)
	}

	level := slog.LevelError
	if status < http.StatusInternalServerError {
		level = slog.LevelWarn
	}

	logger(ctx).Log(ctx, level, "request failed",
		slog.Int(logx.FieldResponseStatus, status),
		logx.Error(err),
	)

	JSON(ctx, w, status, response)
}

func supportID(ctx context.Context) string {
	traceID, err := contextx.TraceIDFromContext(ctx)
	if err != nil {
		return "unsupported"
	}

	return traceID.String()
}
