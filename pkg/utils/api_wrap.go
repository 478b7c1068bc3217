package utils

import (
	"errors"
	"net/http"

	"ezyvoyage/internal/pipeline"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	TraceIDKey = "trace_id"
	LoggerKey  = "logger"
)

type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors"`
	TraceID string       `json:"trace_id,omitempty"`
}

// Logger returns the request scoped logger set by the logging middleware.
func Logger(c *gin.Context) *zap.Logger {
	if v, ok := c.Get(LoggerKey); ok {
		if l, ok := v.(*zap.Logger); ok {
			return l
		}
	}
	return zap.L()
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Message: message,
		TraceID: c.GetString(TraceIDKey),
		Data:    data,
	})
}

// RespondJSON writes fields at the top level of the body next to success and
// trace_id.
func RespondJSON(c *gin.Context, code int, fields gin.H) {
	body := gin.H{"success": code < http.StatusBadRequest}
	for k, v := range fields {
		body[k] = v
	}
	if traceID := c.GetString(TraceIDKey); traceID != "" {
		body[TraceIDKey] = traceID
	}
	c.JSON(code, body)
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Success: false,
		Message: message,
		TraceID: c.GetString(TraceIDKey),
	})
}

func RespondValidationError(c *gin.Context, errs []FieldError) {
	c.JSON(http.StatusBadRequest, ValidationResponse{
		Success: false,
		Message: "Validation failed",
		Errors:  errs,
		TraceID: c.GetString(TraceIDKey),
	})
}

func HandleServiceError(c *gin.Context, err error) {
	log := Logger(c)

	var ve *pipeline.ValidationError
	var ne *pipeline.NotFoundError

	switch {
	case errors.As(err, &ve):
		RespondError(c, http.StatusBadRequest, ve.Message)
	case errors.As(err, &ne), errors.Is(err, ErrUserNotFound):
		RespondError(c, http.StatusNotFound, "User not found")
	case errors.Is(err, ErrUserAlreadyExists):
		RespondError(c, http.StatusBadRequest, "User already exists with this email")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusBadRequest, "Invalid credentials")
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrInvalidToken), errors.Is(err, ErrTokenRevoked):
		RespondError(c, http.StatusUnauthorized, "Token is not valid")
	case errors.Is(err, ErrBookmarkExists):
		RespondError(c, http.StatusBadRequest, "Trip already bookmarked")
	case errors.Is(err, ErrBookmarkNotFound):
		RespondError(c, http.StatusNotFound, "Bookmarked trip not found")
	case errors.Is(err, ErrAdvisoryURL):
		RespondError(c, http.StatusInternalServerError, "Could not find a valid travel advisory URL")
	case errors.Is(err, ErrAINotConfigured):
		log.Error("ai provider not configured", zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "AI service is not configured. Please contact support.")
	case errors.Is(err, ErrDatabaseError):
		log.Error("database error", zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Error("unhandled service error", zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

// HandlePipelineError reports a failed pipeline run. Validation and not-found
// errors keep their own message; adapter and model failures collapse into
// failureMessage and the cause is only logged.
func HandlePipelineError(c *gin.Context, err error, failureMessage string) {
	var (
		ve *pipeline.ValidationError
		ne *pipeline.NotFoundError
		se *pipeline.ServiceError
		me *pipeline.MalformedResponseError
	)
	switch {
	case errors.As(err, &ve), errors.As(err, &ne):
		HandleServiceError(c, err)
	case errors.Is(err, ErrAINotConfigured):
		HandleServiceError(c, err)
	case errors.As(err, &se), errors.As(err, &me):
		Logger(c).Error("pipeline failed", zap.String("kind", pipeline.Kind(err)), zap.Error(err))
		RespondError(c, http.StatusInternalServerError, failureMessage)
	default:
		HandleServiceError(c, err)
	}
}
