package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/yigit/registrar/internal/app/models/dto"
	"github.com/yigit/registrar/internal/pkg/apperrors"
	"github.com/yigit/registrar/internal/pkg/logger"
)

func abortWithError(c *gin.Context, status int, detail *dto.ErrorDetail) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
}

// messageOr returns the user-facing message carried by err, or fallback.
func messageOr(err error, fallback string) string {
	if msg := apperrors.UserMessage(err); msg != "" {
		return msg
	}
	return fallback
}

// HandleAPIError handles common API errors and returns appropriate responses
func HandleAPIError(c *gin.Context, err error) {
	if detail, ok := bindingErrorDetail(err); ok {
		abortWithError(c, http.StatusBadRequest, detail)
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		abortWithError(c, http.StatusBadRequest,
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, messageOr(err, "Validation failed")).
				WithField(apperrors.FieldOf(err)))
	case errors.Is(err, apperrors.ErrBadRequest):
		abortWithError(c, http.StatusBadRequest,
			dto.NewErrorDetail(dto.ErrorCodeBadRequest, messageOr(err, "Bad request")))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		abortWithError(c, http.StatusNotFound,
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, messageOr(err, "Resource not found")))
	case errors.Is(err, apperrors.ErrConflict):
		abortWithError(c, http.StatusConflict,
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, messageOr(err, "Resource already exists")))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		abortWithError(c, http.StatusUnauthorized,
			dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials"))
	case errors.Is(err, apperrors.ErrTokenExpired):
		abortWithError(c, http.StatusUnauthorized,
			dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired"))
	case errors.Is(err, apperrors.ErrTokenNotFound):
		abortWithError(c, http.StatusUnauthorized,
			dto.NewErrorDetail(dto.ErrorCodeTokenNotFound, "Authentication required"))
	case errors.Is(err, apperrors.ErrTokenInvalid), errors.Is(err, apperrors.ErrInvalidFormat):
		abortWithError(c, http.StatusUnauthorized,
			dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token"))
	case errors.Is(err, apperrors.ErrTooManyRequests):
		abortWithError(c, http.StatusTooManyRequests,
			dto.NewErrorDetail(dto.ErrorCodeTooManyRequests, "Too many requests").WithSeverity(dto.ErrorSeverityWarning))
	default:
		logger.Error().Err(err).
			Str("requestID", RequestID(c)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled error")
		abortWithError(c, http.StatusInternalServerError,
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error").WithSeverity(dto.ErrorSeverityCritical))
	}
}

// bindingErrorDetail converts request binding failures into validation details.
func bindingErrorDetail(err error) (*dto.ErrorDetail, bool) {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		var all dto.FieldErrors
		for _, fe := range fieldErrs {
			all.Add(fe.Field(), formatValidationError(fe))
		}
		if !all.Empty() {
			return all.Detail(), true
		}
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return dto.NewErrorDetail(dto.ErrorCodeValidationFailed, typeErr.Field+" must be a valid "+typeErr.Type.String()).
			WithField(typeErr.Field), true
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return dto.NewErrorDetail(dto.ErrorCodeBadRequest, "Request body must be valid JSON"), true
	}

	return nil, false
}
