package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/oguzk/jobport/internal/app/models/dto"
	"github.com/oguzk/jobport/internal/pkg/apperrors"
)

// HandleAPIError translates service errors into the standard error envelope.
// Controllers call this for any error coming back from a service.
func HandleAPIError(c *gin.Context, err error) {
	detail := errorDetailFor(err)

	// Carry the wrapped message through when the service attached one
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) && customErr.Message != "" {
		detail = detail.WithDetails(customErr.Message)
	}

	c.JSON(statusFor(detail.Code), dto.NewErrorResponse(detail))
}

func errorDetailFor(err error) *dto.ErrorDetail {
	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound),
		errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrProfileNotFound),
		errors.Is(err, apperrors.ErrCompanyNotFound),
		errors.Is(err, apperrors.ErrJobNotFound),
		errors.Is(err, apperrors.ErrApplicationNotFound),
		errors.Is(err, apperrors.ErrBookmarkNotFound):
		return dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found")
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied")
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials")
	case errors.Is(err, apperrors.ErrTokenExpired):
		return dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired")
	case errors.Is(err, apperrors.ErrTokenNotFound):
		return dto.NewErrorDetail(dto.ErrorCodeTokenNotFound, "Token not found")
	case errors.Is(err, apperrors.ErrTokenRevoked):
		return dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Token revoked")
	case errors.Is(err, apperrors.ErrTokenInvalid), errors.Is(err, apperrors.ErrInvalidFormat):
		return dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token")
	case errors.Is(err, apperrors.ErrInvalidEmail):
		return dto.NewErrorDetail(dto.ErrorCodeInvalidEmail, "Invalid email")
	case errors.Is(err, apperrors.ErrInvalidPassword):
		return dto.NewErrorDetail(dto.ErrorCodeInvalidPassword, "Invalid password")
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		return dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed")
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		return dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Email already exists")
	case errors.Is(err, apperrors.ErrAlreadyApplied):
		return dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "An application for this job already exists")
	case errors.Is(err, apperrors.ErrAlreadyBookmarked):
		return dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "A bookmark for this job already exists")
	case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrResourceAlreadyExists):
		return dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Resource already exists")
	default:
		return dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
	}
}

func statusFor(code dto.ErrorCode) int {
	switch code {
	case dto.ErrorCodeResourceNotFound:
		return 404
	case dto.ErrorCodeForbidden:
		return 403
	case dto.ErrorCodeInvalidCredentials, dto.ErrorCodeExpiredToken,
		dto.ErrorCodeInvalidToken, dto.ErrorCodeTokenNotFound, dto.ErrorCodeUnauthorized:
		return 401
	case dto.ErrorCodeValidationFailed, dto.ErrorCodeInvalidEmail, dto.ErrorCodeInvalidPassword:
		return 400
	case dto.ErrorCodeResourceAlreadyExists:
		return 409
	default:
		return 500
	}
}
