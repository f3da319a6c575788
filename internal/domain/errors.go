package domain

import (
	"errors"
	"fmt"
)

type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Err        error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Code:       e.Code,
		Message:    e.Message,
		StatusCode: e.StatusCode,
		Err:        err,
	}
}

// Is lets wrapped copies produced by WithError match their sentinel.
func (e *AppError) Is(target error) bool {
	var appErr *AppError
	if !errors.As(target, &appErr) {
		return false
	}
	return e.Code == appErr.Code
}

var (
	errEmptyEmployeeID   = errors.New("employee_id is empty")
	errEmployeeIDTooLong = errors.New("employee_id exceeds 50 characters")
)

// Pre-defined errors
var (
	ErrInternal = &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    "An unexpected error occurred",
		StatusCode: 500,
	}

	ErrValidationFailed = &AppError{
		Code:       "VALIDATION_FAILED",
		Message:    "Request validation failed",
		StatusCode: 400,
	}

	ErrEmployeeNotFound = &AppError{
		Code:       "EMPLOYEE_NOT_FOUND",
		Message:    "Employee not found",
		StatusCode: 404,
	}

	ErrEncodingNotFound = &AppError{
		Code:       "ENCODING_NOT_FOUND",
		Message:    "No face encoding stored for this employee",
		StatusCode: 404,
	}

	ErrAlreadyEnrolled = &AppError{
		Code:       "ALREADY_ENROLLED",
		Message:    "Employee already has a face encoding",
		StatusCode: 409,
	}

	ErrNoSourceImage = &AppError{
		Code:       "NO_SOURCE_IMAGE",
		Message:    "Employee has no face image URL",
		StatusCode: 400,
	}

	ErrInvalidImage = &AppError{
		Code:       "INVALID_IMAGE",
		Message:    "Invalid image format or corrupted file",
		StatusCode: 422,
	}

	ErrNoFaceDetected = &AppError{
		Code:       "NO_FACE_DETECTED",
		Message:    "No face detected in the image",
		StatusCode: 422,
	}

	ErrEncodingFailed = &AppError{
		Code:       "ENCODING_FAILED",
		Message:    "Could not encode the detected face",
		StatusCode: 422,
	}

	ErrDimensionMismatch = &AppError{
		Code:       "DIMENSION_MISMATCH",
		Message:    "Face encoding has unexpected dimensionality",
		StatusCode: 500,
	}

	ErrImageFetchFailed = &AppError{
		Code:       "IMAGE_FETCH_FAILED",
		Message:    "Failed to download image from provided URL",
		StatusCode: 400,
	}

	ErrEncoderUnavailable = &AppError{
		Code:       "ENCODER_UNAVAILABLE",
		Message:    "Face encoding service unreachable",
		StatusCode: 502,
	}

	ErrEncoderTimeout = &AppError{
		Code:       "ENCODER_TIMEOUT",
		Message:    "Face encoding service timed out",
		StatusCode: 504,
	}

	ErrStoreUnavailable = &AppError{
		Code:       "STORE_UNAVAILABLE",
		Message:    "Record store unreachable",
		StatusCode: 502,
	}

	ErrStoreTimeout = &AppError{
		Code:       "STORE_TIMEOUT",
		Message:    "Record store timed out",
		StatusCode: 504,
	}
)
