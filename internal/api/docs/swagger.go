package docs

import (
	"github.com/go-swagno/swagno"
	"github.com/go-swagno/swagno/components/endpoint"
	"github.com/go-swagno/swagno/components/http/response"
	"github.com/go-swagno/swagno/components/mime"
	"github.com/go-swagno/swagno/components/parameter"
)

// RegisterRequestDoc represents the body for employee registration
type RegisterRequestDoc struct {
	EmployeeID   string `json:"employee_id" example:"EMP001"`
	FaceImageURL string `json:"face_image_url" example:"https://storage.example.com/faces/EMP001.jpg"`
}

// EnrollResponseDoc represents a successful enrollment
type EnrollResponseDoc struct {
	EmployeeID     string `json:"employee_id" example:"EMP001"`
	EncodingID     string `json:"encoding_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	SourceFilename string `json:"source_filename" example:"EMP001.jpg"`
	CreatedAt      string `json:"created_at" example:"2025-01-01T00:00:00Z"`
}

// VerifyResponseDoc represents a verification outcome
type VerifyResponseDoc struct {
	Verified   bool    `json:"verified" example:"true"`
	EmployeeID string  `json:"employee_id" example:"EMP001"`
	Name       string  `json:"name" example:"Amira Ben Salem"`
	Department string  `json:"department" example:"Engineering"`
	Confidence float64 `json:"confidence" example:"87.5"`
	Distance   float64 `json:"distance" example:"0.125"`
	Threshold  float64 `json:"threshold" example:"0.6"`
	Reason     string  `json:"reason,omitempty" example:""`
	LatencyMs  int64   `json:"latency_ms" example:"210"`
}

// EmployeeListingDoc represents one directory entry
type EmployeeListingDoc struct {
	EmployeeID  string `json:"employee_id" example:"EMP001"`
	DisplayName string `json:"display_name" example:"Amira Ben Salem"`
	Department  string `json:"department" example:"Engineering"`
	HasFaceData bool   `json:"has_face_data" example:"true"`
}

// ListResponseDoc represents the employee directory response
type ListResponseDoc struct {
	Employees []EmployeeListingDoc `json:"employees"`
	Count     int                  `json:"count" example:"42"`
}

// BulkResultDoc represents the bulk enrollment outcome
type BulkResultDoc struct {
	Total     int `json:"total" example:"42"`
	Processed int `json:"processed" example:"30"`
	Skipped   int `json:"skipped" example:"10"`
	Errors    int `json:"errors" example:"2"`
}

// StatsResponseDoc represents enrollment coverage
type StatsResponseDoc struct {
	TotalEmployees   int `json:"total_employees" example:"42"`
	WithEncodings    int `json:"employees_with_encodings" example:"30"`
	WithoutEncodings int `json:"employees_without_encodings" example:"12"`
	TotalEncodings   int `json:"total_encodings" example:"30"`
}

// HealthResponseDoc represents the health report
type HealthResponseDoc struct {
	Status    string  `json:"status" example:"ok"`
	Database  string  `json:"database" example:"up"`
	Employees int     `json:"employees" example:"42"`
	Encodings int     `json:"encodings" example:"30"`
	Threshold float64 `json:"threshold" example:"0.6"`
}

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Code    string `json:"code" example:"VALIDATION_FAILED"`
	Message string `json:"message" example:"Request validation failed"`
}

// NewSwagger creates and configures the Swagger documentation
func NewSwagger() *swagno.Swagger {
	sw := swagno.New(swagno.Config{
		Title:       "Face Recognition Employee System API",
		Version:     "v0.1.0",
		Description: "Face-encoding enrollment and verification service for employee access control",
		Host:        "localhost:5000",
		Path:        "/",
	})

	endpoints := []*endpoint.EndPoint{
		// POST /register - enroll by image URL
		endpoint.New(
			endpoint.POST,
			"/register",
			endpoint.WithTags("Enrollment"),
			endpoint.WithSummary("Enroll an employee from an image URL"),
			endpoint.WithDescription("Downloads the image at face_image_url, encodes the first detected face and stores the encoding for the employee."),
			endpoint.WithBody(RegisterRequestDoc{}),
			endpoint.WithConsume([]mime.MIME{mime.JSON}),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(EnrollResponseDoc{}, "201", "Employee enrolled"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "VALIDATION_FAILED", Message: "Request validation failed"}, "400", "Bad Request"),
				response.New(ErrorResponse{Code: "EMPLOYEE_NOT_FOUND", Message: "Employee not found"}, "404", "Not Found"),
				response.New(ErrorResponse{Code: "ALREADY_ENROLLED", Message: "Employee already has a face encoding"}, "409", "Conflict"),
				response.New(ErrorResponse{Code: "NO_FACE_DETECTED", Message: "No face detected in the image"}, "422", "Unprocessable Entity"),
				response.New(ErrorResponse{Code: "ENCODER_UNAVAILABLE", Message: "Face encoding service unreachable"}, "502", "Bad Gateway"),
			}),
		),

		// POST /verify - 1:N verification
		endpoint.New(
			endpoint.POST,
			"/verify",
			endpoint.WithTags("Verification"),
			endpoint.WithSummary("Verify an uploaded image against the enrolled gallery"),
			endpoint.WithDescription("Encodes the uploaded image and returns the best acceptable match, or a not-verified outcome with a reason."),
			endpoint.WithConsume([]mime.MIME{mime.MIME("multipart/form-data")}),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(VerifyResponseDoc{}, "200", "Verification completed"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "VALIDATION_FAILED", Message: "Request validation failed"}, "400", "Bad Request"),
				response.New(ErrorResponse{Code: "NO_FACE_DETECTED", Message: "No face detected in the image"}, "422", "Unprocessable Entity"),
				response.New(ErrorResponse{Code: "ENCODER_TIMEOUT", Message: "Face encoding service timed out"}, "504", "Gateway Timeout"),
			}),
		),

		// GET /employees
		endpoint.New(
			endpoint.GET,
			"/employees",
			endpoint.WithTags("Employees"),
			endpoint.WithSummary("List employees with enrollment state"),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(ListResponseDoc{}, "200", "Employee directory"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "STORE_UNAVAILABLE", Message: "Record store unreachable"}, "502", "Bad Gateway"),
			}),
		),

		// POST /employees/{id}/process
		endpoint.New(
			endpoint.POST,
			"/employees/{id}/process",
			endpoint.WithTags("Enrollment"),
			endpoint.WithSummary("Enroll an employee from their stored image URL"),
			endpoint.WithParams(
				parameter.StrParam("id", parameter.Path, parameter.WithRequired()),
			),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(EnrollResponseDoc{}, "201", "Employee enrolled"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "NO_SOURCE_IMAGE", Message: "Employee has no face image URL"}, "400", "Bad Request"),
				response.New(ErrorResponse{Code: "EMPLOYEE_NOT_FOUND", Message: "Employee not found"}, "404", "Not Found"),
				response.New(ErrorResponse{Code: "ALREADY_ENROLLED", Message: "Employee already has a face encoding"}, "409", "Conflict"),
			}),
		),

		// POST /employees/{id}/reenroll
		endpoint.New(
			endpoint.POST,
			"/employees/{id}/reenroll",
			endpoint.WithTags("Enrollment"),
			endpoint.WithSummary("Replace an employee's face encoding"),
			endpoint.WithDescription("Deletes any stored encoding and enrolls the employee again from their stored image URL."),
			endpoint.WithParams(
				parameter.StrParam("id", parameter.Path, parameter.WithRequired()),
			),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(EnrollResponseDoc{}, "200", "Employee re-enrolled"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "NO_SOURCE_IMAGE", Message: "Employee has no face image URL"}, "400", "Bad Request"),
				response.New(ErrorResponse{Code: "EMPLOYEE_NOT_FOUND", Message: "Employee not found"}, "404", "Not Found"),
			}),
		),

		// POST /employees/process
		endpoint.New(
			endpoint.POST,
			"/employees/process",
			endpoint.WithTags("Enrollment"),
			endpoint.WithSummary("Enroll every pending employee"),
			endpoint.WithDescription("Runs enrollment for all employees (or the given ids) with per-employee outcomes. One failure never aborts the batch."),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(BulkResultDoc{}, "200", "Batch finished"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "STORE_UNAVAILABLE", Message: "Record store unreachable"}, "502", "Bad Gateway"),
			}),
		),

		// GET /health
		endpoint.New(
			endpoint.GET,
			"/health",
			endpoint.WithTags("System"),
			endpoint.WithSummary("Service health"),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(HealthResponseDoc{}, "200", "Healthy"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(HealthResponseDoc{Status: "degraded", Database: "down"}, "503", "Degraded"),
			}),
		),

		// GET /admin/stats
		endpoint.New(
			endpoint.GET,
			"/admin/stats",
			endpoint.WithTags("System"),
			endpoint.WithSummary("Enrollment coverage stats"),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(StatsResponseDoc{}, "200", "Coverage stats"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "STORE_UNAVAILABLE", Message: "Record store unreachable"}, "502", "Bad Gateway"),
			}),
		),
	}

	sw.AddEndpoints(endpoints)

	return sw
}
